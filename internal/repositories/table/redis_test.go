package table

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/initiative/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testTable() *models.Table {
	return &models.Table{
		ID:           "test-table-id",
		ChannelID:    "test-channel-id",
		CharacterIDs: []string{"char-1", "char-2"},
		TurnIndex:    1,
		Round:        3,
		CreatedAt:    s.testNow,
		UpdatedAt:    s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetTable() {
	err := s.repo.SaveTable(context.Background(), &SaveTableInput{
		Table: s.testTable(),
	})
	s.Require().NoError(err)

	table, err := s.repo.GetTable(context.Background(), &GetTableInput{
		TableID: "test-table-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(table)

	s.Equal("test-channel-id", table.ChannelID)
	s.Equal([]string{"char-1", "char-2"}, table.CharacterIDs)
	s.Equal(1, table.TurnIndex)
	s.Equal(3, table.Round)
	s.Equal(s.testNow.Unix(), table.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetTableByChannel() {
	err := s.repo.SaveTable(context.Background(), &SaveTableInput{
		Table: s.testTable(),
	})
	s.Require().NoError(err)

	table, err := s.repo.GetTableByChannel(context.Background(), &GetTableByChannelInput{
		ChannelID: "test-channel-id",
	})
	s.Require().NoError(err)
	s.Equal("test-table-id", table.ID)

	_, err = s.repo.GetTableByChannel(context.Background(), &GetTableByChannelInput{
		ChannelID: "other-channel",
	})
	s.ErrorIs(err, ErrTableNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteTable() {
	err := s.repo.SaveTable(context.Background(), &SaveTableInput{
		Table: s.testTable(),
	})
	s.Require().NoError(err)

	err = s.repo.DeleteTable(context.Background(), &DeleteTableInput{
		TableID: "test-table-id",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetTable(context.Background(), &GetTableInput{
		TableID: "test-table-id",
	})
	s.ErrorIs(err, ErrTableNotFound)

	_, err = s.repo.GetTableByChannel(context.Background(), &GetTableByChannelInput{
		ChannelID: "test-channel-id",
	})
	s.ErrorIs(err, ErrTableNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteMissingTable() {
	err := s.repo.DeleteTable(context.Background(), &DeleteTableInput{
		TableID: "missing",
	})
	s.ErrorIs(err, ErrTableNotFound)
}

func (s *RedisRepositoryTestSuite) TestInvalidInput() {
	s.Error(s.repo.SaveTable(context.Background(), nil))
	s.Error(s.repo.SaveTable(context.Background(), &SaveTableInput{Table: &models.Table{}}))

	_, err := s.repo.GetTable(context.Background(), &GetTableInput{})
	s.Error(err)

	_, err = s.repo.GetTableByChannel(context.Background(), nil)
	s.Error(err)
}

func TestNewRedis_InvalidConfig(t *testing.T) {
	_, err := NewRedis(nil)
	if err == nil {
		t.Fatal("expected error for nil config")
	}

	_, err = NewRedis(&Config{})
	if err == nil {
		t.Fatal("expected error for nil client")
	}
}
