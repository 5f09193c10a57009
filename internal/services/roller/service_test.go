package roller

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/initiative/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/initiative/internal/common/uuid/mocks"
	diceMocks "github.com/KirkDiggler/initiative/internal/dice/mocks"
	"github.com/KirkDiggler/initiative/internal/expression"
	"github.com/KirkDiggler/initiative/internal/models"
	tableLogRepo "github.com/KirkDiggler/initiative/internal/repositories/table_log"
	tableLogMocks "github.com/KirkDiggler/initiative/internal/repositories/table_log/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RollerServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockDiceRoller   *diceMocks.MockRoller
	mockTableLogRepo *tableLogMocks.MockRepository
	mockClock        *clockMocks.MockClock
	mockUUID         *uuidMocks.MockUUID
	rollerService    Service
	ctx              context.Context
	testTime         time.Time
}

func (s *RollerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockTableLogRepo = tableLogMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		DiceRoller:    s.mockDiceRoller,
		TableLogRepo:  s.mockTableLogRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.rollerService = svc
}

func (s *RollerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRollerServiceSuite(t *testing.T) {
	suite.Run(t, new(RollerServiceTestSuite))
}

func (s *RollerServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{TableLogRepo: s.mockTableLogRepo})
	s.ErrorIs(err, ErrNilDiceRoller)

	_, err = New(&Config{DiceRoller: s.mockDiceRoller})
	s.ErrorIs(err, ErrNilTableLogRepo)
}

func (s *RollerServiceTestSuite) TestRollWithoutTable() {
	gomock.InOrder(
		s.mockDiceRoller.EXPECT().Roll(uint32(6)).Return(uint32(2)),
		s.mockDiceRoller.EXPECT().Roll(uint32(6)).Return(uint32(5)),
	)

	output, err := s.rollerService.Roll(s.ctx, &RollInput{
		Expression: "2d6 + 3",
		RolledBy:   "Aria",
	})

	s.Require().NoError(err)
	s.Equal(uint32(10), output.Roll.Total)
	s.Equal("Rolling: 2d6 + 3 -> 10", output.Message)
	s.Equal("Aria", output.Roll.RolledBy)
	s.Equal([]models.DiceGroup{
		{Count: 2, Faces: 6, Values: []uint32{2, 5}, Total: 7},
	}, output.Roll.Dice)
}

func (s *RollerServiceTestSuite) TestRollRecordsToTableLog() {
	s.mockDiceRoller.EXPECT().Roll(uint32(20)).Return(uint32(17))
	s.mockUUID.EXPECT().NewUUID().Return("entry-id")
	s.mockTableLogRepo.EXPECT().
		AppendEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *tableLogRepo.AppendEntryInput) error {
			s.Equal("entry-id", input.Entry.ID)
			s.Equal("table-1", input.Entry.TableID)
			s.Equal(models.LogEntryKindRoll, input.Entry.Kind)
			s.Equal("Rolling: 1d20 -> 17", input.Entry.Message)
			s.Require().NotNil(input.Entry.Roll)
			s.Equal(uint32(17), input.Entry.Roll.Total)
			s.Equal(s.testTime, input.Entry.CreatedAt)
			return nil
		})

	output, err := s.rollerService.Roll(s.ctx, &RollInput{
		TableID:    "table-1",
		Expression: "  1d20 ",
	})

	s.Require().NoError(err)
	s.Equal("1d20", output.Roll.Expression)
	s.Equal(uint32(17), output.Roll.Total)
}

func (s *RollerServiceTestSuite) TestRollSurvivesLogFailure() {
	s.mockUUID.EXPECT().NewUUID().Return("entry-id")
	s.mockTableLogRepo.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	output, err := s.rollerService.Roll(s.ctx, &RollInput{
		TableID:    "table-1",
		Expression: "4 * (2 + 1)",
	})

	s.Require().NoError(err)
	s.Equal(uint32(12), output.Roll.Total)
	s.Empty(output.Roll.Dice)
}

func (s *RollerServiceTestSuite) TestRollInvalidExpression() {
	testCases := []struct {
		name       string
		expression string
		class      expression.Class
		cause      error
	}{
		{"unrecognized character", "2x6", expression.ClassLex, expression.ErrUnrecognizedCharacter},
		{"missing faces", "3d", expression.ClassLex, expression.ErrMissingFaces},
		{"unbalanced", "(1 + 2", expression.ClassStructural, expression.ErrUnbalancedParentheses},
		{"divide by zero", "4 / 0", expression.ClassEvaluation, expression.ErrDivideByZero},
		{"dangling operator", "1 +", expression.ClassEvaluation, expression.ErrStackUnderflow},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.rollerService.Roll(s.ctx, &RollInput{
				TableID:    "table-1",
				Expression: tc.expression,
			})

			s.ErrorIs(err, ErrInvalidExpression)
			s.ErrorIs(err, tc.cause)
			s.Equal(tc.class, expression.ClassOf(err))
		})
	}
}

func (s *RollerServiceTestSuite) TestRollEmptyExpression() {
	_, err := s.rollerService.Roll(s.ctx, &RollInput{Expression: "   "})
	s.ErrorIs(err, ErrEmptyExpression)

	_, err = s.rollerService.Roll(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)
}
