package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/initiative/internal/dice Roller

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"
)

// Roller is the source of die outcomes used when evaluating dice expressions
type Roller interface {
	// Roll returns a value in [1, faces]
	Roll(faces uint32) uint32
}

// RandomRoller rolls dice with a pseudo-random generator.
// It is safe for concurrent use.
type RandomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing; 0 draws one with RandomSeed
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	seed := RandomSeed()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandomRoller{
		random: random,
	}
}

// RandomSeed returns a seed from the operating system's entropy source.
// Rollers created in quick succession get unrelated seeds even when the
// clock has not moved between them.
func RandomSeed() int64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// Roll generates a random dice roll with the specified number of faces.
// A zero-faced die has no valid outcome; callers reject it before rolling,
// and Roll answers 0 rather than panicking inside the generator.
func (r *RandomRoller) Roll(faces uint32) uint32 {
	if faces == 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return uint32(r.random.Int63n(int64(faces))) + 1
}

// MaxRoller always rolls the highest face
type MaxRoller struct{}

// Roll returns faces
func (MaxRoller) Roll(faces uint32) uint32 {
	return faces
}

// MinRoller always rolls a one
type MinRoller struct{}

// Roll returns 1
func (MinRoller) Roll(uint32) uint32 {
	return 1
}

// SequenceRoller replays preset outcomes in order, cycling when it runs out.
type SequenceRoller struct {
	mu     sync.Mutex
	values []uint32
	next   int
}

// NewSequenceRoller creates a roller that returns values in order
func NewSequenceRoller(values ...uint32) *SequenceRoller {
	return &SequenceRoller{values: values}
}

// Roll returns the next preset value, or 1 when none were given
func (s *SequenceRoller) Roll(uint32) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.values) == 0 {
		return 1
	}

	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
