package worldgen

import "errors"

var ErrSeedOutOfRange = errors.New("seed out of 31-bit range")

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = int64(1) << 31
	seedMask      = lcgModulus - 1
)

// Stream is a deterministic pseudo-random stream. Two streams built from the
// same seed emit identical sequences; no external entropy is ever mixed in.
type Stream struct {
	state int64
}

func NewStream(seed int) (*Stream, error) {
	if seed < 0 || int64(seed) > seedMask {
		return nil, ErrSeedOutOfRange
	}
	return &Stream{state: int64(seed)}, nil
}

// Resume rebuilds a stream at a previously captured cursor, so a persisted
// combat can continue exactly where it left off.
func Resume(state int64) *Stream {
	return &Stream{state: state & seedMask}
}

// State returns the current cursor for persistence.
func (s *Stream) State() int64 {
	return s.state
}

// Next advances the stream and returns a float64 in [0,1).
func (s *Stream) Next() float64 {
	s.state = (s.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(s.state) / float64(lcgModulus)
}

// Intn returns an integer in [0,n). n must be positive.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Next() * float64(n))
}

// RollD20 returns an integer in [1,20].
func (s *Stream) RollD20() int {
	return s.Intn(20) + 1
}

// Mask31 folds an arbitrary integer into the non-negative 31-bit seed domain.
func Mask31(v int) int {
	return int(int64(v) & seedMask)
}
