package chip8

import (
	"math/rand"
	"time"
)

/// Random produces one uniformly distributed byte per call. The RND
/// instruction draws from it; tests substitute a scripted source for
/// determinism.
///
type Random interface {
	Byte() byte
}

/// NewRandom returns the production randomness source, seeded from
/// the clock. It is uniform but makes no cryptographic promises.
///
func NewRandom() Random {
	return &pseudoRandom{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

/// NewSeededRandom returns a production source with a fixed seed, so
/// a run can be replayed.
///
func NewSeededRandom(seed int64) Random {
	return &pseudoRandom{
		rng: rand.New(rand.NewSource(seed)),
	}
}

type pseudoRandom struct {
	rng *rand.Rand
}

func (r *pseudoRandom) Byte() byte {
	return byte(r.rng.Int31())
}

/// Sequence is a scripted randomness source that replays a fixed
/// byte sequence, wrapping around at the end.
///
type Sequence struct {
	bytes []byte

	// replay position
	pos int
}

/// NewSequence creates a scripted source from the given bytes. An
/// empty sequence always yields zero.
///
func NewSequence(bytes ...byte) *Sequence {
	return &Sequence{bytes: bytes}
}

/// Byte returns the next scripted byte.
///
func (s *Sequence) Byte() byte {
	if len(s.bytes) == 0 {
		return 0
	}

	b := s.bytes[s.pos]

	// wrap at the end of the script
	s.pos = (s.pos + 1) % len(s.bytes)

	return b
}
