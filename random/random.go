// This file is part of AsyncFIFO.
//
// AsyncFIFO is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// AsyncFIFO is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with AsyncFIFO.  If not, see <https://www.gnu.org/licenses/>.

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

// initialise base seed
func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// TickSource is used by Random to make random numbers sensitive to time
// within the simulation.
type TickSource interface {
	Ticks() int64
}

// Random is a random number generator that is sensitive to time within the
// simulation.
type Random struct {
	src    TickSource
	stream uint64
	seed   uint64

	// the tick of the previous call and the number of calls made during that
	// tick. used to prevent repeated calls in the same tick returning the
	// same value
	lastTick int64
	calls    uint64

	// internal counter used when src is nil
	counter int64

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
// The src argument can be nil.
func NewRandom(src TickSource) *Random {
	return &Random{
		src:  src,
		seed: baseSeed,
	}
}

// SetSeed replaces the base seed. A seed of zero is the same as setting the
// ZeroSeed field.
func (rnd *Random) SetSeed(seed uint64) {
	rnd.seed = seed
}

// Fork creates a new instance of Random bound to a different TickSource. The
// stream value distinguishes forks that are bound to tick sources that will
// have the same tick value at the same time. The settings of the parent
// instance are inherited at the time of the fork.
func (rnd *Random) Fork(src TickSource, stream uint64) *Random {
	return &Random{
		src:      src,
		stream:   stream,
		seed:     rnd.seed,
		ZeroSeed: rnd.ZeroSeed,
	}
}

func (rnd *Random) ticks() int64 {
	if rnd.src == nil {
		rnd.counter++
		return rnd.counter
	}
	return rnd.src.Ticks()
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	t := rnd.ticks()
	if t != rnd.lastTick {
		rnd.lastTick = t
		rnd.calls = 0
	} else {
		rnd.calls++
	}

	seed := uint64(t)
	if !rnd.ZeroSeed {
		seed += rnd.seed
	}

	return rand.New(rand.NewPCG(seed, rnd.stream<<16|rnd.calls))
}

// Intn returns a random number in the range [0, n). Panics if n <= 0.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().IntN(n)
}

// Uint64 returns a random 64 bit number.
func (rnd *Random) Uint64() uint64 {
	return rnd.rand().Uint64()
}

// Chance returns true with a probability of p (0.0 to 1.0).
func (rnd *Random) Chance(p float64) bool {
	return rnd.rand().Float64() < p
}
