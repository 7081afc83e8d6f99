// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed = uint64(time.Now().UnixNano())

// Counter is the source of emulation time for the Random type. The emulated
// machine counts the number of instructions it has executed since reset.
type Counter interface {
	InstructionCount() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation. The same point in the emulation always produces the same number.
type Random struct {
	counter Counter

	// rng for the NoRewind() function. created on first use
	noRewind *rand.Rand

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(counter Counter) *Random {
	return &Random{
		counter: counter,
	}
}

func (rnd *Random) seed() uint64 {
	if rnd.ZeroSeed {
		return 0
	}
	return baseSeed
}

// Rewindable returns a number in the range [0, n). The number is the same for
// the same point in the emulation.
func (rnd *Random) Rewindable(n int) int {
	var c uint64
	if rnd.counter != nil {
		c = rnd.counter.InstructionCount()
	}
	return rand.New(rand.NewPCG(rnd.seed(), c)).IntN(n)
}

// NoRewind returns a number in the range [0, n). The number is not dependent
// on the point in the emulation but instances with the same seed produce the
// same sequence.
func (rnd *Random) NoRewind(n int) int {
	if rnd.noRewind == nil {
		rnd.noRewind = rand.New(rand.NewPCG(rnd.seed(), rnd.seed()^0x9e3779b97f4a7c15))
	}
	return rnd.noRewind.IntN(n)
}
