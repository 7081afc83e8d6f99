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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

type machine struct {
	count uint64
}

func (m *machine) InstructionCount() uint64 {
	return m.count
}

func TestRewindable(t *testing.T) {
	ma := &machine{count: 100}
	mb := &machine{count: 100}
	a := random.NewRandom(ma)
	b := random.NewRandom(mb)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Rewindable(i), b.Rewindable(i))
	}

	// the same instruction count produces the same number
	v := a.Rewindable(256)
	test.ExpectEquality(t, a.Rewindable(256), v)

	// and every number is in range
	for i := range 1000 {
		ma.count = uint64(i)
		v := a.Rewindable(256)
		test.ExpectSuccess(t, v >= 0 && v < 256)
	}
}

func TestNoRewind(t *testing.T) {
	a := random.NewRandom(nil)
	b := random.NewRandom(nil)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for range 100 {
		test.ExpectEquality(t, a.NoRewind(256), b.NoRewind(256))
	}
}
