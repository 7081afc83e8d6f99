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

package cpu

import (
	"github.com/jetsetilly/gopher8/curated"
)

// StackDepth is the maximum number of return addresses on the call stack.
const StackDepth = 16

// callStack is a bounded list of return addresses.
type callStack struct {
	entries [StackDepth]uint16
	depth   int
}

func (s *callStack) reset() {
	s.depth = 0
}

// push a return address. the target address is used only for the error
// message
func (s *callStack) push(ret uint16, target uint16) error {
	if s.depth >= StackDepth {
		return curated.Errorf(StackOverflow, target)
	}
	s.entries[s.depth] = ret
	s.depth++
	return nil
}

func (s *callStack) pop() (uint16, error) {
	if s.depth == 0 {
		return 0, curated.Errorf(StackUnderflow)
	}
	s.depth--
	return s.entries[s.depth], nil
}

// return a copy of the current entries. the most recent call is last
func (s *callStack) list() []uint16 {
	l := make([]uint16, s.depth)
	copy(l, s.entries[:s.depth])
	return l
}
