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

package registers

import (
	"fmt"
)

// Wide is a 16-bit register. Used for the index register and the program
// counter.
type Wide struct {
	value uint16
	label string
}

// NewProgramCounter is the preferred method of initialisation for the program
// counter.
func NewProgramCounter(val uint16) Wide {
	return Wide{value: val, label: "PC"}
}

// NewIndex is the preferred method of initialisation for the index register.
func NewIndex(val uint16) Wide {
	return Wide{value: val, label: "I"}
}

func (r Wide) String() string {
	return fmt.Sprintf("%#04x", r.value)
}

// Label returns the name of the register.
func (r Wide) Label() string {
	return r.label
}

// Address returns the current value of the register.
func (r Wide) Address() uint16 {
	return r.value
}

// Load value into register.
func (r *Wide) Load(val uint16) {
	r.value = val
}

// Add value to register. The register wraps at 16 bits.
func (r *Wide) Add(val uint16) {
	r.value += val
}
