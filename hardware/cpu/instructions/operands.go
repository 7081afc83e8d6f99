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

package instructions

// Operands describes which fields of the instruction word are meaningful.
type Operands int

// List of valid operand layouts. The names refer to the standard notation
// for CHIP-8 instruction words.
const (
	OperandsNone Operands = iota
	OperandsNNN           // ?NNN
	OperandsX             // ?X??
	OperandsXKK           // ?XKK
	OperandsXY            // ?XY?
	OperandsXYN           // ?XYN
)
