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

// Sentinal errors.
const (
	// the values are the address of the instruction, the instruction word and
	// the underlying error
	ExecutionError = "cpu: execution error at %#03x (opcode %#04x): %v"

	// the value is the error that caused the CPU to halt
	Halted = "cpu: halted: %v"

	// the value is the address of the call
	StackOverflow = "stack overflow: call to %#03x"

	StackUnderflow = "stack underflow: return with empty stack"
)
