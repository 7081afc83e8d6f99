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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the decoded instruction. if the instruction could not be decoded then
	// Instruction.Defn is nil but Instruction.Word is valid
	Instruction instructions.Instruction

	// whether the instruction is waiting for a key press. the instruction
	// will be executed again on the next step
	KeyWait bool

	// whether a skip instruction caused the next instruction to be skipped or
	// whether a draw instruction caused a collision
	Taken bool

	// whether the instruction completed. false if the instruction caused an
	// error
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if !r.Final {
		return fmt.Sprintf("%#03x: %s (incomplete)", r.Address, r.Instruction)
	}
	if r.KeyWait {
		return fmt.Sprintf("%#03x: %s (waiting)", r.Address, r.Instruction)
	}
	return fmt.Sprintf("%#03x: %s", r.Address, r.Instruction)
}
