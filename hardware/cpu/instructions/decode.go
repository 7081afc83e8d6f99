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

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
)

// UnknownOpcode is returned by Decode() when the word does not match any
// definition. The value of the error is the instruction word.
const UnknownOpcode = "unknown opcode: %#04x"

// Instruction is a decoded instruction word. The operand fields are always
// extracted from the word but only those indicated by Defn.Operands are
// meaningful.
type Instruction struct {
	Word uint16
	Defn *Definition

	X   uint8
	Y   uint8
	N   uint8
	KK  uint8
	NNN uint16
}

// Decode the instruction word. Returns an UnknownOpcode error if the word is
// not a valid CHIP-8 instruction.
func Decode(word uint16) (Instruction, error) {
	for _, d := range table[word>>12] {
		if word&d.Mask == d.Value {
			return Instruction{
				Word: word,
				Defn: d,
				X:    uint8(word>>8) & 0x0f,
				Y:    uint8(word>>4) & 0x0f,
				N:    uint8(word) & 0x0f,
				KK:   uint8(word),
				NNN:  word & 0x0fff,
			}, nil
		}
	}
	return Instruction{Word: word}, curated.Errorf(UnknownOpcode, word)
}

// Operator returns the instruction's operator. The Instruction must have been
// decoded successfully.
func (ins Instruction) Operator() Operator {
	return ins.Defn.Operator
}

// String returns the instruction in the conventional assembly notation.
func (ins Instruction) String() string {
	if ins.Defn == nil {
		return fmt.Sprintf("?? %#04x", ins.Word)
	}

	m := ins.Defn.Mnemonic

	// instructions where the operands are not simply listed in order
	switch ins.Defn.Operator {
	case LDI:
		return fmt.Sprintf("%s I, %#03x", m, ins.NNN)
	case JPV0:
		return fmt.Sprintf("%s V0, %#03x", m, ins.NNN)
	case LDVxDT:
		return fmt.Sprintf("%s V%X, DT", m, ins.X)
	case LDKey:
		return fmt.Sprintf("%s V%X, K", m, ins.X)
	case LDDTVx:
		return fmt.Sprintf("%s DT, V%X", m, ins.X)
	case LDSTVx:
		return fmt.Sprintf("%s ST, V%X", m, ins.X)
	case ADDI:
		return fmt.Sprintf("%s I, V%X", m, ins.X)
	case LDF:
		return fmt.Sprintf("%s F, V%X", m, ins.X)
	case LDB:
		return fmt.Sprintf("%s B, V%X", m, ins.X)
	case STORE:
		return fmt.Sprintf("%s [I], V%X", m, ins.X)
	case LOAD:
		return fmt.Sprintf("%s V%X, [I]", m, ins.X)
	}

	switch ins.Defn.Operands {
	case OperandsNNN:
		return fmt.Sprintf("%s %#03x", m, ins.NNN)
	case OperandsX:
		return fmt.Sprintf("%s V%X", m, ins.X)
	case OperandsXKK:
		return fmt.Sprintf("%s V%X, %#02x", m, ins.X, ins.KK)
	case OperandsXY:
		return fmt.Sprintf("%s V%X, V%X", m, ins.X, ins.Y)
	case OperandsXYN:
		return fmt.Sprintf("%s V%X, V%X, %d", m, ins.X, ins.Y, ins.N)
	}

	return m
}
