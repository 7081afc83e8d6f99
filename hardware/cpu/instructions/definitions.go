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

// Definition describes one instruction family.
type Definition struct {
	// the instruction word matches this definition when word&Mask == Value
	Mask  uint16
	Value uint16

	Operator Operator
	Mnemonic string
	Operands Operands
}

// the instruction set. the order of definitions within a first-nibble group
// matters only for SYS, which must come after CLS and RET.
var definitions = []Definition{
	{Mask: 0xffff, Value: 0x00e0, Operator: CLS, Mnemonic: "CLS", Operands: OperandsNone},
	{Mask: 0xffff, Value: 0x00ee, Operator: RET, Mnemonic: "RET", Operands: OperandsNone},
	{Mask: 0xf000, Value: 0x0000, Operator: SYS, Mnemonic: "SYS", Operands: OperandsNNN},
	{Mask: 0xf000, Value: 0x1000, Operator: JP, Mnemonic: "JP", Operands: OperandsNNN},
	{Mask: 0xf000, Value: 0x2000, Operator: CALL, Mnemonic: "CALL", Operands: OperandsNNN},
	{Mask: 0xf000, Value: 0x3000, Operator: SEByte, Mnemonic: "SE", Operands: OperandsXKK},
	{Mask: 0xf000, Value: 0x4000, Operator: SNEByte, Mnemonic: "SNE", Operands: OperandsXKK},
	{Mask: 0xf00f, Value: 0x5000, Operator: SEReg, Mnemonic: "SE", Operands: OperandsXY},
	{Mask: 0xf000, Value: 0x6000, Operator: LDByte, Mnemonic: "LD", Operands: OperandsXKK},
	{Mask: 0xf000, Value: 0x7000, Operator: ADDByte, Mnemonic: "ADD", Operands: OperandsXKK},
	{Mask: 0xf00f, Value: 0x8000, Operator: LDReg, Mnemonic: "LD", Operands: OperandsXY},
	{Mask: 0xf00f, Value: 0x8001, Operator: OR, Mnemonic: "OR", Operands: OperandsXY},
	{Mask: 0xf00f, Value: 0x8002, Operator: AND, Mnemonic: "AND", Operands: OperandsXY},
	{Mask: 0xf00f, Value: 0x8003, Operator: XOR, Mnemonic: "XOR", Operands: OperandsXY},
	{Mask: 0xf00f, Value: 0x8004, Operator: ADDReg, Mnemonic: "ADD", Operands: OperandsXY},
	{Mask: 0xf00f, Value: 0x8005, Operator: SUB, Mnemonic: "SUB", Operands: OperandsXY},
	{Mask: 0xf00f, Value: 0x8006, Operator: SHR, Mnemonic: "SHR", Operands: OperandsXY},
	{Mask: 0xf00f, Value: 0x8007, Operator: SUBN, Mnemonic: "SUBN", Operands: OperandsXY},
	{Mask: 0xf00f, Value: 0x800e, Operator: SHL, Mnemonic: "SHL", Operands: OperandsXY},
	{Mask: 0xf00f, Value: 0x9000, Operator: SNEReg, Mnemonic: "SNE", Operands: OperandsXY},
	{Mask: 0xf000, Value: 0xa000, Operator: LDI, Mnemonic: "LD", Operands: OperandsNNN},
	{Mask: 0xf000, Value: 0xb000, Operator: JPV0, Mnemonic: "JP", Operands: OperandsNNN},
	{Mask: 0xf000, Value: 0xc000, Operator: RND, Mnemonic: "RND", Operands: OperandsXKK},
	{Mask: 0xf000, Value: 0xd000, Operator: DRW, Mnemonic: "DRW", Operands: OperandsXYN},
	{Mask: 0xf0ff, Value: 0xe09e, Operator: SKP, Mnemonic: "SKP", Operands: OperandsX},
	{Mask: 0xf0ff, Value: 0xe0a1, Operator: SKNP, Mnemonic: "SKNP", Operands: OperandsX},
	{Mask: 0xf0ff, Value: 0xf007, Operator: LDVxDT, Mnemonic: "LD", Operands: OperandsX},
	{Mask: 0xf0ff, Value: 0xf00a, Operator: LDKey, Mnemonic: "LD", Operands: OperandsX},
	{Mask: 0xf0ff, Value: 0xf015, Operator: LDDTVx, Mnemonic: "LD", Operands: OperandsX},
	{Mask: 0xf0ff, Value: 0xf018, Operator: LDSTVx, Mnemonic: "LD", Operands: OperandsX},
	{Mask: 0xf0ff, Value: 0xf01e, Operator: ADDI, Mnemonic: "ADD", Operands: OperandsX},
	{Mask: 0xf0ff, Value: 0xf029, Operator: LDF, Mnemonic: "LD", Operands: OperandsX},
	{Mask: 0xf0ff, Value: 0xf033, Operator: LDB, Mnemonic: "LD", Operands: OperandsX},
	{Mask: 0xf0ff, Value: 0xf055, Operator: STORE, Mnemonic: "LD", Operands: OperandsX},
	{Mask: 0xf0ff, Value: 0xf065, Operator: LOAD, Mnemonic: "LD", Operands: OperandsX},
}

// definitions grouped by the first nibble of the instruction word
var table [16][]*Definition

func init() {
	for i := range definitions {
		d := &definitions[i]
		table[d.Value>>12] = append(table[d.Value>>12], d)
	}
}
