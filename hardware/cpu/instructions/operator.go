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

// Operator identifies one of the CHIP-8 instruction families.
type Operator int

// List of valid operators.
const (
	SYS Operator = iota
	CLS
	RET
	JP
	CALL
	SEByte
	SNEByte
	SEReg
	LDByte
	ADDByte
	LDReg
	OR
	AND
	XOR
	ADDReg
	SUB
	SHR
	SUBN
	SHL
	SNEReg
	LDI
	JPV0
	RND
	DRW
	SKP
	SKNP
	LDVxDT
	LDKey
	LDDTVx
	LDSTVx
	ADDI
	LDF
	LDB
	STORE
	LOAD

	numOperators
)
