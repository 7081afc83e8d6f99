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

// Package instructions defines the CHIP-8 instruction set and decodes 16-bit
// instruction words into Instruction values.
//
// Decoding is a table lookup. The definitions are grouped by the first nibble
// of the instruction word and the first definition in the group where
//
//	word & Mask == Value
//
// is the matching definition. The mask of a definition selects the bits that
// identify it, so families that share a first nibble are distinguished by the
// last nibble (the 8XY_ family) or the last byte (the EX__ and FX__ families).
//
// Words that do not match any definition produce an UnknownOpcode error. The
// decoder is a pure function and safe for concurrent use.
package instructions
