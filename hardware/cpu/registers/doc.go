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

// Package registers implements the registers of the CHIP-8 CPU. The Register
// type is used for the sixteen 8-bit general purpose registers and the Wide
// type is used for the 16-bit index register and program counter.
//
// Arithmetic on registers returns the carry or borrow state so that the
// caller can decide whether, and when, to write it to the flag register.
package registers
