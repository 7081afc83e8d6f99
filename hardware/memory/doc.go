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

// Package memory implements the 4096 bytes of CHIP-8 memory.
//
// The first 512 bytes are reserved for the interpreter. The built in hex font
// is stored in this region, starting at FontAddress. Programs are loaded at
// ProgramOrigin and cannot write to the reserved region.
//
// Errors are curated errors. Memory access errors use the OutOfBounds pattern
// and loading a program that is too large uses the RomTooLarge pattern.
package memory
