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

// Package cpu emulates the CHIP-8 interpreter. Each call to
// ExecuteInstruction() fetches, decodes and executes one instruction.
//
// The CPU reaches memory, the display, the keypad and the timers through the
// interfaces in the bus package.
//
// Errors are not recoverable. Once an instruction has failed the CPU is
// halted and every further call to ExecuteInstruction() returns an error with
// the Halted pattern, wrapping the original error, until Reset() is called.
//
// The key-wait instruction (FX0A) does not block. The CPU notes the state of
// the keypad and rewinds the program counter so that the same instruction is
// executed on the next call. The instruction completes when a key that was
// released at the previous attempt is now pressed.
package cpu
