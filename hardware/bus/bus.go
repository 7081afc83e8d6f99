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

// Package bus defines the interfaces through which the CPU reaches the other
// parts of the machine. The CPU package does not depend on the concrete
// memory, frame buffer or input types, which makes it easy to test the CPU
// with simple mock implementations.
package bus

// Memory is the CPU's view of memory.
type Memory interface {
	// Read a single byte. Reads from anywhere in memory are allowed
	Read(address uint16) (uint8, error)

	// Write a single byte. Writes to the reserved region are not allowed
	Write(address uint16, data uint8) error

	// Fetch the big-endian instruction word at address. The address must be
	// even and the whole word must be within memory
	Fetch(address uint16) (uint16, error)
}

// Display is the CPU's view of the frame buffer.
type Display interface {
	Clear()

	// Draw XORs the sprite onto the display and returns true if any set cell
	// was cleared
	Draw(x int, y int, sprite []uint8) bool
}

// Keypad is the CPU's view of the sixteen key input latch.
type Keypad interface {
	IsPressed(key uint8) bool

	// the state of every key at the moment of the call
	Snapshot() [16]bool
}

// Timers is the CPU's view of the delay and sound timers.
type Timers interface {
	Delay() uint8
	SetDelay(v uint8)
	SetSound(v uint8)
}
