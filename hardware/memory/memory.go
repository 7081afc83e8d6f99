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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
)

// Memory layout.
const (
	Size          = 4096
	ProgramOrigin = 0x200
	MaxROMSize    = Size - ProgramOrigin
)

// Sentinal errors.
const (
	// the first value is one of the AccessType values and the second is the
	// address
	OutOfBounds = "memory: out of bounds access: %s at %#04x"

	// the value is the size of the ROM
	RomTooLarge = "memory: rom too large: %d bytes (maximum %d)"
)

// AccessType says how memory was being accessed when an error occurred.
type AccessType string

// List of valid AccessType values.
const (
	AccessRead     AccessType = "read"
	AccessWrite    AccessType = "write"
	AccessReserved AccessType = "write to reserved region"
	AccessFetch    AccessType = "instruction fetch"
)

// Memory is the memory of the CHIP-8 machine.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The font is installed and the program region is empty.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%d bytes, program origin %#03x", Size, ProgramOrigin)
}

// Reset clears memory and reinstalls the font. The program region is cleared.
func (mem *Memory) Reset() {
	clear(mem.data[:])
	copy(mem.data[FontAddress:], font[:])
}

// LoadROM copies the data into the program region. Memory is unchanged if
// the data is too large.
func (mem *Memory) LoadROM(data []uint8) error {
	if len(data) > MaxROMSize {
		return curated.Errorf(RomTooLarge, len(data), MaxROMSize)
	}
	clear(mem.data[ProgramOrigin:])
	copy(mem.data[ProgramOrigin:], data)
	return nil
}

// Read implements the bus.Memory interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= Size {
		return 0, curated.Errorf(OutOfBounds, AccessRead, address)
	}
	return mem.data[address], nil
}

// Write implements the bus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	if int(address) >= Size {
		return curated.Errorf(OutOfBounds, AccessWrite, address)
	}
	if address < ProgramOrigin {
		return curated.Errorf(OutOfBounds, AccessReserved, address)
	}
	mem.data[address] = data
	return nil
}

// Fetch implements the bus.Memory interface.
func (mem *Memory) Fetch(address uint16) (uint16, error) {
	if address&0x01 != 0 || int(address)+1 >= Size {
		return 0, curated.Errorf(OutOfBounds, AccessFetch, address)
	}
	return uint16(mem.data[address])<<8 | uint16(mem.data[address+1]), nil
}
