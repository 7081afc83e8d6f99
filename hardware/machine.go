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

package hardware

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/logger"
)

// Machine is the root of the emulated hardware.
type Machine struct {
	Instance *instance.Instance

	CPU         *cpu.CPU
	Mem         *memory.Memory
	FrameBuffer *framebuffer.FrameBuffer
	Input       *input.Latch
	Timers      *timers.Timers

	// the program most recently given to AttachROM(). nil if no program has
	// been attached
	rom []uint8

	// the number of instructions executed since the last reset
	instructionCount uint64

	// time owed to the CPU and to the timers. see Run()
	stepDebt time.Duration
	tickDebt time.Duration
}

// NewMachine creates a new machine and everything associated with the
// hardware. The prefs argument can be nil, in which case default preferences
// are used.
func NewMachine(label instance.Label, prefs *preferences.Preferences) *Machine {
	m := &Machine{
		Mem:         memory.NewMemory(),
		FrameBuffer: framebuffer.NewFrameBuffer(framebuffer.Width, framebuffer.Height),
		Input:       &input.Latch{},
		Timers:      &timers.Timers{},
	}

	m.Instance = instance.NewInstance(m, prefs)
	m.Instance.Label = label

	m.CPU = cpu.NewCPU(m.Instance, m.Mem, m.FrameBuffer, m.Input, m.Timers)

	return m
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s %s", m.CPU, m.Timers)
}

// InstructionCount implements the random.Counter interface.
func (m *Machine) InstructionCount() uint64 {
	return m.instructionCount
}

// AttachROM copies the program into memory and resets the machine. If the
// program is too large the machine is left unchanged and the error returned.
func (m *Machine) AttachROM(data []uint8) error {
	if err := m.Mem.LoadROM(data); err != nil {
		return err
	}

	m.rom = make([]uint8, len(data))
	copy(m.rom, data)

	logger.Logf(m.Instance, "hardware", "attached rom (%d bytes)", len(data))

	m.Reset()

	return nil
}

// HasROM returns true if a program has been attached.
func (m *Machine) HasROM() bool {
	return m.rom != nil
}

// Reset the machine to the state immediately after the program was attached.
// Memory is restored to the font and the program. The input latch is owned by
// the host and is not changed.
func (m *Machine) Reset() {
	m.Mem.Reset()
	if m.rom != nil {
		// size was checked by AttachROM()
		_ = m.Mem.LoadROM(m.rom)
	}

	m.CPU.Reset()
	m.Timers.Reset()
	m.FrameBuffer.Clear()

	m.instructionCount = 0
	m.stepDebt = 0
	m.tickDebt = 0

	logger.Log(m.Instance, "hardware", "reset")
}

// Display returns the frame buffer. The host should only read from it.
func (m *Machine) Display() *framebuffer.FrameBuffer {
	return m.FrameBuffer
}

// SoundActive returns true if the sound timer is running.
func (m *Machine) SoundActive() bool {
	return m.Timers.SoundActive()
}

// Err returns the error that halted the CPU. Returns nil if the CPU has not
// halted.
func (m *Machine) Err() error {
	return m.CPU.HasHalted()
}
