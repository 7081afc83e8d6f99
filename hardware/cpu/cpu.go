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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/bus"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// CPU implements the CHIP-8 interpreter. Register logic is implemented by the
// types in the registers sub-package.
type CPU struct {
	instance *instance.Instance

	V  [16]registers.Register
	I  registers.Wide
	PC registers.Wide

	stack callStack

	mem     bus.Memory
	display bus.Display
	keypad  bus.Keypad
	timers  bus.Timers

	// last result. the Final field is false if the instruction failed
	LastResult execution.Result

	// the state of the keypad at the previous attempt of the key-wait
	// instruction. only valid if waiting is true
	waiting     bool
	keySnapshot [16]bool

	// the error that halted the CPU. requires a Reset()
	halted error
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// is reset before it is returned.
func NewCPU(instance *instance.Instance, mem bus.Memory, display bus.Display, keypad bus.Keypad, timers bus.Timers) *CPU {
	mc := &CPU{
		instance: instance,
		mem:      mem,
		display:  display,
		keypad:   keypad,
		timers:   timers,
		I:        registers.NewIndex(0),
		PC:       registers.NewProgramCounter(memory.ProgramOrigin),
	}
	for i := range mc.V {
		mc.V[i] = registers.NewRegister(0, fmt.Sprintf("V%X", i))
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s=%s %s=%s SP=%d", mc.PC.Label(), mc.PC, mc.I.Label(), mc.I, mc.stack.depth))
	for _, r := range mc.V {
		s.WriteString(fmt.Sprintf(" %s=%s", r.Label(), r))
	}
	return s.String()
}

// Reset reinitialises all registers and the call stack. The program counter
// is set to the program origin.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.halted = nil
	mc.waiting = false
	mc.stack.reset()

	mc.PC.Load(memory.ProgramOrigin)
	mc.I.Load(0)

	// checking for instance == nil because it's possible for NewCPU to be
	// called with a nil instance (test package)
	random := mc.instance != nil && mc.instance.Prefs.RandomState.Get().(bool)
	for i := range mc.V {
		if random {
			mc.V[i].Load(uint8(mc.instance.Random.NoRewind(0x100)))
		} else {
			mc.V[i].Load(0)
		}
	}
}

// SP returns the number of return addresses on the call stack.
func (mc *CPU) SP() int {
	return mc.stack.depth
}

// CallStack returns the return addresses on the call stack. The most recent
// call is last.
func (mc *CPU) CallStack() []uint16 {
	return mc.stack.list()
}

// HasHalted returns the error that halted the CPU or nil if the CPU has not
// halted.
func (mc *CPU) HasHalted() error {
	return mc.halted
}

// WaitingForKey returns true if the most recent instruction was the key-wait
// instruction and no key has been pressed yet.
func (mc *CPU) WaitingForKey() bool {
	return mc.waiting
}

// ExecuteInstruction steps the CPU forward one instruction.
func (mc *CPU) ExecuteInstruction() error {
	if mc.halted != nil {
		return curated.Errorf(Halted, mc.halted)
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	word, err := mc.mem.Fetch(mc.PC.Address())
	if err != nil {
		return mc.halt(word, err)
	}
	mc.PC.Add(2)

	ins, err := instructions.Decode(word)
	mc.LastResult.Instruction = ins
	if err != nil {
		return mc.halt(word, err)
	}

	if err := mc.execute(ins); err != nil {
		return mc.halt(word, err)
	}

	mc.LastResult.Final = true

	return nil
}

func (mc *CPU) halt(word uint16, err error) error {
	mc.halted = curated.Errorf(ExecutionError, mc.LastResult.Address, word, err)
	return mc.halted
}

// skip the next instruction if the condition is true
func (mc *CPU) skip(condition bool) {
	if condition {
		mc.PC.Add(2)
		mc.LastResult.Taken = true
	}
}

// write to the flag register
func (mc *CPU) flag(set bool) {
	if set {
		mc.V[0xf].Load(1)
	} else {
		mc.V[0xf].Load(0)
	}
}
