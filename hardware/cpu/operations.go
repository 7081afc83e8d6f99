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

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
)

// execute the decoded instruction. the program counter has already been
// advanced past the instruction
func (mc *CPU) execute(ins instructions.Instruction) error {
	vx := &mc.V[ins.X]
	vy := mc.V[ins.Y].Value()

	switch ins.Operator() {
	case instructions.SYS:
		// machine code routines are not supported by any interpreter after
		// the COSMAC VIP
		if mc.instance != nil {
			logger.Logf(mc.instance, "cpu", "SYS %#03x ignored", ins.NNN)
		}

	case instructions.CLS:
		mc.display.Clear()

	case instructions.RET:
		ret, err := mc.stack.pop()
		if err != nil {
			return err
		}
		mc.PC.Load(ret)

	case instructions.JP:
		mc.PC.Load(ins.NNN)

	case instructions.CALL:
		if err := mc.stack.push(mc.PC.Address(), ins.NNN); err != nil {
			return err
		}
		mc.PC.Load(ins.NNN)

	case instructions.SEByte:
		mc.skip(vx.Value() == ins.KK)

	case instructions.SNEByte:
		mc.skip(vx.Value() != ins.KK)

	case instructions.SEReg:
		mc.skip(vx.Value() == vy)

	case instructions.SNEReg:
		mc.skip(vx.Value() != vy)

	case instructions.LDByte:
		vx.Load(ins.KK)

	case instructions.ADDByte:
		vx.Add(ins.KK)

	case instructions.LDReg:
		vx.Load(vy)

	case instructions.OR:
		vx.OR(vy)
		mc.logicFlag()

	case instructions.AND:
		vx.AND(vy)
		mc.logicFlag()

	case instructions.XOR:
		vx.XOR(vy)
		mc.logicFlag()

	case instructions.ADDReg:
		mc.flag(vx.Add(vy))

	case instructions.SUB:
		mc.flag(vx.Subtract(vy))

	case instructions.SUBN:
		v := vx.Value()
		vx.Load(vy)
		mc.flag(vx.Subtract(v))

	case instructions.SHR:
		if !mc.shiftInPlace() {
			vx.Load(vy)
		}
		mc.flag(vx.ShiftRight() == 1)

	case instructions.SHL:
		if !mc.shiftInPlace() {
			vx.Load(vy)
		}
		mc.flag(vx.ShiftLeft() == 1)

	case instructions.LDI:
		mc.I.Load(ins.NNN)

	case instructions.JPV0:
		if mc.jumpWithVX() {
			mc.PC.Load(ins.NNN + uint16(vx.Value()))
		} else {
			mc.PC.Load(ins.NNN + uint16(mc.V[0].Value()))
		}

	case instructions.RND:
		var r uint8
		if mc.instance != nil {
			r = uint8(mc.instance.Random.Rewindable(0x100))
		}
		vx.Load(r & ins.KK)

	case instructions.DRW:
		sprite := make([]uint8, ins.N)
		for i := range sprite {
			d, err := mc.mem.Read(mc.I.Address() + uint16(i))
			if err != nil {
				return err
			}
			sprite[i] = d
		}
		collision := mc.display.Draw(int(vx.Value()), int(vy), sprite)
		mc.flag(collision)
		mc.LastResult.Taken = collision

	case instructions.SKP:
		mc.skip(mc.keypad.IsPressed(vx.Value() & 0x0f))

	case instructions.SKNP:
		mc.skip(!mc.keypad.IsPressed(vx.Value() & 0x0f))

	case instructions.LDVxDT:
		vx.Load(mc.timers.Delay())

	case instructions.LDKey:
		mc.waitForKey(vx)

	case instructions.LDDTVx:
		mc.timers.SetDelay(vx.Value())

	case instructions.LDSTVx:
		mc.timers.SetSound(vx.Value())

	case instructions.ADDI:
		mc.I.Add(uint16(vx.Value()))

	case instructions.LDF:
		mc.I.Load(memory.GlyphAddress(vx.Value()))

	case instructions.LDB:
		v := vx.Value()
		for i, d := range []uint8{v / 100, (v / 10) % 10, v % 10} {
			if err := mc.mem.Write(mc.I.Address()+uint16(i), d); err != nil {
				return err
			}
		}

	case instructions.STORE:
		for r := 0; r <= int(ins.X); r++ {
			if err := mc.mem.Write(mc.I.Address()+uint16(r), mc.V[r].Value()); err != nil {
				return err
			}
		}
		mc.indexIncrement(ins.X)

	case instructions.LOAD:
		for r := 0; r <= int(ins.X); r++ {
			d, err := mc.mem.Read(mc.I.Address() + uint16(r))
			if err != nil {
				return err
			}
			mc.V[r].Load(d)
		}
		mc.indexIncrement(ins.X)

	default:
		return fmt.Errorf("cpu: operator not implemented (%s)", ins)
	}

	return nil
}

// quirks are all false if there is no instance

func (mc *CPU) shiftInPlace() bool {
	return mc.instance != nil && mc.instance.Prefs.Quirks.ShiftInPlace.Get().(bool)
}

func (mc *CPU) jumpWithVX() bool {
	return mc.instance != nil && mc.instance.Prefs.Quirks.JumpWithVX.Get().(bool)
}

// the flag register is reset by the logic operations unless the KeepVF quirk
// is set
func (mc *CPU) logicFlag() {
	if mc.instance == nil || !mc.instance.Prefs.Quirks.KeepVF.Get().(bool) {
		mc.V[0xf].Load(0)
	}
}

// the index register is advanced by the store and load operations unless the
// IndexUnchanged quirk is set
func (mc *CPU) indexIncrement(x uint8) {
	if mc.instance == nil || !mc.instance.Prefs.Quirks.IndexUnchanged.Get().(bool) {
		mc.I.Add(uint16(x) + 1)
	}
}

// waitForKey completes when a key that was not pressed at the previous attempt
// is pressed. otherwise the program counter is rewound so that the
// instruction is tried again on the next step
func (mc *CPU) waitForKey(vx *registers.Register) {
	keys := mc.keypad.Snapshot()

	if mc.waiting {
		for k := range keys {
			if keys[k] && !mc.keySnapshot[k] {
				vx.Load(uint8(k))
				mc.waiting = false
				return
			}
		}
	}

	mc.waiting = true
	mc.keySnapshot = keys
	mc.LastResult.KeyWait = true
	mc.PC.Load(mc.LastResult.Address)
}
