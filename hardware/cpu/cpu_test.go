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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/test"
)

type counter struct {
	n uint64
}

func (c *counter) InstructionCount() uint64 {
	return c.n
}

// the CPU and the parts of the machine it is connected to
type rig struct {
	mc      *cpu.CPU
	mem     *memory.Memory
	fb      *framebuffer.FrameBuffer
	keys    *input.Latch
	tmr     *timers.Timers
	ins     *instance.Instance
	counter *counter
}

func newRig(t *testing.T, program ...uint16) *rig {
	t.Helper()

	r := &rig{
		mem:     memory.NewMemory(),
		fb:      framebuffer.NewFrameBuffer(framebuffer.Width, framebuffer.Height),
		keys:    &input.Latch{},
		tmr:     &timers.Timers{},
		counter: &counter{},
	}
	r.ins = instance.NewInstance(r.counter, nil)
	r.ins.Label = instance.Test
	r.ins.Normalise()

	rom := make([]uint8, 0, len(program)*2)
	for _, w := range program {
		rom = append(rom, uint8(w>>8), uint8(w))
	}
	test.DemandSuccess(t, r.mem.LoadROM(rom))

	r.mc = cpu.NewCPU(r.ins, r.mem, r.fb, r.keys, r.tmr)
	return r
}

func (r *rig) step(t *testing.T) {
	t.Helper()
	r.counter.n++
	err := r.mc.ExecuteInstruction()
	if err != nil {
		t.Fatalf("error during CPU step (%v)\n", err)
	}
}

func (r *rig) steps(t *testing.T, n int) {
	t.Helper()
	for range n {
		r.step(t)
	}
}

func TestLoadImmediate(t *testing.T) {
	r := newRig(t, 0x6a02, 0x600c)
	r.steps(t, 2)
	test.ExpectEquality(t, r.mc.V[0xa].Value(), 2)
	test.ExpectEquality(t, r.mc.V[0x0].Value(), 12)
	test.ExpectEquality(t, r.mc.PC.Address(), memory.ProgramOrigin+4)
	test.ExpectSuccess(t, r.mc.HasHalted())
	test.ExpectSuccess(t, r.mc.LastResult.Final)
	test.ExpectEquality(t, r.mc.LastResult.Address, memory.ProgramOrigin+2)
}

func TestStackDepth(t *testing.T) {
	// call the same address repeatedly
	r := newRig(t, 0x2200)
	for range cpu.StackDepth {
		r.step(t)
	}
	test.ExpectEquality(t, r.mc.SP(), cpu.StackDepth)
	test.ExpectEquality(t, len(r.mc.CallStack()), cpu.StackDepth)

	err := r.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, cpu.ExecutionError))
	test.ExpectSuccess(t, curated.Has(err, cpu.StackOverflow))
	test.ExpectFailure(t, r.mc.LastResult.Final)

	// the CPU is halted until reset
	err = r.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, cpu.Halted))
	test.ExpectSuccess(t, curated.Has(err, cpu.StackOverflow))
	test.ExpectFailure(t, r.mc.HasHalted())

	r.mc.Reset()
	test.ExpectSuccess(t, r.mc.HasHalted())
	test.ExpectEquality(t, r.mc.SP(), 0)
	r.step(t)
}

func TestCallAndReturn(t *testing.T) {
	// 0x200 CALL 0x206
	// 0x202 LD V1, 0x01
	// 0x204 JP 0x204
	// 0x206 LD V2, 0x02
	// 0x208 RET
	r := newRig(t, 0x2206, 0x6101, 0x1204, 0x6202, 0x00ee)
	r.step(t)
	test.ExpectEquality(t, r.mc.PC.Address(), 0x206)
	test.ExpectEquality(t, r.mc.CallStack()[0], 0x202)
	r.steps(t, 2)
	test.ExpectEquality(t, r.mc.PC.Address(), 0x202)
	test.ExpectEquality(t, r.mc.SP(), 0)
	r.steps(t, 2)
	test.ExpectEquality(t, r.mc.V[1].Value(), 1)
	test.ExpectEquality(t, r.mc.V[2].Value(), 2)
	test.ExpectEquality(t, r.mc.PC.Address(), 0x204)
}

func TestStackUnderflow(t *testing.T) {
	r := newRig(t, 0x00ee)
	err := r.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, cpu.StackUnderflow))
	test.ExpectEquality(t, err.Error(), "cpu: execution error at 0x200 (opcode 0x00ee): stack underflow: return with empty stack")
}

func TestUnknownOpcode(t *testing.T) {
	r := newRig(t, 0x6001, 0x5121)
	r.step(t)
	err := r.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, instructions.UnknownOpcode))
	test.ExpectEquality(t, err.Error(), "cpu: execution error at 0x202 (opcode 0x5121): unknown opcode: 0x5121")

	// register state is preserved for the host to display
	test.ExpectEquality(t, r.mc.V[0].Value(), 1)
}

func TestMisalignedFetch(t *testing.T) {
	r := newRig(t, 0x1201)
	r.step(t)
	err := r.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, memory.OutOfBounds))
}

func TestFetchPastEnd(t *testing.T) {
	r := newRig(t, 0x1ffe)
	r.step(t)

	// the last word of memory is empty, which is a SYS instruction
	r.step(t)
	err := r.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, memory.OutOfBounds))
}

func TestSkips(t *testing.T) {
	// 0x200 LD V0, 0x05
	// 0x202 SE V0, 0x05    skip
	// 0x204 LD V1, 0xff
	// 0x206 SNE V0, 0x05   no skip
	// 0x208 LD V2, 0x01
	// 0x20a SE V0, V1      no skip
	// 0x20c LD V3, 0x01
	// 0x20e SNE V0, V1     skip
	// 0x210 LD V4, 0xff
	r := newRig(t, 0x6005, 0x3005, 0x61ff, 0x4005, 0x6201, 0x5010, 0x6301, 0x9010, 0x64ff)
	r.steps(t, 2)
	test.ExpectSuccess(t, r.mc.LastResult.Taken)
	test.ExpectEquality(t, r.mc.PC.Address(), 0x206)
	r.steps(t, 2)
	test.ExpectEquality(t, r.mc.V[2].Value(), 1)
	r.steps(t, 2)
	test.ExpectEquality(t, r.mc.V[3].Value(), 1)
	r.step(t)
	test.ExpectEquality(t, r.mc.PC.Address(), 0x212)
	test.ExpectEquality(t, r.mc.V[1].Value(), 0)
	test.ExpectEquality(t, r.mc.V[4].Value(), 0)
}

func TestArithmetic(t *testing.T) {
	// ADD with carry
	r := newRig(t, 0x60ff, 0x6102, 0x8014)
	r.steps(t, 3)
	test.ExpectEquality(t, r.mc.V[0].Value(), 0x01)
	test.ExpectEquality(t, r.mc.V[0xf].Value(), 1)

	// ADD without carry
	r = newRig(t, 0x6001, 0x6102, 0x8014)
	r.steps(t, 3)
	test.ExpectEquality(t, r.mc.V[0].Value(), 0x03)
	test.ExpectEquality(t, r.mc.V[0xf].Value(), 0)

	// ADD immediate does not affect the flag
	r = newRig(t, 0x6f05, 0x70ff, 0x7002)
	r.steps(t, 3)
	test.ExpectEquality(t, r.mc.V[0].Value(), 0x01)
	test.ExpectEquality(t, r.mc.V[0xf].Value(), 0x05)

	// SUB with and without borrow
	r = newRig(t, 0x6005, 0x6103, 0x8015, 0x8015, 0x8015)
	r.steps(t, 3)
	test.ExpectEquality(t, r.mc.V[0].Value(), 0x02)
	test.ExpectEquality(t, r.mc.V[0xf].Value(), 1)
	r.step(t)
	test.ExpectEquality(t, r.mc.V[0].Value(), 0xff)
	test.ExpectEquality(t, r.mc.V[0xf].Value(), 0)

	// SUBN
	r = newRig(t, 0x6003, 0x6105, 0x8017)
	r.steps(t, 3)
	test.ExpectEquality(t, r.mc.V[0].Value(), 0x02)
	test.ExpectEquality(t, r.mc.V[0xf].Value(), 1)
}

func TestFlagRegisterAsDestination(t *testing.T) {
	// the flag is written after the result
	r := newRig(t, 0x6fff, 0x6102, 0x8f14)
	r.steps(t, 3)
	test.ExpectEquality(t, r.mc.V[0xf].Value(), 1)

	r = newRig(t, 0x6f01, 0x6102, 0x8f15)
	r.steps(t, 3)
	test.ExpectEquality(t, r.mc.V[0xf].Value(), 0)
}

func TestShifts(t *testing.T) {
	// VY is shifted into VX
	r := newRig(t, 0x6003, 0x6181, 0x8016, 0x801e)
	r.steps(t, 3)
	test.ExpectEquality(t, r.mc.V[0].Value(), 0x40)
	test.ExpectEquality(t, r.mc.V[0xf].Value(), 1)
	r.step(t)
	test.ExpectEquality(t, r.mc.V[0].Value(), 0x02)
	test.ExpectEquality(t, r.mc.V[0xf].Value(), 1)

	// shift in place quirk
	r = newRig(t, 0x6003, 0x6181, 0x8016, 0x801e)
	test.DemandSuccess(t, r.ins.Prefs.Quirks.ShiftInPlace.Set(true))
	r.steps(t, 3)
	test.ExpectEquality(t, r.mc.V[0].Value(), 0x01)
	test.ExpectEquality(t, r.mc.V[0xf].Value(), 1)
	r.step(t)
	test.ExpectEquality(t, r.mc.V[0].Value(), 0x02)
	test.ExpectEquality(t, r.mc.V[0xf].Value(), 0)
}

func TestLogic(t *testing.T) {
	r := newRig(t, 0x6ff0, 0x60f0, 0x610f, 0x8011, 0x6f01, 0x8012, 0x6f01, 0x8013)
	r.steps(t, 4)
	test.ExpectEquality(t, r.mc.V[0].Value(), 0xff)
	test.ExpectEquality(t, r.mc.V[0xf].Value(), 0)
	r.steps(t, 2)
	test.ExpectEquality(t, r.mc.V[0].Value(), 0x0f)
	test.ExpectEquality(t, r.mc.V[0xf].Value(), 0)
	r.steps(t, 2)
	test.ExpectEquality(t, r.mc.V[0].Value(), 0x00)
	test.ExpectEquality(t, r.mc.V[0xf].Value(), 0)

	// keep VF quirk
	r = newRig(t, 0x6f07, 0x60f0, 0x610f, 0x8011)
	test.DemandSuccess(t, r.ins.Prefs.Quirks.KeepVF.Set(true))
	r.steps(t, 4)
	test.ExpectEquality(t, r.mc.V[0].Value(), 0xff)
	test.ExpectEquality(t, r.mc.V[0xf].Value(), 0x07)
}

func TestJumps(t *testing.T) {
	r := newRig(t, 0x6004, 0x6208, 0xb300)
	r.steps(t, 3)
	test.ExpectEquality(t, r.mc.PC.Address(), 0x304)

	// jump with VX quirk. the X of B300 is 3
	r = newRig(t, 0x6004, 0x6308, 0xb300)
	test.DemandSuccess(t, r.ins.Prefs.Quirks.JumpWithVX.Set(true))
	r.steps(t, 3)
	test.ExpectEquality(t, r.mc.PC.Address(), 0x308)
}

func TestDraw(t *testing.T) {
	// LD V0, 0x00 ; LD F, V0 ; DRW V0, V0, 5 ; DRW V0, V0, 5
	r := newRig(t, 0x6000, 0xf029, 0xd005, 0xd005)
	r.steps(t, 3)
	test.ExpectEquality(t, r.mc.I.Address(), memory.GlyphAddress(0))
	test.ExpectEquality(t, r.mc.V[0xf].Value(), 0)
	test.ExpectSuccess(t, r.fb.Pixel(0, 0))
	test.ExpectSuccess(t, r.fb.Pixel(3, 4))
	test.ExpectFailure(t, r.fb.Pixel(1, 1))

	r.step(t)
	test.ExpectEquality(t, r.mc.V[0xf].Value(), 1)
	test.ExpectSuccess(t, r.mc.LastResult.Taken)
	test.ExpectFailure(t, r.fb.Pixel(0, 0))

	// CLS
	r = newRig(t, 0xa050, 0xd005, 0x00e0)
	r.steps(t, 2)
	test.ExpectSuccess(t, r.fb.Pixel(0, 0))
	r.step(t)
	test.ExpectFailure(t, r.fb.Pixel(0, 0))
}

func TestDrawOutOfBounds(t *testing.T) {
	// LD I, 0xffe ; DRW V0, V0, 3
	r := newRig(t, 0xaffe, 0xd003)
	r.step(t)
	err := r.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, memory.OutOfBounds))
}

func TestReservedWrite(t *testing.T) {
	// LD I, 0x050 ; LD [I], V0
	r := newRig(t, 0xa050, 0xf055)
	r.step(t)
	err := r.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, memory.OutOfBounds))

	// font is unchanged
	d, _ := r.mem.Read(memory.FontAddress)
	test.ExpectEquality(t, d, 0xf0)
}

func TestBCD(t *testing.T) {
	// LD V5, 0xfe ; LD I, 0x300 ; LD B, V5
	r := newRig(t, 0x65fe, 0xa300, 0xf533)
	r.steps(t, 3)
	for i, v := range []uint8{2, 5, 4} {
		d, err := r.mem.Read(0x300 + uint16(i))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, d, v)
	}
}

func TestStoreAndLoad(t *testing.T) {
	// LD V0, 0x01 ; LD V1, 0x02 ; LD V2, 0x03 ; LD I, 0x300 ; LD [I], V2
	// LD I, 0x300 ; LD V1, [I]
	r := newRig(t, 0x6001, 0x6102, 0x6203, 0xa300, 0xf255, 0xa300, 0x6000, 0x6100, 0xf165)
	r.steps(t, 5)
	test.ExpectEquality(t, r.mc.I.Address(), 0x303)
	for i, v := range []uint8{1, 2, 3} {
		d, _ := r.mem.Read(0x300 + uint16(i))
		test.ExpectEquality(t, d, v)
	}
	r.steps(t, 4)
	test.ExpectEquality(t, r.mc.V[0].Value(), 1)
	test.ExpectEquality(t, r.mc.V[1].Value(), 2)
	test.ExpectEquality(t, r.mc.I.Address(), 0x302)

	// index unchanged quirk
	r = newRig(t, 0xa300, 0xf255)
	test.DemandSuccess(t, r.ins.Prefs.Quirks.IndexUnchanged.Set(true))
	r.steps(t, 2)
	test.ExpectEquality(t, r.mc.I.Address(), 0x300)
}

func TestIndexAdd(t *testing.T) {
	r := newRig(t, 0xa300, 0x6010, 0xf01e)
	r.steps(t, 3)
	test.ExpectEquality(t, r.mc.I.Address(), 0x310)
}

func TestTimers(t *testing.T) {
	// LD V0, 0x10 ; LD DT, V0 ; LD ST, V0 ; LD V1, DT
	r := newRig(t, 0x6010, 0xf015, 0xf018, 0xf107)
	r.steps(t, 3)
	test.ExpectEquality(t, r.tmr.Delay(), 0x10)
	test.ExpectEquality(t, r.tmr.Sound(), 0x10)
	r.tmr.Tick()
	r.step(t)
	test.ExpectEquality(t, r.mc.V[1].Value(), 0x0f)
}

func TestKeySkips(t *testing.T) {
	// LD V0, 0x0a ; SKP V0 ; LD V1, 0x01 ; SKNP V0 ; LD V2, 0x01
	r := newRig(t, 0x600a, 0xe09e, 0x6101, 0xe0a1, 0x6201)
	r.keys.SetKey(0xa, true)
	r.steps(t, 3)
	test.ExpectEquality(t, r.mc.V[1].Value(), 0)
	test.ExpectEquality(t, r.mc.PC.Address(), 0x208)
	r.step(t)
	test.ExpectEquality(t, r.mc.V[2].Value(), 1)
}

func TestKeyWait(t *testing.T) {
	// LD V3, K ; LD V4, 0x01
	r := newRig(t, 0xf30a, 0x6401)

	// key already held when the instruction is first reached
	r.keys.SetKey(5, true)
	r.step(t)
	test.ExpectSuccess(t, r.mc.WaitingForKey())
	test.ExpectSuccess(t, r.mc.LastResult.KeyWait)
	test.ExpectEquality(t, r.mc.PC.Address(), memory.ProgramOrigin)

	// still held. not a new press
	r.step(t)
	test.ExpectSuccess(t, r.mc.WaitingForKey())
	test.ExpectEquality(t, r.mc.PC.Address(), memory.ProgramOrigin)

	// released
	r.keys.SetKey(5, false)
	r.step(t)
	test.ExpectSuccess(t, r.mc.WaitingForKey())

	// pressed
	r.keys.SetKey(5, true)
	r.step(t)
	test.ExpectFailure(t, r.mc.WaitingForKey())
	test.ExpectFailure(t, r.mc.LastResult.KeyWait)
	test.ExpectEquality(t, r.mc.V[3].Value(), 5)
	test.ExpectEquality(t, r.mc.PC.Address(), memory.ProgramOrigin+2)

	r.step(t)
	test.ExpectEquality(t, r.mc.V[4].Value(), 1)
}

func TestRandom(t *testing.T) {
	// RND V0, 0x0f
	a := newRig(t, 0xc00f)
	b := newRig(t, 0xc00f)
	a.step(t)
	b.step(t)
	test.ExpectEquality(t, a.mc.V[0].Value()&0xf0, 0)
	test.ExpectEquality(t, a.mc.V[0].Value(), b.mc.V[0].Value())

	// RND V0, 0x00
	r := newRig(t, 0xc000)
	r.step(t)
	test.ExpectEquality(t, r.mc.V[0].Value(), 0)
}

func TestSYS(t *testing.T) {
	r := newRig(t, 0x0123, 0x6001)
	r.steps(t, 2)
	test.ExpectEquality(t, r.mc.V[0].Value(), 1)
	test.ExpectEquality(t, r.mc.PC.Address(), memory.ProgramOrigin+4)
}

func TestRandomState(t *testing.T) {
	r := newRig(t)
	test.DemandSuccess(t, r.ins.Prefs.RandomState.Set(true))
	r.mc.Reset()

	var nonZero bool
	for i := range r.mc.V {
		nonZero = nonZero || r.mc.V[i].Value() != 0
	}
	test.ExpectSuccess(t, nonZero)
	test.ExpectEquality(t, r.mc.PC.Address(), memory.ProgramOrigin)
}
