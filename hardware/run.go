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
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/timers"
)

// MaxElapsed is the most time that a single call to Run() will emulate. Any
// more than this is discarded, which prevents a long pause in the host (a
// window being dragged for example) from causing a burst of instructions.
const MaxElapsed = time.Second

// FramePeriod is the duration of one frame at the timer rate.
const FramePeriod = time.Second / timers.TickRate

// Run the emulation for the amount of time given. Instructions and timer ticks
// are interleaved in the order that they would happen on real hardware.
//
// Run() does nothing if no program has been attached. If the CPU halts the
// error is returned and the remaining time is discarded.
func (m *Machine) Run(elapsed time.Duration) error {
	if m.rom == nil {
		return nil
	}

	if err := m.CPU.HasHalted(); err != nil {
		return m.CPU.ExecuteInstruction()
	}

	elapsed = min(elapsed, MaxElapsed)
	m.stepDebt += elapsed
	m.tickDebt += elapsed

	stepPeriod := time.Second / time.Duration(m.Instance.Prefs.ClockRate.Get().(int))

	for m.stepDebt >= stepPeriod || m.tickDebt >= FramePeriod {
		// the event that is owed the most time is the one that would have
		// happened first
		if m.tickDebt >= FramePeriod && m.tickDebt-FramePeriod >= m.stepDebt-stepPeriod {
			m.tickDebt -= FramePeriod
			m.TickTimers()
			continue // for loop
		}

		m.stepDebt -= stepPeriod
		if err := m.Step(); err != nil {
			m.stepDebt = 0
			m.tickDebt = 0
			return err
		}
	}

	return nil
}

// RunForFrameCount runs the emulation for the specified number of frames. The
// continueCheck function is called at the end of every frame and can be nil.
func (m *Machine) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	state := govern.Running
	for frame := 0; frame < numFrames && state != govern.Ending; {
		switch state {
		case govern.Running:
			if err := m.Run(FramePeriod); err != nil {
				return err
			}
			frame++
		case govern.Paused:
		default:
			return curated.Errorf("hardware: unsupported emulation state (%s) in RunForFrameCount() function", state)
		}

		var err error
		state, err = continueCheck(frame)
		if err != nil {
			return err
		}
	}

	return nil
}
