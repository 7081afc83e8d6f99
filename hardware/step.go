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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/logger"
)

// Step the emulation forward one CPU instruction.
func (m *Machine) Step() error {
	// count is incremented before the instruction so that the random number
	// generator produces a different value for every instruction
	m.instructionCount++

	err := m.CPU.ExecuteInstruction()
	if err != nil {
		// the error will be repeated by every subsequent Step() so only log
		// the first instance
		if !curated.Is(err, cpu.Halted) {
			logger.Log(m.Instance, "hardware", err)
		}
		return err
	}

	return nil
}

// TickTimers decrements the delay and sound timers.
func (m *Machine) TickTimers() {
	m.Timers.Tick()
}
