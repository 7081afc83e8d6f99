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

// Package timers implements the delay and sound timers of the CHIP-8
// machine. Both timers count down toward zero at 60Hz, independently of the
// rate at which instructions are executed.
package timers

import "fmt"

// TickRate is the number of times per second the timers are decremented.
const TickRate = 60

// Timers holds the current value of the delay and sound timers.
type Timers struct {
	delay uint8
	sound uint8
}

func (tmr *Timers) String() string {
	return fmt.Sprintf("DT=%#02x ST=%#02x", tmr.delay, tmr.sound)
}

// Reset both timers to zero.
func (tmr *Timers) Reset() {
	tmr.delay = 0
	tmr.sound = 0
}

// Tick decrements both timers. A timer that is already zero is unchanged.
func (tmr *Timers) Tick() {
	if tmr.delay > 0 {
		tmr.delay--
	}
	if tmr.sound > 0 {
		tmr.sound--
	}
}

// Delay returns the current value of the delay timer.
func (tmr *Timers) Delay() uint8 {
	return tmr.delay
}

// Sound returns the current value of the sound timer.
func (tmr *Timers) Sound() uint8 {
	return tmr.sound
}

// SetDelay sets the delay timer.
func (tmr *Timers) SetDelay(v uint8) {
	tmr.delay = v
}

// SetSound sets the sound timer.
func (tmr *Timers) SetSound(v uint8) {
	tmr.sound = v
}

// SoundActive returns true if the sound timer is not zero. The host should
// be making a tone while this is true.
func (tmr *Timers) SoundActive() bool {
	return tmr.sound > 0
}
