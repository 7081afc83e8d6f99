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

// Package input implements the sixteen key input latch of the CHIP-8 machine.
// The host shell writes the latch and the machine reads it.
package input

import (
	"strings"
)

// NumKeys is the number of keys on the CHIP-8 keypad.
const NumKeys = 16

// Latch records the pressed state of each key.
type Latch struct {
	keys [NumKeys]bool
}

func (lat *Latch) String() string {
	s := strings.Builder{}
	for k, p := range lat.keys {
		if p {
			s.WriteString("0123456789ABCDEF"[k : k+1])
		} else {
			s.WriteRune('-')
		}
	}
	return s.String()
}

// Reset releases all keys.
func (lat *Latch) Reset() {
	lat.keys = [NumKeys]bool{}
}

// SetKey records the state of one key. Keys outside the range 0 to 15 are
// ignored.
func (lat *Latch) SetKey(key uint8, pressed bool) {
	if int(key) < NumKeys {
		lat.keys[key] = pressed
	}
}

// SetAll overwrites the state of every key.
func (lat *Latch) SetAll(keys [NumKeys]bool) {
	lat.keys = keys
}

// IsPressed returns true if the key is pressed. Keys outside the range 0 to
// 15 are never pressed.
func (lat *Latch) IsPressed(key uint8) bool {
	if int(key) < NumKeys {
		return lat.keys[key]
	}
	return false
}

// AnyPressed returns true if any key is pressed.
func (lat *Latch) AnyPressed() bool {
	for _, p := range lat.keys {
		if p {
			return true
		}
	}
	return false
}

// Snapshot returns the state of every key.
func (lat *Latch) Snapshot() [NumKeys]bool {
	return lat.keys
}
