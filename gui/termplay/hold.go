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

package termplay

import (
	"time"

	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/userinput"
)

// the amount of time a key is held after a key press. long enough to cover
// the delay before a terminal begins to repeat a held key
const holdTime = 500 * time.Millisecond

// holds keeps track of when each keypad key should be released
type holds struct {
	release [input.NumKeys]time.Time
}

// press records that the named key was pressed at the time given. returns
// false if the key is not a keypad key
func (h *holds) press(key string, now time.Time) bool {
	k, ok := userinput.KeypadKey(key)
	if !ok {
		return false
	}
	h.release[k] = now.Add(holdTime)
	return true
}

// events returns the keyboard events for the keys whose state differ from
// the state of the latch at the time given
func (h *holds) events(lat *input.Latch, now time.Time) []userinput.EventKeyboard {
	var evs []userinput.EventKeyboard
	for k := range h.release {
		held := now.Before(h.release[k])
		if held != lat.IsPressed(uint8(k)) {
			evs = append(evs, userinput.EventKeyboard{
				Key:  keyName(uint8(k)),
				Down: held,
			})
		}
	}
	return evs
}

// keyName returns the keyboard key for a keypad key
func keyName(k uint8) string {
	for _, n := range "1234QWERASDFZXCV" {
		if v, _ := userinput.KeypadKey(string(n)); v == k {
			return string(n)
		}
	}
	return ""
}
