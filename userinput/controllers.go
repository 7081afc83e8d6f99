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

package userinput

// Controllers keeps track of hardware userinput options.
type Controllers struct {
	// whether or not the last HandleUserInput() was for an event that was
	// consumed by the emulation as an input
	LastKeyHandled bool

	// is true if last event was a quit emulation event
	Quit bool
}

// HandleUserInput translates the event and forwards it to the keypad. Events
// that are not for the keypad are left for the GUI and LastKeyHandled will
// be false.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) {
	c.LastKeyHandled = false
	c.Quit = false

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
	case EventKeyboard:
		c.keyboard(ev, handle)
	}
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) {
	// modifier keys mean the key is intended for the GUI but releasing a key
	// is always forwarded. otherwise the keypad can be left with a key that
	// is pressed forever
	if ev.Down && ev.Mod != KeyModNone {
		return
	}

	k, ok := KeypadKey(ev.Key)
	if !ok {
		return
	}

	c.LastKeyHandled = true

	// the latch is already in the correct state for repeated key events
	if ev.Repeat {
		return
	}

	handle.SetKey(k, ev.Down)
}
