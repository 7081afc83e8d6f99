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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func TestKeypadKey(t *testing.T) {
	layout := []string{
		"1", "2", "3", "4",
		"Q", "W", "E", "R",
		"A", "S", "D", "F",
		"Z", "X", "C", "V",
	}
	expected := []uint8{
		0x1, 0x2, 0x3, 0xc,
		0x4, 0x5, 0x6, 0xd,
		0x7, 0x8, 0x9, 0xe,
		0xa, 0x0, 0xb, 0xf,
	}

	seen := make(map[uint8]bool)
	for i, key := range layout {
		k, ok := userinput.KeypadKey(key)
		test.ExpectSuccess(t, ok, key)
		test.ExpectEquality(t, k, expected[i], key)
		seen[k] = true
	}
	test.ExpectEquality(t, len(seen), input.NumKeys)

	k, ok := userinput.KeypadKey("q")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 0x4)

	_, ok = userinput.KeypadKey("5")
	test.ExpectFailure(t, ok)
	_, ok = userinput.KeypadKey("Escape")
	test.ExpectFailure(t, ok)
}

func TestControllers(t *testing.T) {
	var c userinput.Controllers
	var lat input.Latch

	c.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: true}, &lat)
	test.ExpectSuccess(t, c.LastKeyHandled)
	test.ExpectSuccess(t, lat.IsPressed(0x5))

	c.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: true, Repeat: true}, &lat)
	test.ExpectSuccess(t, c.LastKeyHandled)
	test.ExpectSuccess(t, lat.IsPressed(0x5))

	// modifier held. the key is for the GUI
	c.HandleUserInput(userinput.EventKeyboard{Key: "V", Down: true, Mod: userinput.KeyModCtrl}, &lat)
	test.ExpectFailure(t, c.LastKeyHandled)
	test.ExpectFailure(t, lat.IsPressed(0xf))

	// release is forwarded even with a modifier
	c.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: false, Mod: userinput.KeyModShift}, &lat)
	test.ExpectSuccess(t, c.LastKeyHandled)
	test.ExpectFailure(t, lat.IsPressed(0x5))

	c.HandleUserInput(userinput.EventKeyboard{Key: "F1", Down: true}, &lat)
	test.ExpectFailure(t, c.LastKeyHandled)
	test.ExpectFailure(t, lat.AnyPressed())

	c.HandleUserInput(userinput.EventQuit{}, &lat)
	test.ExpectSuccess(t, c.Quit)
	c.HandleUserInput(userinput.EventKeyboard{Key: "1", Down: true}, &lat)
	test.ExpectFailure(t, c.Quit)
}
