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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

func TestCommandLineStackValues(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("hardware.clockrate::600")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.clockrate::600")

	// surrounding space is removed from keys and values
	prefs.PushCommandLineStack("   session.label:: pong ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "session.label::pong")

	// leftover entries are returned in key order
	prefs.PushCommandLineStack("sdlplay.pixelscale::10; hardware.quirks.keepvf::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.quirks.keepvf::true; sdlplay.pixelscale::10")

	// entries without a separator are dropped
	prefs.PushCommandLineStack("hardware.clockrate")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("hardware.clockrate;sdlplay.darkmode::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sdlplay.darkmode::true")

	prefs.PushCommandLineStack("hardware.clockrate::600;sdlplay.darkmode")
	ok, _ := prefs.GetCommandLinePref("sdlplay.darkmode")
	test.ExpectFailure(t, ok)
	ok, v := prefs.GetCommandLinePref("hardware.clockrate")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "600")

	// a value that has been read is no longer left over
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("hardware.clockrate::600")
	prefs.PushCommandLineStack("sdlplay.pixelscale::4")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// the most recent group is the only one that is consulted
	ok, _ := prefs.GetCommandLinePref("hardware.clockrate")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sdlplay.pixelscale::4")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.clockrate::600")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
