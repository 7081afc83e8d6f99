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

package preferences_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.NewDefaultPreferences()
	test.ExpectEquality(t, p.ClockRate.Get().(int), preferences.DefaultClockRate)
	test.ExpectFailure(t, p.Quirks.ShiftInPlace.Get().(bool))
	test.ExpectFailure(t, p.Quirks.KeepVF.Get().(bool))

	// disk operations are no-ops
	test.ExpectSuccess(t, p.Save())
	test.ExpectSuccess(t, p.Load())
}

func TestClockRateLimits(t *testing.T) {
	p := preferences.NewDefaultPreferences()
	test.ExpectFailure(t, p.ClockRate.Set(0))
	test.ExpectFailure(t, p.ClockRate.Set(preferences.MaxClockRate+1))
	test.ExpectEquality(t, p.ClockRate.Get().(int), preferences.DefaultClockRate)
	test.ExpectSuccess(t, p.ClockRate.Set(1000))
	test.ExpectEquality(t, p.ClockRate.Get().(int), 1000)

	p.SetDefaults()
	test.ExpectEquality(t, p.ClockRate.Get().(int), preferences.DefaultClockRate)
}

func TestDiskPreferences(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	// a .gopher8 directory in the working directory is used in preference to
	// the user's config directory
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(".gopher8", 0o700))

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Quirks.JumpWithVX.Set(true))
	test.ExpectSuccess(t, p.ClockRate.Set(1200))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, q.Quirks.JumpWithVX.Get().(bool))
	test.ExpectEquality(t, q.ClockRate.Get().(int), 1200)

	_, err = os.Stat(".gopher8/" + prefs.DefaultPrefsFile)
	test.ExpectSuccess(t, err)
}
