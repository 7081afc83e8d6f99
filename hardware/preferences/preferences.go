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

// Package preferences contains the preferences that affect the emulated
// machine. The preferences are shared by the CPU and the machine through the
// instance package.
package preferences

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// Limits and default for the ClockRate preference.
const (
	MinClockRate     = 1
	MaxClockRate     = 5000
	DefaultClockRate = 700
)

// Quirks select between the behaviour of the original COSMAC VIP
// interpreter and the behaviour of later interpreters. The default value of
// false for every quirk is the COSMAC VIP behaviour.
type Quirks struct {
	// 8XY6 and 8XYE shift VX in place rather than shifting VY into VX
	ShiftInPlace prefs.Bool

	// FX55 and FX65 leave the index register unchanged rather than
	// incrementing it by X+1
	IndexUnchanged prefs.Bool

	// BNNN jumps to NNN plus VX rather than NNN plus V0
	JumpWithVX prefs.Bool

	// 8XY1, 8XY2 and 8XY3 leave VF unchanged rather than resetting it to zero
	KeepVF prefs.Bool
}

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// number of instructions per second
	ClockRate prefs.Int

	// initialise the V registers to random values on reset
	RandomState prefs.Bool

	Quirks Quirks
}

func (p *Preferences) String() string {
	return fmt.Sprintf("clock=%sHz shift=%s index=%s jump=%s vf=%s",
		p.ClockRate.String(),
		p.Quirks.ShiftInPlace.String(), p.Quirks.IndexUnchanged.String(),
		p.Quirks.JumpWithVX.String(), p.Quirks.KeepVF.String())
}

// NewDefaultPreferences creates preferences with default values that are not
// attached to the preferences file. Save() and Load() do nothing.
func NewDefaultPreferences() *Preferences {
	p := &Preferences{}
	p.ClockRate.SetHookPre(func(v prefs.Value) error {
		if r := v.(int); r < MinClockRate || r > MaxClockRate {
			return fmt.Errorf("preferences: clock rate must be between %d and %d", MinClockRate, MaxClockRate)
		}
		return nil
	})
	p.SetDefaults()
	return p
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the preferences file if it exists. The file is
// not created until Save() is called.
func NewPreferences() (*Preferences, error) {
	p := NewDefaultPreferences()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.clockrate", &p.ClockRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.quirks.shiftinplace", &p.Quirks.ShiftInPlace)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.quirks.indexunchanged", &p.Quirks.IndexUnchanged)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.quirks.jumpwithvx", &p.Quirks.JumpWithVX)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.quirks.keepvf", &p.Quirks.KeepVF)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() {
	_ = p.ClockRate.Set(DefaultClockRate)
	_ = p.RandomState.Set(false)
	_ = p.Quirks.ShiftInPlace.Set(false)
	_ = p.Quirks.IndexUnchanged.Set(false)
	_ = p.Quirks.JumpWithVX.Set(false)
	_ = p.Quirks.KeepVF.Set(false)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
