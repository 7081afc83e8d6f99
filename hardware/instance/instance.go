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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the machine, but is not actually the machine itself.
//
// Particularly useful when running more than one instance of the emulation in
// the same process, for example in tests.
package instance

import (
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/random"
)

// Label indicates the context of the instance.
type Label string

// List of valid Label values.
const (
	Main     Label = ""
	Headless Label = "headless"
	Test     Label = "test"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the machine, but is not actually the machine
// itself.
type Instance struct {
	Label Label

	Random *random.Random

	// the preferences of the running instance. this instance can be shared
	// with other running instances of the emulation.
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The prefs argument can be nil, in which case default preferences that are
// not attached to the preferences file are used. Providing a non-nil value
// allows the preferences of more than one instance to be synchronised.
func NewInstance(counter random.Counter, prefs *preferences.Preferences) *Instance {
	if prefs == nil {
		prefs = preferences.NewDefaultPreferences()
	}
	return &Instance{
		Random: random.NewRandom(counter),
		Prefs:  prefs,
	}
}

// Normalise ensures the instance is suitable for testing. Random numbers are
// made predictable and preferences are set to their default values.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
}

// AllowLogging implements the logger.Permission interface. Test instances do
// not create log entries.
func (ins *Instance) AllowLogging() bool {
	return ins.Label != Test
}
