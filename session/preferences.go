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

package session

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// Default values for the session preferences.
const (
	DefaultLabel = "Hello World!"
	DefaultValue = 2.7
)

// maximum length of the label preference
const maxLabelLen = 64

// Preferences for the session.
type Preferences struct {
	dsk *prefs.Disk

	// shown in the window title
	Label prefs.String

	// not part of the title. printed next to the label by String()
	Value prefs.Float
}

func (p *Preferences) String() string {
	return fmt.Sprintf("%s (%s)", p.Label.String(), p.Value.String())
}

// NewDefaultPreferences creates preferences with default values that are not
// attached to a preferences file.
func NewDefaultPreferences() *Preferences {
	p := &Preferences{}
	p.Label.SetMaxLen(maxLabelLen)
	p.SetDefaults()
	return p
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() but the location of
// the preferences file is specified.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := NewDefaultPreferences()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("session.label", &p.Label)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("session.value", &p.Value)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all session preferences to the default values.
func (p *Preferences) SetDefaults() {
	_ = p.Label.Set(DefaultLabel)
	_ = p.Value.Set(DefaultValue)
}

// Load session preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save session preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
