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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separator between key and value in the preferences file.
const keySep = " :: "

// Sentinal errors.
const (
	NoPrefsFile      = "prefs: no prefs file (%s)"
	InvalidPrefsFile = "prefs: not a valid prefs file (%s)"
)

// Disk represents preference values as stored on disk. Values are added to
// the Disk with the Add() function and then saved or loaded as a group.
//
// More than one Disk instance can use the same file. Saving one instance
// does not clobber the entries belonging to another.
type Disk struct {
	path    string
	entries map[string]pref

	// keys in the order they were added. values are loaded in this order
	order []string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: empty path for prefs file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from disk. Keys
// cannot contain the key/value separator or a newline.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.Contains(key, strings.TrimSpace(keySep)) || strings.ContainsAny(key, "\n\r") {
		return fmt.Errorf("prefs: illegal key (%q)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already added (%s)", key)
	}
	dsk.entries[key] = p
	dsk.order = append(dsk.order, key)
	return nil
}

// Reset all prefs values to their zero value. Callers with non-zero defaults
// should reapply them afterwards.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.order {
		if err := dsk.entries[k].Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}

// read the preferences file into a map of raw strings. returns a NoPrefsFile
// error if the file does not exist.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	raw := make(map[string]string)

	scanner := bufio.NewScanner(f)

	// first line must be the boilerplate
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(InvalidPrefsFile, dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), keySep)
		if !ok {
			continue
		}
		raw[k] = v
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return raw, nil
}

// Save current preference values to disk. Entries in the file that do not
// belong to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	raw, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		raw = make(map[string]string)
	}

	for k, p := range dsk.entries {
		raw[k] = p.String()
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString(keySep)
		s.WriteString(raw[k])
		s.WriteString("\n")
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. Values are set in the order they were
// added to the Disk, so a value can rely on the hooks of an earlier value
// having already run.
//
// Values on the command line stack (see PushCommandLineStack()) take
// priority over values on disk. They are set after all the values from disk
// and are applied even if the prefs file does not exist.
//
// A missing prefs file is reported with a NoPrefsFile error unless
// saveOnFail is true, in which case the current values are saved to create
// the file.
func (dsk *Disk) Load(saveOnFail bool) error {
	raw, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		if saveOnFail {
			if err := dsk.Save(); err != nil {
				return err
			}
			err = nil
		}
		raw = map[string]string{}
	}

	for _, k := range dsk.order {
		if v, ok := raw[k]; ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	for _, k := range dsk.order {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return err
}

// DoesNotHaveEntry returns true if the prefs file does not contain the
// specified key. Useful for detecting a new installation.
func (dsk *Disk) DoesNotHaveEntry(key string) (bool, error) {
	raw, err := dsk.read()
	if err != nil {
		if curated.Is(err, NoPrefsFile) {
			return true, nil
		}
		return false, err
	}
	_, ok := raw[key]
	return !ok, nil
}
