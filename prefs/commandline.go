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
	"fmt"
	"sort"
	"strings"
	"sync"
)

// the command line stack allows preference values to be specified for a
// single run of the program. each group on the stack is a map of keys to raw
// string values. only the top group is consulted.
var commandLine struct {
	crit  sync.Mutex
	stack []map[string]string
}

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	return len(commandLine.stack)
}

// PushCommandLineStack parses a prefs string and adds it as a new group. The
// format of the string is a list of key/value pairs separated by semi-colons:
//
//	key::value; key::value
//
// Malformed pairs are ignored.
func PushCommandLineStack(prefs string) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	grp := make(map[string]string)
	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok || strings.Contains(v, "::") {
			continue
		}
		grp[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	commandLine.stack = append(commandLine.stack, grp)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack().
//
// Returns the "unused" preferences of the group as a prefs string, with keys
// sorted alphabetically.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return ""
	}

	popped := commandLine.stack[len(commandLine.stack)-1]
	commandLine.stack = commandLine.stack[:len(commandLine.stack)-1]

	keys := make([]string, 0, len(popped))
	for k := range popped {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s::%s", k, popped[k]))
	}

	return strings.Join(s, "; ")
}

// GetCommandLinePref value from the top group. The value is deleted when it
// is returned.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return false, nil
	}

	grp := commandLine.stack[len(commandLine.stack)-1]
	if v, ok := grp[key]; ok {
		delete(grp, key)
		return true, v
	}

	return false, nil
}
