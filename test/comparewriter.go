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


package test

import "strings"

// CompareWriter collects everything written to it so that it can be compared
// with the expected output. The zero value is ready to use.
type CompareWriter struct {
	strings.Builder
}

// Clear forgets everything written so far.
func (w *CompareWriter) Clear() {
	w.Reset()
}

// Compare returns true if the output so far is exactly s.
func (w *CompareWriter) Compare(s string) bool {
	return w.String() == s
}
