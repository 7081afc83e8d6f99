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

package logger

import (
	"io"
)

// maximum number of entries in the central logger
const maxCentral = 256

// the central logger is used by the package level functions. most of the
// program should log through these functions
var central = NewLogger(maxCentral)

// Log adds an entry to the central logger
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear all entries from central logger
func Clear() {
	central.Clear()
}

// Write contents of central logger to io.Writer
func Write(output io.Writer) {
	central.Write(output)
}

// Tail writes the last N entries to io.Writer
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints entries of the central logger to io.Writer as they are made
func SetEcho(output io.Writer, writeExisting bool) {
	central.SetEcho(output, writeExisting)
}

// BorrowLog gives the provided function the critical section and access to the
// list of central log entries
func BorrowLog(f func([]Entry)) {
	central.BorrowLog(f)
}
