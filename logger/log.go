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
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Entry represents a single line/entry in the log
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	Repeated  int
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.Repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.Repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// Logger is a bounded list of log entries. Consecutive entries with identical
// tag and detail are folded into a single entry with a repeat count
//
// Most code should use the package level functions, which log to the central
// logger. Separate instances are useful for testing
type Logger struct {
	crit sync.Mutex

	maxEntries int
	entries    []Entry

	// entries are also written to echo if it is not nil
	echo io.Writer
}

// NewLogger is the preferred method of initialisation for the Logger type.
// The maxEntries argument should be greater than zero
func NewLogger(maxEntries int) *Logger {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
}

// convert the detail argument to a string. errors and fmt.Stringer
// implementations are handled explicitly, everything else is formatted with
// the %v verb
func detailString(detail any) string {
	switch d := detail.(type) {
	case string:
		return d
	case error:
		return d.Error()
	case fmt.Stringer:
		return d.String()
	}
	return fmt.Sprintf("%v", detail)
}

// Log adds an entry to the logger if the permission allows it
func (l *Logger) Log(perm Permission, tag string, detail any) {
	if !perm.AllowLogging() {
		return
	}
	l.log(tag, detailString(detail))
}

// Logf adds a formatted entry to the logger if the permission allows it
func (l *Logger) Logf(perm Permission, tag string, detail string, args ...any) {
	if !perm.AllowLogging() {
		return
	}
	l.log(tag, fmt.Sprintf(detail, args...))
}

func (l *Logger) log(tag string, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// entries are always a single line
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	now := time.Now()

	var e *Entry
	if len(l.entries) > 0 {
		e = &l.entries[len(l.entries)-1]
	}

	if e != nil && e.Tag == tag && e.Detail == detail {
		e.Repeated++
		e.Timestamp = now
	} else {
		l.entries = append(l.entries, Entry{Timestamp: now, Tag: tag, Detail: detail})
		e = &l.entries[len(l.entries)-1]

		// maintain maximum length
		if len(l.entries) > l.maxEntries {
			l.entries = append(l.entries[:0], l.entries[len(l.entries)-l.maxEntries:]...)
			e = &l.entries[len(l.entries)-1]
		}
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}
}

// Clear all entries from the logger
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
}

// Write contents of the logger to io.Writer
func (l *Logger) Write(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
}

// Tail writes the last N entries to io.Writer. A number larger than the
// number of entries is fine
func (l *Logger) Tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	number = max(0, min(number, len(l.entries)))
	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho prints new log entries to io.Writer as they are made. A nil writer
// turns echoing off. If writeExisting is true then entries already in the log
// are written to the new writer immediately
func (l *Logger) SetEcho(output io.Writer, writeExisting bool) {
	l.crit.Lock()
	defer l.crit.Unlock()

	l.echo = output
	if l.echo != nil && writeExisting {
		for _, e := range l.entries {
			io.WriteString(l.echo, e.String())
		}
	}
}

// BorrowLog gives the provided function the critical section and access to
// the list of log entries. The slice must not be retained
func (l *Logger) BorrowLog(f func([]Entry)) {
	l.crit.Lock()
	defer l.crit.Unlock()
	f(l.entries)
}
