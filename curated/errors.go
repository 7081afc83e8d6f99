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

package curated

import (
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface.
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error.
//
// Note that unlike the Errorf() function in the fmt package the first argument
// is named "pattern" not "format". This is because we use the pattern string
// in the Is() and Has() functions where 'pattern' seems to be more descriptive
// name.
func Errorf(pattern string, values ...any) error {
	// formatting is deferred until the Error() function is called
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the normalised error message. Normalisation being the removal
// of duplicate adjacent error messsage parts in the error message chains. It
// doesn't affect letter-case or white space.
//
// Implements the go language error interface.
func (er curated) Error() string {
	s := fmt.Sprintf(er.pattern, er.values...)

	p := strings.Split(s, ": ")
	n := make([]string, 0, len(p))
	for i := range p {
		if i > 0 && p[i] == p[i-1] {
			continue
		}
		n = append(n, p[i])
	}

	return strings.Join(n, ": ")
}

// Unwrap returns any errors that were used as values in the pattern. This
// allows errors.Is() and errors.As() from the standard library to inspect the
// chain.
func (er curated) Unwrap() []error {
	var w []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			w = append(w, e)
		}
	}
	return w
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	_, ok := err.(curated)
	return ok
}

// Is checks if error is a curated error with a specific pattern.
func Is(err error, pattern string) bool {
	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}
	return false
}

// Has checks if error is a curated error with a specific pattern somewhere in
// the chain.
func Has(err error, pattern string) bool {
	er, ok := err.(curated)
	if !ok {
		return false
	}

	if er.pattern == pattern {
		return true
	}

	for _, v := range er.values {
		if e, ok := v.(error); ok && Has(e, pattern) {
			return true
		}
	}

	return false
}

// Value returns the value at index idx of the first error in the chain that
// matches the pattern. Returns false if the pattern is not in the chain or if
// the index is out of range.
func Value(err error, pattern string, idx int) (any, bool) {
	er, ok := err.(curated)
	if !ok {
		return nil, false
	}

	if er.pattern == pattern {
		if idx < 0 || idx >= len(er.values) {
			return nil, false
		}
		return er.values[idx], true
	}

	for _, v := range er.values {
		if e, ok := v.(error); ok {
			if v, ok := Value(e, pattern, idx); ok {
				return v, true
			}
		}
	}

	return nil, false
}
