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

package termplay

import (
	"strings"
)

// list of ASCII codes for non-alphanumeric characters
const (
	keyCtrlC = 3
	keyEsc   = 27
)

// escape sequences for the function keys that the session responds to. some
// terminals use the SS3 form and some the CSI form for F1
var escapeSequences = map[string]string{
	"\x1bOP":   "F1",
	"\x1b[11~": "F1",
	"\x1b[15~": "F5",
}

// the longest escape sequence that is kept between reads. anything longer
// is not a sequence we recognise
const maxPending = 8

// decodeKeys converts the bytes read from the terminal into key names. Key
// names are the same as SDL key names. Unrecognised escape sequences are
// dropped.
//
// An escape sequence that is incomplete at the end of b is returned as the
// rest. It should be prefixed to the next read.
func decodeKeys(b []byte) (keys []string, rest []byte) {
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case keyCtrlC:
			keys = append(keys, "Ctrl-C")

		case keyEsc:
			if i+1 >= len(b) || (b[i+1] != '[' && b[i+1] != 'O') {
				keys = append(keys, "Escape")
				continue // for loop
			}

			// the end of an escape sequence is a letter or a tilde
			j := i + 2
			for j < len(b) && !isSequenceEnd(b[j]) {
				j++
			}
			if j >= len(b) {
				if j-i > maxPending {
					return keys, nil
				}
				return keys, b[i:]
			}

			if k, ok := escapeSequences[string(b[i:j+1])]; ok {
				keys = append(keys, k)
			}
			i = j

		default:
			if b[i] > ' ' && b[i] < 0x7f {
				keys = append(keys, strings.ToUpper(string(b[i])))
			}
		}
	}

	return keys, nil
}

func isSequenceEnd(c byte) bool {
	return c == '~' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
