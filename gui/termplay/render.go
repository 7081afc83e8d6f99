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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/hardware/framebuffer"
)

// ansi sequences
const (
	ansiClear      = "\x1b[2J"
	ansiHome       = "\x1b[H"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
	ansiEraseLine  = "\x1b[K"
	ansiOff        = "\x1b[0m"

	// green pen on black paper
	ansiPalette = "\x1b[32;40m"
)

// the characters used to draw a pair of frame buffer rows. the index is a
// two bit number: bit one for the top row and bit zero for the bottom row
var halfBlocks = [4]string{" ", "▄", "▀", "█"}

// render the frame buffer and the status line. the cursor is moved to the
// top left of the terminal first
func render(s *strings.Builder, fb *framebuffer.FrameBuffer, status string) {
	s.WriteString(ansiHome)
	s.WriteString(ansiPalette)

	for y := 0; y < fb.Height(); y += 2 {
		for x := range fb.Width() {
			var i int
			if fb.Pixel(x, y) {
				i |= 0b10
			}
			if y+1 < fb.Height() && fb.Pixel(x, y+1) {
				i |= 0b01
			}
			s.WriteString(halfBlocks[i])
		}
		s.WriteString("\r\n")
	}

	s.WriteString(ansiOff)
	s.WriteString(fmt.Sprintf("%.*s", fb.Width(), status))
	s.WriteString(ansiEraseLine)
}
