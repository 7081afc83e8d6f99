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

// Package framebuffer implements the monochrome display of the CHIP-8
// machine.
//
// Cells are stored in row-major order. The cell at (x, y) is at index
// x + y*width. The frame buffer is changed by the machine only through the
// Clear() and Draw() functions. The host shells should treat it as read-only
// except for the Randomise() function, which exists for when no program is
// loaded.
package framebuffer

import (
	"strings"
)

// Conventional dimensions of the CHIP-8 display.
const (
	Width  = 64
	Height = 32
)

// Randomiser is the source of random numbers for the Randomise() function.
type Randomiser interface {
	NoRewind(n int) int
}

// FrameBuffer is a fixed size grid of boolean cells.
type FrameBuffer struct {
	width  int
	height int
	cells  []bool
}

// NewFrameBuffer is the preferred method of initialisation for the
// FrameBuffer type. Dimensions less than one are treated as one.
func NewFrameBuffer(width int, height int) *FrameBuffer {
	width = max(1, width)
	height = max(1, height)
	return &FrameBuffer{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Width of the frame buffer in cells.
func (fb *FrameBuffer) Width() int {
	return fb.width
}

// Height of the frame buffer in cells.
func (fb *FrameBuffer) Height() int {
	return fb.height
}

// Pixel returns the state of the cell at (x, y). Coordinates outside the frame
// buffer return false.
func (fb *FrameBuffer) Pixel(x int, y int) bool {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return false
	}
	return fb.cells[x+y*fb.width]
}

// Clear sets all cells to false.
func (fb *FrameBuffer) Clear() {
	clear(fb.cells)
}

// Draw XORs the sprite onto the frame buffer. Each byte of the sprite is one
// row, most significant bit leftmost. Drawing starts at (x mod width, y mod
// height) and wraps around both edges.
//
// Returns true if any cell that was set has been cleared.
func (fb *FrameBuffer) Draw(x int, y int, sprite []uint8) bool {
	x = mod(x, fb.width)
	y = mod(y, fb.height)

	var collision bool

	for r, row := range sprite {
		cy := (y + r) % fb.height
		for b := range 8 {
			if row&(0x80>>b) == 0 {
				continue
			}
			i := (x+b)%fb.width + cy*fb.width
			collision = collision || fb.cells[i]
			fb.cells[i] = !fb.cells[i]
		}
	}

	return collision
}

// Randomise sets every cell to a random value.
func (fb *FrameBuffer) Randomise(rnd Randomiser) {
	for i := range fb.cells {
		fb.cells[i] = rnd.NoRewind(2) == 1
	}
}

// String returns the frame buffer as rows of '#' and '.' characters, one line
// per row.
func (fb *FrameBuffer) String() string {
	s := strings.Builder{}
	s.Grow((fb.width + 1) * fb.height)
	for y := range fb.height {
		for x := range fb.width {
			if fb.cells[x+y*fb.width] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

// mod returns the non-negative remainder of a divided by n.
func mod(a int, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
