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

// Package termplay is the terminal host shell. The frame buffer is drawn with
// half-block characters so that each character cell shows two rows of the
// frame buffer. A 64x32 frame buffer therefore needs a terminal of at least
// 64 columns and 17 rows (one row for the status line).
//
// Terminals do not send key release events. A keypad key is held for a short
// time after the most recent key press, which is long enough for the key
// repeat of the terminal to keep the key held for as long as the real key is
// held down.
//
// Keys are the same as for the SDL shell except that pixel scaling is not
// available. Ctrl-C and Escape both quit.
package termplay
