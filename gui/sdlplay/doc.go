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

// Package sdlplay is the windowed host shell. It uses SDL to open a window
// and to read the keyboard.
//
// The frame buffer is copied to a streaming texture once per frame. The
// texture is scaled to the size of the window. The initial size of the window
// is the size of the frame buffer multiplied by the pixelscale preference.
//
// In addition to the keypad keys (see the userinput package) the following
// keys are recognised:
//
//	+ or =   increase pixel scale
//	-        decrease pixel scale
//	F1       toggle dark mode
//	F5       reset
//	P        pause
//	N        random display (no program only)
//	Escape   quit
//
// All SDL functions must be called from the main thread. The Run() function
// should be called by the main goroutine after the call to
// runtime.LockOSThread() in the main package.
package sdlplay
