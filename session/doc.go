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

// Package session holds the state that is owned by the host shells. A
// Session is created by the main package and passed to the shell, which calls
// Frame() once per display frame and forwards user input with HandleEvent().
//
// The session is the only place where the state of the emulation (running,
// paused, halted) is recorded. The shells read that state with State() and
// decide how to present it.
//
// When no program is attached the display shows random cells. Pressing N
// chooses a new set of random cells.
package session
