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

// Package hardware is the base package for the CHIP-8 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains external
// references to all the CHIP-8 sub-systems. From here, the emulation can
// either be started to run continuously (with optional callback to check for
// continuation) or be stepped an instruction at a time.
//
// Run() is the function used by the host shells. It is given the time that
// has elapsed since the previous call and executes as many instructions and
// timer ticks as that amount of time requires. Instructions are executed at
// the rate given by the ClockRate preference and the timers tick at 60Hz.
//
// Step() and TickTimers() are useful for tests and for stepping through a
// program.
package hardware
