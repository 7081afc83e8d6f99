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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Unlike flag.FlagSet, arguments are given to NewArgs() and then Parse() is
// called with no arguments. This allows the same argument list to be parsed
// in layers, one layer per mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TERM", "HEADLESS")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "TERM":
//		md.NewMode()
//		scale := md.AddInt("hold", 100, "key hold time in milliseconds")
//		...
//	}
//
// The first sub-mode is the default mode, used when the first argument after
// the flags does not name a mode. Sub-mode comparisons are case insensitive.
//
// Once the arguments have been parsed, non-flag arguments can be retrieved with
// the RemainingArgs() or GetArg() functions.
//
// Help messages are printed automatically when the -help flag is given. The
// message lists the flags for the current mode and any sub-modes.
package modalflag
