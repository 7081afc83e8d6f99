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

// Package prefs facilitates the storing of preferential values in a file on
// disk. The types Bool, String, Int, Float and Generic hold a single live
// value each and are registered with a Disk instance under a key:
//
//	var scale prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("sdlplay.pixelscale", &scale)
//	dsk.Load(true)
//
// The file is a simple list of key/value pairs, one per line, preceded by the
// WarningBoilerPlate line.
//
// Values can be overridden for a single run of the program with the
// command line stack. See PushCommandLineStack().
package prefs
