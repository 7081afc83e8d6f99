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

// Package romloader is used to specify the program that is to be attached to
// the emulated machine.
//
// When the program has been loaded the Data field will contain the program
// and the Hash field the SHA1 hash of that data. Load() can be called more
// than once and the data will only be read once.
//
// A filename beginning with http:// or https:// is fetched over the network.
// Anything else is treated as a local file.
package romloader
