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

package logger

// Permission implementations decide whether a log request from that source
// creates an entry. A test instance of the machine, for example, refuses all
// logging so that test output stays readable.
type Permission interface {
	AllowLogging() bool
}

// always is a Permission with a fixed answer.
type always bool

func (a always) AllowLogging() bool {
	return bool(a)
}

// Allow and Deny are the fixed permissions. Allow should be used by code
// that is not part of an emulated machine, such as the host shells.
var (
	Allow Permission = always(true)
	Deny  Permission = always(false)
)
