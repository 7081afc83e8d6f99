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

package input_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/test"
)

func TestLatch(t *testing.T) {
	var lat input.Latch
	test.ExpectFailure(t, lat.AnyPressed())
	test.ExpectEquality(t, lat.String(), "----------------")

	lat.SetKey(0xa, true)
	test.ExpectSuccess(t, lat.IsPressed(0xa))
	test.ExpectFailure(t, lat.IsPressed(0xb))
	test.ExpectSuccess(t, lat.AnyPressed())
	test.ExpectEquality(t, lat.String(), "----------A-----")

	// out of range keys are ignored
	lat.SetKey(16, true)
	test.ExpectFailure(t, lat.IsPressed(16))

	snap := lat.Snapshot()
	lat.SetKey(0xa, false)
	test.ExpectSuccess(t, snap[0xa])
	test.ExpectFailure(t, lat.AnyPressed())

	var all [input.NumKeys]bool
	all[0] = true
	all[15] = true
	lat.SetAll(all)
	test.ExpectEquality(t, lat.String(), "0--------------F")

	lat.Reset()
	test.ExpectFailure(t, lat.AnyPressed())
}
