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

package instance_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/test"
)

type counter struct{}

func (counter) InstructionCount() uint64 {
	return 0
}

func TestInstance(t *testing.T) {
	ins := instance.NewInstance(counter{}, nil)
	test.DemandImplements(t, ins, logger.Permission(nil))
	test.ExpectSuccess(t, ins.AllowLogging())

	ins.Label = instance.Test
	test.ExpectFailure(t, ins.AllowLogging())

	test.ExpectSuccess(t, ins.Prefs.ClockRate.Set(100))
	ins.Normalise()
	test.ExpectSuccess(t, ins.Random.ZeroSeed)
	test.ExpectEquality(t, ins.Prefs.ClockRate.Get().(int), 700)
}
