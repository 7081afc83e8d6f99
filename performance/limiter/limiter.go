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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Stop()
//
// Operations can then be stalled with the Wait() function. Wait() returns the
// time elapsed since the previous call, which can be used to advance an
// emulation by the correct amount. For example:
//
//	for {
//		elapsed := fps.Wait()
//		machine.Run(elapsed)
//		renderImage()
//	}
package limiter

import (
	"fmt"
	"time"
)

// FpsLimiter will trigger every frames per second
type FpsLimiter struct {
	framesPerSecond int
	ticker          *time.Ticker

	// time of the most recent trigger
	last time.Time
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, fmt.Errorf("limiter: invalid frames per second (%d)", framesPerSecond)
	}
	lim := &FpsLimiter{
		framesPerSecond: framesPerSecond,
		ticker:          time.NewTicker(time.Second / time.Duration(framesPerSecond)),
		last:            time.Now(),
	}
	return lim, nil
}

// Limit returns the current frames per second
func (lim *FpsLimiter) Limit() int {
	return lim.framesPerSecond
}

// Wait will block until trigger. Returns the time since the previous trigger
func (lim *FpsLimiter) Wait() time.Duration {
	t := <-lim.ticker.C
	return lim.elapsed(t)
}

func (lim *FpsLimiter) elapsed(t time.Time) time.Duration {
	e := t.Sub(lim.last)
	lim.last = t
	if e < 0 {
		return 0
	}
	return e
}

// Stop the limiter. Wait() should not be called after Stop()
func (lim *FpsLimiter) Stop() {
	lim.ticker.Stop()
}
