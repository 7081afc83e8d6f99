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


package test

import (
	"fmt"
	"math"
	"testing"
)

// id formats the optional tags given to the Expect and Demand functions so
// that a failing test can be located more easily in a loop
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	return fmt.Sprintf("%v: ", tags)
}

// report a failed test. a fatal failure stops the test
func report(t *testing.T, fatal bool, tags []any, format string, args ...any) {
	t.Helper()
	msg := id(tags...) + fmt.Sprintf(format, args...)
	if fatal {
		t.Fatal(msg)
	}
	t.Error(msg)
}

// success returns true if v is a success value for its type. a nil value is
// considered successful because that is what a nil error means
//
// supported types:
//
//	bool -> true is success
//	error -> nil is success
func success(t *testing.T, v any, tags []any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("%sunsupported type (%T) for expectation testing", id(tags...), v)
	}

	return false
}

func expectSuccess(t *testing.T, fatal bool, v any, tags []any) bool {
	t.Helper()
	if success(t, v, tags) {
		return true
	}
	if err, ok := v.(error); ok {
		report(t, fatal, tags, "expected success (error: %v)", err)
	} else {
		report(t, fatal, tags, "expected success (%T)", v)
	}
	return false
}

func expectFailure(t *testing.T, fatal bool, v any, tags []any) bool {
	t.Helper()
	if !success(t, v, tags) {
		return true
	}
	report(t, fatal, tags, "expected failure (%T)", v)
	return false
}

func expectEquality[T comparable](t *testing.T, fatal bool, v T, expectedValue T, tags []any) bool {
	t.Helper()
	if v == expectedValue {
		return true
	}
	report(t, fatal, tags, "equality test of type %T failed: '%v' does not equal '%v'", v, v, expectedValue)
	return false
}

// ExpectSuccess tests argument v for a success condition suitable for it's
// type. See success() for the list of supported types
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	return expectSuccess(t, false, v, tags)
}

// ExpectFailure tests argument v for a failure condition suitable for it's
// type. The nil value is never a failure
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	return expectFailure(t, false, v, tags)
}

// ExpectEquality is used to test equality between one value and another
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	return expectEquality(t, false, v, expectedValue, tags)
}

// ExpectInequality is used to test inequality between one value and another
func ExpectInequality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v != expectedValue {
		return true
	}
	report(t, false, tags, "inequality test of type %T failed: '%v' does equal '%v'", v, v, expectedValue)
	return false
}

// Number is the set of types that ExpectApproximate() can work with
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ExpectApproximate tests whether v is within the tolerance of the expected
// value. The tolerance is a fraction of the expected value, so a tolerance of
// 0.1 means within ten percent
func ExpectApproximate[T Number](t *testing.T, v T, expectedValue T, tolerance float64, tags ...any) bool {
	t.Helper()
	top := float64(expectedValue) * (1 + tolerance)
	bot := float64(expectedValue) * (1 - tolerance)
	if top < bot {
		top, bot = bot, top
	}
	f := float64(v)
	if math.IsNaN(f) || f < bot || f > top {
		report(t, false, tags, "approximation test of type %T failed: '%v' is outside the range '%v' to '%v'", v, v, bot, top)
		return false
	}
	return true
}
