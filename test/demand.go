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

import "testing"

// The Demand functions are the same as the equivalent Expect functions except
// that a failure stops the test. Use them when later parts of the test depend
// on the value, for example the length of a slice that is about to be
// indexed.

// DemandSuccess is the fatal form of ExpectSuccess().
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	expectSuccess(t, true, v, tags)
}

// DemandFailure is the fatal form of ExpectFailure().
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	expectFailure(t, true, v, tags)
}

// DemandEquality is the fatal form of ExpectEquality().
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	expectEquality(t, true, v, expectedValue, tags)
}

// DemandImplements stops the test if instance does not implement the
// interface type I. The implements argument is only used to infer I and is
// usually a typed nil, eg. logger.Permission(nil)
func DemandImplements[I any](t *testing.T, instance any, implements I, tags ...any) {
	t.Helper()
	if _, ok := instance.(I); !ok {
		report(t, true, tags, "%T does not implement %T", instance, &implements)
	}
}
