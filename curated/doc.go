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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is what identifies the
// error so it is normal for patterns to be declared as exported constants in
// the package that produces them. For example:
//
//	const StackOverflow = "stack overflow: call at %#03x"
//
//	err := curated.Errorf(StackOverflow, pc)
//
//	if curated.Is(err, StackOverflow) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. Values in the chain that are themselves curated errors are
// searched recursively.
//
//	f := curated.Errorf("cpu: %v", err)
//
//	if curated.Has(f, StackOverflow) {
//		fmt.Println("true")
//	}
//
// In this example a call to Is(f, StackOverflow) would return false because
// the outermost pattern is "cpu: %v".
//
// The Value() function retrieves one of the values used to create an error in
// the chain, which saves the caller from parsing the error message.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors depending on how we choose to handle the result.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Chains are composed of parts separated by the
// sub-string ': ' and adjacent parts that are identical are collapsed. In
// practice this means that packages can wrap errors with their own prefix
// without worrying whether the error has already been prefixed:
//
//	cpu: cpu: unknown opcode
//
// becomes:
//
//	cpu: unknown opcode
//
// Curated errors also implement Unwrap() so that errors.Is() and errors.As()
// from the standard library can see the errors used as values.
package curated
