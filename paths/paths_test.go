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

package paths_test

import (
	"os"
	"regexp"
	"testing"

	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(".gopher8", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher8/foo/bar/baz")

	// the directory part is created
	info, err := os.Stat(".gopher8/foo/bar")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher8/foo/bar")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher8/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher8")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("memviz", "pong")
	test.ExpectSuccess(t, regexp.MustCompile(`^memviz_pong_\d{8}_\d{6}$`).MatchString(fn))

	fn = paths.UniqueFilename("memviz", "  ")
	test.ExpectSuccess(t, regexp.MustCompile(`^memviz_\d{8}_\d{6}$`).MatchString(fn))
}
