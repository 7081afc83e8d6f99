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

package main

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

// run the tests in a directory with a local resource directory so that the
// preferences of the user are not touched
func setupResources(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	test.DemandSuccess(t, os.Mkdir(filepath.Join(dir, ".gopher8"), 0o700))

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	return dir
}

func writeProgram(t *testing.T, dir string, program ...uint8) string {
	t.Helper()
	fn := filepath.Join(dir, "test.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, program, 0o600))
	return fn
}

func TestVersion(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"-version"}, out), 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "Gopher8"))
}

func TestHelp(t *testing.T) {
	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"-help"}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "HEADLESS"))
}

func TestHeadless(t *testing.T) {
	dir := setupResources(t)

	// LD V0, 0x00 ; LD F, V0 ; DRW V0, V0, 5 ; JP 0x206
	fn := writeProgram(t, dir, 0x60, 0x00, 0xf0, 0x29, 0xd0, 0x05, 0x12, 0x06)

	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"HEADLESS", "-frames", "2", fn}, out), 0)

	// the first rows of the frame buffer show the glyph for zero
	lines := strings.Split(out.String(), "\n")
	test.DemandSuccess(t, len(lines) > 5)
	test.ExpectEquality(t, lines[0][:6], "####..")
	test.ExpectEquality(t, lines[1][:6], "#..#..")
	test.ExpectSuccess(t, strings.Contains(out.String(), "PC=0x0206"))
	test.ExpectFailure(t, strings.Contains(out.String(), "* "))
}

func TestHeadlessHalt(t *testing.T) {
	dir := setupResources(t)
	fn := writeProgram(t, dir, 0xff, 0xff)

	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"HEADLESS", fn}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "* cpu: execution error at 0x200 (opcode 0xffff): unknown opcode: 0xffff"))
}

func TestHeadlessMemviz(t *testing.T) {
	dir := setupResources(t)
	fn := writeProgram(t, dir, 0x12, 0x00)
	viz := filepath.Join(dir, "machine.dot")

	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"HEADLESS", "-frames", "1", "-memviz", viz, fn}, out), 0)

	d, err := os.ReadFile(viz)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(d), "digraph"))

	// a directory gets a new file named after the program
	vizDir := filepath.Join(dir, "viz")
	test.DemandSuccess(t, os.Mkdir(vizDir, 0o755))
	test.ExpectEquality(t, launch([]string{"HEADLESS", "-frames", "1", "-memviz", vizDir, fn}, out), 0)

	m, err := filepath.Glob(filepath.Join(vizDir, "memviz_*.dot"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(m), 1)
}

func TestHeadlessPrefs(t *testing.T) {
	dir := setupResources(t)

	// infinite loop. the clock rate decides the number of instructions
	fn := writeProgram(t, dir, 0x12, 0x00)

	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"HEADLESS", "-frames", "60", "-prefs", "hardware.clockrate::100", fn}, out), 0)
	test.ExpectFailure(t, strings.Contains(out.String(), "* "))

	// headless mode never writes the preferences file
	_, err := os.Stat(filepath.Join(dir, ".gopher8", prefs.DefaultPrefsFile))
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))
}

// the command line preferences must reach the preferences that the host
// shells create after the session
func TestCommandLinePrefs(t *testing.T) {
	setupResources(t)

	md := &modalflag.Modes{Output: io.Discard}
	md.NewArgs(nil)
	md.NewMode()
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	off := false
	cmdline := "sdlplay.pixelscale::5; hardware.clockrate::100"
	flgs := commonFlags{log: &off, statsview: &off, prefs: &cmdline}

	logger.Clear()

	var scale prefs.Int
	err = withCommandLinePrefs(flgs, func() error {
		sess, err := newSession(md, instance.Test, true)
		if err != nil {
			return err
		}
		test.ExpectEquality(t, sess.Machine.Instance.Prefs.ClockRate.Get().(int), 100)

		pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return err
		}
		dsk, err := prefs.NewDisk(pth)
		if err != nil {
			return err
		}
		if err := dsk.Add("sdlplay.pixelscale", &scale); err != nil {
			return err
		}
		if err := dsk.Load(false); err != nil && !curated.Is(err, prefs.NoPrefsFile) {
			return err
		}
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, scale.Get().(int), 5)

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectFailure(t, strings.Contains(w.String(), "unused"))

	// preferences that nothing loads are reported
	cmdline = "sdlplay.unknown::1"
	test.DemandSuccess(t, withCommandLinePrefs(flgs, func() error { return nil }))
	w.Reset()
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "unused command line preferences: sdlplay.unknown::1"))
}

func TestHeadlessErrors(t *testing.T) {
	dir := setupResources(t)

	out := &strings.Builder{}
	test.ExpectEquality(t, launch([]string{"HEADLESS"}, out), 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "program required"))

	out.Reset()
	test.ExpectEquality(t, launch([]string{"HEADLESS", filepath.Join(dir, "missing.ch8")}, out), 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "romloader"))

	fn := writeProgram(t, dir, make([]uint8, 4000)...)
	out.Reset()
	test.ExpectEquality(t, launch([]string{"HEADLESS", fn}, out), 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "rom too large"))

	out.Reset()
	test.ExpectEquality(t, launch([]string{"HEADLESS", "-frames", "-1", fn}, out), 20)
}
