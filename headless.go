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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/session"
)

// headless runs the program for a fixed number of frames without a display.
// the frame buffer and the state of the CPU are printed at the end of the run
func headless(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	flgs := addCommonFlags(md)
	frames := md.AddInt("frames", 60, "number of 60Hz frames to run for")
	memviz := md.AddString("memviz", "", "write graphviz representation of the machine to file (or to a new file in the named directory)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *frames < 0 {
		return fmt.Errorf("number of frames must not be negative (%d)", *frames)
	}

	flgs.setup(output)

	var sess *session.Session
	err = withCommandLinePrefs(flgs, func() error {
		var err error
		sess, err = newSession(md, instance.Headless, false)
		return err
	})
	if err != nil {
		return err
	}

	// an error from the program is part of the output and is not an error
	// for the headless mode
	runErr := sess.Machine.RunForFrameCount(*frames, nil)

	fmt.Fprintf(output, "%s\n", sess.Machine.Display())
	fmt.Fprintf(output, "%s\n", sess.Machine)
	if runErr != nil {
		fmt.Fprintf(output, "* %v\n", runErr)
	}

	if *memviz != "" {
		fn := *memviz
		if fi, err := os.Stat(fn); err == nil && fi.IsDir() {
			fn = filepath.Join(fn, fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", sess.Loader.ShortName())))
		}

		f, err := os.Create(fn)
		if err != nil {
			return err
		}
		defer f.Close()
		sess.DumpState(f)
	}

	return nil
}
