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
	"runtime"

	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/gui/termplay"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/session"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
)

// SDL requires that window and event handling happens on the main thread. the
// emulation is single threaded so everything runs on the main goroutine
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the mode given by the command line arguments. returns the exit value
// for the program
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TERM", "HEADLESS")

	showVersion := md.AddBool("version", false, "print version information and quit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return 0
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)

	case "TERM":
		err = term(md, output)

	case "HEADLESS":
		err = headless(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// flags common to all modes
type commonFlags struct {
	log       *bool
	statsview *bool
	prefs     *string
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
		prefs:     md.AddString("prefs", "", "preferences for this run only (key::value; key::value)"),
	}
}

// setup the ambient services requested by the common flags
func (flgs commonFlags) setup(output io.Writer) {
	if *flgs.log {
		logger.SetEcho(output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *flgs.statsview {
		statsview.Launch(output)
	}
}

// withCommandLinePrefs runs the create function with the command line
// preferences on the preferences stack. every preferences file loaded by the
// function sees the command line values. any that are left over are reported
func withCommandLinePrefs(flgs commonFlags, create func() error) error {
	prefs.PushCommandLineStack(*flgs.prefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
		}
	}()
	return create()
}

// newSession creates a session with preferences from the preferences file and
// attaches the program named on the command line. having no program is only
// allowed if noROM is true
//
// should be called by the create function of withCommandLinePrefs()
func newSession(md *modalflag.Modes, label instance.Label, noROM bool) (*session.Session, error) {
	hw, err := preferences.NewPreferences()
	if err != nil {
		return nil, err
	}

	p, err := session.NewPreferences()
	if err != nil {
		return nil, err
	}

	sess := session.NewSession(label, hw, p)

	switch len(md.RemainingArgs()) {
	case 0:
		if !noROM {
			return nil, fmt.Errorf("CHIP-8 program required for %s mode", md)
		}
	case 1:
		err = sess.AttachROM(romloader.NewLoader(md.GetArg(0)))
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	return sess, nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	flgs := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	flgs.setup(output)

	var sess *session.Session
	var scr *sdlplay.SdlPlay

	err = withCommandLinePrefs(flgs, func() error {
		var err error
		sess, err = newSession(md, instance.Main, true)
		if err != nil {
			return err
		}
		scr, err = sdlplay.NewSdlPlay(sess)
		return err
	})
	if err != nil {
		return err
	}
	defer scr.Destroy()

	err = scr.Run()
	if err != nil {
		return err
	}

	return sess.End()
}

func term(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	flgs := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	flgs.setup(output)

	var sess *session.Session
	var tp *termplay.TermPlay

	err = withCommandLinePrefs(flgs, func() error {
		var err error
		sess, err = newSession(md, instance.Main, true)
		if err != nil {
			return err
		}
		tp, err = termplay.NewTermPlay(sess, os.Stdout)
		return err
	})
	if err != nil {
		return err
	}

	err = tp.Run()
	if cerr := tp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	return sess.End()
}
