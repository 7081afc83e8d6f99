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

package session

import (
	"fmt"
	"io"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/userinput"
)

// Session is the state owned by a host shell.
type Session struct {
	Machine *hardware.Machine
	Prefs   *Preferences

	// the program attached to the machine. the Data field is empty if no
	// program has been attached
	Loader romloader.Loader

	state    govern.State
	subState govern.SubState

	controllers userinput.Controllers
}

// NewSession is the preferred method of initialisation for the Session type.
// Either of the preferences arguments can be nil, in which case default
// preferences are used.
//
// The display is filled with random cells until a program is attached.
func NewSession(label instance.Label, hw *preferences.Preferences, p *Preferences) *Session {
	if p == nil {
		p = NewDefaultPreferences()
	}

	s := &Session{
		Machine: hardware.NewMachine(label, hw),
		Prefs:   p,
	}
	s.setState(govern.Paused, govern.NoROM)
	s.Randomise()

	return s
}

func (s *Session) String() string {
	return fmt.Sprintf("%s: %s", s.state, s.Machine)
}

// setState records the new state. the combination of state and sub-state must
// make sense
func (s *Session) setState(state govern.State, subState govern.SubState) {
	if !govern.StateIntegrity(state, subState) {
		panic(fmt.Sprintf("session: illegal state combination (%s, %s)", state, subState))
	}
	if s.state != state {
		logger.Logf(s.Machine.Instance, "session", "state: %s", state)
	}
	s.state = state
	s.subState = subState
}

// State returns the current state of the emulation.
func (s *Session) State() (govern.State, govern.SubState) {
	return s.state, s.subState
}

// AttachROM loads the program and attaches it to the machine. The emulation
// is running on success.
func (s *Session) AttachROM(ld romloader.Loader) error {
	err := ld.Load()
	if err != nil {
		return err
	}

	err = s.Machine.AttachROM(ld.Data)
	if err != nil {
		return err
	}

	s.Loader = ld
	s.setState(govern.Running, govern.Normal)

	logger.Logf(s.Machine.Instance, "session", "attached %s (%s)", ld.ShortName(), ld.Hash)

	return nil
}

// Frame advances the emulation by the elapsed time. Nothing happens unless
// the emulation is running.
//
// An error from the machine puts the session into the Halted state and is
// returned. The shell should display the error and keep running; only a
// reset leaves the Halted state.
func (s *Session) Frame(elapsed time.Duration) error {
	if s.state != govern.Running {
		return nil
	}

	err := s.Machine.Run(elapsed)
	if err != nil {
		s.setState(govern.Halted, govern.Normal)
		return err
	}

	if s.Machine.CPU.WaitingForKey() {
		s.setState(govern.Running, govern.WaitingForKey)
	} else {
		s.setState(govern.Running, govern.Normal)
	}

	return nil
}

// Err returns the error that halted the emulation.
func (s *Session) Err() error {
	return s.Machine.Err()
}

// Reset the machine. A halted emulation begins running again.
func (s *Session) Reset() {
	if !s.Machine.HasROM() {
		s.Randomise()
		return
	}
	s.Machine.Reset()
	s.setState(govern.Running, govern.Normal)
}

// TogglePause pauses a running emulation and resumes a paused emulation.
// Returns false if the emulation is in any other state.
func (s *Session) TogglePause() bool {
	switch s.state {
	case govern.Running:
		s.setState(govern.Paused, govern.Normal)
	case govern.Paused:
		if s.subState == govern.NoROM {
			return false
		}
		s.setState(govern.Running, govern.Normal)
	default:
		return false
	}
	return true
}

// Randomise fills the display with random cells. It only has an effect if no
// program has been attached.
func (s *Session) Randomise() bool {
	if s.Machine.HasROM() {
		return false
	}
	s.Machine.FrameBuffer.Randomise(s.Machine.Instance.Random)
	return true
}

// HandleEvent forwards user input to the keypad. Keys that are not part of
// the keypad are hotkeys for the session. Returns true if the session should
// end.
func (s *Session) HandleEvent(ev userinput.Event) bool {
	s.controllers.HandleUserInput(ev, s.Machine.Input)
	if s.controllers.Quit {
		return true
	}
	if s.controllers.LastKeyHandled {
		return false
	}

	kb, ok := ev.(userinput.EventKeyboard)
	if !ok || !kb.Down || kb.Repeat {
		return false
	}

	switch kb.Key {
	case "Escape":
		return true
	case "F5":
		s.Reset()
	case "N":
		s.Randomise()
	case "P":
		s.TogglePause()
	}

	return false
}

// Title returns a string suitable for a window title or status line.
func (s *Session) Title() string {
	t := s.Prefs.Label.String()

	if s.Loader.HasLoaded() {
		t = fmt.Sprintf("%s - %s", t, s.Loader.ShortName())
	}

	switch s.state {
	case govern.Halted:
		if err := s.Err(); err != nil {
			return fmt.Sprintf("%s - %v", t, err)
		}
	case govern.Paused:
		if s.subState == govern.NoROM {
			return fmt.Sprintf("%s (%s)", t, s.subState)
		}
		return fmt.Sprintf("%s (%s)", t, s.state)
	case govern.Running:
		if s.subState == govern.WaitingForKey {
			return fmt.Sprintf("%s (%s)", t, s.subState)
		}
	}

	return t
}

// Save the session and hardware preferences.
func (s *Session) Save() error {
	if err := s.Prefs.Save(); err != nil {
		return curated.Errorf("session: %v", err)
	}
	if err := s.Machine.Instance.Prefs.Save(); err != nil {
		return curated.Errorf("session: %v", err)
	}
	return nil
}

// End the session. Preferences are saved.
func (s *Session) End() error {
	s.setState(govern.Ending, govern.Normal)
	return s.Save()
}

// DumpState writes a graphviz representation of the machine to the writer.
func (s *Session) DumpState(w io.Writer) {
	memviz.Map(w, s.Machine)
}
