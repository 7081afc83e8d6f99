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

package termplay

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/term"
	"golang.org/x/sys/unix"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/session"
	"github.com/jetsetilly/gopher8/userinput"
)

// the rate at which the terminal is redrawn and the emulation advanced
const frameRate = 30

// TermPlay is the terminal host shell for the session.
type TermPlay struct {
	sess *session.Session

	input  *term.Term
	output *os.File

	lmtr  *limiter.FpsLimiter
	holds holds

	// an escape sequence split across reads
	pending []byte

	// reused every frame
	buf   []byte
	frame strings.Builder
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type. The terminal is put into raw mode. The Close() function must be
// called to restore the terminal.
func NewTermPlay(sess *session.Session, output *os.File) (*TermPlay, error) {
	tp := &TermPlay{
		sess:   sess,
		output: output,
		buf:    make([]byte, 64),
	}

	fb := sess.Machine.Display()
	cols, rows, err := geometry(output)
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}
	if cols < fb.Width() || rows < fb.Height()/2+1 {
		return nil, curated.Errorf("termplay: terminal too small (%dx%d) needs to be at least %dx%d", cols, rows, fb.Width(), fb.Height()/2+1)
	}

	tp.input, err = term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	tp.lmtr, err = limiter.NewFPSLimiter(frameRate)
	if err != nil {
		_ = tp.input.Restore()
		_ = tp.input.Close()
		return nil, curated.Errorf("termplay: %v", err)
	}

	_, _ = tp.output.WriteString(ansiHideCursor + ansiClear)

	return tp, nil
}

// geometry returns the number of columns and rows of the terminal
func geometry(output *os.File) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(int(output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// Close restores the terminal to the state it was in before NewTermPlay().
func (tp *TermPlay) Close() error {
	tp.lmtr.Stop()
	_, _ = tp.output.WriteString(ansiOff + ansiShowCursor + "\r\n")
	if err := tp.input.Restore(); err != nil {
		return curated.Errorf("termplay: %v", err)
	}
	return tp.input.Close()
}

// Run the shell until the user quits.
func (tp *TermPlay) Run() error {
	for {
		quit, err := tp.service(time.Now())
		if err != nil {
			return curated.Errorf("termplay: %v", err)
		}
		if quit {
			return nil
		}

		elapsed := tp.lmtr.Wait()

		if err := tp.sess.Frame(elapsed); err != nil {
			logger.Log(logger.Allow, "termplay", err)
		}

		tp.frame.Reset()
		render(&tp.frame, tp.sess.Machine.Display(), tp.sess.Title())
		if _, err := tp.output.WriteString(tp.frame.String()); err != nil {
			return curated.Errorf("termplay: %v", err)
		}
	}
}

// service reads all waiting input from the terminal. returns true if the
// shell should quit
func (tp *TermPlay) service(now time.Time) (bool, error) {
	n, err := tp.input.Available()
	if err != nil {
		return false, err
	}

	for n > 0 {
		c, err := tp.input.Read(tp.buf[:min(n, len(tp.buf))])
		if err != nil {
			return false, err
		}
		n -= c

		keys, rest := decodeKeys(append(tp.pending, tp.buf[:c]...))
		tp.pending = append([]byte(nil), rest...)

		for _, k := range keys {
			if k == "Ctrl-C" {
				return true, nil
			}

			// keypad keys are forwarded to the session by the holds
			if tp.holds.press(k, now) {
				continue // for loop
			}

			if tp.sess.HandleEvent(userinput.EventKeyboard{Key: k, Down: true}) {
				return true, nil
			}
		}
	}

	for _, ev := range tp.holds.events(tp.sess.Machine.Input, now) {
		if tp.sess.HandleEvent(ev) {
			return true, nil
		}
	}

	return false, nil
}

func (tp *TermPlay) String() string {
	return fmt.Sprintf("termplay: %s", tp.sess)
}
