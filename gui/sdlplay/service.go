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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
)

// service all outstanding SDL events. returns true if the shell should quit
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			if scr.sess.HandleEvent(userinput.EventQuit{}) {
				return true
			}

		case *sdl.KeyboardEvent:
			kb := userinput.EventKeyboard{
				Key:    sdl.GetKeyName(ev.Keysym.Sym),
				Down:   ev.Type == sdl.KEYDOWN,
				Repeat: ev.Repeat != 0,
				Mod:    keyMod(ev.Keysym.Mod),
			}

			if scr.hotkey(kb) {
				continue // for loop
			}

			if scr.sess.HandleEvent(kb) {
				return true
			}
		}
	}

	return false
}

func keyMod(mod uint16) userinput.KeyMod {
	switch {
	case mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT:
		return userinput.KeyModAlt
	case mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT:
		return userinput.KeyModShift
	case mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL:
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}

// hotkey handles the keys that only make sense for a window. returns true if
// the key has been handled
func (scr *SdlPlay) hotkey(ev userinput.EventKeyboard) bool {
	// the plus key is shifted on most keyboards
	if !ev.Down || (ev.Mod != userinput.KeyModNone && ev.Mod != userinput.KeyModShift) {
		return false
	}

	switch ev.Key {
	case "=", "+", "Keypad +":
		scr.changeScale(1)
	case "-", "Keypad -":
		scr.changeScale(-1)
	case "F1":
		_ = scr.prefs.DarkMode.Set(!scr.prefs.DarkMode.Get().(bool))
	default:
		return false
	}

	return true
}

func (scr *SdlPlay) changeScale(d int) {
	s := scr.prefs.PixelScale.Get().(int) + d
	if s < minPixelScale || s > maxPixelScale {
		return
	}
	if err := scr.prefs.PixelScale.Set(s); err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	}
}
