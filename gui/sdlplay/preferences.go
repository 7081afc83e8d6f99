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
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// Limits and default for the PixelScale preference.
const (
	minPixelScale     = 1
	maxPixelScale     = 40
	defaultPixelScale = 20
)

// Preferences for the SDL window.
type Preferences struct {
	scr *SdlPlay
	dsk *prefs.Disk

	// size of each frame buffer cell in screen pixels
	PixelScale prefs.Int

	// lit cells are drawn in green on black rather than black on green
	DarkMode prefs.Bool
}

func newPreferences(scr *SdlPlay) (*Preferences, error) {
	p := &Preferences{scr: scr}

	p.PixelScale.SetHookPre(func(v prefs.Value) error {
		if s := v.(int); s < minPixelScale || s > maxPixelScale {
			return fmt.Errorf("sdlplay: pixel scale must be between %d and %d", minPixelScale, maxPixelScale)
		}
		return nil
	})
	p.PixelScale.SetHookPost(func(v prefs.Value) error {
		scr.setScale(v.(int))
		return nil
	})

	_ = p.PixelScale.Set(defaultPixelScale)
	_ = p.DarkMode.Set(false)

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("sdlplay.pixelscale", &p.PixelScale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("sdlplay.darkmode", &p.DarkMode)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("sdlplay.windowsize", prefs.NewGeneric(
		func(s string) error {
			var w, h int32
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			if err != nil {
				return err
			}
			scr.window.SetSize(w, h)
			return nil
		},
		func() string {
			w, h := scr.window.GetSize()
			return fmt.Sprintf("%d,%d", w, h)
		},
	))
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("sdlplay.windowpos", prefs.NewGeneric(
		func(s string) error {
			var x, y int32
			_, err := fmt.Sscanf(s, "%d,%d", &x, &y)
			if err != nil {
				return err
			}
			scr.window.SetPosition(x, y)
			return nil
		},
		func() string {
			x, y := scr.window.GetPosition()
			return fmt.Sprintf("%d,%d", x, y)
		},
	))
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	// first run. there is no saved position so centre the window
	if ok, err := p.dsk.DoesNotHaveEntry("sdlplay.windowpos"); err == nil && ok {
		scr.window.SetPosition(sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED)
	}

	return p, nil
}

func (p *Preferences) save() error {
	return p.dsk.Save()
}
