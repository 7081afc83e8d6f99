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

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/session"
)

const pixelDepth = 4

// the rate at which the window is redrawn and the emulation advanced
const frameRate = 60

// palettes. index zero is the colour of an unlit cell
var (
	lightPalette = [2][3]uint8{{0x00, 0xff, 0x00}, {0x00, 0x00, 0x00}}
	darkPalette  = [2][3]uint8{{0x00, 0x00, 0x00}, {0x00, 0xff, 0x00}}
)

// SdlPlay is a simple SDL host shell for the session.
type SdlPlay struct {
	sess  *session.Session
	prefs *Preferences

	// limit screen updates to a fixed fps
	lmtr *limiter.FpsLimiter

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// the byte array that we copy to the texture. it is equal to width *
	// height * pixelDepth of the frame buffer
	pixels []byte
	width  int32
	height int32

	// the most recent window title. the title is only changed when necessary
	title string
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. The
// Destroy() function should be called when the SdlPlay instance is no longer
// required.
func NewSdlPlay(sess *session.Session) (*SdlPlay, error) {
	scr := &SdlPlay{
		sess:   sess,
		width:  int32(sess.Machine.Display().Width()),
		height: int32(sess.Machine.Display().Height()),
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// window size is set by the PixelScale preference
	scr.window, err = sdl.CreateWindow(sess.Title(),
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		scr.width, scr.height,
		uint32(sdl.WINDOW_HIDDEN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// the texture is the same size as the frame buffer. the renderer scales
	// it to fit the window and keeps the aspect ratio
	err = scr.renderer.SetLogicalSize(scr.width, scr.height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		scr.width, scr.height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.pixels = make([]byte, scr.width*scr.height*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	scr.prefs, err = newPreferences(scr)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.lmtr, err = limiter.NewFPSLimiter(frameRate)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.window.Show()

	return scr, nil
}

// Destroy releases all SDL resources. Preferences are saved.
func (scr *SdlPlay) Destroy() {
	if err := scr.prefs.save(); err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	}

	scr.lmtr.Stop()
	_ = scr.texture.Destroy()
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
	sdl.Quit()
}

// Run the shell until the user quits. Errors from the emulation are shown in
// the window title and do not cause Run() to return.
func (scr *SdlPlay) Run() error {
	for {
		if scr.service() {
			return nil
		}

		elapsed := scr.lmtr.Wait()

		if err := scr.sess.Frame(elapsed); err != nil {
			logger.Log(logger.Allow, "sdlplay", err)
		}

		if err := scr.render(); err != nil {
			return curated.Errorf("sdlplay: %v", err)
		}
	}
}

// set the window size for the pixel scale
func (scr *SdlPlay) setScale(scale int) {
	scr.window.SetSize(scr.width*int32(scale), scr.height*int32(scale))
}

// render copies the frame buffer to the window
func (scr *SdlPlay) render() error {
	if t := scr.sess.Title(); t != scr.title {
		scr.title = t
		scr.window.SetTitle(t)
	}

	palette := &lightPalette
	if scr.prefs.DarkMode.Get().(bool) {
		palette = &darkPalette
	}
	paint(scr.pixels, scr.sess.Machine.Display(), palette)

	err := scr.texture.Update(nil, scr.pixels, int(scr.width*pixelDepth))
	if err != nil {
		return err
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}

// paint the frame buffer into a pixel array. the alpha channel is not touched
func paint(pixels []byte, fb *framebuffer.FrameBuffer, palette *[2][3]uint8) {
	w := fb.Width()
	for y := range fb.Height() {
		for x := range w {
			c := palette[0]
			if fb.Pixel(x, y) {
				c = palette[1]
			}
			i := (y*w + x) * pixelDepth
			pixels[i] = c[0]
			pixels[i+1] = c[1]
			pixels[i+2] = c[2]
		}
	}
}
