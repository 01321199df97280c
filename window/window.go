// SPDX-License-Identifier: GPL-2.0-or-later

// Package window shows images in an SDL window. All functions must run on
// the main thread.
package window

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/liusijiaaa/test-render/glh"
	"github.com/liusijiaaa/test-render/texture"
)

var (
	window      *sdl.Window
	context     sdl.GLContext
	shouldClose bool

	quad    *glh.VertexArray
	quadBuf *glh.Buffer
	prog    *glh.Program
)

const vertexSource = `#version 330 core
layout (location = 0) in vec2 position;
layout (location = 1) in vec2 texcoord;
uniform vec2 scale;
out vec2 uv;
void main() {
	uv = texcoord;
	gl_Position = vec4(position * scale, 0.0, 1.0);
}
`

const fragmentSource = `#version 330 core
in vec2 uv;
uniform sampler2D tex;
uniform int channels;
out vec4 color;
void main() {
	vec4 c = texture(tex, uv);
	if (channels == 1) {
		color = vec4(c.rrr, 1.0);
	} else if (channels == 2) {
		color = vec4(c.rrr, c.g);
	} else if (channels == 3) {
		color = vec4(c.rgb, 1.0);
	} else {
		color = c;
	}
}
`

// position x, y then texcoord u, v. Texture row 0 is the top of the image.
var quadVertices = []float32{
	-1, -1, 0, 1,
	1, -1, 1, 1,
	-1, 1, 0, 0,
	1, 1, 1, 0,
}

// Create opens a window with a GL context of the given client size.
func Create(title string, width, height int) error {
	if window != nil {
		return errors.New("window already created")
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	w, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height), sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE|sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return err
	}
	window = w
	context, err = window.GLCreateContext()
	if err != nil {
		Destroy()
		return errors.Wrap(err, "create GL context")
	}
	if err := gl.Init(); err != nil {
		Destroy()
		return errors.Wrap(err, "init gl")
	}
	sdl.GLSetSwapInterval(1)
	if err := initQuad(); err != nil {
		Destroy()
		return err
	}
	shouldClose = false
	return nil
}

func initQuad() error {
	var err error
	prog, err = glh.NewProgram(vertexSource, fragmentSource)
	if err != nil {
		return err
	}
	quad = glh.NewVertexArray()
	quad.Bind()
	quadBuf = glh.NewBuffer(glh.ArrayBuffer)
	quadBuf.Bind()
	quadBuf.SetData(4*len(quadVertices), glh.Ptr(quadVertices))
	glh.VertexAttrib(0, 2, 16, 0)
	glh.VertexAttrib(1, 2, 16, 8)
	return nil
}

// Destroy closes the window. It is safe to call more than once.
func Destroy() {
	prog, quad, quadBuf = nil, nil, nil
	if context != nil {
		sdl.GLDeleteContext(context)
		context = nil
	}
	if window != nil {
		window.Destroy()
		window = nil
		sdl.Quit()
	}
}

func ShouldClose() bool {
	return shouldClose
}

// PollEvents handles pending events. Closing the window or pressing escape
// or q requests shutdown.
func PollEvents() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			shouldClose = true
		case *sdl.KeyboardEvent:
			if e.State == sdl.PRESSED && (e.Keysym.Sym == sdl.K_ESCAPE || e.Keysym.Sym == sdl.K_q) {
				shouldClose = true
			}
		}
	}
}

// fit returns the quad scale that letterboxes an iw x ih image into the
// drawable area.
func fit(iw, ih, dw, dh int) (float32, float32) {
	if iw <= 0 || ih <= 0 || dw <= 0 || dh <= 0 {
		return 1, 1
	}
	ia := float32(iw) / float32(ih)
	da := float32(dw) / float32(dh)
	if ia > da {
		return 1, da / ia
	}
	return ia / da, 1
}

// DrawImage shows t, scaled to fit the window, and swaps buffers.
func DrawImage(t *texture.Texture) error {
	if window == nil {
		return errors.New("no window")
	}
	dw, dh := window.GLGetDrawableSize()
	gl.Viewport(0, 0, dw, dh)
	gl.ClearColor(0.1, 0.1, 0.1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.ActiveTexture(gl.TEXTURE0)
	if err := t.Bind(); err != nil {
		return err
	}
	img := t.Image
	sx, sy := fit(img.Width, img.Height, int(dw), int(dh))
	prog.Use()
	prog.SetInt("tex", 0)
	prog.SetInt("channels", int32(img.Channels))
	prog.SetVec2("scale", sx, sy)
	quad.Bind()
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	window.GLSwap()
	return nil
}
