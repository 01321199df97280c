// SPDX-License-Identifier: GPL-2.0-or-later
package glh

import (
	"runtime"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"
)

type TexID uint32

type Texture2D struct {
	id uint32
}

func (t *Texture2D) ID() TexID {
	return TexID(t.id)
}

func deleteTexture(id uint32) {
	mainthread.CallNonBlock(func() {
		gl.DeleteTextures(1, &id)
	})
}

func NewTexture2D() *Texture2D {
	t := &Texture2D{}
	gl.GenTextures(1, &t.id)
	runtime.AddCleanup(t, deleteTexture, t.id)
	return t
}

func (t *Texture2D) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// PixelFormat returns the internal format and the client format for tightly
// packed pixels with the given number of channels in TGA byte order.
func PixelFormat(channels int) (int32, uint32, error) {
	switch channels {
	case 1:
		return gl.R8, gl.RED, nil
	case 2:
		return gl.RG8, gl.RG, nil
	case 3:
		return gl.RGB8, gl.BGR, nil
	case 4:
		return gl.RGBA8, gl.BGRA, nil
	}
	return 0, 0, errors.Errorf("no texture format for %d channels", channels)
}

// Upload replaces the texture contents. Row 0 of pixels becomes texture
// row 0. The texture is left bound.
func (t *Texture2D) Upload(width, height, channels int, pixels []byte) error {
	internal, format, err := PixelFormat(channels)
	if err != nil {
		return err
	}
	if len(pixels) != width*height*channels {
		return errors.Errorf("texture upload: %d bytes for %dx%dx%d", len(pixels), width, height, channels)
	}
	t.Bind()
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(width), int32(height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return nil
}
