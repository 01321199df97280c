// SPDX-License-Identifier: GPL-2.0-or-later

// Package image decodes TGA files into owned pixel buffers.
//
// Pixels keep the byte order of the file: B,G,R for 24 bit and B,G,R,A for
// 32 bit images. Decoded buffers always start at the top-left pixel.
package image

import (
	"image"
	"image/png"
	"io"
	"os"

	"github.com/liusijiaaa/test-render/filesystem"
)

// Image is a tightly packed pixel buffer, Pitch == Width*Channels.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pitch    int
	Buffer   []byte
}

// New returns a zeroed image.
func New(width, height, channels int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, &Error{Kind: InvalidHeader, Op: "dimensions", Got: width * height}
	}
	if channels < 1 || channels > 4 {
		return nil, &Error{Kind: InvalidHeader, Op: "channels", Got: channels}
	}
	size := int64(width) * int64(height) * int64(channels)
	if size > MaxBufferSize {
		return nil, &Error{Kind: OutOfMemory, Op: "pixel buffer", Want: int(size)}
	}
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pitch:    width * channels,
		Buffer:   make([]byte, size),
	}, nil
}

// Release drops the pixel buffer. A released image is empty.
func Release(img *Image) {
	if img == nil {
		return
	}
	img.Buffer = nil
	img.Width, img.Height, img.Pitch = 0, 0, 0
}

func (img *Image) row(y int) []byte {
	return img.Buffer[y*img.Pitch : (y+1)*img.Pitch]
}

// Color is a pixel in TGA byte order.
type Color struct {
	B, G, R, A uint8
}

func gray(c Color) uint8 {
	return uint8((299*int(c.R) + 587*int(c.G) + 114*int(c.B) + 500) / 1000)
}

// At returns the pixel at x, y or the zero color outside the image.
// One and two channel images are gray and gray+alpha.
func (img *Image) At(x, y int) Color {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return Color{}
	}
	p := img.Buffer[y*img.Pitch+x*img.Channels:]
	switch img.Channels {
	case 1:
		return Color{p[0], p[0], p[0], 255}
	case 2:
		return Color{p[0], p[0], p[0], p[1]}
	case 3:
		return Color{p[0], p[1], p[2], 255}
	}
	return Color{p[0], p[1], p[2], p[3]}
}

// Set writes c at x, y. Coordinates outside the image are ignored.
func (img *Image) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return
	}
	p := img.Buffer[y*img.Pitch+x*img.Channels:]
	switch img.Channels {
	case 1:
		p[0] = gray(c)
	case 2:
		p[0], p[1] = gray(c), c.A
	case 3:
		p[0], p[1], p[2] = c.B, c.G, c.R
	default:
		p[0], p[1], p[2], p[3] = c.B, c.G, c.R, c.A
	}
}

// NRGBA converts img into a standard library image.
func (img *Image) NRGBA() *image.NRGBA {
	n := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			i := n.PixOffset(x, y)
			n.Pix[i+0] = c.R
			n.Pix[i+1] = c.G
			n.Pix[i+2] = c.B
			n.Pix[i+3] = c.A
		}
	}
	return n
}

// WritePNG stores img as a png file.
func WritePNG(name string, img *Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img.NRGBA()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load decodes the named TGA file. Names are resolved through the mounted
// filesystem if there is one, otherwise through the OS. A name without
// extension gets ".tga" appended.
func Load(name string) (*Image, error) {
	if filesystem.Ext(name) == "" {
		name += ".tga"
	}
	f, err := open(name)
	if err != nil {
		return nil, &Error{Kind: StreamUnavailable, Op: "open " + name, Err: err}
	}
	defer f.Close()
	return Decode(f)
}

func open(name string) (io.ReadCloser, error) {
	if filesystem.Mounted() {
		return filesystem.Open(name)
	}
	return os.Open(name)
}

// Decode reads a TGA image from r.
func Decode(r io.Reader) (*Image, error) {
	ur, done, err := unwrap(r)
	if err != nil {
		return nil, err
	}
	defer done()
	cr := &countingReader{r: ur}
	h, err := readHeader(cr)
	if err != nil {
		return nil, err
	}
	buf, err := decodePixels(cr, h)
	if err != nil {
		return nil, err
	}
	img := &Image{
		Width:    int(h.Width),
		Height:   int(h.Height),
		Channels: h.channels(),
		Pitch:    int(h.Width) * h.channels(),
		Buffer:   buf,
	}
	normalizeOrientation(img, h.Descriptor)
	return img, nil
}

// DecodeConfig reads only the header of a TGA image.
func DecodeConfig(r io.Reader) (Config, error) {
	ur, done, err := unwrap(r)
	if err != nil {
		return Config{}, err
	}
	defer done()
	h, err := readHeader(&countingReader{r: ur})
	if err != nil {
		return Config{}, err
	}
	return Config{
		Width:      int(h.Width),
		Height:     int(h.Height),
		Channels:   h.channels(),
		Type:       ImageType(h.ImageType),
		Descriptor: h.Descriptor,
	}, nil
}
