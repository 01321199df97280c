// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// ImageType is the image_type byte of a TGA header.
type ImageType uint8

const (
	ColorMapped    ImageType = 1
	TrueColor      ImageType = 2
	ColorMappedRLE ImageType = 9
	TrueColorRLE   ImageType = 10
)

func (t ImageType) String() string {
	switch t {
	case ColorMapped:
		return "color-mapped"
	case TrueColor:
		return "truecolor"
	case ColorMappedRLE:
		return "color-mapped rle"
	case TrueColorRLE:
		return "truecolor rle"
	}
	return fmt.Sprintf("ImageType(%d)", uint8(t))
}

const (
	headerSize = 18

	// descriptor origin bits
	originRight = 0x10
	originTop   = 0x20
)

type tgaHeader struct {
	IDLength       uint8
	ColorMapType   uint8
	ImageType      uint8
	ColorMapOrigin uint16
	ColorMapLength uint16
	ColorMapDepth  uint8
	XOrigin        uint16
	YOrigin        uint16
	Width          uint16
	Height         uint16
	PixelDepth     uint8
	Descriptor     uint8
}

func (h *tgaHeader) channels() int {
	return int(h.PixelDepth) / 8
}

func (h *tgaHeader) bufferSize() int64 {
	return int64(h.Width) * int64(h.Height) * int64(h.channels())
}

func (h *tgaHeader) colorMapSize() int64 {
	if h.ColorMapType != 1 {
		return 0
	}
	return int64(h.ColorMapLength) * int64((h.ColorMapDepth+7)/8)
}

// Config is the header information of a TGA stream.
type Config struct {
	Width      int
	Height     int
	Channels   int
	Type       ImageType
	Descriptor uint8
}

// TopToBottom reports whether the stored scanlines start at the top.
func (c Config) TopToBottom() bool {
	return c.Descriptor&originTop != 0
}

// RightToLeft reports whether the stored pixels start at the right edge.
func (c Config) RightToLeft() bool {
	return c.Descriptor&originRight != 0
}

// countingReader tracks the stream offset for error reports.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func (c *countingReader) skip(op string, n int64) error {
	if n == 0 {
		return nil
	}
	start := c.n
	got, err := io.CopyN(io.Discard, c, n)
	if err != nil {
		return readError(op, start, int(n), int(got), err)
	}
	return nil
}

// readHeader reads the fixed header and skips the image id and color map,
// leaving r at the first byte of pixel data.
func readHeader(r *countingReader) (tgaHeader, error) {
	var h tgaHeader
	var raw [headerSize]byte
	if got, err := io.ReadFull(r, raw[:]); err != nil {
		return h, readError("header", 0, headerSize, got, err)
	}
	if err := binary.Read(bytes.NewReader(raw[:]), binary.LittleEndian, &h); err != nil {
		return h, &Error{Kind: InvalidHeader, Op: "header", Err: err}
	}
	if h.Width == 0 {
		return h, &Error{Kind: InvalidHeader, Op: "width", Offset: 12}
	}
	if h.Height == 0 {
		return h, &Error{Kind: InvalidHeader, Op: "height", Offset: 14}
	}
	switch h.PixelDepth {
	case 8, 16, 24, 32:
	default:
		return h, &Error{Kind: InvalidHeader, Op: "pixel depth", Offset: 16, Got: int(h.PixelDepth)}
	}
	if err := r.skip("image id", int64(h.IDLength)); err != nil {
		return h, err
	}
	if err := r.skip("color map", h.colorMapSize()); err != nil {
		return h, err
	}
	return h, nil
}
