// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"io"
)

// MaxBufferSize caps the pixel buffer a header may request. Larger images
// fail with OutOfMemory instead of attempting the allocation.
var MaxBufferSize int64 = 1 << 30

// decodePixels reads the pixel data that follows the header into a buffer of
// exactly width*height*channels bytes.
func decodePixels(r *countingReader, h tgaHeader) ([]byte, error) {
	typ := ImageType(h.ImageType)
	if typ != TrueColor && typ != TrueColorRLE {
		return nil, &Error{Kind: UnsupportedFormat, Op: typ.String(), Offset: 2, Got: int(h.ImageType)}
	}
	size := h.bufferSize()
	if size > MaxBufferSize {
		return nil, &Error{Kind: OutOfMemory, Op: "pixel buffer", Want: int(size)}
	}
	if typ == TrueColor {
		return readRaw(r, int(size))
	}
	return readRLE(r, int(size), h.channels())
}

func readRaw(r *countingReader, size int) ([]byte, error) {
	start := r.n
	buf := make([]byte, size)
	if got, err := io.ReadFull(r, buf); err != nil {
		return nil, readError("pixels", start, size, got, err)
	}
	return buf, nil
}

// readRLE runs the packet loop until size bytes are written. Every packet
// covers whole pixels, so written is always a multiple of bpp.
func readRLE(r *countingReader, size, bpp int) ([]byte, error) {
	buf := make([]byte, size)
	var ctrl [1]byte
	written := 0
	for written < size {
		at := r.n
		if _, err := io.ReadFull(r, ctrl[:]); err != nil {
			return nil, readError("rle control byte", at, 1, 0, err)
		}
		c := ctrl[0]
		n := (int(c&0x7f) + 1) * bpp
		if written+n > size {
			return nil, &Error{Kind: CorruptRLE, Op: "rle packet", Offset: at, Want: size - written, Got: n}
		}
		dst := buf[written : written+n]
		if c < 0x80 {
			if got, err := io.ReadFull(r, dst); err != nil {
				return nil, readError("rle raw packet", at+1, n, got, err)
			}
		} else {
			if got, err := io.ReadFull(r, dst[:bpp]); err != nil {
				return nil, readError("rle run packet", at+1, bpp, got, err)
			}
			for i := bpp; i < n; i += bpp {
				copy(dst[i:i+bpp], dst[:bpp])
			}
		}
		written += n
	}
	return buf, nil
}
