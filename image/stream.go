// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"bufio"
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// unwrap returns a buffered reader over the TGA bytes in r. Streams that
// start with a gzip or zstd frame are decompressed on the fly. TGA has no
// magic of its own, so a plain stream is passed through unchanged.
// The returned func releases decompressor state and must always be called.
func unwrap(r io.Reader) (io.Reader, func(), error) {
	br := bufio.NewReader(r)
	magic, _ := br.Peek(len(zstdMagic))
	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, &Error{Kind: StreamUnavailable, Op: "gzip", Err: err}
		}
		return bufio.NewReader(zr), func() { zr.Close() }, nil
	case bytes.Equal(magic, zstdMagic):
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, nil, &Error{Kind: StreamUnavailable, Op: "zstd", Err: err}
		}
		return bufio.NewReader(zr), zr.Close, nil
	}
	return br, func() {}, nil
}
