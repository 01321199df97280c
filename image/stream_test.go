// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() testFile {
	return newFile(TrueColorRLE, 4, 2, 24, originTop, []byte{
		0x83, 1, 2, 3,
		0x03, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	})
}

func TestDecodeGzip(t *testing.T) {
	want, err := decode(t, sample())
	require.NoError(t, err)

	var b bytes.Buffer
	zw := gzip.NewWriter(&b)
	_, err = zw.Write(sample().bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	got, err := Decode(&b)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeZstd(t *testing.T) {
	want, err := decode(t, sample())
	require.NoError(t, err)

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	require.NoError(t, err)
	compressed := enc.EncodeAll(sample().bytes(), nil)
	require.NoError(t, enc.Close())

	got, err := Decode(bytes.NewReader(compressed))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeTruncatedGzip(t *testing.T) {
	var b bytes.Buffer
	zw := gzip.NewWriter(&b)
	zw.Write(sample().bytes()[:25])
	zw.Close()
	_, err := Decode(&b)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeBrokenGzipHeader(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte{0x1f, 0x8b, 0xff}))
	assert.ErrorIs(t, err, ErrStreamUnavailable)
}
