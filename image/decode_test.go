// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, f testFile) (*Image, error) {
	t.Helper()
	return Decode(bytes.NewReader(f.bytes()))
}

func TestDecodeTrueColor(t *testing.T) {
	raw := []byte{
		0x00, 0x01, 0x02, 0x10, 0x11, 0x12,
		0x20, 0x21, 0x22, 0x30, 0x31, 0x32,
	}
	img, err := decode(t, newFile(TrueColor, 2, 2, 24, originTop, raw))
	require.NoError(t, err)
	assert.Equal(t, 2, img.Width)
	assert.Equal(t, 2, img.Height)
	assert.Equal(t, 3, img.Channels)
	assert.Equal(t, 6, img.Pitch)
	assert.Equal(t, raw, img.Buffer)
}

func TestDecodeSizeInvariant(t *testing.T) {
	for _, depth := range []uint8{8, 16, 24, 32} {
		c := int(depth) / 8
		w, h := 5, 3
		img, err := decode(t, newFile(TrueColor, uint16(w), uint16(h), depth, originTop, make([]byte, w*h*c)))
		require.NoError(t, err, "depth %d", depth)
		assert.Equal(t, c, img.Channels)
		assert.Equal(t, w*c, img.Pitch)
		assert.Len(t, img.Buffer, img.Pitch*img.Height)
	}
}

func TestDecodeRLEGray(t *testing.T) {
	img, err := decode(t, newFile(TrueColorRLE, 4, 1, 8, originTop, []byte{0x83, 0x55}))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x55, 0x55, 0x55, 0x55}, img.Buffer)
}

func TestDecodeRLEMixedPackets(t *testing.T) {
	// raw packet of 2 pixels then a run of 3
	data := []byte{
		0x01, 1, 2, 3, 4, 5, 6,
		0x82, 7, 8, 9,
	}
	img, err := decode(t, newFile(TrueColorRLE, 5, 1, 24, originTop, data))
	require.NoError(t, err)
	assert.Len(t, img.Buffer, (2+3)*3)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 7, 8, 9, 7, 8, 9}, img.Buffer)
}

func TestDecodeRLEAcrossRows(t *testing.T) {
	// packets may span scanlines
	img, err := decode(t, newFile(TrueColorRLE, 2, 2, 16, originTop, []byte{0x83, 0xab, 0xcd}))
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0xab, 0xcd}, 4), img.Buffer)
}

func TestDecodeRLEOverrun(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"run", []byte{0x84, 0x55}},
		{"raw", []byte{0x04, 1, 2, 3, 4, 5}},
		{"second packet", []byte{0x81, 0x11, 0x82, 0x22}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := decode(t, newFile(TrueColorRLE, 4, 1, 8, originTop, tt.data))
			assert.Nil(t, img)
			assert.ErrorIs(t, err, ErrCorruptRLE)
		})
	}
}

func TestDecodeRLETruncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		op   string
	}{
		{"no packets", nil, "rle control byte"},
		{"after first packet", []byte{0x81, 0x11}, "rle control byte"},
		{"raw payload", []byte{0x03, 1, 2}, "rle raw packet"},
		{"run pixel", []byte{0x83}, "rle run packet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := decode(t, newFile(TrueColorRLE, 4, 1, 8, originTop, tt.data))
			assert.Nil(t, img)
			var e *Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, Truncated, e.Kind)
			assert.Equal(t, tt.op, e.Op)
		})
	}
}

func TestDecodeRawTruncated(t *testing.T) {
	img, err := decode(t, newFile(TrueColor, 2, 2, 24, originTop, make([]byte, 11)))
	assert.Nil(t, img)
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, Truncated, e.Kind)
	assert.Equal(t, 12, e.Want)
	assert.Equal(t, 11, e.Got)
	assert.Equal(t, int64(headerSize), e.Offset)
}

func TestDecodeUnsupported(t *testing.T) {
	for _, typ := range []ImageType{0, ColorMapped, 3, ColorMappedRLE, 11, 32} {
		f := newFile(typ, 1, 1, 8, originTop, []byte{0})
		_, err := decode(t, f)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, "type %v", typ)
	}
}

func TestDecodeTooLarge(t *testing.T) {
	old := MaxBufferSize
	MaxBufferSize = 15
	defer func() { MaxBufferSize = old }()
	_, err := decode(t, newFile(TrueColor, 4, 4, 8, originTop, make([]byte, 16)))
	assert.ErrorIs(t, err, ErrOutOfMemory)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestDecodeReadFailure(t *testing.T) {
	_, err := Decode(failingReader{})
	assert.ErrorIs(t, err, ErrStreamUnavailable)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestErrorString(t *testing.T) {
	err := &Error{Kind: CorruptRLE, Op: "rle packet", Offset: 20, Want: 3, Got: 5}
	assert.Equal(t, "tga: corrupt rle in rle packet at offset 20: want 3, got 5", err.Error())
	assert.False(t, errors.Is(err, ErrTruncated))
}
