// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"errors"
	"fmt"
	"io"
)

// ErrorKind classifies why a decode failed.
type ErrorKind int

const (
	// StreamUnavailable means the stream could not be opened or read at all.
	StreamUnavailable ErrorKind = iota + 1
	// Truncated means the stream ended before the format said it would.
	Truncated
	// InvalidHeader means the header is present but describes no valid image.
	InvalidHeader
	// UnsupportedFormat means the image type is not raw or RLE truecolor.
	UnsupportedFormat
	// CorruptRLE means a run-length packet would overrun the pixel buffer.
	CorruptRLE
	// OutOfMemory means the pixel buffer could not be allocated.
	OutOfMemory
)

func (k ErrorKind) String() string {
	switch k {
	case StreamUnavailable:
		return "stream unavailable"
	case Truncated:
		return "truncated"
	case InvalidHeader:
		return "invalid header"
	case UnsupportedFormat:
		return "unsupported format"
	case CorruptRLE:
		return "corrupt rle"
	case OutOfMemory:
		return "out of memory"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is returned by every failing decode. Want and Got are byte counts
// (or field values for InvalidHeader) at the point of failure.
type Error struct {
	Kind   ErrorKind
	Op     string
	Offset int64
	Want   int
	Got    int
	Err    error
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrStreamUnavailable = &Error{Kind: StreamUnavailable}
	ErrTruncated         = &Error{Kind: Truncated}
	ErrInvalidHeader     = &Error{Kind: InvalidHeader}
	ErrUnsupportedFormat = &Error{Kind: UnsupportedFormat}
	ErrCorruptRLE        = &Error{Kind: CorruptRLE}
	ErrOutOfMemory       = &Error{Kind: OutOfMemory}
)

func (e *Error) Error() string {
	msg := "tga: " + e.Kind.String()
	if e.Op != "" {
		msg += " in " + e.Op
	}
	if e.Offset > 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Want != 0 {
		msg += fmt.Sprintf(": want %d, got %d", e.Want, e.Got)
	} else if e.Got != 0 {
		msg += fmt.Sprintf(": got %d", e.Got)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// readError maps an io error from a short read onto the error taxonomy.
func readError(op string, offset int64, want, got int, err error) error {
	kind := Truncated
	if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		kind = StreamUnavailable
	}
	return &Error{
		Kind:   kind,
		Op:     op,
		Offset: offset,
		Want:   want,
		Got:    got,
		Err:    err,
	}
}
