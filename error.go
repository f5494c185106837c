package gif

import (
	"errors"
	"strconv"
)

var (
	// ErrFormat indicates that the data does not start with a valid
	// GIF87a or GIF89a signature.
	ErrFormat = errors.New("not a GIF file")

	// ErrUnexpectedEOF indicates that the data stream ended in the
	// middle of a structure.
	ErrUnexpectedEOF = errors.New("unexpected end of stream")

	// ErrColorTable indicates that a color table is shorter than its
	// declared size.
	ErrColorTable = errors.New("truncated color table")

	// ErrNoColorTable indicates that an image has neither a local nor a
	// global color table.
	ErrNoColorTable = errors.New("no color table for image")

	errClosed = errors.New("reader is closed")
)

// MalformedFileError indicates that the GIF data stream could not be
// decoded.
type MalformedFileError struct {
	Pos int64
	Err error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return "not a valid GIF file" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}
