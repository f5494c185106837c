// seehuhn.de/go/gif - decode animated GIF images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package gif

import (
	"bytes"
	"image/color"
	"io"
	"os"
	"time"

	"seehuhn.de/go/gif/lzw"
)

// Block identifiers at the top level of a GIF data stream.
const (
	blockExtension = 0x21
	blockImage     = 0x2C
	blockTrailer   = 0x3B
)

// Extension labels.
const (
	extPlainText      = 0x01
	extGraphicControl = 0xF9
	extComment        = 0xFE
	extApplication    = 0xFF
)

// Options controls optional behaviour of a Reader.  The zero value is
// a valid set of default options.
type Options struct {
	// ForceInfiniteLoop makes the frame sequence repeat forever,
	// regardless of the loop count declared in the file.
	ForceInfiniteLoop bool

	// MinimumFrameDelay is a lower bound for the delay of each emitted
	// frame.  Many files declare a delay of zero; a floor of 20ms or so
	// avoids unbounded playback speed.
	MinimumFrameDelay time.Duration
}

// graphicControl holds the state declared by a graphic control
// extension.  It applies to exactly one following image block and is
// reset to the zero value after that block has been consumed.
type graphicControl struct {
	disposal         byte
	hasTransparency  bool
	transparentIndex byte
	delay            int // in hundredths of a second
}

// Reader decodes an animated GIF data stream frame by frame.  Use
// NewReader or Open to create a Reader.
type Reader struct {
	// Width and Height give the size of the logical screen.  All frames
	// are composited onto a canvas of this size.
	Width, Height int

	// Version is the version tail of the signature, "87a" or "89a".
	Version string

	// GlobalColorTable is the global color table of the file, or nil if
	// the file does not have one.
	GlobalColorTable ColorTable

	// BackgroundIndex is the index of the background color in the
	// global color table.
	BackgroundIndex byte

	// LoopCount is the declared repeat count of the frame sequence:
	// 0 means the sequence repeats forever, a positive value n means
	// the sequence plays n times, and -1 means the file declares no
	// loop count and the sequence plays once.
	LoopCount int

	// Comments collects the contents of all comment extensions seen so
	// far, one string per extension.
	Comments []string

	opt Options

	s        *scanner
	startPos int // position of the first block after the screen descriptor

	comp         *compositor
	gc           graphicControl
	loopIndex    int
	passes       int // total number of passes, 0 for unbounded
	framesInPass int

	err error
}

// Open reads the named file into memory and returns a Reader for it.
func Open(fname string, opt *Options) (*Reader, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return NewReader(data, opt)
}

// NewReader creates a Reader for the GIF data stream in data.  The
// buffer must not be modified while the Reader is in use.
//
// NewReader parses the header and screen descriptor and locates the
// declared loop count, but does not decode any pixel data.
func NewReader(data []byte, opt *Options) (*Reader, error) {
	r := &Reader{}
	if opt != nil {
		r.opt = *opt
	}

	if len(data) < 6 || string(data[:3]) != "GIF" {
		return nil, &MalformedFileError{Err: ErrFormat}
	}
	version := string(data[3:6])
	if version != "87a" && version != "89a" {
		return nil, &MalformedFileError{Err: ErrFormat}
	}
	r.Version = version

	s := newScanner(data)
	r.s = s
	if err := s.skip(6); err != nil {
		return nil, err
	}

	width, err := s.readUint16()
	if err != nil {
		return nil, err
	}
	height, err := s.readUint16()
	if err != nil {
		return nil, err
	}
	flags, err := s.readByte()
	if err != nil {
		return nil, err
	}
	bgIndex, err := s.readByte()
	if err != nil {
		return nil, err
	}
	if err := s.skip(1); err != nil { // pixel aspect ratio, ignored
		return nil, err
	}
	r.Width = int(width)
	r.Height = int(height)
	r.BackgroundIndex = bgIndex

	if flags&0x80 != 0 {
		r.GlobalColorTable, err = readColorTable(s, flags&7)
		if err != nil {
			return nil, err
		}
	}
	r.startPos = s.pos

	// A structural pre-pass locates the declared loop count, so that
	// the total number of decode passes is known before any pixel work
	// begins.
	loopCount := resolveLoopCount(s)
	if err := s.seek(r.startPos); err != nil {
		return nil, err
	}
	r.setLoopCount(loopCount)

	background := color.RGBA{}
	if r.GlobalColorTable != nil && int(bgIndex) < len(r.GlobalColorTable) {
		background = r.GlobalColorTable[bgIndex]
	}
	r.comp = newCompositor(r.Width, r.Height, background)

	return r, nil
}

func (r *Reader) setLoopCount(loopCount int) {
	r.LoopCount = loopCount
	if r.opt.ForceInfiniteLoop {
		r.passes = 0
		return
	}
	switch {
	case loopCount < 0:
		r.passes = 1
	case loopCount == 0:
		r.passes = 0
	default:
		r.passes = loopCount
	}
}

// NextFrame decodes the next frame of the animation and returns the
// composited canvas together with the frame's display duration.
//
// The returned Frame borrows the session canvas: its Image field is
// only valid until the next call to NextFrame or Close.  Callers which
// need the pixels afterwards must copy them.
//
// At the end of the frame sequence, after all passes have completed,
// NextFrame returns io.EOF.  Any other error is fatal to the session,
// and all subsequent calls return the same error.
func (r *Reader) NextFrame() (*Frame, error) {
	if r.err != nil {
		return nil, r.err
	}
	for {
		if r.s.remaining() == 0 {
			// Missing trailer; tolerate the truncation and end the
			// pass here.
			if !r.nextPass() {
				return nil, r.err
			}
			continue
		}
		id, err := r.s.readByte()
		if err != nil {
			return nil, r.fail(err)
		}
		switch id {
		case blockExtension:
			if err := r.readExtension(); err != nil {
				return nil, r.fail(err)
			}
		case blockImage:
			frame, err := r.readFrame()
			if err != nil {
				return nil, r.fail(err)
			}
			return frame, nil
		case blockTrailer:
			if !r.nextPass() {
				return nil, r.err
			}
		default:
			// Garbage at the top level.  Skip a single byte and try to
			// find the next valid block.
		}
	}
}

// nextPass rewinds the stream for another pass through the frame
// sequence.  It reports whether another pass should be decoded; if not,
// r.err is set to io.EOF.
func (r *Reader) nextPass() bool {
	r.loopIndex++
	if r.passes != 0 && r.loopIndex >= r.passes {
		r.err = io.EOF
		return false
	}
	if r.framesInPass == 0 {
		// A pass without any frames would repeat forever; end the
		// sequence instead.
		r.err = io.EOF
		return false
	}
	r.framesInPass = 0
	if err := r.s.seek(r.startPos); err != nil {
		r.err = err
		return false
	}
	r.comp.resetPass()
	r.gc = graphicControl{}
	return true
}

func (r *Reader) fail(err error) error {
	r.err = err
	return err
}

func (r *Reader) readExtension() error {
	label, err := r.s.readByte()
	if err != nil {
		return err
	}
	switch label {
	case extGraphicControl:
		size, err := r.s.readByte()
		if err != nil {
			return err
		}
		if size < 4 {
			return &MalformedFileError{Pos: r.s.filePos(), Err: ErrUnexpectedEOF}
		}
		body, err := r.s.readBytes(int(size))
		if err != nil {
			return err
		}
		r.gc = graphicControl{
			disposal:         body[0] >> 2 & 7,
			hasTransparency:  body[0]&1 != 0,
			delay:            int(body[1]) | int(body[2])<<8,
			transparentIndex: body[3],
		}
		return skipDataBlocks(r.s)
	case extApplication:
		size, err := r.s.readByte()
		if err != nil {
			return err
		}
		ident, err := r.s.readBytes(int(size))
		if err != nil {
			return err
		}
		isNetscape := bytes.HasPrefix(ident, []byte("NETSCAPE"))
		for {
			n, err := r.s.readByte()
			if err != nil {
				return err
			}
			if n == 0 {
				return nil
			}
			body, err := r.s.readBytes(int(n))
			if err != nil {
				return err
			}
			if isNetscape && n == 3 && body[0] == 1 {
				// A loop count seen mid-stream replaces the value found
				// by the pre-pass, for this and all subsequent passes.
				r.setLoopCount(int(body[1]) | int(body[2])<<8)
			}
		}
	case extComment:
		var text []byte
		for {
			n, err := r.s.readByte()
			if err != nil {
				return err
			}
			if n == 0 {
				break
			}
			body, err := r.s.readBytes(int(n))
			if err != nil {
				return err
			}
			text = append(text, body...)
		}
		if r.loopIndex == 0 {
			r.Comments = append(r.Comments, string(text))
		}
		return nil
	default:
		return skipDataBlocks(r.s)
	}
}

func (r *Reader) readFrame() (*Frame, error) {
	left, err := r.s.readUint16()
	if err != nil {
		return nil, err
	}
	top, err := r.s.readUint16()
	if err != nil {
		return nil, err
	}
	width, err := r.s.readUint16()
	if err != nil {
		return nil, err
	}
	height, err := r.s.readUint16()
	if err != nil {
		return nil, err
	}
	flags, err := r.s.readByte()
	if err != nil {
		return nil, err
	}
	interlaced := flags&0x40 != 0

	palette := r.GlobalColorTable
	if flags&0x80 != 0 {
		palette, err = readColorTable(r.s, flags&7)
		if err != nil {
			return nil, err
		}
	}
	if palette == nil {
		return nil, &MalformedFileError{Pos: r.s.filePos(), Err: ErrNoColorTable}
	}

	litWidth, err := r.s.readByte()
	if err != nil {
		return nil, err
	}
	payload, err := r.readImageData()
	if err != nil {
		return nil, err
	}

	pix := make([]byte, int(width)*int(height))
	err = lzw.Decode(pix, payload, int(litWidth))
	if err != nil {
		return nil, &MalformedFileError{Pos: r.s.filePos(), Err: err}
	}
	if interlaced {
		deinterlace(pix, int(width), int(height))
	}

	gc := r.gc
	r.gc = graphicControl{}

	r.comp.draw(int(left), int(top), int(width), int(height), gc, pix, palette)

	delay := time.Duration(gc.delay) * 10 * time.Millisecond
	if delay < r.opt.MinimumFrameDelay {
		delay = r.opt.MinimumFrameDelay
	}
	r.framesInPass++
	return &Frame{
		Image:     r.comp.canvas,
		Delay:     delay,
		LoopIndex: r.loopIndex,
	}, nil
}

// readImageData reassembles the size-prefixed data sub-blocks of an
// image into one contiguous LZW payload.  A sub-block whose declared
// length exceeds the remaining buffer makes the compressed stream
// unusable, so this is reported as a truncated LZW stream.
func (r *Reader) readImageData() ([]byte, error) {
	var payload []byte
	for {
		n, err := r.s.readByte()
		if err != nil {
			return nil, &MalformedFileError{Pos: r.s.filePos(), Err: lzw.ErrTruncated}
		}
		if n == 0 {
			return payload, nil
		}
		body, err := r.s.readBytes(int(n))
		if err != nil {
			return nil, &MalformedFileError{Pos: r.s.filePos(), Err: lzw.ErrTruncated}
		}
		payload = append(payload, body...)
	}
}

// Close releases the canvas and snapshot buffers of the session.  It is
// safe to call Close at any time, including after a decode error, and
// more than once.
func (r *Reader) Close() error {
	if r.err == nil {
		r.err = errClosed
	}
	r.comp = nil
	r.s = nil
	return nil
}
