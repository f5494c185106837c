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

// Package makegif assembles GIF data streams in memory, for use in
// tests.  The builder methods panic on invalid arguments, since they
// are only meant to construct known-good (or deliberately damaged)
// test inputs.
package makegif

import (
	"bytes"
	"compress/lzw"
)

// Disposal methods for use with [Builder.GraphicControl].
const (
	DisposalNone       = 0x00
	DisposalKeep       = 0x01
	DisposalBackground = 0x02
	DisposalPrevious   = 0x03
)

// Builder accumulates the blocks of a GIF data stream.
type Builder struct {
	buf        bytes.Buffer
	globalBits int
}

// New starts a GIF89a data stream with the given screen size.  If
// palette is non-nil it becomes the global color table; its length must
// be a power of two between 2 and 256.
func New(width, height int, palette [][3]byte, bgIndex byte) *Builder {
	b := &Builder{}
	b.buf.WriteString("GIF89a")
	b.word(width)
	b.word(height)
	if palette != nil {
		sizeField := paletteSizeField(len(palette))
		b.buf.WriteByte(0x80 | sizeField)
		b.buf.WriteByte(bgIndex)
		b.buf.WriteByte(0) // pixel aspect ratio
		b.writePalette(palette)
		b.globalBits = int(sizeField) + 1
	} else {
		b.buf.WriteByte(0)
		b.buf.WriteByte(bgIndex)
		b.buf.WriteByte(0)
	}
	return b
}

// GraphicControl appends a graphic control extension.  transparent is
// the transparent palette index, or -1 for no transparency.  The delay
// is in hundredths of a second.
func (b *Builder) GraphicControl(disposal byte, delayCS int, transparent int) *Builder {
	flags := disposal << 2
	idx := 0
	if transparent >= 0 {
		flags |= 1
		idx = transparent
	}
	b.buf.Write([]byte{0x21, 0xF9, 4, flags, byte(delayCS), byte(delayCS >> 8), byte(idx), 0})
	return b
}

// Loop appends a NETSCAPE2.0 application extension with the given
// repeat count.  A count of 0 means "repeat forever".
func (b *Builder) Loop(count int) *Builder {
	b.buf.Write([]byte{0x21, 0xFF, 11})
	b.buf.WriteString("NETSCAPE2.0")
	b.buf.Write([]byte{3, 1, byte(count), byte(count >> 8), 0})
	return b
}

// Comment appends a comment extension.
func (b *Builder) Comment(text string) *Builder {
	b.buf.Write([]byte{0x21, 0xFE})
	for len(text) > 255 {
		b.buf.WriteByte(255)
		b.buf.WriteString(text[:255])
		text = text[255:]
	}
	if len(text) > 0 {
		b.buf.WriteByte(byte(len(text)))
		b.buf.WriteString(text)
	}
	b.buf.WriteByte(0)
	return b
}

// Image appends an image descriptor and the LZW-compressed pixel data.
// pix holds the palette indices in row-major order; len(pix) must be
// width*height.  If palette is non-nil it becomes the local color table
// of the image.
func (b *Builder) Image(left, top, width, height int, pix []byte, interlaced bool, palette [][3]byte) *Builder {
	if len(pix) != width*height {
		panic("makegif: pixel count does not match image size")
	}
	b.buf.WriteByte(0x2C)
	b.word(left)
	b.word(top)
	b.word(width)
	b.word(height)

	bits := b.globalBits
	var flags byte
	if interlaced {
		flags |= 0x40
	}
	if palette != nil {
		sizeField := paletteSizeField(len(palette))
		flags |= 0x80 | sizeField
		bits = int(sizeField) + 1
	}
	b.buf.WriteByte(flags)
	if palette != nil {
		b.writePalette(palette)
	}

	if interlaced {
		pix = interlace(pix, width, height)
	}

	litWidth := max(bits, 2)
	b.buf.WriteByte(byte(litWidth))

	var compressed bytes.Buffer
	w := lzw.NewWriter(&compressed, lzw.LSB, litWidth)
	_, err := w.Write(pix)
	if err == nil {
		err = w.Close()
	}
	if err != nil {
		panic("makegif: " + err.Error())
	}
	data := compressed.Bytes()
	for len(data) > 0 {
		n := min(len(data), 255)
		b.buf.WriteByte(byte(n))
		b.buf.Write(data[:n])
		data = data[n:]
	}
	b.buf.WriteByte(0)
	return b
}

// Raw appends arbitrary bytes to the stream, to construct damaged or
// unusual inputs.
func (b *Builder) Raw(data ...byte) *Builder {
	b.buf.Write(data)
	return b
}

// Trailer appends the trailer byte which ends the block sequence.
func (b *Builder) Trailer() *Builder {
	b.buf.WriteByte(0x3B)
	return b
}

// Bytes returns the assembled data stream.
func (b *Builder) Bytes() []byte {
	return b.buf.Bytes()
}

func (b *Builder) word(x int) {
	b.buf.WriteByte(byte(x))
	b.buf.WriteByte(byte(x >> 8))
}

func (b *Builder) writePalette(palette [][3]byte) {
	for _, c := range palette {
		b.buf.Write(c[:])
	}
}

// paletteSizeField returns the 3-bit size exponent for a palette with n
// entries, so that n == 2<<sizeField.
func paletteSizeField(n int) byte {
	for e := 0; e < 8; e++ {
		if 2<<e == n {
			return byte(e)
		}
	}
	panic("makegif: palette size is not a power of two between 2 and 256")
}

// interlace reorders the rows of pix from natural order into the 4-pass
// interlaced scan order used in GIF files.
func interlace(pix []byte, width, height int) []byte {
	out := make([]byte, 0, len(pix))
	for _, pass := range [][2]int{{8, 0}, {8, 4}, {4, 2}, {2, 1}} {
		for y := pass[1]; y < height; y += pass[0] {
			out = append(out, pix[y*width:(y+1)*width]...)
		}
	}
	return out
}
