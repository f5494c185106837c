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

// Package lzw implements the variant of Lempel-Ziv-Welch decompression
// used in GIF image files: variable-width codes between 3 and 12 bits,
// read least significant bit first.
//
// This differs from the LZW variant used in TIFF and PDF files, which
// packs codes most significant bit first and switches code widths one
// code earlier.
package lzw

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCode indicates that the compressed stream contains a
	// code which is not defined in the dictionary.
	ErrInvalidCode = errors.New("lzw: invalid code")

	// ErrTruncated indicates that the compressed stream ended before
	// the expected number of bytes could be decoded.
	ErrTruncated = errors.New("lzw: truncated input")
)

const (
	maxWidth = 12
	maxCodes = 1 << maxWidth
)

// Decode decompresses src and stores the result in dst, which must have
// exactly the length of the expected output.  litWidth is the number of
// bits used for literal codes, between 2 and 8.
//
// Decoding stops as soon as dst is full, even if src contains further
// codes.  If src runs out of codes, or ends with the end-of-information
// code, before dst is full, Decode returns ErrTruncated.
//
// The dictionary is kept as an index-addressed table of
// (prefix, suffix byte) pairs, so that decoding does not allocate
// per code.
func Decode(dst, src []byte, litWidth int) error {
	if litWidth < 2 || litWidth > 8 {
		return fmt.Errorf("lzw: literal code width %d out of range", litWidth)
	}

	var (
		prefix  [maxCodes]int16
		suffix  [maxCodes]byte
		length  [maxCodes]int
		scratch [maxCodes]byte
	)

	clear := 1 << litWidth
	end := clear + 1
	width := litWidth + 1
	next := end + 1
	prev := -1
	for i := 0; i < clear; i++ {
		prefix[i] = -1
		suffix[i] = byte(i)
		length[i] = 1
	}

	// first returns the first byte of the dictionary entry for code.
	first := func(code int) byte {
		for prefix[code] >= 0 {
			code = int(prefix[code])
		}
		return suffix[code]
	}

	n := 0

	// emit appends the expansion of code to dst, discarding any bytes
	// beyond the end of dst.
	emit := func(code int) {
		l := length[code]
		i := l
		for code >= 0 {
			i--
			scratch[i] = suffix[code]
			code = int(prefix[code])
		}
		n += copy(dst[n:], scratch[:l])
	}

	var bits uint32
	nBits := 0
	pos := 0

	for n < len(dst) {
		for nBits < width {
			if pos >= len(src) {
				return ErrTruncated
			}
			bits |= uint32(src[pos]) << nBits
			pos++
			nBits += 8
		}
		code := int(bits & (1<<width - 1))
		bits >>= width
		nBits -= width

		switch {
		case code == clear:
			width = litWidth + 1
			next = end + 1
			prev = -1
			continue
		case code == end:
			// Not enough bytes decoded, otherwise the loop would
			// already have terminated.
			return ErrTruncated
		case code < next:
			emit(code)
			if prev >= 0 && next < maxCodes {
				prefix[next] = int16(prev)
				suffix[next] = first(code)
				length[next] = length[prev] + 1
				next++
			}
		case code == next && prev >= 0 && next < maxCodes:
			// The code is not yet in the dictionary.  This can only
			// happen in the "KwKwK" situation, where the new entry is
			// the previous string extended by its own first byte.
			prefix[next] = int16(prev)
			suffix[next] = first(prev)
			length[next] = length[prev] + 1
			next++
			emit(code)
		default:
			return ErrInvalidCode
		}

		if next >= 1<<width && width < maxWidth {
			width++
		}
		prev = code
	}
	return nil
}
