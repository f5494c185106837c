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

// interlaceScan describes one pass of the GIF interlace scheme.
type interlaceScan struct {
	skip, start int
}

var interlacing = []interlaceScan{
	{8, 0}, // pass 1: every 8th row, starting with row 0
	{8, 4}, // pass 2: every 8th row, starting with row 4
	{4, 2}, // pass 3: every 4th row, starting with row 2
	{2, 1}, // pass 4: every 2nd row, starting with row 1
}

// deinterlace rearranges the rows of pix, in place, from interlaced
// scan order into natural top-to-bottom order.
func deinterlace(pix []byte, width, height int) {
	nPix := make([]byte, width*height)
	offset := 0 // steps through the input by sequential scan lines
	for _, pass := range interlacing {
		for y := pass.start; y < height; y += pass.skip {
			copy(nPix[y*width:(y+1)*width], pix[offset:offset+width])
			offset += width
		}
	}
	copy(pix, nPix)
}
