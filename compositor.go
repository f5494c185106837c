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
	"image"
	"image/color"
)

// Disposal methods, as stored in the graphic control extension.
const (
	disposalNone       = 0x00 // unspecified
	disposalKeep       = 0x01 // do not dispose
	disposalBackground = 0x02 // restore to background color
	disposalPrevious   = 0x03 // restore to previous canvas contents
)

// compositor owns the canvas of one decode session.  Before each new
// frame is drawn, the disposal method of the previously drawn frame is
// applied; then the frame's pixel indices are blitted through the
// active palette.
type compositor struct {
	canvas     *image.RGBA
	background color.RGBA

	prevDisposal byte
	prevRect     image.Rectangle
	snapshot     *image.RGBA
}

func newCompositor(width, height int, background color.RGBA) *compositor {
	c := &compositor{
		canvas:     image.NewRGBA(image.Rect(0, 0, width, height)),
		background: background,
	}
	c.fill(c.canvas.Rect, background)
	return c
}

// resetPass prepares the compositor for a fresh pass through the frame
// sequence.  The canvas itself is kept; only the disposal bookkeeping
// is cleared.
func (c *compositor) resetPass() {
	c.prevDisposal = disposalNone
	c.prevRect = image.Rectangle{}
	c.snapshot = nil
}

// draw composites one decoded frame onto the canvas.  pix holds the
// frame's palette indices in row-major order, already deinterlaced.
func (c *compositor) draw(left, top, width, height int, gc graphicControl, pix []byte, palette ColorTable) {
	switch c.prevDisposal {
	case disposalBackground:
		c.fill(c.prevRect, c.background)
	case disposalPrevious:
		if c.snapshot != nil {
			copy(c.canvas.Pix, c.snapshot.Pix)
			c.snapshot = nil
		}
	}

	if gc.disposal == disposalPrevious {
		snap := image.NewRGBA(c.canvas.Rect)
		copy(snap.Pix, c.canvas.Pix)
		c.snapshot = snap
	}

	r := image.Rect(left, top, left+width, top+height)
	clipped := r.Intersect(c.canvas.Rect)
	for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
		row := (y-top)*width - left
		i := c.canvas.PixOffset(clipped.Min.X, y)
		for x := clipped.Min.X; x < clipped.Max.X; x++ {
			idx := pix[row+x]
			if gc.hasTransparency && idx == gc.transparentIndex {
				i += 4
				continue
			}
			if int(idx) >= len(palette) {
				// out-of-range pixel, leave the canvas untouched
				i += 4
				continue
			}
			col := palette[idx]
			c.canvas.Pix[i] = col.R
			c.canvas.Pix[i+1] = col.G
			c.canvas.Pix[i+2] = col.B
			c.canvas.Pix[i+3] = 0xFF
			i += 4
		}
	}

	c.prevDisposal = gc.disposal
	c.prevRect = clipped
}

func (c *compositor) fill(r image.Rectangle, col color.RGBA) {
	r = r.Intersect(c.canvas.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := c.canvas.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			c.canvas.Pix[i] = col.R
			c.canvas.Pix[i+1] = col.G
			c.canvas.Pix[i+2] = col.B
			c.canvas.Pix[i+3] = col.A
			i += 4
		}
	}
}
