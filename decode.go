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
	"errors"
	"image"
	"io"
	"time"
)

// Frame is one step of the animation: the fully composited canvas
// together with the duration for which it should be displayed.
type Frame struct {
	// Image is a view of the session canvas.  It is shared between all
	// frames of the session and is overwritten by the next call to
	// NextFrame.
	Image *image.RGBA

	// Delay is the display duration of this frame.
	Delay time.Duration

	// LoopIndex is the number of complete passes through the frame
	// sequence before this frame.
	LoopIndex int
}

// Config holds the properties of a GIF data stream which can be
// determined without decoding any pixel data.
type Config struct {
	Width, Height   int
	Version         string
	ColorTable      ColorTable
	BackgroundIndex byte
	LoopCount       int
}

// ReadConfig returns the screen dimensions, global color table and loop
// count of the GIF data stream in data, without decoding any frames.
func ReadConfig(data []byte) (*Config, error) {
	r, err := NewReader(data, nil)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return &Config{
		Width:           r.Width,
		Height:          r.Height,
		Version:         r.Version,
		ColorTable:      r.GlobalColorTable,
		BackgroundIndex: r.BackgroundIndex,
		LoopCount:       r.LoopCount,
	}, nil
}

// GIF holds every frame of an animation, decoded in one go.
type GIF struct {
	Width, Height int

	// Frames holds one composited canvas copy per frame.
	Frames []*image.RGBA

	// Delays gives the display duration of each frame.
	// len(Delays) == len(Frames).
	Delays []time.Duration

	// LoopCount is the declared repeat count, with the same meaning as
	// Reader.LoopCount.
	LoopCount int

	Comments []string
}

// DecodeAll decodes every frame of the data stream in data.  The frame
// sequence is decoded once, regardless of the declared loop count; the
// count is reported in the LoopCount field for the caller's playback
// logic.
func DecodeAll(data []byte, opt *Options) (*GIF, error) {
	r, err := NewReader(data, opt)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	g := &GIF{
		Width:     r.Width,
		Height:    r.Height,
		LoopCount: r.LoopCount,
	}
	for {
		frame, err := r.NextFrame()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if frame.LoopIndex > 0 {
			break
		}
		img := image.NewRGBA(frame.Image.Rect)
		copy(img.Pix, frame.Image.Pix)
		g.Frames = append(g.Frames, img)
		g.Delays = append(g.Delays, frame.Delay)
	}
	g.Comments = r.Comments
	if len(g.Frames) == 0 {
		return nil, &MalformedFileError{Err: errors.New("no frames in GIF data")}
	}
	return g, nil
}
