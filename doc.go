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

// Package gif decodes animated GIF images (GIF87a and GIF89a) into a
// sequence of fully composited RGBA frames.
//
// A `Reader` produces one frame per call to NextFrame, together with
// the duration for which the frame should be shown.  Pacing is left to
// the caller; the Reader never blocks between frames:
//
//	r, err := gif.Open("in.gif", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//	for {
//	    frame, err := r.NextFrame()
//	    if err == io.EOF {
//	        break
//	    } else if err != nil {
//	        log.Fatal(err)
//	    }
//	    show(frame.Image)
//	    time.Sleep(frame.Delay)
//	}
//
// The frame sequence repeats according to the loop count declared in
// the file.  `DecodeAll` can be used instead to decode every frame of a
// single pass in one call.
package gif
