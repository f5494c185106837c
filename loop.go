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

import "bytes"

// resolveLoopCount performs a structural pass over the block sequence,
// starting at the current position of s, and returns the declared
// repeat count of the animation: the value of the last NETSCAPE
// application extension seen, 0 for "repeat forever", or -1 if no such
// extension is present.
//
// The pass recognizes every block type just well enough to skip its
// payload; no pixel data is decoded.  Malformed or truncated trailing
// data ends the pass silently, the real decode pass reports such
// errors.  The caller is responsible for rewinding s afterwards.
func resolveLoopCount(s *scanner) int {
	loopCount := -1
	for {
		id, err := s.readByte()
		if err != nil {
			return loopCount
		}
		switch id {
		case blockExtension:
			label, err := s.readByte()
			if err != nil {
				return loopCount
			}
			if label != extApplication {
				if skipDataBlocks(s) != nil {
					return loopCount
				}
				continue
			}
			n, err := s.readByte()
			if err != nil {
				return loopCount
			}
			ident, err := s.readBytes(int(n))
			if err != nil {
				return loopCount
			}
			isNetscape := bytes.HasPrefix(ident, []byte("NETSCAPE"))
			for {
				n, err := s.readByte()
				if err != nil {
					return loopCount
				}
				if n == 0 {
					break
				}
				body, err := s.readBytes(int(n))
				if err != nil {
					return loopCount
				}
				if isNetscape && n == 3 && body[0] == 1 {
					loopCount = int(body[1]) | int(body[2])<<8
				}
			}
		case blockImage:
			// descriptor: 4 coordinate words and the packed flags byte
			if s.skip(8) != nil {
				return loopCount
			}
			flags, err := s.readByte()
			if err != nil {
				return loopCount
			}
			if flags&0x80 != 0 {
				if s.skip(3 * (2 << (flags & 7))) != nil {
					return loopCount
				}
			}
			// LZW minimum code size byte, then the data sub-blocks
			if s.skip(1) != nil {
				return loopCount
			}
			if skipDataBlocks(s) != nil {
				return loopCount
			}
		case blockTrailer:
			return loopCount
		default:
			// garbage byte, skip it
		}
	}
}

func skipDataBlocks(s *scanner) error {
	for {
		n, err := s.readByte()
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		if err := s.skip(int(n)); err != nil {
			return err
		}
	}
}
