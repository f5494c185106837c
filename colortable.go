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

import "image/color"

// ColorTable is a GIF color palette.  The number of entries is always a
// power of two between 2 and 256.  All entries are fully opaque;
// transparency in GIF files is expressed per frame, by marking one
// palette index as transparent.
type ColorTable []color.RGBA

// readColorTable reads a color table from the stream.  The sizeField
// argument is the 3-bit size exponent from the packed flags byte of the
// screen descriptor or image descriptor; the table has 2<<sizeField
// entries of 3 bytes each.
func readColorTable(s *scanner, sizeField byte) (ColorTable, error) {
	numColors := 2 << (sizeField & 7)
	raw, err := s.readBytes(3 * numColors)
	if err != nil {
		return nil, &MalformedFileError{Pos: s.filePos(), Err: ErrColorTable}
	}
	table := make(ColorTable, numColors)
	for i := range table {
		table[i] = color.RGBA{raw[3*i], raw[3*i+1], raw[3*i+2], 0xFF}
	}
	return table, nil
}
