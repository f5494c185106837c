package gif

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeinterlace(t *testing.T) {
	// Sequential scan lines of an interlaced 8-row image belong to the
	// destination rows 0, 4, 2, 6, 1, 3, 5, 7.
	const width = 3
	pix := make([]byte, 8*width)
	for i := 0; i < 8; i++ {
		for x := 0; x < width; x++ {
			pix[i*width+x] = byte(i)
		}
	}

	deinterlace(pix, width, 8)

	destRows := []byte{0, 4, 2, 6, 1, 3, 5, 7}
	want := make([]byte, 8*width)
	for i, y := range destRows {
		for x := 0; x < width; x++ {
			want[int(y)*width+x] = byte(i)
		}
	}
	if d := cmp.Diff(want, pix); d != "" {
		t.Errorf("wrong row order (-want +got):\n%s", d)
	}
}

func TestDeinterlaceShort(t *testing.T) {
	// heights where not all passes contribute rows
	for _, height := range []int{1, 2, 3, 5} {
		pix := make([]byte, height)
		for i := range pix {
			pix[i] = byte(i)
		}
		deinterlace(pix, 1, height)

		seen := make([]bool, height)
		for _, b := range pix {
			if int(b) >= height {
				t.Fatalf("height %d: unexpected value %d", height, b)
			}
			seen[b] = true
		}
		for i, ok := range seen {
			if !ok {
				t.Errorf("height %d: row %d lost", height, i)
			}
		}
	}
}
