package gif

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadColorTable(t *testing.T) {
	data := []byte{
		0xFF, 0x00, 0x00,
		0x00, 0xFF, 0x00,
		0x00, 0x00, 0xFF,
		0x10, 0x20, 0x30,
	}
	table, err := readColorTable(newScanner(data), 1)
	if err != nil {
		t.Fatal(err)
	}
	want := ColorTable{
		{0xFF, 0x00, 0x00, 0xFF},
		{0x00, 0xFF, 0x00, 0xFF},
		{0x00, 0x00, 0xFF, 0xFF},
		{0x10, 0x20, 0x30, 0xFF},
	}
	if d := cmp.Diff(want, table); d != "" {
		t.Errorf("wrong table (-want +got):\n%s", d)
	}
}

func TestReadColorTableSizes(t *testing.T) {
	data := make([]byte, 3*256)
	for sizeField := byte(0); sizeField < 8; sizeField++ {
		table, err := readColorTable(newScanner(data), sizeField)
		if err != nil {
			t.Fatal(err)
		}
		if len(table) != 2<<sizeField {
			t.Errorf("sizeField %d: got %d entries, want %d",
				sizeField, len(table), 2<<sizeField)
		}
		for _, c := range table {
			if c != (color.RGBA{0, 0, 0, 0xFF}) {
				t.Fatal("alpha must be opaque")
			}
		}
	}
}

func TestReadColorTableTruncated(t *testing.T) {
	data := make([]byte, 11) // one byte short of 4 entries
	_, err := readColorTable(newScanner(data), 1)
	if !errors.Is(err, ErrColorTable) {
		t.Errorf("got %v, want ErrColorTable", err)
	}
}
