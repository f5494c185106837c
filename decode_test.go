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
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/gif/internal/debug/makegif"
)

func TestDecodeAll(t *testing.T) {
	data := makegif.New(2, 1, testPalette, 0).
		Loop(0).
		Comment("test").
		GraphicControl(makegif.DisposalNone, 10, -1).
		Image(0, 0, 2, 1, []byte{0, 1}, false, nil).
		GraphicControl(makegif.DisposalNone, 20, -1).
		Image(0, 0, 2, 1, []byte{2, 3}, false, nil).
		Trailer().
		Bytes()

	g, err := DecodeAll(data, nil)
	if err != nil {
		t.Fatal(err)
	}

	if g.Width != 2 || g.Height != 1 {
		t.Errorf("got %dx%d, want 2x1", g.Width, g.Height)
	}
	// the sequence is decoded once, even though the file loops forever
	if len(g.Frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(g.Frames))
	}
	if g.LoopCount != 0 {
		t.Errorf("got loop count %d, want 0", g.LoopCount)
	}
	wantDelays := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}
	if d := cmp.Diff(wantDelays, g.Delays); d != "" {
		t.Errorf("wrong delays (-want +got):\n%s", d)
	}
	checkCanvas(t, g.Frames[0], 0, 1)
	checkCanvas(t, g.Frames[1], 2, 3)
	if d := cmp.Diff([]string{"test"}, g.Comments); d != "" {
		t.Errorf("wrong comments (-want +got):\n%s", d)
	}
}

func TestDecodeAllNoFrames(t *testing.T) {
	data := makegif.New(2, 1, testPalette, 0).
		Trailer().
		Bytes()
	_, err := DecodeAll(data, nil)
	if err == nil {
		t.Error("expected error for GIF without frames")
	}
}

func TestReadConfig(t *testing.T) {
	data := makegif.New(7, 5, testPalette, 2).
		Loop(4).
		Image(0, 0, 7, 5, make([]byte, 35), false, nil).
		Trailer().
		Bytes()

	cfg, err := ReadConfig(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 7 || cfg.Height != 5 {
		t.Errorf("got %dx%d, want 7x5", cfg.Width, cfg.Height)
	}
	if cfg.Version != "89a" {
		t.Errorf("got version %q", cfg.Version)
	}
	if cfg.BackgroundIndex != 2 {
		t.Errorf("got background index %d, want 2", cfg.BackgroundIndex)
	}
	if cfg.LoopCount != 4 {
		t.Errorf("got loop count %d, want 4", cfg.LoopCount)
	}
	if len(cfg.ColorTable) != 4 {
		t.Errorf("got %d palette entries, want 4", len(cfg.ColorTable))
	}
}
