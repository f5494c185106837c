package gif

import (
	"bytes"
	"errors"
	"testing"
)

func TestScannerReads(t *testing.T) {
	s := newScanner([]byte{0x01, 0x34, 0x12, 0xAA, 0xBB, 0xCC})

	b, err := s.readByte()
	if err != nil || b != 0x01 {
		t.Fatalf("readByte: got %d, %v", b, err)
	}
	x, err := s.readUint16()
	if err != nil || x != 0x1234 {
		t.Fatalf("readUint16: got %04x, %v", x, err)
	}
	p, err := s.peekByte()
	if err != nil || p != 0xAA {
		t.Fatalf("peekByte: got %02x, %v", p, err)
	}
	if s.filePos() != 3 {
		t.Errorf("peek moved the position to %d", s.filePos())
	}
	res, err := s.readBytes(3)
	if err != nil || !bytes.Equal(res, []byte{0xAA, 0xBB, 0xCC}) {
		t.Fatalf("readBytes: got % x, %v", res, err)
	}
	if s.remaining() != 0 {
		t.Errorf("remaining: got %d, want 0", s.remaining())
	}
}

func TestScannerEOF(t *testing.T) {
	cases := []struct {
		name string
		op   func(s *scanner) error
	}{
		{"readByte", func(s *scanner) error { _, err := s.readByte(); return err }},
		{"peekByte", func(s *scanner) error { _, err := s.peekByte(); return err }},
		{"readUint16", func(s *scanner) error { _, err := s.readUint16(); return err }},
		{"readBytes", func(s *scanner) error { _, err := s.readBytes(3); return err }},
		{"skip", func(s *scanner) error { return s.skip(3) }},
		{"seek", func(s *scanner) error { return s.seek(5) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newScanner([]byte{0x00, 0x00})
			s.pos = 1
			err := c.op(s)
			if !errors.Is(err, ErrUnexpectedEOF) {
				t.Errorf("got %v, want ErrUnexpectedEOF", err)
			}
			var mfe *MalformedFileError
			if !errors.As(err, &mfe) {
				t.Errorf("error does not wrap MalformedFileError")
			}
		})
	}
}

func TestScannerSeek(t *testing.T) {
	s := newScanner([]byte{1, 2, 3, 4})
	if err := s.seek(2); err != nil {
		t.Fatal(err)
	}
	b, err := s.readByte()
	if err != nil || b != 3 {
		t.Fatalf("got %d, %v", b, err)
	}
	if err := s.seek(0); err != nil {
		t.Fatal(err)
	}
	b, err = s.readByte()
	if err != nil || b != 1 {
		t.Fatalf("got %d, %v", b, err)
	}
}
