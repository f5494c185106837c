package gif

// scanner is a bounds-checked cursor over an immutable byte buffer.
// All read errors are reported as ErrUnexpectedEOF, wrapped together
// with the position where the read was attempted.
type scanner struct {
	buf []byte
	pos int
}

func newScanner(buf []byte) *scanner {
	return &scanner{buf: buf}
}

func (s *scanner) filePos() int64 {
	return int64(s.pos)
}

func (s *scanner) remaining() int {
	return len(s.buf) - s.pos
}

func (s *scanner) errEOF() error {
	return &MalformedFileError{Pos: int64(s.pos), Err: ErrUnexpectedEOF}
}

func (s *scanner) readByte() (byte, error) {
	if s.pos >= len(s.buf) {
		return 0, s.errEOF()
	}
	b := s.buf[s.pos]
	s.pos++
	return b, nil
}

// peekByte returns the next byte without advancing the position.
func (s *scanner) peekByte() (byte, error) {
	if s.pos >= len(s.buf) {
		return 0, s.errEOF()
	}
	return s.buf[s.pos], nil
}

// readUint16 reads a little-endian 16-bit integer.
func (s *scanner) readUint16() (uint16, error) {
	if s.pos+2 > len(s.buf) {
		return 0, s.errEOF()
	}
	x := uint16(s.buf[s.pos]) | uint16(s.buf[s.pos+1])<<8
	s.pos += 2
	return x, nil
}

// readBytes returns the next n bytes as a sub-slice of the underlying
// buffer.  The caller must not modify the returned slice.
func (s *scanner) readBytes(n int) ([]byte, error) {
	if n < 0 || s.pos+n > len(s.buf) {
		return nil, s.errEOF()
	}
	res := s.buf[s.pos : s.pos+n]
	s.pos += n
	return res, nil
}

func (s *scanner) skip(n int) error {
	if n < 0 || s.pos+n > len(s.buf) {
		return s.errEOF()
	}
	s.pos += n
	return nil
}

// seek moves the cursor to an absolute offset within the buffer.
func (s *scanner) seek(pos int) error {
	if pos < 0 || pos > len(s.buf) {
		return s.errEOF()
	}
	s.pos = pos
	return nil
}
