package ansi

import "bytes"

// SGR accumulates Select Graphic Rendition parameters for a single sequence.
// Every SGR that had parameters added must be closed with Finish
type SGR struct {
	buf    bytes.Buffer
	params int
}

// Add appends parameters. The first parameter opens the sequence
func (s *SGR) Add(params ...int) {
	for _, p := range params {
		switch s.params {
		case 0:
			s.buf.WriteString(CSI)
		default:
			s.buf.WriteByte(';')
		}
		WriteInt(&s.buf, p)
		s.params += 1
	}
}

// Empty reports if no parameters have been added
func (s *SGR) Empty() bool {
	return s.params == 0
}

// Finish terminates the sequence, writes it to dst and resets the builder.
// Nothing is written when no parameters were added
func (s *SGR) Finish(dst *bytes.Buffer) {
	if s.params == 0 {
		return
	}
	s.buf.WriteByte('m')
	dst.Write(s.buf.Bytes())
	s.buf.Reset()
	s.params = 0
}
