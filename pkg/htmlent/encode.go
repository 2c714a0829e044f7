package htmlent

import (
	"errors"
	"io"
	"strconv"
)

const upperHex = "0123456789ABCDEF"

// readChunk is the read size used by ReadFrom.
const readChunk = 4096

// isPrint reports whether c is a visible ASCII character or space.
// Bytes at or above 0x80 are never printable.
func isPrint(c byte) bool {
	return c >= 0x20 && c <= 0x7e
}

// namedEntity returns the reference written for a reserved byte, or "".
// The apostrophe has no named form on output because &apos; is not
// understood everywhere.
func namedEntity(c byte) string {
	switch c {
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	case '&':
		return "&amp;"
	case '"':
		return "&quot;"
	case '\'':
		return "&#39;"
	default:
		return ""
	}
}

// AppendEncoded appends the encoded form of c to dst and returns the
// extended slice.
//
// Example:
//
//	htmlent.NewConfig().AppendEncoded(nil, '<')           // "&lt;"
//	htmlent.NewConfig(htmlent.Hex()).AppendEncoded(nil, 7) // "&#x07;"
func (c Config) AppendEncoded(dst []byte, b byte) []byte {
	if c.lineMode && b == '\n' {
		return append(dst, b)
	}

	if !c.encodeAll && !(c.encodeBinary && !isPrint(b)) && !c.special.Contains(b) {
		return append(dst, b)
	}

	if !c.encodeAll {
		if named := namedEntity(b); named != "" {
			return append(dst, named...)
		}
	}

	if c.hex {
		return append(dst, '&', '#', 'x', upperHex[b>>4], upperHex[b&0x0f], ';')
	}
	dst = append(dst, '&', '#')
	dst = strconv.AppendUint(dst, uint64(b), 10)
	return append(dst, ';')
}

// WriteByte encodes a single byte.
func (e *Encoder) WriteByte(c byte) error {
	e.buf = e.cfg.AppendEncoded(e.buf[:0], c)
	_, err := e.w.Write(e.buf)
	return err
}

// Write encodes p. On success it reports len(p) bytes consumed, which is
// less than the number of bytes written to the underlying writer
// whenever something was escaped.
func (e *Encoder) Write(p []byte) (int, error) {
	out := e.buf[:0]
	for _, c := range p {
		out = e.cfg.AppendEncoded(out, c)
	}
	e.buf = out

	if _, err := e.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}

// ReadFrom encodes everything read from r until io.EOF. It returns the
// number of input bytes consumed.
func (e *Encoder) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	chunk := make([]byte, readChunk)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			if _, werr := e.Write(chunk[:n]); werr != nil {
				return total, werr
			}
			total += int64(n)
		}
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// Close ends the stream, writing the trailing newline unless
// NoTrailingNewline was given. Close does not close the underlying
// writer. Calling it again is a no-op.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	if e.cfg.noTrailingNewline {
		return nil
	}
	_, err := e.w.Write([]byte{'\n'})
	return err
}
