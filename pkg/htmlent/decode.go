package htmlent

import (
	"errors"
	"fmt"
	"io"
)

// ReadByte returns the next decoded byte.
//
// Returns io.EOF when the input ends cleanly and an *EntityError when an
// entity cannot be resolved. Errors are sticky: once ReadByte fails,
// every later call returns the same error.
func (d *Decoder) ReadByte() (byte, error) {
	if d.err != nil {
		return 0, d.err
	}

	b, err := d.decodeByte()
	if err != nil {
		d.err = err
		return 0, err
	}
	return b, nil
}

func (d *Decoder) decodeByte() (byte, error) {
	c, err := d.readByte()
	if err != nil {
		return 0, err
	}
	if c != '&' {
		return c, nil
	}

	start := d.offset - 1
	token, err := d.readToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, &EntityError{Offset: start, Kind: Unterminated, Token: string(token)}
		}
		return 0, fmt.Errorf("reading entity at offset %d: %w", start, err)
	}
	if token == nil {
		return 0, &EntityError{Offset: start, Kind: Unterminated, Token: string(d.token[:])}
	}

	b, kind, ok := resolve(token, d.cfg.strictNumeric)
	if !ok {
		return 0, &EntityError{Offset: start, Kind: kind, Token: string(token)}
	}
	return b, nil
}

// readToken reads an entity name up to and including the terminating ';'
// and returns the name. It stores at most MaxEntityLength bytes; if the
// byte after the last stored one is not ';' that byte is consumed and
// the returned token is nil.
//
// On a read error the bytes stored so far are returned with the error.
func (d *Decoder) readToken() ([]byte, error) {
	n := 0
	for {
		b, err := d.readByte()
		if err != nil {
			return d.token[:n], err
		}
		if b == ';' {
			return d.token[:n], nil
		}
		if n == MaxEntityLength {
			return nil, nil
		}
		d.token[n] = b
		n++
	}
}

// resolve maps an entity name to its byte. On failure it returns the
// kind of error and false.
func resolve(token []byte, strict bool) (byte, ErrorKind, bool) {
	switch string(token) {
	case "lt":
		return '<', 0, true
	case "gt":
		return '>', 0, true
	case "amp":
		return '&', 0, true
	case "quot":
		return '"', 0, true
	case "apos", "#39":
		return '\'', 0, true
	}

	if len(token) == 0 || token[0] != '#' {
		return 0, Unknown, false
	}

	if len(token) > 1 && (token[1] == 'x' || token[1] == 'X') {
		b, ok := parseNumeric(token[2:], 16, strict)
		if !ok {
			return 0, BadHex, false
		}
		return b, 0, true
	}

	b, ok := parseNumeric(token[1:], 10, strict)
	if !ok {
		return 0, BadDecimal, false
	}
	return b, 0, true
}

// parseNumeric parses digits in the given base, keeping the value modulo
// 256. At least one digit is required. Unless strict, the number is read
// the way scanf reads %u and %x: leading whitespace is skipped, one sign
// is allowed, a hex number may carry a 0x prefix, and anything after the
// digits is ignored. A negative value wraps modulo 256.
func parseNumeric(s []byte, base byte, strict bool) (byte, bool) {
	i := 0
	neg := false
	if !strict {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			neg = s[i] == '-'
			i++
		}
		if base == 16 && i+2 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
			if _, ok := digitValue(s[i+2], base); ok {
				i += 2
			}
		}
	}

	start := i
	var n byte
	for ; i < len(s); i++ {
		d, ok := digitValue(s[i], base)
		if !ok {
			break
		}
		n = n*base + d
	}

	if i == start {
		return 0, false
	}
	if strict && i != len(s) {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

func digitValue(c, base byte) (byte, bool) {
	var d byte
	switch {
	case '0' <= c && c <= '9':
		d = c - '0'
	case 'a' <= c && c <= 'f':
		d = c - 'a' + 10
	case 'A' <= c && c <= 'F':
		d = c - 'A' + 10
	default:
		return 0, false
	}
	if d >= base {
		return 0, false
	}
	return d, true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

// Read implements io.Reader on top of ReadByte.
func (d *Decoder) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		b, err := d.ReadByte()
		if err != nil {
			if n > 0 && errors.Is(err, io.EOF) {
				return n, nil
			}
			return n, err
		}
		p[n] = b
		n++
	}
	return n, nil
}

// WriteTo decodes the rest of the input into w. It returns nil at the
// end of input. If an entity is malformed, every byte decoded before it
// is written to w and the *EntityError is returned.
//
// When the source reports how much it has buffered (as *bufio.Reader
// does), pending output is written before a read that might block.
func (d *Decoder) WriteTo(w io.Writer) (int64, error) {
	var total int64
	buf := make([]byte, 0, readChunk)

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		n, err := w.Write(buf)
		total += int64(n)
		buf = buf[:0]
		return err
	}

	for {
		if len(buf) == cap(buf) || (len(buf) > 0 && d.idle()) {
			if err := flush(); err != nil {
				return total, err
			}
		}

		b, err := d.ReadByte()
		if err != nil {
			if ferr := flush(); ferr != nil {
				return total, ferr
			}
			if errors.Is(err, io.EOF) {
				return total, nil
			}
			return total, err
		}
		buf = append(buf, b)
	}
}

// idle reports whether the next read from the source may block.
func (d *Decoder) idle() bool {
	b, ok := d.r.(interface{ Buffered() int })
	return ok && b.Buffered() == 0
}

// readByte reads a single byte and tracks position for error reporting.
func (d *Decoder) readByte() (byte, error) {
	b, err := d.r.ReadByte()
	if err == nil {
		d.offset++
	}
	return b, err
}
