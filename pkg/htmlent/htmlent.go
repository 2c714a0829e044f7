package htmlent

import "io"

// MaxEntityLength is the longest entity name the decoder stores, not
// counting the leading '&' and the terminating ';'.
const MaxEntityLength = 31

// Decoder reads entity-encoded bytes from an io.ByteReader and yields the
// decoded bytes.
//
// io.ByteReader is implemented by *bufio.Reader and *bytes.Reader.
// For files and pipes, wrap the io.Reader in bufio.Reader:
//
//	dec := htmlent.NewDecoder(bufio.NewReader(os.Stdin), cfg)
//
// The decoder holds at most one entity name at a time.
type Decoder struct {
	r      io.ByteReader
	cfg    Config
	offset int // Track position for error reporting
	err    error
	token  [MaxEntityLength]byte
}

// NewDecoder creates a decoder reading from r.
//
// Only the numeric parsing toggle of cfg affects decoding.
func NewDecoder(r io.ByteReader, cfg Config) *Decoder {
	return &Decoder{
		r:   r,
		cfg: cfg,
	}
}

// Encoder writes entity-encoded bytes to an io.Writer.
//
// The encoder does not buffer. Wrap the io.Writer in bufio.Writer if
// buffering is desired, and flush it after Close:
//
//	w := bufio.NewWriter(os.Stdout)
//	enc := htmlent.NewEncoder(w, cfg)
type Encoder struct {
	w      io.Writer
	cfg    Config
	buf    []byte
	closed bool
}

// NewEncoder creates an encoder that writes to w.
func NewEncoder(w io.Writer, cfg Config) *Encoder {
	return &Encoder{w: w, cfg: cfg}
}
