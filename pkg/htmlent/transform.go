package htmlent

import (
	"bytes"
	"strings"

	"golang.org/x/text/transform"
)

// maxEncodedLen is the longest encoding of one byte ("&quot;", "&#255;", "&#xFF;").
const maxEncodedLen = 6

// EncodeTransformer returns a Transformer that encodes like an Encoder,
// including the trailing newline written once at end of input.
//
//	w := transform.NewWriter(os.Stdout, htmlent.EncodeTransformer(cfg))
func EncodeTransformer(cfg Config) transform.Transformer {
	return &encodeTransformer{cfg: cfg}
}

type encodeTransformer struct {
	cfg  Config
	done bool
}

func (t *encodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var scratch [maxEncodedLen]byte
	for nSrc < len(src) {
		out := t.cfg.AppendEncoded(scratch[:0], src[nSrc])
		if nDst+len(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc++
	}

	if !atEOF || t.done {
		return nDst, nSrc, nil
	}
	if !t.cfg.noTrailingNewline {
		if nDst == len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = '\n'
		nDst++
	}
	t.done = true
	return nDst, nSrc, nil
}

func (t *encodeTransformer) Reset() {
	t.done = false
}

// DecodeTransformer returns a Transformer that decodes like a Decoder.
// A malformed entity stops the transformation with an *EntityError.
func DecodeTransformer(cfg Config) transform.Transformer {
	return &decodeTransformer{cfg: cfg}
}

type decodeTransformer struct {
	cfg    Config
	offset int
}

func (t *decodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if nDst == len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		if c := src[nSrc]; c != '&' {
			dst[nDst] = c
			nDst++
			nSrc++
			t.offset++
			continue
		}

		// Look for ';' among the next MaxEntityLength+1 bytes.
		rest := src[nSrc+1:]
		window := rest[:min(len(rest), MaxEntityLength+1)]
		end := bytes.IndexByte(window, ';')
		if end < 0 {
			if len(rest) <= MaxEntityLength && !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			token := rest[:min(len(rest), MaxEntityLength)]
			return nDst, nSrc, &EntityError{Offset: t.offset, Kind: Unterminated, Token: string(token)}
		}

		token := rest[:end]
		b, kind, ok := resolve(token, t.cfg.strictNumeric)
		if !ok {
			return nDst, nSrc, &EntityError{Offset: t.offset, Kind: kind, Token: string(token)}
		}
		dst[nDst] = b
		nDst++
		nSrc += end + 2
		t.offset += end + 2
	}
	return nDst, nSrc, nil
}

func (t *decodeTransformer) Reset() {
	t.offset = 0
}

// EncodeString encodes s, trailing newline included unless disabled.
func EncodeString(s string, cfg Config) string {
	var b strings.Builder
	enc := NewEncoder(&b, cfg)
	// strings.Builder never fails, so neither can the encoder.
	enc.Write([]byte(s))
	enc.Close()
	return b.String()
}

// DecodeString decodes s. On a malformed entity the *EntityError is
// returned; use a Decoder when the output preceding it matters.
func DecodeString(s string, cfg Config) (string, error) {
	out, _, err := transform.String(DecodeTransformer(cfg), s)
	return out, err
}
