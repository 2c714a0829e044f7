// Package htmlent implements encoding and decoding of HTML character
// references over byte streams.
//
// Encoding replaces selected bytes with entity references. The five
// reserved characters use their named form, except the apostrophe which
// is always written as the numeric reference &#39;:
//
//	<  ->  &lt;
//	>  ->  &gt;
//	&  ->  &amp;
//	"  ->  &quot;
//	'  ->  &#39;
//
// Every other escaped byte becomes a numeric reference, either decimal
// (&#7;) or hexadecimal with two uppercase digits (&#x07;).
//
// Decoding resolves &lt; &gt; &amp; &quot; &apos; and numeric references
// back into raw bytes. Numeric values are truncated to a single byte.
//
// # Basic Usage
//
// Encoding:
//
//	enc := htmlent.NewEncoder(bufio.NewWriter(os.Stdout), htmlent.NewConfig())
//	enc.ReadFrom(os.Stdin)
//	enc.Close() // writes the trailing newline
//
// Decoding:
//
//	dec := htmlent.NewDecoder(bufio.NewReader(os.Stdin), htmlent.NewConfig())
//	_, err := dec.WriteTo(os.Stdout)
//
// With golang.org/x/text/transform:
//
//	r := transform.NewReader(src, htmlent.DecodeTransformer(htmlent.NewConfig()))
//
// # Malformed input
//
// A malformed entity stops decoding. The decoder returns an *EntityError
// that wraps ErrMalformedEntity and names the offending token. Bytes
// decoded before the entity have already been produced. There is no
// recovery mode.
//
// # Limits
//
// An entity name holds at most MaxEntityLength bytes. If the byte after
// the last stored one is not ';' the entity is reported as unterminated.
package htmlent
