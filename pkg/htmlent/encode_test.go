package htmlent

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, input string, opts ...Option) string {
	t.Helper()
	var buf bytes.Buffer
	enc := NewEncoder(&buf, NewConfig(opts...))
	_, err := enc.ReadFrom(strings.NewReader(input))
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	return buf.String()
}

func TestEncoder_Default(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "\n"},
		{"plain", "hello world", "hello world\n"},
		{"lt", "<", "&lt;\n"},
		{"gt", ">", "&gt;\n"},
		{"amp", "&", "&amp;\n"},
		{"quot", `"`, "&quot;\n"},
		{"apostrophe is numeric", "'", "&#39;\n"},
		{"markup", `<a href="x">Tom & Jerry's</a>`, "&lt;a href=&quot;x&quot;&gt;Tom &amp; Jerry&#39;s&lt;/a&gt;\n"},
		{"control byte", "\x07", "&#7;\n"},
		{"nul", "\x00", "&#0;\n"},
		{"newline is binary", "a\nb", "a&#10;b\n"},
		{"tab", "\t", "&#9;\n"},
		{"del", "\x7f", "&#127;\n"},
		{"high byte", "\xff", "&#255;\n"},
		{"high byte 0x80", "\x80", "&#128;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encode(t, tt.input))
		})
	}
}

func TestEncoder_EncodeAllForcesNumeric(t *testing.T) {
	assert.Equal(t, "&#60;\n", encode(t, "<", EncodeAll()))
	assert.Equal(t, "&#x3C;\n", encode(t, "<", EncodeAll(), Hex()))
	assert.Equal(t, "&#65;&#66;\n", encode(t, "AB", EncodeAll()))
	assert.Equal(t, "&#39;", encode(t, "'", EncodeAll(), NoTrailingNewline()))
}

func TestEncoder_Hex(t *testing.T) {
	assert.Equal(t, "&#x07;\n", encode(t, "\x07", Hex()))
	assert.Equal(t, "&#x00;\n", encode(t, "\x00", Hex()))
	assert.Equal(t, "&#xFF;\n", encode(t, "\xff", Hex()))
	assert.Equal(t, "&#xAB;\n", encode(t, "\xab", Hex()))
	// Named references still win without EncodeAll.
	assert.Equal(t, "&lt;&#x0A;\n", encode(t, "<\n", Hex()))
}

func TestEncoder_NoBinary(t *testing.T) {
	assert.Equal(t, "a\x07b\xff\n", encode(t, "a\x07b\xff", NoBinary()))
	assert.Equal(t, "&lt;\x00\n", encode(t, "<\x00", NoBinary()))
}

func TestEncoder_SpecialChars(t *testing.T) {
	// Characters outside the named table become numeric.
	assert.Equal(t, "&#97;bc\n", encode(t, "abc", SpecialChars("a")))
	// Reserved characters not in the set pass through.
	assert.Equal(t, "<>&#65;\n", encode(t, "<>A", SpecialChars("A")))
	// Members of the named table still use the named form.
	assert.Equal(t, "&amp;b\n", encode(t, "&b", SpecialChars("&")))
}

func TestEncoder_EmptySpecialSetPassesThrough(t *testing.T) {
	input := "<p class=\"x\">it's\x01\xfe</p>\n"
	got := encode(t, input, SpecialChars(""), NoBinary())
	assert.Equal(t, input+"\n", got)
	assert.Equal(t, input, encode(t, input, SpecialChars(""), NoBinary(), NoTrailingNewline()))
}

func TestEncoder_LineMode(t *testing.T) {
	assert.Equal(t, "a\nb\n\n", encode(t, "a\nb\n", LineMode()))
	assert.Equal(t, "&#97;\n&#98;\n", encode(t, "a\nb", LineMode(), EncodeAll()))
	assert.Equal(t, "&#x61;\n", encode(t, "a\n", LineMode(), EncodeAll(), Hex(), NoTrailingNewline()))
	// Only line feeds bypass escaping.
	assert.Equal(t, "&#13;\n", encode(t, "\r\n", LineMode(), NoTrailingNewline()))
}

func TestEncoder_NoTrailingNewline(t *testing.T) {
	assert.Equal(t, "", encode(t, "", NoTrailingNewline()))
	assert.Equal(t, "&lt;", encode(t, "<", NoTrailingNewline()))
}

func TestEncoder_CloseIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, NewConfig())
	require.NoError(t, enc.WriteByte('<'))
	require.NoError(t, enc.Close())
	require.NoError(t, enc.Close())
	assert.Equal(t, "&lt;\n", buf.String())
}

func TestEncoder_WriteReportsInputLength(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, NewConfig())
	n, err := enc.Write([]byte("a<b"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "a&lt;b", buf.String())
}

type failingWriter struct{ err error }

func (w failingWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestEncoder_PropagatesWriteError(t *testing.T) {
	boom := errors.New("boom")
	enc := NewEncoder(failingWriter{boom}, NewConfig())

	_, err := enc.Write([]byte("x"))
	assert.ErrorIs(t, err, boom)

	_, err = enc.ReadFrom(strings.NewReader("abc"))
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, enc.Close(), boom)
}

func TestAppendEncoded_EveryByteRepresentable(t *testing.T) {
	configs := map[string]Config{
		"default": NewConfig(),
		"all":     NewConfig(EncodeAll()),
		"all-hex": NewConfig(EncodeAll(), Hex()),
		"nobin":   NewConfig(NoBinary()),
	}
	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 256; i++ {
				out := cfg.AppendEncoded(nil, byte(i))
				require.NotEmpty(t, out)
				require.LessOrEqual(t, len(out), maxEncodedLen)
			}
		})
	}
}

func TestIsPrint(t *testing.T) {
	for i := 0; i < 256; i++ {
		want := i >= 0x20 && i <= 0x7e
		assert.Equal(t, want, isPrint(byte(i)), "byte %#x", i)
	}
}
