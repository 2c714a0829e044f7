package htmlent

import "log/slog"

// DefaultSpecialChars is the set of bytes escaped when no other set is given.
const DefaultSpecialChars = `<>&"'`

// Config holds the transcoder toggles. It is resolved once with NewConfig
// and passed by value, so a Config cannot change under a running
// Encoder or Decoder.
type Config struct {
	encodeAll         bool
	encodeBinary      bool
	decode            bool
	lineMode          bool
	noTrailingNewline bool
	hex               bool
	strictNumeric     bool
	special           ByteSet
}

// Option configures a Config.
type Option func(*Config)

// NewConfig resolves opts on top of the defaults.
//
// Default: encode only the special characters and non-printable bytes,
// decimal references, trailing newline on.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		encodeBinary: true,
		special:      NewByteSet(DefaultSpecialChars),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// EncodeAll escapes every input byte. Named references are not used in
// this mode; every byte becomes a numeric reference.
func EncodeAll() Option {
	return func(c *Config) {
		c.encodeAll = true
	}
}

// NoBinary stops escaping non-printable bytes that are not in the
// special set.
func NoBinary() Option {
	return func(c *Config) {
		c.encodeBinary = false
	}
}

// DecodeMode marks the configuration as a decoding one. The Encoder and
// Decoder ignore it; it tells a driver which of the two to run.
func DecodeMode() Option {
	return func(c *Config) {
		c.decode = true
	}
}

// LineMode passes line feeds through unescaped, even with EncodeAll.
func LineMode() Option {
	return func(c *Config) {
		c.lineMode = true
	}
}

// NoTrailingNewline suppresses the line feed the Encoder writes on Close.
func NoTrailingNewline() Option {
	return func(c *Config) {
		c.noTrailingNewline = true
	}
}

// Hex writes numeric references as &#xHH; instead of &#NNN;.
func Hex() Option {
	return func(c *Config) {
		c.hex = true
	}
}

// SpecialChars replaces the default special set. Every byte of set is
// escaped when encoding. An empty string leaves nothing special.
func SpecialChars(set string) Option {
	return func(c *Config) {
		c.special = NewByteSet(set)
	}
}

// StrictNumeric requires every byte after "#" or "#x" in a numeric
// reference to be a digit. By default leading whitespace is skipped and
// bytes after the digits are ignored.
func StrictNumeric() Option {
	return func(c *Config) {
		c.strictNumeric = true
	}
}

// Decoding reports whether DecodeMode was set.
func (c Config) Decoding() bool {
	return c.decode
}

// LogValue implements slog.LogValuer.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("decode", c.decode),
		slog.Bool("all", c.encodeAll),
		slog.Bool("binary", c.encodeBinary),
		slog.Bool("line", c.lineMode),
		slog.Bool("newline", !c.noTrailingNewline),
		slog.Bool("hex", c.hex),
		slog.Bool("strict", c.strictNumeric),
		slog.String("special", c.special.String()),
	)
}
