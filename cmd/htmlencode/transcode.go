package main

import (
	"bufio"
	"io"
	"log/slog"

	"github.com/epithet-ssh/htmlencode/pkg/htmlent"
)

// CLI holds the htmlencode flags.
type CLI struct {
	All       bool   `help:"Encode all characters" short:"a" env:"HTMLENCODE_ALL"`
	NoBinary  bool   `help:"Do not automatically encode non printable (i.e. binary) characters" short:"b" env:"HTMLENCODE_NO_BINARY"`
	Chars     string `help:"Set of special characters to encode" short:"c" env:"HTMLENCODE_CHARS" default:"${special}" placeholder:"SET"`
	Decode    bool   `help:"Decode data" short:"d" env:"HTMLENCODE_DECODE"`
	Line      bool   `help:"Encode input line by line (line feeds pass through)" short:"l" env:"HTMLENCODE_LINE"`
	NoNewline bool   `help:"Do not output the trailing newline when encoding" short:"n" env:"HTMLENCODE_NO_NEWLINE"`
	Hex       bool   `help:"Use hexadecimal entities (&#xHH;) instead of decimal (&#NNN;)" short:"x" env:"HTMLENCODE_HEX"`
	Strict    bool   `help:"Reject numeric entities with anything but digits" env:"HTMLENCODE_STRICT"`
	Verbose   int    `help:"Log verbosity (-v info, -vv debug)" short:"v" type:"counter"`
}

// Config resolves the flags into a transcoder configuration.
func (c *CLI) Config() htmlent.Config {
	opts := []htmlent.Option{htmlent.SpecialChars(c.Chars)}
	if c.All {
		opts = append(opts, htmlent.EncodeAll())
	}
	if c.NoBinary {
		opts = append(opts, htmlent.NoBinary())
	}
	if c.Decode {
		opts = append(opts, htmlent.DecodeMode())
	}
	if c.Line {
		opts = append(opts, htmlent.LineMode())
	}
	if c.NoNewline {
		opts = append(opts, htmlent.NoTrailingNewline())
	}
	if c.Hex {
		opts = append(opts, htmlent.Hex())
	}
	if c.Strict {
		opts = append(opts, htmlent.StrictNumeric())
	}
	return htmlent.NewConfig(opts...)
}

func (c *CLI) Run(logger *slog.Logger, stdin io.Reader, stdout io.Writer) error {
	cfg := c.Config()
	mode := "encode"
	if cfg.Decoding() {
		mode = "decode"
	}
	logger.Debug("config resolved", "mode", mode, "config", cfg)

	// Both directions write in chunks: the decoder whenever its input
	// buffer runs dry, the encoder once per read. Bytes decoded before a
	// malformed entity are written before the error is returned.
	out := &countingWriter{w: stdout}

	var err error
	if cfg.Decoding() {
		_, err = htmlent.NewDecoder(bufio.NewReader(stdin), cfg).WriteTo(out)
	} else {
		enc := htmlent.NewEncoder(out, cfg)
		_, err = enc.ReadFrom(stdin)
		if err == nil {
			err = enc.Close()
		}
	}
	if err != nil {
		logger.Debug("transcode failed", "mode", mode, "written", out.n, "error", err)
		return err
	}

	logger.Info("transcode complete", "mode", mode, "written", out.n)
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
