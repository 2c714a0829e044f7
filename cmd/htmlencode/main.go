package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"github.com/alecthomas/kong"
	"github.com/epithet-ssh/htmlencode/pkg/config"
	"github.com/epithet-ssh/htmlencode/pkg/htmlent"
	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

const description = `Translate to and from HTML entity encoding.
Reads from standard input, writes to standard output.`

// defaultConfigPath is read when HTMLENCODE_CONFIG is unset. A missing
// file is ignored.
const defaultConfigPath = "~/.config/htmlencode/config.yaml"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, configPaths()...))
}

func configPaths() []string {
	if p := os.Getenv("HTMLENCODE_CONFIG"); p != "" {
		return []string{p}
	}
	return []string{defaultConfigPath}
}

// run parses args, transcodes stdin to stdout and returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, configFiles ...string) int {
	var cli CLI
	exitCode := -1

	resolvers, err := configResolvers(configFiles)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	parser, err := kong.New(&cli,
		kong.Name("htmlencode"),
		kong.Description(description),
		kong.Vars{"special": htmlent.DefaultSpecialChars},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
		}),
		kong.Resolvers(resolvers...),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	_, err = parser.Parse(args)
	if exitCode >= 0 {
		// -h printed the usage.
		return exitCode
	}
	if err != nil {
		reportParseError(parser, err, stderr)
		return 1
	}

	logger := newLogger(stderr, cli.Verbose)
	if err := cli.Run(logger, stdin, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// reportParseError prints the diagnostic, followed by the usage when the
// command line held something unrecognized.
func reportParseError(parser *kong.Kong, err error, stderr io.Writer) {
	fmt.Fprintf(stderr, "Error: %v\n", err)

	var parseErr *kong.ParseError
	if !errors.As(err, &parseErr) || parseErr.Context == nil {
		return
	}
	msg := err.Error()
	if strings.HasPrefix(msg, "unknown flag") || strings.HasPrefix(msg, "unexpected argument") {
		fmt.Fprintln(stderr)
		parser.Stdout = stderr
		_ = parseErr.Context.PrintUsage(false)
	}
}

// configResolvers loads each existing file in paths and exposes it to
// kong. The format follows the extension (.cue, .json, else YAML) and keys
// are long flag names. Missing files are skipped.
func configResolvers(paths []string) ([]kong.Resolver, error) {
	var resolvers []kong.Resolver
	for _, path := range paths {
		val, err := config.LoadValue(kong.ExpandPath(path))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		resolvers = append(resolvers, configResolver(val))
	}
	return resolvers, nil
}

func configResolver(val cue.Value) kong.Resolver {
	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		s, ok, err := config.LookupString(val, flag.Name)
		if err != nil || !ok {
			return nil, err
		}
		return s, nil
	})
}

func newLogger(w io.Writer, verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch verbosity {
	case 0:
	case 1:
		level = slog.LevelInfo
	default: // 2+
		level = slog.LevelDebug
	}

	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}))
}
