// Package config loads htmlencode configuration files.
// It supports YAML, JSON, and CUE file formats using CUE as the underlying parser.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/encoding/yaml"
)

// LoadValue loads configuration from a file and returns a CUE value.
//
// For .cue files: compiles the file as CUE source.
// For .yaml/.yml/.json files and anything else: parses the file as YAML.
func LoadValue(path string) (cue.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read file: %w", err)
	}

	ctx := cuecontext.New()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		val := ctx.CompileBytes(data, cue.Filename(path))
		if err := val.Err(); err != nil {
			return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
		}
		return val, nil
	case ".json":
		// JSON can be compiled directly
		val := ctx.CompileBytes(data, cue.Filename(path))
		if err := val.Err(); err != nil {
			return cue.Value{}, fmt.Errorf("failed to parse JSON: %w", err)
		}
		return val, nil
	default:
		return buildYAML(ctx, path, data)
	}
}

func buildYAML(ctx *cue.Context, name string, data []byte) (cue.Value, error) {
	file, err := yaml.Extract(name, data)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to parse config: %w", err)
	}

	val := ctx.BuildFile(file)
	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
	}
	return val, nil
}

// LookupString returns the top-level field key of v rendered as command
// line text: booleans as "true"/"false", integers in decimal, strings
// as-is. The boolean result is false when the field is absent.
//
// Keys may contain characters that are not valid CUE identifiers, such
// as "no-binary".
func LookupString(v cue.Value, key string) (string, bool, error) {
	field := v.LookupPath(cue.MakePath(cue.Str(key)))
	if !field.Exists() {
		return "", false, nil
	}
	// A disjunction such as bool | *true reads as its default.
	field, _ = field.Default()

	switch field.Kind() {
	case cue.BoolKind:
		b, err := field.Bool()
		if err != nil {
			return "", false, fmt.Errorf("%s: %w", key, err)
		}
		return strconv.FormatBool(b), true, nil
	case cue.IntKind:
		n, err := field.Int64()
		if err != nil {
			return "", false, fmt.Errorf("%s: %w", key, err)
		}
		return strconv.FormatInt(n, 10), true, nil
	case cue.StringKind:
		s, err := field.String()
		if err != nil {
			return "", false, fmt.Errorf("%s: %w", key, err)
		}
		return s, true, nil
	default:
		return "", false, fmt.Errorf("%s: unsupported value of kind %s", key, field.Kind())
	}
}
