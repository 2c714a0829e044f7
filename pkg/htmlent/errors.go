package htmlent

import (
	"errors"
	"fmt"
)

// ErrMalformedEntity is wrapped by every decoding failure.
var ErrMalformedEntity = errors.New("htmlent: malformed entity")

// ErrorKind classifies a malformed entity.
type ErrorKind int

const (
	// Unterminated: input ended, or the name outgrew MaxEntityLength,
	// before ';' was found.
	Unterminated ErrorKind = iota
	// BadHex: "#x" was not followed by hexadecimal digits.
	BadHex
	// BadDecimal: "#" was not followed by decimal digits.
	BadDecimal
	// Unknown: the name is not one of the supported entities.
	Unknown
)

func (k ErrorKind) String() string {
	switch k {
	case Unterminated:
		return "bad entity"
	case BadHex:
		return "bad hex entity"
	case BadDecimal:
		return "bad decimal entity"
	case Unknown:
		return "unknown entity"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// EntityError describes an entity the decoder could not resolve.
type EntityError struct {
	Offset int       // Input offset of the '&' that opened the entity
	Kind   ErrorKind // What went wrong
	Token  string    // Bytes read between '&' and ';' (at most MaxEntityLength)
}

func (e *EntityError) Error() string {
	if e.Kind == Unterminated {
		return fmt.Sprintf("htmlent: %s at offset %d: `&%s'", e.Kind, e.Offset, e.Token)
	}
	return fmt.Sprintf("htmlent: %s at offset %d: `&%s;'", e.Kind, e.Offset, e.Token)
}

func (e *EntityError) Unwrap() error {
	return ErrMalformedEntity
}
