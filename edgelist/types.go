// Package edgelist reads and writes the plain-text edge-list format:
//
//	u v                  # plain edge
//	u x_u y_u v x_v y_v  # spatial edge with endpoint coordinates
//
// One edge per line, whitespace separated. Blank lines and lines starting
// with '%' or '#' (KONECT headers) are skipped. A file uses one form only:
// ModeAuto fixes the form from the first data line, and any later line of
// the other form is a MalformedInputError.
package edgelist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedInput is matched (errors.Is) by every *MalformedInputError.
var ErrMalformedInput = errors.New("edgelist: malformed input")

// ErrUnknownMode is returned by ParseMode for unknown names.
var ErrUnknownMode = errors.New("edgelist: unknown mode")

// MalformedInputError describes the first line that could not be parsed.
type MalformedInputError struct {
	Line   int    // 1-based line number
	Text   string // the offending line
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("edgelist: line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Is makes errors.Is(err, ErrMalformedInput) hold.
func (e *MalformedInputError) Is(target error) bool { return target == ErrMalformedInput }

// Mode selects the accepted line form.
type Mode int

const (
	// ModeAuto picks plain or spatial from the first data line.
	ModeAuto Mode = iota
	// ModePlain accepts only "u v".
	ModePlain
	// ModeSpatial accepts only "u x_u y_u v x_v y_v".
	ModeSpatial
)

// String returns the canonical name of m.
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModePlain:
		return "plain"
	case ModeSpatial:
		return "spatial"
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a case-insensitive name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "plain":
		return ModePlain, nil
	case "spatial", "geometric":
		return ModeSpatial, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// tokens per line form
const (
	plainTokens   = 2
	spatialTokens = 6
)

// IDParser converts one token to a vertex identifier.
type IDParser[V any] func(string) (V, error)

// ParseInt parses base-10 integer identifiers.
func ParseInt(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }

// ParseString keeps identifiers as raw labels.
func ParseString(s string) (string, error) { return s, nil }
