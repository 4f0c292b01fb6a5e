// Package laytext reads and writes the textual forms of layout requests and
// results. It carries exactly the data the planner needs and nothing more:
// a request is a count/base/spacing header followed by one record per
// section, a result is one name/address line per section terminated by a
// base-only line.
package laytext

import (
	"errors"
	"fmt"
)

// Comment marks a full-line comment in request files.
const Comment = '#'

// UnknownField is the textual form of an unknown prior address.
const UnknownField = "?"

// ErrMalformedInput indicates a request or result file that does not parse.
var ErrMalformedInput = errors.New("laytext: malformed input")

// MalformedInputError reports where and why parsing failed. Line numbers
// are 1-based and count every physical line, comments included.
type MalformedInputError struct {
	Line    int
	Message string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("laytext: malformed input at line %d: %s", e.Line, e.Message)
}

func (e *MalformedInputError) Unwrap() error { return ErrMalformedInput }
