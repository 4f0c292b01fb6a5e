package plan

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnresolvedOverlap indicates that kept sections still overlapped
	// after conflict resolution. The run aborts and produces no layout.
	ErrUnresolvedOverlap = errors.New("plan: unresolved overlap among kept sections")

	// ErrInvalidInput indicates a malformed section description or run
	// parameters.
	ErrInvalidInput = errors.New("plan: invalid input")

	// ErrNoSpace indicates the placer found no hole for a section. The
	// unbounded top-of-space hole makes this unreachable for valid input;
	// it exists so a broken hole set fails loudly instead of corrupting the
	// layout.
	ErrNoSpace = errors.New("plan: no hole large enough")
)

// UnresolvedOverlapError reports the kept sections whose conflicts survived
// the resolution pass, in input order.
type UnresolvedOverlapError struct {
	Sections []string
}

func (e *UnresolvedOverlapError) Error() string {
	return fmt.Sprintf("plan: unresolved overlap among kept sections: %s",
		strings.Join(e.Sections, ", "))
}

func (e *UnresolvedOverlapError) Unwrap() error { return ErrUnresolvedOverlap }

// InputError reports an invalid section record or run parameter.
type InputError struct {
	Section string // offending section name, empty for parameter errors
	Message string
}

func (e *InputError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("plan: invalid input: section %q: %s", e.Section, e.Message)
	}
	return fmt.Sprintf("plan: invalid input: %s", e.Message)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }
