// Package ottererr is the typed diagnostic taxonomy used across the
// compilation pipeline, modeled on the teacher's internal/errors package.
package ottererr

import (
	"fmt"

	"github.com/Ottrlang/otterlang/internal/span"
)

// Phase identifies which pipeline stage raised a diagnostic.
type Phase string

const (
	PhaseLex      Phase = "lex"
	PhaseParse    Phase = "parse"
	PhaseSemantic Phase = "semantic"
	PhaseCache    Phase = "cache"
	PhaseLink     Phase = "link"
)

// LexError is one indentation/token-level diagnostic. Lex errors are
// collected into a MultiError; lexing never returns a partial token stream
// alongside errors (spec.md §4.1: "the token vector is discarded only if at
// least one error occurred").
type LexError struct {
	Span    span.Span
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %s: %s", e.Span, e.Message)
}

// ParseError is one recoverable parser diagnostic, carrying the offending
// token's span (spec.md §4.2).
type ParseError struct {
	Span    span.Span
	Found   string
	Message string
}

func (e *ParseError) Error() string {
	if e.Found != "" {
		return fmt.Sprintf("parse error at %s (found %s): %s", e.Span, e.Found, e.Message)
	}
	return fmt.Sprintf("parse error at %s: %s", e.Span, e.Message)
}

// SemanticError is a fatal lowering-time error: unknown symbol, type
// mismatch, argument-count mismatch, use of Unit in argument position, etc.
// Semantic errors are never collected — the first one aborts the compile
// and no cache entry is written (spec.md §4.5, §7).
type SemanticError struct {
	Span       span.Span
	Message    string
	Suggestion string // optional "did you mean X" text, cosmetic only
}

func (e *SemanticError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("semantic error at %s: %s (did you mean %q?)", e.Span, e.Message, e.Suggestion)
	}
	return fmt.Sprintf("semantic error at %s: %s", e.Span, e.Message)
}

// CacheError wraps an I/O or fingerprinting failure, both fatal per spec.md §7.
type CacheError struct {
	Op         string
	Underlying error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s failed: %v", e.Op, e.Underlying)
}

func (e *CacheError) Unwrap() error { return e.Underlying }

// LinkError wraps a failure from the system C compiler invocation.
type LinkError struct {
	Underlying error
	Output     string
}

func (e *LinkError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("link failed: %v\n%s", e.Underlying, e.Output)
	}
	return fmt.Sprintf("link failed: %v", e.Underlying)
}

func (e *LinkError) Unwrap() error { return e.Underlying }

// Fatal reports whether an error of this taxonomy aborts the pipeline
// immediately rather than being collected for batch reporting.
func Fatal(err error) bool {
	switch err.(type) {
	case *LexError, *ParseError:
		return false
	default:
		return true
	}
}

// MultiError aggregates the diagnostics from one phase (lex or parse), which
// report all issues found in a single pass rather than stopping at the
// first one (spec.md §4.1/§4.2/§7).
type MultiError struct {
	Phase  Phase
	Errors []error
}

// NewMultiError builds a MultiError, dropping any nil entries.
func NewMultiError(phase Phase, errs []error) *MultiError {
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{Phase: phase, Errors: filtered}
}

func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("%s: no errors", e.Phase)
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("%s: %v", e.Phase, e.Errors[0])
	}
	return fmt.Sprintf("%s: %d errors (first: %v)", e.Phase, len(e.Errors), e.Errors[0])
}

func (e *MultiError) Unwrap() []error { return e.Errors }

// Empty reports whether no errors were collected.
func (e *MultiError) Empty() bool { return len(e.Errors) == 0 }
