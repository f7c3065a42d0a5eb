package fluxion

import (
	"errors"
	"fmt"
)

// SourceMetaError exposes correlation metadata for a merge/combinator
// failure: which upstream source index produced it, and that source's
// stable name if one was supplied when the source was added.
type SourceMetaError interface {
	error
	Unwrap() error
	SourceName() (string, bool)
	SourceIndex() (int, bool)
}

type sourceTaggedError struct {
	err   error
	name  string
	index int
}

// newSourceTaggedError wraps err with the index (and optional name) of the
// source that produced it, for merge/combinator diagnostics.
func newSourceTaggedError(err error, name string, index int) error {
	if err == nil {
		return nil
	}
	return &sourceTaggedError{err: err, name: name, index: index}
}

func (e *sourceTaggedError) Error() string { return e.err.Error() }
func (e *sourceTaggedError) Unwrap() error { return e.err }

func (e *sourceTaggedError) SourceName() (string, bool) {
	if e.name == "" {
		return "", false
	}
	return e.name, true
}

func (e *sourceTaggedError) SourceIndex() (int, bool) { return e.index, true }

func (e *sourceTaggedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "source(index=%d,name=%q): %+v", e.index, e.name, e.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractSourceName returns the tagged source name from err if present.
func ExtractSourceName(err error) (string, bool) {
	var sme SourceMetaError
	if errors.As(err, &sme) {
		return sme.SourceName()
	}
	return "", false
}

// ExtractSourceIndex returns the tagged source index from err if present.
func ExtractSourceIndex(err error) (int, bool) {
	var sme SourceMetaError
	if errors.As(err, &sme) {
		return sme.SourceIndex()
	}
	return 0, false
}
