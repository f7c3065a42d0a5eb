package fluxion

import (
	"errors"
	"fmt"
	"time"
)

// Namespace prefixes every Fluxion error message.
const Namespace = "fluxion"

// Classification distinguishes errors an operator may reasonably retry
// or recover from versus ones that permanently end a pipeline stage.
type Classification int

const (
	// Permanent errors never self-resolve (invalid state, a closed
	// channel, a wrapped user error).
	Permanent Classification = iota
	// Recoverable errors represent a transient, already-handled
	// condition (a recovered timer elapse, a recovered mutex poison).
	Recoverable
)

func (c Classification) String() string {
	if c == Recoverable {
		return "recoverable"
	}
	return "permanent"
}

// Kind enumerates the error taxonomy, ordered by generality.
type Kind int

const (
	KindTimeout Kind = iota
	KindLockError
	KindChannelSendError
	KindInvalidState
	KindStreamProcessing
	KindUserError
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "Timeout"
	case KindLockError:
		return "LockError"
	case KindChannelSendError:
		return "ChannelSendError"
	case KindInvalidState:
		return "InvalidState"
	case KindStreamProcessing:
		return "StreamProcessing"
	case KindUserError:
		return "UserError"
	default:
		return "Unknown"
	}
}

// Classify returns Kind's recoverable/permanent classification.
func (k Kind) Classify() Classification {
	switch k {
	case KindTimeout, KindLockError:
		return Recoverable
	default:
		return Permanent
	}
}

// Error is the concrete error type in-band StreamItem.Error items carry
// for operator-internal failures. It wraps an optional cause and a
// human-readable context string, and always reports a Kind so callers can
// classify and branch via errors.As.
type Error struct {
	Kind    Kind
	Context string
	Cause   error

	// After is only meaningful for KindTimeout: the duration that elapsed
	// before the timeout fired.
	After time.Duration
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s: %v", Namespace, e.Kind, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", Namespace, e.Kind, e.Context)
}

func (e *Error) Unwrap() error { return e.Cause }

// Classification reports whether e is recoverable or permanent.
func (e *Error) Classification() Classification { return e.Kind.Classify() }

// NewTimeoutError builds a KindTimeout error reporting that after elapsed
// without an intervening value.
func NewTimeoutError(context string, after time.Duration) *Error {
	return &Error{Kind: KindTimeout, Context: context, After: after}
}

// NewLockError wraps a recovered mutex-poison condition.
func NewLockError(context string, cause error) *Error {
	return &Error{Kind: KindLockError, Context: context, Cause: cause}
}

// NewChannelSendError reports a downstream receiver that has gone away.
func NewChannelSendError(context string) *Error {
	return &Error{Kind: KindChannelSendError, Context: context}
}

// NewInvalidStateError reports a violated operator invariant.
func NewInvalidStateError(context string) *Error {
	return &Error{Kind: KindInvalidState, Context: context}
}

// NewStreamProcessingError wraps a user error with operator context.
func NewStreamProcessingError(context string, cause error) *Error {
	return &Error{Kind: KindStreamProcessing, Context: context, Cause: cause}
}

// NewUserError wraps an untyped upstream error, usually for immediate
// rewrapping by a downstream operator.
func NewUserError(message string) *Error {
	return &Error{Kind: KindUserError, Context: message}
}

// Sentinel errors for operator-construction-time failures (not in-band
// StreamItem errors).
var (
	ErrInvalidState        = errors.New(Namespace + ": invalid operator configuration or call sequence")
	ErrConflictingOptions  = errors.New(Namespace + ": conflicting options supplied to constructor")
	ErrClosed              = errors.New(Namespace + ": subject is closed")
	ErrSpawnUnsupported    = errors.New(Namespace + ": runtime variant does not support Spawn")
	ErrNegativeSampleRatio = errors.New(Namespace + ": sample ratio must be within [0, 1]")
)
