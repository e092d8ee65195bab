package unchecked

import (
	"errors"
	"fmt"
	"io"

	pkgerrors "github.com/pkg/errors"
)

// Error is a classified failure. Cause is always the error the wrapped call
// returned; Error itself never wraps another *Error. An Error built as a
// literal has no cause and prints as its kind alone.
type Error struct {
	Kind   Kind
	cause  error
	traced error
}

func newError(kind Kind, cause error) *Error {
	return &Error{
		Kind:   kind,
		cause:  cause,
		traced: pkgerrors.WithStack(cause),
	}
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.cause.Error()
}

// Unwrap exposes the original cause to errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.cause }

// Cause returns the original cause, so pkg/errors.Cause stops here.
func (e *Error) Cause() error { return e.cause }

// StackTrace is the call stack recorded when the failure was classified.
func (e *Error) StackTrace() pkgerrors.StackTrace {
	var tracer interface{ StackTrace() pkgerrors.StackTrace }
	if errors.As(e.traced, &tracer) {
		return tracer.StackTrace()
	}
	return nil
}

// Format supports %+v, which adds the classification stack trace.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') && e.traced != nil {
			_, _ = io.WriteString(s, e.Kind.String()+": ")
			_, _ = fmt.Fprintf(s, "%+v", e.traced)
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind, true
	}
	return Unclassified, false
}

// IsKind reports whether err has been classified as kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
