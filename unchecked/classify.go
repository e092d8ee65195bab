package unchecked

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"os"
	"syscall"
)

var ioSentinels = []error{
	io.EOF,
	io.ErrUnexpectedEOF,
	io.ErrShortWrite,
	io.ErrShortBuffer,
	io.ErrNoProgress,
	io.ErrClosedPipe,
	fs.ErrClosed,
	fs.ErrPermission,
	fs.ErrExist,
	os.ErrDeadlineExceeded,
	net.ErrClosed,
}

// Classify maps err onto the taxonomy. The match is ordered:
//
//  1. nil stays nil.
//  2. an error already holding an *Error is returned unchanged.
//  3. a Tagged error in the chain supplies its own kind.
//  4. ErrNotFound gives NotFound.
//  5. fs.ErrNotExist gives FileAbsent.
//  6. known I/O errors give IOFailure.
//  7. anything else is Unclassified.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var classified *Error
	if errors.As(err, &classified) {
		return err
	}
	return newError(match(err), err)
}

func match(err error) Kind {
	var tagged Tagged
	switch {
	case errors.As(err, &tagged):
		return tagged.Kind()
	case errors.Is(err, ErrNotFound):
		return NotFound
	case errors.Is(err, fs.ErrNotExist):
		return FileAbsent
	case isIO(err):
		return IOFailure
	default:
		return Unclassified
	}
}

func isIO(err error) bool {
	for _, target := range ioSentinels {
		if errors.Is(err, target) {
			return true
		}
	}

	var (
		pathErr    *fs.PathError
		linkErr    *os.LinkError
		syscallErr *os.SyscallError
		netErr     net.Error
		errno      syscall.Errno
	)
	return errors.As(err, &pathErr) ||
		errors.As(err, &linkErr) ||
		errors.As(err, &syscallErr) ||
		errors.As(err, &netErr) ||
		errors.As(err, &errno)
}

// Get runs fn and classifies its failure. On failure the value is the zero
// value of T, whatever fn returned alongside the error.
func Get[T any](fn func() (T, error)) (T, error) {
	v, err := fn()
	if err != nil {
		var zero T
		return zero, Classify(err)
	}
	return v, nil
}

// Do is Get for calls that only have a side effect.
func Do(fn func() error) error {
	return Classify(fn())
}

// Must is Get that panics with the classified error.
func Must[T any](fn func() (T, error)) T {
	v, err := Get(fn)
	if err != nil {
		panic(err)
	}
	return v
}

// MustDo is Do that panics with the classified error.
func MustDo(fn func() error) {
	if err := Do(fn); err != nil {
		panic(err)
	}
}

// Recover turns a panic into a classified error stored in *errp. It must be
// called directly by defer:
//
//	defer unchecked.Recover(&err)
//
// Panics with an error value are classified like any other failure, other
// values become Unclassified.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok {
		*errp = Classify(err)
		return
	}
	*errp = newError(Unclassified, fmt.Errorf("panic: %v", r))
}
