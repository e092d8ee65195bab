package unchecked

import "errors"

// Kind is the category a failure is classified into.
type Kind int

const (
	// Unclassified is anything the other kinds do not match.
	Unclassified Kind = iota
	// NotFound means a named resource does not exist.
	NotFound
	// FileAbsent means a requested file does not exist.
	FileAbsent
	// IOFailure is a miscellaneous I/O failure.
	IOFailure
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case FileAbsent:
		return "file absent"
	case IOFailure:
		return "io failure"
	default:
		return "unclassified"
	}
}

// ErrNotFound marks a missing named resource. Wrap it (fmt.Errorf with %w)
// to have the failure classified as NotFound.
var ErrNotFound = errors.New("resource not found")

// Tagged is implemented by source errors that declare their own kind.
// A Tagged error found anywhere in the chain wins over the built-in rules.
type Tagged interface {
	Kind() Kind
}
