package repodata

import "fmt"

// ErrorType represents different categories of load failures
type ErrorType int

const (
	ErrIO ErrorType = iota
	ErrFetch
	ErrArchive
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrIO:
		return "IO"
	case ErrFetch:
		return "Fetch"
	case ErrArchive:
		return "Archive"
	default:
		return "Unknown"
	}
}

// LoadError represents an error while loading a repodata archive
type LoadError struct {
	Type   ErrorType
	Source string
	Err    error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Source, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *LoadError) Unwrap() error {
	return e.Err
}

// MemberNotFoundError reports a required archive member that is either
// absent from the archive or not a regular file.
type MemberNotFoundError struct {
	Member string
}

// Error implements the error interface
func (e *MemberNotFoundError) Error() string {
	return fmt.Sprintf("archive member not found: %s", e.Member)
}
