package debian

import (
	"errors"
	"fmt"
)

const (
	KindFile    = "file"
	KindPackage = "package"
)

// ErrNotRegular is returned when a local path exists but
// is not a regular file.
var ErrNotRegular = errors.New("not a regular file")

// NotFoundError is returned when a local file or a requested
// package does not exist.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Name)
}

// RetrievalError wraps network failures (connection errors,
// timeouts and non-2xx responses).
type RetrievalError struct {
	URL string
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieving %s: %s", e.URL, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when content cannot be decompressed
// or is not valid UTF-8 text.
type DecodeError struct {
	Source string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %s", e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
