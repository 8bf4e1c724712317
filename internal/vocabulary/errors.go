package vocabulary

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput     = errors.New("can not be empty")
	ErrAlreadyAdded   = errors.New("just added")
	ErrDuplicateEntry = errors.New("already exists")
	ErrNotFound       = errors.New("nothing found")
	ErrOutOfRange     = errors.New("index out of range")
)

// DataParseError is returned when a persisted entry file cannot be decoded.
type DataParseError struct {
	Path string
	Err  error
}

func (e *DataParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *DataParseError) Unwrap() error {
	return e.Err
}

// IOError is returned when the entry file cannot be read or written.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
