package reminder

import "fmt"

// ParseError reports a date or interval expression that did not match the
// accepted grammar. Input carries the offending text.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

// NotFoundError reports a delete aimed at a position that is not present
// in the store.
type NotFoundError struct {
	Position int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no reminder with number %d", e.Position)
}

// StorageError reports a reminder record that could not be read or
// written. Path names the offending resource.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("reminder store %q: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
