package deck

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when an operation is called with a malformed argument
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotFound is returned when a deck file cannot be found
var ErrNotFound = errors.New("file does not exist")

// ErrDecode is returned when a deck cannot be decoded from the bytes provided
var ErrDecode = errors.New("could not decode deck")

// HandSizeError is an error on the requested size of a hand
type HandSizeError struct {
	Got int
}

func (h HandSizeError) Error() string {
	return fmt.Sprintf("hand size must be >= 0, got %d", h.Got)
}

// Unwrap allows errors.Is(err, ErrInvalidArgument)
func (h HandSizeError) Unwrap() error {
	return ErrInvalidArgument
}

// SaveError is returned when a deck could not be written to a file
type SaveError struct {
	Filename string
	Err      error
}

func (s *SaveError) Error() string {
	return fmt.Sprintf("could not save deck to %s: %v", s.Filename, s.Err)
}

func (s *SaveError) Unwrap() error {
	return s.Err
}

// LoadError is returned when a deck file could not be read.
// If the file is missing, errors.Is(err, ErrNotFound) will be true.
type LoadError struct {
	Filename string
	Err      error
}

func (l *LoadError) Error() string {
	return fmt.Sprintf("could not load deck from %s: %v", l.Filename, l.Err)
}

func (l *LoadError) Unwrap() error {
	return l.Err
}

func decodeError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDecode, fmt.Sprintf(format, args...))
}
