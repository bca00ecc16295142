package rangefile

import "errors"

var (
	// ErrCorruptEntry signals a wire entry that could not be decoded.
	ErrCorruptEntry = errors.New("rangefile: corrupt entry")
	// ErrNotRegularFile signals a path that does not name a regular file.
	ErrNotRegularFile = errors.New("rangefile: not a regular file")
)
