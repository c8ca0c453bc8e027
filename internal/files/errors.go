package files

import "errors"

var (
	// ErrNotFound means the requested file is not in the tracked directory.
	ErrNotFound = errors.New("file not found")
	// ErrUnsupportedType means the file extension is not one of the supported formats.
	ErrUnsupportedType = errors.New("unsupported file type")
)
