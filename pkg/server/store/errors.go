package store

import "errors"

// ErrNotFound means the requested record does not exist.
var ErrNotFound = errors.New("record not found")
