package models

import "errors"

// ErrNotFound is returned by storage providers when no live row matches.
var ErrNotFound = errors.New("not found")
