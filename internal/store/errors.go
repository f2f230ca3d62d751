package store

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrOpenFile       = errors.New("open file failed")
	ErrMissingColumns = errors.New("required columns missing")
	ErrUnknownStudent = errors.New("unknown student id")
)
