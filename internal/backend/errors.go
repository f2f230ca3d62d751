package backend

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrRemoteCall     = errors.New("remote endpoint call failed")
	ErrBadStatus      = errors.New("remote endpoint returned non-200 status")
	ErrDecodeResponse = errors.New("decode remote response failed")
	ErrNoPercentage   = errors.New("no percentage found in generated text")
)
