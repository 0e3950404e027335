package branchbound

import "errors"

// ErrInvalidVolume indicates Options.Volume was not a positive integer.
var ErrInvalidVolume = errors.New("branchbound: volume must be positive")
