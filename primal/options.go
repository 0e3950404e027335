package primal

import "github.com/rs/zerolog"

// Options configures a pivot run shared by Phase I and Phase II.
type Options struct {
	// MaxPivots caps the number of pivots before giving up with
	// ErrMaxPivotsExceeded. Zero means unbounded.
	MaxPivots int
	Logger    zerolog.Logger
}
