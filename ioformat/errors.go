package ioformat

import "errors"

// ErrIsolatedVertex indicates the nodes file names a vertex id not
// touched by any arc in the edges file.
var ErrIsolatedVertex = errors.New("ioformat: isolated vertex in nodes file")

// ErrMalformedInput indicates a record could not be parsed as the
// expected whitespace-separated integers, or a file has fewer records
// than its declared count.
var ErrMalformedInput = errors.New("ioformat: malformed input")
