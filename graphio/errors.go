package graphio

import "errors"

// ErrMalformedLine is returned when a non-comment, non-blank line does
// not parse as the expected whitespace-separated integers.
var ErrMalformedLine = errors.New("graphio: malformed line")
