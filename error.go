package ranges

import "errors"

// Ranges themselves never fail. These errors are reported by the code that
// turns user configuration into scans.
var (
	ErrEmptyDelimiter = errors.New("empty delimiter")
	ErrUnterminated   = errors.New("unterminated block")
)
