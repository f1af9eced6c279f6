package wordsplit

import "errors"

var (
	ErrBadRange      = errors.New("bad range")
	ErrInvalidConfig = errors.New("invalid config")
	ErrUnknownMode   = errors.New("unknown mode")
)
