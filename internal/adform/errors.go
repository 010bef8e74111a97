package adform

import "errors"

var (
	ErrClosed         = errors.New("form is closed")
	ErrAlreadyLoaded  = errors.New("catalog already requested")
	ErrNoGameSelected = errors.New("no game selected")
	ErrInvalidWeekDay = errors.New("invalid week day")
)
