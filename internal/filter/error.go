package filter

import "errors"

var ErrInvalidQuery = errors.New("invalid filter parameter")
