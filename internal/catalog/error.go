package catalog

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Messages shown to the shopper when a lookup misses.
const (
	MsgProductNotFound  = "The requested product could not be found"
	MsgCategoryNotFound = "The category you're looking for doesn't exist"
)
