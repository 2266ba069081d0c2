package catalog

import "errors"

var (
	ErrItemNotFound      = errors.New("menu item not found")
	ErrItemUnavailable   = errors.New("menu item unavailable")
	ErrVariationNotFound = errors.New("variation not found")
	ErrAddOnNotFound     = errors.New("add-on not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidPrice      = errors.New("invalid price")
)
