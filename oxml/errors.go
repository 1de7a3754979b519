package oxml

import "errors"

var (
	// ErrInvalidArgument is returned when a value of the wrong type or range is
	// assigned to a property.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownProperty is returned by dynamic property access for a name the
	// accessor does not expose.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrNotFound is returned when a required element is missing from a part.
	ErrNotFound = errors.New("element not found")
	// ErrNoRoot is returned when parsed input holds no root element.
	ErrNoRoot = errors.New("xml has no root element")
)
