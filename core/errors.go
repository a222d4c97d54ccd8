package core

import (
	"errors"
	"fmt"
)

// Heatmap extraction failures. Each one aborts the extraction that raised it.
var (
	ErrMissingAttribute    = errors.New("attribute not found")
	ErrUnparsableAttribute = errors.New("attribute is not a non-negative integer")
	ErrUnknownLayoutPitch  = errors.New("unknown node size scraped from GitHub frontend")
	ErrEmptyColumn         = errors.New("week column contains no day nodes")
	ErrEmptyHeatmap        = errors.New("document contains no week columns")
)

// AttributeError reports a missing or unparsable attribute on a queried node.
// It unwraps to ErrMissingAttribute or ErrUnparsableAttribute.
type AttributeError struct {
	Attr  string // Attribute name that was read
	On    string // User-friendly alias of the node the attribute belongs to
	Value string // Raw value, empty when the attribute is missing
	Err   error
}

// Error implements the error interface.
func (e *AttributeError) Error() string {
	if errors.Is(e.Err, ErrMissingAttribute) {
		return fmt.Sprintf("failed to query attribute '%s' on '%s'", e.Attr, e.On)
	}
	return fmt.Sprintf("failed to parse attribute '%s' on '%s': %q", e.Attr, e.On, e.Value)
}

// Unwrap returns the sentinel classifying this error.
func (e *AttributeError) Unwrap() error {
	return e.Err
}

// QueryError reports a selector that matched nothing where something was required.
// It unwraps to ErrEmptyColumn or ErrEmptyHeatmap.
type QueryError struct {
	Alias    string // User-friendly alias of the element being queried
	Selector string // CSS selector used for the query
	Err      error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	return fmt.Sprintf("failed to query element '%s' with selector '%s': %v", e.Alias, e.Selector, e.Err)
}

// Unwrap returns the sentinel classifying this error.
func (e *QueryError) Unwrap() error {
	return e.Err
}
