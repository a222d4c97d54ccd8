package core

import (
	"strconv"

	"github.com/huangsam/heatgrid/internal/dom"
	"github.com/huangsam/heatgrid/schema"
)

// Attribute names GitHub renders on every heatmap node.
const (
	LevelAttr = "data-level" // Activity level of the day
	YAttr     = "y"          // Vertical pixel offset of the node inside its column
)

// dayNodeAlias names day nodes in error messages.
const dayNodeAlias = "heatmap node"

// DecodeContribution reads the activity level of a single day node.
// The level is kept verbatim; clamping only happens when rendering.
func DecodeContribution(node dom.Node) (schema.Contribution, error) {
	level, err := uintAttr(node, LevelAttr)
	if err != nil {
		return schema.Contribution{}, err
	}
	return schema.Contribution{Level: schema.ActivityLevel(level)}, nil
}

// uintAttr reads and parses a non-negative base-10 integer attribute.
func uintAttr(node dom.Node, attr string) (uint64, error) {
	raw, ok := node.Attr(attr)
	if !ok {
		return 0, &AttributeError{Attr: attr, On: dayNodeAlias, Err: ErrMissingAttribute}
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, &AttributeError{Attr: attr, On: dayNodeAlias, Value: raw, Err: ErrUnparsableAttribute}
	}
	return v, nil
}
