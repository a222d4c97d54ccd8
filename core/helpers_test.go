package core

import (
	"github.com/huangsam/heatgrid/internal/dom"
	"github.com/huangsam/heatgrid/schema"
)

// fakeNode is an in-memory dom.Node with canned attributes and query results.
type fakeNode struct {
	attrs    map[string]string
	children map[string][]dom.Node
	err      error
}

func (f fakeNode) Attr(name string) (string, bool) {
	v, ok := f.attrs[name]
	return v, ok
}

func (f fakeNode) Select(selector string) ([]dom.Node, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.children[selector], nil
}

// day builds a day node with the given y offset and level.
func day(y, level string) dom.Node {
	return fakeNode{attrs: map[string]string{YAttr: y, LevelAttr: level}}
}

// column builds a week column holding the given day nodes.
func column(days ...dom.Node) dom.Node {
	return fakeNode{children: map[string][]dom.Node{DaySelector: days}}
}

// document builds a page holding the given week columns.
func document(columns ...dom.Node) dom.Node {
	return fakeNode{children: map[string][]dom.Node{WeekSelector: columns}}
}

// lvl returns a populated week slot.
func lvl(l schema.ActivityLevel) *schema.Contribution {
	return &schema.Contribution{Level: l}
}
