package core

import (
	"fmt"

	"github.com/huangsam/heatgrid/internal/dom"
	"github.com/huangsam/heatgrid/schema"
)

// Row pitches GitHub is known to render the heatmap with, in pixels.
// The denser grid is used when the profile page has a README.
const (
	PitchCompact = 13
	PitchRegular = 15
)

// DayIndex infers the day-of-week slot from a node's vertical offset.
// The compact pitch is checked first, so offsets that are a multiple of
// both pitches (195, 390, ...) resolve with the compact pitch.
func DayIndex(offset uint64) (int, error) {
	switch {
	case offset == 0:
		return 0, nil
	case offset%PitchCompact == 0:
		return int(offset / PitchCompact), nil
	case offset%PitchRegular == 0:
		return int(offset / PitchRegular), nil
	default:
		return 0, fmt.Errorf("%w: y=%d matches neither %dpx nor %dpx rows", ErrUnknownLayoutPitch, offset, PitchCompact, PitchRegular)
	}
}

// AssembleWeek places the day nodes of one week column into their weekday
// slots. Nodes may arrive in any order; a later node for the same slot
// replaces an earlier one. Slots no node maps to stay empty.
// The first node that fails aborts the whole week.
func AssembleWeek(days []dom.Node) (schema.Week, error) {
	var week schema.Week

	for _, day := range days {
		offset, err := uintAttr(day, YAttr)
		if err != nil {
			return schema.Week{}, err
		}

		idx, err := DayIndex(offset)
		if err != nil {
			return schema.Week{}, err
		}
		if idx >= schema.DaysInWeek {
			return schema.Week{}, fmt.Errorf("%w: y=%d maps to day %d of a %d day week", ErrUnknownLayoutPitch, offset, idx, schema.DaysInWeek)
		}

		contribution, err := DecodeContribution(day)
		if err != nil {
			return schema.Week{}, err
		}
		week[idx] = &contribution
	}

	return week, nil
}
