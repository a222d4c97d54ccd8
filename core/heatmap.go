package core

import (
	"fmt"

	"github.com/huangsam/heatgrid/internal/dom"
	"github.com/huangsam/heatgrid/schema"
)

// Selectors locating the contribution calendar on a GitHub profile page.
const (
	WeekSelector = "svg.js-calendar-graph-svg g g"
	DaySelector  = "rect.ContributionCalendar-day"
)

// BuildHeatmap extracts the contribution heatmap from a parsed profile page.
// Weeks keep the order the columns appear in the document. Any failing
// column aborts the build; a heatmap is never returned partially or empty.
func BuildHeatmap(doc dom.Node) (schema.Heatmap, error) {
	columns, err := doc.Select(WeekSelector)
	if err != nil {
		return schema.Heatmap{}, fmt.Errorf("failed to query heatmap columns: %w", err)
	}

	weeks := make([]schema.Week, 0, len(columns))
	for _, column := range columns {
		week, err := buildWeek(column)
		if err != nil {
			return schema.Heatmap{}, err
		}
		weeks = append(weeks, week)
	}

	if len(weeks) == 0 {
		return schema.Heatmap{}, &QueryError{Alias: "heatmap", Selector: WeekSelector, Err: ErrEmptyHeatmap}
	}
	return schema.Heatmap{Weeks: weeks}, nil
}

// buildWeek queries the day nodes of one column and assembles them.
func buildWeek(column dom.Node) (schema.Week, error) {
	days, err := column.Select(DaySelector)
	if err != nil {
		return schema.Week{}, fmt.Errorf("failed to query heatmap nodes: %w", err)
	}
	if len(days) == 0 {
		return schema.Week{}, &QueryError{Alias: dayNodeAlias, Selector: DaySelector, Err: ErrEmptyColumn}
	}
	return AssembleWeek(days)
}
