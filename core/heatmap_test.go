package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/huangsam/heatgrid/internal/dom"
	"github.com/huangsam/heatgrid/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoWeekProfile = `<!DOCTYPE html>
<html><body>
<div class="js-yearly-contributions">
<svg width="828" height="128" class="js-calendar-graph-svg">
  <g transform="translate(10, 20)">
    <g transform="translate(0, 0)">
      <rect class="ContributionCalendar-day" width="11" height="11" x="16" y="60" data-level="1"></rect>
      <rect class="ContributionCalendar-day" width="11" height="11" x="16" y="75" data-level="2"></rect>
      <rect class="ContributionCalendar-day" width="11" height="11" x="16" y="90" data-level="3"></rect>
    </g>
    <g transform="translate(15, 0)">
      <rect class="ContributionCalendar-day" width="11" height="11" x="15" y="0" data-level="1"></rect>
      <rect class="ContributionCalendar-day" width="11" height="11" x="15" y="15" data-level="2"></rect>
      <rect class="ContributionCalendar-day" width="11" height="11" x="15" y="30" data-level="3"></rect>
      <rect class="ContributionCalendar-day" width="11" height="11" x="15" y="45" data-level="4"></rect>
      <rect class="ContributionCalendar-day" width="11" height="11" x="15" y="60" data-level="4"></rect>
      <rect class="ContributionCalendar-day" width="11" height="11" x="15" y="75" data-level="4"></rect>
      <rect class="ContributionCalendar-day" width="11" height="11" x="15" y="90" data-level="4"></rect>
    </g>
  </g>
</svg>
</div>
</body></html>`

func TestBuildHeatmap_ProfilePage(t *testing.T) {
	doc, err := dom.ParseString(twoWeekProfile)
	require.NoError(t, err)

	heatmap, err := BuildHeatmap(doc)
	require.NoError(t, err)

	expected := schema.Heatmap{Weeks: []schema.Week{
		{nil, nil, nil, nil, lvl(1), lvl(2), lvl(3)},
		{lvl(1), lvl(2), lvl(3), lvl(4), lvl(4), lvl(4), lvl(4)},
	}}
	if diff := cmp.Diff(expected, heatmap); diff != "" {
		t.Errorf("BuildHeatmap() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildHeatmap_KeepsDocumentOrder(t *testing.T) {
	doc := document(
		column(day("0", "3")),
		column(day("0", "1")),
		column(day("0", "2")),
	)

	heatmap, err := BuildHeatmap(doc)
	require.NoError(t, err)
	require.Len(t, heatmap.Weeks, 3)
	for i, expected := range []schema.ActivityLevel{3, 1, 2} {
		assert.Equal(t, expected, heatmap.Weeks[i][0].Level)
	}
}

func TestBuildHeatmap_EmptyHeatmap(t *testing.T) {
	for name, markup := range map[string]string{
		"no calendar":         `<html><body><p>nothing here</p></body></html>`,
		"calendar no columns": `<html><body><svg class="js-calendar-graph-svg"><g></g></svg></body></html>`,
	} {
		t.Run(name, func(t *testing.T) {
			doc, err := dom.ParseString(markup)
			require.NoError(t, err)

			heatmap, err := BuildHeatmap(doc)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrEmptyHeatmap)
			assert.Empty(t, heatmap.Weeks)

			var queryErr *QueryError
			require.True(t, errors.As(err, &queryErr))
			assert.Equal(t, WeekSelector, queryErr.Selector)
		})
	}
}

func TestBuildHeatmap_EmptyColumn(t *testing.T) {
	doc := document(column(day("0", "1")), column())

	heatmap, err := BuildHeatmap(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyColumn)
	assert.Empty(t, heatmap.Weeks)

	var queryErr *QueryError
	require.True(t, errors.As(err, &queryErr))
	assert.Equal(t, DaySelector, queryErr.Selector)
	assert.Equal(t, "heatmap node", queryErr.Alias)
}

func TestBuildHeatmap_PropagatesWeekErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      dom.Node
		expected error
	}{
		{"bad pitch in later column", document(column(day("0", "1")), column(day("21", "1"))), ErrUnknownLayoutPitch},
		{"missing level", document(column(fakeNode{attrs: map[string]string{YAttr: "0"}})), ErrMissingAttribute},
		{"unparsable y", document(column(day("top", "1"))), ErrUnparsableAttribute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			heatmap, err := BuildHeatmap(tt.doc)
			assert.ErrorIs(t, err, tt.expected)
			assert.Empty(t, heatmap.Weeks)
		})
	}
}

func TestBuildHeatmap_SelectFailure(t *testing.T) {
	boom := errors.New("boom")

	_, err := BuildHeatmap(fakeNode{err: boom})
	assert.ErrorIs(t, err, boom)

	_, err = BuildHeatmap(document(fakeNode{err: boom}))
	assert.ErrorIs(t, err, boom)
}
