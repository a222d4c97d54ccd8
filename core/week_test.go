package core

import (
	"testing"

	"github.com/huangsam/heatgrid/internal/dom"
	"github.com/huangsam/heatgrid/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayIndex(t *testing.T) {
	tests := []struct {
		offset   uint64
		expected int
	}{
		{0, 0},
		{13, 1},
		{15, 1},
		{26, 2},
		{30, 2},
		{78, 6},
		{90, 6},
		{195, 15}, // common multiple resolves with the compact pitch
		{390, 30},
	}

	for _, tt := range tests {
		idx, err := DayIndex(tt.offset)
		require.NoError(t, err, "offset %d", tt.offset)
		assert.Equal(t, tt.expected, idx, "offset %d", tt.offset)
	}
}

func TestDayIndex_UnknownPitch(t *testing.T) {
	for _, offset := range []uint64{1, 7, 14, 20, 100} {
		_, err := DayIndex(offset)
		assert.ErrorIs(t, err, ErrUnknownLayoutPitch, "offset %d", offset)
	}
}

func TestAssembleWeek_FullRegularPitch(t *testing.T) {
	days := []dom.Node{
		day("0", "1"), day("15", "2"), day("30", "3"), day("45", "4"),
		day("60", "4"), day("75", "4"), day("90", "4"),
	}

	week, err := AssembleWeek(days)
	require.NoError(t, err)

	expected := schema.Week{lvl(1), lvl(2), lvl(3), lvl(4), lvl(4), lvl(4), lvl(4)}
	assert.Equal(t, expected, week)
}

func TestAssembleWeek_Sparse(t *testing.T) {
	week, err := AssembleWeek([]dom.Node{day("60", "1"), day("75", "2"), day("90", "3")})
	require.NoError(t, err)

	expected := schema.Week{nil, nil, nil, nil, lvl(1), lvl(2), lvl(3)}
	assert.Equal(t, expected, week)
}

func TestAssembleWeek_CompactPitch(t *testing.T) {
	week, err := AssembleWeek([]dom.Node{day("0", "2"), day("13", "0"), day("78", "3")})
	require.NoError(t, err)

	expected := schema.Week{lvl(2), lvl(0), nil, nil, nil, nil, lvl(3)}
	assert.Equal(t, expected, week)
}

func TestAssembleWeek_OutOfOrder(t *testing.T) {
	week, err := AssembleWeek([]dom.Node{day("90", "3"), day("0", "1"), day("45", "2")})
	require.NoError(t, err)

	expected := schema.Week{lvl(1), nil, nil, lvl(2), nil, nil, lvl(3)}
	assert.Equal(t, expected, week)
}

func TestAssembleWeek_LastWriteWins(t *testing.T) {
	week, err := AssembleWeek([]dom.Node{day("30", "1"), day("30", "4")})
	require.NoError(t, err)

	require.NotNil(t, week[2])
	assert.Equal(t, schema.ActivityLevel(4), week[2].Level)
	assert.Equal(t, 1, week.Populated())
}

func TestAssembleWeek_AlwaysSevenSlots(t *testing.T) {
	offsets := []string{"0", "15", "30", "45", "60", "75", "90"}
	for n := 0; n <= len(offsets); n++ {
		var days []dom.Node
		for _, y := range offsets[:n] {
			days = append(days, day(y, "1"))
		}

		week, err := AssembleWeek(days)
		require.NoError(t, err)
		assert.Len(t, week, schema.DaysInWeek)
		assert.Equal(t, n, week.Populated())
	}
}

func TestAssembleWeek_Errors(t *testing.T) {
	tests := []struct {
		name     string
		days     []dom.Node
		expected error
	}{
		{
			name:     "missing y",
			days:     []dom.Node{fakeNode{attrs: map[string]string{LevelAttr: "1"}}},
			expected: ErrMissingAttribute,
		},
		{
			name:     "unparsable y",
			days:     []dom.Node{day("12.5", "1")},
			expected: ErrUnparsableAttribute,
		},
		{
			name:     "unknown pitch",
			days:     []dom.Node{day("0", "1"), day("20", "1")},
			expected: ErrUnknownLayoutPitch,
		},
		{
			name:     "index beyond the week",
			days:     []dom.Node{day("104", "1")},
			expected: ErrUnknownLayoutPitch,
		},
		{
			name:     "missing level",
			days:     []dom.Node{day("0", "1"), fakeNode{attrs: map[string]string{YAttr: "15"}}},
			expected: ErrMissingAttribute,
		},
		{
			name:     "unparsable level after valid days",
			days:     []dom.Node{day("0", "1"), day("15", "2"), day("30", "high")},
			expected: ErrUnparsableAttribute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week, err := AssembleWeek(tt.days)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
			assert.Equal(t, schema.Week{}, week, "partial weeks are never returned")
		})
	}
}
