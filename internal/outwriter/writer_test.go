package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/heatgrid/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		expected string
	}{
		{
			name:     "level row with gaps",
			data:     []*int{nil, new(int)},
			expected: "[\n  null,\n  0\n]\n",
		},
		{
			name:     "string",
			data:     "heatgrid",
			expected: `"heatgrid"` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeJSON(&buf, tt.data))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteJSONError(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode JSON")
}

func TestWriteCSVWithHeaderError(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"col"}, func(*csv.Writer) error {
		return assert.AnError
	})
	assert.Equal(t, assert.AnError, err)
}

func TestWriteWithFile(t *testing.T) {
	t.Run("writes to the named file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "grid.txt")
		err := writeWithFile(path, func(w io.Writer) error {
			_, err := io.WriteString(w, "■ ")
			return err
		}, "Wrote grid")
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "■ ", string(content))
	})

	t.Run("propagates writer errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "grid.txt")
		err := writeWithFile(path, func(io.Writer) error { return assert.AnError }, "Wrote grid")
		assert.Equal(t, assert.AnError, err)
	})

	t.Run("fails on invalid path", func(t *testing.T) {
		err := writeWithFile(filepath.Join(t.TempDir(), "missing", "grid.txt"), func(io.Writer) error {
			return nil
		}, "Wrote grid")
		assert.Error(t, err)
	})
}

func TestWriteCSVResultsForHeatmap(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCSVResultsForHeatmap(&buf, sampleHeatmap()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 11) // header + 10 populated cells
	assert.Equal(t, "week,day,weekday,level,intensity", lines[0])
	assert.Equal(t, "0,4,Thu,1,64", lines[1])
	assert.Equal(t, "0,6,Sat,3,191", lines[3])
	assert.Equal(t, "1,0,Sun,1,64", lines[4])
	assert.Equal(t, "1,6,Sat,4,255", lines[10])
}

func TestWriteCSVResultsForHeatmap_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCSVResultsForHeatmap(&buf, schema.Heatmap{}))
	assert.Equal(t, "week,day,weekday,level,intensity\n", buf.String())
}

func TestWriteJSONResultsForHeatmap(t *testing.T) {
	var buf bytes.Buffer
	result := schema.NewHeatmapResult("huangsam", "2022", sampleHeatmap())
	require.NoError(t, writeJSONResultsForHeatmap(&buf, result))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "huangsam", decoded["slug"])
	assert.Equal(t, "2022", decoded["year"])

	weeks, ok := decoded["weeks"].([]any)
	require.True(t, ok)
	require.Len(t, weeks, 2)
	first, ok := weeks[0].([]any)
	require.True(t, ok)
	assert.Nil(t, first[0])
	assert.Equal(t, float64(3), first[6])
}
