package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testGrid [][]string

func (g testGrid) Rows() int { return len(g) }
func (g testGrid) Cols() int { return len(g[0]) }
func (g testGrid) At(row, col int) string { return g[row][col] }

func TestRunLengthStopsAtEdge(t *testing.T) {
	g := testGrid{
		{"a", "a", "a"},
		{"", "", ""},
	}
	assert.Equal(t, 3, RunLength[string](g, 0, 0, Direction{DRow: 0, DCol: 1}))
	assert.Equal(t, 1, RunLength[string](g, 0, 2, Direction{DRow: 0, DCol: 1}))
}

func TestRunLengthStopsAtDifferentCell(t *testing.T) {
	g := testGrid{{"a", "a", "b", "a"}}
	assert.Equal(t, 2, RunLength[string](g, 0, 0, Direction{DRow: 0, DCol: 1}))
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name   string
		grid   testGrid
		run    int
		winner string
		ok     bool
	}{
		{
			name: "empty grid",
			grid: testGrid{{"", ""}, {"", ""}},
			run:  2,
		},
		{
			name:   "row",
			grid:   testGrid{{"", "", ""}, {"x", "x", "x"}, {"", "", ""}},
			run:    3,
			winner: "x",
			ok:     true,
		},
		{
			name:   "column",
			grid:   testGrid{{"", "o", ""}, {"", "o", ""}, {"", "o", ""}},
			run:    3,
			winner: "o",
			ok:     true,
		},
		{
			name:   "diagonal",
			grid:   testGrid{{"x", "", ""}, {"", "x", ""}, {"", "", "x"}},
			run:    3,
			winner: "x",
			ok:     true,
		},
		{
			name:   "anti-diagonal",
			grid:   testGrid{{"", "", "o"}, {"", "o", ""}, {"o", "", ""}},
			run:    3,
			winner: "o",
			ok:     true,
		},
		{
			name: "run too short",
			grid: testGrid{{"x", "x", ""}, {"", "", ""}, {"", "", ""}},
			run:  3,
		},
		{
			name: "mixed line",
			grid: testGrid{{"x", "o", "x"}, {"", "", ""}, {"", "", ""}},
			run:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			winner, ok := Winner[string](tt.grid, "", tt.run)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.winner, winner)
		})
	}
}

func TestFullAndCount(t *testing.T) {
	g := testGrid{{"x", "o"}, {"x", ""}}
	assert.False(t, Full[string](g, ""))
	assert.Equal(t, 2, Count[string](g, "x"))

	g[1][1] = "o"
	assert.True(t, Full[string](g, ""))
}
