package battleship

import (
	"github.com/mcoot/gridgames-go/internal/dependencies/random"
)

// MaxPlacementAttempts bounds the random search for a free spot per ship
const MaxPlacementAttempts = 100

// Fleet describes the board size and the ships placed on it
type Fleet struct {
	Rows  int
	Cols  int
	Ships []int
}

// DefaultFleet is a 5x7 board with ships of length 2, 3 and 4
func DefaultFleet() Fleet {
	return Fleet{Rows: 5, Cols: 7, Ships: []int{2, 3, 4}}
}

// MaxShots is the shot budget: 60% of the tiles, rounded up
func (f Fleet) MaxShots() int {
	return (f.Rows*f.Cols*60 + 99) / 100
}

// PlaceFleet lays the ships on an empty board. Each ship picks a random
// orientation, then tries up to MaxPlacementAttempts random spots that do
// not overlap an earlier ship. Ships that find no spot are left off the
// board and returned in omitted.
func PlaceFleet(f Fleet, rnd random.Random) (b Board, omitted []int) {
	b = NewEmptyBoard(f.Rows, f.Cols)
	for _, length := range f.Ships {
		if placeShip(b, length, rnd) {
			b.Ships = append(b.Ships, length)
		} else {
			omitted = append(omitted, length)
		}
	}
	return b, omitted
}

func placeShip(b Board, length int, rnd random.Random) bool {
	horizontal := rnd.Intn(2) == 0
	dRow, dCol := 1, 0
	maxRow, maxCol := b.Rows()-length+1, b.Cols()
	if horizontal {
		dRow, dCol = 0, 1
		maxRow, maxCol = b.Rows(), b.Cols()-length+1
	}
	if length <= 0 || maxRow <= 0 || maxCol <= 0 {
		return false
	}

	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		row, col := rnd.Intn(maxRow), rnd.Intn(maxCol)
		if !fits(b, row, col, dRow, dCol, length) {
			continue
		}
		for i := 0; i < length; i++ {
			b.Tiles[row+i*dRow][col+i*dCol] = TileShip
		}
		return true
	}
	return false
}

func fits(b Board, row, col, dRow, dCol, length int) bool {
	for i := 0; i < length; i++ {
		if b.Tiles[row+i*dRow][col+i*dCol] != TileUntried {
			return false
		}
	}
	return true
}
