package battleship

import (
	"fmt"

	"github.com/mcoot/gridgames-go/internal/grid"
	"github.com/mcoot/gridgames-go/internal/model"
)

// Tile is the state of one battleship cell
type Tile string

const (
	TileUntried Tile = "untried"
	TileShip    Tile = "ship" // not yet fired at; shown to the player as untried
	TileHit     Tile = "hit"
	TileMiss    Tile = "miss"
)

// Revealed returns true once the tile has been fired at
func (t Tile) Revealed() bool {
	return t == TileHit || t == TileMiss
}

func (t Tile) valid() bool {
	switch t {
	case TileUntried, TileShip, TileHit, TileMiss:
		return true
	default:
		return false
	}
}

// Board is a battleship grid together with the lengths of the ships that
// were placed on it. Use Clone before mutating a shared board.
type Board struct {
	Tiles [][]Tile `json:"tiles"`
	Ships []int    `json:"ships"`
}

var _ grid.Reader[Tile] = Board{}

// NewEmptyBoard returns a rows x cols board of untried tiles with no ships
func NewEmptyBoard(rows, cols int) Board {
	tiles := make([][]Tile, rows)
	for i := range tiles {
		tiles[i] = make([]Tile, cols)
		for j := range tiles[i] {
			tiles[i][j] = TileUntried
		}
	}
	return Board{Tiles: tiles}
}

func (b Board) Rows() int { return len(b.Tiles) }

func (b Board) Cols() int {
	if len(b.Tiles) == 0 {
		return 0
	}
	return len(b.Tiles[0])
}

func (b Board) At(row, col int) Tile { return b.Tiles[row][col] }

// InBounds returns true if the position is on the board
func (b Board) InBounds(pos model.Position) bool {
	return pos.Row >= 0 && pos.Row < b.Rows() && pos.Col >= 0 && pos.Col < b.Cols()
}

// Clone returns a deep copy of the board
func (b Board) Clone() Board {
	tiles := make([][]Tile, len(b.Tiles))
	for i, row := range b.Tiles {
		tiles[i] = append([]Tile(nil), row...)
	}
	return Board{Tiles: tiles, Ships: append([]int(nil), b.Ships...)}
}

// Fire shoots at pos. A ship becomes a hit and open water a miss; firing at
// a revealed tile changes nothing and reports changed=false.
func (b Board) Fire(pos model.Position) (next Board, changed bool, err error) {
	if !b.InBounds(pos) {
		return b, false, fmt.Errorf("%w: %s", model.ErrOutOfBounds, pos)
	}
	switch b.Tiles[pos.Row][pos.Col] {
	case TileShip:
		next = b.Clone()
		next.Tiles[pos.Row][pos.Col] = TileHit
		return next, true, nil
	case TileUntried:
		next = b.Clone()
		next.Tiles[pos.Row][pos.Col] = TileMiss
		return next, true, nil
	default:
		return b, false, nil
	}
}

// Hits returns the number of ship tiles that have been hit
func (b Board) Hits() int {
	return grid.Count[Tile](b, TileHit)
}

// FleetSize returns the total length of the ships on the board
func (b Board) FleetSize() int {
	total := 0
	for _, length := range b.Ships {
		total += length
	}
	return total
}

// Outcome is a win once every ship tile is hit and a loss when the shots
// run out first.
func (b Board) Outcome(shotsLeft int) model.Outcome {
	if b.Hits() >= b.FleetSize() {
		return model.Outcome{Status: model.StatusWin}
	}
	if shotsLeft <= 0 {
		return model.Outcome{Status: model.StatusLoss}
	}
	return model.InProgress
}

func (b Board) validate() error {
	if b.Rows() == 0 || b.Cols() == 0 {
		return fmt.Errorf("%w: empty battleship board", model.ErrDecode)
	}
	for row, tiles := range b.Tiles {
		if len(tiles) != b.Cols() {
			return fmt.Errorf("%w: row %d has %d tiles, want %d", model.ErrDecode, row, len(tiles), b.Cols())
		}
		for col, tile := range tiles {
			if !tile.valid() {
				return fmt.Errorf("%w: bad tile %q at %d,%d", model.ErrDecode, tile, row, col)
			}
		}
	}
	return nil
}
