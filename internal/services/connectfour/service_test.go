package connectfour

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gridgames-go/internal/dependencies/mocks"
	"github.com/mcoot/gridgames-go/internal/dependencies/random"
	"github.com/mcoot/gridgames-go/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random)
}

// boardOf builds a board from five rows of X, O and '.' for empty
func boardOf(rows ...string) Board {
	var b Board
	for row, line := range rows {
		for col, ch := range line {
			if ch != '.' {
				b[row][col] = model.Mark(string(ch))
			}
		}
	}
	return b
}

func (s *ServiceSuite) drop(b Board, col int, mark model.Mark) Board {
	next, _, err := b.Drop(col, mark)
	s.Require().NoError(err)
	return next
}

// Gravity tests

func (s *ServiceSuite) TestDropLandsOnBottomRow() {
	b, row, err := Board{}.Drop(3, model.MarkX)
	s.Require().NoError(err)
	s.Equal(Rows-1, row)
	s.Equal(model.MarkX, b[Rows-1][3])
}

func (s *ServiceSuite) TestDropStacks() {
	b := s.drop(Board{}, 3, model.MarkX)
	b, row, err := b.Drop(3, model.MarkO)
	s.Require().NoError(err)
	s.Equal(Rows-2, row)
	s.Equal(model.MarkX, b[Rows-1][3])
	s.Equal(model.MarkO, b[Rows-2][3])
}

func (s *ServiceSuite) TestDropIntoFullColumn() {
	b := Board{}
	mark := model.MarkX
	for i := 0; i < Rows; i++ {
		b = s.drop(b, 0, mark)
		mark = mark.Opponent()
	}
	s.True(b.ColumnFull(0))

	next, _, err := b.Drop(0, model.MarkX)
	s.ErrorIs(err, model.ErrColumnFull)
	s.ErrorIs(err, model.ErrIllegalMove)
	s.Equal(b, next)
}

func (s *ServiceSuite) TestDropOutOfBounds() {
	for _, col := range []int{-1, Cols, 100} {
		_, _, err := Board{}.Drop(col, model.MarkX)
		s.ErrorIs(err, model.ErrOutOfBounds)
	}
}

func (s *ServiceSuite) TestDropChecksTopCell() {
	b := Board{}
	b[0][0] = model.MarkX

	_, _, err := b.Drop(0, model.MarkO)
	s.ErrorIs(err, model.ErrColumnFull)
	s.ErrorIs(err, model.ErrIllegalMove)
	s.NotContains(b.OpenColumns(), 0)
}

// Outcome tests

func (s *ServiceSuite) TestOutcomeLines() {
	tests := []struct {
		name   string
		board  Board
		winner model.Mark
	}{
		{
			name: "horizontal",
			board: boardOf(
				".......",
				".......",
				".......",
				"...OOO.",
				"..XXXX.",
			),
			winner: model.MarkX,
		},
		{
			name: "vertical",
			board: boardOf(
				".......",
				"......O",
				"......O",
				"X.....O",
				"XX....O",
			),
			winner: model.MarkO,
		},
		{
			name: "diagonal down-right",
			board: boardOf(
				".......",
				"X......",
				"OX.....",
				"OOX....",
				"XOOX...",
			),
			winner: model.MarkX,
		},
		{
			name: "diagonal up-right",
			board: boardOf(
				".......",
				"......O",
				".....OX",
				"....OXX",
				"...OXXO",
			),
			winner: model.MarkO,
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(model.Won(tt.winner), tt.board.Outcome())
		})
	}
}

func (s *ServiceSuite) TestOutcomeThreeIsNotAWin() {
	b := boardOf(
		".......",
		".......",
		"X......",
		"X......",
		"XOOO...",
	)
	s.Equal(model.InProgress, b.Outcome())
}

func (s *ServiceSuite) TestOutcomeDraw() {
	b := boardOf(
		"XXOOXXO",
		"OOXXOOX",
		"XXOOXXO",
		"OOXXOOX",
		"XXOOXXO",
	)
	outcome := b.Outcome()
	s.Equal(model.StatusDraw, outcome.Status)
	s.Empty(b.OpenColumns())
}

// Codec tests

func (s *ServiceSuite) TestEncodeEmptyBoard() {
	s.Equal("      .      .      .      .      ", Board{}.Encode())
}

func (s *ServiceSuite) TestEncodeDecode() {
	b := s.drop(Board{}, 0, model.MarkX)
	b = s.drop(b, 6, model.MarkO)
	b = s.drop(b, 0, model.MarkO)

	encoded := b.Encode()
	s.Equal("      .      .      .O      .X      O", encoded)

	decoded, err := Decode(encoded)
	s.Require().NoError(err)
	s.Equal(b, decoded)
}

func (s *ServiceSuite) TestDecodeIgnoresLineBreaks() {
	decoded, err := Decode("      .\n      .      .O      .\r\nX      O")
	s.Require().NoError(err)
	s.Equal(model.MarkO, decoded[3][0])
	s.Equal(model.MarkX, decoded[4][0])
	s.Equal(model.MarkO, decoded[4][6])
}

func (s *ServiceSuite) TestDecodeEmptyString() {
	decoded, err := Decode("")
	s.Require().NoError(err)
	s.Equal(Board{}, decoded)
}

func (s *ServiceSuite) TestDecodeErrors() {
	for _, encoded := range []string{
		"      .      .      .      ",
		"      .      .      .      .      .      ",
		"     .      .      .      .      ",
		"      .      .      .      .Z     ",
		"      .      .      .      .x     ",
		"X      .      .      .      .      ",
		"      .      .      .X      .      ",
	} {
		_, err := Decode(encoded)
		s.ErrorIs(err, model.ErrDecode, encoded)
	}
}

func (s *ServiceSuite) TestRoundTripOverPlayedGames() {
	svc := New(random.NewSeeded(3))
	for game := 0; game < 30; game++ {
		b := svc.NewBoard()
		for !b.Outcome().Terminal() {
			var ok bool
			b, _, ok = svc.OpponentMove(b)
			s.Require().True(ok)

			decoded, err := Decode(b.Encode())
			s.Require().NoError(err)
			s.Equal(b, decoded)
		}
	}
}

// Opponent tests

func (s *ServiceSuite) TestOpponentSkipsFullColumns() {
	b := Board{}
	mark := model.MarkX
	for i := 0; i < Rows; i++ {
		b = s.drop(b, 0, mark)
		mark = mark.Opponent()
	}
	s.random.QueueIntn(0)

	next, col, ok := s.service.OpponentMove(b)
	s.Require().True(ok)
	s.Equal(1, col)
	s.Equal(model.MarkO, next[Rows-1][1])
	s.Equal([]int{Cols - 1}, s.random.Calls)
}

func (s *ServiceSuite) TestOpponentNeverPicksFullColumn() {
	svc := New(random.NewSeeded(11))
	b := Board{}
	for i := 0; i < Rows; i++ {
		b = s.drop(b, 2, model.MarkX)
	}
	for i := 0; i < 100; i++ {
		_, col, ok := svc.OpponentMove(b)
		s.Require().True(ok)
		s.NotEqual(2, col)
	}
}

func (s *ServiceSuite) TestOpponentOnFullBoard() {
	b := boardOf(
		"XXOOXXO",
		"OOXXOOX",
		"XXOOXXO",
		"OOXXOOX",
		"XXOOXXO",
	)
	_, _, ok := s.service.OpponentMove(b)
	s.False(ok)
}
