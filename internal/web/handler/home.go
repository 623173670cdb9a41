package handler

import (
	"net/http"

	"github.com/mcoot/gridgames-go/internal/model"
	"github.com/mcoot/gridgames-go/internal/web/middleware"
	"github.com/mcoot/gridgames-go/internal/web/templates/layout"
	"github.com/mcoot/gridgames-go/internal/web/templates/pages"
)

// Paths of the game pages
const (
	TicTacToePath   = "/ttt.php"
	ConnectFourPath = "/connect.php"
	BattleshipPath  = "/battleship.php"
)

// HomeHandler handles the home page
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home renders the home page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := pages.HomeData{
		PageData: layout.PageData{
			Title: "Grid Games",
			Flash: middleware.GetFlash(r.Context()),
		},
		Games: []pages.GameLink{
			{Kind: model.GameTicTacToe, Path: TicTacToePath},
			{Kind: model.GameConnectFour, Path: ConnectFourPath},
			{Kind: model.GameBattleship, Path: BattleshipPath},
		},
	}

	render(w, r, http.StatusOK, pages.Home(data))
}
