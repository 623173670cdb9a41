package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/gridgames-go/internal/middleware"
)

func TestHomeListsGames(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.page(ts.get("/"), http.StatusOK)

	assertCount(t, doc, "ul.games li a", 3)
	assertContainsElement(t, doc, `a[href="/ttt.php"]`)
	assertContainsElement(t, doc, `a[href="/connect.php"]`)
	assertContainsElement(t, doc, `a[href="/battleship.php"]`)
	assert.True(t, ts.cookies.hasSession(), "Expected session cookie to be set")
}

func TestSubmissionHeaderOnEveryResponse(t *testing.T) {
	ts := newWebTestServer(t)

	for _, path := range []string{"/", "/ttt.php", "/connect.php", "/static/ttt.css"} {
		rr := ts.get(path)
		assert.Equal(t, testSubmissionID, rr.Header().Get(middleware.SubmissionHeader), path)
	}
}

func TestStylesheetsAreServed(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/static/ttt.css")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "#b0a0f0")

	doc := ts.page(ts.get("/ttt.php"), http.StatusOK)
	assertContainsElement(t, doc, `link[href="/static/ttt.css"]`)
}

// Tic-tac-toe

func TestTicTacToeAsksForName(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.page(ts.get("/ttt.php"), http.StatusOK)

	assertContainsElement(t, doc, `form.name-form[action="/ttt.php"]`)
	assertContainsElement(t, doc, `input[name="name"]`)
	assertNotContainsElement(t, doc, "table.board")
}

func TestTicTacToeNewGame(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.page(ts.post("/ttt.php", url.Values{"name": {"Alice"}}), http.StatusOK)

	assertContainsText(t, doc, "h1.greeting", "Hello Alice, 2024-01-01")
	assertCount(t, doc, `table.tictactoe button[name="move"]`, 9)
	assert.Equal(t, "        ", boardField(t, doc))
	assertContainsText(t, doc, "p.score", "Wins: 0, Losses: 0, Draws: 0")
	assert.Empty(t, ts.app.MockRandom.Calls)
}

func TestTicTacToeMoveAndReply(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.MockRandom.QueueIntn(0)

	doc := ts.page(ts.post("/ttt.php", url.Values{
		"name":  {"Alice"},
		"board": {"        "},
		"move":  {"1,1"},
	}), http.StatusOK)

	assert.Equal(t, "O    X    ", boardField(t, doc))
	assertCount(t, doc, `table.tictactoe button[name="move"]`, 7)
	assertNotContainsElement(t, doc, `button[value="1,1"]`)
	assertNotContainsElement(t, doc, `button[value="0,0"]`)
	assertNotContainsElement(t, doc, "p.result")
}

func TestTicTacToeAcceptsQueryString(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.MockRandom.QueueIntn(0)

	doc := ts.page(ts.get("/ttt.php?name=Alice&move=1,1"), http.StatusOK)

	assert.Equal(t, "O    X    ", boardField(t, doc))
}

func TestTicTacToeWin(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.page(ts.post("/ttt.php", url.Values{
		"name":  {"Alice"},
		"board": {"X X  O O    "},
		"move":  {"0,2"},
	}), http.StatusOK)

	assertContainsText(t, doc, "p.result", "You won!")
	assertNotContainsElement(t, doc, `table.tictactoe button`)
	assertContainsElement(t, doc, `form.play-again input[name="name"][value="Alice"]`)
	assertContainsText(t, doc, "p.score", "Wins: 1, Losses: 0, Draws: 0")
}

func TestTicTacToeDraw(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.page(ts.post("/ttt.php", url.Values{
		"name":  {"Alice"},
		"board": {"X O X X O O O X "},
		"move":  {"2,2"},
	}), http.StatusOK)

	assertContainsText(t, doc, "p.result", "A STRANGE GAME")
	assertContainsElement(t, doc, "form.play-again")
	assertContainsText(t, doc, "p.score", "Draws: 1")
}

func TestTicTacToeOccupiedCell(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.page(ts.post("/ttt.php", url.Values{
		"name":  {"Alice"},
		"board": {"O    X    "},
		"move":  {"1,1"},
	}), http.StatusUnprocessableEntity)

	assertContainsText(t, doc, "p.error", "That cell is already taken.")
	assert.Equal(t, "O    X    ", boardField(t, doc))
	assert.Empty(t, ts.app.MockRandom.Calls)
}

func TestTicTacToeMalformedMove(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.page(ts.post("/ttt.php", url.Values{
		"name": {"Alice"},
		"move": {"middle"},
	}), http.StatusUnprocessableEntity)

	assertContainsText(t, doc, "p.error", "That move could not be understood.")
}

func TestTicTacToeCorruptBoard(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.page(ts.post("/ttt.php", url.Values{
		"name":  {"Alice"},
		"board": {"garbage"},
		"move":  {"0,0"},
	}), http.StatusBadRequest)

	assertContainsText(t, doc, "h1.error-heading", "Bad Request")
	assertContainsText(t, doc, "p.error", "Could not parse game state.")
	assertContainsElement(t, doc, `a.back[href="/ttt.php"]`)
}

func TestTicTacToeEscapesName(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/ttt.php", url.Values{"name": {"<script>alert(1)</script>"}})
	require.Equal(t, http.StatusOK, rr.Code)

	assert.NotContains(t, rr.Body.String(), "<script>")
	doc := parseHTML(rr.Body)
	assertNotContainsElement(t, doc, "script")
	assertContainsText(t, doc, "h1.greeting", "<script>alert(1)</script>")
}

// Connect-four

func TestConnectFourNewGame(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.page(ts.post("/connect.php", url.Values{"name": {"Bob"}}), http.StatusOK)

	assertContainsText(t, doc, "h1.greeting", "Hello Bob, 2024-01-01 12:00:00")
	assertCount(t, doc, `tr.drops button[name="move"]`, 7)
	assertCount(t, doc, "table.connectfour tr:not(.drops)", 5)
	assertContainsElement(t, doc, `link[href="/static/connect.css"]`)
}

func TestConnectFourMoveAndReply(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.MockRandom.QueueIntn(0)

	doc := ts.page(ts.post("/connect.php", url.Values{
		"name": {"Bob"},
		"move": {"3"},
	}), http.StatusOK)

	assertCount(t, doc, "td.mark-X", 1)
	assertCount(t, doc, "td.mark-O", 1)
	assert.Equal(t, "      .      .      .      .O   X   ", boardField(t, doc))
}

func TestConnectFourFullColumn(t *testing.T) {
	ts := newWebTestServer(t)
	board := "X      .O      .X      .O      .X      "

	doc := ts.page(ts.post("/connect.php", url.Values{
		"name":  {"Bob"},
		"board": {board},
		"move":  {"0"},
	}), http.StatusUnprocessableEntity)

	assertContainsText(t, doc, "p.error", "That column is full.")
	assert.Equal(t, board, boardField(t, doc))
	assertCount(t, doc, `tr.drops button[name="move"]`, 6)
	assertNotContainsElement(t, doc, `tr.drops button[value="0"]`)
}

func TestConnectFourCorruptBoard(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.page(ts.post("/connect.php", url.Values{
		"name":  {"Bob"},
		"board": {"X.O"},
		"move":  {"0"},
	}), http.StatusBadRequest)

	assertContainsElement(t, doc, `a.back[href="/connect.php"]`)
}
