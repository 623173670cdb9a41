package web_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/gridgames-go/internal/model"
)

var fleetTiles = []string{"0,0", "0,1", "1,0", "2,0", "3,0", "4,3", "4,4", "4,5", "4,6"}

// startBattleship enters a name with a scripted fleet
func (ts *webTestServer) startBattleship(name string) {
	ts.t.Helper()
	ts.app.QueueFleet()
	rr := ts.post("/battleship.php", url.Values{"name": {name}})
	require.Equal(ts.t, http.StatusOK, rr.Code)
}

func (ts *webTestServer) fire(move string) *httptest.ResponseRecorder {
	return ts.post("/battleship.php", url.Values{"move": {move}})
}

func TestBattleshipAsksForName(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.page(ts.get("/battleship.php"), http.StatusOK)

	assertContainsElement(t, doc, `form.name-form[action="/battleship.php"]`)
	assertNotContainsElement(t, doc, "table.battleship")
}

func TestBattleshipNewGame(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.QueueFleet()

	doc := ts.page(ts.post("/battleship.php", url.Values{"name": {"Alice"}}), http.StatusOK)

	assertContainsText(t, doc, "h1.greeting", "Hello Alice, 2024-01-01")
	assertContainsText(t, doc, "p.moves-left", "Moves left: 21")
	assertCount(t, doc, `table.battleship button[name="move"]`, 35)
	assertNotContainsElement(t, doc, "span.hit")
	assertNotContainsElement(t, doc, `input[name="board"]`)
}

func TestBattleshipRemembersName(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startBattleship("Alice")

	doc := ts.page(ts.get("/battleship.php"), http.StatusOK)

	assertContainsText(t, doc, "h1.greeting", "Hello Alice")
	assertContainsText(t, doc, "p.moves-left", "Moves left: 21")
}

func TestBattleshipHitAndMiss(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startBattleship("Alice")

	doc := ts.page(ts.fire("0,0"), http.StatusOK)
	assertCount(t, doc, "span.hit", 1)
	assertContainsText(t, doc, "p.moves-left", "Moves left: 20")
	assertNotContainsElement(t, doc, `button[value="0,0"]`)

	doc = ts.page(ts.fire("2,3"), http.StatusOK)
	assertCount(t, doc, "span.hit", 1)
	assertCount(t, doc, "span.miss", 1)
	assertContainsText(t, doc, "p.moves-left", "Moves left: 19")
	assertCount(t, doc, `table.battleship button[name="move"]`, 33)
}

func TestBattleshipRepeatShot(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startBattleship("Alice")
	ts.fire("2,3")

	doc := ts.page(ts.fire("2,3"), http.StatusOK)

	assertContainsText(t, doc, "p.moves-left", "Moves left: 20")
	assertCount(t, doc, "span.miss", 1)
}

func TestBattleshipOutOfBounds(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startBattleship("Alice")

	doc := ts.page(ts.fire("7,7"), http.StatusUnprocessableEntity)

	assertContainsText(t, doc, "p.error", "That move is off the board.")
	assertContainsText(t, doc, "p.moves-left", "Moves left: 21")
}

func TestBattleshipWin(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startBattleship("Alice")
	for _, tile := range fleetTiles[:len(fleetTiles)-1] {
		require.Equal(t, http.StatusOK, ts.fire(tile).Code)
	}

	doc := ts.page(ts.fire(fleetTiles[len(fleetTiles)-1]), http.StatusOK)

	assertContainsText(t, doc, "p.result", "You win!")
	assertContainsText(t, doc, "p.moves-left", "Moves left: 12")
	assertNotContainsElement(t, doc, "table.battleship button")
	assertContainsElement(t, doc, `form.play-again input[name="reset"]`)
	assertContainsText(t, doc, "p.score", "Wins: 1, Losses: 0, Draws: 0")

	doc = ts.page(ts.fire("2,3"), http.StatusUnprocessableEntity)
	assertContainsText(t, doc, "p.error", "The game is already over.")
}

func TestBattleshipResetRedirects(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startBattleship("Alice")
	ts.fire("2,3")

	ts.app.QueueFleet()
	rr := ts.post("/battleship.php", url.Values{"reset": {"1"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/battleship.php", rr.Header().Get("Location"))

	doc := ts.page(ts.followRedirect(rr), http.StatusOK)
	assertContainsText(t, doc, "div.flash", "New game started")
	assertContainsText(t, doc, "h1.greeting", "Hello Alice")
	assertContainsText(t, doc, "p.moves-left", "Moves left: 21")
	assertNotContainsElement(t, doc, "span.miss")

	// The flash is shown once
	doc = ts.page(ts.get("/battleship.php"), http.StatusOK)
	assertNotContainsElement(t, doc, "div.flash")
}

func TestBattleshipResetByQueryString(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startBattleship("Alice")

	ts.app.QueueFleet()
	rr := ts.get("/battleship.php?reset=1")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
}

func TestBattleshipCorruptSession(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startBattleship("Alice")
	id := ts.cookies.sessionID()
	require.NotEmpty(t, id)
	require.NoError(t, ts.app.Sessions.Set(t.Context(), id, model.SessionKeyBoard, "{not json"))

	doc := ts.page(ts.fire("0,0"), http.StatusBadRequest)

	assertContainsText(t, doc, "p.error", "Could not parse game state.")
	assertContainsElement(t, doc, `a.back[href="/battleship.php?reset=1"]`)
}

func TestBattleshipSessionsAreSeparate(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startBattleship("Alice")

	// Same server, different browser
	other := &webTestServer{t: t, handler: ts.handler, app: ts.app, cookies: newCookieJar()}

	doc := other.page(other.get("/battleship.php"), http.StatusOK)
	assertContainsElement(t, doc, "form.name-form")
}
