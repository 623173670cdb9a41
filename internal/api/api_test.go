package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/gridgames-go/internal/api"
	"github.com/mcoot/gridgames-go/internal/api/apierr"
	"github.com/mcoot/gridgames-go/internal/api/response"
	"github.com/mcoot/gridgames-go/internal/factory"
	"github.com/mcoot/gridgames-go/internal/middleware"
	"github.com/mcoot/gridgames-go/internal/testutil"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		GameController: app.GameController,
		SubmissionID:   "api-test",
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierr.APIError {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
	assert.Equal(t, "api-test", rr.Header().Get(middleware.SubmissionHeader))
	assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
}

func TestListGames(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/games", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.GamesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Games, 3)
	assert.Equal(t, "tictactoe", resp.Games[0].ID)
	assert.True(t, resp.Games[0].Stateless)
	assert.Equal(t, "battleship", resp.Games[2].ID)
	assert.False(t, resp.Games[2].Stateless)
}

func TestNewGame(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games/tictactoe/new", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.NewGameResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "        ", resp.Board)
	assert.Len(t, resp.Cells, 3)

	rr = ts.request(http.MethodPost, "/api/v1/games/connect4/new", nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Cells, 5)
	assert.Len(t, resp.Cells[0], 7)
}

func TestMove(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueIntn(0)

	rr := ts.request(http.MethodPost, "/api/v1/games/tictactoe/move", map[string]string{
		"board": "        ",
		"move":  "1,1",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.TurnResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "O    X    ", resp.Board)
	assert.Equal(t, "in_progress", resp.Status)
	assert.Nil(t, resp.Winner)
	assert.Equal(t, "1,1", resp.HumanMove)
	assert.Equal(t, "0,0", resp.OpponentMove)
	assert.Equal(t, "X", resp.Cells[1][1])
}

func TestMoveWins(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games/tictactoe/move", map[string]string{
		"board": "X X  O O    ",
		"move":  "0,2",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.TurnResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "win", resp.Status)
	require.NotNil(t, resp.Winner)
	assert.Equal(t, "X", *resp.Winner)
	assert.Empty(t, resp.OpponentMove)
}

func TestConnectFourMove(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueIntn(0)

	rr := ts.request(http.MethodPost, "/api/v1/games/connectfour/move", map[string]string{"move": "3"})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.TurnResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "3", resp.HumanMove)
	assert.Equal(t, "0", resp.OpponentMove)
	assert.Equal(t, "X", resp.Cells[4][3])
	assert.Equal(t, "O", resp.Cells[4][0])
}

func TestMoveErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   any
		status int
		code   string
	}{
		{"occupied", "/api/v1/games/tictactoe/move", map[string]string{"board": "O    X    ", "move": "1,1"}, http.StatusConflict, apierr.CodeCellOccupied},
		{"full column", "/api/v1/games/connectfour/move", map[string]string{"board": "X      .O      .X      .O      .X      ", "move": "0"}, http.StatusConflict, apierr.CodeColumnFull},
		{"off board", "/api/v1/games/tictactoe/move", map[string]string{"move": "3,0"}, http.StatusBadRequest, apierr.CodeOutOfBounds},
		{"malformed move", "/api/v1/games/tictactoe/move", map[string]string{"move": "centre"}, http.StatusBadRequest, apierr.CodeInvalidMove},
		{"corrupt board", "/api/v1/games/tictactoe/move", map[string]string{"board": "garbage", "move": "0,0"}, http.StatusBadRequest, apierr.CodeInvalidState},
		{"game over", "/api/v1/games/tictactoe/move", map[string]string{"board": "X X X O O    ", "move": "2,2"}, http.StatusConflict, apierr.CodeGameOver},
		{"missing move", "/api/v1/games/tictactoe/move", map[string]string{"board": "        "}, http.StatusBadRequest, apierr.CodeInvalidRequest},
		{"unknown game", "/api/v1/games/chess/move", map[string]string{"move": "e4"}, http.StatusNotFound, apierr.CodeUnknownGame},
		{"battleship", "/api/v1/games/battleship/move", map[string]string{"move": "0,0"}, http.StatusNotFound, apierr.CodeStateless},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)

			rr := ts.request(http.MethodPost, tt.path, tt.body)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.code, decodeError(t, rr).Code)
			assert.Empty(t, ts.app.MockRandom.Calls)
		})
	}
}

func TestInvalidBody(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/games/tictactoe/move", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rr).Code)
}

func TestNewBattleshipRejected(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games/battleship/new", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeStateless, decodeError(t, rr).Code)
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/lobbies", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeNotFound, decodeError(t, rr).Code)
}

func TestServerConfig(t *testing.T) {
	cfg := api.DefaultServerConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 9999

	server := api.NewServer(http.NotFoundHandler(), cfg, testutil.NopLogger())
	assert.Equal(t, "127.0.0.1:9999", server.Addr())
}
