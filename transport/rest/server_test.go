package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gobblet-backend/internal/entity"
	"github.com/rocketscienceinc/gobblet-backend/internal/gobblet"
	"github.com/rocketscienceinc/gobblet-backend/internal/repository"
	"github.com/rocketscienceinc/gobblet-backend/internal/usecase"
)

// unknownID is well formed but never issued.
const unknownID = "5f0c6d1e-7a52-4c3b-9d0e-2b8f4a6c1e93"

var errRedisDown = errors.New("redis down")

type brokenManager struct{}

func (brokenManager) CreateGame(context.Context) (*entity.Game, error) {
	return nil, errRedisDown
}

func (brokenManager) GetGame(context.Context, string) (*entity.Game, error) {
	return nil, errRedisDown
}

func (brokenManager) TakeTurn(context.Context, string, gobblet.Action) (*entity.Game, gobblet.Outcome, error) {
	return nil, gobblet.Outcome{}, errRedisDown
}

func (brokenManager) ResetGame(context.Context, string) (*entity.Game, error) {
	return nil, errRedisDown
}

func (brokenManager) DeleteGame(context.Context, string) error {
	return errRedisDown
}

func send(t *testing.T, method, rawURL string) int {
	t.Helper()

	req, err := http.NewRequest(method, rawURL, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	return resp.StatusCode
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	manager := usecase.NewGameManager(newLogger(), repository.NewMemoryGameRepository(), entity.DefaultSettings())
	server := httptest.NewServer(New(newLogger(), manager).Handler())
	t.Cleanup(server.Close)

	return server
}

func createGame(t *testing.T, server *httptest.Server) entity.GameView {
	t.Helper()

	resp, err := http.Post(server.URL+"/games", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var view entity.GameView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))

	return view
}

func get(t *testing.T, rawURL string) (int, string) {
	t.Helper()

	resp, err := http.Get(rawURL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func turn(t *testing.T, server *httptest.Server, id, action string) (int, string) {
	t.Helper()

	return get(t, server.URL+"/games/"+id+"/turn?action="+url.QueryEscape(action))
}

func TestServer_Ping(t *testing.T) {
	server := newTestServer(t)

	code, body := get(t, server.URL+"/ping")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "pong", body)
}

func TestServer_Games(t *testing.T) {
	t.Run("create returns the initial state", func(t *testing.T) {
		server := newTestServer(t)

		view := createGame(t, server)

		assert.NotEmpty(t, view.ID)
		assert.Equal(t, 3, view.GridSize)
		assert.Equal(t, entity.PlayerOne, view.Turn)
		assert.Equal(t, 0, view.TurnsElapsed)
		assert.Equal(t, 18, view.MaxTurn)
		assert.Equal(t, entity.Inventory{1, 2, 2}, view.Inventory[entity.PlayerOne])
		assert.Equal(t, entity.Inventory{2, 2, 2}, view.Inventory[entity.PlayerTwo])
	})

	t.Run("get returns the stored state", func(t *testing.T) {
		server := newTestServer(t)
		created := createGame(t, server)

		code, body := get(t, server.URL+"/games/"+created.ID)
		require.Equal(t, http.StatusOK, code)

		var view entity.GameView
		require.NoError(t, json.Unmarshal([]byte(body), &view))
		assert.Equal(t, created, view)
	})

	t.Run("unknown game is not found", func(t *testing.T) {
		server := newTestServer(t)

		for _, id := range []string{unknownID, "missing"} {
			code, _ := get(t, server.URL+"/games/"+id)
			assert.Equal(t, http.StatusNotFound, code, id)

			code, _ = turn(t, server, id, "0_0,0")
			assert.Equal(t, http.StatusNotFound, code, id)
		}
	})
}

func TestServer_Turn(t *testing.T) {
	t.Run("placement answers with an empty status", func(t *testing.T) {
		// Given
		server := newTestServer(t)
		game := createGame(t, server)

		// When
		code, body := turn(t, server, game.ID, "0_0,0")

		// Then
		assert.Equal(t, http.StatusOK, code)
		assert.Empty(t, body)
	})

	t.Run("move answers with both cells", func(t *testing.T) {
		// Given
		server := newTestServer(t)
		game := createGame(t, server)
		_, _ = turn(t, server, game.ID, "0_0,0")
		_, _ = turn(t, server, game.ID, "1_1,1")

		// When
		code, body := turn(t, server, game.ID, "0,0_2,2")

		// Then
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "0|1|-1|-1", body)
	})

	t.Run("move onto a smaller piece reports what it covered", func(t *testing.T) {
		server := newTestServer(t)
		game := createGame(t, server)
		_, _ = turn(t, server, game.ID, "1_0,0")
		_, _ = turn(t, server, game.ID, "0_1,1")
		_, _ = turn(t, server, game.ID, "2_2,0")
		_, _ = turn(t, server, game.ID, "0_0,2")

		code, body := turn(t, server, game.ID, "0,0_1,1")

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "1|1|-1|-1", body)
	})

	t.Run("rejected actions report invalid action", func(t *testing.T) {
		server := newTestServer(t)
		game := createGame(t, server)

		for _, action := range []string{"", "bogus", "7_0,0", "0_3,3", "1,1_0,0"} {
			code, body := turn(t, server, game.ID, action)

			assert.Equal(t, http.StatusOK, code, action)
			assert.Equal(t, "Invalid action", body, action)
		}

		_, body := get(t, server.URL+"/games/"+game.ID)

		var view entity.GameView
		require.NoError(t, json.Unmarshal([]byte(body), &view))
		assert.Equal(t, 0, view.TurnsElapsed)
	})

	t.Run("winning placement reports the winner", func(t *testing.T) {
		server := newTestServer(t)
		game := createGame(t, server)

		for _, action := range []string{"1_0,0", "1_0,1", "1_1,0", "1_1,1"} {
			_, body := turn(t, server, game.ID, action)
			require.Empty(t, body)
		}

		_, body := turn(t, server, game.ID, "2_2,0")
		assert.Equal(t, "Player 1 wins", body)
	})
}

func TestServer_Reset(t *testing.T) {
	t.Run("reset starts over", func(t *testing.T) {
		// Given
		server := newTestServer(t)
		game := createGame(t, server)
		_, _ = turn(t, server, game.ID, "0_0,0")

		// When
		resp, err := http.Post(server.URL+"/games/"+game.ID+"/reset", "", nil)
		require.NoError(t, err)
		resp.Body.Close()

		// Then
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		_, body := get(t, server.URL+"/games/"+game.ID)

		var view entity.GameView
		require.NoError(t, json.Unmarshal([]byte(body), &view))
		assert.Equal(t, game, view)
	})

	t.Run("unknown game is not found", func(t *testing.T) {
		server := newTestServer(t)

		assert.Equal(t, http.StatusNotFound, send(t, http.MethodPost, server.URL+"/games/"+unknownID+"/reset"))
	})
}

func TestServer_Delete(t *testing.T) {
	t.Run("deleted game is gone", func(t *testing.T) {
		// Given
		server := newTestServer(t)
		game := createGame(t, server)

		// When
		code := send(t, http.MethodDelete, server.URL+"/games/"+game.ID)

		// Then
		assert.Equal(t, http.StatusNoContent, code)

		code, _ = get(t, server.URL+"/games/"+game.ID)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, http.StatusNotFound, send(t, http.MethodDelete, server.URL+"/games/"+game.ID))
	})
}

func TestServer_MalformedID(t *testing.T) {
	// Given: a manager that fails every call it receives
	server := httptest.NewServer(New(newLogger(), brokenManager{}).Handler())
	defer server.Close()

	base := server.URL + "/games/not-a-game"

	// Then: malformed ids are answered before the manager is asked
	assert.Equal(t, http.StatusNotFound, send(t, http.MethodGet, base))
	assert.Equal(t, http.StatusNotFound, send(t, http.MethodGet, base+"/turn?action=0_0,0"))
	assert.Equal(t, http.StatusNotFound, send(t, http.MethodPost, base+"/reset"))
	assert.Equal(t, http.StatusNotFound, send(t, http.MethodDelete, base))
}

func TestServer_StorageFailure(t *testing.T) {
	server := httptest.NewServer(New(newLogger(), brokenManager{}).Handler())
	defer server.Close()

	base := server.URL + "/games/" + unknownID

	assert.Equal(t, http.StatusInternalServerError, send(t, http.MethodPost, server.URL+"/games"))
	assert.Equal(t, http.StatusInternalServerError, send(t, http.MethodGet, base))
	assert.Equal(t, http.StatusInternalServerError, send(t, http.MethodGet, base+"/turn?action=0_0,0"))
	assert.Equal(t, http.StatusInternalServerError, send(t, http.MethodPost, base+"/reset"))
	assert.Equal(t, http.StatusInternalServerError, send(t, http.MethodDelete, base))
}
