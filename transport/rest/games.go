package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rocketscienceinc/gobblet-backend/internal/apperror"
	"github.com/rocketscienceinc/gobblet-backend/internal/entity"
	"github.com/rocketscienceinc/gobblet-backend/internal/gobblet"
	"github.com/rocketscienceinc/gobblet-backend/internal/pkg"
)

const emptyCellInfo = "-1|-1"

func (that *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.CreateGame(r.Context())
	if err != nil {
		that.writeError(w, "handleCreateGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game.View())
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}

	game, err := that.games.GetGame(r.Context(), id)
	if err != nil {
		that.writeError(w, "handleGetGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, game.View())
}

// handleTurn - plays ?action=A_B and answers with the status line.
// A move that leaves the game running answers with the visible pieces of both cells instead.
func (that *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}

	action, err := gobblet.ParseAction(r.URL.Query().Get("action"))
	if err != nil {
		that.logger.Debug("rejected action", "method", "handleTurn", "error", err)
		that.writeText(w, gobblet.Outcome{Kind: gobblet.InvalidAction, Err: err}.Status())
		return
	}

	game, outcome, err := that.games.TakeTurn(r.Context(), id, action)
	if err != nil {
		that.writeError(w, "handleTurn", err)
		return
	}

	status := outcome.Status()

	if move, ok := action.(gobblet.Move); ok && status == "" {
		status = cellInfo(game, move.Dest) + "|" + cellInfo(game, move.Source)
	}

	that.writeText(w, status)
}

func (that *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}

	if _, err := that.games.ResetGame(r.Context(), id); err != nil {
		that.writeError(w, "handleReset", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}

	if err := that.games.DeleteGame(r.Context(), id); err != nil {
		that.writeError(w, "handleDelete", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// gameID - reads the path id, ids that were never issued answer 404 right away.
func gameID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if !pkg.IsGameID(id) {
		http.Error(w, "game not found", http.StatusNotFound)
		return "", false
	}

	return id, true
}

// cellInfo - renders the visible piece as "size|owner".
func cellInfo(game *entity.Game, c entity.Coord) string {
	top, ok := game.TopAt(c)
	if !ok {
		return emptyCellInfo
	}

	return fmt.Sprintf("%d|%d", top.Size, top.Owner)
}

func (that *Server) writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(body)); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *Server) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func (that *Server) writeError(w http.ResponseWriter, method string, err error) {
	if errors.Is(err, apperror.ErrGameNotFound) {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	that.logger.Error("request failed", "method", method, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
