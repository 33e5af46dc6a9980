package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/gobblet-backend/internal/apperror"
	"github.com/rocketscienceinc/gobblet-backend/internal/entity"
	"github.com/rocketscienceinc/gobblet-backend/internal/gobblet"
	"github.com/rocketscienceinc/gobblet-backend/internal/pkg"
)

// handleNewGame - joins the game from the payload or starts a new one.
func (that *Server) handleNewGame(ctx context.Context, msg *Message) Payload {
	req, ok := decodeRequest(msg)
	if !ok {
		return Payload{Error: errMalformedMessage}
	}

	id := req.GameID
	if !pkg.IsGameID(id) {
		id = ""
	}

	game, err := that.games.GetOrCreateGame(ctx, id)
	if err != nil {
		return that.errorPayload("handleNewGame", err)
	}

	return gamePayload(game, "")
}

func (that *Server) handleGameState(ctx context.Context, msg *Message) Payload {
	req, ok := decodeRequest(msg)
	if !ok {
		return Payload{Error: errMalformedMessage}
	}

	if errPayload, ok := checkGameID(req.GameID); !ok {
		return errPayload
	}

	game, err := that.games.GetGame(ctx, req.GameID)
	if err != nil {
		return that.errorPayload("handleGameState", err)
	}

	return gamePayload(game, "")
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message) Payload {
	req, ok := decodeRequest(msg)
	if !ok {
		return Payload{Error: errMalformedMessage}
	}

	if errPayload, ok := checkGameID(req.GameID); !ok {
		return errPayload
	}

	action, err := gobblet.ParseAction(req.Move)
	if err != nil {
		game, getErr := that.games.GetGame(ctx, req.GameID)
		if getErr != nil {
			return that.errorPayload("handleGameTurn", getErr)
		}

		return gamePayload(game, gobblet.Outcome{Kind: gobblet.InvalidAction, Err: err}.Status())
	}

	game, outcome, err := that.games.TakeTurn(ctx, req.GameID, action)
	if err != nil {
		return that.errorPayload("handleGameTurn", err)
	}

	return gamePayload(game, outcome.Status())
}

func (that *Server) handleGameReset(ctx context.Context, msg *Message) Payload {
	req, ok := decodeRequest(msg)
	if !ok {
		return Payload{Error: errMalformedMessage}
	}

	if errPayload, ok := checkGameID(req.GameID); !ok {
		return errPayload
	}

	game, err := that.games.ResetGame(ctx, req.GameID)
	if err != nil {
		return that.errorPayload("handleGameReset", err)
	}

	return gamePayload(game, "")
}

func (that *Server) handleGameDelete(ctx context.Context, msg *Message) Payload {
	req, ok := decodeRequest(msg)
	if !ok {
		return Payload{Error: errMalformedMessage}
	}

	if errPayload, ok := checkGameID(req.GameID); !ok {
		return errPayload
	}

	if err := that.games.DeleteGame(ctx, req.GameID); err != nil {
		return that.errorPayload("handleGameDelete", err)
	}

	return Payload{}
}

// checkGameID - rejects missing ids and ids that were never issued.
func checkGameID(id string) (Payload, bool) {
	if id == "" {
		return Payload{Error: errGameIDRequired}, false
	}

	if !pkg.IsGameID(id) {
		return Payload{Error: errGameNotFound}, false
	}

	return Payload{}, true
}

func (that *Server) errorPayload(method string, err error) Payload {
	if errors.Is(err, apperror.ErrGameNotFound) {
		return Payload{Error: errGameNotFound}
	}

	that.logger.Error("request failed", "method", method, "error", err)

	return Payload{Error: errInternal}
}

func decodeRequest(msg *Message) (Request, bool) {
	var req Request

	if len(msg.Payload) == 0 {
		return req, true
	}

	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		return req, false
	}

	return req, true
}

func gamePayload(game *entity.Game, status string) Payload {
	view := game.View()

	return Payload{Game: &view, Status: status}
}
