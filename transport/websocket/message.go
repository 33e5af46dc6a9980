package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/gobblet-backend/internal/entity"
)

const (
	actionNewGame    = "game:new"
	actionGameState  = "game:state"
	actionGameTurn   = "game:turn"
	actionGameReset  = "game:reset"
	actionGameDelete = "game:delete"
)

const (
	errMalformedMessage = "malformed message"
	errUnknownAction    = "unknown action"
	errGameIDRequired   = "game_id is required"
	errGameNotFound     = "game not found"
	errInternal         = "internal error"
)

// Message - client request.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Request struct {
	GameID string `json:"game_id,omitempty"`
	Move   string `json:"move,omitempty"`
}

// Response - server answer, Action echoes the request.
type Response struct {
	Action  string  `json:"action"`
	Payload Payload `json:"payload"`
}

type Payload struct {
	Game   *entity.GameView `json:"game,omitempty"`
	Status string           `json:"status,omitempty"`
	Error  string           `json:"error,omitempty"`
}
