package gobblet

import (
	"fmt"

	"github.com/rocketscienceinc/gobblet-backend/internal/entity"
)

type OutcomeKind int

const (
	Continue OutcomeKind = iota
	InvalidAction
	Win
	Draw
)

// Outcome is the result of one TakeTurn call.
type Outcome struct {
	Kind OutcomeKind
	// Winner and Mover are set for Win only.
	Winner entity.Player
	Mover  entity.Player
	// Revealed marks a win exposed by lifting a piece off the board.
	Revealed bool
	// Err holds the rejection reason for InvalidAction.
	Err error
}

// Finished - reports whether the game was reset by this outcome.
func (that Outcome) Finished() bool {
	return that.Kind == Win || that.Kind == Draw
}

// Status - renders the message shown to players, empty while the game goes on.
func (that Outcome) Status() string {
	switch that.Kind {
	case InvalidAction:
		return "Invalid action"
	case Draw:
		return "Draw"
	case Win:
		if that.Revealed {
			return fmt.Sprintf("Player %d wins during player %d moving a bucket", that.Winner, that.Mover)
		}
		return fmt.Sprintf("Player %d wins", that.Winner)
	default:
		return ""
	}
}
