package gobblet

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gobblet-backend/internal/entity"
)

var (
	ErrInvalidAction = errors.New("invalid action")

	ErrOutOfBounds  = fmt.Errorf("%w: cell is off the board", ErrInvalidAction)
	ErrInvalidSize  = fmt.Errorf("%w: unknown piece size", ErrInvalidAction)
	ErrNoPiecesLeft = fmt.Errorf("%w: no pieces of that size left", ErrInvalidAction)
	ErrEmptySource  = fmt.Errorf("%w: source cell is empty", ErrInvalidAction)
	ErrNotYourPiece = fmt.Errorf("%w: piece belongs to the other player", ErrInvalidAction)
	ErrCannotCover  = fmt.Errorf("%w: piece is not larger than the one it covers", ErrInvalidAction)
)

// Reset - starts the game over.
func Reset(game *entity.Game) {
	game.Clear()
}

// Validate - checks the action against the current state, nil means the action is legal.
func Validate(game *entity.Game, action Action) error {
	dest := action.Destination()
	if !game.InBounds(dest) {
		return fmt.Errorf("%w: destination %s", ErrOutOfBounds, dest)
	}

	size, err := pieceSize(game, action)
	if err != nil {
		return err
	}

	if !game.Cell(dest).CanCover(size) {
		return fmt.Errorf("%w: size %d onto %s", ErrCannotCover, size, dest)
	}

	return nil
}

// pieceSize - resolves the size being played and checks the player may play it.
func pieceSize(game *entity.Game, action Action) (entity.Size, error) {
	switch act := action.(type) {
	case Place:
		if !act.Size.Valid() {
			return 0, fmt.Errorf("%w: %d", ErrInvalidSize, act.Size)
		}

		if game.Remaining(game.Turn, act.Size) < 1 {
			return 0, fmt.Errorf("%w: player %d size %d", ErrNoPiecesLeft, game.Turn, act.Size)
		}

		return act.Size, nil
	case Move:
		if !game.InBounds(act.Source) {
			return 0, fmt.Errorf("%w: source %s", ErrOutOfBounds, act.Source)
		}

		top, ok := game.TopAt(act.Source)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrEmptySource, act.Source)
		}

		if top.Owner != game.Turn {
			return 0, fmt.Errorf("%w: %s", ErrNotYourPiece, act.Source)
		}

		return top.Size, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrMalformedAction, action)
	}
}

// Apply - performs a validated action. A Move that uncovers a complete line
// returns the line's owner right after the lift, before anything is placed.
func Apply(game *entity.Game, action Action) entity.Player {
	var size entity.Size

	switch act := action.(type) {
	case Move:
		lifted, rest := game.Cell(act.Source).Pop()
		game.SetCell(act.Source, rest)

		if winner := CheckWinner(game); winner != entity.NoPlayer {
			return winner
		}

		size = lifted.Size
	case Place:
		inventory := game.Inventory[game.Turn]
		inventory[act.Size]--
		game.Inventory[game.Turn] = inventory

		size = act.Size
	}

	dest := action.Destination()
	game.SetCell(dest, game.Cell(dest).Push(entity.Piece{Owner: game.Turn, Size: size}))

	return entity.NoPlayer
}

// CheckWinner - scans rows, columns, then both diagonals for a line of visible pieces of one owner.
func CheckWinner(game *entity.Game) entity.Player {
	n := game.Settings.GridSize

	for y := 0; y < n; y++ {
		if winner := lineOwner(game, n, func(i int) entity.Coord { return entity.Coord{X: i, Y: y} }); winner != entity.NoPlayer {
			return winner
		}
	}

	for x := 0; x < n; x++ {
		if winner := lineOwner(game, n, func(i int) entity.Coord { return entity.Coord{X: x, Y: i} }); winner != entity.NoPlayer {
			return winner
		}
	}

	if winner := lineOwner(game, n, func(i int) entity.Coord { return entity.Coord{X: i, Y: i} }); winner != entity.NoPlayer {
		return winner
	}

	return lineOwner(game, n, func(i int) entity.Coord { return entity.Coord{X: n - i - 1, Y: i} })
}

func lineOwner(game *entity.Game, n int, at func(i int) entity.Coord) entity.Player {
	owner := entity.NoPlayer

	for i := 0; i < n; i++ {
		top, ok := game.TopAt(at(i))
		if !ok {
			return entity.NoPlayer
		}

		if i == 0 {
			owner = top.Owner
			continue
		}

		if top.Owner != owner {
			return entity.NoPlayer
		}
	}

	return owner
}

// TakeTurn - validates and plays one action for the current player.
// Wins and draws reset the game before returning.
func TakeTurn(game *entity.Game, action Action) Outcome {
	if err := Validate(game, action); err != nil {
		return Outcome{Kind: InvalidAction, Err: err}
	}

	if game.TurnsElapsed >= game.Settings.MaxTurn {
		Reset(game)
		return Outcome{Kind: Draw}
	}

	mover := game.Turn

	if winner := Apply(game, action); winner != entity.NoPlayer {
		Reset(game)
		return Outcome{Kind: Win, Winner: winner, Mover: mover, Revealed: true}
	}

	if winner := CheckWinner(game); winner != entity.NoPlayer {
		Reset(game)
		return Outcome{Kind: Win, Winner: winner, Mover: mover}
	}

	game.Turn = game.Turn.Opponent()
	game.TurnsElapsed++

	return Outcome{Kind: Continue}
}

// TakeTurnString - decodes the raw action first; undecodable input is an invalid action.
func TakeTurnString(game *entity.Game, raw string) Outcome {
	action, err := ParseAction(raw)
	if err != nil {
		return Outcome{Kind: InvalidAction, Err: err}
	}

	return TakeTurn(game, action)
}
