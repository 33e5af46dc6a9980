package entity

import (
	"errors"
	"fmt"
)

const (
	DefaultGridSize = 3
)

var (
	ErrInvalidGridSize = errors.New("grid size must be positive")
	ErrInvalidSupply   = errors.New("supply counts must not be negative")

	DefaultSupply = Inventory{2, 2, 2}
)

// Settings are fixed for the lifetime of a game.
type Settings struct {
	GridSize int       `json:"grid_size"`
	MaxTurn  int       `json:"max_turn"`
	Supply   Inventory `json:"supply"`
}

// NewSettings - builds settings, a non-positive maxTurn falls back to 2*N*N.
func NewSettings(gridSize, maxTurn int, supply Inventory) Settings {
	if gridSize <= 0 {
		gridSize = DefaultGridSize
	}

	if maxTurn <= 0 {
		maxTurn = 2 * gridSize * gridSize
	}

	return Settings{
		GridSize: gridSize,
		MaxTurn:  maxTurn,
		Supply:   supply,
	}
}

func DefaultSettings() Settings {
	return NewSettings(DefaultGridSize, 0, DefaultSupply)
}

func (that Settings) Validate() error {
	if that.GridSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidGridSize, that.GridSize)
	}

	for size, count := range that.Supply {
		if count < 0 {
			return fmt.Errorf("%w: size %d has %d", ErrInvalidSupply, size, count)
		}
	}

	return nil
}

// Game is the full state of one session.
type Game struct {
	ID           string               `json:"id"`
	Settings     Settings             `json:"settings"`
	Board        [][]Stack            `json:"board"`
	Inventory    map[Player]Inventory `json:"inventory"`
	Turn         Player               `json:"turn"`
	TurnsElapsed int                  `json:"turns_elapsed"`
}

// NewGame - creates an empty game in its initial state.
func NewGame(id string, settings Settings) *Game {
	game := &Game{
		ID:       id,
		Settings: settings,
	}
	game.Clear()

	return game
}

// Clear - puts the game back to turn 0 with full inventories, player one loses a small piece.
func (that *Game) Clear() {
	size := that.Settings.GridSize

	that.Board = make([][]Stack, size)
	for y := range that.Board {
		that.Board[y] = make([]Stack, size)
	}

	first, second := that.Settings.Supply, that.Settings.Supply
	if first[Small] > 0 {
		first[Small]--
	}

	that.Inventory = map[Player]Inventory{
		PlayerOne: first,
		PlayerTwo: second,
	}

	that.Turn = PlayerOne
	that.TurnsElapsed = 0
}

func (that *Game) InBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < that.Settings.GridSize && c.Y < that.Settings.GridSize
}

// Cell - returns the stack at c, nil when c is off the board.
func (that *Game) Cell(c Coord) Stack {
	if !that.InBounds(c) {
		return nil
	}
	return that.Board[c.Y][c.X]
}

func (that *Game) SetCell(c Coord, stack Stack) {
	that.Board[c.Y][c.X] = stack
}

// TopAt - returns the visible piece at c.
func (that *Game) TopAt(c Coord) (Piece, bool) {
	return that.Cell(c).Top()
}

// Remaining - returns how many unplaced pieces of the given size the player holds.
func (that *Game) Remaining(player Player, size Size) int {
	if !size.Valid() {
		return 0
	}
	return that.Inventory[player][size]
}

// Clone - returns a deep copy.
func (that *Game) Clone() *Game {
	clone := *that

	clone.Board = make([][]Stack, len(that.Board))
	for y, row := range that.Board {
		clone.Board[y] = make([]Stack, len(row))
		for x, stack := range row {
			if stack != nil {
				clone.Board[y][x] = append(Stack{}, stack...)
			}
		}
	}

	clone.Inventory = make(map[Player]Inventory, len(that.Inventory))
	for player, inventory := range that.Inventory {
		clone.Inventory[player] = inventory
	}

	return &clone
}
