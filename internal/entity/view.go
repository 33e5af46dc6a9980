package entity

// GameView is what clients need to draw the board: only visible pieces are exposed.
type GameView struct {
	ID           string               `json:"id"`
	GridSize     int                  `json:"grid_size"`
	Grid         [][]*Piece           `json:"grid"`
	Inventory    map[Player]Inventory `json:"inventory"`
	Turn         Player               `json:"turn"`
	TurnsElapsed int                  `json:"turns_elapsed"`
	MaxTurn      int                  `json:"max_turn"`
}

func (that *Game) View() GameView {
	grid := make([][]*Piece, len(that.Board))
	for y, row := range that.Board {
		grid[y] = make([]*Piece, len(row))
		for x, stack := range row {
			if top, ok := stack.Top(); ok {
				grid[y][x] = &top
			}
		}
	}

	inventory := make(map[Player]Inventory, len(that.Inventory))
	for player, counts := range that.Inventory {
		inventory[player] = counts
	}

	return GameView{
		ID:           that.ID,
		GridSize:     that.Settings.GridSize,
		Grid:         grid,
		Inventory:    inventory,
		Turn:         that.Turn,
		TurnsElapsed: that.TurnsElapsed,
		MaxTurn:      that.Settings.MaxTurn,
	}
}
