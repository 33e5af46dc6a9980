package entity

import "fmt"

// Player identifies a side. NoPlayer marks the absence of an owner.
type Player int

const (
	NoPlayer  Player = 0
	PlayerOne Player = 1
	PlayerTwo Player = 2
)

// Size is one of the three piece classes.
type Size int

const (
	Small  Size = 0
	Medium Size = 1
	Large  Size = 2

	SizeCount = 3
)

func (that Player) Valid() bool {
	return that == PlayerOne || that == PlayerTwo
}

// Opponent - returns the other side.
func (that Player) Opponent() Player {
	if that == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (that Size) Valid() bool {
	return that >= Small && that <= Large
}

// Piece is a single bucket owned by a player.
type Piece struct {
	Owner Player `json:"owner"`
	Size  Size   `json:"size"`
}

func (that Piece) String() string {
	return fmt.Sprintf("P%d/%d", that.Owner, that.Size)
}

// Stack holds the pieces of one cell, index 0 is the visible piece.
type Stack []Piece

// Top - returns the visible piece, ok is false for an empty cell.
func (that Stack) Top() (Piece, bool) {
	if len(that) == 0 {
		return Piece{}, false
	}
	return that[0], true
}

// CanCover - reports whether a piece of the given size may be pushed onto the stack.
func (that Stack) CanCover(size Size) bool {
	top, ok := that.Top()
	return !ok || size > top.Size
}

// Push - puts the piece on top.
func (that Stack) Push(piece Piece) Stack {
	return append(Stack{piece}, that...)
}

// Pop - removes the visible piece.
func (that Stack) Pop() (Piece, Stack) {
	top, ok := that.Top()
	if !ok {
		return Piece{}, that
	}

	rest := make(Stack, len(that)-1)
	copy(rest, that[1:])

	return top, rest
}

// Coord addresses a cell: X grows to the right, Y grows downwards.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (that Coord) String() string {
	return fmt.Sprintf("%d,%d", that.X, that.Y)
}

// Inventory counts the unplaced pieces of a player by size class.
type Inventory [SizeCount]int
