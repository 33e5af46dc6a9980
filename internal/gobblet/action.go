package gobblet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/gobblet-backend/internal/entity"
)

const (
	actionSeparator = "_"
	coordSeparator  = ","
)

var ErrMalformedAction = fmt.Errorf("%w: malformed action", ErrInvalidAction)

// Action is either a Place or a Move.
type Action interface {
	Destination() entity.Coord
	String() string

	isAction()
}

// Place puts a fresh piece from the current player's inventory on Dest.
type Place struct {
	Size entity.Size
	Dest entity.Coord
}

// Move relocates the current player's visible piece from Source to Dest.
type Move struct {
	Source entity.Coord
	Dest   entity.Coord
}

func (that Place) Destination() entity.Coord { return that.Dest }
func (that Move) Destination() entity.Coord  { return that.Dest }

func (that Place) String() string {
	return strconv.Itoa(int(that.Size)) + actionSeparator + that.Dest.String()
}

func (that Move) String() string {
	return that.Source.String() + actionSeparator + that.Dest.String()
}

func (Place) isAction() {}
func (Move) isAction()  {}

// ParseAction - decodes "A_B" where A is a size or "x,y" and B is "x,y".
// Range checks are left to Validate.
func ParseAction(raw string) (Action, error) {
	from, to, ok := strings.Cut(strings.TrimSpace(raw), actionSeparator)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedAction, raw)
	}

	dest, err := parseCoord(to)
	if err != nil {
		return nil, fmt.Errorf("%w: destination: %w", ErrMalformedAction, err)
	}

	if !strings.Contains(from, coordSeparator) {
		size, err := strconv.Atoi(from)
		if err != nil {
			return nil, fmt.Errorf("%w: size: %w", ErrMalformedAction, err)
		}

		return Place{Size: entity.Size(size), Dest: dest}, nil
	}

	source, err := parseCoord(from)
	if err != nil {
		return nil, fmt.Errorf("%w: source: %w", ErrMalformedAction, err)
	}

	return Move{Source: source, Dest: dest}, nil
}

var errBadCoord = errors.New("expected x,y")

func parseCoord(raw string) (entity.Coord, error) {
	xs, ys, ok := strings.Cut(raw, coordSeparator)
	if !ok {
		return entity.Coord{}, fmt.Errorf("%w: %q", errBadCoord, raw)
	}

	x, err := strconv.Atoi(xs)
	if err != nil {
		return entity.Coord{}, fmt.Errorf("%w: %q", errBadCoord, raw)
	}

	y, err := strconv.Atoi(ys)
	if err != nil {
		return entity.Coord{}, fmt.Errorf("%w: %q", errBadCoord, raw)
	}

	return entity.Coord{X: x, Y: y}, nil
}
