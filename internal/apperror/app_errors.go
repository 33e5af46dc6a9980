package apperror

import "errors"

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrInvalidSettings = errors.New("invalid game settings")
)
