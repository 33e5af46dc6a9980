package pkg

import "github.com/google/uuid"

// GenerateGameID - generates a unique identifier for a game session.
func GenerateGameID() string {
	return uuid.NewString()
}

// IsGameID - reports whether id looks like an identifier produced by GenerateGameID.
func IsGameID(id string) bool {
	return uuid.Validate(id) == nil
}
