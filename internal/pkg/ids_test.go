package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateGameID(t *testing.T) {
	first, second := GenerateGameID(), GenerateGameID()

	assert.NotEqual(t, first, second)
	assert.True(t, IsGameID(first))
	assert.False(t, IsGameID("not-a-game"))
}
