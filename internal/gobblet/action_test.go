package gobblet

import (
	"testing"

	"github.com/rocketscienceinc/gobblet-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	testCases := []struct {
		raw      string
		expected Action
	}{
		{raw: "2_1,1", expected: Place{Size: entity.Large, Dest: at(1, 1)}},
		{raw: "0_0,2", expected: Place{Size: entity.Small, Dest: at(0, 2)}},
		{raw: "-1_0,0", expected: Place{Size: -1, Dest: at(0, 0)}},
		{raw: "2,0_2,1", expected: Move{Source: at(2, 0), Dest: at(2, 1)}},
		{raw: " 1,2_0,0 ", expected: Move{Source: at(1, 2), Dest: at(0, 0)}},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			// When: the action string is decoded
			action, err := ParseAction(tc.raw)

			// Then: the right variant comes out
			require.NoError(t, err)
			assert.Equal(t, tc.expected, action)
		})
	}
}

func TestParseAction_Malformed(t *testing.T) {
	for _, raw := range []string{"", "2", "2_", "_1,1", "2_1", "2_a,1", "2_1,b", "x_1,1", "1,_0,0", "1,1,1_0,0"} {
		t.Run(raw, func(t *testing.T) {
			// When: a malformed string is decoded
			_, err := ParseAction(raw)

			// Then: it is reported as an invalid action
			assert.ErrorIs(t, err, ErrMalformedAction)
			assert.ErrorIs(t, err, ErrInvalidAction)
		})
	}
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "2_1,1", Place{Size: entity.Large, Dest: at(1, 1)}.String())
	assert.Equal(t, "2,0_2,1", Move{Source: at(2, 0), Dest: at(2, 1)}.String())
}
