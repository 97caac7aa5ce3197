package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

func TestParseCoordinate(t *testing.T) {
	t.Run("Numbers are accepted with surrounding spaces", func(t *testing.T) {
		for input, expected := range map[string]int{
			"0":     0,
			" 2 ":   2,
			"1\r":   1,
			"3":     3,
			"-1":    -1,
			"\t42 ": 42,
		} {
			value, err := ParseCoordinate(input)

			require.NoError(t, err, input)
			assert.Equal(t, expected, value, input)
		}
	})

	t.Run("Anything else is a parse error", func(t *testing.T) {
		for _, input := range []string{"", " ", "x", "1.5", "one", "1 2"} {
			_, err := ParseCoordinate(input)

			assert.ErrorIs(t, err, apperror.ErrParse, input)
		}
	})
}
