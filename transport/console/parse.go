package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// ParseCoordinate reads one board coordinate typed by a player.
// Range checks belong to the game controller; only the number format is checked here.
func ParseCoordinate(line string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrParse, line)
	}

	return value, nil
}
