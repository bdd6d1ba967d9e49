package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Esadruhn/quantikai/game"
)

func TestDefaultSelectorMCTSOnEmptyBoard(t *testing.T) {
	board := game.NewBoard()
	current := game.NewHand()
	other := game.NewHand()
	assert.Equal(t, StrategyMCTS, DefaultSelector(board, current, other))
}

func TestDefaultSelectorMinimaxOncePastThreshold(t *testing.T) {
	board := game.NewBoard()
	current := game.NewHand()
	other := game.NewHand()
	// Deplete enough of current's hand to push pieces_on_board past the
	// threshold without needing real plays on the board: the selector
	// only reads hand sizes, not board occupancy.
	for _, s := range game.Shapes {
		require.NoError(t, current.Remove(s))
	}
	require.NoError(t, current.Remove(game.ShapeA))
	require.NoError(t, current.Remove(game.ShapeB))
	assert.Equal(t, StrategyMinimax, DefaultSelector(board, current, other))
}
