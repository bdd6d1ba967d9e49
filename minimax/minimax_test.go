package minimax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Esadruhn/quantikai/game"
)

func TestForcedWinningMoveFound(t *testing.T) {
	pieces := map[game.Coordinate]game.Piece{
		{Row: 0, Col: 0}: {Shape: game.ShapeA, Side: game.Blue},
		{Row: 0, Col: 1}: {Shape: game.ShapeB, Side: game.Blue},
		{Row: 0, Col: 2}: {Shape: game.ShapeC, Side: game.Blue},
		{Row: 1, Col: 0}: {Shape: game.ShapeC, Side: game.Red},
		{Row: 2, Col: 1}: {Shape: game.ShapeD, Side: game.Red},
		{Row: 2, Col: 2}: {Shape: game.ShapeB, Side: game.Red},
	}
	board := game.FromSparse(pieces)
	blueHand := game.NewHand()
	for _, s := range []game.Shape{game.ShapeA, game.ShapeB, game.ShapeC} {
		require.NoError(t, blueHand.Remove(s))
	}
	redHand := game.NewHand()
	for _, s := range []game.Shape{game.ShapeC, game.ShapeD, game.ShapeB} {
		require.NoError(t, redHand.Remove(s))
	}
	hands := map[game.Side]*game.Hand{game.Blue: blueHand, game.Red: redHand}

	searcher := NewSearcher()
	m, ok, value := searcher.BestMove(board, hands, game.Blue)
	require.True(t, ok)
	assert.Equal(t, game.Move{Row: 0, Col: 3, Shape: game.ShapeD, Side: game.Blue}, m)
	assert.Equal(t, 1, value)
}

func TestNoLegalMoveIsALoss(t *testing.T) {
	// A side with an empty hand has no legal move regardless of board state.
	board := game.NewBoard()
	blueHand := game.NewHand()
	for _, s := range game.Shapes {
		require.NoError(t, blueHand.Remove(s))
		require.NoError(t, blueHand.Remove(s))
	}
	redHand := game.NewHand()
	hands := map[game.Side]*game.Hand{game.Blue: blueHand, game.Red: redHand}

	searcher := NewSearcher()
	_, ok, value := searcher.BestMove(board, hands, game.Blue)
	assert.False(t, ok)
	assert.Equal(t, -1, value)
}

func TestBetterPrefersValueOverHorizon(t *testing.T) {
	assert.True(t, better(1, 1, -1, 10))
	assert.False(t, better(-1, 10, 1, 1))
}

func TestBetterPrefersDeeperHorizonAtEqualValue(t *testing.T) {
	assert.True(t, better(-1, 5, -1, 2), "a longer-delayed loss is preferred over a quicker one")
	assert.True(t, better(1, 5, 1, 2), "a win reachable along a longer line is still preferred when both are wins")
}
