package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Esadruhn/quantikai/game"
	"github.com/Esadruhn/quantikai/mcts"
)

func TestBestMoveDispatchesToMinimaxPastThreshold(t *testing.T) {
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

	engine := NewEngine()
	m, ok := engine.BestMove(board, blueHand, redHand, game.Blue)
	require.True(t, ok)
	assert.Equal(t, game.Move{Row: 0, Col: 3, Shape: game.ShapeD, Side: game.Blue}, m)
}

func TestBestMoveFallsBackToLiveSearchOnMissingTreeFile(t *testing.T) {
	engine := NewEngine()
	engine.TreeDir = t.TempDir() // empty dir: every lookup misses
	engine.MCTS.Iterations = 200

	board := game.NewBoard()
	current := game.NewHand()
	other := game.NewHand()
	m, ok := engine.BestMove(board, current, other, game.Blue)
	require.True(t, ok)
	assert.True(t, board.Legal(m))
}

func TestBestMoveUsesPrecomputedTreeWhenPresent(t *testing.T) {
	dir := t.TempDir()
	frozen := game.NewBoard().Freeze()
	winningMove := game.Move{Row: 0, Col: 0, Shape: game.ShapeA, Side: game.Blue}

	tree := mcts.NewGameTree()
	tree.Update(mcts.ChildNode(frozen, winningMove), 1)
	require.NoError(t, mcts.SaveSlice(tree, 0, game.Blue, dir))

	engine := NewEngine()
	engine.TreeDir = dir

	board := game.NewBoard()
	current := game.NewHand()
	other := game.NewHand()
	m, ok := engine.BestMove(board, current, other, game.Blue)
	require.True(t, ok)
	assert.Equal(t, winningMove, m)
}
