package mcts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Esadruhn/quantikai/game"
)

func TestBestMoveIgnoresUnvisitedChildren(t *testing.T) {
	board := game.NewBoard()
	frozen := board.Freeze()
	visited := ChildNode(frozen, game.Move{Row: 0, Col: 0, Shape: game.ShapeA, Side: game.Blue})
	unvisited := ChildNode(frozen, game.Move{Row: 0, Col: 1, Shape: game.ShapeA, Side: game.Blue})

	tree := NewGameTree()
	tree.Update(visited, 1)
	tree.Add(unvisited)

	m, ok := tree.BestMove(frozen)
	require.True(t, ok)
	assert.Equal(t, visited.Move, m)
}

func TestBestMoveNoVisitedChildReturnsNotOK(t *testing.T) {
	tree := NewGameTree()
	_, ok := tree.BestMove(game.NewBoard().Freeze())
	assert.False(t, ok)
}

func TestBestMovePrefersHigherVisitsThenRewards(t *testing.T) {
	frozen := game.NewBoard().Freeze()
	low := ChildNode(frozen, game.Move{Row: 0, Col: 0, Shape: game.ShapeA, Side: game.Blue})
	high := ChildNode(frozen, game.Move{Row: 0, Col: 1, Shape: game.ShapeA, Side: game.Blue})

	tree := NewGameTree()
	tree.Update(low, 10)
	tree.Update(high, 1)
	tree.Update(high, 1)

	m, ok := tree.BestMove(frozen)
	require.True(t, ok)
	assert.Equal(t, high.Move, m, "higher visit count wins even with lower reward sum")
}

func TestSliceRestrictsByPly(t *testing.T) {
	board := game.NewBoard()
	_, err := board.Play(game.Move{Row: 0, Col: 0, Shape: game.ShapeA, Side: game.Blue}, true)
	require.NoError(t, err)
	rootFrozen := board.Freeze()

	child := ChildNode(rootFrozen, game.Move{Row: 0, Col: 1, Shape: game.ShapeB, Side: game.Red})

	tree := NewGameTree()
	tree.Add(RootNode(rootFrozen))
	tree.Update(child, 1)

	deeper := game.NewBoard()
	_, _ = deeper.Play(game.Move{Row: 0, Col: 0, Shape: game.ShapeA, Side: game.Blue}, true)
	_, _ = deeper.Play(game.Move{Row: 0, Col: 1, Shape: game.ShapeB, Side: game.Red}, true)
	grandchild := ChildNode(deeper.Freeze(), game.Move{Row: 1, Col: 1, Shape: game.ShapeC, Side: game.Blue})
	tree.Update(grandchild, 1)

	slice := tree.Slice(1)
	_, ok := slice.Get(child)
	assert.True(t, ok)
	_, ok = slice.Get(grandchild)
	assert.False(t, ok)
}
