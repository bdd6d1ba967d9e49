// Package mcts implements the transposition-keyed game tree and the
// MCTS/UCT search engine built on top of it.
package mcts

import "github.com/Esadruhn/quantikai/game"

// SearchNode is the tree's key: a frozen board together with the move that
// produced it, or no move at all for a bare root node. Both fields are
// comparable, so SearchNode is comparable too and can key a Go map
// directly — no parent pointers or synthetic IDs required.
type SearchNode struct {
	Board   game.FrozenBoard
	Move    game.Move
	HasMove bool
}

// RootNode returns the node representing board with no move played into it.
func RootNode(board game.FrozenBoard) SearchNode {
	return SearchNode{Board: board}
}

// ChildNode returns the node reached by playing m on board.
func ChildNode(board game.FrozenBoard, m game.Move) SearchNode {
	return SearchNode{Board: board, Move: m, HasMove: true}
}
