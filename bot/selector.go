package bot

import "github.com/Esadruhn/quantikai/game"

// maxPiecesForMCTS is the pieces-on-board threshold at or below which MCTS runs
// instead of minimax: broad exploration pays off early, when the tree is
// too wide for exact search to exhaust. Heuristic and tunable; see
// Selector for how to replace it.
const maxPiecesForMCTS = 4

// Selector picks which engine answers a request, given the board and
// both hands.
type Selector func(board *game.Board, current, other *game.Hand) Strategy

// Strategy names which engine a Selector chose.
type Strategy int

const (
	StrategyMCTS Strategy = iota
	StrategyMinimax
)

func (s Strategy) String() string {
	if s == StrategyMCTS {
		return "mcts"
	}
	return "minimax"
}

// DefaultSelector implements the spec's maturity rule: MCTS while four or
// fewer pieces are on the board, minimax once the tree has narrowed
// enough to exhaust outright. It is a plain function value so callers can
// swap in a different Selector entirely — nothing else in the engine
// depends on this particular threshold.
func DefaultSelector(board *game.Board, current, other *game.Hand) Strategy {
	piecesOnBoard := 16 - current.Len() - other.Len()
	if piecesOnBoard <= maxPiecesForMCTS {
		return StrategyMCTS
	}
	return StrategyMinimax
}
