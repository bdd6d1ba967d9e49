package mcts

import (
	"math/rand"
	"time"

	"github.com/Esadruhn/quantikai/game"
)

// rootDepthReward is the starting depth-reward budget at the root of a
// descent, decremented by one per ply. Its minimum achievable value on
// the 4x4 board is 1.
const rootDepthReward = 16

// Randomness is the per-worker source of shuffling used during descent.
// Injected so parallel workers can each carry their own, freshly seeded
// generator instead of contending on a shared one.
type Randomness interface {
	Shuffle(n int, swap func(i, j int))
}

type randSource struct{ r *rand.Rand }

func (s randSource) Shuffle(n int, swap func(i, j int)) { s.r.Shuffle(n, swap) }

// newDefaultRandomness seeds from the wall clock; every parallel worker gets
// its own instance, never this shared one, to keep trials independent.
func newDefaultRandomness() Randomness {
	return randSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Config configures one MCTS engine instance. Zero-value fields are
// replaced with the documented defaults by NewEngine.
type Config struct {
	Iterations       int
	UseDepthReward   bool
	UCTConstant      float64
	Processes        int
	AllPossibleMoves bool
	Randomness       Randomness
}

// Engine runs MCTS/UCT search over a Quantik position.
type Engine struct {
	cfg Config
}

// NewEngine builds an Engine, defaulting unset Config fields: 10,000
// iterations, UCT constant 1.5, a single process, a wall-clock-seeded
// Randomness. UseDepthReward and AllPossibleMoves are used as given, so a
// zero Config searches without depth reward.
func NewEngine(cfg Config) *Engine {
	if cfg.Iterations <= 0 {
		cfg.Iterations = 10000
	}
	if cfg.UCTConstant <= 0 {
		cfg.UCTConstant = 1.5
	}
	if cfg.Processes <= 0 {
		cfg.Processes = 1
	}
	if cfg.Randomness == nil {
		cfg.Randomness = newDefaultRandomness()
	}
	return &Engine{cfg: cfg}
}

// run performs one full MCTS iteration (descend, then backpropagate)
// against tree, starting from (board, hand pair, side to move).
func run(tree *GameTree, board *game.Board, hands map[game.Side]*game.Hand, side game.Side, cfg Config) {
	cur := board.Clone()
	h := map[game.Side]*game.Hand{
		game.Blue: hands[game.Blue].Clone(),
		game.Red:  hands[game.Red].Clone(),
	}
	toMove := side
	depthReward := rootDepthReward

	root := RootNode(board.Freeze())
	parent := root
	path := []SearchNode{root}
	var loser game.Side

	for {
		frozen := cur.Freeze()
		moves := cur.GenerateMoves(h[toMove], toMove, !cfg.AllPossibleMoves)
		if len(moves) == 0 {
			loser = toMove
			break
		}

		cfg.Randomness.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })

		parentVisits := tree.Add(parent).Visits

		var best SearchNode
		bestScore := -1.0
		for _, m := range moves {
			child := ChildNode(frozen, m)
			score := tree.SelectionScore(child, parentVisits, cfg.UCTConstant)
			if score > bestScore {
				best, bestScore = child, score
			}
		}

		if err := h[toMove].Remove(best.Move.Shape); err != nil {
			panic(&TreeInvariantError{cause: err})
		}
		won, err := cur.Play(best.Move, false)
		if err != nil {
			panic(&TreeInvariantError{cause: err})
		}
		path = append(path, best)
		parent = best
		if depthReward > 1 {
			depthReward--
		}

		if won {
			loser = toMove.Opponent()
			break
		}
		toMove = toMove.Opponent()
	}

	backpropagate(tree, path, loser, depthReward, cfg.UseDepthReward)
}

// backpropagate walks path from leaf to root, alternating reward between
// the winner's (1 or depth_reward) and the loser's 0. The leaf is the move
// that ended the descent: either it completed a line or it left loser with
// no legal move, so it was played by the winner and is the first node
// updated, always receiving the winner reward.
func backpropagate(tree *GameTree, path []SearchNode, loser game.Side, depthReward int, useDepthReward bool) {
	winnerReward := 1
	if useDepthReward {
		winnerReward = depthReward
	}

	leafIsLoser := false
	for i := len(path) - 1; i >= 0; i-- {
		reward := winnerReward
		if leafIsLoser {
			reward = 0
		}
		tree.Update(path[i], reward)
		leafIsLoser = !leafIsLoser
	}
}

// TreeInvariantError marks an internal assertion failure: the hand or the
// board rejected a move the engine's own move generator had just produced.
// Never expected in a correct build; a bug if it fires.
type TreeInvariantError struct{ cause error }

func (e *TreeInvariantError) Error() string { return "mcts: tree invariant violated: " + e.cause.Error() }
func (e *TreeInvariantError) Unwrap() error { return e.cause }

// Search runs cfg.Iterations MCTS iterations (fanned out across
// cfg.Processes workers, see RunParallel) from the given position and
// returns the resulting tree.
func (e *Engine) Search(board *game.Board, currentHand, otherHand *game.Hand, side game.Side) *GameTree {
	if e.cfg.Processes > 1 {
		return RunParallel(e.cfg, board, currentHand, otherHand, side)
	}
	tree := NewGameTree()
	hands := map[game.Side]*game.Hand{side: currentHand, side.Opponent(): otherHand}
	for i := 0; i < e.cfg.Iterations; i++ {
		run(tree, board, hands, side, e.cfg)
	}
	return tree
}

// BestMove runs Search and returns the tree's root decision. ok is false
// if the side to move has no legal move at all.
func (e *Engine) BestMove(board *game.Board, currentHand, otherHand *game.Hand, side game.Side) (game.Move, bool) {
	tree := e.Search(board, currentHand, otherHand, side)
	return tree.BestMove(board.Freeze())
}
