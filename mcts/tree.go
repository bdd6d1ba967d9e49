package mcts

import (
	"sort"

	"github.com/Esadruhn/quantikai/game"
)

// GameTree is a directed graph from SearchNode to ScoreRecord. Transposed
// positions can reach the same node through different parent paths, so it
// is a graph rather than a tree; nodes are never removed once added.
type GameTree struct {
	nodes map[SearchNode]*ScoreRecord
}

// NewGameTree returns an empty tree.
func NewGameTree() *GameTree {
	return &GameTree{nodes: make(map[SearchNode]*ScoreRecord)}
}

// Add idempotently inserts n with a zeroed score record if absent, and
// returns the (possibly pre-existing) record.
func (t *GameTree) Add(n SearchNode) *ScoreRecord {
	if r, ok := t.nodes[n]; ok {
		return r
	}
	r := &ScoreRecord{}
	t.nodes[n] = r
	return r
}

// Get returns the record for n and whether it exists.
func (t *GameTree) Get(n SearchNode) (*ScoreRecord, bool) {
	r, ok := t.nodes[n]
	return r, ok
}

// Update records one visit of n with the given reward.
func (t *GameTree) Update(n SearchNode, reward int) {
	r := t.Add(n)
	r.Visits++
	r.RewardSum += reward
}

// SelectionScore computes and caches the UCT score of n given the parent
// visit count looked up by the caller, and records that count as n's
// ParentVisitsObserved (overwriting the previous value, not incrementing
// it).
func (t *GameTree) SelectionScore(n SearchNode, parentVisits int, k float64) float64 {
	r := t.Add(n)
	r.ParentVisitsObserved = parentVisits
	r.SelectionScore = uctScore(r.Visits, r.RewardSum, parentVisits, k)
	return r.SelectionScore
}

// children returns every node in the tree whose Board equals board.
func (t *GameTree) children(board game.FrozenBoard) []SearchNode {
	var out []SearchNode
	for n := range t.nodes {
		if n.HasMove && n.Board == board {
			out = append(out, n)
		}
	}
	return out
}

// BestMove returns, among children of board with visits > 0, the move
// maximizing (visits, reward_sum) lexicographically. ok is false if no
// child has been visited.
func (t *GameTree) BestMove(board game.FrozenBoard) (m game.Move, ok bool) {
	var best SearchNode
	var bestRecord *ScoreRecord
	for _, n := range t.children(board) {
		r := t.nodes[n]
		if r.Visits == 0 {
			continue
		}
		if bestRecord == nil || better(r, bestRecord) {
			best, bestRecord = n, r
		}
	}
	if bestRecord == nil {
		return game.Move{}, false
	}
	return best.Move, true
}

func better(a, b *ScoreRecord) bool {
	if a.Visits != b.Visits {
		return a.Visits > b.Visits
	}
	return a.RewardSum > b.RewardSum
}

// PrincipalVariation iteratively plays BestMove from board, re-entering
// the tree at the resulting position, up to maxDepth steps or until the
// tree has nothing more to say.
func (t *GameTree) PrincipalVariation(board *game.Board, maxDepth int) []game.Move {
	var line []game.Move
	cur := board.Clone()
	for i := 0; i < maxDepth; i++ {
		m, ok := t.BestMove(cur.Freeze())
		if !ok {
			break
		}
		line = append(line, m)
		if _, err := cur.Play(m, false); err != nil {
			break
		}
	}
	return line
}

// MoveStat is one child's statistics as reported by MoveStats.
type MoveStat struct {
	Move      game.Move
	Visits    int
	RewardSum int
}

// MoveStats returns the children of the board reached by following the
// principal variation of the given depth from board, sorted by visits
// descending then reward sum descending.
func (t *GameTree) MoveStats(board *game.Board, depth int) []MoveStat {
	pv := t.PrincipalVariation(board, depth)
	cur := board.Clone()
	for _, m := range pv {
		if _, err := cur.Play(m, false); err != nil {
			break
		}
	}
	frozen := cur.Freeze()

	var stats []MoveStat
	for _, n := range t.children(frozen) {
		r := t.nodes[n]
		stats = append(stats, MoveStat{Move: n.Move, Visits: r.Visits, RewardSum: r.RewardSum})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Visits != stats[j].Visits {
			return stats[i].Visits > stats[j].Visits
		}
		return stats[i].RewardSum > stats[j].RewardSum
	})
	return stats
}

// Slice returns a sub-tree containing only nodes whose frozen board has
// exactly ply occupied cells.
func (t *GameTree) Slice(ply int) *GameTree {
	out := NewGameTree()
	for n, r := range t.nodes {
		if n.Board.OccupancyCount() == ply {
			cp := *r
			out.nodes[n] = &cp
		}
	}
	return out
}

// Merge sums visits, reward_sum and parent_visits_observed across matching
// nodes from every tree. The result is for reporting and move selection
// only: selection_score in a merged tree is not meaningful to resume a
// search from, since UCT is not linear in its inputs.
func Merge(trees []*GameTree) *GameTree {
	out := NewGameTree()
	for _, t := range trees {
		if t == nil {
			continue
		}
		for n, r := range t.nodes {
			dst := out.Add(n)
			dst.Visits += r.Visits
			dst.RewardSum += r.RewardSum
			dst.ParentVisitsObserved += r.ParentVisitsObserved
		}
	}
	return out
}
