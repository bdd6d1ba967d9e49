package mcts

import "math"

// defaultUCT is the sentinel selection score assigned to a child with zero
// visits, forcing it to be picked ahead of any visited sibling.
const defaultUCT = math.MaxFloat64

// ScoreRecord holds the mutable statistics attached to one SearchNode.
type ScoreRecord struct {
	Visits               int
	RewardSum            int
	SelectionScore       float64
	ParentVisitsObserved int
}

// uctScore computes the UCT selection score for a child with the given
// visit count, reward sum and observed parent visits. An unvisited child
// always returns defaultUCT so the descent explores every child at least
// once before exploiting any of them.
func uctScore(visits, rewardSum, parentVisits int, k float64) float64 {
	if visits == 0 {
		return defaultUCT
	}
	exploitation := float64(rewardSum) / float64(visits)
	exploration := 2 * k * math.Sqrt(2*math.Log(float64(parentVisits))/float64(visits))
	return exploitation + exploration
}
