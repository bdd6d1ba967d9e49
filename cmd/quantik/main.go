// Command quantik exposes the decision engine's three operations
// (best-move, move-stats, pv) plus a generate-tree batch command for
// pre-computing MCTS tree slices, over a saved JSON position file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/Esadruhn/quantikai/bot"
)

var (
	positionPath string
	treeDir      string
	iterations   int
	uctConstant  float64
	processes    int
	depthReward  bool
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	root := &cobra.Command{
		Use:   "quantik",
		Short: "Quantik decision engine",
	}
	root.PersistentFlags().StringVar(&positionPath, "position", "", "path to a JSON position file (required)")
	root.PersistentFlags().StringVar(&treeDir, "tree-dir", "", "directory of pre-computed MCTS tree slices")
	root.PersistentFlags().IntVar(&iterations, "iterations", 10000, "MCTS iterations per search")
	root.PersistentFlags().Float64Var(&uctConstant, "uct-constant", 1.5, "UCT exploration constant")
	root.PersistentFlags().IntVar(&processes, "processes", 1, "parallel MCTS workers")
	root.PersistentFlags().BoolVar(&depthReward, "depth-reward", true, "shape MCTS reward by descent depth")

	root.AddCommand(bestMoveCmd(), moveStatsCmd(), pvCmd(), generateTreeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func requireEngine() (*bot.Engine, error) {
	if positionPath == "" {
		return nil, fmt.Errorf("--position is required")
	}
	e := bot.NewEngine()
	e.TreeDir = treeDir
	e.MCTS.Iterations = iterations
	e.MCTS.UCTConstant = uctConstant
	e.MCTS.Processes = processes
	e.MCTS.UseDepthReward = depthReward
	return e, nil
}

func bestMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "best-move",
		Short: "Print the recommended move for the side to move",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := requireEngine()
			if err != nil {
				return err
			}
			pos, err := loadPosition(positionPath)
			if err != nil {
				return err
			}
			m, ok := e.BestMove(pos.Board, pos.Hands[pos.Side], pos.Hands[pos.Side.Opponent()], pos.Side)
			if !ok {
				fmt.Println("no legal move: side to move loses")
				return nil
			}
			fmt.Println(m)
			return nil
		},
	}
}

func pvCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "pv",
		Short: "Print the principal variation from the position",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := requireEngine()
			if err != nil {
				return err
			}
			pos, err := loadPosition(positionPath)
			if err != nil {
				return err
			}
			line := e.PrincipalVariation(pos.Board, pos.Hands[pos.Side], pos.Hands[pos.Side.Opponent()], pos.Side, depth)
			for _, m := range line {
				fmt.Println(m)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 10, "maximum number of plies to report")
	return cmd
}

func moveStatsCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "move-stats",
		Short: "Print visit/reward statistics for children at a PV depth",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := requireEngine()
			if err != nil {
				return err
			}
			pos, err := loadPosition(positionPath)
			if err != nil {
				return err
			}
			stats := e.MoveStats(pos.Board, pos.Hands[pos.Side], pos.Hands[pos.Side.Opponent()], pos.Side, depth)
			for _, s := range stats {
				fmt.Printf("%s visits=%d reward_sum=%d\n", s.Move, s.Visits, s.RewardSum)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 0, "PV depth at which to report children")
	return cmd
}
