package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Esadruhn/quantikai/game"
	"github.com/Esadruhn/quantikai/mcts"
)

// generateTreeCmd runs a full (non-canonical) MCTS pass from the given
// position and writes out the ply-sliced, per-side JSON files the engine
// can later load as a pre-computed tree, mirroring the batch tree-building
// step of the Monte Carlo front end.
func generateTreeCmd() *cobra.Command {
	var outDir string
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "generate-tree",
		Short: "Pre-compute an MCTS game tree and save it as ply-sliced JSON files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				return fmt.Errorf("--out is required")
			}
			pos, err := loadPosition(positionPath)
			if err != nil {
				return err
			}

			engine := mcts.NewEngine(mcts.Config{
				Iterations:       iterations,
				UseDepthReward:   depthReward,
				UCTConstant:      uctConstant,
				Processes:        processes,
				AllPossibleMoves: true,
			})
			tree := engine.Search(pos.Board, pos.Hands[pos.Side], pos.Hands[pos.Side.Opponent()], pos.Side)

			rootPly := pos.Board.OccupancyCount()
			for ply := rootPly; ply <= rootPly+maxDepth; ply++ {
				for _, side := range []game.Side{game.Blue, game.Red} {
					slice := tree.Slice(ply)
					if err := mcts.SaveSlice(slice, ply, side, outDir); err != nil {
						return err
					}
				}
			}
			fmt.Printf("wrote tree slices for ply %d..%d to %s\n", rootPly, rootPly+maxDepth, outDir)
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "directory to write the tree slice files to (required)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 3, "number of plies beyond the root position to save")
	return cmd
}
