package mcts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Esadruhn/quantikai/game"
)

func TestSaveLoadSliceRoundTrip(t *testing.T) {
	dir := t.TempDir()

	frozen := game.NewBoard().Freeze()
	root := RootNode(frozen)
	child := ChildNode(frozen, game.Move{Row: 0, Col: 0, Shape: game.ShapeA, Side: game.Blue})

	tree := NewGameTree()
	tree.Add(root)
	tree.Update(child, 1)
	tree.Update(child, 0)

	require.NoError(t, SaveSlice(tree, 0, game.Blue, dir))

	loaded, err := LoadSlice(dir, 0, game.Blue)
	require.NoError(t, err)

	r, ok := loaded.Get(child)
	require.True(t, ok)
	assert.Equal(t, 2, r.Visits)
	assert.Equal(t, 1, r.RewardSum)
}

func TestLoadSliceMissingFileIsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadSlice(dir, 3, game.Red)
	require.Error(t, err)
	var invalid *InvalidFileError
	assert.ErrorAs(t, err, &invalid)
}

func TestLoadSliceMalformedFileIsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, SliceFileName(2, game.Blue))
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := LoadSlice(dir, 2, game.Blue)
	require.Error(t, err)
	var invalid *InvalidFileError
	assert.ErrorAs(t, err, &invalid)
}

func TestSliceFileNameFormat(t *testing.T) {
	assert.Equal(t, "3_BLUE.json", SliceFileName(3, game.Blue))
	assert.Equal(t, "0_RED.json", SliceFileName(0, game.Red))
}
