package main

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/Esadruhn/quantikai/game"
)

// positionFile is the on-disk request format: a board plus both hands and
// whose turn it is. Cell entries are [row, col, shape, side] quadruples,
// the same compressed cell form the game tree serializer uses.
type positionFile struct {
	Board    [][4]string `json:"board"`
	BlueHand []string    `json:"blue_hand"`
	RedHand  []string    `json:"red_hand"`
	Side     string      `json:"side"`
}

type position struct {
	Board *game.Board
	Hands map[game.Side]*game.Hand
	Side  game.Side
}

func loadPosition(path string) (*position, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading position file %s", path)
	}
	var pf positionFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		return nil, errors.Wrapf(err, "decoding position file %s", path)
	}

	pieces := make(map[game.Coordinate]game.Piece, len(pf.Board))
	for _, cell := range pf.Board {
		row, err := strconv.Atoi(cell[0])
		if err != nil {
			return nil, errors.Errorf("invalid row %q in position file", cell[0])
		}
		col, err := strconv.Atoi(cell[1])
		if err != nil {
			return nil, errors.Errorf("invalid col %q in position file", cell[1])
		}
		shape, ok := game.ShapeFromString(cell[2])
		if !ok {
			return nil, errors.Errorf("invalid shape %q in position file", cell[2])
		}
		side, ok := game.SideFromString(cell[3])
		if !ok {
			return nil, errors.Errorf("invalid side %q in position file", cell[3])
		}
		pieces[game.Coordinate{Row: row, Col: col}] = game.Piece{Shape: shape, Side: side}
	}

	side, ok := game.SideFromString(pf.Side)
	if !ok {
		return nil, errors.Errorf("invalid side %q in position file", pf.Side)
	}

	blueHand, err := handFromShapeNames(pf.BlueHand)
	if err != nil {
		return nil, err
	}
	redHand, err := handFromShapeNames(pf.RedHand)
	if err != nil {
		return nil, err
	}

	return &position{
		Board: game.FromSparse(pieces),
		Hands: map[game.Side]*game.Hand{game.Blue: blueHand, game.Red: redHand},
		Side:  side,
	}, nil
}

// handFromShapeNames builds a Hand holding exactly the given shapes
// (duplicates allowed, e.g. ["A","A","B"]).
func handFromShapeNames(names []string) (*game.Hand, error) {
	h := game.EmptyHand()
	for _, name := range names {
		shape, ok := game.ShapeFromString(name)
		if !ok {
			return nil, errors.Errorf("invalid shape %q in hand", name)
		}
		h.Add(shape)
	}
	return h, nil
}
