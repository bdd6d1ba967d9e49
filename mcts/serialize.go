package mcts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/Esadruhn/quantikai/game"
)

// InvalidFileError is raised by LoadSlice when a pre-computed tree file is
// missing or malformed. Callers at the MCTS front door catch it
// specifically and fall back to live search rather than failing the
// request.
type InvalidFileError struct {
	cause error
}

func (e *InvalidFileError) Error() string { return e.cause.Error() }
func (e *InvalidFileError) Unwrap() error { return e.cause }

func invalidFile(format string, args ...interface{}) error {
	return &InvalidFileError{cause: errors.Errorf(format, args...)}
}

// cellRecord is one occupied board cell in compressed wire form:
// (row, col, shape-name, side-name).
type cellRecord [4]string

// moveRecord is a compressed move, or nil for a bare root node.
type moveRecord [4]string

// nodeRecord is [board_compressed, move_compressed_or_null] on the wire —
// a 2-element JSON array, not an object — so it marshals by hand.
type nodeRecord struct {
	Board []cellRecord
	Move  *moveRecord
}

func (n nodeRecord) MarshalJSON() ([]byte, error) {
	board := n.Board
	if board == nil {
		board = []cellRecord{}
	}
	return json.Marshal([2]interface{}{board, n.Move})
}

func (n *nodeRecord) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &n.Board); err != nil {
		return err
	}
	if string(pair[1]) == "null" {
		n.Move = nil
		return nil
	}
	var mv moveRecord
	if err := json.Unmarshal(pair[1], &mv); err != nil {
		return err
	}
	n.Move = &mv
	return nil
}

type montecarloRecord [2]int

type treeRecord struct {
	Node       nodeRecord       `json:"node"`
	Montecarlo montecarloRecord `json:"montecarlo"`
}

// SliceFileName returns the canonical file name for a serialized slice at
// the given ply and side to move: "{ply}_{side_name}.json".
func SliceFileName(ply int, side game.Side) string {
	return fmt.Sprintf("%d_%s.json", ply, side.String())
}

// SaveSlice writes the nodes of t whose move (if any) belongs to side to
// dir, under the canonical file name for ply.
func SaveSlice(t *GameTree, ply int, side game.Side, dir string) error {
	records := make([]treeRecord, 0, len(t.nodes))
	for n, r := range t.nodes {
		if n.HasMove && n.Move.Side != side {
			continue
		}
		rec := encodeNode(n)
		rec.Montecarlo = montecarloRecord{r.Visits, r.RewardSum}
		records = append(records, rec)
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return errors.Wrap(err, "mcts: marshal tree slice")
	}
	path := filepath.Join(dir, SliceFileName(ply, side))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errors.Wrapf(err, "mcts: write %s", path)
	}
	return nil
}

// LoadSlice reads a previously serialized tree slice for (ply, side) from
// dir. A missing or malformed file is reported as InvalidFileError.
func LoadSlice(dir string, ply int, side game.Side) (*GameTree, error) {
	path := filepath.Join(dir, SliceFileName(ply, side))
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, invalidFile("mcts: reading %s: %v", path, err)
	}

	var records []treeRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, invalidFile("mcts: decoding %s: %v", path, err)
	}

	t := NewGameTree()
	for _, rec := range records {
		n, err := decodeNode(rec.Node)
		if err != nil {
			return nil, invalidFile("mcts: decoding node in %s: %v", path, err)
		}
		r := t.Add(n)
		if len(rec.Montecarlo) != 2 {
			return nil, invalidFile("mcts: malformed montecarlo record in %s", path)
		}
		r.Visits = rec.Montecarlo[0]
		r.RewardSum = rec.Montecarlo[1]
	}
	return t, nil
}

func encodeNode(n SearchNode) treeRecord {
	var cells []cellRecord
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			p, ok := n.Board.At(r, c)
			if !ok {
				continue
			}
			cells = append(cells, cellRecord{fmt.Sprint(r), fmt.Sprint(c), p.Shape.String(), p.Side.String()})
		}
	}
	rec := treeRecord{Node: nodeRecord{Board: cells}}
	if n.HasMove {
		mv := moveRecord{fmt.Sprint(n.Move.Row), fmt.Sprint(n.Move.Col), n.Move.Shape.String(), n.Move.Side.String()}
		rec.Node.Move = &mv
	}
	return rec
}

func decodeNode(nr nodeRecord) (SearchNode, error) {
	pieces := make(map[game.Coordinate]game.Piece, len(nr.Board))
	for _, cr := range nr.Board {
		coord, piece, err := decodeCell(cr)
		if err != nil {
			return SearchNode{}, err
		}
		pieces[coord] = piece
	}
	frozen := game.FromSparse(pieces).Freeze()

	n := SearchNode{Board: frozen}
	if nr.Move != nil {
		coord, piece, err := decodeCell(cellRecord(*nr.Move))
		if err != nil {
			return SearchNode{}, err
		}
		n.Move = game.Move{Row: coord.Row, Col: coord.Col, Shape: piece.Shape, Side: piece.Side}
		n.HasMove = true
	}
	return n, nil
}

func decodeCell(cr cellRecord) (game.Coordinate, game.Piece, error) {
	var row, col int
	if _, err := fmt.Sscanf(cr[0], "%d", &row); err != nil {
		return game.Coordinate{}, game.Piece{}, errors.Errorf("invalid row %q", cr[0])
	}
	if _, err := fmt.Sscanf(cr[1], "%d", &col); err != nil {
		return game.Coordinate{}, game.Piece{}, errors.Errorf("invalid col %q", cr[1])
	}
	shape, ok := game.ShapeFromString(cr[2])
	if !ok {
		return game.Coordinate{}, game.Piece{}, errors.Errorf("invalid shape %q", cr[2])
	}
	side, ok := game.SideFromString(cr[3])
	if !ok {
		return game.Coordinate{}, game.Piece{}, errors.Errorf("invalid side %q", cr[3])
	}
	return game.Coordinate{Row: row, Col: col}, game.Piece{Shape: shape, Side: side}, nil
}
