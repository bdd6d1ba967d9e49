package game

// GenerateMoves enumerates legal moves for side given the shapes still
// available in hand. In exhaustive mode it returns every legal
// (row, col, shape) triple. In canonical mode it additionally prunes two
// sources of equivalence: shapes not yet on the board are mutually
// indistinguishable (only one representative is kept), and reflections
// the board currently has no information to distinguish are collapsed to
// a canonical half. Both modes return moves in no particular order; the
// result is a set, never containing duplicates.
func (b *Board) GenerateMoves(hand *Hand, side Side, canonical bool) []Move {
	shapes := hand.Shapes()
	if canonical {
		shapes = b.canonicalShapes(shapes)
	}

	moves := make([]Move, 0, boardSize*boardSize)
	for r := 0; r < boardSize; r++ {
		for c := 0; c < boardSize; c++ {
			if canonical && !b.inCanonicalHalf(r, c) {
				continue
			}
			if b.cells[r][c].Occupied {
				continue
			}
			for _, sh := range shapes {
				m := Move{Row: r, Col: c, Shape: sh, Side: side}
				if b.checkLegal(m) == nil {
					moves = append(moves, m)
				}
			}
		}
	}
	return moves
}

// canonicalShapes restricts candidate shapes to those already on the
// board, plus at most one representative of the shapes that are not —
// since unplaced shapes are mutually interchangeable with respect to the
// rules, trying more than one representative only inflates the search
// tree with equivalent positions.
func (b *Board) canonicalShapes(available []Shape) []Shape {
	onBoard := make(map[Shape]bool, 4)
	for r := 0; r < boardSize; r++ {
		for c := 0; c < boardSize; c++ {
			if cel := b.cells[r][c]; cel.Occupied {
				onBoard[cel.Piece.Shape] = true
			}
		}
	}

	result := make([]Shape, 0, len(available))
	tookRepresentative := false
	for _, sh := range available {
		if onBoard[sh] {
			result = append(result, sh)
			continue
		}
		if !tookRepresentative {
			result = append(result, sh)
			tookRepresentative = true
		}
	}
	return result
}

// inCanonicalHalf reports whether (row, col) lies in the canonical half
// of every reflection the board is currently invariant under. A cell
// excluded by any surviving symmetry's predicate is redundant: its
// candidate moves are mirror images of moves already kept.
func (b *Board) inCanonicalHalf(row, col int) bool {
	if b.invariantUnder(symHorizontal) && row > 1 {
		return false
	}
	if b.invariantUnder(symVertical) && col > 1 {
		return false
	}
	if b.invariantUnder(symMainDiag) && row > col {
		return false
	}
	if b.invariantUnder(symAntiDiag) && row+col > boardSize-1 {
		return false
	}
	return true
}
