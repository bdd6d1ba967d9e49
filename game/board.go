package game

// Coordinate addresses a cell on the 4x4 board.
type Coordinate struct {
	Row int
	Col int
}

// Piece is a (Shape, Side) pair occupying a cell.
type Piece struct {
	Shape Shape
	Side  Side
}

const boardSize = 4

// cell is the comparable, pointer-free representation of one board square.
// Kept comparable (no pointers) so FrozenBoard, built from an array of
// cells, can be used directly as a map key — the same trick the teacher's
// Board [120]Piece plays to let positions index a transposition table.
type cell struct {
	Occupied bool
	Piece    Piece
}

// FrozenBoard is an immutable, order-independent snapshot of a Board. Two
// Boards produce equal FrozenBoards iff their occupied-cell maps are equal.
type FrozenBoard [boardSize * boardSize]cell

// OccupancyCount returns the number of occupied cells in the snapshot —
// the board's ply.
func (f FrozenBoard) OccupancyCount() int {
	n := 0
	for _, c := range f {
		if c.Occupied {
			n++
		}
	}
	return n
}

// At returns the piece at (row, col) and whether the cell is occupied.
func (f FrozenBoard) At(row, col int) (Piece, bool) {
	c := f[row*boardSize+col]
	return c.Piece, c.Occupied
}

// symmetry indexes the four reflections a board may be invariant under.
type symmetry int

const (
	symHorizontal symmetry = iota // row <-> 3-row
	symVertical                   // col <-> 3-col
	symMainDiag                   // (r,c) <-> (c,r)
	symAntiDiag                   // (r,c) <-> (3-c, 3-r)
	numSymmetries
)

func reflect(sym symmetry, r, c int) (int, int) {
	switch sym {
	case symHorizontal:
		return boardSize - 1 - r, c
	case symVertical:
		return r, boardSize - 1 - c
	case symMainDiag:
		return c, r
	case symAntiDiag:
		return boardSize - 1 - c, boardSize - 1 - r
	default:
		panic("game: unknown symmetry")
	}
}

// Board is the mutable 4x4 Quantik position.
type Board struct {
	cells      [boardSize][boardSize]cell
	invariant  [numSymmetries]bool // which reflections the board is still invariant under
}

// NewBoard returns an empty board, invariant under all four reflections.
func NewBoard() *Board {
	b := &Board{}
	for s := symmetry(0); s < numSymmetries; s++ {
		b.invariant[s] = true
	}
	return b
}

// FromSparse builds a board from a sparse map of occupied coordinates.
// Cells are set directly, without legality checks, and the symmetry flags
// are then recomputed from the final occupancy (see checkInvariant), so
// map iteration order cannot change the result.
func FromSparse(pieces map[Coordinate]Piece) *Board {
	b := NewBoard()
	for coord, p := range pieces {
		b.cells[coord.Row][coord.Col] = cell{Occupied: true, Piece: p}
	}
	b.recomputeInvariants()
	return b
}

// FromListOfLists builds a board from a 4x4 grid where a nil entry is an
// empty cell and a non-nil entry is the occupying piece. It round-trips
// losslessly with ToListOfLists and with the sparse map form.
func FromListOfLists(grid [boardSize][boardSize]*Piece) *Board {
	b := NewBoard()
	for r := 0; r < boardSize; r++ {
		for c := 0; c < boardSize; c++ {
			if grid[r][c] != nil {
				b.cells[r][c] = cell{Occupied: true, Piece: *grid[r][c]}
			}
		}
	}
	b.recomputeInvariants()
	return b
}

// ToListOfLists is the inverse of FromListOfLists.
func (b *Board) ToListOfLists() [boardSize][boardSize]*Piece {
	var grid [boardSize][boardSize]*Piece
	for r := 0; r < boardSize; r++ {
		for c := 0; c < boardSize; c++ {
			if b.cells[r][c].Occupied {
				p := b.cells[r][c].Piece
				grid[r][c] = &p
			}
		}
	}
	return grid
}

// ToSparse is the inverse of FromSparse.
func (b *Board) ToSparse() map[Coordinate]Piece {
	out := make(map[Coordinate]Piece)
	for r := 0; r < boardSize; r++ {
		for c := 0; c < boardSize; c++ {
			if b.cells[r][c].Occupied {
				out[Coordinate{Row: r, Col: c}] = b.cells[r][c].Piece
			}
		}
	}
	return out
}

func (b *Board) recomputeInvariants() {
	for s := symmetry(0); s < numSymmetries; s++ {
		b.invariant[s] = b.checkInvariant(s)
	}
}

func (b *Board) checkInvariant(s symmetry) bool {
	for r := 0; r < boardSize; r++ {
		for c := 0; c < boardSize; c++ {
			mr, mc := reflect(s, r, c)
			if b.cells[r][c] != b.cells[mr][mc] {
				return false
			}
		}
	}
	return true
}

// invariantUnder reports whether the board currently reads identically after
// applying the given reflection.
func (b *Board) invariantUnder(s symmetry) bool { return b.invariant[s] }

// checkLegal validates a move against the board's placement rules without
// mutating the board. It never consults a hand: legality here is purely a
// function of board occupancy, per the rules (see Hand for the separate
// "do you hold this shape" check).
func (b *Board) checkLegal(m Move) error {
	if m.Row < 0 || m.Row >= boardSize || m.Col < 0 || m.Col >= boardSize {
		return invalidMove("coordinate (%d,%d) out of range", m.Row, m.Col)
	}
	if b.cells[m.Row][m.Col].Occupied {
		return invalidMove("cell (%d,%d) is already occupied", m.Row, m.Col)
	}
	for c := 0; c < boardSize; c++ {
		if oc := b.cells[m.Row][c]; oc.Occupied && oc.Piece.Shape == m.Shape && oc.Piece.Side != m.Side {
			return invalidMove("opposing %s already present in row %d", m.Shape, m.Row)
		}
	}
	for r := 0; r < boardSize; r++ {
		if oc := b.cells[r][m.Col]; oc.Occupied && oc.Piece.Shape == m.Shape && oc.Piece.Side != m.Side {
			return invalidMove("opposing %s already present in column %d", m.Shape, m.Col)
		}
	}
	for _, rc := range sectionCellsArr(m.Row, m.Col) {
		if oc := b.cells[rc[0]][rc[1]]; oc.Occupied && oc.Piece.Shape == m.Shape && oc.Piece.Side != m.Side {
			return invalidMove("opposing %s already present in that section", m.Shape)
		}
	}
	return nil
}

// Legal reports whether m may be played on the current board.
func (b *Board) Legal(m Move) bool {
	return b.checkLegal(m) == nil
}

// Play places m's piece on the board. If strict, an illegal move returns
// InvalidMoveError and the board is left unchanged; non-strict callers
// (the search engines, which only ever construct moves the generator
// already proved legal) skip validation to stay out of the hot loop. Play
// returns whether this move completed a winning line.
func (b *Board) Play(m Move, strict bool) (bool, error) {
	if strict {
		if err := b.checkLegal(m); err != nil {
			return false, err
		}
	}
	b.cells[m.Row][m.Col] = cell{Occupied: true, Piece: Piece{Shape: m.Shape, Side: m.Side}}
	for s := symmetry(0); s < numSymmetries; s++ {
		if !b.invariant[s] {
			continue
		}
		mr, mc := reflect(s, m.Row, m.Col)
		if mr != m.Row || mc != m.Col {
			b.invariant[s] = false
		}
	}
	return b.IsWinning(m.Row, m.Col), nil
}

// IsWinning reports whether the piece at (row, col) completes its row,
// column, or section with four distinct shapes. The cell must be occupied.
func (b *Board) IsWinning(row, col int) bool {
	return b.lineWins(b.rowCells(row)) || b.lineWins(b.colCells(col)) || b.lineWins(sectionCellsArr(row, col))
}

func (b *Board) lineWins(coords [4][2]int) bool {
	seen := make(map[Shape]bool, 4)
	for _, rc := range coords {
		c := b.cells[rc[0]][rc[1]]
		if !c.Occupied || seen[c.Piece.Shape] {
			return false
		}
		seen[c.Piece.Shape] = true
	}
	return true
}

func (b *Board) rowCells(row int) [4][2]int {
	var out [4][2]int
	for c := 0; c < boardSize; c++ {
		out[c] = [2]int{row, c}
	}
	return out
}

func (b *Board) colCells(col int) [4][2]int {
	var out [4][2]int
	for r := 0; r < boardSize; r++ {
		out[r] = [2]int{r, col}
	}
	return out
}

func sectionCellsArr(row, col int) [4][2]int {
	r0, c0 := 2*(row/2), 2*(col/2)
	return [4][2]int{{r0, c0}, {r0, c0 + 1}, {r0 + 1, c0}, {r0 + 1, c0 + 1}}
}

// HasAnyLegalMove reports whether some (row, col, shape) placement is
// legal for side, regardless of whether side's hand actually holds that
// shape (hand availability is a separate, caller-side concern).
func (b *Board) HasAnyLegalMove(side Side) bool {
	for r := 0; r < boardSize; r++ {
		for c := 0; c < boardSize; c++ {
			if b.cells[r][c].Occupied {
				continue
			}
			for _, sh := range Shapes {
				if b.checkLegal(Move{Row: r, Col: c, Shape: sh, Side: side}) == nil {
					return true
				}
			}
		}
	}
	return false
}

// OccupancyCount returns the number of pieces currently on the board.
func (b *Board) OccupancyCount() int {
	n := 0
	for r := 0; r < boardSize; r++ {
		for c := 0; c < boardSize; c++ {
			if b.cells[r][c].Occupied {
				n++
			}
		}
	}
	return n
}

// Freeze returns an immutable, hashable snapshot of the board.
func (b *Board) Freeze() FrozenBoard {
	var f FrozenBoard
	for r := 0; r < boardSize; r++ {
		for c := 0; c < boardSize; c++ {
			f[r*boardSize+c] = b.cells[r][c]
		}
	}
	return f
}

// FromFrozen reconstructs a mutable Board from a snapshot.
func FromFrozen(f FrozenBoard) *Board {
	b := NewBoard()
	for r := 0; r < boardSize; r++ {
		for c := 0; c < boardSize; c++ {
			b.cells[r][c] = f[r*boardSize+c]
		}
	}
	b.recomputeInvariants()
	return b
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{cells: b.cells, invariant: b.invariant}
	return clone
}

// String renders the board as a small ASCII grid, e.g. for CLI output and
// test failure messages. It carries no meaning to the decision core.
func (b *Board) String() string {
	out := make([]byte, 0, boardSize*(boardSize*2+1))
	for r := 0; r < boardSize; r++ {
		for c := 0; c < boardSize; c++ {
			cel := b.cells[r][c]
			if !cel.Occupied {
				out = append(out, '.')
			} else {
				ch := cel.Piece.Shape.String()[0]
				if cel.Piece.Side == Red {
					ch = byte(int(ch) + 32) // lowercase marks Red
				}
				out = append(out, ch)
			}
			out = append(out, ' ')
		}
		out = append(out, '\n')
	}
	return string(out)
}
