package position

import "github.com/shuuro/shuuro-engine/internal/boardx"

type offset struct{ df, dr int }

var kingOffsets = []offset{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

var knightOffsets = []offset{
	{1, 2}, {2, 1}, {-1, 2}, {-2, 1},
	{1, -2}, {2, -1}, {-1, -2}, {-2, -1},
}

// giraffeOffsets is Shuuro's giraffe: a (1,4)/(4,1) leaper.
var giraffeOffsets = []offset{
	{1, 4}, {4, 1}, {-1, 4}, {-4, 1},
	{1, -4}, {4, -1}, {-1, -4}, {-4, -1},
}

var rookDirs = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var queenDirs = append(append([]offset{}, rookDirs...), bishopDirs...)

func leapAttacks(g boardx.Geometry, sq boardx.Square, offsets []offset) boardx.BitBoard {
	var bb boardx.BitBoard
	file := g.FileOf(sq)
	rank := g.RankOf(sq)
	for _, o := range offsets {
		nf, nr := file+o.df, rank+o.dr
		if g.InBounds(nf, nr) {
			bb.Set(g.SquareAt(nf, nr))
		}
	}
	return bb
}

// slideAttacks rays out from sq along dirs, stopping at the board edge,
// at a plinth (excluded from the result — plinths block sliders but are
// never a landing square for them), or at the first occupied square
// (included, since it may be a capture; callers mask out own-color
// occupancy separately).
func slideAttacks(g boardx.Geometry, sq boardx.Square, dirs []offset, blockers, plinth boardx.BitBoard) boardx.BitBoard {
	var bb boardx.BitBoard
	file := g.FileOf(sq)
	rank := g.RankOf(sq)
	for _, d := range dirs {
		nf, nr := file+d.df, rank+d.dr
		for g.InBounds(nf, nr) {
			dest := g.SquareAt(nf, nr)
			if plinth.IsSet(dest) {
				break
			}
			bb.Set(dest)
			if blockers.IsSet(dest) {
				break
			}
			nf += d.df
			nr += d.dr
		}
	}
	return bb
}

// GetNonSlidingAttacks returns the attack set of a leaper (King, Knight,
// Giraffe, or the knight component of Chancellor/ArchBishop) from sq.
// Leapers may land on plinths, so the plinth board does not filter this
// set; it is still bounded by the board edge.
func (p Position) GetNonSlidingAttacks(pt boardx.PieceType, sq boardx.Square) boardx.BitBoard {
	switch pt {
	case boardx.King:
		return leapAttacks(p.Geometry, sq, kingOffsets)
	case boardx.Knight, boardx.Chancellor, boardx.ArchBishop:
		return leapAttacks(p.Geometry, sq, knightOffsets)
	case boardx.Giraffe:
		return leapAttacks(p.Geometry, sq, giraffeOffsets)
	default:
		return boardx.Empty()
	}
}

func (p Position) slidingAttacksFor(pt boardx.PieceType, sq boardx.Square) boardx.BitBoard {
	blockers := p.Occupied()
	switch pt {
	case boardx.Rook:
		return slideAttacks(p.Geometry, sq, rookDirs, blockers, p.plinth)
	case boardx.Bishop:
		return slideAttacks(p.Geometry, sq, bishopDirs, blockers, p.plinth)
	case boardx.Queen:
		return slideAttacks(p.Geometry, sq, queenDirs, blockers, p.plinth)
	case boardx.Chancellor:
		return slideAttacks(p.Geometry, sq, rookDirs, blockers, p.plinth).Or(p.GetNonSlidingAttacks(boardx.Chancellor, sq))
	case boardx.ArchBishop:
		return slideAttacks(p.Geometry, sq, bishopDirs, blockers, p.plinth).Or(p.GetNonSlidingAttacks(boardx.ArchBishop, sq))
	default:
		return boardx.Empty()
	}
}

// pawnAttacks returns the diagonal capture squares (not the forward
// push) for a pawn of the given color on sq.
func (p Position) pawnAttacks(sq boardx.Square, color boardx.Color) boardx.BitBoard {
	g := p.Geometry
	file := g.FileOf(sq)
	rank := g.RankOf(sq)
	dr := 1
	if color == boardx.Black {
		dr = -1
	}
	var bb boardx.BitBoard
	for _, df := range [2]int{-1, 1} {
		nf, nr := file+df, rank+dr
		if g.InBounds(nf, nr) {
			bb.Set(g.SquareAt(nf, nr))
		}
	}
	return bb
}

// AttacksFrom returns every square a piece of type pt/color attacks
// from sq, ignoring whose turn it is and whether the destination holds
// a friendly piece (callers filter that separately).
func (p Position) AttacksFrom(pt boardx.PieceType, color boardx.Color, sq boardx.Square) boardx.BitBoard {
	switch pt {
	case boardx.Pawn:
		return p.pawnAttacks(sq, color)
	case boardx.King, boardx.Knight, boardx.Giraffe:
		return p.GetNonSlidingAttacks(pt, sq)
	default:
		return p.slidingAttacksFor(pt, sq)
	}
}

// Between returns the squares strictly between a and b if they share a
// rank, file, or diagonal, excluding both endpoints. It returns an empty
// board for square pairs with no straight-line relationship.
func (p Position) Between(a, b boardx.Square) boardx.BitBoard {
	g := p.Geometry
	af, ar := g.FileOf(a), g.RankOf(a)
	bf, br := g.FileOf(b), g.RankOf(b)
	df, dr := sign(bf-af), sign(br-ar)

	if df == 0 && dr == 0 {
		return boardx.Empty()
	}
	if df != 0 && dr != 0 && abs(bf-af) != abs(br-ar) {
		return boardx.Empty()
	}
	if df != 0 && dr == 0 || df == 0 && dr != 0 || abs(bf-af) == abs(br-ar) {
		var bb boardx.BitBoard
		f, r := af+df, ar+dr
		for f != bf || r != br {
			bb.Set(g.SquareAt(f, r))
			f += df
			r += dr
		}
		return bb
	}
	return boardx.Empty()
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
