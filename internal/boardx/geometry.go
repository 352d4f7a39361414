// Package boardx implements the board-size-independent primitives the
// Shuuro evaluator and search are built on: squares, bitboards, colors,
// piece types, and moves. One board size's worth of state is described by
// a Geometry value rather than a distinct compiled type per size.
package boardx

// Geometry describes a square board of a given side length. Shuuro is
// played on 6x6, 8x8, and 12x12 boards; the same Geometry drives bitboard
// width and square arithmetic for all three.
type Geometry struct {
	Size int
}

// NewGeometry returns the Geometry for a board of the given side length.
func NewGeometry(size int) Geometry {
	return Geometry{Size: size}
}

// Squares returns the number of squares on the board.
func (g Geometry) Squares() int {
	return g.Size * g.Size
}

// FileOf returns the file (0-based) of a square on this geometry.
func (g Geometry) FileOf(sq Square) int {
	return int(sq) % g.Size
}

// RankOf returns the rank (0-based) of a square on this geometry.
func (g Geometry) RankOf(sq Square) int {
	return int(sq) / g.Size
}

// SquareAt builds a Square from a file and rank on this geometry.
func (g Geometry) SquareAt(file, rank int) Square {
	return Square(rank*g.Size + file)
}

// UpEdge returns the last-rank index of the board. The source engine
// calls this "the last rank for white, equivalently the file-maximum for
// the size" and only ever reads it in one branch (king_shelter_penalty's
// White case) — it is a plain board-size constant, not color-dependent.
func (g Geometry) UpEdge() int {
	return g.Size - 1
}

// InBounds reports whether file/rank lie within the board.
func (g Geometry) InBounds(file, rank int) bool {
	return file >= 0 && file < g.Size && rank >= 0 && rank < g.Size
}
