package boardx

// Square is a 0-based index into the board's linear square numbering.
// It is a plain value type; file/rank interpretation depends on the
// Geometry it is used with (see Geometry.FileOf/RankOf).
type Square int

// NoSquare marks the absence of a square (e.g. no king found).
const NoSquare Square = -1

// Index returns the linear index of the square.
func (s Square) Index() int {
	return int(s)
}

// File returns the file of the square under the given geometry.
func (s Square) File(g Geometry) int {
	return g.FileOf(s)
}

// Rank returns the rank of the square under the given geometry.
func (s Square) Rank(g Geometry) int {
	return g.RankOf(s)
}
