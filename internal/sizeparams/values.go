package sizeparams

// buildPieceValues reproduces original_source's PIECE_VALUES (midgame)
// and ENDGAME_PIECE_VALUES tables. Each table is indexed by piece type
// only; both colors get the same copy, so material balance negates
// exactly when the colors are swapped.
//
// Indexing: [color][pieceType], pieceType in King, Queen, Rook, Bishop,
// Knight, Pawn, Chancellor, ArchBishop, Giraffe order. Values are
// identical across board sizes in the source material, so size is
// currently unused but kept as a parameter in case a future size wants
// its own table.
func buildPieceValues(size int) (mid, end [2][9]int32) {
	midgame := [9]int32{
		0,    // King
		1025, // Queen
		477,  // Rook
		365,  // Bishop
		337,  // Knight
		82,   // Pawn
		800,  // Chancellor
		700,  // Archbishop
		300,  // Giraffe
	}
	endgame := [9]int32{
		0,   // King
		936, // Queen
		512, // Rook
		297, // Bishop
		281, // Knight
		94,  // Pawn
		750, // Chancellor
		650, // Archbishop
		280, // Giraffe
	}
	mid[White], mid[Black] = midgame, midgame
	end[White], end[Black] = endgame, endgame
	return mid, end
}

// White and Black are used here as plain array indices (0 and 1); the
// boardx.Color constants share these exact values by construction.
const (
	White = 0
	Black = 1
)
