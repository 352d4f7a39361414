// Package position implements the deliberately modest rules oracle the
// search and evaluator are built against: given a board, tell me whose
// piece sits where, whether a color is in check, and what moves a color
// has. It is a square-scanning implementation, not a magic-bitboard
// move generator — movement-phase legality only, no placement phase, no
// promotions, no castling, no en passant (spec.md §4).
package position

import (
	"github.com/shuuro/shuuro-engine/internal/boardx"
	"github.com/shuuro/shuuro-engine/internal/sizeparams"
)

// Position is a snapshot of one board: which squares hold plinths,
// which hold which color/piece, and whose turn it is. It is a plain
// value type — copying it copies the whole board — which lets the
// search package explore variations by copying rather than threading an
// undo stack.
type Position struct {
	Geometry boardx.Geometry

	pieces [2][boardx.NumPieceTypes]boardx.BitBoard
	plinth boardx.BitBoard
	occ    [2]boardx.BitBoard

	SideToMove boardx.Color
}

// New returns an empty board of the given geometry with White to move.
func New(g boardx.Geometry) Position {
	return Position{Geometry: g, SideToMove: boardx.White}
}

// PlayerBB returns every square occupied by color's pieces.
func (p Position) PlayerBB(color boardx.Color) boardx.BitBoard {
	return p.occ[color.Index()]
}

// TypeBB returns every square occupied by color's pieces of type pt.
func (p Position) TypeBB(color boardx.Color, pt boardx.PieceType) boardx.BitBoard {
	if pt == boardx.Plinth {
		return p.plinth
	}
	return p.pieces[color.Index()][pt]
}

// PlinthBB returns every square occupied by terrain.
func (p Position) PlinthBB() boardx.BitBoard {
	return p.plinth
}

// Occupied returns every occupied square, piece or plinth.
func (p Position) Occupied() boardx.BitBoard {
	return p.occ[boardx.White.Index()].Or(p.occ[boardx.Black.Index()]).Or(p.plinth)
}

// PieceAt returns the piece (or boardx.NoPiece) sitting on sq; whether
// sq carries a plinth is reported separately by HasPlinth.
func (p Position) PieceAt(sq boardx.Square) boardx.Piece {
	for _, color := range [2]boardx.Color{boardx.White, boardx.Black} {
		for _, pt := range boardx.PieceTypes() {
			if p.pieces[color.Index()][pt].IsSet(sq) {
				return boardx.Piece{Type: pt, Color: color}
			}
		}
	}
	return boardx.NoPiece
}

// HasPlinth reports whether sq carries terrain.
func (p Position) HasPlinth(sq boardx.Square) bool {
	return p.plinth.IsSet(sq)
}

// FindKing returns color's king square, or boardx.NoSquare if it has
// none (should not happen in a legal position, but callers that probe
// partially-built positions need the sentinel).
func (p Position) FindKing(color boardx.Color) boardx.Square {
	kings := p.pieces[color.Index()][boardx.King]
	if kings.IsEmpty() {
		return boardx.NoSquare
	}
	return kings.Squares()[0]
}

// place puts piece pt/color on sq, leaving any plinth there in place.
// Used by SFEN loading and by ApplyMove.
func (p *Position) place(sq boardx.Square, pt boardx.PieceType, color boardx.Color) {
	p.pieces[color.Index()][pt].Set(sq)
	p.occ[color.Index()].Set(sq)
}

// remove clears any piece of pt/color sitting on sq.
func (p *Position) remove(sq boardx.Square, pt boardx.PieceType, color boardx.Color) {
	p.pieces[color.Index()][pt].Clear(sq)
	p.occ[color.Index()].Clear(sq)
}

// removeAny clears whatever piece (of either color) occupies sq, and
// reports what it was.
func (p *Position) removeAny(sq boardx.Square) boardx.Piece {
	pc := p.PieceAt(sq)
	if pc.IsNone() {
		return pc
	}
	p.remove(sq, pc.Type, pc.Color)
	return pc
}

// setPlinth marks sq as terrain.
func (p *Position) setPlinth(sq boardx.Square) {
	p.plinth.Set(sq)
}

// Params returns a freshly built Params for this position's geometry.
// Callers on a hot path should build Params once and hold onto it
// instead of calling this repeatedly.
func (p Position) Params() sizeparams.Params {
	return sizeparams.Build(p.Geometry.Size)
}
