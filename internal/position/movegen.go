package position

import "github.com/shuuro/shuuro-engine/internal/boardx"

// pseudoMovesFrom returns every destination square a piece on sq could
// move to, ignoring whether the move leaves its own king in check.
func (p Position) pseudoMovesFrom(sq boardx.Square) boardx.BitBoard {
	pc := p.PieceAt(sq)
	if pc.IsNone() {
		return boardx.Empty()
	}
	own := p.PlayerBB(pc.Color)

	if pc.Type == boardx.Pawn {
		dests := p.pawnPushes(sq, pc.Color)
		captures := p.pawnAttacks(sq, pc.Color).And(p.PlayerBB(pc.Color.Flip()))
		return dests.Or(captures)
	}
	return p.AttacksFrom(pc.Type, pc.Color, sq).AndNot(own)
}

// pawnPushes returns the (non-capturing) forward square for a pawn,
// empty if blocked. Shuuro pawns never double-step and this oracle
// never generates en passant (movement-phase only, spec.md §4).
func (p Position) pawnPushes(sq boardx.Square, color boardx.Color) boardx.BitBoard {
	g := p.Geometry
	file := g.FileOf(sq)
	rank := g.RankOf(sq)
	dr := 1
	if color == boardx.Black {
		dr = -1
	}
	nr := rank + dr
	if !g.InBounds(file, nr) {
		return boardx.Empty()
	}
	dest := g.SquareAt(file, nr)
	if p.Occupied().IsSet(dest) {
		return boardx.Empty()
	}
	return boardx.FromSquare(dest)
}

// PseudoMoves returns every pseudo-legal move color has, without
// filtering for self-check.
func (p Position) PseudoMoves(color boardx.Color) []boardx.Move {
	var moves []boardx.Move
	for _, pt := range boardx.PieceTypes() {
		for _, from := range p.pieces[color.Index()][pt].Squares() {
			for _, to := range p.pseudoMovesFrom(from).Squares() {
				moves = append(moves, boardx.Move{From: from, To: to})
			}
		}
	}
	return moves
}

// LegalMoves returns every move color can play that does not leave its
// own king in check afterward.
func (p Position) LegalMoves(color boardx.Color) []boardx.Move {
	pseudo := p.PseudoMoves(color)
	legal := make([]boardx.Move, 0, len(pseudo))
	for _, m := range pseudo {
		next, _ := p.ApplyMove(m)
		if !next.InCheck(color) {
			legal = append(legal, m)
		}
	}
	return legal
}

// EnemyMoves returns color's opponent's pseudo-legal moves, with no
// self-check filtering (an attacked square is attacked whether or not
// the attacker could legally move there next).
func (p Position) EnemyMoves(color boardx.Color) []boardx.Move {
	return p.PseudoMoves(color.Flip())
}

// CoverageBB unions every destination square color's pieces pseudo-reach,
// the bitboard form of PseudoMoves. The evaluator's king-safety and
// under-attack terms and quiescence's capture filter call it with the
// opponent's color.
func (p Position) CoverageBB(color boardx.Color) boardx.BitBoard {
	var bb boardx.BitBoard
	for _, pt := range boardx.PieceTypes() {
		for _, from := range p.pieces[color.Index()][pt].Squares() {
			bb = bb.Or(p.pseudoMovesFrom(from))
		}
	}
	return bb
}

// EnemyCoverageBB is the bitboard form of EnemyMoves: every square
// color's opponent pseudo-reaches.
func (p Position) EnemyCoverageBB(color boardx.Color) boardx.BitBoard {
	return p.CoverageBB(color.Flip())
}

// SquareMoves pairs an origin square with every legal destination it
// currently reaches — the "(from_square, moves_bitboard)" entries
// spec.md's mobility evaluation iterates.
type SquareMoves struct {
	From  boardx.Square
	Moves boardx.BitBoard
}

// LegalMovesGrouped returns color's legal moves grouped by origin
// square, each with a bitboard of legal destinations.
func (p Position) LegalMovesGrouped(color boardx.Color) []SquareMoves {
	legal := p.LegalMoves(color)
	byFrom := make(map[boardx.Square]*boardx.BitBoard)
	var order []boardx.Square
	for _, m := range legal {
		bb, ok := byFrom[m.From]
		if !ok {
			var fresh boardx.BitBoard
			bb = &fresh
			byFrom[m.From] = bb
			order = append(order, m.From)
		}
		bb.Set(m.To)
	}
	out := make([]SquareMoves, 0, len(order))
	for _, sq := range order {
		out = append(out, SquareMoves{From: sq, Moves: *byFrom[sq]})
	}
	return out
}

// ReachableFrom returns every square a piece on sq could pseudo-reach
// (ignoring self-check), the per-square move set the evaluator's
// enemy-half activity term consults.
func (p Position) ReachableFrom(sq boardx.Square) boardx.BitBoard {
	return p.pseudoMovesFrom(sq)
}

// Captures returns color's legal moves whose destination holds an
// enemy piece — the move set quiescence search explores.
func (p Position) Captures(color boardx.Color) []boardx.Move {
	enemy := p.PlayerBB(color.Flip())
	var out []boardx.Move
	for _, m := range p.LegalMoves(color) {
		if enemy.IsSet(m.To) {
			out = append(out, m)
		}
	}
	return out
}

// attackersOf returns every square from which color attacks target,
// across all of color's pieces.
func (p Position) attackersOf(target boardx.Square, color boardx.Color) boardx.BitBoard {
	var bb boardx.BitBoard
	for _, pt := range boardx.PieceTypes() {
		for _, from := range p.pieces[color.Index()][pt].Squares() {
			if p.AttacksFrom(pt, color, from).IsSet(target) {
				bb.Set(from)
			}
		}
	}
	return bb
}

// IsSquareAttacked reports whether color attacks sq.
func (p Position) IsSquareAttacked(sq boardx.Square, byColor boardx.Color) bool {
	return p.attackersOf(sq, byColor).IsAny()
}

// InCheck reports whether color's king is currently attacked.
func (p Position) InCheck(color boardx.Color) bool {
	king := p.FindKing(color)
	if king == boardx.NoSquare {
		return false
	}
	return p.IsSquareAttacked(king, color.Flip())
}

// IsCheckmate reports whether color is in check with no legal reply.
func (p Position) IsCheckmate(color boardx.Color) bool {
	return p.InCheck(color) && len(p.LegalMoves(color)) == 0
}

// IsStalemate reports whether color is not in check but has no legal
// move — the other terminal sentinel the search package scores as a
// draw.
func (p Position) IsStalemate(color boardx.Color) bool {
	return !p.InCheck(color) && len(p.LegalMoves(color)) == 0
}
