package position

import "github.com/shuuro/shuuro-engine/internal/boardx"

// ApplyMove returns the position reached by playing m, plus the piece
// it captured (boardx.NoPiece if none). The receiver is left unchanged;
// callers that want to explore a line copy forward rather than
// push/pop an undo stack, since Position is a small value type.
func (p Position) ApplyMove(m boardx.Move) (Position, boardx.Piece) {
	next := p
	mover := next.PieceAt(m.From)
	captured := next.removeAny(m.To)
	next.remove(m.From, mover.Type, mover.Color)
	next.place(m.To, mover.Type, mover.Color)
	next.SideToMove = next.SideToMove.Flip()
	return next, captured
}
