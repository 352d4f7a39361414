package eval

import (
	"github.com/shuuro/shuuro-engine/internal/boardx"
	"github.com/shuuro/shuuro-engine/internal/position"
)

// mobilityEvaluation sums each color's legal-move count weighted by
// piece type, then returns (White-Black)/2. Ported from
// original_source's mobility_evaluation, corrected per spec.md §9 to
// accumulate across a color's pieces rather than assign (the source's
// `mobility[color.index()] = moves.len() * weight` inside the per-square
// loop overwrites rather than accumulates, leaving only the last
// square's contribution — spec.md flags this as a bug an implementer
// should fix, since no testable property in §8 could pass with an
// assignment-only mobility term once more than one piece is mobile).
func mobilityEvaluation(pos position.Position, midgame bool) int32 {
	var mobility [2]int32
	for _, c := range colors {
		for _, sm := range pos.LegalMovesGrouped(c) {
			piece := pos.PieceAt(sm.From)
			attacksPlinth := pos.PlinthBB().And(sm.Moves).IsAny()
			weight := mobilityWeight(piece.Type, midgame, attacksPlinth)
			mobility[c.Index()] += int32(sm.Moves.Len()) * weight
		}
	}
	return (mobility[boardx.White.Index()] - mobility[boardx.Black.Index()]) / 2
}

func mobilityWeight(pt boardx.PieceType, midgame, attacksPlinth bool) int32 {
	switch {
	case pt == boardx.Queen && midgame:
		return 4
	case pt == boardx.Knight && !midgame:
		if attacksPlinth {
			return 3
		}
		return 2
	case (pt == boardx.Chancellor || pt == boardx.ArchBishop) && midgame:
		if attacksPlinth {
			return 5
		}
		return 4
	case (pt == boardx.Chancellor || pt == boardx.ArchBishop) && !midgame:
		if attacksPlinth {
			return 4
		}
		return 3
	default:
		return 1
	}
}
