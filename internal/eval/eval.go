// Package eval implements the weighted-sum position evaluator: material,
// piece-square tables, pawn structure, mobility, king safety, and
// positional bonuses, combined into one White-positive score. It is a
// direct port of original_source's evalaute_position and its helpers,
// restructured into the teacher's eval.go idiom — package-level weight
// tables, one function per sub-evaluation, a sign-convention loop over
// {White, Black} — rather than the source's per-board-size trait impls.
package eval

import (
	"github.com/shuuro/shuuro-engine/internal/boardx"
	"github.com/shuuro/shuuro-engine/internal/position"
	"github.com/shuuro/shuuro-engine/internal/sizeparams"
)

// colors is iterated in this fixed order throughout the package so the
// White/Black balance (White minus Black) stays consistent everywhere.
var colors = [2]boardx.Color{boardx.White, boardx.Black}

func sign(c boardx.Color) int32 {
	if c == boardx.White {
		return 1
	}
	return -1
}

// Evaluate scores pos from White's perspective: positive favors White.
func Evaluate(pos position.Position, p *sizeparams.Params) int32 {
	counts := [2][9]int32{
		countMaterial(pos, boardx.White),
		countMaterial(pos, boardx.Black),
	}
	phase := calculateGamePhase(counts, p)
	midgame := phase > p.MidgameMin.Threshold

	var score int32
	score += materialBalance(counts, midgame, p)
	score += pstEvaluation(pos, midgame, p)
	score += pawnStructureEvaluation(pos, p)
	score += mobilityEvaluation(pos, midgame)
	score += kingSafetyEvaluation(pos, midgame, p)
	score += otherPositionalFactors(pos, midgame, p)

	if pos.SideToMove == boardx.White {
		score += 10
	} else {
		score -= 10
	}
	return score
}

// countMaterial returns color's piece counts, indexed by boardx.PieceType.
func countMaterial(pos position.Position, color boardx.Color) [9]int32 {
	var counts [9]int32
	for _, pt := range boardx.PieceTypes() {
		counts[pt] = int32(pos.TypeBB(color, pt).Len())
	}
	return counts
}

// calculateGamePhase sums PhaseWeights over both colors' piece counts,
// clamped to the size's phase cap. Monotone non-increasing as pieces
// leave the board, per spec.md §8 property 3.
func calculateGamePhase(counts [2][9]int32, p *sizeparams.Params) int32 {
	var phase int32
	for _, c := range colors {
		for pt, count := range counts[c.Index()] {
			phase += count * p.PhaseWeights[pt]
		}
	}
	if phase > p.MidgameMin.Cap {
		return p.MidgameMin.Cap
	}
	return phase
}

func materialBalance(counts [2][9]int32, midgame bool, p *sizeparams.Params) int32 {
	values := p.EndgamePieceValues
	if midgame {
		values = p.PieceValues
	}
	var material [2]int32
	for _, c := range colors {
		for pt, count := range counts[c.Index()] {
			material[c.Index()] += values[c.Index()][pt] * count
		}
	}
	return material[boardx.White.Index()] - material[boardx.Black.Index()]
}

func pstEvaluation(pos position.Position, midgame bool, p *sizeparams.Params) int32 {
	pst := p.PSTEndgame
	if midgame {
		pst = p.PST
	}
	var score int32
	for _, c := range colors {
		s := sign(c)
		for _, pt := range boardx.PieceTypes() {
			for _, sq := range pos.TypeBB(c, pt).Squares() {
				score += pst[c.Index()][pt][sq] * s
			}
		}
	}
	return score
}
