package eval

import (
	"github.com/shuuro/shuuro-engine/internal/boardx"
	"github.com/shuuro/shuuro-engine/internal/position"
	"github.com/shuuro/shuuro-engine/internal/sizeparams"
)

// otherPositionalFactors sums bishop pair, material presence, rook
// files, outposts, and the under-attack penalty per color (summed then
// differenced White-Black), plus the already White-positive enemy-half
// activity term. Generalizes original_source's other_positional_factors
// (which only covered bishop pair, rook files, and knight outposts)
// to every non-Plinth piece type per spec.md §4.6.
func otherPositionalFactors(pos position.Position, midgame bool, p *sizeparams.Params) int32 {
	var perColor [2]int32
	for _, c := range colors {
		perColor[c.Index()] += bishopPairBonus(pos, c)
		perColor[c.Index()] += 10 * int32(pos.PlayerBB(c).Len())
		perColor[c.Index()] += rookFileBonus(pos, c, p)
		perColor[c.Index()] += outpostBonus(pos, c, p)
		perColor[c.Index()] -= underAttackPenalty(pos, c, midgame, p)
	}
	score := perColor[boardx.White.Index()] - perColor[boardx.Black.Index()]
	score += enemyHalfActivity(pos, p)
	return score
}

func bishopPairBonus(pos position.Position, color boardx.Color) int32 {
	bishops := pos.PlayerBB(color).And(pos.TypeBB(color, boardx.Bishop))
	if bishops.Len() >= 2 {
		return 30
	}
	return 0
}

// rookFileBonus rewards a rook on an open file (no pawns of either
// color) over a semi-open one (enemy pawns only), per spec.md §4.6.
func rookFileBonus(pos position.Position, color boardx.Color, p *sizeparams.Params) int32 {
	allPawns := pos.TypeBB(boardx.White, boardx.Pawn).Or(pos.TypeBB(boardx.Black, boardx.Pawn))
	ownPawns := pos.TypeBB(color, boardx.Pawn)

	var score int32
	rooks := pos.PlayerBB(color).And(pos.TypeBB(color, boardx.Rook))
	for _, sq := range rooks.Squares() {
		file := p.FileBB[p.Geometry.FileOf(sq)]
		onFile := file.And(allPawns)
		switch {
		case onFile.IsEmpty():
			score += 20
		case onFile.And(ownPawns).IsEmpty():
			score += 10
		}
	}
	return score
}

// outpostBonus scores every non-Plinth piece of color standing in
// enemy territory: protected by an own pawn scores +25; otherwise -20
// for a pawn subject or -40 for anything else. Generalizes
// original_source's is_outpost (knights only) to the full piece set per
// spec.md §4.6.
func outpostBonus(pos position.Position, color boardx.Color, p *sizeparams.Params) int32 {
	enemyTerritory := p.PlayerTerritory[color.Flip().Index()]
	ownPawns := pos.TypeBB(color, boardx.Pawn)
	enemyPawns := pos.TypeBB(color.Flip(), boardx.Pawn)

	var score int32
	for _, pt := range boardx.PieceTypes() {
		for _, sq := range pos.PlayerBB(color).And(pos.TypeBB(color, pt)).Squares() {
			if !enemyTerritory.IsSet(sq) {
				continue
			}
			protected := pawnAttackSquares(sq, color.Flip(), p).And(ownPawns).IsAny()
			if pt == boardx.Pawn {
				attackable := pawnAttackSquares(sq, color, p).And(enemyPawns).IsAny()
				protected = protected && !attackable
			}
			switch {
			case protected:
				score += 25
			case pt == boardx.Pawn:
				score -= 20
			default:
				score -= 40
			}
		}
	}
	return score
}

// underAttackPenalty subtracts a piece's material value for every
// square color's opponent covers, with no exchange evaluation — a
// deliberately noisy signal spec.md §4.6/§9 keeps as specified rather
// than adding SEE to.
func underAttackPenalty(pos position.Position, color boardx.Color, midgame bool, p *sizeparams.Params) int32 {
	values := p.EndgamePieceValues
	if midgame {
		values = p.PieceValues
	}
	enemyCoverage := pos.CoverageBB(color.Flip())

	var penalty int32
	for _, pt := range boardx.PieceTypes() {
		attacked := pos.PlayerBB(color).And(pos.TypeBB(color, pt)).And(enemyCoverage)
		penalty += int32(attacked.Len()) * values[color.Index()][pt]
	}
	return penalty
}

// enemyHalfActivity scores every piece by how many squares it reaches
// inside the opponent's half, plus a flat bonus for standing there
// itself — already signed White-positive per spec.md §4.6, so it is
// added directly rather than run through the White-minus-Black pattern.
func enemyHalfActivity(pos position.Position, p *sizeparams.Params) int32 {
	var score int32
	for _, c := range colors {
		s := sign(c)
		enemyHalf := p.PlayerTerritory[c.Flip().Index()]
		for _, pt := range boardx.PieceTypes() {
			for _, sq := range pos.PlayerBB(c).And(pos.TypeBB(c, pt)).Squares() {
				reach := pos.ReachableFrom(sq)
				inEnemy := int32(reach.And(enemyHalf).Len())
				score += inEnemy * p.PhaseWeights[pt] * s
				if enemyHalf.IsSet(sq) {
					score += 10 * s
				}
			}
		}
	}
	return score
}
