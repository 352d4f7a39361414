package eval

import (
	"github.com/shuuro/shuuro-engine/internal/boardx"
	"github.com/shuuro/shuuro-engine/internal/position"
	"github.com/shuuro/shuuro-engine/internal/sizeparams"
)

// pawnStructureEvaluation sums doubled/isolated/passed/chain/storm
// sub-terms, each White-minus-Black, ported from original_source's
// pawn_structure_evaluation plus the storm term spec.md §4.3 folds in
// (the source computes pawn_storm but never wires it into this sum;
// SPEC_FULL carries it here since spec.md lists it as a pawn-structure
// component).
func pawnStructureEvaluation(pos position.Position, p *sizeparams.Params) int32 {
	pawns := [2]boardx.BitBoard{
		pos.PlayerBB(boardx.White).And(pos.TypeBB(boardx.White, boardx.Pawn)),
		pos.PlayerBB(boardx.Black).And(pos.TypeBB(boardx.Black, boardx.Pawn)),
	}

	var score int32
	score -= 10 * countDoubledPawns(pawns[boardx.White.Index()], p)
	score += 10 * countDoubledPawns(pawns[boardx.Black.Index()], p)

	score -= 20 * countIsolatedPawns(pawns[boardx.White.Index()], p)
	score += 20 * countIsolatedPawns(pawns[boardx.Black.Index()], p)

	score += 30 * countPassedPawns(pawns, pos, p, boardx.White)
	score -= 30 * countPassedPawns(pawns, pos, p, boardx.Black)

	score += 15 * countPawnChains(pawns[boardx.White.Index()], boardx.White, p)
	score -= 15 * countPawnChains(pawns[boardx.Black.Index()], boardx.Black, p)

	score -= pawnStorm(pos, boardx.White, p)
	score += pawnStorm(pos, boardx.Black, p)

	return score
}

func countDoubledPawns(pawns boardx.BitBoard, p *sizeparams.Params) int32 {
	var count int32
	for _, fileBB := range p.FileBB {
		count += int32(fileBB.And(pawns).Len() / 2)
	}
	return count
}

func countIsolatedPawns(pawns boardx.BitBoard, p *sizeparams.Params) int32 {
	var isolated int32
	for _, sq := range pawns.Squares() {
		file := p.Geometry.FileOf(sq)
		rest := pawns.AndNot(boardx.FromSquare(sq))
		if p.NeighborFiles[file].And(rest).IsEmpty() {
			isolated++
		}
	}
	return isolated
}

// countPassedPawns returns 10*count + the rank-proximity bonus sum, per
// spec.md §4.3; count_passed_pawns in original_source folds both into
// one return value that its caller then multiplies by 30.
func countPassedPawns(pawns [2]boardx.BitBoard, pos position.Position, p *sizeparams.Params, color boardx.Color) int32 {
	enemy := pos.PlayerBB(color.Flip())
	zones := p.PassedPawnZones[color.Index()]

	var count, bonus int32
	for _, sq := range pawns[color.Index()].Squares() {
		zone := zones[sq]
		if zone.And(enemy).IsEmpty() {
			count++
			bonus += passedPawnRankBonus(sq, color, p)
		}
	}
	return count*10 + bonus
}

// passedPawnRankBonus rewards proximity to the promotion edge: one step
// away scores highest, tapering off, matching the {50,30,15,8,3}
// schedule every per-size table in original_source shares (the 6x6
// table's fallback case diverges to 8 instead of 3 for anything past
// its first three ranks; this canonical, size-independent form follows
// spec.md §4.3's prose rather than reproduce that one-off divergence).
func passedPawnRankBonus(sq boardx.Square, color boardx.Color, p *sizeparams.Params) int32 {
	g := p.Geometry
	rank := g.RankOf(sq)
	var distance int
	if color == boardx.White {
		distance = g.Size - 1 - rank
	} else {
		distance = rank
	}
	switch distance {
	case 1:
		return 50
	case 2:
		return 30
	case 3:
		return 15
	case 4:
		return 8
	default:
		return 3
	}
}

// countPawnChains finds connected components of own pawns under
// king-adjacency (8-neighborhood) and scores components of size >= 2,
// ported from original_source's count_pawn_chains/pawn_chain_bonus.
func countPawnChains(pawns boardx.BitBoard, color boardx.Color, p *sizeparams.Params) int32 {
	visited := make(map[boardx.Square]bool, pawns.Len())
	var total int32

	for _, anchor := range pawns.Squares() {
		if visited[anchor] {
			continue
		}
		size := floodFillPawnChain(anchor, pawns, visited, p)
		if size < 2 {
			continue
		}
		chainValue := pawnChainBonus(anchor, color, pawns, p)
		total++
		switch size {
		case 2:
			total += chainValue * 3 / 2
		case 3:
			total += chainValue * 2
		default:
			total += chainValue * 5 / 2
		}
	}
	return total
}

// floodFillPawnChain walks the king-adjacency component containing sq,
// marking every member visited, and returns its size.
func floodFillPawnChain(sq boardx.Square, pawns boardx.BitBoard, visited map[boardx.Square]bool, p *sizeparams.Params) int32 {
	if visited[sq] {
		return 0
	}
	visited[sq] = true
	size := int32(1)

	file, rank := p.Geometry.FileOf(sq), p.Geometry.RankOf(sq)
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			nf, nr := file+df, rank+dr
			if !p.Geometry.InBounds(nf, nr) {
				continue
			}
			neighbor := p.Geometry.SquareAt(nf, nr)
			if pawns.IsSet(neighbor) && !visited[neighbor] {
				size += floodFillPawnChain(neighbor, pawns, visited, p)
			}
		}
	}
	return size
}

// pawnChainBonus combines a center-favoring file bonus with a +3/+2
// bonus when the pawn is itself defended from behind/ahead by another
// own pawn, ported from original_source's pawn_chain_bonus.
func pawnChainBonus(sq boardx.Square, color boardx.Color, pawns boardx.BitBoard, p *sizeparams.Params) int32 {
	bonus := fileCenterBonus(p.Geometry.FileOf(sq), p.Geometry.Size)

	backward := pawnAttackSquares(sq, color.Flip(), p)
	if backward.And(pawns).IsAny() {
		bonus += 3
	}
	forward := pawnAttackSquares(sq, color, p)
	if forward.And(pawns).IsAny() {
		bonus += 2
	}
	return bonus
}

// fileCenterBonus reproduces the qualitative shape of every per-size
// pawn_chain_file_bonus table (center files score highest, tapering to
// the flanks) as one formula instead of three hand-copied tables.
func fileCenterBonus(file, size int) int32 {
	center := float64(size-1) / 2
	distance := center - absFloat(float64(file)-center)
	switch {
	case distance >= center-0.5:
		return 5
	case distance >= center-1.5:
		return 4
	case distance >= center-2.5:
		return 3
	default:
		return 2
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// pawnAttackSquares returns the diagonal squares a pawn of color on sq
// would attack — used both for the real attacker color and, flipped,
// to find the squares an enemy pawn sitting there would threaten back.
func pawnAttackSquares(sq boardx.Square, color boardx.Color, p *sizeparams.Params) boardx.BitBoard {
	g := p.Geometry
	file, rank := g.FileOf(sq), g.RankOf(sq)
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

// pawnStorm penalizes a king whose neighboring files are being pushed
// by enemy pawns. Ported bug-compatible from original_source's
// pawn_storm: it reads king.file() in both branches where rank is
// arithmetically intended (spec.md §4.3's explicit instruction to
// preserve this unless a test specifies the fix; none of spec.md §8's
// scenarios exercise it).
func pawnStorm(pos position.Position, color boardx.Color, p *sizeparams.Params) int32 {
	king := pos.FindKing(color)
	if king == boardx.NoSquare {
		return 0
	}
	g := p.Geometry
	file := g.FileOf(king)

	phase := calculateGamePhase([2][9]int32{countMaterial(pos, boardx.White), countMaterial(pos, boardx.Black)}, p)
	if phase == 0 {
		if color == boardx.White && file > g.Size-3 {
			return 25
		}
		if color == boardx.Black && file < 2 {
			return 25
		}
	}

	enemyPawns := pos.PlayerBB(color.Flip()).And(pos.TypeBB(color.Flip(), boardx.Pawn))

	step := 1
	if color == boardx.Black {
		step = -1
	}
	var ranks boardx.BitBoard
	for i := 1; i < 3; i++ {
		r := file + step*i
		if r < 0 || r >= g.Size {
			continue
		}
		ranks = ranks.Or(p.RankBB[r])
	}
	storm := enemyPawns.And(ranks)
	return int32(storm.Len()) * 7
}
