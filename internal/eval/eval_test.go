package eval

import (
	"strings"
	"testing"

	"github.com/shuuro/shuuro-engine/internal/boardx"
	"github.com/shuuro/shuuro-engine/internal/position"
	"github.com/shuuro/shuuro-engine/internal/sizeparams"
)

// mirrorSFEN vertically flips the board and swaps piece colors (case),
// leaving plinths and empty-square digits untouched — the "mirror(pos)"
// spec.md §8 property 1 refers to.
func mirrorSFEN(sfen string) string {
	fields := strings.Fields(sfen)
	rows := strings.Split(fields[0], "/")
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	for i, row := range rows {
		rows[i] = swapCase(row)
	}
	side := "w"
	if fields[1] == "w" {
		side = "b"
	}
	return strings.Join(rows, "/") + " " + side
}

func swapCase(s string) string {
	b := []byte(s)
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z':
			b[i] = c - 'a' + 'A'
		case c >= 'A' && c <= 'Z':
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}

func mustPosition(t *testing.T, size int, sfen string) position.Position {
	t.Helper()
	g := boardx.NewGeometry(size)
	pos, err := position.SetSFEN(g, sfen)
	if err != nil {
		t.Fatalf("SetSFEN(%q): %v", sfen, err)
	}
	return pos
}

// TestEvaluateMirrorSymmetry is spec.md §8 property 1: evaluate(pos) ==
// -evaluate(mirror(pos)), modulo the +-10 tempo term. Uses a pawnless
// position deliberately: pawn_storm is preserved bug-compatible (spec.md
// §9), and that bug is not mirror-symmetric, so any position with pawns
// would make this property flaky for a reason unrelated to what this
// test checks.
func TestEvaluateMirrorSymmetry(t *testing.T) {
	sfen := "4k3/8/8/2b5/8/2B5/8/4K3 w"
	p := sizeparams.Build(8)

	pos := mustPosition(t, 8, sfen)
	mirrored := mustPosition(t, 8, mirrorSFEN(sfen))

	score := Evaluate(pos, &p)
	mirroredScore := Evaluate(mirrored, &p)

	diff := score + mirroredScore
	if diff < -20 || diff > 20 {
		t.Fatalf("mirror symmetry broken beyond tempo slack: evaluate=%d mirrored=%d sum=%d", score, mirroredScore, diff)
	}
}

// TestGamePhaseMonotoneAndBounded is spec.md §8 property 3.
func TestGamePhaseMonotoneAndBounded(t *testing.T) {
	p := sizeparams.Build(8)
	full := mustPosition(t, 8, "4k3/4r3/8/8/6n1/4B3/5PPP/5BNK b")
	stripped := mustPosition(t, 8, "4k3/8/8/8/8/8/8/4K3 w")

	fullPhase := calculateGamePhase([2][9]int32{countMaterial(full, boardx.White), countMaterial(full, boardx.Black)}, &p)
	strippedPhase := calculateGamePhase([2][9]int32{countMaterial(stripped, boardx.White), countMaterial(stripped, boardx.Black)}, &p)

	if strippedPhase > fullPhase {
		t.Fatalf("phase should not increase as pieces are removed: full=%d stripped=%d", fullPhase, strippedPhase)
	}
	if fullPhase < 0 || fullPhase > p.MidgameMin.Cap {
		t.Fatalf("phase %d out of [0,%d]", fullPhase, p.MidgameMin.Cap)
	}
	if strippedPhase != 0 {
		t.Fatalf("two bare kings should have phase 0, got %d", strippedPhase)
	}
}

// TestCountPassedPawnsNoPawns is spec.md §8 property 6.
func TestCountPassedPawnsNoPawns(t *testing.T) {
	p := sizeparams.Build(8)
	pos := mustPosition(t, 8, "4k3/8/8/8/8/8/8/4K3 w")
	pawns := [2]boardx.BitBoard{
		pos.PlayerBB(boardx.White).And(pos.TypeBB(boardx.White, boardx.Pawn)),
		pos.PlayerBB(boardx.Black).And(pos.TypeBB(boardx.Black, boardx.Pawn)),
	}
	if got := countPassedPawns(pawns, pos, &p, boardx.White); got != 0 {
		t.Fatalf("expected 0 for no pawns, got %d", got)
	}
}

// TestOutpostNoInOwnHalf is spec.md §8 property 7.
func TestOutpostNoInOwnHalf(t *testing.T) {
	p := sizeparams.Build(8)
	// White knight sits on its own second rank — deep in its own half.
	pos := mustPosition(t, 8, "4k3/8/8/8/8/8/4N3/4K3 w")
	knightSq := p.Geometry.SquareAt(4, 1)
	if p.PlayerTerritory[boardx.Black.Index()].IsSet(knightSq) {
		t.Fatalf("test setup error: square should be in White's own half")
	}
	bonus := outpostBonus(pos, boardx.White, &p)
	if bonus > 0 {
		t.Fatalf("expected no outpost bonus for a piece in its own half, got %d", bonus)
	}
}

// TestKingAttackersPenaltyCountsAdjacentAttacker guards against the
// between(king,king) bug's literal fix still going empty for an
// attacker standing right next to the king: a queen on d1 attacks e1
// directly, with no square strictly between them.
func TestKingAttackersPenaltyCountsAdjacentAttacker(t *testing.T) {
	p := sizeparams.Build(8)
	pos := mustPosition(t, 8, "4k3/8/8/8/8/8/8/3qK3 w")
	if got := kingAttackersPenalty(pos, boardx.White, &p); got <= 0 {
		t.Fatalf("expected a positive penalty for an adjacent attacking queen, got %d", got)
	}
}

// TestKingAttackersPenaltyCountsKnightAttacker guards against the same
// fix only ever recognizing attackers on the king's rank, file, or
// diagonal: a knight's attack pattern is none of those.
func TestKingAttackersPenaltyCountsKnightAttacker(t *testing.T) {
	p := sizeparams.Build(8)
	pos := mustPosition(t, 8, "4k3/8/8/8/8/3n4/8/4K3 w")
	if got := kingAttackersPenalty(pos, boardx.White, &p); got <= 0 {
		t.Fatalf("expected a positive penalty for a knight attacking the king, got %d", got)
	}
}

// TestSafetyFactorMonotone is spec.md §8 property 8.
func TestSafetyFactorMonotone(t *testing.T) {
	prev := safetyFactor(0, 0)
	for diff := int32(1); diff <= 6; diff++ {
		cur := safetyFactor(diff, 0)
		if cur < prev {
			t.Fatalf("safetyFactor not monotone at attackers-defenders=%d: %d < %d", diff, cur, prev)
		}
		prev = cur
	}
}

// TestScenarioBareKingsTempoOnly is spec.md §8 concrete scenario 1
// (adapted to this oracle's reduced starting layout).
func TestScenarioBareKingsTempoOnly(t *testing.T) {
	p := sizeparams.Build(8)
	pos := mustPosition(t, 8, "4k3/8/8/8/8/8/8/4K3 w")
	score := Evaluate(pos, &p)
	if score != 10 {
		t.Fatalf("expected tempo-only score of +10 for White to move with bare kings, got %d", score)
	}
}

// TestScenarioTwoBishopsVsOne is spec.md §8 concrete scenario 6: two
// bishops vs one bishop. The second bishop brings the +30 pair bonus,
// plus +10 material presence for the extra piece and +5 enemy-half
// activity (from e3 it reaches g5, h6, c5, b6, a7, phase weight 1).
func TestScenarioTwoBishopsVsOne(t *testing.T) {
	p := sizeparams.Build(8)
	twoBishops := mustPosition(t, 8, "4k3/8/8/8/8/2B1B3/8/4K3 w")
	oneBishop := mustPosition(t, 8, "4k3/8/8/8/8/2B5/8/4K3 w")

	const want = 30 + 10 + 5
	diff := otherPositionalFactors(twoBishops, true, &p) - otherPositionalFactors(oneBishop, true, &p)
	if diff != want {
		t.Fatalf("expected bishop-pair bonus +30 plus presence/activity, %d in all, got %d", want, diff)
	}
}

// TestScenarioPassedPawnAdvanced is a scaled-down check of spec.md §8
// concrete scenario 5: a far-advanced passed pawn scores a large bonus.
// The black king stands on a8, outside the pawn's d-f file zone, since
// any enemy piece in that zone stops the pawn counting as passed.
func TestScenarioPassedPawnAdvanced(t *testing.T) {
	p := sizeparams.Build(8)
	pos := mustPosition(t, 8, "k7/4P3/8/8/8/8/8/4K3 w")
	score := pawnStructureEvaluation(pos, &p)
	if score < 500 {
		t.Fatalf("expected a large passed-pawn bonus for a pawn one step from promotion, got %d", score)
	}
}
