// Package search implements the depth-limited alpha-beta search with
// quiescence extension spec.md §4.8-§4.10 describes: no transposition
// table, no iterative deepening, no killer/history heuristics, no
// null-move pruning, no late-move reductions — the Non-goals the
// teacher's internal/engine carries (TT probes, PV table, killer and
// history updates) are stripped out here, keeping only the negamax-like
// recursion shape and MVV-LVA ordering.
package search

import (
	"sort"

	"github.com/shuuro/shuuro-engine/internal/boardx"
	"github.com/shuuro/shuuro-engine/internal/position"
	"github.com/shuuro/shuuro-engine/internal/sizeparams"
)

// moveScore pairs a move with its ordering key, the (Move, score) list
// spec.md §4.10's order_moves sorts descending.
type moveScore struct {
	move  boardx.Move
	score int32
}

// mvvLva scores a capture as 10*value(victim) - value(attacker), per
// spec.md §4.9. Non-captures score 0, so OrderMoves' stable sort leaves
// them in their original insertion order — exactly spec.md §4.8's
// "insertion order... no heuristic ordering" baseline for quiet moves,
// with the permitted MVV-LVA pass applied only to captures. Captures
// scoring above 0 sort ahead of the quiet moves; a capture whose
// attacker is worth more than ten times its victim scores below 0 and
// sorts after them.
func mvvLva(pos position.Position, m boardx.Move, side boardx.Color, p *sizeparams.Params) int32 {
	target := pos.PieceAt(m.To)
	if target.IsNone() || target.Color != side.Flip() {
		return 0
	}
	attacker := pos.PieceAt(m.From)
	return 10*p.PieceValues[side.Flip().Index()][target.Type] - p.PieceValues[side.Index()][attacker.Type]
}

// OrderMoves sorts moves by descending MVV-LVA score. Used
// unconditionally in quiescence (spec.md §4.9) and, as the strict
// improvement spec.md §4.8 permits, at interior search nodes too.
func OrderMoves(pos position.Position, moves []boardx.Move, side boardx.Color, p *sizeparams.Params) []boardx.Move {
	scored := make([]moveScore, len(moves))
	for i, m := range moves {
		scored[i] = moveScore{move: m, score: mvvLva(pos, m, side, p)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	out := make([]boardx.Move, len(scored))
	for i, s := range scored {
		out[i] = s.move
	}
	return out
}
