package search

import (
	"math"

	"github.com/shuuro/shuuro-engine/internal/boardx"
	"github.com/shuuro/shuuro-engine/internal/eval"
	"github.com/shuuro/shuuro-engine/internal/position"
	"github.com/shuuro/shuuro-engine/internal/sizeparams"
)

// Mate sentinels. spec.md §9 requires saturating sentinels rather than
// MIN/MAX arithmetic that could overflow when propagated through a
// combinator; the source never arithmetically combines a mate score
// with anything else, and neither does this search, so plain
// math.MinInt32/MaxInt32 already satisfy that constraint.
const (
	MinScore int32 = math.MinInt32
	MaxScore int32 = math.MaxInt32

	// quiescenceMaxPly bounds quiescence recursion. The source's crude
	// repetition guard checks whether the SFEN-history head advances;
	// this oracle's Position carries no history stack (ApplyMove
	// returns a fresh value, nothing is threaded across recursion), so
	// a ply cap serves the same role — stop exploring captures once
	// quiescence has gone far deeper than any real tactical sequence
	// needs.
	quiescenceMaxPly = 32
)

// Result is a search's return value: a bare score at interior nodes, or
// a score plus the move that produced it at the root.
type Result struct {
	Score int32
	Move  boardx.Move
}

// AlphaBeta implements spec.md §4.8: depth-limited negamax-like
// alpha-beta with dual polarity (an explicit maximizing bool rather
// than negamax sign-flipping, since Evaluate already returns a single
// White-positive score and spec.md's pseudocode — and its §8 property 4
// window-containment test — are both written in terms of max/min, not
// negated recursion).
func AlphaBeta(pos position.Position, p *sizeparams.Params, depth int, alpha, beta int32, maximizing, isRoot bool) Result {
	if depth <= 0 {
		score := Quiescence(pos, p, alpha, beta, maximizing, quiescenceMaxPly)
		if isRoot {
			return Result{Score: score, Move: firstLegalMove(pos)}
		}
		return Result{Score: score}
	}

	side := pos.SideToMove
	moves := pos.LegalMoves(side)
	if len(moves) == 0 {
		if pos.InCheck(side) {
			if maximizing {
				return Result{Score: MinScore}
			}
			return Result{Score: MaxScore}
		}
		return Result{Score: 0}
	}
	moves = OrderMoves(pos, moves, side, p)

	// Seeded to moves[0] rather than boardx.NoMove: when every line scores
	// exactly the mate sentinel (forced mate in every variation), no
	// comparison below is ever strictly true, and the root still owes the
	// protocol loop a legal move rather than reporting none.
	bestMove := moves[0]
	var bestScore int32
	if maximizing {
		bestScore = MinScore
	} else {
		bestScore = MaxScore
	}

	for _, m := range moves {
		next, _ := pos.ApplyMove(m)
		child := AlphaBeta(next, p, depth-1, alpha, beta, !maximizing, false)
		score := child.Score

		if maximizing {
			if score > bestScore {
				bestScore = score
				bestMove = m
			}
			if score > alpha {
				alpha = score
			}
		} else {
			if score < bestScore {
				bestScore = score
				bestMove = m
			}
			if score < beta {
				beta = score
			}
		}
		if beta <= alpha {
			break
		}
	}

	if isRoot {
		return Result{Score: bestScore, Move: bestMove}
	}
	return Result{Score: bestScore}
}

// firstLegalMove is the null-move synthesis spec.md §4.8's tie-break
// policy calls for when depth 0 is reached at the root: the search
// still owes the protocol loop a move to print.
func firstLegalMove(pos position.Position) boardx.Move {
	moves := pos.LegalMoves(pos.SideToMove)
	if len(moves) == 0 {
		return boardx.NoMove
	}
	return moves[0]
}

// Quiescence implements spec.md §4.9: stand-pat, then captures only,
// MVV-LVA ordered, skipping captures whose destination the enemy
// covers (a crude SEE-less safety filter).
func Quiescence(pos position.Position, p *sizeparams.Params, alpha, beta int32, maximizing bool, ply int) int32 {
	side := pos.SideToMove
	if pos.IsCheckmate(side) {
		if maximizing {
			return MinScore
		}
		return MaxScore
	}

	static := eval.Evaluate(pos, p)
	if maximizing {
		if static >= beta {
			return beta
		}
		if static > alpha {
			alpha = static
		}
	} else {
		if static <= alpha {
			return alpha
		}
		if static < beta {
			beta = static
		}
	}

	if ply <= 0 {
		return terminal(alpha, beta, maximizing)
	}

	captures := OrderMoves(pos, pos.Captures(side), side, p)
	enemyCoverage := pos.CoverageBB(side.Flip())

	for _, m := range captures {
		if enemyCoverage.IsSet(m.To) {
			continue
		}
		next, _ := pos.ApplyMove(m)
		score := Quiescence(next, p, alpha, beta, !maximizing, ply-1)

		if maximizing {
			if score >= beta {
				return beta
			}
			if score > alpha {
				alpha = score
			}
		} else {
			if score <= alpha {
				return alpha
			}
			if score < beta {
				beta = score
			}
		}
	}

	return terminal(alpha, beta, maximizing)
}

func terminal(alpha, beta int32, maximizing bool) int32 {
	if maximizing {
		return alpha
	}
	return beta
}
