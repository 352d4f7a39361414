// Package sizeparams builds the per-board-size constant tables the
// evaluator reads from: piece values, piece-square tables, phase
// weights, file/rank/neighbor-file masks, player territory, and passed-
// pawn zones. One Params value is built once per supported board size
// at program start and never mutated afterward (spec.md §5).
package sizeparams

import "github.com/shuuro/shuuro-engine/internal/boardx"

// MidgameMin controls the mid/end switch (Threshold) and the saturation
// cap of the game-phase counter (Cap), per spec.md §3.
type MidgameMin struct {
	Threshold int32
	Cap       int32
}

// Params holds every size-specific table the evaluator consults.
type Params struct {
	Geometry boardx.Geometry

	// PieceValues/EndgamePieceValues are indexed [color][pieceType],
	// pieceType in [0, boardx.NumPieceTypes).
	PieceValues        [2][9]int32
	EndgamePieceValues [2][9]int32

	// PST/PSTEndgame are indexed [color][pieceType][square].
	PST        [2][9][]int32
	PSTEndgame [2][9][]int32

	PhaseWeights [9]int32
	MidgameMin   MidgameMin

	// NeighborFiles[file] is the bitboard of the <=2 files adjacent to
	// file. FileBB[file]/RankBB[rank] are plain file/rank masks.
	NeighborFiles []boardx.BitBoard
	FileBB        []boardx.BitBoard
	RankBB        []boardx.BitBoard

	// PlayerTerritory[color] is the half of the board nominally owned
	// by that color.
	PlayerTerritory [2]boardx.BitBoard

	// PassedPawnZones[color][square] is the precomputed PASSED mask
	// used by count_passed_pawns: the file plus neighbor files, from
	// square up to the promotion edge inclusive.
	PassedPawnZones [2][]boardx.BitBoard
}

// pieceTypeIndex maps a boardx.PieceType to its slot in the 9-wide
// material/PST tables (Plinth is terrain and has no slot).
func pieceTypeIndex(pt boardx.PieceType) int {
	return int(pt)
}

// Build constructs the Params for a board of the given side length.
// size must be 6, 8, or 12.
func Build(size int) Params {
	g := boardx.NewGeometry(size)
	p := Params{Geometry: g}

	p.FileBB = buildFileMasks(g)
	p.RankBB = buildRankMasks(g)
	p.NeighborFiles = buildNeighborFiles(g, p.FileBB)
	p.PlayerTerritory = buildPlayerTerritory(g, p.RankBB)
	p.PassedPawnZones = buildPassedPawnZones(g, p.FileBB, p.NeighborFiles)

	p.PieceValues, p.EndgamePieceValues = buildPieceValues(size)
	p.PhaseWeights = phaseWeights()
	p.MidgameMin = midgameMin(size)
	p.PST, p.PSTEndgame = buildPST(g)

	return p
}

func buildFileMasks(g boardx.Geometry) []boardx.BitBoard {
	out := make([]boardx.BitBoard, g.Size)
	for file := 0; file < g.Size; file++ {
		var bb boardx.BitBoard
		for rank := 0; rank < g.Size; rank++ {
			bb.Set(g.SquareAt(file, rank))
		}
		out[file] = bb
	}
	return out
}

func buildRankMasks(g boardx.Geometry) []boardx.BitBoard {
	out := make([]boardx.BitBoard, g.Size)
	for rank := 0; rank < g.Size; rank++ {
		var bb boardx.BitBoard
		for file := 0; file < g.Size; file++ {
			bb.Set(g.SquareAt(file, rank))
		}
		out[rank] = bb
	}
	return out
}

// buildNeighborFiles ports original_source's generate_neighbor_files:
// each file's mask is the file(s) immediately to its left and right.
func buildNeighborFiles(g boardx.Geometry, fileBB []boardx.BitBoard) []boardx.BitBoard {
	out := make([]boardx.BitBoard, g.Size)
	for file := 0; file < g.Size; file++ {
		var bb boardx.BitBoard
		if file > 0 {
			bb = bb.Or(fileBB[file-1])
		}
		if file < g.Size-1 {
			bb = bb.Or(fileBB[file+1])
		}
		out[file] = bb
	}
	return out
}

// buildPlayerTerritory ports original_source's generate_player_sides:
// the bottom half of ranks belongs to White, the top half to Black.
func buildPlayerTerritory(g boardx.Geometry, rankBB []boardx.BitBoard) [2]boardx.BitBoard {
	half := g.Size / 2
	var territory [2]boardx.BitBoard
	for rank := 0; rank < half; rank++ {
		territory[boardx.White.Index()] = territory[boardx.White.Index()].Or(rankBB[rank])
	}
	for rank := half; rank < g.Size; rank++ {
		territory[boardx.Black.Index()] = territory[boardx.Black.Index()].Or(rankBB[rank])
	}
	return territory
}

// buildPassedPawnZones ports original_source's generate_passed_pawns_bb:
// for every non-edge-rank square, the zone is the square's file plus its
// neighbor files, from the square up to (and including) the promotion
// edge rank.
func buildPassedPawnZones(g boardx.Geometry, fileBB, neighborFiles []boardx.BitBoard) [2][]boardx.BitBoard {
	var zones [2][]boardx.BitBoard
	zones[boardx.White.Index()] = make([]boardx.BitBoard, g.Squares())
	zones[boardx.Black.Index()] = make([]boardx.BitBoard, g.Squares())

	for _, color := range [2]boardx.Color{boardx.White, boardx.Black} {
		for idx := 0; idx < g.Squares(); idx++ {
			sq := boardx.Square(idx)
			rank := g.RankOf(sq)
			if rank == 0 || rank == g.Size-1 {
				continue
			}
			file := g.FileOf(sq)
			cols := neighborFiles[file].Or(fileBB[file])

			var zone boardx.BitBoard
			if color == boardx.White {
				for r := rank; r < g.Size; r++ {
					zone = zone.Or(cols.And(rankMaskFor(g, r)))
				}
			} else {
				for r := rank; r >= 0; r-- {
					zone = zone.Or(cols.And(rankMaskFor(g, r)))
				}
			}
			zones[color.Index()][idx] = zone
		}
	}
	return zones
}

func rankMaskFor(g boardx.Geometry, rank int) boardx.BitBoard {
	var bb boardx.BitBoard
	for file := 0; file < g.Size; file++ {
		bb.Set(g.SquareAt(file, rank))
	}
	return bb
}

// phaseWeights is PHASE_WEIGHTS from original_source/src/engine.rs,
// indexed King, Queen, Rook, Bishop, Knight, Pawn, Chancellor,
// ArchBishop, Giraffe.
func phaseWeights() [9]int32 {
	return [9]int32{0, 4, 2, 1, 1, 0, 3, 2, 1}
}

// midgameMin reproduces original_source's per-size (threshold, cap)
// pairs verbatim: engine6/search.rs, engine8/search.rs, and
// engine12/search.rs each hard-code their own midgame_min().
func midgameMin(size int) MidgameMin {
	switch size {
	case 6:
		return MidgameMin{Threshold: 6, Cap: 10}
	case 8:
		return MidgameMin{Threshold: 12, Cap: 24}
	case 12:
		return MidgameMin{Threshold: 20, Cap: 30}
	default:
		return MidgameMin{Threshold: 12, Cap: 24}
	}
}
