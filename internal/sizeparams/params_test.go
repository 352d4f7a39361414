package sizeparams

import "testing"

func TestBuildAllSizes(t *testing.T) {
	for _, size := range []int{6, 8, 12} {
		p := Build(size)
		if p.Geometry.Size != size {
			t.Fatalf("size %d: geometry mismatch", size)
		}
		if len(p.FileBB) != size || len(p.RankBB) != size {
			t.Fatalf("size %d: expected %d file/rank masks, got %d/%d", size, size, len(p.FileBB), len(p.RankBB))
		}
		for _, pst := range p.PST {
			for pt, table := range pst {
				if len(table) != size*size {
					t.Fatalf("size %d: PST[%d] has %d entries, want %d", size, pt, len(table), size*size)
				}
			}
		}
	}
}

func TestMidgameMinPerSize(t *testing.T) {
	cases := map[int]MidgameMin{
		6:  {Threshold: 6, Cap: 10},
		8:  {Threshold: 12, Cap: 24},
		12: {Threshold: 20, Cap: 30},
	}
	for size, want := range cases {
		got := Build(size).MidgameMin
		if got != want {
			t.Fatalf("size %d: MidgameMin = %+v, want %+v", size, got, want)
		}
	}
}

func TestPhaseWeightsVerbatim(t *testing.T) {
	want := [9]int32{0, 4, 2, 1, 1, 0, 3, 2, 1}
	got := Build(8).PhaseWeights
	if got != want {
		t.Fatalf("PhaseWeights = %v, want %v", got, want)
	}
}

func TestFileMasksDisjoint(t *testing.T) {
	p := Build(8)
	for i, fb := range p.FileBB {
		for j, other := range p.FileBB {
			if i == j {
				continue
			}
			if fb.And(other).IsAny() {
				t.Fatalf("file masks %d and %d overlap", i, j)
			}
		}
	}
}
