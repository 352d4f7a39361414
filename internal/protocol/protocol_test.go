package protocol

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shuuro/shuuro-engine/internal/boardx"
	"github.com/shuuro/shuuro-engine/internal/position"
	"github.com/shuuro/shuuro-engine/internal/search"
)

func mustPosition(t *testing.T, size int, sfen string) position.Position {
	t.Helper()
	g := boardx.NewGeometry(size)
	pos, err := position.SetSFEN(g, sfen)
	if err != nil {
		t.Fatalf("SetSFEN(%q): %v", sfen, err)
	}
	return pos
}

func TestLoopIsReady(t *testing.T) {
	pos := mustPosition(t, 8, "4k3/8/8/8/8/8/8/4K3 w")
	var out, errBuf bytes.Buffer
	l := New(pos, 2, &out, &errBuf)

	l.Run(strings.NewReader("isready\n"))

	if !strings.Contains(out.String(), "readyok") {
		t.Fatalf("expected readyok in output, got %q", out.String())
	}
}

func TestLoopQuitStopsTheLoop(t *testing.T) {
	pos := mustPosition(t, 8, "4k3/8/8/8/8/8/8/4K3 w")
	var out, errBuf bytes.Buffer
	l := New(pos, 2, &out, &errBuf)

	// If quit didn't stop the scan, the "isready" line after it would
	// produce a second readyok.
	l.Run(strings.NewReader("isready\nquit\nisready\n"))

	if strings.Count(out.String(), "readyok") != 1 {
		t.Fatalf("expected exactly one readyok, got output %q", out.String())
	}
}

func TestLoopGoPrintsBestMove(t *testing.T) {
	pos := mustPosition(t, 8, "4k3/8/8/8/4q3/2N5/8/4K3 w")
	var out, errBuf bytes.Buffer
	l := New(pos, 2, &out, &errBuf)

	l.Run(strings.NewReader("go\n"))

	if !strings.Contains(out.String(), "bestmove ") {
		t.Fatalf("expected a bestmove line, got %q", out.String())
	}
}

func TestLoopGoInvokesOnResult(t *testing.T) {
	pos := mustPosition(t, 8, "4k3/8/8/8/4q3/2N5/8/4K3 w")
	var out, errBuf bytes.Buffer
	l := New(pos, 2, &out, &errBuf)

	var called bool
	l.OnResult(func(p position.Position, res search.Result) {
		called = true
		if res.Move.IsNone() {
			t.Fatalf("onResult called with no move")
		}
	})

	l.Run(strings.NewReader("go\n"))

	if !called {
		t.Fatalf("expected onResult to be invoked")
	}
}

func TestLoopMoveAppliesLegalMove(t *testing.T) {
	pos := mustPosition(t, 8, "4k3/8/8/8/8/8/4N3/4K3 w")
	var out, errBuf bytes.Buffer
	l := New(pos, 2, &out, &errBuf)

	l.Run(strings.NewReader("move e2g3\n"))

	g := boardx.NewGeometry(8)
	to := g.SquareAt(6, 2)
	if l.pos.PieceAt(to).Type != boardx.Knight {
		t.Fatalf("expected knight on g3 after the move, board: %s", l.pos.String())
	}
	if errBuf.Len() != 0 {
		t.Fatalf("expected no diagnostics for a legal move, got %q", errBuf.String())
	}
}

func TestLoopMoveIgnoresIllegalMove(t *testing.T) {
	pos := mustPosition(t, 8, "4k3/8/8/8/8/8/4N3/4K3 w")
	var out, errBuf bytes.Buffer
	l := New(pos, 2, &out, &errBuf)
	before := l.pos

	l.Run(strings.NewReader("move a1h8\n"))

	if l.pos != before {
		t.Fatalf("expected position unchanged after an illegal move")
	}
	if !strings.Contains(errBuf.String(), "info string") {
		t.Fatalf("expected an info string diagnostic, got %q", errBuf.String())
	}
}

func TestLoopMoveIgnoresMalformedInput(t *testing.T) {
	pos := mustPosition(t, 8, "4k3/8/8/8/8/8/4N3/4K3 w")
	var out, errBuf bytes.Buffer
	l := New(pos, 2, &out, &errBuf)

	l.Run(strings.NewReader("move notasquare\n"))

	if !strings.Contains(errBuf.String(), "info string") {
		t.Fatalf("expected an info string diagnostic for malformed input, got %q", errBuf.String())
	}
}

func TestLoopPrintsBoardAfterEachCommand(t *testing.T) {
	pos := mustPosition(t, 8, "4k3/8/8/8/8/8/8/4K3 w")
	var out, errBuf bytes.Buffer
	l := New(pos, 2, &out, &errBuf)

	l.Run(strings.NewReader("isready\nisready\n"))

	if strings.Count(out.String(), "Side to move") != 2 {
		t.Fatalf("expected the board printed once per command line, got %q", out.String())
	}
}
