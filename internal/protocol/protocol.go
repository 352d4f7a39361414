// Package protocol implements the line-oriented, UCI-derived text
// protocol spec.md §6.1 describes: a bufio.Scanner loop over stdin,
// dispatching on the first whitespace-separated token, grounded on the
// teacher's internal/uci/uci.go shape (scan loop, switch on command,
// info string diagnostics on stderr) but stripped to the five commands
// the spec actually names — no search options, no tablebase/NNUE
// configuration, no ponder/stop, no position-history/repetition
// bookkeeping (this oracle's Position carries no history at all).
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shuuro/shuuro-engine/internal/boardx"
	"github.com/shuuro/shuuro-engine/internal/position"
	"github.com/shuuro/shuuro-engine/internal/search"
	"github.com/shuuro/shuuro-engine/internal/sizeparams"
)

// Loop is the command-level regime spec.md §7 describes: malformed
// `move` input is silently ignored (with an info string diagnostic on
// stderr) and the next line is read; unknown commands are a no-op.
// Depth is the fixed search depth (3 or 4 per spec.md §6.1, chosen by
// board size in internal/config). Loop returns when the input stream
// is exhausted or a `quit` line is read.
type Loop struct {
	pos    position.Position
	params sizeparams.Params
	depth  int

	out io.Writer
	err io.Writer

	// onResult, if set, is called after every successful `go` command
	// with the move and score it produced — the hook internal/store
	// uses to persist a session log without this package importing it.
	onResult func(pos position.Position, res search.Result)
}

// New returns a Loop ready to run, seeded with the starting position,
// its size's Params, and the fixed search depth.
func New(pos position.Position, depth int, out, err io.Writer) *Loop {
	return &Loop{
		pos:    pos,
		params: sizeparams.Build(pos.Geometry.Size),
		depth:  depth,
		out:    out,
		err:    err,
	}
}

// OnResult installs a callback invoked after each completed `go`.
func (l *Loop) OnResult(fn func(pos position.Position, res search.Result)) {
	l.onResult = fn
}

// Run reads commands from in until EOF or `quit`, printing the board
// after every line per spec.md §6.1.
func (l *Loop) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if l.dispatch(line) {
			return
		}
		fmt.Fprint(l.out, l.pos.String())
	}
}

// dispatch handles one command line, returning true if the loop should
// exit (the `quit` command).
func (l *Loop) dispatch(line string) bool {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "isready":
		fmt.Fprintln(l.out, "readyok")
	case "quit":
		return true
	case "position":
		// Reserved per spec.md §6.1: the current implementation only
		// echoes the board, which the Run loop already does after
		// every command.
	case "go":
		l.handleGo()
	case "move":
		l.handleMove(args)
	default:
		// Unknown command: no-op.
	}
	return false
}

// handleGo runs alpha-beta to the configured fixed depth and prints
// bestmove <sfen-move>, per spec.md §6.1.
func (l *Loop) handleGo() {
	maximizing := l.pos.SideToMove == boardx.White
	res := search.AlphaBeta(l.pos, &l.params, l.depth, search.MinScore, search.MaxScore, maximizing, true)
	if res.Move.IsNone() {
		fmt.Fprintln(l.out, "bestmove none")
		return
	}
	fmt.Fprintf(l.out, "bestmove %s\n", res.Move.ToSFEN(l.pos.Geometry))
	if l.onResult != nil {
		l.onResult(l.pos, res)
	}
}

// handleMove parses an SFEN move and applies it, per spec.md §6.1 and
// §7's command-level recoverable regime: a malformed move is silently
// ignored after an info string diagnostic.
func (l *Loop) handleMove(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(l.err, "info string move: missing argument")
		return
	}
	m, err := boardx.MoveFromSFEN(args[0], l.pos.Geometry)
	if err != nil {
		fmt.Fprintf(l.err, "info string move: %v\n", err)
		return
	}
	legal := false
	for _, candidate := range l.pos.LegalMoves(l.pos.SideToMove) {
		if candidate == m {
			legal = true
			break
		}
	}
	if !legal {
		fmt.Fprintf(l.err, "info string move: illegal move %s\n", args[0])
		return
	}
	next, _ := l.pos.ApplyMove(m)
	l.pos = next
}
