// Command shuuro-engine boots a single board size's search engine and
// runs the text protocol loop over stdin/stdout, per spec.md §6.3.
// Grounded on the teacher's cmd/chessplay-uci/main.go: a thin binary
// that wires one config/session-log/protocol triple together and
// calls Run. Unlike the teacher, there is no NNUE auto-discovery, no
// CPU profiling flag, no Lazy SMP hash table — all Non-goals.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shuuro/shuuro-engine/internal/boardx"
	"github.com/shuuro/shuuro-engine/internal/config"
	"github.com/shuuro/shuuro-engine/internal/position"
	"github.com/shuuro/shuuro-engine/internal/protocol"
	"github.com/shuuro/shuuro-engine/internal/search"
	"github.com/shuuro/shuuro-engine/internal/store"
)

var (
	size       = flag.Int("size", 8, "board size: 6, 8, or 12")
	configPath = flag.String("config", "shuuro-engine.toml", "path to the TOML config file")
)

func main() {
	flag.Parse()

	if *size != 6 && *size != 8 && *size != 12 {
		fmt.Fprintf(os.Stderr, "shuuro-engine: unsupported board size %d (want 6, 8, or 12)\n", *size)
		os.Exit(1)
	}

	cfg := config.Load(*configPath)
	sizeCfg, ok := cfg.Sizes[*size]
	if !ok || sizeCfg.StartingSFEN == "" {
		fmt.Fprintf(os.Stderr, "shuuro-engine: no starting sfen configured for size %d\n", *size)
		os.Exit(1)
	}

	g := boardx.NewGeometry(*size)
	pos, err := position.SetSFEN(g, sizeCfg.StartingSFEN)
	if err != nil {
		// Startup SFEN parse failure is fatal, per spec.md §7.
		fmt.Fprintf(os.Stderr, "shuuro-engine: invalid starting sfen: %v\n", err)
		os.Exit(1)
	}

	var log *store.Log
	if cfg.DataDir != "" {
		log, err = store.OpenAt(cfg.DataDir)
	} else {
		log, err = store.Open()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "shuuro-engine: session log unavailable: %v\n", err)
		log = nil
	}
	if log != nil {
		defer log.Close()
	}

	loop := protocol.New(pos, sizeCfg.Depth, os.Stdout, os.Stderr)
	if log != nil {
		loop.OnResult(func(p position.Position, res search.Result) {
			_ = log.Record(store.Entry{
				Size:     *size,
				SFEN:     p.SFEN(),
				Depth:    sizeCfg.Depth,
				BestMove: res.Move.ToSFEN(p.Geometry),
				Score:    res.Score,
			})
		})
	}

	fmt.Fprint(os.Stdout, pos.String())
	loop.Run(os.Stdin)
}
