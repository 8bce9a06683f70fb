// xiangqibench plays out a self-play game between two configured
// difficulties and reports search statistics, for benchmarking and manual
// sanity-checking of the engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/tranvietanh/xiangqi/pkg/board"
	"github.com/tranvietanh/xiangqi/pkg/config"
	"github.com/tranvietanh/xiangqi/pkg/engine"
)

var version = build.NewVersion(0, 1, 0)

var (
	red        = flag.String("red", "hard", "Difficulty for Red: easy, medium or hard")
	black      = flag.String("black", "medium", "Difficulty for Black: easy, medium or hard")
	maxPlies   = flag.Int("max-plies", 200, "Maximum plies before the game is declared a draw")
	configPath = flag.String("config", "", "Path to a TOML config file (default built-in profiles)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: xiangqibench [options]

xiangqibench plays a self-play game between two difficulty levels and
reports the result along with per-move search statistics.

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	redDiff, err := parseDifficulty(*red)
	if err != nil {
		logw.Exitf(ctx, "Invalid -red: %v", err)
	}
	blackDiff, err := parseDifficulty(*black)
	if err != nil {
		logw.Exitf(ctx, "Invalid -black: %v", err)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logw.Exitf(ctx, "Invalid -config: %v", err)
		}
		cfg = loaded
	}

	e := engine.New(ctx, "xiangqibench", "tranvietanh", engine.WithConfig(cfg))
	logw.Infof(ctx, "xiangqibench %v: red=%v black=%v", version, redDiff, blackDiff)

	start := time.Now()
	plies := 0
	for ; plies < *maxPlies; plies++ {
		b := e.Board()
		side := b.Turn()

		diff := blackDiff
		if side == board.Red {
			diff = redDiff
		}

		moveStart := time.Now()
		m, ok, err := e.Play(ctx, diff)
		if err != nil {
			logw.Exitf(ctx, "Engine error: %v", err)
		}
		if !ok {
			outcome := "stalemate"
			if b.IsInCheck(side) {
				outcome = "checkmate"
			}
			logw.Infof(ctx, "Game over after %v plies: %v, %v to move has no legal move", plies, outcome, side)
			break
		}

		logw.Infof(ctx, "Ply %v: %v plays %v (%v)", plies, side, m, time.Since(moveStart))
	}

	logw.Infof(ctx, "Finished: plies=%v, total=%v", plies, time.Since(start))
}

func parseDifficulty(s string) (config.Difficulty, error) {
	switch s {
	case "easy":
		return config.Easy, nil
	case "medium":
		return config.Medium, nil
	case "hard":
		return config.Hard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}
