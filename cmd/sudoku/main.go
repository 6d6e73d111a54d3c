// Command sudoku is the engine's CLI: solve a board, generate one under a
// chosen rule set, run the rule ladder over a small built-in test corpus,
// or step through a solve one rule at a time.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"sudoku-engine/internal/core"
	"sudoku-engine/internal/generator"
	"sudoku-engine/internal/render"
	"sudoku-engine/internal/rules"
	"sudoku-engine/internal/solver"
	"sudoku-engine/pkg/config"
)

func main() {
	help := flag.Bool("h", false, "print usage and exit")
	mode := flag.String("m", "", "mode: solve, generate, test, step")
	board := flag.String("b", "", "inline board text (\\n for newlines)")
	pace := flag.Bool("t", false, "pace step mode between moves")
	auto := flag.Bool("a", false, "auto-advance on a timer instead of blocking for Enter (step mode)")
	filter := flag.String("g", "", "rule filter, e.g. N1H1LC (empty = full ladder)")
	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	reader := bufio.NewReader(os.Stdin)
	m := *mode
	switch m {
	case "solve", "generate", "test", "step":
	default:
		fmt.Fprint(os.Stderr, "mode [solve|generate|test|step]: ")
		line, _ := reader.ReadString('\n')
		m = strings.TrimSpace(line)
	}

	enabled, err := rules.ParseFilter(orDefault(*filter, cfg.DefaultRuleFilter))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid rule filter")
	}

	switch m {
	case "solve":
		runSolve(log, reader, *board, enabled)
	case "generate":
		runGenerate(log, reader, *filter)
	case "test":
		runTest(log, enabled)
	case "step":
		runStep(log, reader, *board, enabled, cfg, *pace, *auto)
	default:
		log.Fatal().Str("mode", m).Msg("unrecognised mode")
	}
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func readBoard(log zerolog.Logger, reader *bufio.Reader, board string) *core.Grid {
	text := board
	if text == "" {
		fmt.Fprintln(os.Stderr, "board text (end with a blank line):")
		var lines []string
		for {
			line, err := reader.ReadString('\n')
			line = strings.TrimRight(line, "\n")
			if line == "" || err != nil {
				break
			}
			lines = append(lines, line)
		}
		text = strings.Join(lines, "\n")
	} else {
		text = strings.ReplaceAll(text, `\n`, "\n")
	}
	g, err := core.Parse(text)
	if err != nil {
		log.Fatal().Err(err).Msg("could not parse board")
	}
	return g
}

func runSolve(log zerolog.Logger, reader *bufio.Reader, board string, enabled []rules.Rule) {
	g := readBoard(log, reader, board)
	solved, moves, err := solver.Solve(g, enabled)
	if err != nil {
		log.Fatal().Err(err).Msg("solver hit an invariant violation")
	}
	fmt.Println(render.Card(g))
	if solved {
		fmt.Printf("solved in %d moves\n", len(moves))
	} else {
		fmt.Printf("stalled: %.0f%% complete, no further rule applies\n", g.PercentComplete()*100)
	}
}

// runGenerate asks which rules are permitted (spec's generate mode prompt)
// when the caller didn't already supply -g, then produces a puzzle that
// stays solvable under exactly that rule set.
func runGenerate(log zerolog.Logger, reader *bufio.Reader, filterFlag string) {
	filterVal := filterFlag
	if filterVal == "" {
		fmt.Fprint(os.Stderr, "rules permitted, e.g. N1H1LC (blank = full ladder): ")
		line, _ := reader.ReadString('\n')
		filterVal = strings.TrimSpace(line)
	}
	enabled, err := rules.ParseFilter(filterVal)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid rule filter")
	}

	g, err := generator.Generate(enabled, time.Now().UnixNano())
	if err != nil {
		log.Fatal().Err(err).Msg("generation failed")
	}
	fmt.Println(render.Card(g))
	fmt.Printf("givens: %d\n", g.StartingCellCount)
}

func runTest(log zerolog.Logger, enabled []rules.Rule) {
	for _, tb := range TestBoards {
		g, err := core.Parse(tb.Board)
		if err != nil {
			log.Error().Err(err).Str("name", tb.Name).Msg("test board failed to parse")
			continue
		}
		solved, moves, err := solver.Solve(g, enabled)
		status := "solved"
		if err != nil {
			status = "error: " + err.Error()
		} else if !solved {
			status = fmt.Sprintf("stalled at %.0f%%", g.PercentComplete()*100)
		}
		fmt.Printf("%-20s %-20s moves=%d\n", tb.Name, status, len(moves))
	}
}

func runStep(log zerolog.Logger, reader *bufio.Reader, board string, enabled []rules.Rule, cfg *config.Config, pace, auto bool) {
	g := readBoard(log, reader, board)
	g.AutoPromote = false

	ctx := context.Background()
	onStep := func(g *core.Grid, step int, move *core.Move) error {
		fmt.Printf("step %d: %s\n", step, move.Explanation)
		fmt.Println(render.Card(g))
		g.ClearDirty()
		if !pace {
			return nil
		}
		if auto {
			time.Sleep(cfg.PacingInterval)
			return nil
		}
		fmt.Fprint(os.Stderr, "press Enter to continue...")
		_, _ = reader.ReadString('\n')
		return nil
	}

	solved, moves, err := solver.StepSolve(ctx, g, enabled, onStep)
	if err != nil {
		log.Fatal().Err(err).Msg("solver hit an invariant violation")
	}
	if solved {
		fmt.Printf("solved in %d steps\n", len(moves))
	} else {
		fmt.Printf("stalled: %.0f%% complete, no further rule applies\n", g.PercentComplete()*100)
	}
}
