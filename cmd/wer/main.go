// Command wer is the WER Standings command-line tool.
//
// Usage:
//
//	wer fetch --out-dir internal/dataset/assets
//	wer standings --score 10:home=24 --score 10:away=17 --try 10:home
//	wer schedule --hide-locked
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/wer-standings/internal/config"
	"github.com/albapepper/wer-standings/internal/dataset"
	"github.com/albapepper/wer-standings/internal/league"
	"github.com/albapepper/wer-standings/internal/schedule"
	"github.com/albapepper/wer-standings/internal/scrape"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "wer",
		Short:        "Women's Elite Rugby standings tool",
		SilenceUsage: true,
	}

	root.AddCommand(fetchCmd())
	root.AddCommand(standingsCmd())
	root.AddCommand(scheduleCmd())
	return root
}

// --------------------------------------------------------------------------
// fetch command
// --------------------------------------------------------------------------

func fetchCmd() *cobra.Command {
	var (
		outDir       string
		standingsURL string
		scheduleURL  string
	)
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Refresh standings.json and schedule.json from the league website",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) error {
				if standingsURL == "" {
					standingsURL = cfg.StandingsURL
				}
				if scheduleURL == "" {
					scheduleURL = cfg.ScheduleURL
				}
				client := scrape.NewClient(cfg.FetchCache, 30, logger)

				start := time.Now()
				res, err := client.Fetch(ctx, standingsURL, scheduleURL)
				if err != nil {
					return err
				}
				written, err := res.WriteFiles(outDir)
				if err != nil {
					return err
				}
				logger.Info("Fetch finished",
					"duration", time.Since(start).Round(time.Millisecond),
					"standings_rows", res.Standings.Len(),
					"schedule_rows", res.Schedule.Len(),
					"files", written)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&outDir, "out-dir", "data", "Directory to write the datasets into")
	cmd.Flags().StringVar(&standingsURL, "standings-url", "", "Standings page (default STANDINGS_URL)")
	cmd.Flags().StringVar(&scheduleURL, "schedule-url", "", "Schedule page (default SCHEDULE_URL)")
	return cmd
}

// --------------------------------------------------------------------------
// standings command
// --------------------------------------------------------------------------

func standingsCmd() *cobra.Command {
	var (
		scores  []string
		tries   []string
		asJSON  bool
		noDelta bool
	)
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Print the standings, optionally with hypothetical results",
		Long: "Print the standings computed from the preseason table and every result.\n" +
			"Hypothetical results are entered with --score ROW:SIDE=N and --try ROW:SIDE,\n" +
			"where ROW is the schedule row shown by `wer schedule` and SIDE is home or away.",
		RunE: func(cmd *cobra.Command, args []string) error {
			edits, err := parseEdits(scores, tries)
			if err != nil {
				return err
			}
			return run(func(ctx context.Context, cfg *config.Config) error {
				season, err := loadSeason(cfg)
				if err != nil {
					return err
				}
				rules := cfg.Rules()
				base := league.Compute(season.Baseline, season.Games, rules)

				board := schedule.NewBoard(season.Games)
				if err := applyEdits(board, edits); err != nil {
					return err
				}
				table := league.Compute(season.Baseline, board.Games(), rules)

				out := cmd.OutOrStdout()
				if asJSON {
					return writeJSON(out, table)
				}
				var moves []league.Movement
				if len(edits) > 0 && !noDelta {
					moves = league.Delta(base, table)
				}
				printStandings(out, standingsLabel(len(edits)), table, moves)
				if len(edits) > 0 {
					printResults(out, board.Games(), editedRows(edits))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringArrayVar(&scores, "score", nil, "Hypothetical score, ROW:SIDE=N (repeatable)")
	cmd.Flags().StringArrayVar(&tries, "try", nil, "Toggle a try bonus, ROW:SIDE (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	cmd.Flags().BoolVar(&noDelta, "no-delta", false, "Omit movement against the current table")
	return cmd
}

func standingsLabel(edits int) string {
	if edits == 0 {
		return "Standings"
	}
	return fmt.Sprintf("Projected standings (%d edits)", edits)
}

// --------------------------------------------------------------------------
// schedule command
// --------------------------------------------------------------------------

func scheduleCmd() *cobra.Command {
	var (
		hideLocked bool
		asJSON     bool
		export     string
	)
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print schedule rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config) error {
				season, err := loadSeason(cfg)
				if err != nil {
					return err
				}
				if export != "" {
					return exportSchedule(export, season.Games)
				}
				rows := schedule.NewBoard(season.Games).Rows(hideLocked)
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), rows)
				}
				printSchedule(cmd.OutOrStdout(), rows)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&hideLocked, "hide-locked", false, "Only show games whose result can still be edited")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	cmd.Flags().StringVar(&export, "export", "", "Write the schedule with overrides folded in to this file, in the published dataset format")
	return cmd
}

// exportSchedule writes games as a schedule dataset. Only locked results are
// written as scores, so the file loads back with the same rows locked.
func exportSchedule(path string, games []league.GameRecord) error {
	data, err := json.Marshal(dataset.ScheduleTable(games))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export schedule: %w", err)
	}
	logger.Info("Schedule exported", "path", path, "rows", len(games))
	return nil
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// run handles config loading and context cancellation.
func run(fn func(ctx context.Context, cfg *config.Config) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Debug {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return fn(ctx, cfg)
}

func loadSeason(cfg *config.Config) (*dataset.Season, error) {
	season, err := dataset.LoadFiles(cfg.ScheduleFile, cfg.StandingsFile, cfg.OverridesFile)
	if err != nil {
		return nil, fmt.Errorf("load season: %w", err)
	}
	logger.Debug("Season loaded", "games", len(season.Games), "teams", len(season.Baseline))
	return season, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
