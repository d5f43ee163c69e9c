package main

// root.go defines the seed command. It wipes episodes, guests and
// appearances and reloads them from the CSV export.

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"latenight/database"
	"latenight/internal/config"
	"latenight/internal/http-api/repository"
	"latenight/internal/logging"
	"latenight/internal/seed"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var (
	csvPath   string // path to the CSV export
	randSeed  uint64 // 0 picks a time-based seed
	clearOnly bool   // wipe tables without loading
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "seed - reload episodes, guests and appearances from CSV",
	Long: `seed clears the episodes, guests and appearances tables and loads them
from a CSV export whose rows are: year, occupation, show date, group, guest name.

One episode is created per distinct show date, one guest per distinct name,
and one appearance per row with a random rating between 1 and 4.

The database is taken from DATABASE_URL (or .env), the same as the API server.`,
	SilenceUsage: true,
	RunE:         runSeed,
}

// Execute is called by main.main()
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&csvPath, "file", "f", "server/seed.csv", "CSV file to load")
	rootCmd.Flags().Uint64Var(&randSeed, "seed", 0, "random seed for ratings (0 = time based)")
	rootCmd.Flags().BoolVar(&clearOnly, "clear", false, "only clear the tables")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	db, err := database.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if randSeed == 0 {
		randSeed = uint64(time.Now().UnixNano())
	}
	loader := seed.NewLoader(
		repository.NewSeedRepository(db),
		rand.New(rand.NewPCG(randSeed, randSeed>>1)),
		logger,
	)

	ctx := cmd.Context()
	if clearOnly {
		if err := loader.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Database cleared.")
		return nil
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	res, err := loader.Load(ctx, f)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(res))
	return nil
}

func renderSummary(res *repository.SeedResult) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Table", "Rows"})
	tw.AppendRows([]table.Row{
		{"episodes", res.Episodes},
		{"guests", res.Guests},
		{"appearances", res.Appearances},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})
	return tw.Render()
}
