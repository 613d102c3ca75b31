package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/martin00001313/TransactionProcessing/internal/adapter/csvio"
	postgresRepo "github.com/martin00001313/TransactionProcessing/internal/adapter/repository/postgres"
	"github.com/martin00001313/TransactionProcessing/internal/engine"
	"github.com/martin00001313/TransactionProcessing/internal/infrastructure/config"
	"github.com/martin00001313/TransactionProcessing/internal/infrastructure/logger"
	"github.com/martin00001313/TransactionProcessing/internal/infrastructure/postgres"
)

func newProcessCmd() *cobra.Command {
	var (
		output       string
		freezeOnLock bool
		strict       bool
	)

	cmd := &cobra.Command{
		Use:   "process <transactions.csv>",
		Short: "Apply an event stream and emit the final snapshot",
		Long: `Reads transaction events from the given CSV file ("-" for stdin),
applies them in order and writes the final per-client snapshot as CSV
to stdout. With DATABASE_URL set, the snapshot is also persisted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(args[0], output, freezeOnLock, strict)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the snapshot to a file instead of stdout")
	cmd.Flags().BoolVar(&freezeOnLock, "freeze-on-lock", false, "reject events against locked accounts")
	cmd.Flags().BoolVar(&strict, "strict", false, "enforce the dispute state machine")
	return cmd
}

func runProcess(inputPath, outputPath string, freezeOnLock, strict bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	runID := postgresRepo.NewULIDGenerator().Generate()
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}).
		With().Str("run_id", runID).Logger()

	policy := engine.Policy{
		FreezeOnLock:   cfg.FreezeOnLock || freezeOnLock,
		StrictDisputes: cfg.StrictDisputes || strict,
	}

	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	processor := engine.New(policy, log, nil)
	if err := processor.Consume(csvio.NewReader(bufio.NewReader(in))); err != nil {
		return fmt.Errorf("failed to read event stream: %w", err)
	}

	snapshot := processor.Snapshot()
	log.Info().Int("accounts", len(snapshot)).Msg("event stream processed")

	out, closeOut, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	if err := csvio.WriteSnapshot(out, snapshot); err != nil {
		closeOut()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	closeOut()

	if cfg.DatabaseURL != "" {
		if err := persistSnapshot(cfg, log, runID, processor); err != nil {
			return err
		}
	}
	return nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func persistSnapshot(cfg *config.Config, log zerolog.Logger, runID string, processor *engine.Processor) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.DatabaseTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.DatabaseURL, log); err != nil {
		return err
	}

	repo := postgresRepo.NewSnapshotRepository(pool, postgresRepo.NewRetrier(log))
	if err := repo.Save(ctx, runID, processor.Snapshot()); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}

	log.Info().Msg("snapshot persisted")
	return nil
}
