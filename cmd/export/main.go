// Package main provides the one-off spreadsheet export of practice data.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/interviewprep/practice-service/internal/config"
	"github.com/interviewprep/practice-service/internal/repositories/postgres"
	"github.com/interviewprep/practice-service/internal/services"
	"github.com/interviewprep/practice-service/internal/utils"
	"github.com/interviewprep/practice-service/pkg"
)

var (
	outputDir     string
	exportTimeout time.Duration
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "export",
		Short:         "Export profiles, questions and practice sessions to an Excel workbook",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runExportCmd,
	}
	rootCmd.Flags().StringVar(&outputDir, "dir", "", "output directory (default: EXPORT_DIR)")
	rootCmd.Flags().DurationVar(&exportTimeout, "timeout", 5*time.Minute, "maximum time allowed for the export")
	return rootCmd
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if outputDir != "" {
		cfg.ExportDir = outputDir
	}

	logger := utils.NewLogger(cfg.Environment)
	err = runExport(cmd.Context(), cfg, logger, cmd.OutOrStdout())
	switch {
	case errors.Is(err, services.ErrNothingToExport):
		fmt.Fprintln(cmd.ErrOrStderr(), "Export failed: no data could be read from the database")
	case err != nil:
		fmt.Fprintf(cmd.ErrOrStderr(), "Export failed: %v\n", err)
	}
	return err
}

func runExport(ctx context.Context, cfg *config.Config, logger utils.Logger, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		return err
	}

	publisher, err := cfg.Events.CreateEventPublisher(logger.Slog())
	if err != nil {
		return err
	}
	defer publisher.Close()

	ctx, cancel := context.WithTimeout(ctx, exportTimeout)
	defer cancel()

	exportService := services.NewExportService(postgres.NewRepository(db), publisher, logger.Slog())
	result, err := exportService.ExportWorkbook(ctx)
	if err != nil {
		return err
	}

	path, err := writeExport(cfg.ExportDir, result)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Exported practice data to %s\n", path)
	for _, sheet := range []string{services.SheetProfiles, services.SheetQuestions, services.SheetSessions} {
		fmt.Fprintf(out, "  %-10s %d\n", sheet, result.RowCounts[sheet])
	}
	return nil
}

func writeExport(dir string, result *services.ExportResult) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, result.Filename)
	if err := os.WriteFile(path, result.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}
