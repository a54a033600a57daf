package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sales-dashboard/internal/config"
	"sales-dashboard/internal/datastore"
	"sales-dashboard/internal/models"
	"sales-dashboard/internal/observability"
)

type exportOptions struct {
	format string
	out    string
}

func newExportCmd() *cobra.Command {
	opts := exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the enriched transaction table to CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "csv", "output format: csv or xlsx")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "-", "output file, - for stdout")

	return cmd
}

func exportWriter(format string) (func(io.Writer, []models.EnrichedRecord) error, error) {
	switch format {
	case "csv":
		return datastore.WriteCSV, nil
	case "xlsx":
		return datastore.WriteXLSX, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q, want csv or xlsx", format)
	}
}

func runExport(cmd *cobra.Command, opts exportOptions) error {
	write, err := exportWriter(opts.format)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// stdout may carry the export itself
	logger := observability.NewLogger(cfg.Logger, cmd.ErrOrStderr())

	ds, err := loadDataset(cmd.Context(), cfg, logger, nil)
	if err != nil {
		return fmt.Errorf("failed to load CSV data: %w", err)
	}

	if opts.out == "-" {
		return write(cmd.OutOrStdout(), ds.Records)
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.out, err)
	}
	if err := write(f, ds.Records); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", opts.out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", opts.out, err)
	}

	logger.Info("export written", "format", opts.format, "path", opts.out, "records", len(ds.Records))
	return nil
}
