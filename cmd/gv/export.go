package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alfredjeanlab/ganttview/internal/config"
	"github.com/alfredjeanlab/ganttview/internal/store/postgres"
	ganttsync "github.com/alfredjeanlab/ganttview/internal/sync"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all views, records, and snapshots as JSONL",
	Long: `Export connects directly to the database (GANTT_DATABASE_URL) and
writes every view, its current record batch, and its snapshots as JSONL
to stdout or the file given with --output.`,
	// Override PersistentPreRunE so we don't create a client connection.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		store, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer store.Close()

		w := os.Stdout
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		if err := ganttsync.ExportJSONL(context.Background(), store, w); err != nil {
			return fmt.Errorf("export: %w", err)
		}

		if output != "" {
			fmt.Fprintf(os.Stderr, "Exported to %s\n", output)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "write JSONL to this file instead of stdout")
}
