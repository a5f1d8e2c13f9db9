package main

import (
	"fmt"
	"os"

	"github.com/alfredjeanlab/ganttview/internal/gantt"
	"github.com/alfredjeanlab/ganttview/internal/model"
	"github.com/alfredjeanlab/ganttview/internal/source"
	"github.com/alfredjeanlab/ganttview/internal/viewfile"
	"github.com/spf13/cobra"
)

var transformCmd = &cobra.Command{
	Use:   "transform <records-file>",
	Short: "Transform a records file into tasks and links locally",
	Long: `Transform reads note records from a JSON or JSONL file, applies the
field mappings from a view file, and prints the resulting tasks, links,
and warnings. No server connection is required.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		viewFile, _ := cmd.Flags().GetString("view-file")
		if viewFile == "" {
			return fmt.Errorf("--view-file is required")
		}

		def, err := viewfile.Load(viewFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading view file: %v\n", err)
			os.Exit(1)
		}

		records, err := source.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading records: %v\n", err)
			os.Exit(1)
		}

		result := gantt.Transform(records, &def.Config)
		stats := model.ComputeStats(result)

		if jsonOutput {
			printJSON(map[string]any{"result": result, "stats": stats})
			return nil
		}
		printResult(result, stats)
		return nil
	},
}

func init() {
	transformCmd.Flags().String("view-file", "", "path to a TOML view definition")
}
