package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alfredjeanlab/ganttview/internal/client"
	"github.com/spf13/cobra"
)

var ganttCmd = &cobra.Command{
	Use:   "gantt <view-name>",
	Short: "Generate a view's gantt chart from its current records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, _ := cmd.Flags().GetBool("snapshot")

		resp, err := ganttClient.GetGantt(context.Background(), args[0], &client.GanttOptions{
			Snapshot: snapshot,
			Actor:    actor,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(resp)
			return nil
		}
		printResult(resp.Result, resp.Stats)
		if resp.SnapshotID != "" {
			fmt.Printf("\nSnapshot saved: %s\n", resp.SnapshotID)
		}
		return nil
	},
}

func init() {
	ganttCmd.Flags().Bool("snapshot", false, "persist the result as a snapshot")
}
