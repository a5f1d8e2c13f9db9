package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Inspect persisted gantt snapshots",
}

var snapshotListCmd = &cobra.Command{
	Use:   "list <view-name>",
	Short: "List snapshots for a view, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		resp, err := ganttClient.ListSnapshots(context.Background(), args[0], limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(resp)
			return nil
		}
		printSnapshotListTable(resp.Snapshots)
		return nil
	},
}

var snapshotShowCmd = &cobra.Command{
	Use:   "show <snapshot-id>",
	Short: "Show a snapshot's stored result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := ganttClient.GetSnapshot(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(snap)
			return nil
		}
		fmt.Printf("ID:         %s\n", snap.ID)
		fmt.Printf("View:       %s\n", snap.ViewName)
		fmt.Printf("Records:    %d\n", snap.RecordCount)
		fmt.Printf("Created At: %s\n", snap.CreatedAt.Format("2006-01-02 15:04:05"))
		if snap.CreatedBy != "" {
			fmt.Printf("Created By: %s\n", snap.CreatedBy)
		}
		fmt.Println()
		printResult(snap.Result, nil)
		return nil
	},
}

var snapshotDeleteCmd = &cobra.Command{
	Use:   "delete <snapshot-id>",
	Short: "Delete a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ganttClient.DeleteSnapshot(context.Background(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted snapshot %s\n", args[0])
		return nil
	},
}

func init() {
	snapshotListCmd.Flags().Int("limit", 20, "maximum snapshots to list")
	snapshotCmd.AddCommand(snapshotListCmd)
	snapshotCmd.AddCommand(snapshotShowCmd)
	snapshotCmd.AddCommand(snapshotDeleteCmd)
}
