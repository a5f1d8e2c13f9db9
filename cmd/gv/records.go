package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alfredjeanlab/ganttview/internal/client"
	"github.com/alfredjeanlab/ganttview/internal/source"
	"github.com/spf13/cobra"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Manage a view's record batch",
}

var recordsPutCmd = &cobra.Command{
	Use:   "put <view-name> <records-file>",
	Short: "Replace a view's records from a JSON or JSONL file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := source.ReadFile(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading records: %v\n", err)
			os.Exit(1)
		}

		resp, err := ganttClient.ReplaceRecords(context.Background(), args[0], &client.ReplaceRecordsRequest{
			Records:    records,
			UploadedBy: actor,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(resp)
			return nil
		}
		fmt.Printf("Uploaded %d records to view %s\n", resp.RecordCount, resp.ViewName)
		return nil
	},
}

var recordsShowCmd = &cobra.Command{
	Use:   "show <view-name>",
	Short: "Show a view's current record batch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		batch, err := ganttClient.GetRecords(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(batch)
			return nil
		}
		fmt.Printf("View:        %s\n", batch.ViewName)
		fmt.Printf("Records:     %d\n", len(batch.Records))
		fmt.Printf("Uploaded At: %s\n", batch.UploadedAt.Format("2006-01-02 15:04:05"))
		if batch.UploadedBy != "" {
			fmt.Printf("Uploaded By: %s\n", batch.UploadedBy)
		}
		return nil
	},
}

func init() {
	recordsCmd.AddCommand(recordsPutCmd)
	recordsCmd.AddCommand(recordsShowCmd)
}
