package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alfredjeanlab/ganttview/internal/client"
	"github.com/alfredjeanlab/ganttview/internal/viewfile"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Manage saved gantt views",
}

var viewSaveCmd = &cobra.Command{
	Use:   "save <view-file>",
	Short: "Create or replace a view from a TOML definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := viewfile.Load(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		view, err := ganttClient.SaveView(context.Background(), def.Name, &client.SaveViewRequest{
			Description: def.Description,
			Config:      def.Config,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(view)
			return nil
		}
		fmt.Printf("Saved view %s\n", view.Name)
		return nil
	},
}

var viewShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view, err := ganttClient.GetView(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(view)
			return nil
		}
		printViewTable(view)
		return nil
	},
}

var viewListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved views",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := ganttClient.ListViews(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(resp)
			return nil
		}
		printViewListTable(resp.Views)
		return nil
	},
}

var viewDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved view and its records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ganttClient.DeleteView(context.Background(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted view %s\n", args[0])
		return nil
	},
}

var viewPullCmd = &cobra.Command{
	Use:   "pull <name> <view-file>",
	Short: "Write a saved view back to a TOML definition",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		view, err := ganttClient.GetView(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		def := &viewfile.Definition{
			Name:        view.Name,
			Description: view.Description,
			Config:      view.Config,
		}
		if err := viewfile.Save(args[1], def); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote view %s to %s\n", view.Name, args[1])
		return nil
	},
}

func init() {
	viewCmd.AddCommand(viewSaveCmd)
	viewCmd.AddCommand(viewShowCmd)
	viewCmd.AddCommand(viewListCmd)
	viewCmd.AddCommand(viewDeleteCmd)
	viewCmd.AddCommand(viewPullCmd)
}
