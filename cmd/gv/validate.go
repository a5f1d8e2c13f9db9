package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alfredjeanlab/ganttview/internal/model"
	"github.com/alfredjeanlab/ganttview/internal/viewfile"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <view-file>",
	Short: "Validate a TOML view definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := viewfile.Load(args[0])
		if err == nil {
			fmt.Printf("%s is valid\n", args[0])
			return nil
		}

		var verr *model.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "%s is invalid:\n", args[0])
			for _, fe := range verr.Errors {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", fe.Field, fe.Message)
			}
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
		return nil
	},
}
