package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify FILE",
	Short: "Show how a document scores as a CV and as a job description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tk, err := newToolkit(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer tk.logger.Sync()

		return printJSON(cmd.OutOrStdout(), tk.match.Classify(tk.match.ReadText(args[0])))
	},
}

var detectCmd = &cobra.Command{
	Use:   "detect FILE",
	Short: "Print CV, JD or UNKNOWN for a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tk, err := newToolkit(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer tk.logger.Sync()

		_, err = fmt.Fprintln(cmd.OutOrStdout(), tk.engine.DetectDocumentType(tk.match.ReadText(args[0])))
		return err
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(detectCmd)
}
