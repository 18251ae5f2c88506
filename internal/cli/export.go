package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export close approaches to a file",
		Long:  "Export close approaches matching the query flags. The format follows the --outfile extension: .csv, .json, or .db/.sqlite for a SQLite snapshot.",
		Run:   runExport,
	}
	addQueryFlags(cmd)
	cmd.Flags().StringP("outfile", "o", "", "Output file (required)")
	cmd.MarkFlagRequired("outfile")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	outfile, _ := cmd.Flags().GetString("outfile")
	runSelection(cmd, outfile)
}
