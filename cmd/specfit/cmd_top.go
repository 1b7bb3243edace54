package main

import (
	"github.com/spf13/cobra"

	"specfit/internal/evaluate"
)

var topFlags struct {
	results string
	count   int
}

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Print the best-scoring families from a results table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return evaluate.RenderTop(cmd.OutOrStdout(), topFlags.results, topFlags.count)
	},
}

func init() {
	f := topCmd.Flags()
	f.StringVar(&topFlags.results, "results", evaluate.DefaultOutput, "Results CSV to summarize")
	f.IntVar(&topFlags.count, "count", 10, "Rows per sample")
}
