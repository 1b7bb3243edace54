package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"specfit/internal/display"
	"specfit/internal/dist"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the distribution families and their parameters",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		for _, f := range dist.Catalog() {
			fmt.Fprintf(out, "%-20s %-28s %s\n",
				f.Name(),
				display.FamilyName(f.Name()),
				strings.Join(f.ParamNames(), ", "))
		}
		fmt.Fprintf(out, "\n%d families\n", len(dist.Catalog()))
		return nil
	},
}
