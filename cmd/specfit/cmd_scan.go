package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"specfit/internal/logging"
	"specfit/internal/mgf"
)

var scanFlags struct {
	dir string
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Parse the MGF files structurally and report dataset statistics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := logging.New("scan")
		paths, err := filepath.Glob(filepath.Join(scanFlags.dir, "*.mgf"))
		if err != nil || len(paths) == 0 {
			return fmt.Errorf("no mgf files under %s", scanFlags.dir)
		}
		sort.Strings(paths)

		tw := table.NewWriter()
		tw.SetOutputMirror(cmd.OutOrStdout())
		tw.AppendHeader(table.Row{"file", "spectra", "peaks", "min mass", "max mass"})
		for _, path := range paths {
			f, err := os.Open(path)
			if err != nil {
				log.Warn("skipping unreadable file", "path", path, "error", err)
				continue
			}
			doc, err := mgf.ParseDocument(f)
			f.Close()
			if err != nil {
				log.Warn("skipping malformed file", "path", path, "error", err)
				continue
			}
			st := doc.Summarize()
			tw.AppendRow(table.Row{
				filepath.Base(path), st.Spectra, st.Peaks,
				fmt.Sprintf("%.4f", st.MinMass), fmt.Sprintf("%.4f", st.MaxMass),
			})
		}
		tw.Render()
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanFlags.dir, "dir", "data", "Directory holding *.mgf files")
}
