package main

import (
	"github.com/spf13/cobra"

	"specfit/internal/fetch"
	"specfit/internal/logging"
)

var fetchFlags struct {
	dir      string
	urls     []string
	attempts uint
	workers  int
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the MGF datasets into the input directory",
	RunE: func(cmd *cobra.Command, _ []string) error {
		urls := fetchFlags.urls
		if len(urls) == 0 {
			urls = fetch.DefaultFiles
		}
		f := &fetch.Fetcher{
			Attempts: fetchFlags.attempts,
			Workers:  fetchFlags.workers,
			Log:      logging.New("fetch"),
		}
		return f.Run(cmd.Context(), fetchFlags.dir, urls)
	},
}

func init() {
	f := fetchCmd.Flags()
	f.StringVar(&fetchFlags.dir, "dir", "data", "Destination directory")
	f.StringSliceVar(&fetchFlags.urls, "url", nil, "Dataset URLs (default: the GNPS library snapshot)")
	f.UintVar(&fetchFlags.attempts, "attempts", 3, "Retry attempts per file")
	f.IntVar(&fetchFlags.workers, "workers", 4, "Concurrent downloads")
}
