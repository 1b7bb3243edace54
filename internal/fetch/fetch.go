// Package fetch downloads the MGF datasets a run consumes.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// DefaultFiles is the default GNPS spectral library snapshot.
var DefaultFiles = []string{
	"https://gnps-external.ucsd.edu/gnpslibrary/GNPS-LIBRARY.mgf",
	"https://gnps-external.ucsd.edu/gnpslibrary/GNPS-SELLECKCHEM-FDA-PART1.mgf",
	"https://gnps-external.ucsd.edu/gnpslibrary/GNPS-SELLECKCHEM-FDA-PART2.mgf",
}

// Fetcher downloads dataset files into a local directory, skipping files
// already present.
type Fetcher struct {
	Client   *http.Client
	Attempts uint
	Workers  int
	Log      *slog.Logger
}

// Run downloads every url into dir. Each file is retried independently;
// failures are aggregated so one bad mirror does not mask the rest.
func (f *Fetcher) Run(ctx context.Context, dir string, urls []string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("dataset dir: %w", err)
	}

	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Minute}
	}
	attempts := f.Attempts
	if attempts == 0 {
		attempts = 3
	}
	workers := f.Workers
	if workers <= 0 {
		workers = 4
	}
	log := f.Log
	if log == nil {
		log = slog.Default()
	}

	errs := make([]error, len(urls))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			dest := filepath.Join(dir, filepath.Base(url))
			if _, err := os.Stat(dest); err == nil {
				log.Info("dataset present, skipping", "file", dest)
				return nil
			}
			err := retry.Do(
				func() error { return download(ctx, client, url, dest) },
				retry.Attempts(attempts),
				retry.Context(ctx),
				retry.OnRetry(func(n uint, err error) {
					log.Warn("download retry", "url", url, "attempt", n+1, "error", err)
				}),
			)
			if err != nil {
				errs[i] = fmt.Errorf("fetch %s: %w", url, err)
			} else {
				log.Info("dataset downloaded", "file", dest)
			}
			return nil
		})
	}
	_ = g.Wait()

	var merr *multierror.Error
	for _, err := range errs {
		merr = multierror.Append(merr, err)
	}
	return merr.ErrorOrNil()
}

// download streams one url into dest via a temp file so partial
// downloads never look complete.
func download(ctx context.Context, client *http.Client, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".fetch-*")
	if err != nil {
		return err
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), dest)
}
