// Package fetch downloads files of the Unicode Character Database and caches
// them in a local data directory.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/npillmayer/diacritics/internal/config"
	"github.com/npillmayer/schuko/tracing"
	"github.com/schollz/progressbar/v3"
)

// tracer writes to trace with key 'diacritics.fetch'
func tracer() tracing.Trace {
	return tracing.Select("diacritics.fetch")
}

type Downloader struct {
	client   *http.Client
	cfg      *config.Config
	Progress io.Writer // progress bar output, os.Stderr by default
}

func New(cfg *config.Config) *Downloader {
	return &Downloader{
		client: &http.Client{
			Timeout: cfg.DownloadTimeout,
		},
		cfg:      cfg,
		Progress: os.Stderr,
	}
}

// UnicodeData returns the path of a local copy of UnicodeData.txt for the
// configured Unicode version, downloading it if it is not yet cached.
func (d *Downloader) UnicodeData(ctx context.Context) (string, error) {
	name := fmt.Sprintf("UnicodeData-%s.txt", d.cfg.UnicodeVersion)
	return d.DownloadFile(ctx, d.cfg.UnicodeDataURL(), name)
}

// DownloadFile fetches url into the data directory under filename and
// returns the local path. An existing file is not downloaded again.
func (d *Downloader) DownloadFile(ctx context.Context, url, filename string) (string, error) {
	localPath := filepath.Join(d.cfg.DataDir, filename)
	if err := os.MkdirAll(d.cfg.DataDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data dir: %w", err)
	}
	if _, err := os.Stat(localPath); err == nil {
		tracer().Infof("using cached %s", localPath)
		return localPath, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	tracer().Infof("downloading %s", url)
	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download %s: bad status %s", url, resp.Status)
	}

	// download into a temporary file, so that an interrupted download is
	// never mistaken for a cached copy
	partial := localPath + ".part"
	out, err := os.Create(partial)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	bar := progressbar.NewOptions64(
		resp.ContentLength,
		progressbar.OptionSetWriter(d.Progress),
		progressbar.OptionSetDescription(fmt.Sprintf("Downloading %s", filename)),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(50),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(d.Progress)
		}),
		progressbar.OptionSpinnerType(14),
	)
	_, err = io.Copy(io.MultiWriter(out, bar), resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(partial)
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	_ = bar.Finish()
	if err := os.Rename(partial, localPath); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	return localPath, nil
}
