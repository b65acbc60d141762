package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/npillmayer/diacritics/internal/config"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const record = "00C0;LATIN CAPITAL LETTER A WITH GRAVE;Lu;0;L;0041 0300;;;;N;LATIN CAPITAL LETTER A GRAVE;;;00E0;\n"

func newTestDownloader(t *testing.T, srv *httptest.Server) *Downloader {
	t.Helper()
	cfg := &config.Config{
		UCDBaseURL:      srv.URL,
		UnicodeVersion:  "14.0.0",
		DataDir:         t.TempDir(),
		DownloadTimeout: 5 * time.Second,
		WorkersCount:    1,
	}
	d := New(cfg)
	d.Progress = io.Discard
	return d
}

func TestUnicodeDataIsCached(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "diacritics.fetch")
	defer teardown()
	//
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.URL.Path != "/14.0.0/ucd/UnicodeData.txt" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, record)
	}))
	defer srv.Close()
	d := newTestDownloader(t, srv)
	for range 2 {
		path, err := d.UnicodeData(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if filepath.Base(path) != "UnicodeData-14.0.0.txt" {
			t.Fatalf("unexpected local path %s", path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != record {
			t.Fatalf("unexpected file content %q", data)
		}
	}
	if n := requests.Load(); n != 1 {
		t.Fatalf("expected exactly one request, have %d", n)
	}
}

func TestDownloadBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	d := newTestDownloader(t, srv)
	if _, err := d.UnicodeData(context.Background()); err == nil {
		t.Fatalf("expected download to fail")
	}
	entries, err := os.ReadDir(d.cfg.DataDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("failed download left %d files behind", len(entries))
	}
}

func TestDownloadCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, record)
	}))
	defer srv.Close()
	d := newTestDownloader(t, srv)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := d.UnicodeData(ctx); err == nil {
		t.Fatalf("expected canceled download to fail")
	}
}
