// Command gendiacritics generates the diacritics mapping from the Unicode
// Character Database.
//
// Without -ucd it downloads UnicodeData.txt for the configured Unicode
// version into DATA_DIR (see internal/config) and reuses the cached copy on
// later runs:
//
//	go run ./cmd/gendiacritics
//	go run ./cmd/gendiacritics -ucd UnicodeData.txt -go table.go -pkg mytable
//
// Output: internal/data/mapping.txt (commit this file). With -go the table
// is additionally written as Go source declaring a static phf.Map.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/npillmayer/diacritics/decompose"
	"github.com/npillmayer/diacritics/internal/config"
	"github.com/npillmayer/diacritics/internal/fetch"
	"github.com/npillmayer/diacritics/internal/tables"
	"github.com/npillmayer/diacritics/phf"
	"github.com/npillmayer/schuko/tracing"
)

const defaultOutput = "internal/data/mapping.txt"

type options struct {
	ucd     string
	out     string
	goOut   string
	pkg     string
	varName string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gendiacritics: %v\n", err)
		os.Exit(1)
	}
	var opts options
	flag.StringVar(&opts.ucd, "ucd", "", "path to UnicodeData.txt (downloaded if empty)")
	flag.StringVar(&cfg.UnicodeVersion, "version", cfg.UnicodeVersion, "Unicode version to download")
	flag.StringVar(&opts.out, "out", defaultOutput, "output path for the mapping data file, '-' for stdout")
	flag.StringVar(&opts.goOut, "go", "", "optional output path for Go source of the table")
	flag.StringVar(&opts.pkg, "pkg", "diacritics", "package clause of the Go source")
	flag.StringVar(&opts.varName, "var", "table", "variable name in the Go source")
	flag.IntVar(&cfg.WorkersCount, "workers", cfg.WorkersCount, "number of decomposition workers")
	flag.StringVar(&cfg.TraceLevel, "trace", cfg.TraceLevel, "trace level (Debug, Info, Error)")
	flag.Parse()

	cfg.InitTracing(os.Stderr)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, opts)
	stop()
	if err != nil {
		tracing.Select("diacritics").Errorf("gendiacritics: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, opts options) error {
	path := opts.ucd
	if path == "" {
		var err error
		if path, err = fetch.New(cfg).UnicodeData(ctx); err != nil {
			return err
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	ucdTables, err := decompose.LoadUnicodeData(bufio.NewReader(f))
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	mapping, err := decompose.BuildMapping(ucdTables, cfg.WorkersCount)
	if err != nil {
		return err
	}

	comments := []string{
		fmt.Sprintf("Code generated by gendiacritics from UnicodeData.txt (Unicode %s). DO NOT EDIT.", cfg.UnicodeVersion),
		"<code point>;<replacement code points>",
	}
	if opts.ucd != "" {
		comments[0] = fmt.Sprintf("Code generated by gendiacritics from %s. DO NOT EDIT.", opts.ucd)
	}
	err = writeFile(opts.out, func(w io.Writer) error {
		return tables.WriteMapping(w, comments, mapping)
	})
	if err != nil {
		return err
	}
	tracing.Select("diacritics").Infof("wrote %d entries to %s", len(mapping), opts.out)

	if opts.goOut == "" {
		return nil
	}
	keys := mapping.Keys()
	table, err := phf.Build(keys, mapping.Values(keys))
	if err != nil {
		return err
	}
	src := tables.GoSource{
		Package: opts.pkg,
		Var:     opts.varName,
		Comment: fmt.Sprintf("%s maps precomposed characters to their replacement without diacritics.", opts.varName),
	}
	return writeFile(opts.goOut, func(w io.Writer) error {
		return tables.WriteGo(w, src, table)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(os.Stdout)
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(out); err != nil {
		out.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return out.Close()
}
