// Command stripdiacritics removes diacritics from its arguments, or from
// standard input line by line.
//
//	stripdiacritics "Ångström"          # Angstrom
//	stripdiacritics -slug "Crème brûlée" # creme-brulee
//	stripdiacritics -lookup "éǄa"
//	stripdiacritics -dump > mapping.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"

	"github.com/agnivade/levenshtein"
	"github.com/fatih/color"
	"github.com/gosimple/slug"
	"github.com/rainycape/unidecode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/diacritics"
	"github.com/npillmayer/diacritics/internal/config"
	"github.com/npillmayer/diacritics/internal/tables"
)

type options struct {
	ascii   bool
	nfd     bool
	slug    bool
	changes bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "stripdiacritics: %v\n", err)
		os.Exit(1)
	}
	var opts options
	flag.BoolVar(&opts.ascii, "ascii", false, "transliterate the result to ASCII")
	flag.BoolVar(&opts.nfd, "nfd", false, "decompose input (NFD) before stripping")
	flag.BoolVar(&opts.slug, "slug", false, "turn the result into a URL slug")
	flag.BoolVar(&opts.changes, "changes", false, "report the number of changed characters per line")
	lookup := flag.String("lookup", "", "show the replacement of every character of the argument")
	dump := flag.Bool("dump", false, "write the replacement table in data file format")
	flag.StringVar(&cfg.TraceLevel, "trace", "Error", "trace level (Debug, Info, Error)")
	flag.Parse()

	cfg.InitTracing(os.Stderr)
	switch {
	case *dump:
		err = dumpTable(os.Stdout)
	case *lookup != "":
		lookupChars(color.Output, *lookup)
	case flag.NArg() > 0:
		for _, arg := range flag.Args() {
			printLine(color.Output, arg, opts)
		}
	default:
		err = stripLines(os.Stdin, color.Output, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "stripdiacritics: %v\n", err)
		os.Exit(1)
	}
}

var nfdStrip = transform.Chain(norm.NFD, diacritics.Transformer{})

func process(s string, opts options) string {
	var out string
	if opts.nfd {
		out, _, _ = transform.String(nfdStrip, s)
	} else {
		out = diacritics.Strip(s)
	}
	if opts.ascii {
		out = unidecode.Unidecode(out)
	}
	if opts.slug {
		out = slug.Make(out)
	}
	return out
}

func printLine(w io.Writer, s string, opts options) {
	out := process(s, opts)
	if !opts.changes {
		fmt.Fprintln(w, out)
		return
	}
	n := levenshtein.ComputeDistance(s, out)
	fmt.Fprintf(w, "%s\t%s\n", out, color.New(color.Faint).Sprintf("(%d changes)", n))
}

func stripLines(r io.Reader, w io.Writer, opts options) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)
	for scanner.Scan() {
		printLine(w, scanner.Text(), opts)
	}
	return scanner.Err()
}

func lookupChars(w io.Writer, chars string) {
	codepoint := color.New(color.FgCyan).SprintfFunc()
	hit := color.New(color.FgGreen, color.Bold).SprintFunc()
	mark := color.New(color.FgYellow).SprintFunc()
	miss := color.New(color.Faint).SprintFunc()
	for _, r := range chars {
		cp := codepoint("%U", r)
		repl, ok := diacritics.Lookup(r)
		switch {
		case diacritics.IsDiacritic(r):
			fmt.Fprintf(w, "%-8s ◌%c  %s\n", cp, r, mark("combining diacritic, removed"))
		case ok:
			fmt.Fprintf(w, "%-8s %c  → %s\n", cp, r, hit(fmt.Sprintf("%q", repl)))
		default:
			fmt.Fprintf(w, "%-8s %c  %s\n", cp, r, miss("unchanged"))
		}
	}
}

func dumpTable(w io.Writer) error {
	t := diacritics.Table()
	comments := []string{
		fmt.Sprintf("diacritics replacement table, %d entries", t.Len()),
		"<code point>;<replacement code points>",
	}
	return tables.WriteMapping(w, comments, maps.Collect(t.All()))
}
