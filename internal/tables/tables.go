// Package tables reads and writes the generated diacritics mapping, either as
// a line-oriented data file or as Go source for a static phf.Map.
//
// Data file format, one entry per line, sorted by code point:
//
//	# comment
//	00C0;0041
//	01C4;0044 005A
//
// The replacement is a space-separated list of hex code points and may be empty.
package tables

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

var ErrMalformedEntry = errors.New("malformed mapping entry")

// Entry is a single mapping from a code point to its replacement.
type Entry struct {
	Key   rune
	Value string
}

// Reader streams entries from a mapping data file.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	prev    rune
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
		prev:    -1,
	}
}

// Next returns the next entry.
// It returns io.EOF when exhausted. Keys must be strictly increasing.
func (r *Reader) Next() (Entry, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e, err := parseEntry(line)
		if err != nil {
			return Entry{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		if e.Key <= r.prev {
			return Entry{}, fmt.Errorf("line %d: %w: key %04X out of order", r.line, ErrMalformedEntry, e.Key)
		}
		r.prev = e.Key
		return e, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Entry{}, err
	}
	return Entry{}, io.EOF
}

func parseEntry(line string) (Entry, error) {
	k, v, ok := strings.Cut(line, ";")
	if !ok {
		return Entry{}, fmt.Errorf("%w: missing ';' in %q", ErrMalformedEntry, line)
	}
	key, err := parseRune(k)
	if err != nil {
		return Entry{}, err
	}
	var sb strings.Builder
	for _, f := range strings.Fields(v) {
		r, err := parseRune(f)
		if err != nil {
			return Entry{}, err
		}
		sb.WriteRune(r)
	}
	return Entry{Key: key, Value: sb.String()}, nil
}

func parseRune(s string) (rune, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32)
	if err != nil || !utf8.ValidRune(rune(v)) {
		return 0, fmt.Errorf("%w: code point %q", ErrMalformedEntry, s)
	}
	return rune(v), nil
}

// ReadAll reads all entries of a mapping data file and returns keys and
// values as parallel slices.
func ReadAll(reader io.Reader) ([]rune, []string, error) {
	r := NewReader(reader)
	var keys []rune
	var values []string
	for {
		e, err := r.Next()
		if err == io.EOF {
			return keys, values, nil
		}
		if err != nil {
			return nil, nil, err
		}
		keys = append(keys, e.Key)
		values = append(values, e.Value)
	}
}

// WriteMapping writes m in data file format, preceded by comment lines.
func WriteMapping(w io.Writer, comments []string, m map[rune]string) error {
	bw := bufio.NewWriter(w)
	for _, c := range comments {
		fmt.Fprintf(bw, "# %s\n", c)
	}
	keys := make([]rune, 0, len(m))
	for r := range m {
		keys = append(keys, r)
	}
	slices.Sort(keys)
	for _, r := range keys {
		fmt.Fprintf(bw, "%04X;", r)
		sep := ""
		for _, c := range m[r] {
			fmt.Fprintf(bw, "%s%04X", sep, c)
			sep = " "
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
