package ucd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const fieldCount = 15

// Record is one line of UnicodeData.txt.
//
// Decomposition holds the decomposition mapping, if any. A non-empty Tag
// (e.g. "compat", "font", "super") marks it as a compatibility decomposition;
// otherwise it is canonical.
type Record struct {
	Codepoint      rune
	Name           string
	Category       Category
	CombiningClass uint8
	Decomposition  []rune
	Tag            string
}

// HasCanonical reports whether the record carries a canonical decomposition.
func (rec Record) HasCanonical() bool {
	return len(rec.Decomposition) > 0 && rec.Tag == ""
}

// HasCompatibility reports whether the record carries a compatibility decomposition.
func (rec Record) HasCompatibility() bool {
	return len(rec.Decomposition) > 0 && rec.Tag != ""
}

// Reader streams records from UnicodeData.txt formatted input.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	count   int
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Line returns the 1-based number of the line read last.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next record.
// It returns io.EOF when exhausted. Blank lines are skipped, every other
// line must be a well-formed record.
func (r *Reader) Next() (Record, error) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := parseRecord(line)
		if err != nil {
			tracer().Errorf("UnicodeData line %d: %v", r.line, err)
			return Record{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		r.count++
		return rec, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Record{}, err
	}
	tracer().Debugf("read %d records from %d lines", r.count, r.line)
	return Record{}, io.EOF
}

func parseRecord(line string) (Record, error) {
	fields := strings.Split(line, ";")
	if len(fields) != fieldCount {
		return Record{}, fmt.Errorf("%w: %d fields, want %d", ErrMalformedRecord, len(fields), fieldCount)
	}
	var rec Record
	cp, err := parseCodepoint(fields[0])
	if err != nil {
		return Record{}, err
	}
	rec.Codepoint = cp
	rec.Name = fields[1]
	if rec.Category, err = ParseCategory(fields[2]); err != nil {
		return Record{}, err
	}
	if rec.Category == Unassigned {
		return Record{}, fmt.Errorf("%w: unassigned code point %04X listed", ErrMalformedRecord, cp)
	}
	ccc, err := strconv.ParseUint(fields[3], 10, 8)
	if err != nil {
		return Record{}, fmt.Errorf("%w: combining class %q", ErrMalformedRecord, fields[3])
	}
	rec.CombiningClass = uint8(ccc)
	rec.Tag, rec.Decomposition, err = parseDecomposition(fields[5])
	return rec, err
}

// parseDecomposition splits "<tag> 0020 0308" or "0041 0300".
func parseDecomposition(field string) (string, []rune, error) {
	if field == "" {
		return "", nil, nil
	}
	tag := ""
	if strings.HasPrefix(field, "<") {
		end := strings.IndexByte(field, '>')
		if end < 0 {
			return "", nil, fmt.Errorf("%w: unterminated decomposition tag in %q", ErrMalformedRecord, field)
		}
		tag = field[1:end]
		field = field[end+1:]
	}
	parts := strings.Fields(field)
	if len(parts) == 0 {
		return "", nil, fmt.Errorf("%w: empty decomposition sequence", ErrMalformedRecord)
	}
	seq := make([]rune, 0, len(parts))
	for _, p := range parts {
		cp, err := parseCodepoint(p)
		if err != nil {
			return "", nil, err
		}
		seq = append(seq, cp)
	}
	return tag, seq, nil
}

func parseCodepoint(s string) (rune, error) {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || v > 0x10FFFF {
		return 0, fmt.Errorf("%w: code point %q", ErrMalformedRecord, s)
	}
	return rune(v), nil
}
