package ucd

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func mustLoadFixture(t *testing.T, file string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "testdata", file))
	if err != nil {
		t.Fatalf("cannot read fixture %s: %v", file, err)
	}
	return data
}

func TestReaderRecords(t *testing.T) {
	src := strings.NewReader(`00C5;LATIN CAPITAL LETTER A WITH RING ABOVE;Lu;0;L;0041 030A;;;;N;;;;00E5;
0301;COMBINING ACUTE ACCENT;Mn;230;NSM;;;;;N;;;;;

01C4;LATIN CAPITAL LETTER DZ WITH CARON;Lu;0;L;<compat> 0044 017D;;;;N;;;;01C6;01C5
`)
	r := NewReader(src)
	rec, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if rec.Codepoint != 0xC5 || rec.Category != UppercaseLetter || rec.CombiningClass != 0 {
		t.Fatalf("unexpected record %+v", rec)
	}
	if !rec.HasCanonical() || rec.HasCompatibility() {
		t.Fatalf("expected canonical decomposition for U+00C5, got tag %q", rec.Tag)
	}
	if !reflect.DeepEqual(rec.Decomposition, []rune{0x41, 0x30A}) {
		t.Fatalf("decomposition mismatch: %v", rec.Decomposition)
	}
	rec, err = r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if rec.CombiningClass != 230 || rec.Category != NonspacingMark || len(rec.Decomposition) != 0 {
		t.Fatalf("unexpected record %+v", rec)
	}
	rec, err = r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if rec.Tag != "compat" || !rec.HasCompatibility() {
		t.Fatalf("expected compat decomposition for U+01C4, got %+v", rec)
	}
	if !reflect.DeepEqual(rec.Decomposition, []rune{0x44, 0x17D}) {
		t.Fatalf("decomposition mismatch: %v", rec.Decomposition)
	}
	if r.Line() != 4 {
		t.Fatalf("expected to be at line 4, is at %d", r.Line())
	}
	if _, err = r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestReaderMalformed(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{name: "field count", line: "0041;LATIN CAPITAL LETTER A;Lu;0;L", want: ErrMalformedRecord},
		{name: "hex", line: "00G1;X;Lu;0;L;;;;;N;;;;;", want: ErrMalformedRecord},
		{name: "too large", line: "110000;X;Lu;0;L;;;;;N;;;;;", want: ErrMalformedRecord},
		{name: "class", line: "0301;X;Mn;abc;NSM;;;;;N;;;;;", want: ErrMalformedRecord},
		{name: "class range", line: "0301;X;Mn;256;NSM;;;;;N;;;;;", want: ErrMalformedRecord},
		{name: "category", line: "0041;X;Xx;0;L;;;;;N;;;;;", want: ErrUnknownCategory},
		{name: "grouping category", line: "0041;X;L;0;L;;;;;N;;;;;", want: ErrUnknownCategory},
		{name: "unassigned", line: "0378;X;Cn;0;L;;;;;N;;;;;", want: ErrMalformedRecord},
		{name: "decomposition hex", line: "00C0;X;Lu;0;L;0041 03ZZ;;;;N;;;;;", want: ErrMalformedRecord},
		{name: "unterminated tag", line: "00A8;X;Sk;0;ON;<compat 0020 0308;;;;N;;;;;", want: ErrMalformedRecord},
		{name: "tag only", line: "00A8;X;Sk;0;ON;<compat>;;;;N;;;;;", want: ErrMalformedRecord},
	}
	for _, tt := range tests {
		r := NewReader(strings.NewReader("0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;\n" + tt.line))
		if _, err := r.Next(); err != nil {
			t.Fatalf("%s: first record should be valid, got %v", tt.name, err)
		}
		_, err := r.Next()
		if !errors.Is(err, tt.want) {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
		if !strings.Contains(err.Error(), "line 2") {
			t.Fatalf("%s: error should name line 2, is %q", tt.name, err.Error())
		}
	}
}

func TestReaderFixture(t *testing.T) {
	data := mustLoadFixture(t, "UnicodeData-excerpt.txt")
	r := NewReader(strings.NewReader(string(data)))
	count, canonical, compat := 0, 0, 0
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		count++
		if rec.HasCanonical() {
			canonical++
		}
		if rec.HasCompatibility() {
			compat++
		}
	}
	if count < 400 {
		t.Fatalf("expected at least 400 records in fixture, got %d", count)
	}
	if canonical == 0 || compat == 0 {
		t.Fatalf("expected canonical and compatibility decompositions, got %d/%d", canonical, compat)
	}
}

func TestCategory(t *testing.T) {
	for _, tag := range []string{"Lu", "Ll", "Mn", "Nd", "Pc", "Sk", "Zs", "Cc", "Co"} {
		c, err := ParseCategory(tag)
		if err != nil {
			t.Fatalf("cannot parse %q: %v", tag, err)
		}
		if c.String() != tag {
			t.Fatalf("round trip mismatch: %q => %q", tag, c.String())
		}
	}
	if !UppercaseLetter.IsLetter() || !UppercaseLetter.IsCasedLetter() || OtherLetter.IsCasedLetter() {
		t.Fatalf("letter predicates broken")
	}
	if !NonspacingMark.IsMark() || NonspacingMark.IsLetter() {
		t.Fatalf("mark predicates broken")
	}
	if !ModifierSymbol.IsSymbol() || !SpaceSeparator.IsSeparator() || !Format.IsOther() {
		t.Fatalf("symbol/separator/other predicates broken")
	}
	if !DashPunctuation.IsPunctuation() || !LetterNumber.IsNumber() {
		t.Fatalf("punctuation/number predicates broken")
	}
}

func TestIsCombiningDiacritic(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{0x02FF, false}, {0x0300, true}, {0x0301, true}, {0x036F, true}, {0x0370, false}, {'e', false},
	}
	for _, tt := range tests {
		if got := IsCombiningDiacritic(tt.r); got != tt.want {
			t.Fatalf("IsCombiningDiacritic(%U) = %v, want %v", tt.r, got, tt.want)
		}
	}
}
