package diacritics

import (
	"strings"
	"testing"
	"unicode/utf8"
	"unsafe"

	"github.com/npillmayer/diacritics/internal/data"
	"github.com/npillmayer/diacritics/internal/tables"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestIsDiacritic(t *testing.T) {
	for _, r := range []rune{0x0300, 0x0301, 0x0327, 0x036F} {
		if !IsDiacritic(r) {
			t.Errorf("%U should be a diacritic", r)
		}
	}
	for _, r := range []rune{0x02FF, 0x0370, 'a', 'é', 0x1AB0, 0x20D0, 0x3099} {
		if IsDiacritic(r) {
			t.Errorf("%U should not be a diacritic", r)
		}
	}
}

func TestLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "diacritics")
	defer teardown()
	//
	tests := []struct {
		r     rune
		repl  string
		found bool
	}{
		{'a', "", false},
		{'é', "e", true},
		{'Å', "A", true},
		{'ñ', "n", true},
		{0x0301, "", true},
		{0x01C4, "DZ", true},
		{0x01C5, "Dz", true},
		{0x1E69, "s", true},
		{0x212B, "A", true},
		{0x00A8, " ", true},
		{0x0386, "\u0391", true},
		{0x2126, "", false},
		{0xFB01, "", false},
		{0xD55C, "", false},
		{'世', "", false},
		{0x10FFFF, "", false},
	}
	for _, test := range tests {
		repl, found := Lookup(test.r)
		if repl != test.repl || found != test.found {
			t.Errorf("Lookup(%U) = %q/%v, expected %q/%v", test.r, repl, found, test.repl, test.found)
		}
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"", ""},
		{"aeiouy", "aeiouy"},
		{"TÅRÖÄàèéìòù", "TAROAaeeiou"},
		{"Ångström", "Angstrom"},
		{"ǅemal", "Dzemal"},
		{"façade naïve", "facade naive"},
		{"\u0301", ""},
		{"\u0229\u0301", "e"},
		{"Ǆ", "DZ"},
		{"한국어", "한국어"},
		{"Hello, 世界", "Hello, 世界"},
		{"Ελλάδα", "Ελλαδα"},
		{"\xffé\xc3", "\xffe\xc3"},
	}
	for _, test := range tests {
		if out := Strip(test.in); out != test.out {
			t.Errorf("Strip(%q) = %q, expected %q", test.in, out, test.out)
		}
	}
}

func TestStripUnchangedReturnsInput(t *testing.T) {
	for _, s := range []string{"aeiouy", "Hello, 世界", "한국어", "\xff\xfe"} {
		out := Strip(s)
		if unsafe.StringData(out) != unsafe.StringData(s) {
			t.Errorf("Strip(%q) should return its input", s)
		}
	}
	Strip("é") // load table
	allocs := testing.AllocsPerRun(100, func() {
		Strip("aeiouy")
		Strip("Hello, 世界")
	})
	if allocs != 0 {
		t.Fatalf("Strip of unchanged input allocated %.1f times", allocs)
	}
}

func TestLookupDoesNotAllocate(t *testing.T) {
	Lookup('é')
	allocs := testing.AllocsPerRun(100, func() {
		Lookup('é')
		Lookup(0x0301)
		Lookup('世')
	})
	if allocs != 0 {
		t.Fatalf("Lookup allocated %.1f times", allocs)
	}
}

func TestStripConsistentWithLookup(t *testing.T) {
	for _, s := range []string{"TÅRÖÄàèéìòù", "ǄǅǆṩẛΆ", "Hello, 世界", "é\u0308"} {
		var sb strings.Builder
		for _, r := range s {
			if repl, ok := Lookup(r); ok {
				sb.WriteString(repl)
			} else {
				sb.WriteRune(r)
			}
		}
		if out := Strip(s); out != sb.String() {
			t.Errorf("Strip(%q) = %q, per-character lookup gives %q", s, out, sb.String())
		}
	}
}

func TestTableMatchesData(t *testing.T) {
	keys, values, err := tables.ReadAll(strings.NewReader(data.Mapping))
	if err != nil {
		t.Fatal(err)
	}
	if Table().Len() != len(keys) {
		t.Fatalf("table has %d entries, data file %d", Table().Len(), len(keys))
	}
	for i, k := range keys {
		if IsDiacritic(k) {
			t.Errorf("diacritic %U must not be a table key", k)
		}
		if repl, ok := Lookup(k); !ok || repl != values[i] {
			t.Errorf("Lookup(%U) = %q/%v, expected %q", k, repl, ok, values[i])
		}
		if out := Strip(values[i]); out != values[i] {
			t.Errorf("replacement %q for %U is not stripped: %q", values[i], k, out)
		}
	}
}

func FuzzStrip(f *testing.F) {
	for _, s := range []string{"", "aeiouy", "TÅRÖÄàèéìòù", "ǅemal", "\u0301", "한국어", "\xffé"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			return
		}
		out := Strip(s)
		if again := Strip(out); again != out {
			t.Fatalf("Strip is not idempotent for %q: %q, then %q", s, out, again)
		}
		if !utf8.ValidString(out) {
			t.Fatalf("Strip(%q) produced invalid UTF-8 %q", s, out)
		}
		for _, r := range out {
			if IsDiacritic(r) {
				t.Fatalf("Strip(%q) = %q still contains %U", s, out, r)
			}
		}
	})
}
