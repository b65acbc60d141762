package tables

import (
	"bytes"
	"fmt"
	"go/format"
	"io"

	"github.com/npillmayer/diacritics/phf"
)

// GoSource describes the Go file WriteGo produces.
type GoSource struct {
	Package string // package clause
	Var     string // name of the generated variable
	Comment string // optional doc comment for the variable, without "//"
}

// WriteGo writes m as a gofmt-formatted Go source file declaring a static
// *phf.Map[string].
func WriteGo(w io.Writer, src GoSource, m *phf.Map[string]) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by gendiacritics. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", src.Package)
	fmt.Fprintf(&buf, "import \"github.com/npillmayer/diacritics/phf\"\n\n")
	if src.Comment != "" {
		fmt.Fprintf(&buf, "// %s\n", src.Comment)
	}
	fmt.Fprintf(&buf, "var %s = &phf.Map[string]{\n", src.Var)
	fmt.Fprintf(&buf, "Lo: 0x%04X,\nHi: 0x%04X,\n", m.Lo, m.Hi)
	fmt.Fprintf(&buf, "Key: phf.Key{K0: 0x%016X, K1: 0x%016X},\n", m.Key.K0, m.Key.K1)
	fmt.Fprintf(&buf, "Disps: [][2]uint32{\n")
	for _, d := range m.Disps {
		fmt.Fprintf(&buf, "{%d, %d},\n", d[0], d[1])
	}
	fmt.Fprintf(&buf, "},\nEntries: []phf.Entry[string]{\n")
	for _, e := range m.Entries {
		fmt.Fprintf(&buf, "{Key: 0x%04X, Value: %q}, // %c\n", e.Key, e.Value, e.Key)
	}
	fmt.Fprintf(&buf, "},\n}\n")
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated source: %w", err)
	}
	_, err = w.Write(out)
	return err
}
