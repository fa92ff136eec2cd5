package symtab

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fprint writes the classic symbol table listing to w, one row per entry
// in allocation order.
func Fprint(w io.Writer, t *Table) {
	fmt.Fprintln(w, "Variable Name  Location  Line Numbers")
	fmt.Fprintln(w, "-------------  --------  ------------")
	for _, e := range t.entries {
		var b strings.Builder
		fmt.Fprintf(&b, "%-14s %-8d", e.Name, e.Loc)
		for _, line := range e.Lines {
			fmt.Fprintf(&b, " %4d", line)
		}
		fmt.Fprintln(w, b.String())
	}
}

// String returns the listing produced by Fprint.
func (t *Table) String() string {
	var b strings.Builder
	Fprint(&b, t)
	return b.String()
}

// listing is the document shape shared by the JSON and YAML encoders.
type listing struct {
	Symbols []*Entry `json:"symbols" yaml:"symbols"`
}

func newListing(t *Table) listing {
	entries := t.entries
	if entries == nil {
		entries = []*Entry{}
	}
	return listing{Symbols: entries}
}

// FprintJSON writes the table as JSON to w.
func FprintJSON(w io.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newListing(t))
}

// FprintYAML writes the table as YAML to w.
func FprintYAML(w io.Writer, t *Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newListing(t)); err != nil {
		return err
	}
	return enc.Close()
}
