// Package symtab builds the symbol table of a Tiny program: one entry per
// distinct variable name with its storage location and every source line
// that references it.
package symtab

import (
	"sort"

	"github.com/you-not-fish/tiny/internal/syntax"
)

// Entry records one variable: its storage location and the lines that
// reference it, in traversal order.
type Entry struct {
	Name  string   `json:"name" yaml:"name"`
	Loc   int      `json:"loc" yaml:"loc"`
	Lines []uint32 `json:"lines" yaml:"lines,flow"`
}

// Table maps variable names to their entries.
// Entries are kept in allocation order.
type Table struct {
	entries []*Entry
	elems   map[string]*Entry
}

func newTable() *Table {
	return &Table{elems: make(map[string]*Entry)}
}

// Lookup returns the entry for name, or nil if name was never referenced.
func (t *Table) Lookup(name string) *Entry {
	return t.elems[name]
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns the entries in allocation order.
func (t *Table) Entries() []*Entry {
	return t.entries
}

// Names returns all variable names, sorted alphabetically.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// insert records a reference to name on line. A new entry gets location
// loc; an existing entry only gains the line. It reports whether an entry
// was created.
func (t *Table) insert(name string, line uint32, loc int) bool {
	if e := t.elems[name]; e != nil {
		e.Lines = append(e.Lines, line)
		return false
	}
	e := &Entry{Name: name, Loc: loc, Lines: []uint32{line}}
	t.elems[name] = e
	t.entries = append(t.entries, e)
	return true
}

// A Builder allocates storage locations while walking a program.
// The location counter belongs to the builder and restarts at every Build.
type Builder struct {
	first int // first location handed out
	loc   int // next free location
}

// NewBuilder returns a Builder whose first allocated location is first.
func NewBuilder(first int) *Builder {
	return &Builder{first: first}
}

// Build walks prog in pre-order (node, children left to right, then the
// following statement) and returns its symbol table. A name seen for the
// first time receives the current location, after which the counter moves
// on by one.
func (b *Builder) Build(prog *syntax.Program) *Table {
	b.loc = b.first
	t := newTable()
	if prog == nil {
		return t
	}

	syntax.Inspect(prog, func(n syntax.Node) bool {
		var name string
		switch n := n.(type) {
		case *syntax.AssignStmt:
			name = n.Name
		case *syntax.ReadStmt:
			name = n.Name
		case *syntax.Name:
			name = n.Value
		default:
			return true
		}
		if name == "" {
			return true
		}
		if t.insert(name, n.Pos().Line(), b.loc) {
			b.loc++
		}
		return true
	})
	return t
}

// Build returns the symbol table of prog with locations starting at 0.
func Build(prog *syntax.Program) *Table {
	return NewBuilder(0).Build(prog)
}
