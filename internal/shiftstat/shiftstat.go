// Package shiftstat serves per-(comp_id, atom_id) chemical shift statistics:
// average, standard deviation, and the observed extremes. The builtin table
// covers the standard residues; a SQLite store carries extended statistics
// for non-standard components.
package shiftstat

import "strings"

// Stat holds the distribution of observed shifts for one atom of one
// component.
type Stat struct {
	CompID string
	AtomID string
	Avg    float64
	Std    float64
	Min    float64
	Max    float64
	Count  int
}

// Oracle is the read-only lookup interface the shift analyzer consults.
type Oracle interface {
	Lookup(compID, atomID string) (Stat, bool)
}

// Builtin is the compiled-in statistics table.
type Builtin struct {
	m map[string]Stat
}

// NewBuiltin returns the builtin oracle.
func NewBuiltin() *Builtin {
	b := &Builtin{m: make(map[string]Stat, len(builtinStats))}
	for _, s := range builtinStats {
		b.m[key(s.CompID, s.AtomID)] = s
	}
	return b
}

// Lookup returns the statistics for (comp_id, atom_id), matching the
// comp_id case-insensitively. Protons of an equivalent group fall back to
// the group entry: LYS HB2 is served by the LYS HB statistics.
func (b *Builtin) Lookup(compID, atomID string) (Stat, bool) {
	return lookupNorm(b.m, compID, atomID)
}

// Table is an in-memory oracle built from explicit rows (e.g. rows loaded
// from a store). Later rows win on duplicate keys.
type Table struct {
	m map[string]Stat
}

// NewTable builds an oracle from rows.
func NewTable(rows []Stat) *Table {
	t := &Table{m: make(map[string]Stat, len(rows))}
	for _, s := range rows {
		t.m[key(s.CompID, s.AtomID)] = s
	}
	return t
}

// Lookup implements Oracle.
func (t *Table) Lookup(compID, atomID string) (Stat, bool) {
	return lookupNorm(t.m, compID, atomID)
}

// Layered chains oracles; the first hit wins.
type Layered []Oracle

// Lookup implements Oracle.
func (l Layered) Lookup(compID, atomID string) (Stat, bool) {
	for _, o := range l {
		if s, ok := o.Lookup(compID, atomID); ok {
			return s, ok
		}
	}
	return Stat{}, false
}

func key(compID, atomID string) string {
	return strings.ToUpper(compID) + " " + atomID
}

// lookupNorm tries the exact atom first, then the atom with trailing digits
// stripped (HB2 -> HB, HD11 -> HD). THR HG2 style entries win over the
// stripped form because the exact probe runs first at each stage.
func lookupNorm(m map[string]Stat, compID, atomID string) (Stat, bool) {
	if s, ok := m[key(compID, atomID)]; ok {
		return s, true
	}
	name := atomID
	for len(name) > 1 && name[len(name)-1] >= '0' && name[len(name)-1] <= '9' {
		name = name[:len(name)-1]
		if s, ok := m[key(compID, name)]; ok {
			return s, true
		}
	}
	return Stat{}, false
}
