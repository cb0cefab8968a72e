// Package star reads and writes star-family text files: NEF, NMR-STAR, and
// mmCIF all share the same grammar of data blocks, save frames, tag/value
// pairs, and loop_ tables. The tree is parsed once and treated as immutable
// by the validators.
package star

import "strings"

// Entry is a single data block (`data_<name>`) with its save frames.
// mmCIF files carry tags and loops directly at the block level; NEF and
// NMR-STAR nest everything inside save frames.
type Entry struct {
	// Name is the text after "data_".
	Name string

	// Tags holds block-level tag/value pairs (mmCIF style).
	Tags []Tag

	// Loops holds block-level loops (mmCIF style).
	Loops []*Loop

	// Saveframes in file order.
	Saveframes []*Saveframe
}

// Saveframe is a named block (`save_<framecode>` ... `save_`).
type Saveframe struct {
	// Name is the framecode, unique within the entry.
	Name string

	// Tags in file order. Tag names keep their full form
	// (e.g. "_nef_nmr_spectrum.num_dimensions").
	Tags []Tag

	// Loops in file order.
	Loops []*Loop
}

// Tag is a single tag/value pair outside a loop.
type Tag struct {
	Name  string
	Value string
}

// Loop is a table introduced by "loop_": column tags, then row tuples.
type Loop struct {
	// Columns holds the full column tags in declaration order.
	Columns []string

	// Rows holds one string tuple per row; len(row) == len(Columns).
	Rows [][]string
}

// Category returns the saveframe category: the value of the sf_category
// (NEF) or Sf_category (NMR-STAR) tag, or "" when absent.
func (sf *Saveframe) Category() string {
	for _, t := range sf.Tags {
		if name := localName(t.Name); name == "sf_category" || name == "Sf_category" {
			return t.Value
		}
	}
	return ""
}

// TagPrefix returns the prefix shared by the saveframe's tags, without the
// trailing dot (e.g. "_nef_chemical_shift_list").
func (sf *Saveframe) TagPrefix() string {
	if len(sf.Tags) == 0 {
		return ""
	}
	return tagPrefix(sf.Tags[0].Name)
}

// Tag returns the value of the named tag. The name is matched against the
// local part after the dot, so "sf_framecode" finds
// "_nef_chemical_shift_list.sf_framecode".
func (sf *Saveframe) Tag(local string) (string, bool) {
	for _, t := range sf.Tags {
		if localName(t.Name) == local {
			return t.Value, true
		}
	}
	return "", false
}

// LocalTagNames returns the tag names with the saveframe prefix stripped,
// in file order.
func (sf *Saveframe) LocalTagNames() []string {
	out := make([]string, len(sf.Tags))
	for i, t := range sf.Tags {
		out[i] = localName(t.Name)
	}
	return out
}

// LoopsByCategory returns all loops whose column prefix equals the given
// loop category (e.g. "_nef_chemical_shift").
func (sf *Saveframe) LoopsByCategory(category string) []*Loop {
	var out []*Loop
	for _, lp := range sf.Loops {
		if lp.Category() == category {
			out = append(out, lp)
		}
	}
	return out
}

// Category returns the shared prefix of the loop's columns, without the
// trailing dot.
func (lp *Loop) Category() string {
	if len(lp.Columns) == 0 {
		return ""
	}
	return tagPrefix(lp.Columns[0])
}

// ColumnIndex returns the position of the column whose local name matches,
// or -1.
func (lp *Loop) ColumnIndex(local string) int {
	for i, c := range lp.Columns {
		if localName(c) == local {
			return i
		}
	}
	return -1
}

// LocalColumns returns the column names with the category prefix stripped.
func (lp *Loop) LocalColumns() []string {
	out := make([]string, len(lp.Columns))
	for i, c := range lp.Columns {
		out[i] = localName(c)
	}
	return out
}

// IsNull reports whether a cell value is a star null placeholder.
func IsNull(v string) bool {
	return v == "" || v == "." || v == "?"
}

func localName(tag string) string {
	if i := strings.IndexByte(tag, '.'); i >= 0 {
		return tag[i+1:]
	}
	return strings.TrimPrefix(tag, "_")
}

func tagPrefix(tag string) string {
	if i := strings.IndexByte(tag, '.'); i >= 0 {
		return tag[:i]
	}
	return ""
}
