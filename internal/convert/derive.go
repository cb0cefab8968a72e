package convert

import (
	"strconv"
	"strings"

	"github.com/nmrkit/nmrkit/internal/star"
)

// defaultIsotope is the most abundant NMR-observable isotope per element.
var defaultIsotope = map[string]int{
	"H": 1, "C": 13, "N": 15, "O": 17, "P": 31, "S": 33, "F": 19,
	"CD": 113, "CA": 43,
}

// completeShiftLoop fills the NMR-STAR columns a NEF chemical shift loop
// does not carry: the running ID, and the atom type and isotope number
// derived from the atom name when the source had no element columns.
func (c *Converter) completeShiftLoop(lp *star.Loop, category string) *star.Loop {
	if lp.ColumnIndex("ID") < 0 {
		lp = withIndexColumn(lp, category+".ID")
	}

	atomCol := lp.ColumnIndex("Atom_ID")
	if atomCol < 0 {
		return lp
	}
	if lp.ColumnIndex("Atom_type") < 0 {
		lp = withDerivedColumn(lp, category+".Atom_type", func(row []string) string {
			return elementOf(row[atomCol])
		})
	}
	if lp.ColumnIndex("Atom_isotope_number") < 0 {
		lp = withDerivedColumn(lp, category+".Atom_isotope_number", func(row []string) string {
			if n, ok := defaultIsotope[elementOf(row[atomCol])]; ok {
				return strconv.Itoa(n)
			}
			return "."
		})
	}
	return lp
}

// elementOf derives the element symbol from an atom name: the leading
// letter, upper-cased.
func elementOf(atom string) string {
	if atom == "" || star.IsNull(atom) {
		return "."
	}
	return strings.ToUpper(atom[:1])
}

func withIndexColumn(lp *star.Loop, name string) *star.Loop {
	out := &star.Loop{Columns: append(append([]string{}, lp.Columns...), name)}
	out.Rows = make([][]string, len(lp.Rows))
	for r, row := range lp.Rows {
		out.Rows[r] = append(append([]string{}, row...), strconv.Itoa(r+1))
	}
	return out
}

func withDerivedColumn(lp *star.Loop, name string, derive func(row []string) string) *star.Loop {
	out := &star.Loop{Columns: append(append([]string{}, lp.Columns...), name)}
	out.Rows = make([][]string, len(lp.Rows))
	for r, row := range lp.Rows {
		out.Rows[r] = append(append([]string{}, row...), derive(row))
	}
	return out
}
