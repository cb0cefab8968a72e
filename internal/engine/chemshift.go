package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nmrkit/nmrkit/internal/ccd"
	"github.com/nmrkit/nmrkit/internal/report"
	"github.com/nmrkit/nmrkit/internal/schema"
	"github.com/nmrkit/nmrkit/internal/star"
)

// allowedIsotopes maps each supported element to its NMR-observable
// isotope numbers.
var allowedIsotopes = map[string][]int{
	"H": {1, 2, 3}, "C": {13}, "N": {14, 15}, "O": {17},
	"P": {31}, "S": {33}, "F": {19}, "CD": {111, 113}, "CA": {43},
}

// checkChemShifts validates atom typing, ambiguity codes, and the shift
// value against the per-atom statistical distribution.
func (e *Engine) checkChemShifts(sf *star.Saveframe, lp *star.Loop, file string) {
	keys := e.profile.SeqKeySets(schema.ChemShift, 0)[0]
	atomCol := lp.ColumnIndex(e.atomNameTag())
	compCol := lp.ColumnIndex(keys.Comp)
	valueCol := lp.ColumnIndex(e.shiftValueTag())
	typeCol := lp.ColumnIndex("Atom_type")
	isoCol := lp.ColumnIndex("Atom_isotope_number")
	ambCol := lp.ColumnIndex("Ambiguity_code")

	loc := findingSite{file: file, sf: sf.Name, loop: lp.Category()}
	for r, row := range lp.Rows {
		comp, atom := cell(row, compCol), cell(row, atomCol)
		if typeCol >= 0 {
			e.checkAtomTyping(row, atom, typeCol, isoCol, loc, r+1)
		}
		if ambCol >= 0 && comp != "" && atom != "" {
			e.checkAmbiguity(cell(row, ambCol), comp, atom, loc, r+1)
		}
		if comp != "" && atom != "" && valueCol >= 0 && !star.IsNull(row[valueCol]) {
			e.checkShiftValue(row[valueCol], comp, atom, loc, r+1)
		}
	}
}

// checkAtomTyping verifies the declared element, its isotope number, and
// that the atom name starts with the element symbol.
func (e *Engine) checkAtomTyping(row []string, atom string, typeCol, isoCol int, loc findingSite, rowNum int) {
	elem := cell(row, typeCol)
	if elem == "" {
		return
	}
	elem = strings.ToUpper(elem)
	isotopes, ok := allowedIsotopes[elem]
	if !ok {
		e.emit(rowFinding{
			errKind: report.ErrInvalidAtomType,
			desc:    fmt.Sprintf("atom type %s is not a supported element", elem),
		}, loc, rowNum, elem)
		return
	}
	if atom != "" && !strings.HasPrefix(strings.ToUpper(atom), elem[:1]) {
		e.emit(rowFinding{
			errKind: report.ErrInvalidAtomType,
			desc:    fmt.Sprintf("atom %s does not begin with its declared element %s", atom, elem),
		}, loc, rowNum, atom)
	}
	iso := cell(row, isoCol)
	if iso == "" {
		return
	}
	n, err := strconv.Atoi(iso)
	if err != nil || !containsInt(isotopes, n) {
		e.emit(rowFinding{
			errKind: report.ErrInvalidIsotopeNumber,
			desc:    fmt.Sprintf("isotope number %s is not observable for element %s", iso, elem),
		}, loc, rowNum, iso)
	}
}

// checkAmbiguity enforces the BMRB ambiguity-code rules: codes 2 and 3 are
// only admissible on the residue's geminal or ring-symmetric atoms.
func (e *Engine) checkAmbiguity(code, comp, atom string, loc findingSite, rowNum int) {
	if code == "" {
		if e.resolver.IsStandard(comp) {
			e.emit(rowFinding{
				warnKind: report.WarnMissingData,
				desc:     fmt.Sprintf("ambiguity code is missing for %s %s", comp, atom),
			}, loc, rowNum, "")
		}
		return
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return // typed by the loop validator
	}
	bad := func() {
		e.emit(rowFinding{
			errKind: report.ErrInvalidAmbiguityCode,
			desc:    fmt.Sprintf("ambiguity code %d is not admissible for %s %s", n, comp, atom),
		}, loc, rowNum, code)
	}
	switch n {
	case 1, 4, 5, 6, 9:
	case 2:
		if !ccd.GeminalAtoms(comp)[atom] {
			bad()
		}
	case 3:
		if !ccd.AromaticAtoms(comp)[atom] {
			bad()
		}
	default:
		bad()
	}
}

// checkShiftValue grades the value against the (comp, atom) statistics.
// Severity tiers: beyond the observed extremes (with a std/10 tolerance)
// is anomalous, |z| > 5 suspicious, |z| > 3.5 unusual.
func (e *Engine) checkShiftValue(raw, comp, atom string, loc findingSite, rowNum int) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return // typed by the loop validator
	}
	stat, ok := e.oracle.Lookup(comp, atom)
	if !ok {
		e.emit(rowFinding{
			warnKind: report.WarnUnusualData,
			desc:     fmt.Sprintf("no shift statistics available for %s %s", comp, atom),
		}, loc, rowNum, raw)
		return
	}
	anomalous := func(desc string) {
		if e.opts.NonblkAnomalousCS {
			e.emit(rowFinding{warnKind: report.WarnAnomalousChemicalShift, desc: desc}, loc, rowNum, raw)
		} else {
			e.emit(rowFinding{errKind: report.ErrAnomalousData, desc: desc}, loc, rowNum, raw)
		}
	}

	// A degenerate row (single observation, zero spread) cannot be
	// graded in standard deviations; only the extremes apply.
	if stat.Std <= 0 {
		if value < stat.Min || value > stat.Max {
			anomalous(fmt.Sprintf("%s %s shift %s is outside the observed extremes [%g, %g]",
				comp, atom, raw, stat.Min, stat.Max))
		}
		return
	}

	z := (value - stat.Avg) / stat.Std
	tolerance := stat.Std / 10

	switch {
	case value < stat.Min-tolerance || value > stat.Max+tolerance:
		anomalous(fmt.Sprintf("%s %s shift %s (z=%.2f) is outside the observed extremes [%g, %g]",
			comp, atom, raw, z, stat.Min, stat.Max))
	case math.Abs(z) > 5:
		e.emit(rowFinding{
			warnKind: report.WarnSuspiciousData,
			desc:     fmt.Sprintf("%s %s shift %s deviates %.2f standard deviations from the mean %g", comp, atom, raw, z, stat.Avg),
		}, loc, rowNum, raw)
	case math.Abs(z) > 3.5:
		e.emit(rowFinding{
			warnKind: report.WarnUnusualData,
			desc:     fmt.Sprintf("%s %s shift %s deviates %.2f standard deviations from the mean %g", comp, atom, raw, z, stat.Avg),
		}, loc, rowNum, raw)
	}
}

// atomNameTag is the chem-shift loop's atom column for this format.
func (e *Engine) atomNameTag() string {
	if e.profile.Format() == schema.NEF {
		return "atom_name"
	}
	return "Atom_ID"
}

// shiftValueTag is the chem-shift loop's value column for this format.
func (e *Engine) shiftValueTag() string {
	if e.profile.Format() == schema.NEF {
		return "value"
	}
	return "Val"
}

func cell(row []string, col int) string {
	if col < 0 || star.IsNull(row[col]) {
		return ""
	}
	return row[col]
}

func containsInt(xs []int, n int) bool {
	for _, x := range xs {
		if x == n {
			return true
		}
	}
	return false
}
