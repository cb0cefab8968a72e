package engine

import (
	"fmt"
	"strconv"

	"github.com/nmrkit/nmrkit/internal/ccd"
	"github.com/nmrkit/nmrkit/internal/report"
	"github.com/nmrkit/nmrkit/internal/schema"
	"github.com/nmrkit/nmrkit/internal/star"
)

// checkNomenclature validates every (comp_id, atom_id) pair of a loop
// against the chemical component dictionary. NEF pseudo-atoms are expanded
// to their atom sets first; an empty expansion is an error.
func (e *Engine) checkNomenclature(sf *star.Saveframe, lp *star.Loop, st schema.Subtype, file string) {
	keySets := e.profile.SeqKeySets(st, 0)
	atomTags := e.atomTags(st, len(keySets))

	loc := findingSite{file: file, sf: sf.Name, loop: lp.Category()}
	for i, keys := range keySets {
		compCol := lp.ColumnIndex(keys.Comp)
		atomCol := lp.ColumnIndex(atomTags[i].atom)
		authCol := -1
		if atomTags[i].authAtom != "" {
			authCol = lp.ColumnIndex(atomTags[i].authAtom)
		}
		if compCol < 0 || atomCol < 0 {
			continue
		}
		for r, row := range lp.Rows {
			comp, atom := cell(row, compCol), cell(row, atomCol)
			if comp == "" || atom == "" {
				continue
			}
			e.checkAtomName(comp, atom, loc, r+1)
			if authCol >= 0 {
				if auth := cell(row, authCol); auth != "" && auth != atom {
					e.emit(rowFinding{
						warnKind: report.WarnAtomNomenclature,
						desc:     fmt.Sprintf("author atom name %s differs from %s for %s", auth, atom, comp),
					}, loc, r+1, auth)
				}
			}
		}
	}
}

// checkAtomName resolves one atom name against the CCD entry for its
// residue. Unknown residues cannot be checked and pass silently.
func (e *Engine) checkAtomName(comp, atom string, loc findingSite, rowNum int) {
	c, ok := e.resolver.Lookup(comp)
	if !ok {
		return
	}

	var exists bool
	if e.profile.Format() == schema.NEF {
		exists = len(ccd.ExpandPseudoAtom(c, atom)) > 0
	} else {
		exists = c.HasAtom(atom)
	}
	if exists {
		return
	}

	f := rowFinding{
		errKind: report.ErrInvalidAtomNomenclature,
		desc:    fmt.Sprintf("atom %s is not defined for residue %s", atom, comp),
	}
	if e.opts.NonblkBadNterm && isAmideProton(atom) {
		f = rowFinding{
			warnKind: report.WarnAtomNomenclature,
			desc:     fmt.Sprintf("terminal amide proton %s is not defined for residue %s", atom, comp),
		}
	}
	e.emit(f, loc, rowNum, atom)
}

// isAmideProton matches the N-terminal amide proton spellings H1..H3.
func isAmideProton(atom string) bool {
	if len(atom) != 2 || atom[0] != 'H' {
		return false
	}
	n, err := strconv.Atoi(atom[1:])
	return err == nil && n >= 1 && n <= 3
}

// atomTag pairs the atom column of one sequence key set with its author
// counterpart, when the format has one.
type atomTag struct {
	atom     string
	authAtom string
}

// atomTags names the atom columns matching each sequence key set of a
// subtype, in the same order.
func (e *Engine) atomTags(st schema.Subtype, n int) []atomTag {
	nef := e.profile.Format() == schema.NEF
	single := func(a, auth string) []atomTag { return []atomTag{{atom: a, authAtom: auth}} }

	if st == schema.ChemShift {
		if nef {
			return single("atom_name", "")
		}
		return single("Atom_ID", "Auth_atom_ID")
	}
	out := make([]atomTag, n)
	for i := range out {
		dim := strconv.Itoa(i + 1)
		if nef {
			out[i] = atomTag{atom: "atom_name_" + dim}
		} else {
			out[i] = atomTag{atom: "Atom_ID_" + dim, authAtom: "Auth_atom_ID_" + dim}
		}
	}
	return out
}
