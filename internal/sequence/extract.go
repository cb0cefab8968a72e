package sequence

import (
	"sort"
	"strconv"

	"github.com/nmrkit/nmrkit/internal/report"
	"github.com/nmrkit/nmrkit/internal/schema"
	"github.com/nmrkit/nmrkit/internal/star"
)

// Extractor derives polymer sequences from one entry's loops. Findings go
// straight to the report; extraction itself never fails.
type Extractor struct {
	Profile *schema.Profile
	Report  *report.Report
	File    string
}

// Reference extracts the reference polymer sequence from the poly_seq
// saveframe. Returns nil when the saveframe or its loop is absent.
func (x *Extractor) Reference(entry *star.Entry) *Polymer {
	d := x.Profile.Def(schema.PolySeq)
	keys := x.Profile.SeqKeySets(schema.PolySeq, 0)[0]

	b := newBuilder()
	found := false
	for _, sf := range entry.Saveframes {
		if sf.Category() != d.SaveframeCategory {
			continue
		}
		for _, lp := range sf.LoopsByCategory(d.LoopCategory) {
			found = true
			x.addRows(b, lp, keys, sf.Name)
			if x.Profile.Format() == schema.STAR {
				x.checkAuthorNumbering(lp, keys, sf.Name)
			}
		}
	}
	if !found {
		return nil
	}
	p := b.polymer()
	return &p
}

// FromLoops extracts one polymer per saveframe of every sequence-bearing
// subtype, annotated with its framecode and list ID.
func (x *Extractor) FromLoops(entry *star.Entry) []LoopSequence {
	var out []LoopSequence
	subtypes := []schema.Subtype{
		schema.ChemShift, schema.DistRestraint, schema.DihedRestraint,
		schema.RDCRestraint, schema.SpectralPeak,
	}

	listCounter := make(map[schema.Subtype]int)
	for _, sf := range entry.Saveframes {
		for _, st := range subtypes {
			d := x.Profile.Def(st)
			if sf.Category() != d.SaveframeCategory {
				continue
			}
			listCounter[st]++
			listID := listCounter[st]
			if d.SfIDTag != "" {
				if v, ok := sf.Tag(d.SfIDTag); ok {
					if n, err := strconv.Atoi(v); err == nil {
						listID = n
					}
				}
			}

			numDim := 0
			if st == schema.SpectralPeak {
				numDim = x.peakDimCount(sf, d)
				if numDim < 1 {
					continue
				}
			}

			b := newBuilder()
			for _, lp := range sf.LoopsByCategory(d.LoopCategory) {
				for _, keys := range x.Profile.SeqKeySets(st, numDim) {
					x.addRows(b, lp, keys, sf.Name)
				}
			}
			ls := LoopSequence{Polymer: b.polymer(), Subtype: st, SfFramecode: sf.Name, ListID: listID}
			if !ls.Empty() {
				out = append(out, ls)
			}
		}
	}
	return out
}

// CommonSequence unions loop-derived residues into a substitute reference
// when the input has no poly_seq saveframe. Two comp_ids at one position
// sort adjacently under the "%04d %s" key and are reported as mismatches.
func CommonSequence(loops []LoopSequence, rep *report.Report) *Polymer {
	type pos struct {
		chain string
		key   string
		seqID int
		comp  string
	}
	seen := make(map[string]bool)
	var all []pos
	for _, ls := range loops {
		for _, ch := range ls.Chains {
			for _, r := range ch.Residues {
				p := pos{chain: ch.ID, key: positionKey(r.SeqID, r.CompID), seqID: r.SeqID, comp: r.CompID}
				uniq := p.chain + " " + p.key
				if !seen[uniq] {
					seen[uniq] = true
					all = append(all, p)
				}
			}
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].chain != all[j].chain {
			return all[i].chain < all[j].chain
		}
		return all[i].key < all[j].key
	})

	b := newBuilder()
	for i, p := range all {
		if i > 0 && all[i-1].chain == p.chain && all[i-1].seqID == p.seqID {
			rep.Warning(report.WarnSequenceMismatch, report.Finding{
				Description: "chain " + p.chain + " position " + strconv.Itoa(p.seqID) +
					": residues " + all[i-1].comp + " and " + p.comp + " claimed by different loops",
			})
			continue
		}
		b.add(p.chain, p.seqID, p.comp)
	}
	p := b.polymer()
	if p.Empty() {
		return nil
	}
	return &p
}

func (x *Extractor) addRows(b *builder, lp *star.Loop, keys schema.SeqKeySet, sfName string) {
	ci := lp.ColumnIndex(keys.Chain)
	si := lp.ColumnIndex(keys.Seq)
	pi := lp.ColumnIndex(keys.Comp)
	if ci < 0 || si < 0 || pi < 0 {
		return
	}
	for i, row := range lp.Rows {
		chain, seqStr, comp := row[ci], row[si], row[pi]
		if star.IsNull(chain) || star.IsNull(seqStr) || star.IsNull(comp) {
			continue
		}
		seqID, err := strconv.Atoi(seqStr)
		if err != nil {
			// Typing is the loop validator's finding; skip here.
			continue
		}
		if prev := b.add(chain, seqID, comp); prev != "" {
			x.Report.Error(report.ErrSequenceMismatch, report.Finding{
				Description: "chain " + chain + " seq " + seqStr + ": residue " + comp +
					" conflicts with " + prev + " at the same position",
				File:      x.File,
				Saveframe: sfName,
				Loop:      lp.Category(),
				Row:       i + 1,
			})
		}
	}
}

// checkAuthorNumbering derives, per author chain, the modal offset between
// author and canonical numbering, then reports the positions violating it.
// Author comp_ids disagreeing with the canonical comp_id are reported too.
func (x *Extractor) checkAuthorNumbering(lp *star.Loop, keys schema.SeqKeySet, sfName string) {
	ci := lp.ColumnIndex(keys.Chain)
	si := lp.ColumnIndex(keys.Seq)
	pi := lp.ColumnIndex(keys.Comp)
	ai := lp.ColumnIndex("Auth_asym_ID")
	asi := lp.ColumnIndex("Auth_seq_ID")
	aci := lp.ColumnIndex("Auth_comp_ID")
	if ci < 0 || si < 0 || asi < 0 {
		return
	}

	type authRow struct {
		row    int
		chain  string
		offset int
	}
	var rows []authRow
	offsets := make(map[string]map[int]int)

	for i, row := range lp.Rows {
		if star.IsNull(row[si]) || star.IsNull(row[asi]) {
			continue
		}
		seqID, err1 := strconv.Atoi(row[si])
		authSeq, err2 := strconv.Atoi(row[asi])
		if err1 != nil || err2 != nil {
			continue
		}
		chain := row[ci]
		if ai >= 0 && !star.IsNull(row[ai]) {
			chain = row[ai]
		}
		off := authSeq - seqID
		if offsets[chain] == nil {
			offsets[chain] = make(map[int]int)
		}
		offsets[chain][off]++
		rows = append(rows, authRow{row: i, chain: chain, offset: off})

		if aci >= 0 && pi >= 0 && !star.IsNull(row[aci]) && !star.IsNull(row[pi]) && row[aci] != row[pi] {
			x.Report.Warning(report.WarnSequenceMismatch, report.Finding{
				Description: "author residue " + row[aci] + " disagrees with " + row[pi] +
					" at chain " + chain + " seq " + row[si],
				File:      x.File,
				Saveframe: sfName,
				Loop:      lp.Category(),
				Row:       i + 1,
			})
		}
	}

	modal := make(map[string]int)
	for chain, counts := range offsets {
		best, bestN := 0, -1
		for off, n := range counts {
			if n > bestN || (n == bestN && off < best) {
				best, bestN = off, n
			}
		}
		modal[chain] = best
	}

	for _, r := range rows {
		if r.offset != modal[r.chain] {
			x.Report.Warning(report.WarnSequenceMismatch, report.Finding{
				Description: "author numbering offset " + strconv.Itoa(r.offset) +
					" deviates from the modal offset " + strconv.Itoa(modal[r.chain]) +
					" of chain " + r.chain,
				File:      x.File,
				Saveframe: sfName,
				Loop:      lp.Category(),
				Row:       r.row + 1,
			})
		}
	}
}

func (x *Extractor) peakDimCount(sf *star.Saveframe, d *schema.Def) int {
	v, ok := sf.Tag(d.NumDimTag)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
