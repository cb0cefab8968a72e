package sequence

import (
	"strconv"

	"github.com/nmrkit/nmrkit/internal/star"
)

// FromCoordinates extracts the polymer sequence from a coordinate model
// file parsed as a block-level entry (mmCIF style). The entity_poly_seq
// table is preferred, with struct_asym mapping entities to chains; when
// either is absent the sequence is recovered from atom_site records.
// Returns nil when the entry carries no usable sequence.
func FromCoordinates(entry *star.Entry) *Polymer {
	if p := fromEntityPolySeq(entry); p != nil {
		return p
	}
	return fromAtomSite(entry)
}

func fromEntityPolySeq(entry *star.Entry) *Polymer {
	polySeq := blockLoop(entry, "_entity_poly_seq")
	asym := blockLoop(entry, "_struct_asym")
	if polySeq == nil || asym == nil {
		return nil
	}

	entityIdx := asym.ColumnIndex("entity_id")
	idIdx := asym.ColumnIndex("id")
	if entityIdx < 0 || idIdx < 0 {
		return nil
	}
	chainsOf := make(map[string][]string)
	for _, row := range asym.Rows {
		entity := row[entityIdx]
		chainsOf[entity] = append(chainsOf[entity], row[idIdx])
	}

	eIdx := polySeq.ColumnIndex("entity_id")
	nIdx := polySeq.ColumnIndex("num")
	mIdx := polySeq.ColumnIndex("mon_id")
	if eIdx < 0 || nIdx < 0 || mIdx < 0 {
		return nil
	}

	b := newBuilder()
	for _, row := range polySeq.Rows {
		seqID, err := strconv.Atoi(row[nIdx])
		if err != nil {
			continue
		}
		for _, chain := range chainsOf[row[eIdx]] {
			b.add(chain, seqID, row[mIdx])
		}
	}
	p := b.polymer()
	if p.Empty() {
		return nil
	}
	return &p
}

func fromAtomSite(entry *star.Entry) *Polymer {
	sites := blockLoop(entry, "_atom_site")
	if sites == nil {
		return nil
	}
	aIdx := sites.ColumnIndex("label_asym_id")
	sIdx := sites.ColumnIndex("label_seq_id")
	cIdx := sites.ColumnIndex("label_comp_id")
	if aIdx < 0 || sIdx < 0 || cIdx < 0 {
		return nil
	}

	b := newBuilder()
	for _, row := range sites.Rows {
		if star.IsNull(row[sIdx]) {
			continue
		}
		seqID, err := strconv.Atoi(row[sIdx])
		if err != nil {
			continue
		}
		b.add(row[aIdx], seqID, row[cIdx])
	}
	p := b.polymer()
	if p.Empty() {
		return nil
	}
	return &p
}

func blockLoop(entry *star.Entry, category string) *star.Loop {
	for _, lp := range entry.Loops {
		if lp.Category() == category {
			return lp
		}
	}
	return nil
}
