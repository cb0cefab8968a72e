package schema

// SeqKeySet names the loop columns that identify one residue reference:
// chain, sequence number, and component.
type SeqKeySet struct {
	Chain string
	Seq   string
	Comp  string
}

// SeqKeySets returns the residue-reference column sets for a subtype: one
// set for sequence and shift loops, one per bounded atom for restraints,
// one per dimension for peak loops (numDim is ignored elsewhere).
func (p *Profile) SeqKeySets(st Subtype, numDim int) []SeqKeySet {
	chain, seq, comp := "chain_code", "sequence_code", "residue_name"
	if p.format == STAR {
		chain, seq, comp = "Entity_assembly_ID", "Comp_index_ID", "Comp_ID"
	}

	suffixes := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = expand("_%s", i+1)
		}
		return out
	}

	switch st {
	case PolySeq, ChemShift:
		return []SeqKeySet{{Chain: chain, Seq: seq, Comp: comp}}
	case DistRestraint, RDCRestraint:
		return seqKeySetsWith(chain, seq, comp, suffixes(2))
	case DihedRestraint:
		return seqKeySetsWith(chain, seq, comp, suffixes(4))
	case SpectralPeak:
		if numDim < 1 {
			return nil
		}
		return seqKeySetsWith(chain, seq, comp, suffixes(numDim))
	}
	return nil
}

func seqKeySetsWith(chain, seq, comp string, suffixes []string) []SeqKeySet {
	out := make([]SeqKeySet, len(suffixes))
	for i, s := range suffixes {
		out[i] = SeqKeySet{Chain: chain + s, Seq: seq + s, Comp: comp + s}
	}
	return out
}
