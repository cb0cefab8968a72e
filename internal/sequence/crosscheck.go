package sequence

import (
	"strconv"

	"github.com/nmrkit/nmrkit/internal/ccd"
	"github.com/nmrkit/nmrkit/internal/report"
)

// ChainAlignment records how one loop chain was paired with a reference
// chain and how well the sequences agree.
type ChainAlignment struct {
	SfFramecode string `json:"sf_framecode"`
	ListID      int    `json:"list_id"`
	RefChain    string `json:"ref_chain_code"`
	TestChain   string `json:"test_chain_code"`
	Alignment
}

// CrossChecker verifies every loop-derived sequence against a reference
// polymer and collects the alignments for the report.
type CrossChecker struct {
	Resolver *ccd.Resolver
	Report   *report.Report
	File     string
}

// Check pairs each chain of each loop sequence with the best-covering
// reference chain and reports residues the reference cannot account for.
// The alignment summary is attached to the report.
func (c *CrossChecker) Check(ref *Polymer, loops []LoopSequence) {
	if ref == nil || ref.Empty() {
		return
	}
	var summary []ChainAlignment
	for _, ls := range loops {
		for _, ch := range ls.Chains {
			refChain, align := c.assign(ref, ch)
			if refChain == nil {
				c.Report.Error(report.ErrSequenceMismatch, report.Finding{
					Description: "chain " + ch.ID + " in " + ls.SfFramecode +
						" matches no chain of the reference sequence",
					File:      c.File,
					Saveframe: ls.SfFramecode,
				})
				continue
			}
			c.checkResidues(refChain, ch, ls)
			summary = append(summary, ChainAlignment{
				SfFramecode: ls.SfFramecode,
				ListID:      ls.ListID,
				RefChain:    refChain.ID,
				TestChain:   ch.ID,
				Alignment:   align,
			})
		}
	}
	if summary != nil {
		c.Report.SetSequenceAlignments(summary)
	}
}

// assign picks the reference chain with the highest alignment coverage.
// Ties prefer the chain sharing the test chain's ID, then the smaller ID.
func (c *CrossChecker) assign(ref *Polymer, test Chain) (*Chain, Alignment) {
	testSeq := test.OneLetter(c.Resolver)
	var best *Chain
	var bestAlign Alignment
	for i := range ref.Chains {
		rc := &ref.Chains[i]
		a := Align(rc.OneLetter(c.Resolver), testSeq)
		switch {
		case best == nil,
			a.Coverage > bestAlign.Coverage,
			a.Coverage == bestAlign.Coverage && rc.ID == test.ID && best.ID != test.ID,
			a.Coverage == bestAlign.Coverage && best.ID != test.ID && rc.ID < best.ID:
			best, bestAlign = rc, a
		}
	}
	if best != nil && bestAlign.Coverage <= 0 {
		return nil, Alignment{}
	}
	return best, bestAlign
}

func (c *CrossChecker) checkResidues(refChain *Chain, test Chain, ls LoopSequence) {
	for _, r := range test.Residues {
		refComp := refChain.CompAt(r.SeqID)
		if refComp == "" {
			c.Report.Error(report.ErrSequenceMismatch, report.Finding{
				Description: "residue " + r.CompID + " " + strconv.Itoa(r.SeqID) +
					" of chain " + test.ID + " is outside the reference sequence",
				File:      c.File,
				Saveframe: ls.SfFramecode,
				Value:     r.CompID,
			})
			continue
		}
		if refComp != r.CompID {
			c.Report.Error(report.ErrSequenceMismatch, report.Finding{
				Description: "residue " + r.CompID + " " + strconv.Itoa(r.SeqID) +
					" of chain " + test.ID + " disagrees with reference residue " + refComp,
				File:      c.File,
				Saveframe: ls.SfFramecode,
				Value:     r.CompID,
			})
		}
	}
}
