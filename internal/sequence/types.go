// Package sequence builds polymer sequences from star loops, aligns them
// against the reference sequence, and assigns candidate chains to reference
// chains.
package sequence

import (
	"fmt"
	"sort"

	"github.com/nmrkit/nmrkit/internal/ccd"
	"github.com/nmrkit/nmrkit/internal/schema"
)

// Residue is one (seq_id, comp_id) position of a chain.
type Residue struct {
	SeqID  int
	CompID string
}

// Chain is an ordered run of residues under one chain identifier. Within a
// chain, seq_id values are unique.
type Chain struct {
	ID       string
	Residues []Residue
}

// CompAt returns the comp_id at a seq_id, or "" when absent.
func (c *Chain) CompAt(seqID int) string {
	for _, r := range c.Residues {
		if r.SeqID == seqID {
			return r.CompID
		}
	}
	return ""
}

// OneLetter renders the chain as 1-letter codes in seq_id order.
func (c *Chain) OneLetter(resolver *ccd.Resolver) string {
	out := make([]byte, len(c.Residues))
	for i, r := range c.Residues {
		out[i] = resolver.OneLetterCode(r.CompID)
	}
	return string(out)
}

// Polymer is a set of chains, sorted by chain ID.
type Polymer struct {
	Chains []Chain
}

// Chain returns the chain with the given ID, or nil.
func (p *Polymer) Chain(id string) *Chain {
	for i := range p.Chains {
		if p.Chains[i].ID == id {
			return &p.Chains[i]
		}
	}
	return nil
}

// Empty reports whether the polymer has no residues.
func (p *Polymer) Empty() bool {
	for _, c := range p.Chains {
		if len(c.Residues) > 0 {
			return false
		}
	}
	return true
}

// LoopSequence is a per-saveframe polymer with its provenance.
type LoopSequence struct {
	Polymer
	Subtype     schema.Subtype
	SfFramecode string
	ListID      int
}

// builder accumulates (chain, seq, comp) tuples and emits sorted chains.
type builder struct {
	chains map[string]map[int]string
	order  []string
}

func newBuilder() *builder {
	return &builder{chains: make(map[string]map[int]string)}
}

// add records one residue. A comp_id conflicting with an earlier tuple at
// the same position is reported back to the caller.
func (b *builder) add(chainID string, seqID int, compID string) (conflict string) {
	m, ok := b.chains[chainID]
	if !ok {
		m = make(map[int]string)
		b.chains[chainID] = m
		b.order = append(b.order, chainID)
	}
	if prev, ok := m[seqID]; ok {
		if prev != compID {
			return prev
		}
		return ""
	}
	m[seqID] = compID
	return ""
}

func (b *builder) polymer() Polymer {
	ids := append([]string{}, b.order...)
	sort.Strings(ids)

	var p Polymer
	for _, id := range ids {
		m := b.chains[id]
		seqIDs := make([]int, 0, len(m))
		for s := range m {
			seqIDs = append(seqIDs, s)
		}
		sort.Ints(seqIDs)

		ch := Chain{ID: id, Residues: make([]Residue, 0, len(seqIDs))}
		for _, s := range seqIDs {
			ch.Residues = append(ch.Residues, Residue{SeqID: s, CompID: m[s]})
		}
		p.Chains = append(p.Chains, ch)
	}
	return p
}

// positionKey formats a (seq, comp) tuple so that lexical ordering equals
// numeric ordering and two comp_ids at one position sort adjacently.
func positionKey(seqID int, compID string) string {
	return fmt.Sprintf("%04d %s", seqID, compID)
}
