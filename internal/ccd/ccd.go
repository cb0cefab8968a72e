// Package ccd resolves residues and atoms against the chemical component
// dictionary. The standard amino-acid and nucleotide components are
// compiled in; lookups go through a lazily populated read-only cache that
// is safe to share across validation runs.
package ccd

import (
	"sort"
	"strings"
	"sync"
)

// PolymerType classifies a component.
type PolymerType string

const (
	AminoAcid  PolymerType = "amino-acid"
	DNA        PolymerType = "dna"
	RNA        PolymerType = "rna"
	NonPolymer PolymerType = "non-polymer"
)

// Component is one dictionary entry: the canonical atom list plus the
// flags the validators need.
type Component struct {
	ID      string
	Type    PolymerType
	OneLetter byte

	// Atoms in dictionary order.
	Atoms []string

	// LeavingAtoms are present only at chain termini.
	LeavingAtoms []string

	atomSet map[string]bool
}

// HasAtom reports whether the atom belongs to this component, including
// leaving atoms.
func (c *Component) HasAtom(name string) bool {
	return c.atomSet[name]
}

// AtomsWithPrefix returns the component's atoms starting with prefix, in
// dictionary order.
func (c *Component) AtomsWithPrefix(prefix string) []string {
	var out []string
	for _, a := range c.Atoms {
		if strings.HasPrefix(a, prefix) {
			out = append(out, a)
		}
	}
	return out
}

// Resolver is the process-wide component cache. Population is lazy; the
// cache is never invalidated.
type Resolver struct {
	mu    sync.RWMutex
	comps map[string]*Component
}

// NewResolver creates a resolver seeded with the standard components.
func NewResolver() *Resolver {
	return &Resolver{comps: make(map[string]*Component)}
}

// Lookup returns the component for a comp_id, consulting the builtin
// dictionary on a cache miss. Lookup is case-insensitive on the comp_id.
func (r *Resolver) Lookup(compID string) (*Component, bool) {
	id := strings.ToUpper(compID)

	r.mu.RLock()
	c, ok := r.comps[id]
	r.mu.RUnlock()
	if ok {
		return c, c != nil
	}

	c = buildComponent(id)

	r.mu.Lock()
	r.comps[id] = c
	r.mu.Unlock()
	return c, c != nil
}

// IsStandard reports whether comp_id names a standard residue.
func (r *Resolver) IsStandard(compID string) bool {
	_, ok := standardResidues[strings.ToUpper(compID)]
	return ok
}

// OneLetterCode returns the 1-letter code for a comp_id, or 'X' for
// anything without one.
func (r *Resolver) OneLetterCode(compID string) byte {
	if def, ok := standardResidues[strings.ToUpper(compID)]; ok {
		return def.oneLetter
	}
	return 'X'
}

func buildComponent(id string) *Component {
	def, ok := standardResidues[id]
	if !ok {
		return nil
	}
	c := &Component{
		ID:           id,
		Type:         def.polymerType,
		OneLetter:    def.oneLetter,
		Atoms:        def.atoms,
		LeavingAtoms: def.leaving,
		atomSet:      make(map[string]bool, len(def.atoms)+len(def.leaving)),
	}
	for _, a := range def.atoms {
		c.atomSet[a] = true
	}
	for _, a := range def.leaving {
		c.atomSet[a] = true
	}
	return c
}

// GeminalAtoms returns the atoms of a residue admissible for ambiguity
// code 2 (geminal pairs).
func GeminalAtoms(compID string) map[string]bool {
	return geminalAtoms[strings.ToUpper(compID)]
}

// AromaticAtoms returns the atoms of a residue admissible for ambiguity
// code 3 (aromatic ring symmetry).
func AromaticAtoms(compID string) map[string]bool {
	return aromaticAtoms[strings.ToUpper(compID)]
}

// ExpandPseudoAtom translates a NEF atom name into the concrete atom set
// it denotes for the component. Concrete names map to themselves; '%' and
// '*' suffixes are digit wildcards; 'x'/'y' suffixes pick one member of a
// stereo pair; 'Q'/'M' prefixes are the legacy pseudo-atom spellings.
// An empty result means the name resolves to nothing in the dictionary.
func ExpandPseudoAtom(c *Component, atom string) []string {
	if c == nil || atom == "" {
		return nil
	}
	if c.HasAtom(atom) {
		return []string{atom}
	}

	name := atom
	wildcard := false
	if strings.HasSuffix(name, "%") || strings.HasSuffix(name, "*") {
		wildcard = true
		name = name[:len(name)-1]
	}

	if strings.HasSuffix(name, "x") || strings.HasSuffix(name, "y") {
		pair := stereoPair(c, name[:len(name)-1])
		if pair == nil {
			return nil
		}
		stem := pair[0]
		if strings.HasSuffix(name, "y") {
			stem = pair[1]
		}
		if !wildcard && c.HasAtom(stem) {
			return []string{stem}
		}
		// A stem like LEU HD1 denotes its methyl protons.
		return numericExpansion(c, stem)
	}

	if wildcard {
		return numericExpansion(c, name)
	}

	if strings.HasPrefix(atom, "Q") || strings.HasPrefix(atom, "M") {
		return numericExpansion(c, "H"+atom[1:])
	}
	return nil
}

// numericExpansion returns the atoms matching prefix followed by digits
// only (HB -> HB2, HB3 but not "HB" itself unless present).
func numericExpansion(c *Component, prefix string) []string {
	var out []string
	for _, a := range c.Atoms {
		if !strings.HasPrefix(a, prefix) {
			continue
		}
		rest := a[len(prefix):]
		if rest == "" || allDigits(rest) {
			out = append(out, a)
		}
	}
	sort.Strings(out)
	return out
}

// stereoPair returns the two atoms of a prochiral pair for the prefix,
// e.g. HB -> [HB2 HB3], or the two branch methyls, e.g. HG -> wider set
// handled by the wildcard path. nil when the prefix does not name a pair.
func stereoPair(c *Component, prefix string) []string {
	atoms := numericExpansion(c, prefix)
	if len(atoms) == 2 {
		return atoms
	}
	// Branch pairs like VAL CGx/CGy or LEU CDx/CDy: two sibling groups
	// distinguished by the first digit.
	groups := make(map[byte]bool)
	for _, a := range atoms {
		groups[a[len(prefix)]] = true
	}
	if len(groups) == 2 {
		digits := make([]byte, 0, 2)
		for d := range groups {
			digits = append(digits, d)
		}
		sort.Slice(digits, func(i, j int) bool { return digits[i] < digits[j] })
		return []string{prefix + string(digits[0]), prefix + string(digits[1])}
	}
	return nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
