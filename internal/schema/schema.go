package schema

// Def bundles everything the validators need to know about one
// (format, subtype) pair.
type Def struct {
	SaveframeCategory string
	LoopCategory      string
	TagPrefix         string

	// IndexTag names the loop's ordering column, or "" when the subtype
	// has none.
	IndexTag string

	// NumDimTag names the saveframe tag carrying the dimension count
	// (spectral peak lists only).
	NumDimTag string

	// SfIDTag names the saveframe-level list ID tag ("" for NEF).
	SfIDTag string

	// ListIDTag names the loop column that must match the enclosing
	// saveframe's list ID ("" for NEF, which does not model the relation).
	ListIDTag string

	KeyItems  []Item
	DataItems []Item

	// SfTagItems describes the saveframe-level tags.
	SfTagItems []Item

	// ExtraTags lists optional tags that are accepted but not validated
	// beyond presence.
	ExtraTags []string

	// AuxLoops describes auxiliary loop categories owned by the same
	// saveframe (e.g. spectrum dimension loops), keyed by loop category.
	AuxLoops map[string]*AuxLoopDef
}

// AuxLoopDef describes an auxiliary loop inside a saveframe.
type AuxLoopDef struct {
	KeyItems  []Item
	DataItems []Item
	ListIDTag string
}

// AllowedTags returns the full set of recognized loop column names.
func (d *Def) AllowedTags() map[string]bool {
	out := make(map[string]bool, len(d.KeyItems)+len(d.DataItems)+len(d.ExtraTags))
	for _, it := range d.KeyItems {
		out[it.Name] = true
	}
	for _, it := range d.DataItems {
		out[it.Name] = true
	}
	for _, name := range d.ExtraTags {
		out[name] = true
	}
	if d.ListIDTag != "" {
		out[d.ListIDTag] = true
	}
	return out
}

// SfAllowedTags returns the recognized saveframe tag names.
func (d *Def) SfAllowedTags() map[string]bool {
	out := make(map[string]bool, len(d.SfTagItems)+2)
	for _, it := range d.SfTagItems {
		out[it.Name] = true
	}
	out["sf_category"] = true
	out["sf_framecode"] = true
	out["Sf_category"] = true
	out["Sf_framecode"] = true
	// Annotated NMR-STAR files carry the entry ID on every saveframe.
	out["Entry_ID"] = true
	return out
}

// Profile is the format abstraction: a read-only view over one format's
// static tables.
type Profile struct {
	format Format
	defs   map[Subtype]*Def

	bySfCategory   map[string]Subtype
	byLoopCategory map[string]Subtype
}

var profiles = map[Format]*Profile{
	NEF:  newProfile(NEF, nefDefs),
	STAR: newProfile(STAR, starDefs),
}

func newProfile(f Format, defs map[Subtype]*Def) *Profile {
	p := &Profile{
		format:         f,
		defs:           defs,
		bySfCategory:   make(map[string]Subtype, len(defs)),
		byLoopCategory: make(map[string]Subtype, len(defs)),
	}
	for st, d := range defs {
		p.bySfCategory[d.SaveframeCategory] = st
		p.byLoopCategory[d.LoopCategory] = st
	}
	return p
}

// ForFormat returns the profile for a format. Panics on an unknown format;
// callers only hold Format values produced by this package.
func ForFormat(f Format) *Profile {
	p, ok := profiles[f]
	if !ok {
		panic("schema: unknown format " + string(f))
	}
	return p
}

// Format returns the profile's format.
func (p *Profile) Format() Format { return p.format }

// Def returns the definition for a subtype, or nil when the subtype is not
// modeled for this format.
func (p *Profile) Def(st Subtype) *Def { return p.defs[st] }

// SaveframeCategory returns the saveframe category name for a subtype.
func (p *Profile) SaveframeCategory(st Subtype) string {
	if d := p.defs[st]; d != nil {
		return d.SaveframeCategory
	}
	return ""
}

// LoopCategory returns the loop category name for a subtype.
func (p *Profile) LoopCategory(st Subtype) string {
	if d := p.defs[st]; d != nil {
		return d.LoopCategory
	}
	return ""
}

// TagPrefix returns the saveframe tag prefix for a subtype.
func (p *Profile) TagPrefix(st Subtype) string {
	if d := p.defs[st]; d != nil {
		return d.TagPrefix
	}
	return ""
}

// IndexTag returns the index column name for a subtype, or "".
func (p *Profile) IndexTag(st Subtype) string {
	if d := p.defs[st]; d != nil {
		return d.IndexTag
	}
	return ""
}

// KeyItems returns the key item schemas for a subtype.
func (p *Profile) KeyItems(st Subtype) []Item {
	if d := p.defs[st]; d != nil {
		return d.KeyItems
	}
	return nil
}

// DataItems returns the data item schemas for a subtype.
func (p *Profile) DataItems(st Subtype) []Item {
	if d := p.defs[st]; d != nil {
		return d.DataItems
	}
	return nil
}

// SubtypeOfSaveframe maps a saveframe category to its subtype.
func (p *Profile) SubtypeOfSaveframe(category string) (Subtype, bool) {
	st, ok := p.bySfCategory[category]
	return st, ok
}

// SubtypeOfLoop maps a loop category to its subtype.
func (p *Profile) SubtypeOfLoop(category string) (Subtype, bool) {
	st, ok := p.byLoopCategory[category]
	return st, ok
}

// DetectFormat classifies an entry by the saveframe categories it carries.
// The counts let the caller confirm a declared format against the detected
// one.
func DetectFormat(categories []string) (Format, bool) {
	nef, str := 0, 0
	for _, c := range categories {
		if _, ok := profiles[NEF].bySfCategory[c]; ok {
			nef++
		}
		if _, ok := profiles[STAR].bySfCategory[c]; ok {
			str++
		}
	}
	switch {
	case nef > str:
		return NEF, true
	case str > nef:
		return STAR, true
	}
	return "", false
}
