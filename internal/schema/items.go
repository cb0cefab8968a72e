// Package schema is the format abstraction layer: static tables describing,
// per (format, content subtype), the saveframe category, loop category, tag
// prefix, key/data item schemas, and allowed tags, plus the NEF/NMR-STAR
// name translation and the dimension templating used by spectral peak lists.
// Nothing here mutates at runtime.
package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Format identifies one of the two star-family vocabularies.
type Format string

const (
	// NEF is the community exchange format.
	NEF Format = "nef"

	// STAR is the database-native NMR-STAR format.
	STAR Format = "nmr-star"
)

// Subtype enumerates the recognized content subtypes.
type Subtype string

const (
	EntryInfo      Subtype = "entry_info"
	PolySeq        Subtype = "poly_seq"
	ChemShift      Subtype = "chem_shift"
	DistRestraint  Subtype = "dist_restraint"
	DihedRestraint Subtype = "dihed_restraint"
	RDCRestraint   Subtype = "rdc_restraint"
	SpectralPeak   Subtype = "spectral_peak"
)

// Subtypes lists the recognized subtypes in report order.
var Subtypes = []Subtype{
	EntryInfo, PolySeq, ChemShift, DistRestraint, DihedRestraint, RDCRestraint, SpectralPeak,
}

// ItemType is the tagged union of value types an item can declare.
type ItemType int

const (
	TypeStr ItemType = iota
	TypeInt
	TypePositiveInt
	TypeIndexInt
	TypeStaticIndex
	TypeFloat
	TypePositiveFloat
	TypeRangeFloat
	TypeEnum
	TypeEnumInt
	TypeBool
)

func (t ItemType) String() string {
	switch t {
	case TypeStr:
		return "str"
	case TypeInt:
		return "int"
	case TypePositiveInt:
		return "positive-int"
	case TypeIndexInt:
		return "index-int"
	case TypeStaticIndex:
		return "static-index"
	case TypeFloat:
		return "float"
	case TypePositiveFloat:
		return "positive-float"
	case TypeRangeFloat:
		return "range-float"
	case TypeEnum:
		return "enum"
	case TypeEnumInt:
		return "enum-int"
	case TypeBool:
		return "bool"
	}
	return "unknown"
}

// Range holds inclusive-or-exclusive numeric bounds.
type Range struct {
	Min, Max               float64
	MinExclusive, MaxExclusive bool
}

// Contains reports whether v satisfies the bounds.
func (r Range) Contains(v float64) bool {
	if r.MinExclusive {
		if v <= r.Min {
			return false
		}
	} else if v < r.Min {
		return false
	}
	if r.MaxExclusive {
		if v >= r.Max {
			return false
		}
	} else if v > r.Max {
		return false
	}
	return true
}

func (r Range) String() string {
	lo, hi := "[", "]"
	if r.MinExclusive {
		lo = "("
	}
	if r.MaxExclusive {
		hi = ")"
	}
	return fmt.Sprintf("%s%g, %g%s", lo, r.Min, r.Max, hi)
}

// Group records relational constraints among sibling items of a row.
type Group struct {
	// MemberWith: at least one item of the named set must be defined.
	MemberWith []string

	// CoexistWith: if this item is defined, the named partners must be too.
	CoexistWith []string

	// SmallerThan: this item's value must be <= each named item's value.
	SmallerThan []string

	// LargerThan: this item's value must be >= each named item's value.
	LargerThan []string
}

// Item describes one key or data item of a loop (or one saveframe tag).
type Item struct {
	Name        string
	Type        ItemType
	Mandatory   bool
	Range       *Range
	Enum        []string
	EnforceEnum bool
	Group       *Group
}

// InEnum reports whether v is one of the declared enum values.
func (it Item) InEnum(v string) bool {
	for _, e := range it.Enum {
		if e == v {
			return true
		}
	}
	return false
}

// Bit-exact value ranges for restraint and shift payloads.
var (
	RangeChemShift        = Range{Min: -300, Max: 300, MinExclusive: true, MaxExclusive: true}
	RangeChemShiftErr     = Range{Min: 0, Max: 3, MinExclusive: true, MaxExclusive: true}
	RangeDistRestraint    = Range{Min: 1, Max: 10, MinExclusive: true, MaxExclusive: true}
	RangeDistRestraintErr = Range{Min: 0, Max: 5, MinExclusive: true, MaxExclusive: true}
	RangeDihedRestraint   = Range{Min: -200, Max: 200, MinExclusive: true, MaxExclusive: true}
	RangeDihedRestraintErr = Range{Min: 0, Max: 20, MinExclusive: true, MaxExclusive: true}
	RangeRDCRestraint     = Range{Min: -50, Max: 50, MinExclusive: true, MaxExclusive: true}
	RangeRDCRestraintErr  = Range{Min: 0, Max: 5, MinExclusive: true, MaxExclusive: true}
	RangeWeight           = Range{Min: 0, Max: 10, MinExclusive: true}
)

// SpectralPeakLimDim caps the dimension count of a spectral peak list.
const SpectralPeakLimDim = 16

// ParseBool accepts the boolean spellings seen across both formats.
func ParseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", v)
}

// expand substitutes a dimension index into a templated item name.
func expand(template string, dim int) string {
	if !strings.Contains(template, "%s") {
		return template
	}
	return strings.ReplaceAll(template, "%s", strconv.Itoa(dim))
}
