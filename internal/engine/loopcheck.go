package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nmrkit/nmrkit/internal/report"
	"github.com/nmrkit/nmrkit/internal/schema"
	"github.com/nmrkit/nmrkit/internal/star"
)

// checkLoop validates one primary loop: column presence, per-row typing,
// ranges, enums, groups, key duplication, and index ordering.
func (e *Engine) checkLoop(sf *star.Saveframe, lp *star.Loop, st schema.Subtype, numDim int, file string) {
	d := e.profile.Def(st)
	keys, datas := d.KeyItems, d.DataItems
	var disallowed []string
	if st == schema.SpectralPeak {
		keys, datas, disallowed = e.profile.ExpandPeakSchema(numDim)
	}

	loc := findingSite{file: file, sf: sf.Name, loop: lp.Category()}
	allowed := d.AllowedTags()
	if st == schema.SpectralPeak {
		// Templated names are only concrete after dimension expansion.
		// Over-dimensioned columns are already reported as disallowed.
		allowed = itemNameSet(keys, datas, append(append([]string{}, d.ExtraTags...), disallowed...), d.ListIDTag)
	}
	e.checkUnknownColumns(lp, allowed, loc)
	e.checkColumns(lp, keys, datas, disallowed, loc)
	e.checkRows(lp, append(append([]schema.Item{}, keys...), datas...), loc)
	e.checkKeyTuples(lp, keys, loc)
	if d.IndexTag != "" {
		e.checkIndexColumn(lp, d.IndexTag, loc)
	}
}

func itemNameSet(keys, datas []schema.Item, extra []string, listIDTag string) map[string]bool {
	out := make(map[string]bool, len(keys)+len(datas)+len(extra)+1)
	for _, it := range keys {
		out[it.Name] = true
	}
	for _, it := range datas {
		out[it.Name] = true
	}
	for _, name := range extra {
		out[name] = true
	}
	if listIDTag != "" {
		out[listIDTag] = true
	}
	return out
}

// checkAuxLoop validates an auxiliary loop owned by the same saveframe.
func (e *Engine) checkAuxLoop(sf *star.Saveframe, lp *star.Loop, aux *schema.AuxLoopDef, file string) {
	loc := findingSite{file: file, sf: sf.Name, loop: lp.Category()}
	e.checkUnknownColumns(lp, itemNameSet(aux.KeyItems, aux.DataItems, nil, aux.ListIDTag), loc)
	e.checkColumns(lp, aux.KeyItems, aux.DataItems, nil, loc)
	e.checkRows(lp, append(append([]schema.Item{}, aux.KeyItems...), aux.DataItems...), loc)
	e.checkKeyTuples(lp, aux.KeyItems, loc)
}

// checkSaveframeTags validates the saveframe-level tags with the row
// machinery, treating the tag set as a single row.
func (e *Engine) checkSaveframeTags(sf *star.Saveframe, st schema.Subtype, file string) {
	d := e.profile.Def(st)
	loc := findingSite{file: file, sf: sf.Name}
	allowed := d.SfAllowedTags()
	for _, name := range sf.LocalTagNames() {
		if allowed[name] {
			continue
		}
		e.rep.Warning(report.WarnSkippedSfCategory, report.Finding{
			Description: fmt.Sprintf("tag %s.%s is not defined for this saveframe and was not checked", sf.TagPrefix(), name),
			File:        file,
			Saveframe:   sf.Name,
			Value:       name,
		})
	}
	if len(d.SfTagItems) == 0 {
		return
	}
	for _, it := range d.SfTagItems {
		v, ok := sf.Tag(it.Name)
		if !ok || star.IsNull(v) {
			if it.Mandatory && e.opts.CheckMandatoryTag {
				e.rep.Error(report.ErrMissingMandatoryItem, report.Finding{
					Description: fmt.Sprintf("mandatory tag %s.%s is missing", sf.TagPrefix(), it.Name),
					File:        file,
					Saveframe:   sf.Name,
				})
			}
			continue
		}
		for _, f := range checkValue(it, v) {
			e.emit(f, loc, 0, v)
		}
	}
}

// findingSite carries the source coordinates shared by a batch of findings.
type findingSite struct {
	file string
	sf   string
	loop string
}

// rowFinding is one typed finding produced by a row pass, before it is
// attached to the report with its coordinates.
type rowFinding struct {
	errKind  report.ErrorKind
	warnKind report.WarningKind
	desc     string
	row      int
	value    string
}

// checkUnknownColumns flags loop columns the dictionary does not define.
// The rows under them carry data no validator looks at.
func (e *Engine) checkUnknownColumns(lp *star.Loop, allowed map[string]bool, loc findingSite) {
	for _, name := range lp.LocalColumns() {
		if allowed[name] {
			continue
		}
		e.rep.Warning(report.WarnSkippedLpCategory, report.Finding{
			Description: fmt.Sprintf("tag %s.%s is not defined for this loop and was not checked", loc.loop, name),
			File:        loc.file,
			Saveframe:   loc.sf,
			Loop:        loc.loop,
			Value:       name,
		})
	}
}

// checkColumns verifies that keys and mandatory data items have columns,
// and that no disallowed column is present.
func (e *Engine) checkColumns(lp *star.Loop, keys, datas []schema.Item, disallowed []string, loc findingSite) {
	for _, it := range keys {
		if lp.ColumnIndex(it.Name) < 0 {
			e.rep.Error(report.ErrMissingMandatoryItem, report.Finding{
				Description: fmt.Sprintf("key item %s is missing from %s", it.Name, loc.loop),
				File:        loc.file,
				Saveframe:   loc.sf,
				Loop:        loc.loop,
			})
		}
	}
	for _, it := range datas {
		if it.Mandatory && lp.ColumnIndex(it.Name) < 0 {
			e.rep.Error(report.ErrMissingMandatoryItem, report.Finding{
				Description: fmt.Sprintf("mandatory item %s is missing from %s", it.Name, loc.loop),
				File:        loc.file,
				Saveframe:   loc.sf,
				Loop:        loc.loop,
			})
		}
	}
	for _, name := range disallowed {
		if lp.ColumnIndex(name) >= 0 {
			e.rep.Error(report.ErrInvalidData, report.Finding{
				Description: fmt.Sprintf("item %s exceeds the declared dimension count", name),
				File:        loc.file,
				Saveframe:   loc.sf,
				Loop:        loc.loop,
				Value:       name,
			})
		}
	}
}

// checkRows runs the strict row pass and, when strict enforcement broke on
// a zero or enum violation, repeats the pass relaxed so every later row
// still gets checked.
func (e *Engine) checkRows(lp *star.Loop, items []schema.Item, loc findingSite) {
	findings, clean := rowPass(lp, items, true)
	if !clean {
		findings, _ = rowPass(lp, items, false)
	}
	for _, f := range findings {
		e.emit(f, loc, f.row, f.value)
	}
}

func (e *Engine) emit(f rowFinding, loc findingSite, row int, value string) {
	finding := report.Finding{
		Description: f.desc,
		File:        loc.file,
		Saveframe:   loc.sf,
		Loop:        loc.loop,
		Row:         row,
		Value:       value,
	}
	if f.errKind != "" {
		e.rep.Error(f.errKind, finding)
	} else {
		e.rep.Warning(f.warnKind, finding)
	}
}

// rowPass type-checks every declared item of every row. In strict mode the
// pass aborts at the first zero-value or soft enum violation, signalling
// the caller to retry relaxed; the relaxed pass reports those as warnings
// and keeps going.
func rowPass(lp *star.Loop, items []schema.Item, strict bool) (findings []rowFinding, clean bool) {
	cols := make([]int, len(items))
	for i, it := range items {
		cols[i] = lp.ColumnIndex(it.Name)
	}

	values := func(row []string) map[string]string {
		m := make(map[string]string, len(items))
		for i, it := range items {
			if cols[i] >= 0 && !star.IsNull(row[cols[i]]) {
				m[it.Name] = row[cols[i]]
			}
		}
		return m
	}

	for r, row := range lp.Rows {
		for i, it := range items {
			if cols[i] < 0 {
				continue
			}
			v := row[cols[i]]
			if star.IsNull(v) {
				continue
			}
			fs := checkValue(it, v)
			for _, f := range fs {
				if strict && f.warnKind != "" {
					return nil, false
				}
				f.row = r + 1
				f.value = v
				findings = append(findings, f)
			}
		}
		findings = append(findings, checkGroups(items, values(row), r+1)...)
	}
	return findings, true
}

// checkValue type-parses one cell. Zero values of positive types and soft
// enum violations come back as warnings; everything else is an error.
func checkValue(it schema.Item, v string) []rowFinding {
	invalid := func(format string, args ...any) []rowFinding {
		return []rowFinding{{errKind: report.ErrInvalidData, desc: fmt.Sprintf(format, args...)}}
	}

	switch it.Type {
	case schema.TypeStr:
		return nil

	case schema.TypeInt, schema.TypeStaticIndex:
		if _, err := strconv.Atoi(v); err != nil {
			return invalid("%s must be an integer, got %q", it.Name, v)
		}

	case schema.TypeIndexInt:
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return invalid("%s must be a positive index, got %q", it.Name, v)
		}

	case schema.TypePositiveInt:
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return invalid("%s must be a positive integer, got %q", it.Name, v)
		}
		if n == 0 {
			return []rowFinding{{
				warnKind: report.WarnMissingData,
				desc:     fmt.Sprintf("[ZERO] %s is zero", it.Name),
			}}
		}

	case schema.TypeFloat, schema.TypeRangeFloat:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return invalid("%s must be a number, got %q", it.Name, v)
		}
		if it.Range != nil && !it.Range.Contains(f) {
			return invalid("%s value %s is outside the allowed range %s", it.Name, v, it.Range)
		}

	case schema.TypePositiveFloat:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return invalid("%s must be a positive number, got %q", it.Name, v)
		}
		if f == 0 {
			return []rowFinding{{
				warnKind: report.WarnMissingData,
				desc:     fmt.Sprintf("[ZERO] %s is zero", it.Name),
			}}
		}
		if it.Range != nil && !it.Range.Contains(f) {
			return invalid("%s value %s is outside the allowed range %s", it.Name, v, it.Range)
		}

	case schema.TypeEnum:
		if !it.InEnum(v) {
			return enumFinding(it, v)
		}

	case schema.TypeEnumInt:
		if _, err := strconv.Atoi(v); err != nil {
			return invalid("%s must be an integer, got %q", it.Name, v)
		}
		if !it.InEnum(v) {
			return enumFinding(it, v)
		}

	case schema.TypeBool:
		if _, err := schema.ParseBool(v); err != nil {
			return invalid("%s must be a boolean, got %q", it.Name, v)
		}
	}
	return nil
}

func enumFinding(it schema.Item, v string) []rowFinding {
	desc := fmt.Sprintf("%s value %q must be one of [%s]", it.Name, v, strings.Join(it.Enum, ", "))
	if it.EnforceEnum {
		return []rowFinding{{errKind: report.ErrInvalidData, desc: desc}}
	}
	return []rowFinding{{warnKind: report.WarnEnumFailure, desc: "[ENUM] " + desc}}
}

// checkGroups evaluates the relational constraints among sibling items of
// one row. present maps item name to its non-null cell value.
func checkGroups(items []schema.Item, present map[string]string, row int) []rowFinding {
	var findings []rowFinding
	seenMemberSet := make(map[string]bool)
	for _, it := range items {
		g := it.Group
		if g == nil {
			continue
		}
		_, defined := present[it.Name]

		// Member sets list every participant, so evaluate each set once.
		if setKey := strings.Join(g.MemberWith, ","); len(g.MemberWith) > 0 && !seenMemberSet[setKey] {
			seenMemberSet[setKey] = true
			any := false
			for _, name := range g.MemberWith {
				if _, ok := present[name]; ok {
					any = true
					break
				}
			}
			if !any {
				findings = append(findings, rowFinding{
					errKind: report.ErrMissingMandatoryItem,
					desc:    fmt.Sprintf("one of %s must be given", strings.Join(g.MemberWith, ", ")),
					row:     row,
				})
			}
		}

		if defined {
			for _, name := range g.CoexistWith {
				if _, ok := present[name]; !ok {
					findings = append(findings, rowFinding{
						errKind: report.ErrMissingMandatoryItem,
						desc:    fmt.Sprintf("%s requires %s in the same row", it.Name, name),
						row:     row,
					})
				}
			}
			v, verr := strconv.ParseFloat(present[it.Name], 64)
			if verr == nil {
				for _, name := range g.SmallerThan {
					if o, ok := parsePresent(present, name); ok && v > o {
						findings = append(findings, rowFinding{
							errKind: report.ErrInvalidData,
							desc:    fmt.Sprintf("%s (%s) must not exceed %s (%g)", it.Name, present[it.Name], name, o),
							row:     row,
							value:   present[it.Name],
						})
					}
				}
				for _, name := range g.LargerThan {
					if o, ok := parsePresent(present, name); ok && v < o {
						findings = append(findings, rowFinding{
							errKind: report.ErrInvalidData,
							desc:    fmt.Sprintf("%s (%s) must not fall below %s (%g)", it.Name, present[it.Name], name, o),
							row:     row,
							value:   present[it.Name],
						})
					}
				}
			}
		}
	}
	return findings
}

func parsePresent(present map[string]string, name string) (float64, bool) {
	v, ok := present[name]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// checkKeyTuples reports rows whose key tuple repeats an earlier row.
func (e *Engine) checkKeyTuples(lp *star.Loop, keys []schema.Item, loc findingSite) {
	cols := make([]int, 0, len(keys))
	for _, it := range keys {
		if i := lp.ColumnIndex(it.Name); i >= 0 {
			cols = append(cols, i)
		}
	}
	if len(cols) == 0 {
		return
	}
	seen := make(map[string]int, len(lp.Rows))
	for r, row := range lp.Rows {
		parts := make([]string, len(cols))
		for i, c := range cols {
			parts[i] = row[c]
		}
		key := strings.Join(parts, "\x1f")
		if first, ok := seen[key]; ok {
			e.rep.Error(report.ErrMultipleData, report.Finding{
				Description: fmt.Sprintf("key (%s) duplicates row %d", strings.Join(parts, ", "), first),
				File:        loc.file,
				Saveframe:   loc.sf,
				Loop:        loc.loop,
				Row:         r + 1,
			})
			continue
		}
		seen[key] = r + 1
	}
}

// checkIndexColumn verifies the index column is a permutation of 1..N.
// Exact duplicates are errors; any other deviation is a warning.
func (e *Engine) checkIndexColumn(lp *star.Loop, indexTag string, loc findingSite) {
	ci := lp.ColumnIndex(indexTag)
	if ci < 0 {
		return
	}
	seen := make(map[int]int, len(lp.Rows))
	indices := make([]int, 0, len(lp.Rows))
	for r, row := range lp.Rows {
		v := row[ci]
		if star.IsNull(v) {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			continue
		}
		if first, ok := seen[n]; ok {
			e.rep.Error(report.ErrDuplicatedIndex, report.Finding{
				Description: fmt.Sprintf("%s %d duplicates row %d", indexTag, n, first),
				File:        loc.file,
				Saveframe:   loc.sf,
				Loop:        loc.loop,
				Row:         r + 1,
				Value:       v,
			})
			continue
		}
		seen[n] = r + 1
		indices = append(indices, n)
	}
	if len(indices) == 0 {
		return
	}
	sort.Ints(indices)
	if indices[0] != 1 || indices[len(indices)-1] != len(indices) {
		e.rep.Warning(report.WarnDisorderedIndex, report.Finding{
			Description: fmt.Sprintf("%s values do not form the sequence 1..%d", indexTag, len(indices)),
			File:        loc.file,
			Saveframe:   loc.sf,
			Loop:        loc.loop,
		})
	}
}

func parseInt(v string) (int, error) { return strconv.Atoi(v) }
