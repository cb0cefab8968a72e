// Package convert rewrites entries between the NEF and NMR-STAR
// vocabularies and produces the deposition artifacts derived from them.
// Conversion is value-preserving: cell values are copied bit-identically,
// only tag and category names change.
package convert

import (
	"fmt"
	"strconv"

	"github.com/nmrkit/nmrkit/internal/report"
	"github.com/nmrkit/nmrkit/internal/schema"
	"github.com/nmrkit/nmrkit/internal/star"
)

// Converter rewrites one entry from one format profile to the other.
// Findings (skipped saveframes, untranslatable content) go to the report
// when one is attached.
type Converter struct {
	From *schema.Profile
	To   *schema.Profile

	// EntryID is stamped into the target entry name and, when
	// InsertEntryID is set, into every translated loop's Entry_ID column.
	EntryID       string
	InsertEntryID bool

	Report *report.Report
}

// Entry converts a whole entry. Saveframes of unrecognized categories are
// skipped with a warning; everything recognized is translated.
func (c *Converter) Entry(in *star.Entry) (*star.Entry, error) {
	if c.From.Format() == c.To.Format() {
		return c.normalize(in)
	}

	name := in.Name
	if c.EntryID != "" {
		name = c.EntryID
	}
	out := &star.Entry{Name: name}

	serial := make(map[schema.Subtype]int)
	for _, sf := range in.Saveframes {
		st, ok := c.From.SubtypeOfSaveframe(sf.Category())
		if !ok {
			c.warnSkipped(sf)
			continue
		}
		serial[st]++
		conv, err := c.saveframe(sf, st, serial[st])
		if err != nil {
			return nil, fmt.Errorf("converting saveframe %s: %w", sf.Name, err)
		}
		out.Saveframes = append(out.Saveframes, conv)
	}
	return out, nil
}

// normalize re-stamps an entry within one format: entry name, list IDs,
// and optional Entry_ID loop columns. Used by same-format deposit runs.
func (c *Converter) normalize(in *star.Entry) (*star.Entry, error) {
	name := in.Name
	if c.EntryID != "" {
		name = c.EntryID
	}
	out := &star.Entry{Name: name, Tags: in.Tags, Loops: in.Loops}
	for _, sf := range in.Saveframes {
		st, ok := c.From.SubtypeOfSaveframe(sf.Category())
		if !ok {
			out.Saveframes = append(out.Saveframes, sf)
			continue
		}
		d := c.From.Def(st)
		conv := &star.Saveframe{Name: sf.Name, Tags: sf.Tags}
		for _, lp := range sf.Loops {
			nl := &star.Loop{Columns: lp.Columns, Rows: lp.Rows}
			if c.InsertEntryID && c.EntryID != "" && lp.Category() == d.LoopCategory {
				nl = withColumn(nl, lp.Category()+".Entry_ID", c.EntryID)
			}
			conv.Loops = append(conv.Loops, nl)
		}
		out.Saveframes = append(out.Saveframes, conv)
	}
	return out, nil
}

// saveframe translates one recognized saveframe, its tags, its primary
// loop, and its auxiliary loops.
func (c *Converter) saveframe(sf *star.Saveframe, st schema.Subtype, serial int) (*star.Saveframe, error) {
	from, to := c.From.Def(st), c.To.Def(st)

	numDim := 0
	if st == schema.SpectralPeak {
		if v, ok := sf.Tag(from.NumDimTag); ok {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n >= schema.SpectralPeakLimDim {
				return nil, fmt.Errorf("dimension count %q is not usable", v)
			}
			numDim = n
		}
	}

	out := &star.Saveframe{Name: fmt.Sprintf("%s_%d", to.SaveframeCategory, serial)}
	c.translateTags(sf, out, st, to, serial)

	for _, lp := range sf.Loops {
		switch cat := lp.Category(); {
		case cat == from.LoopCategory:
			nl := c.translateLoop(lp, st, to.LoopCategory, numDim)
			if to.ListIDTag != "" {
				nl = withColumn(nl, to.LoopCategory+"."+to.ListIDTag, strconv.Itoa(serial))
			}
			if c.InsertEntryID && c.EntryID != "" {
				nl = withColumn(nl, to.LoopCategory+".Entry_ID", c.EntryID)
			}
			if st == schema.ChemShift && c.To.Format() == schema.STAR {
				nl = c.completeShiftLoop(nl, to.LoopCategory)
			}
			out.Loops = append(out.Loops, nl)
		case schema.AuxLoopCategory(c.From.Format(), cat) != "":
			out.Loops = append(out.Loops, c.translateAuxLoop(lp, cat))
		default:
			if c.Report != nil {
				c.Report.Warning(report.WarnSkippedLpCategory, report.Finding{
					Description: fmt.Sprintf("loop category %s has no counterpart and was dropped", cat),
					Saveframe:   sf.Name,
					Loop:        cat,
					Value:       cat,
				})
			}
		}
	}
	return out, nil
}

// translateTags builds the target saveframe's tag block: category and
// framecode first, then the translated source tags, then the target-only
// bookkeeping tags.
func (c *Converter) translateTags(sf *star.Saveframe, out *star.Saveframe, st schema.Subtype, to *schema.Def, serial int) {
	categoryTag, framecodeTag := "sf_category", "sf_framecode"
	if c.To.Format() == schema.STAR {
		categoryTag, framecodeTag = "Sf_category", "Sf_framecode"
	}
	prefix := to.TagPrefix
	out.Tags = append(out.Tags,
		star.Tag{Name: prefix + "." + categoryTag, Value: to.SaveframeCategory},
		star.Tag{Name: prefix + "." + framecodeTag, Value: out.Name},
	)

	for _, tag := range sf.Tags {
		local := localName(tag.Name)
		if local == "sf_category" || local == "sf_framecode" ||
			local == "Sf_category" || local == "Sf_framecode" {
			continue
		}
		dst := schema.TranslateSfTag(st, c.From.Format(), local)
		if dst == "" {
			continue
		}
		out.Tags = append(out.Tags, star.Tag{Name: prefix + "." + dst, Value: tag.Value})
	}

	if to.SfIDTag != "" {
		out.Tags = append(out.Tags, star.Tag{Name: prefix + "." + to.SfIDTag, Value: strconv.Itoa(serial)})
	}
	if c.To.Format() == schema.STAR && c.EntryID != "" {
		out.Tags = append(out.Tags, star.Tag{Name: prefix + ".Entry_ID", Value: c.EntryID})
	}
}

// translateLoop renames the columns that have a counterpart and copies
// their cells unchanged. Untranslatable columns are dropped.
func (c *Converter) translateLoop(lp *star.Loop, st schema.Subtype, targetCategory string, numDim int) *star.Loop {
	type mapping struct {
		src int
		dst string
	}
	var cols []mapping
	for i, col := range lp.Columns {
		dst := schema.TranslateLoopTag(st, c.From.Format(), localName(col), numDim)
		if dst == "" {
			continue
		}
		cols = append(cols, mapping{src: i, dst: targetCategory + "." + dst})
	}

	out := &star.Loop{Columns: make([]string, len(cols))}
	for i, m := range cols {
		out.Columns[i] = m.dst
	}
	out.Rows = make([][]string, len(lp.Rows))
	for r, row := range lp.Rows {
		nr := make([]string, len(cols))
		for i, m := range cols {
			nr[i] = row[m.src]
		}
		out.Rows[r] = nr
	}
	return out
}

// translateAuxLoop converts a spectral-peak auxiliary loop.
func (c *Converter) translateAuxLoop(lp *star.Loop, category string) *star.Loop {
	targetCategory := schema.AuxLoopCategory(c.From.Format(), category)
	nefCategory := category
	if c.From.Format() == schema.STAR {
		nefCategory = targetCategory
	}
	pairs := schema.AuxLoopTagMap(nefCategory)

	type mapping struct {
		src int
		dst string
	}
	var cols []mapping
	for i, col := range lp.Columns {
		local := localName(col)
		for _, p := range pairs {
			src, dst := p.NEF, p.STAR
			if c.From.Format() == schema.STAR {
				src, dst = dst, src
			}
			if src == local && dst != "" {
				cols = append(cols, mapping{src: i, dst: targetCategory + "." + dst})
				break
			}
		}
	}

	out := &star.Loop{Columns: make([]string, len(cols))}
	for i, m := range cols {
		out.Columns[i] = m.dst
	}
	out.Rows = make([][]string, len(lp.Rows))
	for r, row := range lp.Rows {
		nr := make([]string, len(cols))
		for i, m := range cols {
			nr[i] = row[m.src]
		}
		out.Rows[r] = nr
	}
	return out
}

func (c *Converter) warnSkipped(sf *star.Saveframe) {
	if c.Report == nil {
		return
	}
	c.Report.Warning(report.WarnSkippedSfCategory, report.Finding{
		Description: fmt.Sprintf("saveframe category %s has no counterpart and was dropped", sf.Category()),
		Saveframe:   sf.Name,
		Value:       sf.Category(),
	})
}

// withColumn returns the loop with one constant-valued column appended,
// replacing it when a column of that name already exists.
func withColumn(lp *star.Loop, name, value string) *star.Loop {
	for i, col := range lp.Columns {
		if col == name {
			out := &star.Loop{Columns: lp.Columns}
			out.Rows = make([][]string, len(lp.Rows))
			for r, row := range lp.Rows {
				nr := append([]string{}, row...)
				nr[i] = value
				out.Rows[r] = nr
			}
			return out
		}
	}
	out := &star.Loop{Columns: append(append([]string{}, lp.Columns...), name)}
	out.Rows = make([][]string, len(lp.Rows))
	for r, row := range lp.Rows {
		out.Rows[r] = append(append([]string{}, row...), value)
	}
	return out
}

func localName(tag string) string {
	for i := 0; i < len(tag); i++ {
		if tag[i] == '.' {
			return tag[i+1:]
		}
	}
	return tag
}
