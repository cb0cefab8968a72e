package convert

import (
	"fmt"
	"strconv"

	"github.com/nmrkit/nmrkit/internal/schema"
	"github.com/nmrkit/nmrkit/internal/star"
)

// MergeCSMR combines chemical-shift entries and restraint entries into one
// NMR-STAR deposition entry. Saveframes are renumbered per subtype so list
// IDs stay unique across the merged sources; the first poly_seq saveframe
// wins and later copies are dropped.
func (c *Converter) MergeCSMR(csEntries, mrEntries []*star.Entry) (*star.Entry, error) {
	name := c.EntryID
	if name == "" {
		name = "merged"
	}
	out := &star.Entry{Name: name}

	serial := make(map[schema.Subtype]int)
	havePolySeq := false
	add := func(entry *star.Entry) error {
		for _, sf := range entry.Saveframes {
			st, ok := c.From.SubtypeOfSaveframe(sf.Category())
			if !ok {
				c.warnSkipped(sf)
				continue
			}
			if st == schema.PolySeq {
				if havePolySeq {
					continue
				}
				havePolySeq = true
			}
			serial[st]++
			conv, err := c.renumber(sf, st, serial[st])
			if err != nil {
				return fmt.Errorf("merging saveframe %s: %w", sf.Name, err)
			}
			out.Saveframes = append(out.Saveframes, conv)
		}
		return nil
	}

	for _, entry := range csEntries {
		if err := add(entry); err != nil {
			return nil, err
		}
	}
	for _, entry := range mrEntries {
		if err := add(entry); err != nil {
			return nil, err
		}
	}
	if len(out.Saveframes) == 0 {
		return nil, fmt.Errorf("nothing to merge")
	}
	return out, nil
}

// renumber rewrites a saveframe's list ID and framecode for its position
// in the merged entry.
func (c *Converter) renumber(sf *star.Saveframe, st schema.Subtype, serial int) (*star.Saveframe, error) {
	d := c.From.Def(st)
	out := &star.Saveframe{Name: fmt.Sprintf("%s_%d", d.SaveframeCategory, serial)}

	out.Tags = append([]star.Tag{}, sf.Tags...)
	if d.SfIDTag != "" {
		out.Tags = replaceTag(out.Tags, d.TagPrefix+"."+d.SfIDTag, strconv.Itoa(serial))
	}
	framecodeTag := d.TagPrefix + ".Sf_framecode"
	if c.From.Format() == schema.NEF {
		framecodeTag = d.TagPrefix + ".sf_framecode"
	}
	out.Tags = replaceTag(out.Tags, framecodeTag, out.Name)

	for _, lp := range sf.Loops {
		nl := &star.Loop{Columns: lp.Columns, Rows: lp.Rows}
		if d.ListIDTag != "" && lp.Category() == d.LoopCategory {
			nl = withColumn(nl, lp.Category()+"."+d.ListIDTag, strconv.Itoa(serial))
		}
		out.Loops = append(out.Loops, nl)
	}
	return out, nil
}
