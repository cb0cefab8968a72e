package convert

import (
	"github.com/nmrkit/nmrkit/internal/star"
)

// ToCIF flattens an NMR-STAR entry into an mmCIF-style block: saveframe
// boundaries disappear and every recognized loop is emitted at the block
// level, stamped with the entry ID. Saveframe tags are dropped; the loop
// list-ID columns keep the parent relation recoverable.
func (c *Converter) ToCIF(in *star.Entry) *star.Entry {
	name := in.Name
	if c.EntryID != "" {
		name = c.EntryID
	}
	out := &star.Entry{
		Name: name,
		Tags: []star.Tag{{Name: "_entry.id", Value: name}},
	}

	for _, sf := range in.Saveframes {
		st, ok := c.From.SubtypeOfSaveframe(sf.Category())
		if !ok {
			c.warnSkipped(sf)
			continue
		}
		d := c.From.Def(st)
		for _, lp := range sf.Loops {
			cat := lp.Category()
			if cat != d.LoopCategory {
				if _, aux := d.AuxLoops[cat]; !aux {
					continue
				}
			}
			nl := &star.Loop{Columns: lp.Columns, Rows: lp.Rows}
			if c.InsertEntryID && name != "" {
				nl = withColumn(nl, cat+".Entry_ID", name)
			}
			out.Loops = append(out.Loops, nl)
		}
	}
	return out
}

// Annotate stamps the entry ID into an NMR-STAR entry without changing
// its vocabulary: the entry name, every recognized saveframe's Entry_ID
// tag, and, when InsertEntryID is set, the loops' Entry_ID columns.
func (c *Converter) Annotate(in *star.Entry) *star.Entry {
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
		conv := &star.Saveframe{Name: sf.Name}
		conv.Tags = replaceTag(sf.Tags, d.TagPrefix+".Entry_ID", name)
		for _, lp := range sf.Loops {
			nl := &star.Loop{Columns: lp.Columns, Rows: lp.Rows}
			if c.InsertEntryID && name != "" {
				nl = withColumn(nl, lp.Category()+".Entry_ID", name)
			}
			conv.Loops = append(conv.Loops, nl)
		}
		out.Saveframes = append(out.Saveframes, conv)
	}
	return out
}

// replaceTag sets a tag value, appending the tag when absent.
func replaceTag(tags []star.Tag, name, value string) []star.Tag {
	out := append([]star.Tag{}, tags...)
	for i, t := range out {
		if t.Name == name {
			out[i].Value = value
			return out
		}
	}
	return append(out, star.Tag{Name: name, Value: value})
}
