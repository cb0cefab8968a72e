package engine

import (
	"fmt"
	"strconv"

	"github.com/nmrkit/nmrkit/internal/report"
	"github.com/nmrkit/nmrkit/internal/schema"
	"github.com/nmrkit/nmrkit/internal/star"
)

// checkListIDs enforces that every loop row of a saveframe references the
// enclosing saveframe's list ID. NMR-STAR only; NEF does not model the
// relation.
func (e *Engine) checkListIDs(sf *star.Saveframe, st schema.Subtype, file string) {
	d := e.profile.Def(st)
	if d.SfIDTag == "" {
		return
	}

	listID, ok := e.saveframeListID(sf, d, st, file)
	if !ok {
		return
	}

	if d.ListIDTag != "" {
		for _, lp := range sf.LoopsByCategory(d.LoopCategory) {
			e.checkListIDColumn(sf, lp, d.ListIDTag, listID, file)
		}
	}
	for cat, aux := range d.AuxLoops {
		if aux.ListIDTag == "" {
			continue
		}
		for _, lp := range sf.LoopsByCategory(cat) {
			e.checkListIDColumn(sf, lp, aux.ListIDTag, listID, file)
		}
	}
}

// saveframeListID reads the saveframe's ID tag. A missing or malformed ID
// is replaced with a running per-subtype counter so the relation can still
// be checked, with a warning recording the substitution.
func (e *Engine) saveframeListID(sf *star.Saveframe, d *schema.Def, st schema.Subtype, file string) (int, bool) {
	e.listSerial[st]++
	serial := e.listSerial[st]

	v, ok := sf.Tag(d.SfIDTag)
	if ok && !star.IsNull(v) {
		if n, err := strconv.Atoi(v); err == nil {
			return n, true
		}
		e.rep.Error(report.ErrInvalidData, report.Finding{
			Description: fmt.Sprintf("%s.%s must be an integer, got %q", sf.TagPrefix(), d.SfIDTag, v),
			File:        file,
			Saveframe:   sf.Name,
			Value:       v,
		})
		return 0, false
	}

	e.rep.Warning(report.WarnMissingData, report.Finding{
		Description: fmt.Sprintf("%s does not declare %s.%s, assuming list ID %d",
			sf.Name, sf.TagPrefix(), d.SfIDTag, serial),
		File:      file,
		Saveframe: sf.Name,
	})
	return serial, true
}

func (e *Engine) checkListIDColumn(sf *star.Saveframe, lp *star.Loop, tag string, listID int, file string) {
	ci := lp.ColumnIndex(tag)
	if ci < 0 {
		return
	}
	for r, row := range lp.Rows {
		v := row[ci]
		if star.IsNull(v) {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n != listID {
			e.rep.Error(report.ErrInvalidData, report.Finding{
				Description: fmt.Sprintf("%s %s does not match the enclosing list ID %d", tag, v, listID),
				File:        file,
				Saveframe:   sf.Name,
				Loop:        lp.Category(),
				Row:         r + 1,
				Value:       v,
			})
		}
	}
}
