package engine

import (
	"fmt"

	"github.com/nmrkit/nmrkit/internal/report"
	"github.com/nmrkit/nmrkit/internal/schema"
	"github.com/nmrkit/nmrkit/internal/star"
)

// inspect enumerates the entry's saveframes and loops, reports content
// missing from a unified deposition, and returns the per-subtype inventory.
func (e *Engine) inspect(entry *star.Entry, file string) map[string]int {
	inventory := make(map[string]int)

	for _, sf := range entry.Saveframes {
		cat := sf.Category()
		if cat == "" {
			e.rep.Error(report.ErrFormatIssue, report.Finding{
				Description: fmt.Sprintf("saveframe %s carries no category tag", sf.Name),
				File:        file,
				Saveframe:   sf.Name,
			})
			continue
		}
		st, ok := e.profile.SubtypeOfSaveframe(cat)
		if !ok {
			e.rep.Warning(report.WarnSkippedSfCategory, report.Finding{
				Description: fmt.Sprintf("saveframe category %s is not recognized and was skipped", cat),
				File:        file,
				Saveframe:   sf.Name,
				Value:       cat,
			})
			continue
		}

		d := e.profile.Def(st)
		counted := false
		for _, lp := range sf.Loops {
			lc := lp.Category()
			switch {
			case lc == d.LoopCategory:
				inventory[string(st)]++
				counted = true
			case e.knownLoopCategory(d, lc):
				// Auxiliary loop of this subtype.
			default:
				e.rep.Warning(report.WarnSkippedLpCategory, report.Finding{
					Description: fmt.Sprintf("loop category %s is not recognized and was skipped", lc),
					File:        file,
					Saveframe:   sf.Name,
					Loop:        lc,
					Value:       lc,
				})
			}
		}
		if !counted && st == schema.EntryInfo {
			// entry_info saveframes count even without a program-script loop.
			inventory[string(st)]++
		}
	}

	e.checkMandatoryContent(inventory, file)
	return inventory
}

// checkMandatoryContent applies the content rules selected for the run.
func (e *Engine) checkMandatoryContent(inventory map[string]int, file string) {
	if e.opts.Content == ContentShiftsOnly {
		if inventory[string(schema.ChemShift)] == 0 {
			e.rep.Error(report.ErrMissingMandatoryContent, report.Finding{
				Description: fmt.Sprintf("no %s content found", schema.ChemShift),
				File:        file,
			})
		}
		return
	}

	switch n := inventory[string(schema.PolySeq)]; {
	case n == 0:
		e.rep.Error(report.ErrMissingMandatoryContent, report.Finding{
			Description: "the molecular assembly sequence is missing",
			File:        file,
		})
	case n > 1:
		e.rep.Error(report.ErrFormatIssue, report.Finding{
			Description: fmt.Sprintf("the molecular assembly sequence appears %d times, expected exactly one", n),
			File:        file,
		})
	}

	for _, st := range []schema.Subtype{schema.ChemShift, schema.DistRestraint} {
		if inventory[string(st)] == 0 {
			e.rep.Error(report.ErrMissingMandatoryContent, report.Finding{
				Description: fmt.Sprintf("no %s content found", st),
				File:        file,
			})
		}
	}
	if inventory[string(schema.SpectralPeak)] == 0 {
		e.rep.Warning(report.WarnMissingContent, report.Finding{
			Description: "no spectral peak content found",
			File:        file,
		})
	}
}

func (e *Engine) knownLoopCategory(d *schema.Def, category string) bool {
	if _, ok := d.AuxLoops[category]; ok {
		return true
	}
	return false
}
