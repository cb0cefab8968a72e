package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nmrkit/nmrkit/internal/ccd"
	"github.com/nmrkit/nmrkit/internal/report"
	"github.com/nmrkit/nmrkit/internal/schema"
	"github.com/nmrkit/nmrkit/internal/sequence"
	"github.com/nmrkit/nmrkit/internal/shiftstat"
	"github.com/nmrkit/nmrkit/internal/star"
)

// Options tune how strictly a run treats recoverable findings.
type Options struct {
	// NonblkAnomalousCS softens anomalous chemical-shift errors to
	// warnings so a deposition can proceed.
	NonblkAnomalousCS bool

	// NonblkBadNterm softens nomenclature errors on N-terminal amide
	// protons to warnings.
	NonblkBadNterm bool

	// CheckMandatoryTag enables mandatory saveframe-tag enforcement.
	CheckMandatoryTag bool

	// Reference supplies an external reference polymer, extracted from a
	// coordinate file, instead of the entry's own assembly sequence.
	Reference *sequence.Polymer

	// Content selects the mandatory-content rules for the run.
	Content ContentRules
}

// ContentRules names the content profile a run is validated against.
type ContentRules int

const (
	// ContentUnified expects a full deposition: assembly sequence,
	// chemical shifts, and distance restraints.
	ContentUnified ContentRules = iota

	// ContentShiftsOnly expects chemical shifts alone; the sequence
	// comes from a coordinate file.
	ContentShiftsOnly
)

// ContentType returns the report label for input validated under these
// rules.
func (c ContentRules) ContentType() string {
	if c == ContentShiftsOnly {
		return "nmr-chemical-shifts"
	}
	return "nmr-unified-data"
}

// Engine drives one validation run over a parsed entry. Findings accumulate
// on the report; the engine itself never aborts a run part-way.
//
// The CCD resolver and the shift oracle are read-only and safe to share
// across runs.
type Engine struct {
	profile  *schema.Profile
	rep      *report.Report
	resolver *ccd.Resolver
	oracle   shiftstat.Oracle
	log      *zap.Logger
	opts     Options

	// listSerial numbers saveframes per subtype, substituting for a
	// missing list ID tag.
	listSerial map[schema.Subtype]int
}

// New assembles an engine for one format profile. A nil logger disables
// run logging.
func New(profile *schema.Profile, rep *report.Report, resolver *ccd.Resolver, oracle shiftstat.Oracle, log *zap.Logger, opts Options) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		profile:  profile,
		rep:      rep,
		resolver: resolver,
		oracle:   oracle,
		log:      log,
		opts:     opts,

		listSerial: make(map[schema.Subtype]int),
	}
}

// Validate runs every check over the entry. A panic in any stage is
// converted to an internal_error finding so the run always yields a report.
func (e *Engine) Validate(entry *star.Entry, file string) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("validation stage panicked", zap.Any("panic", r))
			e.rep.Errorf(report.ErrInternal, "unexpected failure while validating %s: %v", file, r)
		}
	}()

	inventory := e.inspect(entry, file)
	e.rep.AddInputSource(report.InputSource{
		File:        file,
		Format:      string(e.profile.Format()),
		ContentType: e.opts.Content.ContentType(),
		Inventory:   inventory,
	})

	x := &sequence.Extractor{Profile: e.profile, Report: e.rep, File: file}
	ref := e.opts.Reference
	if ref == nil {
		ref = x.Reference(entry)
	}
	loops := x.FromLoops(entry)
	if ref == nil && len(loops) > 0 {
		ref = sequence.CommonSequence(loops, e.rep)
	}
	cc := &sequence.CrossChecker{Resolver: e.resolver, Report: e.rep, File: file}
	cc.Check(ref, loops)

	for _, sf := range entry.Saveframes {
		st, ok := e.profile.SubtypeOfSaveframe(sf.Category())
		if !ok {
			continue
		}
		e.validateSaveframe(sf, st, file)
	}

	e.log.Info("validation finished",
		zap.String("file", file),
		zap.String("status", string(e.rep.Status())),
		zap.Int("errors", e.rep.ErrorCount()),
		zap.Int("warnings", e.rep.WarningCount()))
}

// validateSaveframe runs the per-saveframe checks in source order.
func (e *Engine) validateSaveframe(sf *star.Saveframe, st schema.Subtype, file string) {
	d := e.profile.Def(st)

	numDim := 0
	if st == schema.SpectralPeak {
		var ok bool
		numDim, ok = e.peakDimensions(sf, d, file)
		if !ok {
			return
		}
	}

	e.checkSaveframeTags(sf, st, file)
	for _, lp := range sf.LoopsByCategory(d.LoopCategory) {
		e.checkLoop(sf, lp, st, numDim, file)
		switch st {
		case schema.ChemShift:
			e.checkChemShifts(sf, lp, file)
			e.checkNomenclature(sf, lp, st, file)
		case schema.DistRestraint, schema.DihedRestraint, schema.RDCRestraint:
			e.checkNomenclature(sf, lp, st, file)
		}
	}
	for cat, aux := range d.AuxLoops {
		for _, alp := range sf.LoopsByCategory(cat) {
			e.checkAuxLoop(sf, alp, aux, file)
		}
	}
	if e.profile.Format() == schema.STAR {
		e.checkListIDs(sf, st, file)
	}
	if st == schema.SpectralPeak {
		e.checkSpectralPeaks(sf, numDim, file)
	}
}

// peakDimensions reads and bounds-checks the declared dimension count.
func (e *Engine) peakDimensions(sf *star.Saveframe, d *schema.Def, file string) (int, bool) {
	v, ok := sf.Tag(d.NumDimTag)
	if !ok || star.IsNull(v) {
		e.rep.Error(report.ErrMissingMandatoryItem, report.Finding{
			Description: fmt.Sprintf("spectral peak list %s does not declare %s", sf.Name, d.NumDimTag),
			File:        file,
			Saveframe:   sf.Name,
		})
		return 0, false
	}
	n, err := parseInt(v)
	if err != nil || n < 1 || n >= schema.SpectralPeakLimDim {
		e.rep.Error(report.ErrInvalidData, report.Finding{
			Description: fmt.Sprintf("dimension count %q of %s must be an integer in [1, %d)",
				v, sf.Name, schema.SpectralPeakLimDim),
			File:      file,
			Saveframe: sf.Name,
			Value:     v,
		})
		return 0, false
	}
	return n, true
}
