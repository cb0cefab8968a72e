// Package report accumulates validation findings and serializes the final
// diagnostic report. Findings are collected, never thrown; the engine keeps
// going after a finding so one run yields a maximal diagnostic.
package report

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Status is the overall outcome of a run.
type Status string

const (
	StatusOK      Status = "OK"
	StatusWarning Status = "WARNING"
	StatusError   Status = "ERROR"
)

// ErrorKind is the closed set of error categories.
type ErrorKind string

const (
	ErrInternal            ErrorKind = "internal_error"
	ErrFormatIssue         ErrorKind = "format_issue"
	ErrMissingMandatoryContent ErrorKind = "missing_mandatory_content"
	ErrMissingMandatoryItem    ErrorKind = "missing_mandatory_item"
	ErrSequenceMismatch    ErrorKind = "sequence_mismatch"
	ErrInvalidData         ErrorKind = "invalid_data"
	ErrInvalidAtomNomenclature ErrorKind = "invalid_atom_nomenclature"
	ErrInvalidAtomType     ErrorKind = "invalid_atom_type"
	ErrInvalidIsotopeNumber ErrorKind = "invalid_isotope_number"
	ErrInvalidAmbiguityCode ErrorKind = "invalid_ambiguity_code"
	ErrMultipleData        ErrorKind = "multiple_data"
	ErrMissingData         ErrorKind = "missing_data"
	ErrDuplicatedIndex     ErrorKind = "duplicated_index"
	ErrAnomalousData       ErrorKind = "anomalous_data"
	ErrContentMismatch     ErrorKind = "content_mismatch"
)

// WarningKind is the closed set of warning categories.
type WarningKind string

const (
	WarnMissingContent         WarningKind = "missing_content"
	WarnMissingSaveframe       WarningKind = "missing_saveframe"
	WarnMissingData            WarningKind = "missing_data"
	WarnEnumFailure            WarningKind = "enum_failure"
	WarnDisorderedIndex        WarningKind = "disordered_index"
	WarnSequenceMismatch       WarningKind = "sequence_mismatch"
	WarnAtomNomenclature       WarningKind = "atom_nomenclature_mismatch"
	WarnSkippedSfCategory      WarningKind = "skipped_sf_category"
	WarnSkippedLpCategory      WarningKind = "skipped_lp_category"
	WarnSuspiciousData         WarningKind = "suspicious_data"
	WarnUnusualData            WarningKind = "unusual_data"
	WarnAnomalousChemicalShift WarningKind = "anomalous_chemical_shift"
	WarnNotSuperimposedModel   WarningKind = "not_superimposed_model"
	WarnExactlyOverlaidModel   WarningKind = "exactly_overlaid_model"
)

// errorKinds and warningKinds fix the serialization key sets: every kind
// appears in the report, null when empty.
var errorKinds = []ErrorKind{
	ErrInternal, ErrFormatIssue, ErrMissingMandatoryContent, ErrMissingMandatoryItem,
	ErrSequenceMismatch, ErrInvalidData, ErrInvalidAtomNomenclature, ErrInvalidAtomType,
	ErrInvalidIsotopeNumber, ErrInvalidAmbiguityCode, ErrMultipleData, ErrMissingData,
	ErrDuplicatedIndex, ErrAnomalousData, ErrContentMismatch,
}

var warningKinds = []WarningKind{
	WarnMissingContent, WarnMissingSaveframe, WarnMissingData, WarnEnumFailure,
	WarnDisorderedIndex, WarnSequenceMismatch, WarnAtomNomenclature,
	WarnSkippedSfCategory, WarnSkippedLpCategory, WarnSuspiciousData,
	WarnUnusualData, WarnAnomalousChemicalShift, WarnNotSuperimposedModel,
	WarnExactlyOverlaidModel,
}

// Finding is one diagnostic with its source coordinates.
type Finding struct {
	Description string `json:"description"`
	File        string `json:"file,omitempty"`
	Saveframe   string `json:"saveframe,omitempty"`
	Loop        string `json:"loop,omitempty"`
	Row         int    `json:"row,omitempty"`
	Value       string `json:"value,omitempty"`
}

// InputSource describes one ingested file.
type InputSource struct {
	File        string         `json:"file"`
	Format      string         `json:"format"`
	ContentType string         `json:"content_type"`
	Inventory   map[string]int `json:"content_subtypes"`
}

// Report is the aggregator. Single-threaded by contract; the engine owns
// exactly one per run.
type Report struct {
	runID     string
	status    Status
	sources   []InputSource
	alignments any

	errors   map[ErrorKind][]Finding
	warnings map[WarningKind][]Finding
}

// New creates an empty report with status OK and a fresh run ID.
func New() *Report {
	return &Report{
		runID:    uuid.NewString(),
		status:   StatusOK,
		errors:   make(map[ErrorKind][]Finding),
		warnings: make(map[WarningKind][]Finding),
	}
}

// RunID returns the unique identifier of this run.
func (r *Report) RunID() string { return r.runID }

// Status returns the overall status: the max severity observed so far.
func (r *Report) Status() Status { return r.status }

// InputSources returns the recorded input descriptions.
func (r *Report) InputSources() []InputSource { return r.sources }

// Error records an error finding and promotes the status to ERROR.
func (r *Report) Error(kind ErrorKind, f Finding) {
	r.errors[kind] = append(r.errors[kind], f)
	r.status = StatusError
}

// Warning records a warning finding. WARNING never downgrades ERROR.
func (r *Report) Warning(kind WarningKind, f Finding) {
	r.warnings[kind] = append(r.warnings[kind], f)
	if r.status != StatusError {
		r.status = StatusWarning
	}
}

// Errorf records an error with a formatted description.
func (r *Report) Errorf(kind ErrorKind, format string, args ...any) {
	r.Error(kind, Finding{Description: fmt.Sprintf(format, args...)})
}

// Warningf records a warning with a formatted description.
func (r *Report) Warningf(kind WarningKind, format string, args ...any) {
	r.Warning(kind, Finding{Description: fmt.Sprintf(format, args...)})
}

// AddInputSource appends a frozen input-source record.
func (r *Report) AddInputSource(src InputSource) {
	r.sources = append(r.sources, src)
}

// SetSequenceAlignments attaches the alignment summary produced by the
// sequence cross-checker.
func (r *Report) SetSequenceAlignments(v any) { r.alignments = v }

// Errors returns the findings recorded under a kind.
func (r *Report) Errors(kind ErrorKind) []Finding { return r.errors[kind] }

// Warnings returns the findings recorded under a kind.
func (r *Report) Warnings(kind WarningKind) []Finding { return r.warnings[kind] }

// ErrorCount returns the total number of error findings.
func (r *Report) ErrorCount() int {
	n := 0
	for _, fs := range r.errors {
		n += len(fs)
	}
	return n
}

// WarningCount returns the total number of warning findings.
func (r *Report) WarningCount() int {
	n := 0
	for _, fs := range r.warnings {
		n += len(fs)
	}
	return n
}

type information struct {
	Status             Status        `json:"status"`
	RunID              string        `json:"run_id"`
	InputSources       []InputSource `json:"input_sources"`
	SequenceAlignments any           `json:"sequence_alignments,omitempty"`
}

type document struct {
	Information information              `json:"information"`
	Error       map[ErrorKind][]Finding   `json:"error"`
	Warning     map[WarningKind][]Finding `json:"warning"`
}

// MarshalJSON serializes the report tree. Every kind key is present; kinds
// with no findings serialize as null.
func (r *Report) MarshalJSON() ([]byte, error) {
	errs := make(map[ErrorKind][]Finding, len(errorKinds))
	for _, k := range errorKinds {
		errs[k] = r.errors[k]
	}
	warns := make(map[WarningKind][]Finding, len(warningKinds))
	for _, k := range warningKinds {
		warns[k] = r.warnings[k]
	}
	return json.Marshal(document{
		Information: information{
			Status:             r.status,
			RunID:              r.runID,
			InputSources:       r.sources,
			SequenceAlignments: r.alignments,
		},
		Error:   errs,
		Warning: warns,
	})
}

// WriteJSON returns the indented report document.
func (r *Report) WriteJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
