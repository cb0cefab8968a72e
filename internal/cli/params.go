package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nmrkit/nmrkit/internal/engine"
)

// Params is the keyed run configuration read from a YAML parameter file.
// Unknown keys are rejected so a typo cannot silently disable an option.
type Params struct {
	CoordinateFilePath            string   `yaml:"coordinate_file_path"`
	ReportFilePath                string   `yaml:"report_file_path"`
	ChemShiftFilePathList         []string `yaml:"chem_shift_file_path_list"`
	RestraintFilePathList         []string `yaml:"restraint_file_path_list"`
	AtypicalRestraintFilePathList []string `yaml:"atypical_restraint_file_path_list"`
	ResolveConflict               bool     `yaml:"resolve_conflict"`
	NonblkAnomalousCS             bool     `yaml:"nonblk_anomalous_cs"`
	NonblkBadNterm                bool     `yaml:"nonblk_bad_nterm"`
	CheckMandatoryTag             bool     `yaml:"check_mandatory_tag"`
	EntryID                       string   `yaml:"entry_id"`
	InsertEntryIDToLoops          bool     `yaml:"insert_entry_id_to_loops"`
	BmrbID                        string   `yaml:"bmrb_id"`
	Remediation                   bool     `yaml:"remediation"`
	MergeAnyPkAsIs                bool     `yaml:"merge_any_pk_as_is"`
}

// LoadParams reads a parameter file. A missing path yields defaults.
func LoadParams(path string) (*Params, error) {
	p := &Params{}
	if path == "" {
		return p, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening parameter file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil {
		return nil, fmt.Errorf("parsing parameter file %s: %w", path, err)
	}
	return p, nil
}

// EngineOptions maps the non-blocking switches onto validator options.
func (p *Params) EngineOptions() engine.Options {
	return engine.Options{
		NonblkAnomalousCS: p.NonblkAnomalousCS,
		NonblkBadNterm:    p.NonblkBadNterm,
		CheckMandatoryTag: p.CheckMandatoryTag,
	}
}

// ResolvedEntryID prefers the explicit entry ID, falling back to the BMRB
// accession when only that is given.
func (p *Params) ResolvedEntryID() string {
	if p.EntryID != "" {
		return p.EntryID
	}
	return p.BmrbID
}
