package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmrkit/nmrkit/internal/ccd"
	"github.com/nmrkit/nmrkit/internal/report"
	"github.com/nmrkit/nmrkit/internal/schema"
	"github.com/nmrkit/nmrkit/internal/shiftstat"
	"github.com/nmrkit/nmrkit/internal/star"
)

const validNEF = `data_test

save_nef_nmr_meta_data
   _nef_nmr_meta_data.sf_category     nef_nmr_meta_data
   _nef_nmr_meta_data.sf_framecode    nef_nmr_meta_data
   _nef_nmr_meta_data.format_name     nmr_exchange_format
   _nef_nmr_meta_data.format_version  1.1
   _nef_nmr_meta_data.program_name    nmrkit
   _nef_nmr_meta_data.creation_date   2026-09-01
save_

save_nef_molecular_system
   _nef_molecular_system.sf_category   nef_molecular_system
   _nef_molecular_system.sf_framecode  nef_molecular_system
   loop_
      _nef_sequence.index
      _nef_sequence.chain_code
      _nef_sequence.sequence_code
      _nef_sequence.residue_name
      1 A 1 MET
      2 A 2 ALA
      3 A 3 GLY
      4 A 4 LYS
   stop_
save_

save_cs_list_1
   _nef_chemical_shift_list.sf_category   nef_chemical_shift_list
   _nef_chemical_shift_list.sf_framecode  cs_list_1
   loop_
      _nef_chemical_shift.chain_code
      _nef_chemical_shift.sequence_code
      _nef_chemical_shift.residue_name
      _nef_chemical_shift.atom_name
      _nef_chemical_shift.value
      A 2 ALA HA 4.32
      A 3 GLY HA2 3.91
   stop_
save_

save_dist_list_1
   _nef_distance_restraint_list.sf_category     nef_distance_restraint_list
   _nef_distance_restraint_list.sf_framecode    dist_list_1
   _nef_distance_restraint_list.potential_type  square-well-parabolic
   loop_
      _nef_distance_restraint.index
      _nef_distance_restraint.restraint_id
      _nef_distance_restraint.chain_code_1
      _nef_distance_restraint.sequence_code_1
      _nef_distance_restraint.residue_name_1
      _nef_distance_restraint.atom_name_1
      _nef_distance_restraint.chain_code_2
      _nef_distance_restraint.sequence_code_2
      _nef_distance_restraint.residue_name_2
      _nef_distance_restraint.atom_name_2
      _nef_distance_restraint.weight
      _nef_distance_restraint.lower_limit
      _nef_distance_restraint.upper_limit
      1 1 A 2 ALA HA A 3 GLY HA2 1.0 2.0 5.5
   stop_
save_
`

func newNEFEngine(t *testing.T, opts Options) (*Engine, *report.Report) {
	t.Helper()
	rep := report.New()
	return New(schema.ForFormat(schema.NEF), rep, ccd.NewResolver(), shiftstat.NewBuiltin(), nil, opts), rep
}

func newSTAREngine(t *testing.T, opts Options) (*Engine, *report.Report) {
	t.Helper()
	rep := report.New()
	return New(schema.ForFormat(schema.STAR), rep, ccd.NewResolver(), shiftstat.NewBuiltin(), nil, opts), rep
}

func mustParse(t *testing.T, text string) *star.Entry {
	t.Helper()
	entry, err := star.Parse(strings.NewReader(text))
	require.NoError(t, err)
	return entry
}

func saveframe(t *testing.T, entry *star.Entry, name string) *star.Saveframe {
	t.Helper()
	for _, sf := range entry.Saveframes {
		if sf.Name == name {
			return sf
		}
	}
	t.Fatalf("saveframe %s not found", name)
	return nil
}

func TestValidateCleanEntry(t *testing.T) {
	e, rep := newNEFEngine(t, Options{})
	e.Validate(mustParse(t, validNEF), "test.nef")

	assert.Zero(t, rep.ErrorCount())
	// The only warning is the absent spectral peak content.
	require.Len(t, rep.Warnings(report.WarnMissingContent), 1)
	assert.Equal(t, report.StatusWarning, rep.Status())

	require.Len(t, rep.Errors(report.ErrInternal), 0)
}

func TestValidateShiftOutOfRange(t *testing.T) {
	text := strings.Replace(validNEF, "A 2 ALA HA 4.32", "A 2 ALA HA 350.0", 1)
	e, rep := newNEFEngine(t, Options{})
	e.Validate(mustParse(t, text), "test.nef")

	require.NotEmpty(t, rep.Errors(report.ErrInvalidData))
	assert.Contains(t, rep.Errors(report.ErrInvalidData)[0].Description, "350.0")
	assert.Equal(t, report.StatusError, rep.Status())
}

func TestValidateBoundsInverted(t *testing.T) {
	text := strings.Replace(validNEF, "1.0 2.0 5.5", "1.0 4.0 3.0", 1)
	e, rep := newNEFEngine(t, Options{})
	e.Validate(mustParse(t, text), "test.nef")

	errs := rep.Errors(report.ErrInvalidData)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Description, "lower_limit")
	assert.Equal(t, report.StatusError, rep.Status())
}

func TestValidateMissingContent(t *testing.T) {
	const text = `data_test
save_nef_molecular_system
   _nef_molecular_system.sf_category   nef_molecular_system
   _nef_molecular_system.sf_framecode  nef_molecular_system
   loop_
      _nef_sequence.index
      _nef_sequence.chain_code
      _nef_sequence.sequence_code
      _nef_sequence.residue_name
      1 A 1 MET
   stop_
save_
`
	e, rep := newNEFEngine(t, Options{})
	e.Validate(mustParse(t, text), "test.nef")

	// Chemical shifts and distance restraints are both mandatory.
	assert.Len(t, rep.Errors(report.ErrMissingMandatoryContent), 2)
	assert.Len(t, rep.Warnings(report.WarnMissingContent), 1)
}

func TestValidateUnknownCategorySkipped(t *testing.T) {
	text := validNEF + `
save_nef_covalent_links
   _nef_covalent_links.sf_category   nef_covalent_links
   _nef_covalent_links.sf_framecode  nef_covalent_links
save_
`
	e, rep := newNEFEngine(t, Options{})
	e.Validate(mustParse(t, text), "test.nef")

	warns := rep.Warnings(report.WarnSkippedSfCategory)
	require.Len(t, warns, 1)
	assert.Equal(t, "nef_covalent_links", warns[0].Value)
	assert.Zero(t, rep.ErrorCount())
}

func TestTwoPassLoopCheck(t *testing.T) {
	// A zero uncertainty in row 1 must not suppress the range violation
	// in row 2.
	const text = `data_test
save_cs_list_1
   _nef_chemical_shift_list.sf_category   nef_chemical_shift_list
   _nef_chemical_shift_list.sf_framecode  cs_list_1
   loop_
      _nef_chemical_shift.chain_code
      _nef_chemical_shift.sequence_code
      _nef_chemical_shift.residue_name
      _nef_chemical_shift.atom_name
      _nef_chemical_shift.value
      _nef_chemical_shift.value_uncertainty
      A 2 ALA HA 4.32 0.0
      A 3 GLY HA2 400.0 0.02
   stop_
save_
`
	e, rep := newNEFEngine(t, Options{})
	entry := mustParse(t, text)
	e.validateSaveframe(saveframe(t, entry, "cs_list_1"), schema.ChemShift, "test.nef")

	zeros := rep.Warnings(report.WarnMissingData)
	require.Len(t, zeros, 1)
	assert.Contains(t, zeros[0].Description, "[ZERO]")
	assert.Equal(t, 1, zeros[0].Row)

	var rangeErr bool
	for _, f := range rep.Errors(report.ErrInvalidData) {
		if f.Row == 2 && strings.Contains(f.Description, "400.0") {
			rangeErr = true
		}
	}
	assert.True(t, rangeErr, "range violation after the zero warning must still be reported")
}

func TestKeyTupleDuplication(t *testing.T) {
	const text = `data_test
save_cs_list_1
   _nef_chemical_shift_list.sf_category   nef_chemical_shift_list
   _nef_chemical_shift_list.sf_framecode  cs_list_1
   loop_
      _nef_chemical_shift.chain_code
      _nef_chemical_shift.sequence_code
      _nef_chemical_shift.residue_name
      _nef_chemical_shift.atom_name
      _nef_chemical_shift.value
      A 2 ALA HA 4.32
      A 2 ALA HA 4.35
   stop_
save_
`
	e, rep := newNEFEngine(t, Options{})
	entry := mustParse(t, text)
	e.validateSaveframe(saveframe(t, entry, "cs_list_1"), schema.ChemShift, "test.nef")

	dups := rep.Errors(report.ErrMultipleData)
	require.Len(t, dups, 1)
	assert.Equal(t, 2, dups[0].Row)
}

func TestIndexColumn(t *testing.T) {
	base := `data_test
save_nef_molecular_system
   _nef_molecular_system.sf_category   nef_molecular_system
   _nef_molecular_system.sf_framecode  nef_molecular_system
   loop_
      _nef_sequence.index
      _nef_sequence.chain_code
      _nef_sequence.sequence_code
      _nef_sequence.residue_name
%s   stop_
save_
`
	t.Run("duplicate", func(t *testing.T) {
		text := strings.Replace(base, "%s", "      1 A 1 MET\n      1 A 2 ALA\n", 1)
		e, rep := newNEFEngine(t, Options{})
		entry := mustParse(t, text)
		e.validateSaveframe(saveframe(t, entry, "nef_molecular_system"), schema.PolySeq, "test.nef")
		require.Len(t, rep.Errors(report.ErrDuplicatedIndex), 1)
	})

	t.Run("disordered", func(t *testing.T) {
		text := strings.Replace(base, "%s", "      1 A 1 MET\n      3 A 2 ALA\n", 1)
		e, rep := newNEFEngine(t, Options{})
		entry := mustParse(t, text)
		e.validateSaveframe(saveframe(t, entry, "nef_molecular_system"), schema.PolySeq, "test.nef")
		require.Len(t, rep.Warnings(report.WarnDisorderedIndex), 1)
	})

	t.Run("null indices excluded from expected range", func(t *testing.T) {
		rows := "      1 A 1 MET\n      2 A 2 ALA\n      . A 3 GLY\n      5 A 4 LYS\n"
		text := strings.Replace(base, "%s", rows, 1)
		e, rep := newNEFEngine(t, Options{})
		entry := mustParse(t, text)
		e.validateSaveframe(saveframe(t, entry, "nef_molecular_system"), schema.PolySeq, "test.nef")

		warns := rep.Warnings(report.WarnDisorderedIndex)
		require.Len(t, warns, 1)
		// Three rows carry an index, so the expected run is 1..3.
		assert.Contains(t, warns[0].Description, "1..3")
	})
}

const starShiftList = `data_test
save_assigned_chem_shift_list_1
   _Assigned_chem_shift_list.Sf_category   assigned_chemical_shifts
   _Assigned_chem_shift_list.Sf_framecode  assigned_chem_shift_list_1
   _Assigned_chem_shift_list.ID            1
   loop_
      _Atom_chem_shift.ID
      _Atom_chem_shift.Entity_assembly_ID
      _Atom_chem_shift.Comp_index_ID
      _Atom_chem_shift.Comp_ID
      _Atom_chem_shift.Atom_ID
      _Atom_chem_shift.Atom_type
      _Atom_chem_shift.Atom_isotope_number
      _Atom_chem_shift.Val
      _Atom_chem_shift.Ambiguity_code
      _Atom_chem_shift.Assigned_chem_shift_list_ID
      1 1 2 ALA CA C 13 52.4 AMBCODE 1
   stop_
save_
`

func TestAmbiguityCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want int // invalid_ambiguity_code findings
	}{
		{"code 1 always admissible", "1", 0},
		{"code 2 rejected on CA", "2", 1},
		{"code 9 always admissible", "9", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.Replace(starShiftList, "AMBCODE", tt.code, 1)
			e, rep := newSTAREngine(t, Options{})
			entry := mustParse(t, text)
			e.validateSaveframe(saveframe(t, entry, "assigned_chem_shift_list_1"), schema.ChemShift, "test.str")
			assert.Len(t, rep.Errors(report.ErrInvalidAmbiguityCode), tt.want)
		})
	}
}

func TestGeminalAmbiguityAdmissible(t *testing.T) {
	text := strings.Replace(starShiftList, "ALA CA C 13 52.4 AMBCODE", "ARG HB2 H 1 1.82 2", 1)
	text = strings.Replace(text, "1 1 2 ALA", "1 1 2 ARG", 1)
	e, rep := newSTAREngine(t, Options{})
	entry := mustParse(t, text)
	e.validateSaveframe(saveframe(t, entry, "assigned_chem_shift_list_1"), schema.ChemShift, "test.str")
	assert.Empty(t, rep.Errors(report.ErrInvalidAmbiguityCode))
}

func TestAtomTypeAndIsotope(t *testing.T) {
	t.Run("wrong isotope", func(t *testing.T) {
		text := strings.Replace(starShiftList, "C 13 52.4 AMBCODE", "C 14 52.4 1", 1)
		e, rep := newSTAREngine(t, Options{})
		entry := mustParse(t, text)
		e.validateSaveframe(saveframe(t, entry, "assigned_chem_shift_list_1"), schema.ChemShift, "test.str")
		require.Len(t, rep.Errors(report.ErrInvalidIsotopeNumber), 1)
	})

	t.Run("unknown element", func(t *testing.T) {
		text := strings.Replace(starShiftList, "C 13 52.4 AMBCODE", "X 13 52.4 1", 1)
		e, rep := newSTAREngine(t, Options{})
		entry := mustParse(t, text)
		e.validateSaveframe(saveframe(t, entry, "assigned_chem_shift_list_1"), schema.ChemShift, "test.str")
		require.NotEmpty(t, rep.Errors(report.ErrInvalidAtomType))
	})
}

func TestAnomalousShift(t *testing.T) {
	// ALA CA is centered near 53 ppm; 120 ppm is far past the observed
	// extremes.
	text := strings.Replace(starShiftList, "52.4 AMBCODE", "120.0 1", 1)

	t.Run("blocking", func(t *testing.T) {
		e, rep := newSTAREngine(t, Options{})
		entry := mustParse(t, text)
		e.validateSaveframe(saveframe(t, entry, "assigned_chem_shift_list_1"), schema.ChemShift, "test.str")
		require.NotEmpty(t, rep.Errors(report.ErrAnomalousData))
	})

	t.Run("softened", func(t *testing.T) {
		e, rep := newSTAREngine(t, Options{NonblkAnomalousCS: true})
		entry := mustParse(t, text)
		e.validateSaveframe(saveframe(t, entry, "assigned_chem_shift_list_1"), schema.ChemShift, "test.str")
		assert.Empty(t, rep.Errors(report.ErrAnomalousData))
		require.NotEmpty(t, rep.Warnings(report.WarnAnomalousChemicalShift))
	})
}

func TestListIDMismatch(t *testing.T) {
	text := strings.Replace(starShiftList, "52.4 AMBCODE 1", "52.4 1 2", 1)
	e, rep := newSTAREngine(t, Options{})
	entry := mustParse(t, text)
	e.validateSaveframe(saveframe(t, entry, "assigned_chem_shift_list_1"), schema.ChemShift, "test.str")

	var found bool
	for _, f := range rep.Errors(report.ErrInvalidData) {
		if strings.Contains(f.Description, "Assigned_chem_shift_list_ID") {
			found = true
		}
	}
	assert.True(t, found, "list ID mismatch must be reported")
}

func TestListIDSubstituted(t *testing.T) {
	text := strings.Replace(starShiftList, "   _Assigned_chem_shift_list.ID            1\n", "", 1)
	e, rep := newSTAREngine(t, Options{})
	entry := mustParse(t, strings.Replace(text, "AMBCODE", "1", 1))
	e.validateSaveframe(saveframe(t, entry, "assigned_chem_shift_list_1"), schema.ChemShift, "test.str")

	var substituted bool
	for _, f := range rep.Warnings(report.WarnMissingData) {
		if strings.Contains(f.Description, "assuming list ID 1") {
			substituted = true
		}
	}
	assert.True(t, substituted)
}

const nefSpectrum = `data_test
save_spectrum_1
   _nef_nmr_spectrum.sf_category          nef_nmr_spectrum
   _nef_nmr_spectrum.sf_framecode         spectrum_1
   _nef_nmr_spectrum.num_dimensions       2
   _nef_nmr_spectrum.chemical_shift_list  cs_list_1
   loop_
      _nef_spectrum_dimension.dimension_id
      _nef_spectrum_dimension.axis_unit
      _nef_spectrum_dimension.axis_code
      _nef_spectrum_dimension.spectrometer_frequency
      _nef_spectrum_dimension.spectral_width
      _nef_spectrum_dimension.value_first_point
      _nef_spectrum_dimension.absolute_peak_positions
      _nef_spectrum_dimension.is_acquisition
      1 ppm 1H  600.0 12.0 11.0  false true
      2 ppm 15N 60.8  30.0 135.0 false false
   stop_
   loop_
      _nef_peak.index
      _nef_peak.peak_id
      _nef_peak.chain_code_1
      _nef_peak.sequence_code_1
      _nef_peak.residue_name_1
      _nef_peak.atom_name_1
      _nef_peak.chain_code_2
      _nef_peak.sequence_code_2
      _nef_peak.residue_name_2
      _nef_peak.atom_name_2
      _nef_peak.position_1
      _nef_peak.position_2
      _nef_peak.height
      1 1 A 2 ALA H A 2 ALA N 8.2 118.4 1000.0
   stop_
save_
`

func TestSpectralPeakClean(t *testing.T) {
	e, rep := newNEFEngine(t, Options{})
	entry := mustParse(t, nefSpectrum)
	e.validateSaveframe(saveframe(t, entry, "spectrum_1"), schema.SpectralPeak, "test.nef")
	assert.Zero(t, rep.ErrorCount())
}

func TestSpectralPeakOutsideWindow(t *testing.T) {
	// Dimension 1 is the acquisition dimension: its window is the bare
	// sweep interval [-1, 11] ppm.
	text := strings.Replace(nefSpectrum, "8.2 118.4", "15.0 118.4", 1)
	e, rep := newNEFEngine(t, Options{})
	entry := mustParse(t, text)
	e.validateSaveframe(saveframe(t, entry, "spectrum_1"), schema.SpectralPeak, "test.nef")

	anomalies := rep.Errors(report.ErrAnomalousData)
	require.Len(t, anomalies, 1)
	assert.Contains(t, anomalies[0].Description, "dimension 1")
}

func TestSpectralPeakDisallowedDimension(t *testing.T) {
	text := strings.Replace(nefSpectrum,
		"      _nef_peak.position_2\n",
		"      _nef_peak.position_2\n      _nef_peak.position_3\n", 1)
	text = strings.Replace(text, "8.2 118.4 1000.0", "8.2 118.4 4.1 1000.0", 1)
	e, rep := newNEFEngine(t, Options{})
	entry := mustParse(t, text)
	e.validateSaveframe(saveframe(t, entry, "spectrum_1"), schema.SpectralPeak, "test.nef")

	var found bool
	for _, f := range rep.Errors(report.ErrInvalidData) {
		if strings.Contains(f.Description, "position_3") {
			found = true
		}
	}
	assert.True(t, found, "position_3 exceeds the declared dimension count")
}

func TestSpectralPeakDimCountMismatch(t *testing.T) {
	text := strings.Replace(nefSpectrum, "num_dimensions       2", "num_dimensions       3", 1)
	e, rep := newNEFEngine(t, Options{})
	entry := mustParse(t, text)
	e.validateSaveframe(saveframe(t, entry, "spectrum_1"), schema.SpectralPeak, "test.nef")
	assert.NotEmpty(t, rep.Errors(report.ErrMissingData))
}

func TestSpectralPeakDimCountOutOfBounds(t *testing.T) {
	text := strings.Replace(nefSpectrum, "num_dimensions       2", "num_dimensions       16", 1)
	e, rep := newNEFEngine(t, Options{})
	entry := mustParse(t, text)
	e.validateSaveframe(saveframe(t, entry, "spectrum_1"), schema.SpectralPeak, "test.nef")
	require.NotEmpty(t, rep.Errors(report.ErrInvalidData))
}

func TestSpectralPeakDuplicateDimensionLoop(t *testing.T) {
	// Peak positions are checked against the first dimension loop; a
	// stray second loop with a narrow sweep must not displace it.
	text := strings.Replace(nefSpectrum, `   loop_
      _nef_peak.index`, `   loop_
      _nef_spectrum_dimension.dimension_id
      _nef_spectrum_dimension.axis_unit
      _nef_spectrum_dimension.axis_code
      _nef_spectrum_dimension.spectrometer_frequency
      _nef_spectrum_dimension.spectral_width
      _nef_spectrum_dimension.value_first_point
      _nef_spectrum_dimension.absolute_peak_positions
      _nef_spectrum_dimension.is_acquisition
      1 ppm 1H  600.0 2.0 1.0 false true
      2 ppm 15N 60.8  2.0 1.0 false false
   stop_
   loop_
      _nef_peak.index`, 1)
	e, rep := newNEFEngine(t, Options{})
	entry := mustParse(t, text)
	e.validateSaveframe(saveframe(t, entry, "spectrum_1"), schema.SpectralPeak, "test.nef")

	assert.Empty(t, rep.Errors(report.ErrAnomalousData))
}

func TestTransferDimOutOfRange(t *testing.T) {
	text := strings.Replace(nefSpectrum, `   loop_
      _nef_peak.index`, `   loop_
      _nef_spectrum_dimension_transfer.dimension_1
      _nef_spectrum_dimension_transfer.dimension_2
      _nef_spectrum_dimension_transfer.transfer_type
      1 3 onebond
   stop_
   loop_
      _nef_peak.index`, 1)
	e, rep := newNEFEngine(t, Options{})
	entry := mustParse(t, text)
	e.validateSaveframe(saveframe(t, entry, "spectrum_1"), schema.SpectralPeak, "test.nef")

	var found bool
	for _, f := range rep.Errors(report.ErrInvalidData) {
		if strings.Contains(f.Description, "dimension_2") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestNomenclature(t *testing.T) {
	t.Run("pseudo atom accepted", func(t *testing.T) {
		text := strings.Replace(validNEF, "A 2 ALA HA 4.32", "A 2 ALA HB% 1.39", 1)
		e, rep := newNEFEngine(t, Options{})
		entry := mustParse(t, text)
		e.validateSaveframe(saveframe(t, entry, "cs_list_1"), schema.ChemShift, "test.nef")
		assert.Empty(t, rep.Errors(report.ErrInvalidAtomNomenclature))
	})

	t.Run("unknown atom rejected", func(t *testing.T) {
		text := strings.Replace(validNEF, "A 2 ALA HA 4.32", "A 2 ALA HQ 1.39", 1)
		e, rep := newNEFEngine(t, Options{})
		entry := mustParse(t, text)
		e.validateSaveframe(saveframe(t, entry, "cs_list_1"), schema.ChemShift, "test.nef")
		require.NotEmpty(t, rep.Errors(report.ErrInvalidAtomNomenclature))
	})

	t.Run("author atom mismatch", func(t *testing.T) {
		text := strings.Replace(starShiftList,
			"      _Atom_chem_shift.Assigned_chem_shift_list_ID\n",
			"      _Atom_chem_shift.Auth_atom_ID\n      _Atom_chem_shift.Assigned_chem_shift_list_ID\n", 1)
		text = strings.Replace(text, "52.4 AMBCODE 1", "52.4 1 CB 1", 1)
		e, rep := newSTAREngine(t, Options{})
		entry := mustParse(t, text)
		e.validateSaveframe(saveframe(t, entry, "assigned_chem_shift_list_1"), schema.ChemShift, "test.str")
		require.Len(t, rep.Warnings(report.WarnAtomNomenclature), 1)
	})
}

func TestInputSourceContentType(t *testing.T) {
	t.Run("unified", func(t *testing.T) {
		e, rep := newNEFEngine(t, Options{Content: ContentUnified})
		e.Validate(mustParse(t, validNEF), "test.nef")
		srcs := rep.InputSources()
		require.Len(t, srcs, 1)
		assert.Equal(t, "nmr-unified-data", srcs[0].ContentType)
	})

	t.Run("shifts only", func(t *testing.T) {
		text := strings.Replace(starShiftList, "AMBCODE", "1", 1)
		e, rep := newSTAREngine(t, Options{Content: ContentShiftsOnly})
		e.Validate(mustParse(t, text), "cs.str")
		srcs := rep.InputSources()
		require.Len(t, srcs, 1)
		assert.Equal(t, "nmr-chemical-shifts", srcs[0].ContentType)
	})
}

func TestUnknownTagsReported(t *testing.T) {
	t.Run("loop column", func(t *testing.T) {
		text := strings.Replace(validNEF,
			"      _nef_chemical_shift.value\n",
			"      _nef_chemical_shift.value\n      _nef_chemical_shift.color\n", 1)
		text = strings.Replace(text, "A 2 ALA HA 4.32", "A 2 ALA HA 4.32 red", 1)
		text = strings.Replace(text, "A 3 GLY HA2 3.91", "A 3 GLY HA2 3.91 blue", 1)
		e, rep := newNEFEngine(t, Options{})
		entry := mustParse(t, text)
		e.validateSaveframe(saveframe(t, entry, "cs_list_1"), schema.ChemShift, "test.nef")

		warns := rep.Warnings(report.WarnSkippedLpCategory)
		require.Len(t, warns, 1)
		assert.Equal(t, "color", warns[0].Value)
	})

	t.Run("saveframe tag", func(t *testing.T) {
		text := strings.Replace(validNEF,
			"   _nef_chemical_shift_list.sf_framecode  cs_list_1\n",
			"   _nef_chemical_shift_list.sf_framecode  cs_list_1\n   _nef_chemical_shift_list.color         red\n", 1)
		e, rep := newNEFEngine(t, Options{})
		entry := mustParse(t, text)
		e.validateSaveframe(saveframe(t, entry, "cs_list_1"), schema.ChemShift, "test.nef")

		warns := rep.Warnings(report.WarnSkippedSfCategory)
		require.Len(t, warns, 1)
		assert.Equal(t, "color", warns[0].Value)
	})
}

func TestCheckValueTyping(t *testing.T) {
	it := schema.Item{Name: "weight", Type: schema.TypePositiveFloat}

	assert.Empty(t, checkValue(it, "1.5"))

	zero := checkValue(it, "0.0")
	require.Len(t, zero, 1)
	assert.Equal(t, report.WarnMissingData, zero[0].warnKind)

	bad := checkValue(it, "abc")
	require.Len(t, bad, 1)
	assert.Equal(t, report.ErrInvalidData, bad[0].errKind)
}

// fixedOracle serves exactly the rows it was built with, standing in for
// a store-loaded statistics table.
type fixedOracle map[string]shiftstat.Stat

func (o fixedOracle) Lookup(compID, atomID string) (shiftstat.Stat, bool) {
	s, ok := o[compID+":"+atomID]
	return s, ok
}

func TestShiftStatWithoutSpread(t *testing.T) {
	// A single-observation row has Std == 0; grading in standard
	// deviations is meaningless, only the extremes apply.
	degenerate := fixedOracle{
		"ALA:CA": {CompID: "ALA", AtomID: "CA", Avg: 52.5, Std: 0, Min: 52.0, Max: 53.0, Count: 1},
	}

	t.Run("within the extremes", func(t *testing.T) {
		text := strings.Replace(starShiftList, "AMBCODE", "1", 1)
		e, rep := newSTAREngine(t, Options{})
		e.oracle = degenerate
		entry := mustParse(t, text)
		e.validateSaveframe(saveframe(t, entry, "assigned_chem_shift_list_1"), schema.ChemShift, "test.str")

		assert.Empty(t, rep.Errors(report.ErrAnomalousData))
		assert.Empty(t, rep.Warnings(report.WarnSuspiciousData))
		assert.Empty(t, rep.Warnings(report.WarnUnusualData))
	})

	t.Run("outside the extremes", func(t *testing.T) {
		text := strings.Replace(starShiftList, "52.4 AMBCODE", "120.0 1", 1)
		e, rep := newSTAREngine(t, Options{})
		e.oracle = degenerate
		entry := mustParse(t, text)
		e.validateSaveframe(saveframe(t, entry, "assigned_chem_shift_list_1"), schema.ChemShift, "test.str")

		require.NotEmpty(t, rep.Errors(report.ErrAnomalousData))
	})
}

func TestPanicBecomesInternalError(t *testing.T) {
	e, rep := newNEFEngine(t, Options{})
	e.oracle = nil // Lookup on a nil interface panics inside the run.
	e.Validate(mustParse(t, validNEF), "test.nef")
	require.NotEmpty(t, rep.Errors(report.ErrInternal))
}
