package schema

// NEF dictionary tables. Item names are local (prefix stripped), matching
// what Loop.LocalColumns yields.

var nefLinking = []string{"start", "end", "middle", "cyclic", "break", "single", "dummy"}

var nefPotentialType = []string{
	"log-harmonic", "parabolic", "square-well-parabolic",
	"square-well-parabolic-linear", "upper-bound-parabolic",
	"lower-bound-parabolic", "upper-bound-parabolic-linear",
	"lower-bound-parabolic-linear", "undefined",
}

var nefTransferType = []string{
	"onebond", "jcoupling", "jmultibond", "relayed", "relayed-alternate", "through-space",
}

var nefDefs = map[Subtype]*Def{
	EntryInfo: {
		SaveframeCategory: "nef_nmr_meta_data",
		LoopCategory:      "_nef_program_script",
		TagPrefix:         "_nef_nmr_meta_data",
		KeyItems: []Item{
			{Name: "program_name", Type: TypeStr},
		},
		DataItems: []Item{
			{Name: "script_name", Type: TypeStr},
			{Name: "script", Type: TypeStr},
		},
		SfTagItems: []Item{
			{Name: "format_name", Type: TypeEnum, Mandatory: true, Enum: []string{"nmr_exchange_format", "Nmr_Exchange_Format"}},
			{Name: "format_version", Type: TypeStr, Mandatory: true},
			{Name: "program_name", Type: TypeStr, Mandatory: true},
			{Name: "program_version", Type: TypeStr},
			{Name: "creation_date", Type: TypeStr, Mandatory: true},
			{Name: "uuid", Type: TypeStr},
			{Name: "coordinate_file_name", Type: TypeStr},
		},
	},

	PolySeq: {
		SaveframeCategory: "nef_molecular_system",
		LoopCategory:      "_nef_sequence",
		TagPrefix:         "_nef_molecular_system",
		IndexTag:          "index",
		KeyItems: []Item{
			{Name: "chain_code", Type: TypeStr},
			{Name: "sequence_code", Type: TypeInt},
			{Name: "residue_name", Type: TypeStr},
		},
		DataItems: []Item{
			{Name: "index", Type: TypeIndexInt, Mandatory: true},
			{Name: "linking", Type: TypeEnum, Enum: nefLinking},
			{Name: "residue_variant", Type: TypeStr},
			{Name: "cis_peptide", Type: TypeBool},
		},
	},

	ChemShift: {
		SaveframeCategory: "nef_chemical_shift_list",
		LoopCategory:      "_nef_chemical_shift",
		TagPrefix:         "_nef_chemical_shift_list",
		KeyItems: []Item{
			{Name: "chain_code", Type: TypeStr},
			{Name: "sequence_code", Type: TypeInt},
			{Name: "residue_name", Type: TypeStr},
			{Name: "atom_name", Type: TypeStr},
		},
		DataItems: []Item{
			{Name: "value", Type: TypeRangeFloat, Mandatory: true, Range: &RangeChemShift},
			{Name: "value_uncertainty", Type: TypePositiveFloat, Range: &RangeChemShiftErr},
			{Name: "element", Type: TypeStr},
			{Name: "isotope_number", Type: TypePositiveInt},
		},
	},

	DistRestraint: {
		SaveframeCategory: "nef_distance_restraint_list",
		LoopCategory:      "_nef_distance_restraint",
		TagPrefix:         "_nef_distance_restraint_list",
		IndexTag:          "index",
		KeyItems: []Item{
			{Name: "restraint_id", Type: TypePositiveInt},
			{Name: "chain_code_1", Type: TypeStr},
			{Name: "sequence_code_1", Type: TypeInt},
			{Name: "residue_name_1", Type: TypeStr},
			{Name: "atom_name_1", Type: TypeStr},
			{Name: "chain_code_2", Type: TypeStr},
			{Name: "sequence_code_2", Type: TypeInt},
			{Name: "residue_name_2", Type: TypeStr},
			{Name: "atom_name_2", Type: TypeStr},
		},
		DataItems: []Item{
			{Name: "index", Type: TypeIndexInt, Mandatory: true},
			{Name: "restraint_combination_id", Type: TypePositiveInt},
			{Name: "weight", Type: TypeRangeFloat, Mandatory: true, Range: &RangeWeight},
			{Name: "target_value", Type: TypeRangeFloat, Range: &RangeDistRestraint,
				Group: &Group{MemberWith: []string{"target_value", "lower_limit", "upper_limit"}}},
			{Name: "target_value_uncertainty", Type: TypePositiveFloat, Range: &RangeDistRestraintErr},
			{Name: "lower_linear_limit", Type: TypeRangeFloat, Range: &RangeDistRestraint,
				Group: &Group{CoexistWith: []string{"lower_limit"}, SmallerThan: []string{"lower_limit"}}},
			{Name: "lower_limit", Type: TypeRangeFloat, Range: &RangeDistRestraint,
				Group: &Group{MemberWith: []string{"target_value", "lower_limit", "upper_limit"},
					SmallerThan: []string{"upper_limit"}}},
			{Name: "upper_limit", Type: TypeRangeFloat, Range: &RangeDistRestraint,
				Group: &Group{MemberWith: []string{"target_value", "lower_limit", "upper_limit"},
					LargerThan: []string{"lower_limit"}}},
			{Name: "upper_linear_limit", Type: TypeRangeFloat, Range: &RangeDistRestraint,
				Group: &Group{CoexistWith: []string{"upper_limit"}, LargerThan: []string{"upper_limit"}}},
		},
		SfTagItems: []Item{
			{Name: "potential_type", Type: TypeEnum, Enum: nefPotentialType},
			{Name: "restraint_origin", Type: TypeStr},
		},
	},

	DihedRestraint: {
		SaveframeCategory: "nef_dihedral_restraint_list",
		LoopCategory:      "_nef_dihedral_restraint",
		TagPrefix:         "_nef_dihedral_restraint_list",
		IndexTag:          "index",
		KeyItems:          nefDihedKeys(),
		DataItems: []Item{
			{Name: "index", Type: TypeIndexInt, Mandatory: true},
			{Name: "restraint_combination_id", Type: TypePositiveInt},
			{Name: "weight", Type: TypeRangeFloat, Mandatory: true, Range: &RangeWeight},
			{Name: "target_value", Type: TypeRangeFloat, Range: &RangeDihedRestraint,
				Group: &Group{MemberWith: []string{"target_value", "lower_limit", "upper_limit"}}},
			{Name: "target_value_uncertainty", Type: TypePositiveFloat, Range: &RangeDihedRestraintErr},
			{Name: "lower_limit", Type: TypeRangeFloat, Range: &RangeDihedRestraint,
				Group: &Group{MemberWith: []string{"target_value", "lower_limit", "upper_limit"},
					SmallerThan: []string{"upper_limit"}}},
			{Name: "upper_limit", Type: TypeRangeFloat, Range: &RangeDihedRestraint,
				Group: &Group{MemberWith: []string{"target_value", "lower_limit", "upper_limit"},
					LargerThan: []string{"lower_limit"}}},
			{Name: "name", Type: TypeStr},
		},
		SfTagItems: []Item{
			{Name: "potential_type", Type: TypeEnum, Enum: nefPotentialType},
			{Name: "restraint_origin", Type: TypeStr},
		},
	},

	RDCRestraint: {
		SaveframeCategory: "nef_rdc_restraint_list",
		LoopCategory:      "_nef_rdc_restraint",
		TagPrefix:         "_nef_rdc_restraint_list",
		IndexTag:          "index",
		KeyItems: []Item{
			{Name: "restraint_id", Type: TypePositiveInt},
			{Name: "chain_code_1", Type: TypeStr},
			{Name: "sequence_code_1", Type: TypeInt},
			{Name: "residue_name_1", Type: TypeStr},
			{Name: "atom_name_1", Type: TypeStr},
			{Name: "chain_code_2", Type: TypeStr},
			{Name: "sequence_code_2", Type: TypeInt},
			{Name: "residue_name_2", Type: TypeStr},
			{Name: "atom_name_2", Type: TypeStr},
		},
		DataItems: []Item{
			{Name: "index", Type: TypeIndexInt, Mandatory: true},
			{Name: "restraint_combination_id", Type: TypePositiveInt},
			{Name: "weight", Type: TypeRangeFloat, Mandatory: true, Range: &RangeWeight},
			{Name: "target_value", Type: TypeRangeFloat, Range: &RangeRDCRestraint,
				Group: &Group{MemberWith: []string{"target_value", "lower_limit", "upper_limit"}}},
			{Name: "target_value_uncertainty", Type: TypePositiveFloat, Range: &RangeRDCRestraintErr},
			{Name: "lower_limit", Type: TypeRangeFloat, Range: &RangeRDCRestraint,
				Group: &Group{MemberWith: []string{"target_value", "lower_limit", "upper_limit"},
					SmallerThan: []string{"upper_limit"}}},
			{Name: "upper_limit", Type: TypeRangeFloat, Range: &RangeRDCRestraint,
				Group: &Group{MemberWith: []string{"target_value", "lower_limit", "upper_limit"},
					LargerThan: []string{"lower_limit"}}},
			{Name: "scale", Type: TypeRangeFloat, Range: &RangeWeight},
			{Name: "distance_dependent", Type: TypeBool},
		},
		SfTagItems: []Item{
			{Name: "potential_type", Type: TypeEnum, Enum: nefPotentialType},
			{Name: "tensor_magnitude", Type: TypeFloat},
			{Name: "tensor_rhombicity", Type: TypeFloat},
			{Name: "tensor_chain_code", Type: TypeStr},
		},
	},

	SpectralPeak: {
		SaveframeCategory: "nef_nmr_spectrum",
		LoopCategory:      "_nef_peak",
		TagPrefix:         "_nef_nmr_spectrum",
		IndexTag:          "index",
		NumDimTag:         "num_dimensions",
		KeyItems: []Item{
			{Name: "peak_id", Type: TypePositiveInt},
			{Name: "chain_code_%s", Type: TypeStr},
			{Name: "sequence_code_%s", Type: TypeInt},
			{Name: "residue_name_%s", Type: TypeStr},
			{Name: "atom_name_%s", Type: TypeStr},
		},
		DataItems: []Item{
			{Name: "index", Type: TypeIndexInt, Mandatory: true},
			{Name: "volume", Type: TypeFloat,
				Group: &Group{MemberWith: []string{"volume", "height"}}},
			{Name: "volume_uncertainty", Type: TypePositiveFloat,
				Group: &Group{CoexistWith: []string{"volume"}}},
			{Name: "height", Type: TypeFloat,
				Group: &Group{MemberWith: []string{"volume", "height"}}},
			{Name: "height_uncertainty", Type: TypePositiveFloat,
				Group: &Group{CoexistWith: []string{"height"}}},
			{Name: "position_%s", Type: TypeRangeFloat, Mandatory: true, Range: &RangeChemShift},
			{Name: "position_uncertainty_%s", Type: TypePositiveFloat},
		},
		SfTagItems: []Item{
			{Name: "num_dimensions", Type: TypePositiveInt, Mandatory: true},
			{Name: "chemical_shift_list", Type: TypeStr, Mandatory: true},
			{Name: "experiment_classification", Type: TypeStr},
			{Name: "experiment_type", Type: TypeStr},
		},
		AuxLoops: map[string]*AuxLoopDef{
			"_nef_spectrum_dimension": {
				KeyItems: []Item{
					{Name: "dimension_id", Type: TypePositiveInt},
				},
				DataItems: []Item{
					{Name: "axis_unit", Type: TypeEnum, Mandatory: true, Enum: []string{"ppm", "Hz"}, EnforceEnum: true},
					{Name: "axis_code", Type: TypeStr, Mandatory: true},
					{Name: "spectrometer_frequency", Type: TypePositiveFloat, Mandatory: true},
					{Name: "spectral_width", Type: TypePositiveFloat, Mandatory: true},
					{Name: "value_first_point", Type: TypeFloat},
					{Name: "folding", Type: TypeEnum, Enum: []string{"circular", "mirror", "none"}},
					{Name: "absolute_peak_positions", Type: TypeBool, Mandatory: true},
					{Name: "is_acquisition", Type: TypeBool},
				},
			},
			"_nef_spectrum_dimension_transfer": {
				KeyItems: []Item{
					{Name: "dimension_1", Type: TypePositiveInt},
					{Name: "dimension_2", Type: TypePositiveInt},
				},
				DataItems: []Item{
					{Name: "transfer_type", Type: TypeEnum, Mandatory: true, Enum: nefTransferType},
					{Name: "is_indirect", Type: TypeBool},
				},
			},
		},
	},
}

func nefDihedKeys() []Item {
	items := []Item{{Name: "restraint_id", Type: TypePositiveInt}}
	for i := 1; i <= 4; i++ {
		items = append(items,
			Item{Name: expand("chain_code_%s", i), Type: TypeStr},
			Item{Name: expand("sequence_code_%s", i), Type: TypeInt},
			Item{Name: expand("residue_name_%s", i), Type: TypeStr},
			Item{Name: expand("atom_name_%s", i), Type: TypeStr},
		)
	}
	return items
}
