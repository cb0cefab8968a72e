package schema

// NMR-STAR dictionary tables. As with the NEF tables, item names are local.

var starTransferType = []string{
	"onebond", "jcoupling", "jmultibond", "relayed", "relayed-alternate", "through-space",
}

var starConstraintType = []string{
	"NOE", "NOE build-up", "NOE not seen", "ROE", "hydrogen bond",
	"disulfide bond", "paramagnetic relaxation", "symmetry", "general distance",
}

var starDefs = map[Subtype]*Def{
	EntryInfo: {
		SaveframeCategory: "entry_information",
		LoopCategory:      "_Software_applied_methods",
		TagPrefix:         "_Entry",
		KeyItems: []Item{
			{Name: "Software_ID", Type: TypePositiveInt},
		},
		DataItems: []Item{
			{Name: "Software_name", Type: TypeStr, Mandatory: true},
			{Name: "Software_version", Type: TypeStr},
			{Name: "Methods", Type: TypeStr},
			{Name: "Entry_ID", Type: TypeStr},
		},
		SfTagItems: []Item{
			{Name: "ID", Type: TypeStr, Mandatory: true},
			{Name: "Title", Type: TypeStr},
			{Name: "NMR_STAR_version", Type: TypeStr},
			{Name: "Original_NMR_STAR_version", Type: TypeStr},
			{Name: "Experimental_method", Type: TypeStr},
			{Name: "Experimental_method_subtype", Type: TypeStr},
		},
	},

	PolySeq: {
		SaveframeCategory: "assembly",
		LoopCategory:      "_Chem_comp_assembly",
		TagPrefix:         "_Assembly",
		ListIDTag:         "Assembly_ID",
		SfIDTag:           "ID",
		KeyItems: []Item{
			{Name: "Entity_assembly_ID", Type: TypePositiveInt},
			{Name: "Comp_index_ID", Type: TypeInt},
			{Name: "Comp_ID", Type: TypeStr},
		},
		DataItems: []Item{
			{Name: "Entity_ID", Type: TypePositiveInt},
			{Name: "Seq_ID", Type: TypeInt},
			{Name: "Auth_asym_ID", Type: TypeStr},
			{Name: "Auth_seq_ID", Type: TypeInt},
			{Name: "Auth_comp_ID", Type: TypeStr},
			{Name: "Sequence_linking", Type: TypeEnum,
				Enum: []string{"start", "end", "middle", "cyclic", "break", "single", "dummy"}},
			{Name: "Cis_residue", Type: TypeBool},
		},
		SfTagItems: []Item{
			{Name: "ID", Type: TypePositiveInt, Mandatory: true},
			{Name: "Name", Type: TypeStr},
			{Name: "Number_of_components", Type: TypePositiveInt},
		},
	},

	ChemShift: {
		SaveframeCategory: "assigned_chemical_shifts",
		LoopCategory:      "_Atom_chem_shift",
		TagPrefix:         "_Assigned_chem_shift_list",
		IndexTag:          "ID",
		ListIDTag:         "Assigned_chem_shift_list_ID",
		SfIDTag:           "ID",
		KeyItems: []Item{
			{Name: "Entity_assembly_ID", Type: TypePositiveInt},
			{Name: "Comp_index_ID", Type: TypeInt},
			{Name: "Comp_ID", Type: TypeStr},
			{Name: "Atom_ID", Type: TypeStr},
		},
		DataItems: []Item{
			{Name: "ID", Type: TypeIndexInt, Mandatory: true},
			{Name: "Entity_ID", Type: TypePositiveInt},
			{Name: "Seq_ID", Type: TypeInt},
			{Name: "Atom_type", Type: TypeStr, Mandatory: true},
			{Name: "Atom_isotope_number", Type: TypePositiveInt, Mandatory: true},
			{Name: "Val", Type: TypeRangeFloat, Mandatory: true, Range: &RangeChemShift},
			{Name: "Val_err", Type: TypePositiveFloat, Range: &RangeChemShiftErr},
			{Name: "Ambiguity_code", Type: TypeEnumInt,
				Enum: []string{"1", "2", "3", "4", "5", "6", "9"}, EnforceEnum: true},
			{Name: "Ambiguity_set_ID", Type: TypePositiveInt},
			{Name: "Auth_asym_ID", Type: TypeStr},
			{Name: "Auth_seq_ID", Type: TypeInt},
			{Name: "Auth_comp_ID", Type: TypeStr},
			{Name: "Auth_atom_ID", Type: TypeStr},
			{Name: "Details", Type: TypeStr},
		},
		SfTagItems: []Item{
			{Name: "ID", Type: TypePositiveInt, Mandatory: true},
			{Name: "Sample_condition_list_ID", Type: TypePositiveInt},
			{Name: "Chem_shift_reference_ID", Type: TypePositiveInt},
		},
	},

	DistRestraint: {
		SaveframeCategory: "general_distance_constraints",
		LoopCategory:      "_Gen_dist_constraint",
		TagPrefix:         "_Gen_dist_constraint_list",
		IndexTag:          "Index_ID",
		ListIDTag:         "Gen_dist_constraint_list_ID",
		SfIDTag:           "ID",
		KeyItems: []Item{
			{Name: "ID", Type: TypePositiveInt},
			{Name: "Entity_assembly_ID_1", Type: TypePositiveInt},
			{Name: "Comp_index_ID_1", Type: TypeInt},
			{Name: "Comp_ID_1", Type: TypeStr},
			{Name: "Atom_ID_1", Type: TypeStr},
			{Name: "Entity_assembly_ID_2", Type: TypePositiveInt},
			{Name: "Comp_index_ID_2", Type: TypeInt},
			{Name: "Comp_ID_2", Type: TypeStr},
			{Name: "Atom_ID_2", Type: TypeStr},
		},
		DataItems: []Item{
			{Name: "Index_ID", Type: TypeIndexInt, Mandatory: true},
			{Name: "Combination_ID", Type: TypePositiveInt},
			{Name: "Member_logic_code", Type: TypeEnum, Enum: []string{"OR", "AND"}},
			{Name: "Weight", Type: TypeRangeFloat, Range: &RangeWeight},
			{Name: "Target_val", Type: TypeRangeFloat, Range: &RangeDistRestraint,
				Group: &Group{MemberWith: []string{"Target_val", "Distance_lower_bound_val", "Distance_upper_bound_val"}}},
			{Name: "Target_val_uncertainty", Type: TypePositiveFloat, Range: &RangeDistRestraintErr},
			{Name: "Lower_linear_limit", Type: TypeRangeFloat, Range: &RangeDistRestraint,
				Group: &Group{CoexistWith: []string{"Distance_lower_bound_val"},
					SmallerThan: []string{"Distance_lower_bound_val"}}},
			{Name: "Distance_lower_bound_val", Type: TypeRangeFloat, Range: &RangeDistRestraint,
				Group: &Group{MemberWith: []string{"Target_val", "Distance_lower_bound_val", "Distance_upper_bound_val"},
					SmallerThan: []string{"Distance_upper_bound_val"}}},
			{Name: "Distance_upper_bound_val", Type: TypeRangeFloat, Range: &RangeDistRestraint,
				Group: &Group{MemberWith: []string{"Target_val", "Distance_lower_bound_val", "Distance_upper_bound_val"},
					LargerThan: []string{"Distance_lower_bound_val"}}},
			{Name: "Upper_linear_limit", Type: TypeRangeFloat, Range: &RangeDistRestraint,
				Group: &Group{CoexistWith: []string{"Distance_upper_bound_val"},
					LargerThan: []string{"Distance_upper_bound_val"}}},
			{Name: "Auth_asym_ID_1", Type: TypeStr},
			{Name: "Auth_seq_ID_1", Type: TypeInt},
			{Name: "Auth_comp_ID_1", Type: TypeStr},
			{Name: "Auth_atom_ID_1", Type: TypeStr},
			{Name: "Auth_asym_ID_2", Type: TypeStr},
			{Name: "Auth_seq_ID_2", Type: TypeInt},
			{Name: "Auth_comp_ID_2", Type: TypeStr},
			{Name: "Auth_atom_ID_2", Type: TypeStr},
		},
		SfTagItems: []Item{
			{Name: "ID", Type: TypePositiveInt, Mandatory: true},
			{Name: "Constraint_type", Type: TypeEnum, Enum: starConstraintType},
			{Name: "Constraint_file_ID", Type: TypePositiveInt},
		},
	},

	DihedRestraint: {
		SaveframeCategory: "torsion_angle_constraints",
		LoopCategory:      "_Torsion_angle_constraint",
		TagPrefix:         "_Torsion_angle_constraint_list",
		IndexTag:          "Index_ID",
		ListIDTag:         "Torsion_angle_constraint_list_ID",
		SfIDTag:           "ID",
		KeyItems:          starDihedKeys(),
		DataItems: []Item{
			{Name: "Index_ID", Type: TypeIndexInt, Mandatory: true},
			{Name: "Combination_ID", Type: TypePositiveInt},
			{Name: "Torsion_angle_name", Type: TypeStr},
			{Name: "Weight", Type: TypeRangeFloat, Range: &RangeWeight},
			{Name: "Angle_target_val", Type: TypeRangeFloat, Range: &RangeDihedRestraint,
				Group: &Group{MemberWith: []string{"Angle_target_val", "Angle_lower_bound_val", "Angle_upper_bound_val"}}},
			{Name: "Angle_target_val_err", Type: TypePositiveFloat, Range: &RangeDihedRestraintErr},
			{Name: "Angle_lower_bound_val", Type: TypeRangeFloat, Range: &RangeDihedRestraint,
				Group: &Group{MemberWith: []string{"Angle_target_val", "Angle_lower_bound_val", "Angle_upper_bound_val"}}},
			{Name: "Angle_upper_bound_val", Type: TypeRangeFloat, Range: &RangeDihedRestraint,
				Group: &Group{MemberWith: []string{"Angle_target_val", "Angle_lower_bound_val", "Angle_upper_bound_val"}}},
		},
		SfTagItems: []Item{
			{Name: "ID", Type: TypePositiveInt, Mandatory: true},
			{Name: "Constraint_file_ID", Type: TypePositiveInt},
		},
	},

	RDCRestraint: {
		SaveframeCategory: "RDC_constraints",
		LoopCategory:      "_RDC_constraint",
		TagPrefix:         "_RDC_constraint_list",
		IndexTag:          "Index_ID",
		ListIDTag:         "RDC_constraint_list_ID",
		SfIDTag:           "ID",
		KeyItems: []Item{
			{Name: "ID", Type: TypePositiveInt},
			{Name: "Entity_assembly_ID_1", Type: TypePositiveInt},
			{Name: "Comp_index_ID_1", Type: TypeInt},
			{Name: "Comp_ID_1", Type: TypeStr},
			{Name: "Atom_ID_1", Type: TypeStr},
			{Name: "Entity_assembly_ID_2", Type: TypePositiveInt},
			{Name: "Comp_index_ID_2", Type: TypeInt},
			{Name: "Comp_ID_2", Type: TypeStr},
			{Name: "Atom_ID_2", Type: TypeStr},
		},
		DataItems: []Item{
			{Name: "Index_ID", Type: TypeIndexInt, Mandatory: true},
			{Name: "Combination_ID", Type: TypePositiveInt},
			{Name: "Weight", Type: TypeRangeFloat, Range: &RangeWeight},
			{Name: "RDC_val", Type: TypeRangeFloat, Range: &RangeRDCRestraint,
				Group: &Group{MemberWith: []string{"RDC_val", "RDC_lower_bound", "RDC_upper_bound"}}},
			{Name: "RDC_val_err", Type: TypePositiveFloat, Range: &RangeRDCRestraintErr},
			{Name: "RDC_lower_bound", Type: TypeRangeFloat, Range: &RangeRDCRestraint,
				Group: &Group{MemberWith: []string{"RDC_val", "RDC_lower_bound", "RDC_upper_bound"},
					SmallerThan: []string{"RDC_upper_bound"}}},
			{Name: "RDC_upper_bound", Type: TypeRangeFloat, Range: &RangeRDCRestraint,
				Group: &Group{MemberWith: []string{"RDC_val", "RDC_lower_bound", "RDC_upper_bound"},
					LargerThan: []string{"RDC_lower_bound"}}},
			{Name: "RDC_val_scale_factor", Type: TypeRangeFloat, Range: &RangeWeight},
			{Name: "RDC_distant_dependent", Type: TypeBool},
		},
		SfTagItems: []Item{
			{Name: "ID", Type: TypePositiveInt, Mandatory: true},
			{Name: "Constraint_file_ID", Type: TypePositiveInt},
		},
	},

	SpectralPeak: {
		SaveframeCategory: "spectral_peak_list",
		LoopCategory:      "_Peak_row_format",
		TagPrefix:         "_Spectral_peak_list",
		IndexTag:          "Index_ID",
		NumDimTag:         "Number_of_spectral_dimensions",
		ListIDTag:         "Spectral_peak_list_ID",
		SfIDTag:           "ID",
		KeyItems: []Item{
			{Name: "ID", Type: TypePositiveInt},
			{Name: "Entity_assembly_ID_%s", Type: TypePositiveInt},
			{Name: "Comp_index_ID_%s", Type: TypeInt},
			{Name: "Comp_ID_%s", Type: TypeStr},
			{Name: "Atom_ID_%s", Type: TypeStr},
		},
		DataItems: []Item{
			{Name: "Index_ID", Type: TypeIndexInt, Mandatory: true},
			{Name: "Volume", Type: TypeFloat,
				Group: &Group{MemberWith: []string{"Volume", "Height"}}},
			{Name: "Volume_uncertainty", Type: TypePositiveFloat,
				Group: &Group{CoexistWith: []string{"Volume"}}},
			{Name: "Height", Type: TypeFloat,
				Group: &Group{MemberWith: []string{"Volume", "Height"}}},
			{Name: "Height_uncertainty", Type: TypePositiveFloat,
				Group: &Group{CoexistWith: []string{"Height"}}},
			{Name: "Position_%s", Type: TypeRangeFloat, Mandatory: true, Range: &RangeChemShift},
			{Name: "Position_uncertainty_%s", Type: TypePositiveFloat},
			{Name: "Details", Type: TypeStr},
		},
		SfTagItems: []Item{
			{Name: "ID", Type: TypePositiveInt, Mandatory: true},
			{Name: "Number_of_spectral_dimensions", Type: TypePositiveInt, Mandatory: true},
			{Name: "Experiment_type", Type: TypeStr},
			{Name: "Chemical_shift_list", Type: TypeStr},
			{Name: "Sample_ID", Type: TypePositiveInt},
		},
		AuxLoops: map[string]*AuxLoopDef{
			"_Spectral_dim": {
				ListIDTag: "Spectral_peak_list_ID",
				KeyItems: []Item{
					{Name: "ID", Type: TypePositiveInt},
				},
				DataItems: []Item{
					{Name: "Axis_code", Type: TypeStr, Mandatory: true},
					{Name: "Spectrometer_frequency", Type: TypePositiveFloat, Mandatory: true},
					{Name: "Spectral_region", Type: TypeStr},
					{Name: "Sweep_width", Type: TypePositiveFloat, Mandatory: true},
					{Name: "Sweep_width_units", Type: TypeEnum, Mandatory: true, Enum: []string{"ppm", "Hz"}, EnforceEnum: true},
					{Name: "Value_first_point", Type: TypeFloat},
					{Name: "Absolute_peak_positions", Type: TypeBool, Mandatory: true},
					{Name: "Acquisition", Type: TypeBool},
					{Name: "Center_frequency_offset", Type: TypeFloat},
				},
			},
			"_Spectral_dim_transfer": {
				ListIDTag: "Spectral_peak_list_ID",
				KeyItems: []Item{
					{Name: "Spectral_dim_ID_1", Type: TypePositiveInt},
					{Name: "Spectral_dim_ID_2", Type: TypePositiveInt},
				},
				DataItems: []Item{
					{Name: "Type", Type: TypeEnum, Mandatory: true, Enum: starTransferType},
					{Name: "Indirect", Type: TypeBool},
				},
			},
		},
	},
}

func starDihedKeys() []Item {
	items := []Item{{Name: "ID", Type: TypePositiveInt}}
	for i := 1; i <= 4; i++ {
		items = append(items,
			Item{Name: expand("Entity_assembly_ID_%s", i), Type: TypePositiveInt},
			Item{Name: expand("Comp_index_ID_%s", i), Type: TypeInt},
			Item{Name: expand("Comp_ID_%s", i), Type: TypeStr},
			Item{Name: expand("Atom_ID_%s", i), Type: TypeStr},
		)
	}
	return items
}
