package schema

// The NEF/NMR-STAR name translation is a fixed bijection over the tags both
// vocabularies model. Entries with an empty side exist in only one format
// and are dropped when converting toward the other. Templated names expand
// per dimension during conversion the same way the peak schema does.

// TagPair relates one NEF tag to one NMR-STAR tag (local names).
type TagPair struct {
	NEF  string
	STAR string
}

var loopTagMaps = map[Subtype][]TagPair{
	EntryInfo: {
		{NEF: "program_name", STAR: "Software_name"},
		{NEF: "script_name", STAR: "Methods"},
		{NEF: "script", STAR: ""},
	},
	PolySeq: {
		{NEF: "index", STAR: ""},
		{NEF: "chain_code", STAR: "Entity_assembly_ID"},
		{NEF: "sequence_code", STAR: "Comp_index_ID"},
		{NEF: "residue_name", STAR: "Comp_ID"},
		{NEF: "linking", STAR: "Sequence_linking"},
		{NEF: "cis_peptide", STAR: "Cis_residue"},
		{NEF: "residue_variant", STAR: ""},
	},
	ChemShift: {
		{NEF: "chain_code", STAR: "Entity_assembly_ID"},
		{NEF: "sequence_code", STAR: "Comp_index_ID"},
		{NEF: "residue_name", STAR: "Comp_ID"},
		{NEF: "atom_name", STAR: "Atom_ID"},
		{NEF: "value", STAR: "Val"},
		{NEF: "value_uncertainty", STAR: "Val_err"},
		{NEF: "element", STAR: "Atom_type"},
		{NEF: "isotope_number", STAR: "Atom_isotope_number"},
	},
	DistRestraint: {
		{NEF: "index", STAR: "Index_ID"},
		{NEF: "restraint_id", STAR: "ID"},
		{NEF: "restraint_combination_id", STAR: "Combination_ID"},
		{NEF: "chain_code_1", STAR: "Entity_assembly_ID_1"},
		{NEF: "sequence_code_1", STAR: "Comp_index_ID_1"},
		{NEF: "residue_name_1", STAR: "Comp_ID_1"},
		{NEF: "atom_name_1", STAR: "Atom_ID_1"},
		{NEF: "chain_code_2", STAR: "Entity_assembly_ID_2"},
		{NEF: "sequence_code_2", STAR: "Comp_index_ID_2"},
		{NEF: "residue_name_2", STAR: "Comp_ID_2"},
		{NEF: "atom_name_2", STAR: "Atom_ID_2"},
		{NEF: "weight", STAR: "Weight"},
		{NEF: "target_value", STAR: "Target_val"},
		{NEF: "target_value_uncertainty", STAR: "Target_val_uncertainty"},
		{NEF: "lower_linear_limit", STAR: "Lower_linear_limit"},
		{NEF: "lower_limit", STAR: "Distance_lower_bound_val"},
		{NEF: "upper_limit", STAR: "Distance_upper_bound_val"},
		{NEF: "upper_linear_limit", STAR: "Upper_linear_limit"},
	},
	DihedRestraint: dihedLoopTagMap(),
	RDCRestraint: {
		{NEF: "index", STAR: "Index_ID"},
		{NEF: "restraint_id", STAR: "ID"},
		{NEF: "restraint_combination_id", STAR: "Combination_ID"},
		{NEF: "chain_code_1", STAR: "Entity_assembly_ID_1"},
		{NEF: "sequence_code_1", STAR: "Comp_index_ID_1"},
		{NEF: "residue_name_1", STAR: "Comp_ID_1"},
		{NEF: "atom_name_1", STAR: "Atom_ID_1"},
		{NEF: "chain_code_2", STAR: "Entity_assembly_ID_2"},
		{NEF: "sequence_code_2", STAR: "Comp_index_ID_2"},
		{NEF: "residue_name_2", STAR: "Comp_ID_2"},
		{NEF: "atom_name_2", STAR: "Atom_ID_2"},
		{NEF: "weight", STAR: "Weight"},
		{NEF: "target_value", STAR: "RDC_val"},
		{NEF: "target_value_uncertainty", STAR: "RDC_val_err"},
		{NEF: "lower_limit", STAR: "RDC_lower_bound"},
		{NEF: "upper_limit", STAR: "RDC_upper_bound"},
		{NEF: "scale", STAR: "RDC_val_scale_factor"},
		{NEF: "distance_dependent", STAR: "RDC_distant_dependent"},
	},
	SpectralPeak: {
		{NEF: "index", STAR: "Index_ID"},
		{NEF: "peak_id", STAR: "ID"},
		{NEF: "volume", STAR: "Volume"},
		{NEF: "volume_uncertainty", STAR: "Volume_uncertainty"},
		{NEF: "height", STAR: "Height"},
		{NEF: "height_uncertainty", STAR: "Height_uncertainty"},
		{NEF: "position_%s", STAR: "Position_%s"},
		{NEF: "position_uncertainty_%s", STAR: "Position_uncertainty_%s"},
		{NEF: "chain_code_%s", STAR: "Entity_assembly_ID_%s"},
		{NEF: "sequence_code_%s", STAR: "Comp_index_ID_%s"},
		{NEF: "residue_name_%s", STAR: "Comp_ID_%s"},
		{NEF: "atom_name_%s", STAR: "Atom_ID_%s"},
	},
}

var sfTagMaps = map[Subtype][]TagPair{
	EntryInfo: {
		{NEF: "format_name", STAR: ""},
		{NEF: "format_version", STAR: "NMR_STAR_version"},
	},
	DistRestraint: {
		{NEF: "potential_type", STAR: ""},
		{NEF: "restraint_origin", STAR: "Constraint_type"},
	},
	DihedRestraint: {
		{NEF: "potential_type", STAR: ""},
		{NEF: "restraint_origin", STAR: ""},
	},
	RDCRestraint: {
		{NEF: "potential_type", STAR: ""},
		{NEF: "tensor_magnitude", STAR: ""},
		{NEF: "tensor_rhombicity", STAR: ""},
		{NEF: "tensor_chain_code", STAR: ""},
	},
	SpectralPeak: {
		{NEF: "num_dimensions", STAR: "Number_of_spectral_dimensions"},
		{NEF: "chemical_shift_list", STAR: "Chemical_shift_list"},
		{NEF: "experiment_type", STAR: "Experiment_type"},
		{NEF: "experiment_classification", STAR: ""},
	},
}

// Auxiliary loop category translation for spectral peak saveframes.
var auxLoopCategoryMap = []TagPair{
	{NEF: "_nef_spectrum_dimension", STAR: "_Spectral_dim"},
	{NEF: "_nef_spectrum_dimension_transfer", STAR: "_Spectral_dim_transfer"},
}

var auxLoopTagMaps = map[string][]TagPair{
	"_nef_spectrum_dimension": {
		{NEF: "dimension_id", STAR: "ID"},
		{NEF: "axis_unit", STAR: "Sweep_width_units"},
		{NEF: "axis_code", STAR: "Axis_code"},
		{NEF: "spectrometer_frequency", STAR: "Spectrometer_frequency"},
		{NEF: "spectral_width", STAR: "Sweep_width"},
		{NEF: "value_first_point", STAR: "Value_first_point"},
		{NEF: "folding", STAR: ""},
		{NEF: "absolute_peak_positions", STAR: "Absolute_peak_positions"},
		{NEF: "is_acquisition", STAR: "Acquisition"},
	},
	"_nef_spectrum_dimension_transfer": {
		{NEF: "dimension_1", STAR: "Spectral_dim_ID_1"},
		{NEF: "dimension_2", STAR: "Spectral_dim_ID_2"},
		{NEF: "transfer_type", STAR: "Type"},
		{NEF: "is_indirect", STAR: "Indirect"},
	},
}

func dihedLoopTagMap() []TagPair {
	pairs := []TagPair{
		{NEF: "index", STAR: "Index_ID"},
		{NEF: "restraint_id", STAR: "ID"},
		{NEF: "restraint_combination_id", STAR: "Combination_ID"},
	}
	for i := 1; i <= 4; i++ {
		pairs = append(pairs,
			TagPair{NEF: expand("chain_code_%s", i), STAR: expand("Entity_assembly_ID_%s", i)},
			TagPair{NEF: expand("sequence_code_%s", i), STAR: expand("Comp_index_ID_%s", i)},
			TagPair{NEF: expand("residue_name_%s", i), STAR: expand("Comp_ID_%s", i)},
			TagPair{NEF: expand("atom_name_%s", i), STAR: expand("Atom_ID_%s", i)},
		)
	}
	pairs = append(pairs,
		TagPair{NEF: "weight", STAR: "Weight"},
		TagPair{NEF: "target_value", STAR: "Angle_target_val"},
		TagPair{NEF: "target_value_uncertainty", STAR: "Angle_target_val_err"},
		TagPair{NEF: "lower_limit", STAR: "Angle_lower_bound_val"},
		TagPair{NEF: "upper_limit", STAR: "Angle_upper_bound_val"},
		TagPair{NEF: "name", STAR: "Torsion_angle_name"},
	)
	return pairs
}

// LoopTagMap returns the loop column translation for a subtype.
func LoopTagMap(st Subtype) []TagPair { return loopTagMaps[st] }

// SfTagMap returns the saveframe tag translation for a subtype.
func SfTagMap(st Subtype) []TagPair { return sfTagMaps[st] }

// AuxLoopCategory translates an auxiliary loop category between formats.
// Returns "" when the category is not an auxiliary peak loop.
func AuxLoopCategory(from Format, category string) string {
	for _, p := range auxLoopCategoryMap {
		if from == NEF && p.NEF == category {
			return p.STAR
		}
		if from == STAR && p.STAR == category {
			return p.NEF
		}
	}
	return ""
}

// AuxLoopTagMap returns the column translation for an auxiliary peak loop,
// keyed by its NEF category.
func AuxLoopTagMap(nefCategory string) []TagPair { return auxLoopTagMaps[nefCategory] }

// TranslateLoopTag translates one local column name for a subtype, expanding
// dimension templates up to numDim. Returns "" when the tag has no
// counterpart in the target vocabulary.
func TranslateLoopTag(st Subtype, from Format, name string, numDim int) string {
	return translate(loopTagMaps[st], from, name, numDim)
}

// TranslateSfTag translates one saveframe tag local name for a subtype.
func TranslateSfTag(st Subtype, from Format, name string) string {
	return translate(sfTagMaps[st], from, name, 0)
}

func translate(pairs []TagPair, from Format, name string, numDim int) string {
	for _, p := range pairs {
		src, dst := p.NEF, p.STAR
		if from == STAR {
			src, dst = dst, src
		}
		if src == name {
			return dst
		}
		if numDim > 0 {
			for dim := 1; dim <= numDim; dim++ {
				if expand(src, dim) == name {
					if dst == "" {
						return ""
					}
					return expand(dst, dim)
				}
			}
		}
	}
	return ""
}
