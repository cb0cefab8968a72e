package ccd

// Compiled-in dictionary entries for the standard amino acids and
// nucleotides, in PDB version 3 atom nomenclature.

type residueDef struct {
	polymerType PolymerType
	oneLetter   byte
	atoms       []string
	leaving     []string
}

func aa(one byte, atoms ...string) residueDef {
	return residueDef{polymerType: AminoAcid, oneLetter: one, atoms: atoms, leaving: []string{"OXT", "HXT", "H2"}}
}

var dnaBackbone = []string{
	"P", "OP1", "OP2", "O5'", "C5'", "H5'", "H5''", "C4'", "H4'", "O4'",
	"C3'", "H3'", "O3'", "C2'", "H2'", "H2''", "C1'", "H1'",
}

var rnaBackbone = []string{
	"P", "OP1", "OP2", "O5'", "C5'", "H5'", "H5''", "C4'", "H4'", "O4'",
	"C3'", "H3'", "O3'", "C2'", "H2'", "O2'", "HO2'", "C1'", "H1'",
}

func nt(ptype PolymerType, one byte, backbone []string, base ...string) residueDef {
	atoms := append(append([]string{}, backbone...), base...)
	return residueDef{polymerType: ptype, oneLetter: one, atoms: atoms, leaving: []string{"HO5'", "HO3'", "OP3", "HOP3"}}
}

var standardResidues = map[string]residueDef{
	"ALA": aa('A', "N", "H", "CA", "HA", "CB", "HB1", "HB2", "HB3", "C", "O"),
	"ARG": aa('R', "N", "H", "CA", "HA", "CB", "HB2", "HB3", "CG", "HG2", "HG3",
		"CD", "HD2", "HD3", "NE", "HE", "CZ", "NH1", "HH11", "HH12", "NH2", "HH21", "HH22", "C", "O"),
	"ASN": aa('N', "N", "H", "CA", "HA", "CB", "HB2", "HB3", "CG", "OD1", "ND2", "HD21", "HD22", "C", "O"),
	"ASP": aa('D', "N", "H", "CA", "HA", "CB", "HB2", "HB3", "CG", "OD1", "OD2", "HD2", "C", "O"),
	"CYS": aa('C', "N", "H", "CA", "HA", "CB", "HB2", "HB3", "SG", "HG", "C", "O"),
	"GLN": aa('Q', "N", "H", "CA", "HA", "CB", "HB2", "HB3", "CG", "HG2", "HG3",
		"CD", "OE1", "NE2", "HE21", "HE22", "C", "O"),
	"GLU": aa('E', "N", "H", "CA", "HA", "CB", "HB2", "HB3", "CG", "HG2", "HG3",
		"CD", "OE1", "OE2", "HE2", "C", "O"),
	"GLY": aa('G', "N", "H", "CA", "HA2", "HA3", "C", "O"),
	"HIS": aa('H', "N", "H", "CA", "HA", "CB", "HB2", "HB3", "CG", "ND1", "HD1",
		"CD2", "HD2", "CE1", "HE1", "NE2", "HE2", "C", "O"),
	"ILE": aa('I', "N", "H", "CA", "HA", "CB", "HB", "CG1", "HG12", "HG13",
		"CG2", "HG21", "HG22", "HG23", "CD1", "HD11", "HD12", "HD13", "C", "O"),
	"LEU": aa('L', "N", "H", "CA", "HA", "CB", "HB2", "HB3", "CG", "HG",
		"CD1", "HD11", "HD12", "HD13", "CD2", "HD21", "HD22", "HD23", "C", "O"),
	"LYS": aa('K', "N", "H", "CA", "HA", "CB", "HB2", "HB3", "CG", "HG2", "HG3",
		"CD", "HD2", "HD3", "CE", "HE2", "HE3", "NZ", "HZ1", "HZ2", "HZ3", "C", "O"),
	"MET": aa('M', "N", "H", "CA", "HA", "CB", "HB2", "HB3", "CG", "HG2", "HG3",
		"SD", "CE", "HE1", "HE2", "HE3", "C", "O"),
	"PHE": aa('F', "N", "H", "CA", "HA", "CB", "HB2", "HB3", "CG", "CD1", "HD1",
		"CD2", "HD2", "CE1", "HE1", "CE2", "HE2", "CZ", "HZ", "C", "O"),
	"PRO": aa('P', "N", "CA", "HA", "CB", "HB2", "HB3", "CG", "HG2", "HG3",
		"CD", "HD2", "HD3", "C", "O"),
	"SER": aa('S', "N", "H", "CA", "HA", "CB", "HB2", "HB3", "OG", "HG", "C", "O"),
	"THR": aa('T', "N", "H", "CA", "HA", "CB", "HB", "OG1", "HG1",
		"CG2", "HG21", "HG22", "HG23", "C", "O"),
	"TRP": aa('W', "N", "H", "CA", "HA", "CB", "HB2", "HB3", "CG", "CD1", "HD1",
		"CD2", "NE1", "HE1", "CE2", "CE3", "HE3", "CZ2", "HZ2", "CZ3", "HZ3", "CH2", "HH2", "C", "O"),
	"TYR": aa('Y', "N", "H", "CA", "HA", "CB", "HB2", "HB3", "CG", "CD1", "HD1",
		"CD2", "HD2", "CE1", "HE1", "CE2", "HE2", "CZ", "OH", "HH", "C", "O"),
	"VAL": aa('V', "N", "H", "CA", "HA", "CB", "HB",
		"CG1", "HG11", "HG12", "HG13", "CG2", "HG21", "HG22", "HG23", "C", "O"),

	"DA": nt(DNA, 'A', dnaBackbone,
		"N9", "C8", "H8", "N7", "C5", "C6", "N6", "H61", "H62", "N1", "C2", "H2", "N3", "C4"),
	"DC": nt(DNA, 'C', dnaBackbone,
		"N1", "C2", "O2", "N3", "C4", "N4", "H41", "H42", "C5", "H5", "C6", "H6"),
	"DG": nt(DNA, 'G', dnaBackbone,
		"N9", "C8", "H8", "N7", "C5", "C6", "O6", "N1", "H1", "C2", "N2", "H21", "H22", "N3", "C4"),
	"DT": nt(DNA, 'T', dnaBackbone,
		"N1", "C2", "O2", "N3", "H3", "C4", "O4", "C5", "C7", "H71", "H72", "H73", "C6", "H6"),

	"A": nt(RNA, 'A', rnaBackbone,
		"N9", "C8", "H8", "N7", "C5", "C6", "N6", "H61", "H62", "N1", "C2", "H2", "N3", "C4"),
	"C": nt(RNA, 'C', rnaBackbone,
		"N1", "C2", "O2", "N3", "C4", "N4", "H41", "H42", "C5", "H5", "C6", "H6"),
	"G": nt(RNA, 'G', rnaBackbone,
		"N9", "C8", "H8", "N7", "C5", "C6", "O6", "N1", "H1", "C2", "N2", "H21", "H22", "N3", "C4"),
	"U": nt(RNA, 'U', rnaBackbone,
		"N1", "C2", "O2", "N3", "H3", "C4", "O4", "C5", "H5", "C6", "H6"),
}

func set(atoms ...string) map[string]bool {
	m := make(map[string]bool, len(atoms))
	for _, a := range atoms {
		m[a] = true
	}
	return m
}

// geminalAtoms lists, per residue, the atoms for which ambiguity code 2 is
// admissible: methylene and amino proton pairs and equivalent branch
// methyls.
var geminalAtoms = map[string]map[string]bool{
	"ARG": set("HB2", "HB3", "HG2", "HG3", "HD2", "HD3", "HH11", "HH12", "HH21", "HH22"),
	"ASN": set("HB2", "HB3", "HD21", "HD22"),
	"ASP": set("HB2", "HB3"),
	"CYS": set("HB2", "HB3"),
	"GLN": set("HB2", "HB3", "HG2", "HG3", "HE21", "HE22"),
	"GLU": set("HB2", "HB3", "HG2", "HG3"),
	"GLY": set("HA2", "HA3"),
	"HIS": set("HB2", "HB3"),
	"ILE": set("HG12", "HG13"),
	"LEU": set("HB2", "HB3", "HD11", "HD12", "HD13", "HD21", "HD22", "HD23", "CD1", "CD2"),
	"LYS": set("HB2", "HB3", "HG2", "HG3", "HD2", "HD3", "HE2", "HE3"),
	"MET": set("HB2", "HB3", "HG2", "HG3"),
	"PHE": set("HB2", "HB3"),
	"PRO": set("HB2", "HB3", "HG2", "HG3", "HD2", "HD3"),
	"SER": set("HB2", "HB3"),
	"TRP": set("HB2", "HB3"),
	"TYR": set("HB2", "HB3"),
	"VAL": set("HG11", "HG12", "HG13", "HG21", "HG22", "HG23", "CG1", "CG2"),

	"DA": set("H5'", "H5''", "H61", "H62", "H2'", "H2''"),
	"DC": set("H5'", "H5''", "H41", "H42", "H2'", "H2''"),
	"DG": set("H5'", "H5''", "H21", "H22", "H2'", "H2''"),
	"DT": set("H5'", "H5''", "H2'", "H2''"),
	"A":  set("H5'", "H5''", "H61", "H62"),
	"C":  set("H5'", "H5''", "H41", "H42"),
	"G":  set("H5'", "H5''", "H21", "H22"),
	"U":  set("H5'", "H5''"),
}

// aromaticAtoms lists, per residue, the atoms for which ambiguity code 3
// (ring symmetry) is admissible.
var aromaticAtoms = map[string]map[string]bool{
	"PHE": set("HD1", "HD2", "HE1", "HE2", "CD1", "CD2", "CE1", "CE2"),
	"TYR": set("HD1", "HD2", "HE1", "HE2", "CD1", "CD2", "CE1", "CE2"),
}
