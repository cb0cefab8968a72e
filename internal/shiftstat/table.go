package shiftstat

// Builtin statistics for the standard amino acids, backbone and CB atoms
// plus the common side-chain protons. Averages and standard deviations
// follow the BMRB full database statistics; extremes default to avg +/- 5
// standard deviations unless the distribution is known to be wider (CYS CB
// spans reduced and oxidized forms).

func row(comp, atom string, avg, std float64) Stat {
	return Stat{CompID: comp, AtomID: atom, Avg: avg, Std: std, Min: avg - 5*std, Max: avg + 5*std, Count: 1000}
}

var builtinStats = []Stat{
	row("ALA", "H", 8.19, 0.60), row("ALA", "HA", 4.25, 0.44),
	row("ALA", "CA", 53.13, 1.98), row("ALA", "CB", 19.00, 1.83),
	row("ALA", "C", 177.75, 2.14), row("ALA", "N", 123.23, 3.54),
	row("ALA", "HB", 1.35, 0.26),

	row("ARG", "H", 8.24, 0.61), row("ARG", "HA", 4.30, 0.46),
	row("ARG", "CA", 56.78, 2.32), row("ARG", "CB", 30.65, 1.84),
	row("ARG", "C", 176.43, 2.04), row("ARG", "N", 120.76, 3.68),
	row("ARG", "HB", 1.79, 0.27), row("ARG", "HG", 1.57, 0.27),
	row("ARG", "HD", 3.12, 0.24), row("ARG", "HE", 7.40, 0.63),

	row("ASN", "H", 8.35, 0.63), row("ASN", "HA", 4.67, 0.36),
	row("ASN", "CA", 53.54, 1.91), row("ASN", "CB", 38.69, 1.72),
	row("ASN", "C", 175.26, 1.78), row("ASN", "N", 118.91, 4.03),
	row("ASN", "HB", 2.81, 0.31),

	row("ASP", "H", 8.31, 0.58), row("ASP", "HA", 4.60, 0.32),
	row("ASP", "CA", 54.69, 2.03), row("ASP", "CB", 40.88, 1.62),
	row("ASP", "C", 176.41, 1.75), row("ASP", "N", 120.65, 3.86),
	row("ASP", "HB", 2.72, 0.27),

	{CompID: "CYS", AtomID: "H", Avg: 8.38, Std: 0.67, Min: 5.03, Max: 11.73, Count: 1000},
	row("CYS", "HA", 4.69, 0.57),
	row("CYS", "CA", 58.21, 3.36),
	{CompID: "CYS", AtomID: "CB", Avg: 32.84, Std: 6.39, Min: 18.0, Max: 66.0, Count: 1000},
	row("CYS", "C", 174.87, 2.05), row("CYS", "N", 120.21, 4.47),
	row("CYS", "HB", 2.95, 0.45),

	row("GLN", "H", 8.22, 0.59), row("GLN", "HA", 4.27, 0.44),
	row("GLN", "CA", 56.58, 2.18), row("GLN", "CB", 29.19, 1.85),
	row("GLN", "C", 176.35, 1.95), row("GLN", "N", 119.88, 3.59),
	row("GLN", "HB", 2.05, 0.26), row("GLN", "HG", 2.32, 0.28),

	row("GLU", "H", 8.33, 0.60), row("GLU", "HA", 4.25, 0.41),
	row("GLU", "CA", 57.35, 2.09), row("GLU", "CB", 30.01, 1.71),
	row("GLU", "C", 176.93, 1.94), row("GLU", "N", 120.68, 3.51),
	row("GLU", "HB", 2.02, 0.22), row("GLU", "HG", 2.27, 0.22),

	row("GLY", "H", 8.33, 0.64), row("GLY", "HA", 3.96, 0.37),
	row("GLY", "CA", 45.36, 1.26),
	row("GLY", "C", 173.89, 1.81), row("GLY", "N", 109.67, 3.72),

	row("HIS", "H", 8.25, 0.68), row("HIS", "HA", 4.61, 0.44),
	row("HIS", "CA", 56.51, 2.32), row("HIS", "CB", 30.24, 2.10),
	row("HIS", "C", 175.26, 1.97), row("HIS", "N", 119.64, 4.03),
	row("HIS", "HB", 3.09, 0.36),
	row("HIS", "HD2", 7.02, 0.43), row("HIS", "HE1", 7.96, 0.50),

	row("ILE", "H", 8.29, 0.69), row("ILE", "HA", 4.18, 0.56),
	row("ILE", "CA", 61.61, 2.69), row("ILE", "CB", 38.60, 2.01),
	row("ILE", "C", 175.84, 1.90), row("ILE", "N", 121.44, 4.24),
	row("ILE", "HB", 1.78, 0.29), row("ILE", "HG1", 1.27, 0.39),
	row("ILE", "HG2", 0.77, 0.27), row("ILE", "HD1", 0.68, 0.29),

	row("LEU", "H", 8.22, 0.64), row("LEU", "HA", 4.32, 0.46),
	row("LEU", "CA", 55.66, 2.14), row("LEU", "CB", 42.27, 1.88),
	row("LEU", "C", 177.00, 1.98), row("LEU", "N", 121.83, 3.88),
	row("LEU", "HB", 1.62, 0.33), row("LEU", "HG", 1.51, 0.33),
	row("LEU", "HD", 0.75, 0.28),

	row("LYS", "H", 8.18, 0.60), row("LYS", "HA", 4.27, 0.44),
	row("LYS", "CA", 56.95, 2.19), row("LYS", "CB", 32.78, 1.79),
	row("LYS", "C", 176.64, 1.95), row("LYS", "N", 121.03, 3.75),
	row("LYS", "HB", 1.77, 0.25), row("LYS", "HG", 1.37, 0.26),
	row("LYS", "HD", 1.61, 0.22), row("LYS", "HE", 2.92, 0.19),

	row("MET", "H", 8.26, 0.60), row("MET", "HA", 4.41, 0.47),
	row("MET", "CA", 56.12, 2.19), row("MET", "CB", 32.95, 2.21),
	row("MET", "C", 176.25, 2.06), row("MET", "N", 120.08, 3.52),
	row("MET", "HB", 2.03, 0.33), row("MET", "HG", 2.43, 0.35),
	row("MET", "HE", 1.86, 0.48),

	row("PHE", "H", 8.36, 0.71), row("PHE", "HA", 4.63, 0.56),
	row("PHE", "CA", 58.12, 2.58), row("PHE", "CB", 39.95, 2.06),
	row("PHE", "C", 175.47, 1.99), row("PHE", "N", 120.41, 4.18),
	row("PHE", "HB", 2.99, 0.36),
	row("PHE", "HD", 7.06, 0.31), row("PHE", "HE", 7.08, 0.31), row("PHE", "HZ", 7.00, 0.41),

	row("PRO", "HA", 4.40, 0.33),
	row("PRO", "CA", 63.33, 1.52), row("PRO", "CB", 31.84, 1.18),
	row("PRO", "C", 176.72, 1.53), row("PRO", "N", 136.93, 4.73),
	row("PRO", "HB", 2.07, 0.35), row("PRO", "HG", 1.93, 0.31),
	row("PRO", "HD", 3.65, 0.35),

	row("SER", "H", 8.28, 0.60), row("SER", "HA", 4.48, 0.41),
	row("SER", "CA", 58.69, 2.09), row("SER", "CB", 63.80, 1.49),
	row("SER", "C", 174.65, 1.76), row("SER", "N", 116.25, 3.54),
	row("SER", "HB", 3.87, 0.26),

	row("THR", "H", 8.25, 0.62), row("THR", "HA", 4.46, 0.49),
	row("THR", "CA", 62.20, 2.59), row("THR", "CB", 69.66, 1.62),
	row("THR", "C", 174.54, 1.76), row("THR", "N", 115.44, 4.70),
	row("THR", "HB", 4.17, 0.33), row("THR", "HG2", 1.14, 0.24),

	row("TRP", "H", 8.28, 0.80), row("TRP", "HA", 4.70, 0.53),
	row("TRP", "CA", 57.69, 2.53), row("TRP", "CB", 29.97, 1.98),
	row("TRP", "C", 176.20, 2.00), row("TRP", "N", 121.66, 4.15),
	row("TRP", "HB", 3.19, 0.35), row("TRP", "HD1", 7.14, 0.35),
	row("TRP", "HE1", 10.09, 0.67),

	row("TYR", "H", 8.32, 0.73), row("TYR", "HA", 4.63, 0.56),
	row("TYR", "CA", 58.13, 2.51), row("TYR", "CB", 39.26, 2.15),
	row("TYR", "C", 175.39, 2.00), row("TYR", "N", 120.48, 4.23),
	row("TYR", "HB", 2.91, 0.37),
	row("TYR", "HD", 6.93, 0.30), row("TYR", "HE", 6.70, 0.30),

	row("VAL", "H", 8.28, 0.67), row("VAL", "HA", 4.17, 0.58),
	row("VAL", "CA", 62.54, 2.87), row("VAL", "CB", 32.68, 1.81),
	row("VAL", "C", 175.66, 1.90), row("VAL", "N", 121.09, 4.47),
	row("VAL", "HB", 1.98, 0.32), row("VAL", "HG", 0.83, 0.27),
}
