// Package engine drives one consistency-check run over a parsed NEF or
// NMR-STAR entry.
//
// A run is single-threaded and synchronous: the inspector builds the
// content inventory, the sequence stages extract and cross-check polymer
// sequences, then the per-saveframe validators check loops, nomenclature,
// chemical shifts, list relations, and spectral peaks in source order.
// Findings accumulate on the report and never abort the run; unexpected
// panics are converted to internal_error findings so every run emits a
// report.
package engine
