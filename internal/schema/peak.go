package schema

import "strings"

// ExpandPeakSchema instantiates the spectral-peak item templates for a
// concrete dimension count. Templated names (containing "%s") expand once
// per dimension 1..numDim; the same templates instantiated for dimensions
// numDim+1 up to SpectralPeakLimDim-1 are returned as disallowed tags.
//
// numDim must already have been checked against [1, SpectralPeakLimDim).
func (p *Profile) ExpandPeakSchema(numDim int) (keys, datas []Item, disallowed []string) {
	d := p.defs[SpectralPeak]
	keys = expandItems(d.KeyItems, numDim)
	datas = expandItems(d.DataItems, numDim)

	for _, it := range append(append([]Item{}, d.KeyItems...), d.DataItems...) {
		if !strings.Contains(it.Name, "%s") {
			continue
		}
		for dim := numDim + 1; dim < SpectralPeakLimDim; dim++ {
			disallowed = append(disallowed, expand(it.Name, dim))
		}
	}
	return keys, datas, disallowed
}

func expandItems(items []Item, numDim int) []Item {
	out := make([]Item, 0, len(items)+numDim*4)
	for _, it := range items {
		if !strings.Contains(it.Name, "%s") {
			out = append(out, it)
			continue
		}
		for dim := 1; dim <= numDim; dim++ {
			inst := it
			inst.Name = expand(it.Name, dim)
			out = append(out, inst)
		}
	}
	return out
}

// DimTags names the per-dimension fields of the spectrum dimension loop in
// one format's vocabulary, so the peak validator can read either format
// through one accessor set.
type DimTags struct {
	DimLoopCategory      string
	TransferLoopCategory string

	DimID                 string
	AxisUnit              string
	SpectrometerFrequency string
	SpectralWidth         string
	ValueFirstPoint       string
	AbsolutePeakPositions string
	Acquisition           string

	TransferDim1 string
	TransferDim2 string
}

// PeakDimTags returns the dimension-loop vocabulary for the profile's format.
func (p *Profile) PeakDimTags() DimTags {
	if p.format == NEF {
		return DimTags{
			DimLoopCategory:       "_nef_spectrum_dimension",
			TransferLoopCategory:  "_nef_spectrum_dimension_transfer",
			DimID:                 "dimension_id",
			AxisUnit:              "axis_unit",
			SpectrometerFrequency: "spectrometer_frequency",
			SpectralWidth:         "spectral_width",
			ValueFirstPoint:       "value_first_point",
			AbsolutePeakPositions: "absolute_peak_positions",
			Acquisition:           "is_acquisition",
			TransferDim1:          "dimension_1",
			TransferDim2:          "dimension_2",
		}
	}
	return DimTags{
		DimLoopCategory:       "_Spectral_dim",
		TransferLoopCategory:  "_Spectral_dim_transfer",
		DimID:                 "ID",
		AxisUnit:              "Sweep_width_units",
		SpectrometerFrequency: "Spectrometer_frequency",
		SpectralWidth:         "Sweep_width",
		ValueFirstPoint:       "Value_first_point",
		AbsolutePeakPositions: "Absolute_peak_positions",
		Acquisition:           "Acquisition",
		TransferDim1:          "Spectral_dim_ID_1",
		TransferDim2:          "Spectral_dim_ID_2",
	}
}

// PositionTag returns the per-dimension peak position column name.
func (p *Profile) PositionTag(dim int) string {
	if p.format == NEF {
		return expand("position_%s", dim)
	}
	return expand("Position_%s", dim)
}
