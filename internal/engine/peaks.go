package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nmrkit/nmrkit/internal/report"
	"github.com/nmrkit/nmrkit/internal/schema"
	"github.com/nmrkit/nmrkit/internal/star"
)

// dimWindow is the admissible position interval of one spectral dimension,
// in ppm.
type dimWindow struct {
	min, max float64
	valid    bool
}

// checkSpectralPeaks verifies dimension-count coherence, computes the
// spectral window of each dimension, and checks every peak position
// against its window.
func (e *Engine) checkSpectralPeaks(sf *star.Saveframe, numDim int, file string) {
	d := e.profile.Def(schema.SpectralPeak)
	tags := e.profile.PeakDimTags()

	dimLoops := sf.LoopsByCategory(tags.DimLoopCategory)
	var windows []dimWindow
	for _, lp := range dimLoops {
		if len(lp.Rows) != numDim {
			e.rep.Error(report.ErrMissingData, report.Finding{
				Description: fmt.Sprintf("%s declares %d dimensions but %s has %d rows",
					sf.Name, numDim, tags.DimLoopCategory, len(lp.Rows)),
				File:      file,
				Saveframe: sf.Name,
				Loop:      lp.Category(),
			})
		}
		// The first dimension loop defines the windows; later loops are
		// still checked for row-count coherence above.
		if windows == nil {
			windows = e.dimensionWindows(lp, tags, numDim)
		}
	}

	if windows != nil {
		for _, lp := range sf.LoopsByCategory(d.LoopCategory) {
			e.checkPeakPositions(sf, lp, windows, file)
		}
	}
	for _, lp := range sf.LoopsByCategory(tags.TransferLoopCategory) {
		e.checkTransferDims(sf, lp, tags, numDim, file)
	}
}

// dimensionWindows computes [min_point, max_point] per dimension from the
// dimension loop. Hz quantities are converted to ppm via the spectrometer
// frequency. Acquisition dimensions and non-absolute positions keep the
// bare sweep interval; the rest are widened by one spectral width on each
// side to admit folded peaks.
func (e *Engine) dimensionWindows(lp *star.Loop, tags schema.DimTags, numDim int) []dimWindow {
	idCol := lp.ColumnIndex(tags.DimID)
	unitCol := lp.ColumnIndex(tags.AxisUnit)
	freqCol := lp.ColumnIndex(tags.SpectrometerFrequency)
	widthCol := lp.ColumnIndex(tags.SpectralWidth)
	firstCol := lp.ColumnIndex(tags.ValueFirstPoint)
	absCol := lp.ColumnIndex(tags.AbsolutePeakPositions)
	acqCol := lp.ColumnIndex(tags.Acquisition)

	windows := make([]dimWindow, numDim)
	for i, row := range lp.Rows {
		dim := i + 1
		if idCol >= 0 {
			if n, err := strconv.Atoi(cell(row, idCol)); err == nil {
				dim = n
			}
		}
		if dim < 1 || dim > numDim {
			continue
		}

		width, werr := strconv.ParseFloat(cell(row, widthCol), 64)
		first, ferr := strconv.ParseFloat(cell(row, firstCol), 64)
		if werr != nil || ferr != nil {
			continue
		}
		if strings.EqualFold(cell(row, unitCol), "Hz") {
			freq, err := strconv.ParseFloat(cell(row, freqCol), 64)
			if err != nil || freq == 0 {
				continue
			}
			width /= freq
			first /= freq
		}
		last := first - width

		acquisition := false
		if acqCol >= 0 {
			if b, err := schema.ParseBool(cell(row, acqCol)); err == nil {
				acquisition = b
			}
		}
		absolute := true
		if absCol >= 0 {
			if b, err := schema.ParseBool(cell(row, absCol)); err == nil {
				absolute = b
			}
		}

		w := dimWindow{min: last, max: first, valid: true}
		if !acquisition && absolute {
			w.min -= width
			w.max += width
		}
		windows[dim-1] = w
	}
	return windows
}

// checkPeakPositions verifies each position_k against dimension k's window.
func (e *Engine) checkPeakPositions(sf *star.Saveframe, lp *star.Loop, windows []dimWindow, file string) {
	cols := make([]int, len(windows))
	for i := range windows {
		cols[i] = lp.ColumnIndex(e.profile.PositionTag(i + 1))
	}
	for r, row := range lp.Rows {
		for i, w := range windows {
			if !w.valid || cols[i] < 0 {
				continue
			}
			v := cell(row, cols[i])
			if v == "" {
				continue
			}
			pos, err := strconv.ParseFloat(v, 64)
			if err != nil {
				continue
			}
			if pos < w.min || pos > w.max {
				e.rep.Error(report.ErrAnomalousData, report.Finding{
					Description: fmt.Sprintf("peak position %s of dimension %d is outside the spectral window [%.4g, %.4g]",
						v, i+1, w.min, w.max),
					File:      file,
					Saveframe: sf.Name,
					Loop:      lp.Category(),
					Row:       r + 1,
					Value:     v,
				})
			}
		}
	}
}

// checkTransferDims verifies the dimension indices of the transfer loop.
func (e *Engine) checkTransferDims(sf *star.Saveframe, lp *star.Loop, tags schema.DimTags, numDim int, file string) {
	for _, name := range []string{tags.TransferDim1, tags.TransferDim2} {
		ci := lp.ColumnIndex(name)
		if ci < 0 {
			continue
		}
		for r, row := range lp.Rows {
			v := cell(row, ci)
			if v == "" {
				continue
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > numDim {
				e.rep.Error(report.ErrInvalidData, report.Finding{
					Description: fmt.Sprintf("%s %s is not a dimension in [1, %d]", name, v, numDim),
					File:        file,
					Saveframe:   sf.Name,
					Loop:        lp.Category(),
					Row:         r + 1,
					Value:       v,
				})
			}
		}
	}
}
