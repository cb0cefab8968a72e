package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusMonotonicity(t *testing.T) {
	r := New()
	assert.Equal(t, StatusOK, r.Status())

	r.Warningf(WarnMissingContent, "no spectral peak lists")
	assert.Equal(t, StatusWarning, r.Status())

	r.Errorf(ErrInvalidData, "value out of range")
	assert.Equal(t, StatusError, r.Status())

	// A later warning never downgrades ERROR.
	r.Warningf(WarnEnumFailure, "unexpected enum value")
	assert.Equal(t, StatusError, r.Status())
}

func TestFindingAccumulation(t *testing.T) {
	r := New()
	r.Error(ErrSequenceMismatch, Finding{Description: "chain A seq 5: ALA vs GLY", Saveframe: "cs_list_1", Row: 12})
	r.Error(ErrSequenceMismatch, Finding{Description: "chain A seq 9: VAL vs LEU"})

	got := r.Errors(ErrSequenceMismatch)
	require.Len(t, got, 2)
	assert.Equal(t, "cs_list_1", got[0].Saveframe)
	assert.Equal(t, 12, got[0].Row)
	assert.Equal(t, 2, r.ErrorCount())
	assert.Equal(t, 0, r.WarningCount())
}

func TestJSONShape(t *testing.T) {
	r := New()
	r.AddInputSource(InputSource{
		File: "entry.nef", Format: "nef", ContentType: "nmr-unified-data",
		Inventory: map[string]int{"chem_shift": 1, "poly_seq": 1},
	})
	r.Errorf(ErrInvalidData, "distance restraint 3: lower_limit 4.0 exceeds upper_limit 3.0")
	r.Warningf(WarnMissingContent, "no spectral peak lists")

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var doc struct {
		Information struct {
			Status       string `json:"status"`
			RunID        string `json:"run_id"`
			InputSources []struct {
				Format string `json:"format"`
			} `json:"input_sources"`
		} `json:"information"`
		Error   map[string]json.RawMessage `json:"error"`
		Warning map[string]json.RawMessage `json:"warning"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "ERROR", doc.Information.Status)
	assert.NotEmpty(t, doc.Information.RunID)
	require.Len(t, doc.Information.InputSources, 1)
	assert.Equal(t, "nef", doc.Information.InputSources[0].Format)

	// Every kind appears; empty kinds are null.
	assert.Len(t, doc.Error, 15)
	assert.Len(t, doc.Warning, 14)
	assert.Equal(t, "null", string(doc.Error["internal_error"]))
	assert.NotEqual(t, "null", string(doc.Error["invalid_data"]))
	assert.NotEqual(t, "null", string(doc.Warning["missing_content"]))
}

func TestEmptyReportIsOK(t *testing.T) {
	r := New()
	data, err := r.WriteJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status": "OK"`)
	assert.Equal(t, StatusOK, r.Status())
}
