package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeParams(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestLoadParams(t *testing.T) {
	path := writeParams(t, `
coordinate_file_path: model.cif
chem_shift_file_path_list:
  - cs1.str
  - cs2.str
restraint_file_path_list:
  - mr1.str
nonblk_anomalous_cs: true
check_mandatory_tag: true
entry_id: D_1000001
insert_entry_id_to_loops: true
`)

	p, err := LoadParams(path)
	require.NoError(t, err)
	assert.Equal(t, "model.cif", p.CoordinateFilePath)
	assert.Equal(t, []string{"cs1.str", "cs2.str"}, p.ChemShiftFilePathList)
	assert.Equal(t, []string{"mr1.str"}, p.RestraintFilePathList)
	assert.True(t, p.NonblkAnomalousCS)
	assert.False(t, p.NonblkBadNterm)
	assert.True(t, p.InsertEntryIDToLoops)
}

func TestLoadParamsEmptyPath(t *testing.T) {
	p, err := LoadParams("")
	require.NoError(t, err)
	assert.Equal(t, &Params{}, p)
}

func TestLoadParamsUnknownKeyRejected(t *testing.T) {
	path := writeParams(t, "nonblk_anomalus_cs: true\n")

	_, err := LoadParams(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonblk_anomalus_cs")
}

func TestEngineOptionsMapping(t *testing.T) {
	p := &Params{NonblkAnomalousCS: true, NonblkBadNterm: true}
	opts := p.EngineOptions()
	assert.True(t, opts.NonblkAnomalousCS)
	assert.True(t, opts.NonblkBadNterm)
	assert.False(t, opts.CheckMandatoryTag)
}

func TestResolvedEntryID(t *testing.T) {
	assert.Equal(t, "D_1", (&Params{EntryID: "D_1", BmrbID: "bmr2"}).ResolvedEntryID())
	assert.Equal(t, "bmr2", (&Params{BmrbID: "bmr2"}).ResolvedEntryID())
	assert.Equal(t, "", (&Params{}).ResolvedEntryID())
}
