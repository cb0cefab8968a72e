package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNEF2STARDeposit(t *testing.T) {
	input := writeFixture(t, "test.nef", unifiedNEF)
	output := filepath.Join(t.TempDir(), "test.str")

	_, err := execute(t, "nmr-nef2str-deposit", input, output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "_Assigned_chem_shift_list.Sf_category")
	assert.Contains(t, text, "_Atom_chem_shift.Val")
	assert.Contains(t, text, "4.32")
	assert.NotContains(t, text, "_nef_chemical_shift")
}

func TestNEF2STARDepositStampsEntryID(t *testing.T) {
	input := writeFixture(t, "test.nef", unifiedNEF)
	output := filepath.Join(t.TempDir(), "test.str")
	params := writeFixture(t, "params.yaml", "entry_id: D_1000001\ninsert_entry_id_to_loops: true\n")

	_, err := execute(t, "nmr-nef2str-deposit", input, output, "--params", params)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "data_D_1000001")
	assert.Contains(t, text, ".Entry_ID")
	assert.Contains(t, text, "D_1000001")
}

func TestSTAR2NEFRelease(t *testing.T) {
	// Round trip: deposit first, then release back to NEF.
	input := writeFixture(t, "test.nef", unifiedNEF)
	mid := filepath.Join(t.TempDir(), "test.str")
	output := filepath.Join(t.TempDir(), "back.nef")

	_, err := execute(t, "nmr-nef2str-deposit", input, mid)
	require.NoError(t, err)
	_, err = execute(t, "nmr-str2nef-release", mid, output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "_nef_chemical_shift.value")
	assert.Contains(t, text, "4.32")
}

func TestSTAR2CIFDeposit(t *testing.T) {
	input := writeFixture(t, "cs.str", shiftsOnlySTAR)
	output := filepath.Join(t.TempDir(), "cs.cif")
	params := writeFixture(t, "params.yaml", "entry_id: 1abc\n")

	_, err := execute(t, "nmr-str2cif-deposit", input, output, "--params", params)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "data_1abc")
	assert.Contains(t, text, "_entry.id")
	// Flattened: the loop survives, the saveframe does not.
	assert.Contains(t, text, "_Atom_chem_shift.Val")
	assert.NotContains(t, text, "save_assigned_chem_shift_list_1")
}

func TestSTAR2CIFAnnotateKeepsSaveframes(t *testing.T) {
	input := writeFixture(t, "cs.str", shiftsOnlySTAR)
	output := filepath.Join(t.TempDir(), "cs_annotated.str")
	params := writeFixture(t, "params.yaml", "entry_id: 1abc\ninsert_entry_id_to_loops: true\n")

	_, err := execute(t, "nmr-str2cif-annotate", input, output, "--params", params)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "save_assigned_chem_shift_list_1")
	assert.Contains(t, text, ".Entry_ID")
}

func TestMergeCommand(t *testing.T) {
	cs1 := writeFixture(t, "cs1.str", shiftsOnlySTAR)
	cs2 := writeFixture(t, "cs2.str", strings.Replace(shiftsOnlySTAR, "data_cs", "data_cs2", 1))
	output := filepath.Join(t.TempDir(), "merged.str")
	params := writeFixture(t, "params.yaml",
		"chem_shift_file_path_list:\n  - "+cs1+"\n  - "+cs2+"\nentry_id: merged_entry\n")

	_, err := execute(t, "nmr-cs-mr-merge", output, "--params", params)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "data_merged_entry")
	// Both lists survive with distinct serials.
	assert.Contains(t, text, "save_assigned_chemical_shifts_1")
	assert.Contains(t, text, "save_assigned_chemical_shifts_2")
}

func TestMergeRequiresShiftFiles(t *testing.T) {
	output := filepath.Join(t.TempDir(), "merged.str")

	_, err := execute(t, "nmr-cs-mr-merge", output)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "chem_shift_file_path_list")
}
