package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statCSV = `comp_id,atom_id,avg,std,min,max,count
XYZ,C1,101.5,2.3,95.0,108.0,42
XYZ,H1,7.25,0.4,6.1,8.3,42
`

func TestStatLoadAndCount(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "stats.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(statCSV), 0o644))
	dbPath := filepath.Join(dir, "stats.db")

	out, err := execute(t, "--stat-db", dbPath, "stat", "load", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 statistics row(s)")

	out, err = execute(t, "--stat-db", dbPath, "stat", "count")
	require.NoError(t, err)
	assert.Contains(t, out, "2 statistics row(s)")
}

func TestStatLoadRequiresDB(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "stats.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(statCSV), 0o644))

	_, err := execute(t, "stat", "load", csvPath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestStatLoadRejectsMalformedRow(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "stats.csv")
	bad := "XYZ,C1,101.5,abc,95.0,108.0,42\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(bad), 0o644))
	dbPath := filepath.Join(t.TempDir(), "stats.db")

	_, err := execute(t, "--stat-db", dbPath, "stat", "load", csvPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad std")
}
