package star

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// The writer's layout is part of the deposition surface; downstream
// tooling diffs emitted files textually.
func TestWriteSnapshot(t *testing.T) {
	entry := &Entry{
		Name: "golden",
		Saveframes: []*Saveframe{{
			Name: "cs_list_1",
			Tags: []Tag{
				{Name: "_nef_chemical_shift_list.sf_category", Value: "nef_chemical_shift_list"},
				{Name: "_nef_chemical_shift_list.sf_framecode", Value: "cs_list_1"},
			},
			Loops: []*Loop{{
				Columns: []string{
					"_nef_chemical_shift.chain_code",
					"_nef_chemical_shift.value",
				},
				Rows: [][]string{
					{"A", "4.32"},
					{"B", "7.1 ppm"},
				},
			}},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, entry))

	g := goldie.New(t)
	g.Assert(t, "write_entry", buf.Bytes())
}

func TestWriteSnapshotReparses(t *testing.T) {
	data, err := Parse(strings.NewReader(goldenText(t)))
	require.NoError(t, err)
	require.Len(t, data.Saveframes, 1)
	require.Equal(t, "7.1 ppm", data.Saveframes[0].Loops[0].Rows[1][1])
}

func goldenText(t *testing.T) string {
	t.Helper()
	entry := &Entry{
		Name: "golden",
		Saveframes: []*Saveframe{{
			Name: "cs_list_1",
			Loops: []*Loop{{
				Columns: []string{
					"_nef_chemical_shift.chain_code",
					"_nef_chemical_shift.value",
				},
				Rows: [][]string{
					{"A", "4.32"},
					{"B", "7.1 ppm"},
				},
			}},
		}},
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, entry))
	return buf.String()
}
