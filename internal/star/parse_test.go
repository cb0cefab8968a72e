package star

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNEF = `data_example

save_nef_molecular_system
   _nef_molecular_system.sf_category     nef_molecular_system
   _nef_molecular_system.sf_framecode    nef_molecular_system

   loop_
      _nef_sequence.index
      _nef_sequence.chain_code
      _nef_sequence.sequence_code
      _nef_sequence.residue_name

      1 A 1 MET
      2 A 2 LYS
      3 A 3 THR
   stop_

save_

save_cs_list_1
   _nef_chemical_shift_list.sf_category    nef_chemical_shift_list
   _nef_chemical_shift_list.sf_framecode   cs_list_1

   loop_
      _nef_chemical_shift.chain_code
      _nef_chemical_shift.sequence_code
      _nef_chemical_shift.residue_name
      _nef_chemical_shift.atom_name
      _nef_chemical_shift.value

      A 1 MET H  8.25
      A 2 LYS CA 56.82
   stop_

save_
`

func TestParseSaveframesAndLoops(t *testing.T) {
	entry, err := Parse(strings.NewReader(sampleNEF))
	require.NoError(t, err)

	assert.Equal(t, "example", entry.Name)
	require.Len(t, entry.Saveframes, 2)

	sys := entry.Saveframes[0]
	assert.Equal(t, "nef_molecular_system", sys.Name)
	assert.Equal(t, "nef_molecular_system", sys.Category())
	assert.Equal(t, "_nef_molecular_system", sys.TagPrefix())

	require.Len(t, sys.Loops, 1)
	lp := sys.Loops[0]
	assert.Equal(t, "_nef_sequence", lp.Category())
	assert.Equal(t, []string{"index", "chain_code", "sequence_code", "residue_name"}, lp.LocalColumns())
	require.Len(t, lp.Rows, 3)
	assert.Equal(t, []string{"2", "A", "2", "LYS"}, lp.Rows[1])

	cs := entry.Saveframes[1]
	assert.Equal(t, "cs_list_1", cs.Name)
	fc, ok := cs.Tag("sf_framecode")
	require.True(t, ok)
	assert.Equal(t, "cs_list_1", fc)
}

func TestParseQuotedValues(t *testing.T) {
	input := "data_q\n" +
		"save_info\n" +
		"   _entry.sf_category   entry_information\n" +
		"   _entry.title         'T4 lysozyme mutant'\n" +
		"   _entry.detail        \"it's quoted\"\n" +
		"save_\n"
	entry, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	sf := entry.Saveframes[0]
	title, _ := sf.Tag("title")
	assert.Equal(t, "T4 lysozyme mutant", title)
	detail, _ := sf.Tag("detail")
	assert.Equal(t, "it's quoted", detail)
}

func TestParseTextField(t *testing.T) {
	input := "data_t\n" +
		"save_s\n" +
		"   _x.sf_category cat\n" +
		"   _x.script\n" +
		";\nline one\nline two\n;\n" +
		"save_\n"
	entry, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	v, ok := entry.Saveframes[0].Tag("script")
	require.True(t, ok)
	assert.Equal(t, "line one\nline two", v)
}

func TestParseBlockLevelLoop(t *testing.T) {
	// mmCIF style: loops at the data-block level, no stop_ keyword needed
	// before the next tag.
	input := "data_1abc\n" +
		"_entry.id 1ABC\n" +
		"loop_\n" +
		"_entity_poly_seq.entity_id\n" +
		"_entity_poly_seq.num\n" +
		"_entity_poly_seq.mon_id\n" +
		"1 1 MET\n" +
		"1 2 LYS\n" +
		"_exptl.method 'SOLUTION NMR'\n"
	entry, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, entry.Loops, 1)
	assert.Equal(t, "_entity_poly_seq", entry.Loops[0].Category())
	assert.Len(t, entry.Loops[0].Rows, 2)
	assert.Equal(t, Tag{Name: "_exptl.method", Value: "SOLUTION NMR"}, entry.Tags[1])
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no_data_block", "_tag value\n"},
		{"unterminated_save", "data_x\nsave_a\n_a.sf_category c\n"},
		{"ragged_loop_row", "data_x\nsave_a\nloop_\n_t.a\n_t.b\n1 2 3\nstop_\nsave_\n"},
		{"tag_without_value", "data_x\nsave_a\n_a.orphan\nsave_\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestIsNull(t *testing.T) {
	assert.True(t, IsNull("."))
	assert.True(t, IsNull("?"))
	assert.True(t, IsNull(""))
	assert.False(t, IsNull("0"))
}

func TestRoundTrip(t *testing.T) {
	entry, err := Parse(strings.NewReader(sampleNEF))
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, Write(&b, entry))

	again, err := Parse(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, entry, again)
}

func TestRoundTripQuoting(t *testing.T) {
	entry := &Entry{
		Name: "q",
		Saveframes: []*Saveframe{{
			Name: "s",
			Tags: []Tag{
				{Name: "_x.sf_category", Value: "cat"},
				{Name: "_x.a", Value: "has space"},
				{Name: "_x.b", Value: "it's ok"},
				{Name: "_x.c", Value: "multi\nline"},
				{Name: "_x.d", Value: "loop_"},
				{Name: "_x.e", Value: ""},
			},
		}},
	}
	var b strings.Builder
	require.NoError(t, Write(&b, entry))

	again, err := Parse(strings.NewReader(b.String()))
	require.NoError(t, err)
	sf := again.Saveframes[0]
	for _, want := range []struct{ tag, val string }{
		{"a", "has space"}, {"b", "it's ok"}, {"c", "multi\nline"}, {"d", "loop_"}, {"e", "."},
	} {
		got, ok := sf.Tag(want.tag)
		require.True(t, ok, want.tag)
		assert.Equal(t, want.val, got, want.tag)
	}
}
