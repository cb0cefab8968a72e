package sequence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmrkit/nmrkit/internal/star"
)

const coordCIF = `data_model
loop_
_struct_asym.id
_struct_asym.entity_id
A 1
B 1

loop_
_entity_poly_seq.entity_id
_entity_poly_seq.num
_entity_poly_seq.mon_id
1 1 MET
1 2 ALA
1 3 GLY
`

const coordAtomSite = `data_model
loop_
_atom_site.group_PDB
_atom_site.label_asym_id
_atom_site.label_seq_id
_atom_site.label_comp_id
ATOM A 1 MET
ATOM A 1 MET
ATOM A 2 ALA
HETATM A . HOH
`

func parseCIF(t *testing.T, text string) *star.Entry {
	t.Helper()
	entry, err := star.Parse(strings.NewReader(text))
	require.NoError(t, err)
	return entry
}

func TestFromCoordinatesEntityPolySeq(t *testing.T) {
	p := FromCoordinates(parseCIF(t, coordCIF))
	require.NotNil(t, p)
	require.Len(t, p.Chains, 2)

	// Both asym chains share entity 1 and therefore the sequence.
	for _, id := range []string{"A", "B"} {
		ch := p.Chain(id)
		require.NotNil(t, ch, "chain %s", id)
		assert.Equal(t, "ALA", ch.CompAt(2))
		assert.Len(t, ch.Residues, 3)
	}
}

func TestFromCoordinatesAtomSiteFallback(t *testing.T) {
	p := FromCoordinates(parseCIF(t, coordAtomSite))
	require.NotNil(t, p)
	require.Len(t, p.Chains, 1)

	ch := p.Chain("A")
	require.NotNil(t, ch)
	// Duplicate atoms collapse to one residue; waters carry no seq_id.
	assert.Len(t, ch.Residues, 2)
	assert.Equal(t, "MET", ch.CompAt(1))
}

func TestFromCoordinatesEmpty(t *testing.T) {
	assert.Nil(t, FromCoordinates(parseCIF(t, "data_empty\n_entry.id empty\n")))
}
