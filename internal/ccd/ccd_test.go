package ccd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupStandardResidue(t *testing.T) {
	r := NewResolver()

	ala, ok := r.Lookup("ALA")
	require.True(t, ok)
	assert.Equal(t, AminoAcid, ala.Type)
	assert.True(t, ala.HasAtom("CB"))
	assert.True(t, ala.HasAtom("HB1"))
	assert.False(t, ala.HasAtom("CG"))
	// Leaving atoms are recognized.
	assert.True(t, ala.HasAtom("OXT"))

	// Case-insensitive.
	ala2, ok := r.Lookup("ala")
	require.True(t, ok)
	assert.Same(t, ala, ala2)
}

func TestLookupUnknownResidue(t *testing.T) {
	r := NewResolver()
	_, ok := r.Lookup("XYZ")
	assert.False(t, ok)
	// Negative results are cached without breaking later lookups.
	_, ok = r.Lookup("XYZ")
	assert.False(t, ok)
	_, ok = r.Lookup("GLY")
	assert.True(t, ok)
}

func TestIsStandardAndOneLetter(t *testing.T) {
	r := NewResolver()
	assert.True(t, r.IsStandard("LYS"))
	assert.True(t, r.IsStandard("DA"))
	assert.False(t, r.IsStandard("MSE"))

	assert.Equal(t, byte('K'), r.OneLetterCode("LYS"))
	assert.Equal(t, byte('G'), r.OneLetterCode("GLY"))
	assert.Equal(t, byte('X'), r.OneLetterCode("MSE"))
}

func TestNucleotides(t *testing.T) {
	r := NewResolver()

	da, ok := r.Lookup("DA")
	require.True(t, ok)
	assert.Equal(t, DNA, da.Type)
	assert.True(t, da.HasAtom("H2''"))
	assert.False(t, da.HasAtom("O2'"))

	a, ok := r.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, RNA, a.Type)
	assert.True(t, a.HasAtom("O2'"))
	assert.True(t, a.HasAtom("HO2'"))
}

func TestExpandPseudoAtom(t *testing.T) {
	r := NewResolver()
	lys, _ := r.Lookup("LYS")
	leu, _ := r.Lookup("LEU")
	val, _ := r.Lookup("VAL")
	ala, _ := r.Lookup("ALA")

	tests := []struct {
		comp *Component
		atom string
		want []string
	}{
		{lys, "HB2", []string{"HB2"}},
		{lys, "HB%", []string{"HB2", "HB3"}},
		{lys, "HB*", []string{"HB2", "HB3"}},
		{lys, "QB", []string{"HB2", "HB3"}},
		{lys, "HBx", []string{"HB2"}},
		{lys, "HBy", []string{"HB3"}},
		{ala, "HB%", []string{"HB1", "HB2", "HB3"}},
		{ala, "MB", []string{"HB1", "HB2", "HB3"}},
		{leu, "HDx%", []string{"HD11", "HD12", "HD13"}},
		{leu, "HDy%", []string{"HD21", "HD22", "HD23"}},
		{val, "CGx", []string{"CG1"}},
		{val, "CGy", []string{"CG2"}},
		{lys, "HQ%", nil},
		{lys, "CD2", nil},
	}
	for _, tt := range tests {
		t.Run(tt.comp.ID+"/"+tt.atom, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPseudoAtom(tt.comp, tt.atom))
		})
	}
}

func TestGeminalAndAromaticTables(t *testing.T) {
	arg := GeminalAtoms("ARG")
	require.NotNil(t, arg)
	for _, a := range []string{"HB2", "HB3", "HG2", "HG3", "HD2", "HD3", "HH11", "HH12", "HH21", "HH22"} {
		assert.True(t, arg[a], a)
	}
	assert.False(t, arg["CA"])

	phe := AromaticAtoms("PHE")
	require.NotNil(t, phe)
	for _, a := range []string{"HD1", "HD2", "HE1", "HE2"} {
		assert.True(t, phe[a], a)
	}

	assert.Nil(t, AromaticAtoms("ALA"))
	assert.Nil(t, GeminalAtoms("XYZ"))
}
