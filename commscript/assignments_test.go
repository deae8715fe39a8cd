package commscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroupAssignments(t *testing.T) {
	text := `
MAT = AFFE_MATERIAU(
    MAILLAGE=MAIL,
    AFFE=(
        _F(GROUP_MA=('VOLUME1', 'VOLUME2'), MATER=(ACIER,)),
        _F(GROUP_MA=('SOCLE',), MATER=(BETON,)),
    ),
)
`
	mapping, err := ParseGroupAssignments(text)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"VOLUME1": "ACIER",
		"VOLUME2": "ACIER",
		"SOCLE":   "BETON",
	}, mapping)
}

func TestParseGroupAssignmentsLastWriteWins(t *testing.T) {
	text := `
MAT = AFFE_MATERIAU(AFFE=(
    _F(GROUP_MA=('G1',), MATER=(ACIER,)),
    _F(GROUP_MA=('G1',), MATER=(BETON,)),
))
`
	mapping, err := ParseGroupAssignments(text)
	require.NoError(t, err)
	assert.Equal(t, "BETON", mapping["G1"])
}

func TestParseGroupAssignmentsSkipsIncompleteBlocks(t *testing.T) {
	text := `
MAT = AFFE_MATERIAU(AFFE=(
    _F(TOUT='OUI'),
    _F(GROUP_MA=('V1',), MATER=(ACIER,)),
))
`
	mapping, err := ParseGroupAssignments(text)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"V1": "ACIER"}, mapping)
}

func TestParseGroupAssignmentsMissingStatement(t *testing.T) {
	_, err := ParseGroupAssignments("DEBUT()")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseGroupAssignmentsEmpty(t *testing.T) {
	_, err := ParseGroupAssignments("MAT = AFFE_MATERIAU(AFFE=(_F(TOUT='OUI'),))")
	assert.ErrorIs(t, err, ErrNoAssignments)
}
