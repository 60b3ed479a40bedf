package statusmap_test

import (
	"testing"

	"flowtrack/internal/core/domain/model/kernel"
	"flowtrack/internal/core/domain/model/statusmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMapping(t *testing.T, value string, area kernel.Area, sortOrder int, active bool) statusmap.StatusMapping {
	t.Helper()
	m, err := statusmap.NewStatusMapping(value, area, value, sortOrder, active)
	require.NoError(t, err)
	return m
}

func defaultMappings(t *testing.T) []statusmap.StatusMapping {
	t.Helper()
	return []statusmap.StatusMapping{
		mustMapping(t, "CRTD", kernel.AreaOrders, 1, true),
		mustMapping(t, "REL", kernel.AreaWarehouse, 2, true),
		mustMapping(t, "PCNF", kernel.AreaProduction, 8, true),
		mustMapping(t, "DLV", kernel.AreaLogistics, 10, true),
	}
}

func TestEffectiveStatus_MostAdvancedTokenWins(t *testing.T) {
	mappings := defaultMappings(t)

	// REL has sort order 2, PCNF has 8, PRT is unmapped.
	best, ok := statusmap.EffectiveStatus("REL PRT PCNF", mappings)
	require.True(t, ok)
	assert.Equal(t, "PCNF", best.StatusValue())
	assert.Equal(t, kernel.AreaProduction, best.Area())
}

func TestEffectiveStatus_TieBreaksOnEarliestToken(t *testing.T) {
	mappings := []statusmap.StatusMapping{
		mustMapping(t, "AAA", kernel.AreaWarehouse, 5, true),
		mustMapping(t, "BBB", kernel.AreaProduction, 5, true),
	}

	// Equal sort orders: a later token must not replace the current best.
	best, ok := statusmap.EffectiveStatus("AAA BBB", mappings)
	require.True(t, ok)
	assert.Equal(t, "AAA", best.StatusValue())

	best, ok = statusmap.EffectiveStatus("BBB AAA", mappings)
	require.True(t, ok)
	assert.Equal(t, "BBB", best.StatusValue())
}

func TestEffectiveStatus_MatchingIsCaseSensitiveAndExact(t *testing.T) {
	mappings := defaultMappings(t)

	_, ok := statusmap.EffectiveStatus("rel", mappings)
	assert.False(t, ok)

	_, ok = statusmap.EffectiveStatus("RELX", mappings)
	assert.False(t, ok)

	best, ok := statusmap.EffectiveStatus("REL", mappings)
	require.True(t, ok)
	assert.Equal(t, "REL", best.StatusValue())
}

func TestEffectiveStatus_IgnoresInactiveMappings(t *testing.T) {
	mappings := []statusmap.StatusMapping{
		mustMapping(t, "REL", kernel.AreaWarehouse, 2, true),
		mustMapping(t, "DLV", kernel.AreaLogistics, 10, false),
	}

	best, ok := statusmap.EffectiveStatus("REL DLV", mappings)
	require.True(t, ok)
	assert.Equal(t, "REL", best.StatusValue())
}

func TestEffectiveStatus_ArbitraryWhitespace(t *testing.T) {
	mappings := defaultMappings(t)

	best, ok := statusmap.EffectiveStatus("  REL\t\tPCNF \n DLV  ", mappings)
	require.True(t, ok)
	assert.Equal(t, "DLV", best.StatusValue())
}

func TestEffectiveStatus_NoMatch(t *testing.T) {
	mappings := defaultMappings(t)

	_, ok := statusmap.EffectiveStatus("", mappings)
	assert.False(t, ok)

	_, ok = statusmap.EffectiveStatus("PRT SETC", mappings)
	assert.False(t, ok)

	_, ok = statusmap.EffectiveStatus("REL", nil)
	assert.False(t, ok)
}

func TestEffectiveStatus_DuplicateActiveValueFirstRowWins(t *testing.T) {
	mappings := []statusmap.StatusMapping{
		mustMapping(t, "REL", kernel.AreaWarehouse, 2, true),
		mustMapping(t, "REL", kernel.AreaProduction, 9, true),
	}

	best, ok := statusmap.EffectiveStatus("REL", mappings)
	require.True(t, ok)
	assert.Equal(t, kernel.AreaWarehouse, best.Area())
}

func TestEffectiveStatus_IsDeterministic(t *testing.T) {
	mappings := defaultMappings(t)

	first, ok := statusmap.EffectiveStatus("CRTD REL PCNF", mappings)
	require.True(t, ok)

	for range 10 {
		again, againOK := statusmap.EffectiveStatus("CRTD REL PCNF", mappings)
		require.True(t, againOK)
		assert.Equal(t, first, again)
	}
}

func TestDeriveArea(t *testing.T) {
	mappings := defaultMappings(t)

	assert.Equal(t, kernel.AreaProduction, statusmap.DeriveArea("REL PRT PCNF", mappings))
	assert.Equal(t, kernel.AreaLogistics, statusmap.DeriveArea("DLV", mappings))

	// No recognized token falls back to the entry stage.
	assert.Equal(t, kernel.AreaOrders, statusmap.DeriveArea("", mappings))
	assert.Equal(t, kernel.AreaOrders, statusmap.DeriveArea("PRT", mappings))
}

func TestNewStatusMapping_Validation(t *testing.T) {
	_, err := statusmap.NewStatusMapping("", kernel.AreaWarehouse, "", 1, true)
	require.Error(t, err)

	_, err = statusmap.NewStatusMapping("REL", kernel.UnknownArea, "", 1, true)
	require.Error(t, err)

	var zero statusmap.StatusMapping
	assert.ErrorIs(t, zero.Validate(), statusmap.ErrStatusMappingIsNotConstructed)
}
