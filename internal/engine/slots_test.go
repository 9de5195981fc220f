package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hatchforge/brood-api/internal/entities"
	"github.com/hatchforge/brood-api/internal/errors"
)

func TestResolveSlots_NoItems(t *testing.T) {
	scenarios, err := resolveSlots(entities.HeldItemNone, entities.HeldItemNone)
	require.NoError(t, err)
	require.Len(t, scenarios, 1)

	sc := scenarios[0]
	assert.Equal(t, 1.0, sc.weight)
	assert.Equal(t, 3, sc.inheritedCount)
	assert.False(t, sc.hasForced())
}

func TestResolveSlots_KindredBand(t *testing.T) {
	tests := []struct {
		name         string
		itemA, itemB entities.HeldItem
	}{
		{"on parent A", entities.HeldItemKindredBand, entities.HeldItemNone},
		{"on parent B", entities.HeldItemNone, entities.HeldItemKindredBand},
		{"on both parents (not additive)", entities.HeldItemKindredBand, entities.HeldItemKindredBand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenarios, err := resolveSlots(tt.itemA, tt.itemB)
			require.NoError(t, err)
			require.Len(t, scenarios, 1)
			assert.Equal(t, 5, scenarios[0].inheritedCount)
		})
	}
}

func TestResolveSlots_SingleSigil(t *testing.T) {
	scenarios, err := resolveSlots(entities.HeldItemSigilAgility, entities.HeldItemNone)
	require.NoError(t, err)
	require.Len(t, scenarios, 1)

	sc := scenarios[0]
	assert.Equal(t, 1.0, sc.weight)
	assert.Equal(t, 3, sc.inheritedCount)
	assert.Equal(t, entities.AxisAgility, sc.forcedAxis)
	assert.Equal(t, parentA, sc.forcedBy)
}

func TestResolveSlots_SigilComposesWithKindredBand(t *testing.T) {
	scenarios, err := resolveSlots(entities.HeldItemSigilPower, entities.HeldItemKindredBand)
	require.NoError(t, err)
	require.Len(t, scenarios, 1)

	sc := scenarios[0]
	assert.Equal(t, 5, sc.inheritedCount)
	assert.Equal(t, entities.AxisPower, sc.forcedAxis)
	assert.Equal(t, parentA, sc.forcedBy)
}

func TestResolveSlots_BothSigils(t *testing.T) {
	scenarios, err := resolveSlots(entities.HeldItemSigilPower, entities.HeldItemSigilGuard)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	assert.Equal(t, 0.5, scenarios[0].weight)
	assert.Equal(t, entities.AxisPower, scenarios[0].forcedAxis)
	assert.Equal(t, parentA, scenarios[0].forcedBy)

	assert.Equal(t, 0.5, scenarios[1].weight)
	assert.Equal(t, entities.AxisGuard, scenarios[1].forcedAxis)
	assert.Equal(t, parentB, scenarios[1].forcedBy)
}

func TestResolveSlots_BothSigilsSameAxis(t *testing.T) {
	scenarios, err := resolveSlots(entities.HeldItemSigilWard, entities.HeldItemSigilWard)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	// Same forced axis, different owner, half weight each.
	assert.Equal(t, entities.AxisWard, scenarios[0].forcedAxis)
	assert.Equal(t, entities.AxisWard, scenarios[1].forcedAxis)
	assert.NotEqual(t, scenarios[0].forcedBy, scenarios[1].forcedBy)
}

func TestResolveSlots_UnknownItem(t *testing.T) {
	_, err := resolveSlots("ember_charm", entities.HeldItemNone)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestForcedAxisLabels(t *testing.T) {
	labels := forcedAxisLabels(entities.HeldItemSigilAgility, entities.HeldItemSigilVitality)
	assert.Equal(t, []string{"Vitality", "Agility"}, labels)

	assert.Empty(t, forcedAxisLabels(entities.HeldItemNone, entities.HeldItemKindredBand))
}
