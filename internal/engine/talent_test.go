package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hatchforge/brood-api/internal/errors"
)

func calcTalent(t *testing.T, input *TalentInheritanceInput) *TalentInheritanceOutput {
	t.Helper()
	out, err := New().CalculateTalentInheritance(context.Background(), input)
	require.NoError(t, err)
	return out
}

func outcomeSum(outcomes []TalentOutcome) float64 {
	sum := 0.0
	for _, o := range outcomes {
		sum += o.Probability
	}
	return sum
}

func TestCalculateTalentInheritance_RegularDonorTwoSlots(t *testing.T) {
	out := calcTalent(t, &TalentInheritanceInput{
		ParentA: ParentTalent{
			Carried:      "stone_hide",
			RegularSlots: []string{"stone_hide", "keen_eye"},
		},
		ParentB: ParentTalent{Carried: "torrent", RegularSlots: []string{"torrent"}},
	})

	assert.Equal(t, "A", out.DonorParent)
	assert.Equal(t, "stone_hide", out.TalentName)
	assert.False(t, out.IsHidden)
	assert.InDelta(t, 0.8, out.Probability, tolerance)

	require.Len(t, out.Outcomes, 2)
	assert.InDelta(t, 0.8, out.Outcomes[0].Probability, tolerance)
	assert.InDelta(t, 0.2, out.Outcomes[1].Probability, tolerance)
	assert.InDelta(t, 1.0, outcomeSum(out.Outcomes), tolerance)
}

func TestCalculateTalentInheritance_RegularDonorSecondarySlotCarried(t *testing.T) {
	out := calcTalent(t, &TalentInheritanceInput{
		ParentA: ParentTalent{
			Carried:      "keen_eye",
			RegularSlots: []string{"stone_hide", "keen_eye"},
		},
	})

	// Headline follows the donor's own talent, here the secondary slot.
	assert.Equal(t, "keen_eye", out.TalentName)
	assert.InDelta(t, 0.2, out.Probability, tolerance)
}

func TestCalculateTalentInheritance_RegularDonorSingleSlot(t *testing.T) {
	out := calcTalent(t, &TalentInheritanceInput{
		ParentA: ParentTalent{
			Carried:      "stone_hide",
			RegularSlots: []string{"stone_hide"},
		},
	})

	// Single regular slot takes the whole mass, not an 80% share.
	require.Len(t, out.Outcomes, 1)
	assert.InDelta(t, 1.0, out.Probability, tolerance)
}

func TestCalculateTalentInheritance_HiddenDonorTwoSlots(t *testing.T) {
	out := calcTalent(t, &TalentInheritanceInput{
		ParentA: ParentTalent{
			Carried:       "moon_veil",
			CarriedHidden: true,
			RegularSlots:  []string{"stone_hide", "keen_eye"},
		},
	})

	assert.Equal(t, "moon_veil", out.TalentName)
	assert.True(t, out.IsHidden)
	assert.InDelta(t, 0.6, out.Probability, tolerance)

	require.Len(t, out.Outcomes, 3)
	assert.InDelta(t, 0.6, out.Outcomes[0].Probability, tolerance)
	assert.InDelta(t, 0.32, out.Outcomes[1].Probability, tolerance)
	assert.InDelta(t, 0.08, out.Outcomes[2].Probability, tolerance)
	assert.InDelta(t, 1.0, outcomeSum(out.Outcomes), tolerance)
}

func TestCalculateTalentInheritance_HiddenDonorSingleSlot(t *testing.T) {
	out := calcTalent(t, &TalentInheritanceInput{
		ParentA: ParentTalent{
			Carried:       "moon_veil",
			CarriedHidden: true,
			RegularSlots:  []string{"stone_hide"},
		},
	})

	require.Len(t, out.Outcomes, 2)
	assert.InDelta(t, 0.6, out.Outcomes[0].Probability, tolerance)
	assert.InDelta(t, 0.4, out.Outcomes[1].Probability, tolerance)
}

func TestCalculateTalentInheritance_UniversalDonorFlipsDonor(t *testing.T) {
	out := calcTalent(t, &TalentInheritanceInput{
		ParentA:           ParentTalent{},
		ParentB:           ParentTalent{Carried: "torrent", RegularSlots: []string{"torrent", "rain_call"}},
		AIsUniversalDonor: true,
	})

	assert.Equal(t, "B", out.DonorParent)
	assert.Equal(t, "torrent", out.TalentName)
	assert.InDelta(t, 0.8, out.Probability, tolerance)
	assert.Contains(t, out.Explanation, "Universal-donor pairing")
}

func TestCalculateTalentInheritance_DonorWithoutTalentIsImpossibleNotError(t *testing.T) {
	out := calcTalent(t, &TalentInheritanceInput{
		ParentA: ParentTalent{},
		ParentB: ParentTalent{Carried: "torrent", RegularSlots: []string{"torrent"}},
	})

	assert.True(t, out.Impossible)
	assert.Zero(t, out.Probability)
	assert.Empty(t, out.Outcomes)
	assert.Contains(t, out.Explanation, "nothing to inherit")
}

func TestCalculateTalentInheritance_TwoUniversalDonors(t *testing.T) {
	_, err := New().CalculateTalentInheritance(context.Background(), &TalentInheritanceInput{
		AIsUniversalDonor: true,
		BIsUniversalDonor: true,
	})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
