package engine

import (
	"context"

	"github.com/hatchforge/brood-api/internal/errors"
)

// Talent pass rates. A donor carrying the hidden variant passes it at
// 60%; the remainder splits across the regular slots at the same 80/20
// ratio regular donors use.
const (
	hiddenPassRate     = 0.6
	primarySlotShare   = 0.8
	secondarySlotShare = 0.2
)

// CalculateTalentInheritance picks the donor parent and computes the full
// split over its talent slots.
//
// Donor selection: with a universal donor involved the other parent
// donates, since the universal donor has no talent and no sex-linked
// rules. Otherwise parent A donates, the female-designated parent by
// convention; the male-designated parent's talent never transmits.
func (c *calculator) CalculateTalentInheritance(ctx context.Context, input *TalentInheritanceInput) (*TalentInheritanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("talent inheritance input is required")
	}
	if input.AIsUniversalDonor && input.BIsUniversalDonor {
		return nil, errors.InvalidArgument("both parents cannot be universal donors")
	}

	donor := input.ParentA
	donorLabel := "A"
	universal := input.AIsUniversalDonor || input.BIsUniversalDonor
	if input.AIsUniversalDonor {
		donor = input.ParentB
		donorLabel = "B"
	}

	if donor.Carried == "" {
		// Neither a hidden nor a regular talent on the donor side: a
		// valid impossible outcome, not a failure.
		factors := &talentFactors{
			computed:       true,
			donorLabel:     donorLabel,
			universalDonor: universal,
			impossible:     true,
		}
		return &TalentInheritanceOutput{
			Probability: 0,
			Impossible:  true,
			DonorParent: donorLabel,
			Explanation: factors.explain(0),
		}, nil
	}

	var outcomes []TalentOutcome
	if donor.CarriedHidden {
		outcomes = append(outcomes, TalentOutcome{
			Talent:      donor.Carried,
			IsHidden:    true,
			Probability: hiddenPassRate,
		})
		outcomes = append(outcomes, splitRemainder(1-hiddenPassRate, donor.RegularSlots)...)
	} else {
		outcomes = splitRemainder(1, donor.RegularSlots)
		if len(outcomes) == 0 {
			// Species data with no regular slots but a regular carried
			// talent; fall back to the carried talent itself.
			outcomes = []TalentOutcome{{Talent: donor.Carried, Probability: 1}}
		}
	}

	headline := outcomes[0]
	for _, o := range outcomes {
		if o.Talent == donor.Carried && o.IsHidden == donor.CarriedHidden {
			headline = o
			break
		}
	}

	factors := &talentFactors{
		computed:       true,
		donorLabel:     donorLabel,
		universalDonor: universal,
		carried:        donor.Carried,
		carriedHidden:  donor.CarriedHidden,
		outcomes:       outcomes,
	}

	return &TalentInheritanceOutput{
		TalentName:  headline.Talent,
		IsHidden:    headline.IsHidden,
		Probability: headline.Probability,
		Outcomes:    outcomes,
		DonorParent: donorLabel,
		Explanation: factors.explain(headline.Probability),
	}, nil
}

// splitRemainder distributes mass across the donor's regular slots:
// 80/20 between primary and secondary. With a single regular slot the
// whole remainder lands on it; the mass is never averaged down.
func splitRemainder(mass float64, regularSlots []string) []TalentOutcome {
	switch len(regularSlots) {
	case 0:
		return nil
	case 1:
		return []TalentOutcome{{Talent: regularSlots[0], Probability: mass}}
	default:
		return []TalentOutcome{
			{Talent: regularSlots[0], Probability: mass * primarySlotShare},
			{Talent: regularSlots[1], Probability: mass * secondarySlotShare},
		}
	}
}
