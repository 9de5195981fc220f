package engine

import (
	"context"
	"fmt"

	"github.com/hatchforge/brood-api/internal/errors"
)

// defaultTemperamentCatalogSize is used when the caller supplies no
// catalog size for the uniform draw.
const defaultTemperamentCatalogSize = 25

// CalculateTemperamentInheritance resolves the temper-stone state: no
// stone means a uniform draw over the catalog, one stone passes the
// holder's temperament deterministically, two stones pick one of the two
// holders at 50/50. The stone never interacts with stat or talent
// inheritance.
func (c *calculator) CalculateTemperamentInheritance(ctx context.Context, input *TemperamentInheritanceInput) (*TemperamentInheritanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("temperament inheritance input is required")
	}

	itemA := input.ItemA.Normalize()
	itemB := input.ItemB.Normalize()
	if !itemA.Valid() {
		return nil, errors.InvalidArgumentf("unknown held item for parent A: %q", itemA)
	}
	if !itemB.Valid() {
		return nil, errors.InvalidArgumentf("unknown held item for parent B: %q", itemB)
	}

	stoneA := itemA.IsTemperStone()
	stoneB := itemB.IsTemperStone()
	if stoneA && input.TemperamentA == "" {
		return nil, errors.InvalidArgument("parent A holds a temper stone but has no temperament set")
	}
	if stoneB && input.TemperamentB == "" {
		return nil, errors.InvalidArgument("parent B holds a temper stone but has no temperament set")
	}

	switch {
	case stoneA && stoneB:
		factors := &temperamentFactors{
			computed:     true,
			mode:         temperamentBothStones,
			temperamentA: input.TemperamentA,
			temperamentB: input.TemperamentB,
		}
		return &TemperamentInheritanceOutput{
			InheritedTemperament: fmt.Sprintf("%s or %s", input.TemperamentA, input.TemperamentB),
			SourceParent:         "A or B",
			Probability:          0.5,
			Explanation:          factors.explain(0.5),
		}, nil

	case stoneA:
		factors := &temperamentFactors{
			computed:     true,
			mode:         temperamentOneStone,
			sourceParent: "A",
			temperamentA: input.TemperamentA,
		}
		return &TemperamentInheritanceOutput{
			InheritedTemperament: input.TemperamentA,
			SourceParent:         "A",
			Probability:          1,
			Explanation:          factors.explain(1),
		}, nil

	case stoneB:
		factors := &temperamentFactors{
			computed:     true,
			mode:         temperamentOneStone,
			sourceParent: "B",
			temperamentB: input.TemperamentB,
		}
		return &TemperamentInheritanceOutput{
			InheritedTemperament: input.TemperamentB,
			SourceParent:         "B",
			Probability:          1,
			Explanation:          factors.explain(1),
		}, nil

	default:
		size := input.CatalogSize
		if size <= 0 {
			size = defaultTemperamentCatalogSize
		}
		probability := 1 / float64(size)
		factors := &temperamentFactors{
			computed:    true,
			mode:        temperamentUniform,
			catalogSize: size,
		}
		return &TemperamentInheritanceOutput{
			Probability: probability,
			Explanation: factors.explain(probability),
		}, nil
	}
}
