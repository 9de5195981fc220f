package engine

import (
	"context"
	"math"

	"github.com/hatchforge/brood-api/internal/entities"
	"github.com/hatchforge/brood-api/internal/errors"
)

// CalculateStatDistribution enumerates every way the slot assignment can
// play out and folds the per-axis chances into an exact 0..6 distribution.
//
// For a fixed scenario and a fixed choice of randomly inherited axes, the
// six axes are independent: a forced axis copies its owner, a randomly
// inherited axis copies either parent at 50/50, and a non-inherited axis
// rolls fresh at 1/32. The per-axis Bernoulli chances are convolved into a
// 7-slot count distribution; averaging over the equally likely subset
// choices and the weighted scenarios keeps the total mass at exactly 1.
func (c *calculator) CalculateStatDistribution(ctx context.Context, input *StatDistributionInput) (*StatDistributionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("stat distribution input is required")
	}

	itemA := input.ItemA.Normalize()
	itemB := input.ItemB.Normalize()

	scenarios, err := resolveSlots(itemA, itemB)
	if err != nil {
		return nil, err
	}

	// Chance an axis is perfect when randomly inherited: copies one of
	// the two parents with equal probability.
	var inheritProb [entities.NumStatAxes]float64
	for axis := range inheritProb {
		a := input.ParentAPerfect[axis]
		b := input.ParentBPerfect[axis]
		switch {
		case a && b:
			inheritProb[axis] = 1
		case a || b:
			inheritProb[axis] = 0.5
		}
	}

	parentFlags := [2]entities.StatVector{input.ParentAPerfect, input.ParentBPerfect}

	var pmf [entities.NumStatAxes + 1]float64
	targetTotal := 0.0

	for _, sc := range scenarios {
		var free []int
		for axis := 0; axis < entities.NumStatAxes; axis++ {
			if !sc.hasForced() || axis != sc.forcedAxis {
				free = append(free, axis)
			}
		}

		remaining := sc.inheritedCount
		if sc.hasForced() {
			remaining--
		}
		if remaining < 0 || remaining > len(free) {
			// Forced slots exceed the inherited count; the scenario
			// cannot occur.
			continue
		}

		totalCombos := binomial(len(free), remaining)
		perCombo := sc.weight / float64(totalCombos)

		forEachCombination(len(free), remaining, func(pick []int) {
			var inherited [entities.NumStatAxes]bool
			for _, j := range pick {
				inherited[free[j]] = true
			}

			var axisProb [entities.NumStatAxes]float64
			for axis := 0; axis < entities.NumStatAxes; axis++ {
				switch {
				case sc.hasForced() && axis == sc.forcedAxis:
					if parentFlags[sc.forcedBy][axis] {
						axisProb[axis] = 1
					}
				case inherited[axis]:
					axisProb[axis] = inheritProb[axis]
				default:
					axisProb[axis] = freshPerfectChance
				}
			}

			dp := countDistribution(axisProb)
			for k, mass := range dp {
				pmf[k] += mass * perCombo
			}

			if input.Target != nil {
				product := 1.0
				for axis, wanted := range input.Target {
					if wanted {
						product *= axisProb[axis]
					}
				}
				targetTotal += product * perCombo
			}
		})
	}

	inheritedCount := baseInheritedSlots
	if itemA.IsKindredBand() || itemB.IsKindredBand() {
		inheritedCount = kindredBandSlots
	}
	forced := forcedAxisLabels(itemA, itemB)

	factors := &statFactors{
		computed:       true,
		parentAPerfect: input.ParentAPerfect.PerfectCount(),
		parentBPerfect: input.ParentBPerfect.PerfectCount(),
		bothPerfect:    bothPerfectCount(input.ParentAPerfect, input.ParentBPerfect),
		kindredBand:    inheritedCount == kindredBandSlots,
		inheritedCount: inheritedCount,
		forcedAxes:     forced,
	}

	rows := make([]StatOutcomeRow, len(pmf))
	for k, probability := range pmf {
		rows[k] = StatOutcomeRow{
			PerfectCount: k,
			Probability:  probability,
			Explanation:  factors.explainRow(k, probability),
		}
	}

	out := &StatDistributionOutput{
		InheritedCount: inheritedCount,
		ForcedAxes:     forced,
		Rows:           rows,
	}

	if input.Target != nil {
		out.TargetMatch = buildTargetMatch(input, *input.Target, targetTotal, factors)
	}

	return out, nil
}

func buildTargetMatch(input *StatDistributionInput, target entities.StatVector, probability float64, stats *statFactors) *TargetMatchResult {
	coveredA, coveredB, coveredBoth := 0, 0, 0
	var freeLabels []string
	for axis, wanted := range target {
		if !wanted {
			freeLabels = append(freeLabels, entities.AxisNames[axis])
			continue
		}
		if input.ParentAPerfect[axis] {
			coveredA++
		}
		if input.ParentBPerfect[axis] {
			coveredB++
		}
		if input.ParentAPerfect[axis] && input.ParentBPerfect[axis] {
			coveredBoth++
		}
	}

	eggs := eggsEstimate(probability)
	factors := &targetFactors{
		computed:       true,
		targetLabels:   target.AxisLabels(),
		coveredA:       coveredA,
		coveredB:       coveredB,
		coveredBoth:    coveredBoth,
		kindredBand:    stats.kindredBand,
		inheritedCount: stats.inheritedCount,
		forcedAxes:     stats.forcedAxes,
		freeLabels:     freeLabels,
	}

	return &TargetMatchResult{
		TargetAxes:             target.AxisLabels(),
		ExactMatchProbability:  probability,
		EquivalentGeneralCount: target.PerfectCount(),
		EggsEstimate:           eggs,
		Explanation:            factors.explain(probability, eggs),
	}
}

// countDistribution folds six independent Bernoulli chances into the
// distribution of their success count (Poisson-binomial convolution).
func countDistribution(axisProb [entities.NumStatAxes]float64) [entities.NumStatAxes + 1]float64 {
	var dp [entities.NumStatAxes + 1]float64
	dp[0] = 1

	for _, p := range axisProb {
		var next [entities.NumStatAxes + 1]float64
		for k, mass := range dp {
			if mass == 0 {
				continue
			}
			next[k] += mass * (1 - p)
			if k+1 < len(next) {
				next[k+1] += mass * p
			}
		}
		dp = next
	}
	return dp
}

// forEachCombination calls fn with every size-k index subset of 0..n-1.
// The slice passed to fn is reused between calls.
func forEachCombination(n, k int, fn func([]int)) {
	idx := make([]int, k)
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == k {
			fn(idx)
			return
		}
		for i := start; i <= n-(k-depth); i++ {
			idx[depth] = i
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

func bothPerfectCount(a, b entities.StatVector) int {
	n := 0
	for axis := 0; axis < entities.NumStatAxes; axis++ {
		if a[axis] && b[axis] {
			n++
		}
	}
	return n
}

// eggsEstimate converts a probability into "about 1 in N eggs".
func eggsEstimate(probability float64) int {
	if probability <= 0 {
		return EggsUnreachable
	}
	return int(math.Ceil(1/probability - 1e-9))
}
