package engine

import (
	"github.com/hatchforge/brood-api/internal/entities"
	"github.com/hatchforge/brood-api/internal/errors"
)

const baseInheritedSlots = 3
const kindredBandSlots = 5

// parentID distinguishes the two parents in resolver output.
type parentID int

const (
	parentA parentID = iota
	parentB
)

// Label returns the request-level parent label.
func (p parentID) Label() string {
	if p == parentA {
		return "A"
	}
	return "B"
}

// slotScenario is one weighted way the inheritance slots can be assigned.
// At most one axis is ever forced: when both parents hold sigils exactly
// one applies, so the resolver emits two half-weight scenarios instead of
// choosing randomly.
type slotScenario struct {
	weight         float64
	inheritedCount int
	forcedAxis     int // -1 when no sigil applies
	forcedBy       parentID
}

func (s slotScenario) hasForced() bool {
	return s.forcedAxis >= 0
}

// resolveSlots turns the two held items into the weighted slot scenarios
// the distribution calculator enumerates. Scenario weights sum to 1.
func resolveSlots(itemA, itemB entities.HeldItem) ([]slotScenario, error) {
	if !itemA.Valid() {
		return nil, errors.InvalidArgumentf("unknown held item for parent A: %q", itemA)
	}
	if !itemB.Valid() {
		return nil, errors.InvalidArgumentf("unknown held item for parent B: %q", itemB)
	}

	inherited := baseInheritedSlots
	if itemA.IsKindredBand() || itemB.IsKindredBand() {
		inherited = kindredBandSlots
	}

	axisA, forcedA := itemA.ForcedAxis()
	axisB, forcedB := itemB.ForcedAxis()

	switch {
	case forcedA && forcedB:
		// Exactly one sigil applies, picked evenly between the parents.
		// The same-axis conflict falls out of averaging the two branches.
		return []slotScenario{
			{weight: 0.5, inheritedCount: inherited, forcedAxis: axisA, forcedBy: parentA},
			{weight: 0.5, inheritedCount: inherited, forcedAxis: axisB, forcedBy: parentB},
		}, nil
	case forcedA:
		return []slotScenario{
			{weight: 1, inheritedCount: inherited, forcedAxis: axisA, forcedBy: parentA},
		}, nil
	case forcedB:
		return []slotScenario{
			{weight: 1, inheritedCount: inherited, forcedAxis: axisB, forcedBy: parentB},
		}, nil
	default:
		return []slotScenario{
			{weight: 1, inheritedCount: inherited, forcedAxis: -1},
		}, nil
	}
}

// forcedAxisLabels collects the display names of all sigil-forced axes,
// in axis order, for explanations.
func forcedAxisLabels(itemA, itemB entities.HeldItem) []string {
	forced := make(map[int]bool)
	if axis, ok := itemA.ForcedAxis(); ok {
		forced[axis] = true
	}
	if axis, ok := itemB.ForcedAxis(); ok {
		forced[axis] = true
	}

	var labels []string
	for axis := 0; axis < entities.NumStatAxes; axis++ {
		if forced[axis] {
			labels = append(labels, entities.AxisNames[axis])
		}
	}
	return labels
}
