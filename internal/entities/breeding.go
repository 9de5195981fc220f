// Package entities defines the value objects shared across the brood API:
// stat vectors, held items, and the reference-data catalog types.
package entities

import "strings"

// NumStatAxes is the fixed number of stat axes every creature has.
const NumStatAxes = 6

// Stat axis indexes, in catalog order. The order is wire-stable: stat
// vectors are always [vitality, power, guard, insight, ward, agility].
const (
	AxisVitality = iota
	AxisPower
	AxisGuard
	AxisInsight
	AxisWard
	AxisAgility
)

// AxisNames maps axis index to display name.
var AxisNames = [NumStatAxes]string{"Vitality", "Power", "Guard", "Insight", "Ward", "Agility"}

// StatVector flags, per axis, whether the stat is at its perfect value.
// The array length enforces the exactly-six invariant by construction;
// boundary code converts from []bool after checking the length.
type StatVector [NumStatAxes]bool

// StatVectorFromSlice converts a request-level slice into a StatVector.
// Returns false when the slice is not exactly six flags.
func StatVectorFromSlice(flags []bool) (StatVector, bool) {
	var v StatVector
	if len(flags) != NumStatAxes {
		return v, false
	}
	copy(v[:], flags)
	return v, true
}

// PerfectCount returns how many axes are flagged perfect.
func (v StatVector) PerfectCount() int {
	n := 0
	for _, perfect := range v {
		if perfect {
			n++
		}
	}
	return n
}

// AxisLabels returns the display names of the flagged axes, in axis order.
func (v StatVector) AxisLabels() []string {
	labels := make([]string, 0, NumStatAxes)
	for i, perfect := range v {
		if perfect {
			labels = append(labels, AxisNames[i])
		}
	}
	return labels
}

// HeldItem identifies a parent's held item. A parent holds at most one
// item, so at most one effect is ever active per parent.
type HeldItem string

// Held items recognized by the calculator.
const (
	// HeldItemNone means the parent holds nothing.
	HeldItemNone HeldItem = "none"

	// HeldItemKindredBand raises the inherited slot count from 3 to 5.
	// Not additive when both parents hold one.
	HeldItemKindredBand HeldItem = "kindred_band"

	// HeldItemTemperStone passes the holder's temperament to the offspring.
	HeldItemTemperStone HeldItem = "temper_stone"

	// Sigils force one specific stat axis to be inherited from the holder.
	HeldItemSigilVitality HeldItem = "sigil_vitality"
	HeldItemSigilPower    HeldItem = "sigil_power"
	HeldItemSigilGuard    HeldItem = "sigil_guard"
	HeldItemSigilInsight  HeldItem = "sigil_insight"
	HeldItemSigilWard     HeldItem = "sigil_ward"
	HeldItemSigilAgility  HeldItem = "sigil_agility"
)

var sigilAxes = map[HeldItem]int{
	HeldItemSigilVitality: AxisVitality,
	HeldItemSigilPower:    AxisPower,
	HeldItemSigilGuard:    AxisGuard,
	HeldItemSigilInsight:  AxisInsight,
	HeldItemSigilWard:     AxisWard,
	HeldItemSigilAgility:  AxisAgility,
}

// ForcedAxis returns the stat axis a sigil forces, if the item is a sigil.
func (h HeldItem) ForcedAxis() (int, bool) {
	axis, ok := sigilAxes[h]
	return axis, ok
}

// IsKindredBand reports whether the item raises the inherited slot count.
func (h HeldItem) IsKindredBand() bool {
	return h == HeldItemKindredBand
}

// IsTemperStone reports whether the item locks temperament inheritance.
func (h HeldItem) IsTemperStone() bool {
	return h == HeldItemTemperStone
}

// Valid reports whether the item name is recognized. The empty string is
// accepted as shorthand for none.
func (h HeldItem) Valid() bool {
	if h == "" || h == HeldItemNone || h == HeldItemKindredBand || h == HeldItemTemperStone {
		return true
	}
	_, ok := sigilAxes[h]
	return ok
}

// Normalize lower-cases the item name and maps the empty string to none.
func (h HeldItem) Normalize() HeldItem {
	n := HeldItem(strings.ToLower(strings.TrimSpace(string(h))))
	if n == "" {
		return HeldItemNone
	}
	return n
}
