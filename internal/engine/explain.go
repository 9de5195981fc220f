package engine

import (
	"fmt"
	"strings"
)

// The explanation builder renders the factor records the calculators fill
// in while computing. It never computes probabilities of its own, so the
// displayed reasoning cannot drift from the displayed number; asking it
// to explain a result whose factors were never recorded is a programming
// error and panics.

func mustBeComputed(computed bool, what string) {
	if !computed {
		panic(fmt.Sprintf("engine: asked to explain a %s result that was never computed", what))
	}
}

func formatProbabilityLine(probability float64) string {
	if probability <= 0 {
		return "Probability: 0% -- impossible with these parents and items."
	}
	return fmt.Sprintf("Probability: %.4f%% (about 1 in %d eggs).", probability*100, eggsEstimate(probability))
}

// statFactors records what produced one distribution row.
type statFactors struct {
	computed       bool
	parentAPerfect int
	parentBPerfect int
	bothPerfect    int
	kindredBand    bool
	inheritedCount int
	forcedAxes     []string
}

func (f *statFactors) explainRow(perfectCount int, probability float64) string {
	mustBeComputed(f.computed, "stat distribution")

	lines := []string{
		fmt.Sprintf("Outcome: exactly %d perfect stats out of 6.", perfectCount),
		fmt.Sprintf("Parent A has %d perfect stats, parent B has %d.", f.parentAPerfect, f.parentBPerfect),
		fmt.Sprintf("Axes where BOTH parents are perfect: %d (certain when inherited).", f.bothPerfect),
	}

	if f.kindredBand {
		lines = append(lines, fmt.Sprintf("Kindred band: %d of 6 stats inherited instead of 3.", f.inheritedCount))
	} else {
		lines = append(lines, fmt.Sprintf("No kindred band: only %d of 6 stats inherited.", f.inheritedCount))
	}

	if len(f.forcedAxes) > 0 {
		lines = append(lines, fmt.Sprintf("Sigil forces: %s always inherited from the holder.", strings.Join(f.forcedAxes, ", ")))
	}

	lines = append(lines,
		"Non-inherited stats roll fresh: each has a 1/32 (3.125%) chance of landing perfect.",
		"",
		formatProbabilityLine(probability),
	)
	return strings.Join(lines, "\n")
}

// targetFactors records what produced a target-match probability.
type targetFactors struct {
	computed       bool
	targetLabels   []string
	coveredA       int
	coveredB       int
	coveredBoth    int
	kindredBand    bool
	inheritedCount int
	forcedAxes     []string
	freeLabels     []string
}

func (f *targetFactors) explain(probability float64, eggs int) string {
	mustBeComputed(f.computed, "target match")

	targetCount := len(f.targetLabels)
	lines := []string{
		fmt.Sprintf("Target: %s perfect (%d stats).", strings.Join(f.targetLabels, ", "), targetCount),
		fmt.Sprintf("Parent A covers %d/%d target stats.", f.coveredA, targetCount),
		fmt.Sprintf("Parent B covers %d/%d target stats.", f.coveredB, targetCount),
		fmt.Sprintf("Both parents cover %d/%d target stats (certain when inherited).", f.coveredBoth, targetCount),
	}

	if f.kindredBand {
		lines = append(lines, fmt.Sprintf("Kindred band: %d of 6 stats inherited.", f.inheritedCount))
	} else {
		lines = append(lines, fmt.Sprintf("No kindred band: only %d of 6 stats inherited.", f.inheritedCount))
	}

	if len(f.forcedAxes) > 0 {
		lines = append(lines, fmt.Sprintf("Sigil forces: %s.", strings.Join(f.forcedAxes, ", ")))
	}
	if len(f.freeLabels) > 0 {
		lines = append(lines, fmt.Sprintf("Not part of the target: %s.", strings.Join(f.freeLabels, ", ")))
	}

	lines = append(lines, "")
	if probability > 0 {
		lines = append(lines, fmt.Sprintf("Probability: %.4f%% (about 1 in %d eggs).", probability*100, eggs))
	} else {
		lines = append(lines, "Probability: 0% -- impossible with these parents and items.")
	}
	return strings.Join(lines, "\n")
}

type temperamentMode int

const (
	temperamentUniform temperamentMode = iota
	temperamentOneStone
	temperamentBothStones
)

// temperamentFactors records which temper-stone rule fired.
type temperamentFactors struct {
	computed     bool
	mode         temperamentMode
	sourceParent string
	temperamentA string
	temperamentB string
	catalogSize  int
}

func (f *temperamentFactors) explain(probability float64) string {
	mustBeComputed(f.computed, "temperament inheritance")

	switch f.mode {
	case temperamentBothStones:
		return fmt.Sprintf(
			"Both parents hold a temper stone. 50%% chance of parent A's temperament (%s), 50%% chance of parent B's (%s).",
			f.temperamentA, f.temperamentB,
		)
	case temperamentOneStone:
		name := f.temperamentA
		if f.sourceParent == "B" {
			name = f.temperamentB
		}
		return fmt.Sprintf(
			"Parent %s holds a temper stone. The offspring is guaranteed the %s temperament.",
			f.sourceParent, name,
		)
	default:
		return fmt.Sprintf(
			"No temper stone held. The temperament is drawn uniformly from all %d in the catalog (%.2f%% each); no single outcome can be traced.",
			f.catalogSize, probability*100,
		)
	}
}

// talentFactors records which donor/slot rule fired.
type talentFactors struct {
	computed       bool
	donorLabel     string
	universalDonor bool
	carried        string
	carriedHidden  bool
	impossible     bool
	outcomes       []TalentOutcome
}

func (f *talentFactors) explain(probability float64) string {
	mustBeComputed(f.computed, "talent inheritance")

	var lines []string
	if f.universalDonor {
		lines = append(lines, fmt.Sprintf("Universal-donor pairing: parent %s donates the talent (sex is irrelevant).", f.donorLabel))
	} else {
		lines = append(lines, fmt.Sprintf("Parent %s (female-designated) donates the talent; the other parent's talent never transmits.", f.donorLabel))
	}

	if f.impossible {
		lines = append(lines,
			"The donor carries no talent, so there is nothing to inherit.",
			formatProbabilityLine(0),
		)
		return strings.Join(lines, "\n")
	}

	if f.carriedHidden {
		lines = append(lines, fmt.Sprintf("The donor carries the hidden talent (%s): 60%% chance it passes.", f.carried))
		if len(f.outcomes) > 1 {
			lines = append(lines, "The remaining 40% splits across the regular slots:")
		}
	} else {
		lines = append(lines, fmt.Sprintf("The donor carries a regular talent (%s).", f.carried))
	}

	for _, o := range f.outcomes {
		kind := "regular"
		if o.IsHidden {
			kind = "hidden"
		}
		lines = append(lines, fmt.Sprintf("  %.1f%% -- %s (%s slot).", o.Probability*100, o.Talent, kind))
	}

	lines = append(lines, formatProbabilityLine(probability))
	return strings.Join(lines, "\n")
}
