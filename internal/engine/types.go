package engine

import (
	"github.com/hatchforge/brood-api/internal/entities"
)

// EggsUnreachable is the eggs-estimate sentinel for a zero-probability
// outcome.
const EggsUnreachable = -1

// freshPerfectChance is the chance a non-inherited axis rolls perfect on
// its own: one value out of 32.
const freshPerfectChance = 1.0 / 32.0

// StatDistributionInput describes both parents for the stat calculators.
type StatDistributionInput struct {
	// ParentAPerfect / ParentBPerfect flag which axes are perfect on each
	// parent.
	ParentAPerfect entities.StatVector
	ParentBPerfect entities.StatVector

	// ItemA / ItemB are the parents' held items.
	ItemA entities.HeldItem
	ItemB entities.HeldItem

	// Target, when set, asks for the exact-match probability of that
	// spread in addition to the general distribution.
	Target *entities.StatVector
}

// StatOutcomeRow is one row of the distribution: the probability that the
// offspring has exactly PerfectCount perfect stats.
type StatOutcomeRow struct {
	PerfectCount int
	Probability  float64
	Explanation  string
}

// TargetMatchResult scores a specific desired spread against the parents.
type TargetMatchResult struct {
	// TargetAxes are the display names of the axes the caller wants
	// perfect.
	TargetAxes []string

	// ExactMatchProbability is the chance every target axis lands
	// perfect, regardless of the remaining axes.
	ExactMatchProbability float64

	// EquivalentGeneralCount is the size of the target set, i.e. which
	// general distribution row the target refines.
	EquivalentGeneralCount int

	// EggsEstimate is ceil(1/probability), or EggsUnreachable when the
	// probability is zero.
	EggsEstimate int

	Explanation string
}

// StatDistributionOutput is the full result of the stat calculators.
type StatDistributionOutput struct {
	// InheritedCount is the number of inherited slots (3, or 5 with a
	// kindred band).
	InheritedCount int

	// ForcedAxes are the display names of sigil-forced axes across both
	// parents.
	ForcedAxes []string

	// Rows always holds exactly 7 entries, counts 0 through 6, summing
	// to 1.
	Rows []StatOutcomeRow

	// TargetMatch is nil when no target was requested.
	TargetMatch *TargetMatchResult
}

// TemperamentInheritanceInput describes the temper-stone state.
type TemperamentInheritanceInput struct {
	ItemA entities.HeldItem
	ItemB entities.HeldItem

	// TemperamentA / TemperamentB are the parents' temperament names,
	// empty when unknown. Required for a parent holding a temper stone.
	TemperamentA string
	TemperamentB string

	// CatalogSize is the number of temperaments in the catalog, used for
	// the uniform no-stone case. Injected by the caller from reference
	// data.
	CatalogSize int
}

// TemperamentInheritanceOutput reports how the temperament passes.
type TemperamentInheritanceOutput struct {
	// InheritedTemperament is empty for the uniform no-stone draw. With
	// stones on both parents it names both candidates.
	InheritedTemperament string

	// SourceParent is "A", "B", "A or B", or empty for the uniform case.
	SourceParent string

	Probability float64
	Explanation string
}

// ParentTalent describes one parent's talent for donor resolution.
type ParentTalent struct {
	// Carried is the talent the individual actually has; empty when it
	// has none.
	Carried string

	// CarriedHidden is true when Carried is the hidden variant.
	CarriedHidden bool

	// RegularSlots are the species' regular talent slot names in slot
	// order (primary first). One or two entries.
	RegularSlots []string
}

// TalentInheritanceInput describes both parents for donor resolution.
// Parent A is the female-designated parent by convention; when a universal
// donor is involved the donor is the other parent and sex is irrelevant.
type TalentInheritanceInput struct {
	ParentA ParentTalent
	ParentB ParentTalent

	AIsUniversalDonor bool
	BIsUniversalDonor bool
}

// TalentOutcome is one branch of the talent split.
type TalentOutcome struct {
	Talent      string
	IsHidden    bool
	Probability float64
}

// TalentInheritanceOutput reports the talent split for the resolved donor.
type TalentInheritanceOutput struct {
	// TalentName / IsHidden / Probability describe the headline outcome:
	// the donor's own carried talent.
	TalentName  string
	IsHidden    bool
	Probability float64

	// Outcomes is the full split over the donor's slots; probabilities
	// sum to 1 unless the outcome is impossible.
	Outcomes []TalentOutcome

	// Impossible is true when the donor carries no talent at all. This is
	// a valid zero-probability result, not an error.
	Impossible bool

	// DonorParent is "A" or "B".
	DonorParent string

	Explanation string
}
