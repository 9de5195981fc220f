package breeding

// ParentInput describes one parent as the caller configured it. Parent A
// is the female-designated parent by convention; the distinction only
// matters for talent inheritance, and not at all when a universal donor
// is involved.
type ParentInput struct {
	// SpeciesID is the parent's bestiary number
	SpeciesID int

	// Perfect flags which stat axes are at their perfect value,
	// in axis order. Must hold exactly six flags.
	Perfect []bool

	// Item is the held item name ("none", "kindred_band",
	// "temper_stone", or one of the sigils)
	Item string

	// Temperament is the parent's temperament name. Required when the
	// parent holds a temper stone.
	Temperament string

	// Talent is the talent this individual carries, if the caller set one
	Talent string

	// TalentIsHidden marks Talent as the hidden variant
	TalentIsHidden bool
}

// CalculateInput is one breeding calculation request
type CalculateInput struct {
	ParentA ParentInput
	ParentB ParentInput

	// Target, when non-empty, asks for the exact-match probability of
	// this desired spread. Must hold exactly six flags when set.
	Target []bool
}

// StatRow is one row of the response distribution
type StatRow struct {
	PerfectCount   int
	Probability    float64
	PercentageText string
	Explanation    string
}

// TemperamentInfo is the temperament section of the response
type TemperamentInfo struct {
	// InheritedTemperament is empty for the uniform no-stone draw
	InheritedTemperament string
	FromParent           string
	Probability          float64
	Explanation          string
}

// TalentInfo is the talent section of the response
type TalentInfo struct {
	TalentName  string
	IsHidden    bool
	Probability float64

	// Outcomes is the full split across the donor's slots
	Outcomes []TalentOutcomeRow

	// Impossible is true when no queried talent can appear at all
	Impossible  bool
	DonorParent string
	Explanation string
}

// TalentOutcomeRow is one branch of the talent split
type TalentOutcomeRow struct {
	Talent         string
	IsHidden       bool
	Probability    float64
	PercentageText string
}

// TargetMatchInfo is the target-match section of the response
type TargetMatchInfo struct {
	TargetAxes             []string
	ExactMatchProbability  float64
	PercentageText         string
	EquivalentGeneralCount int

	// EggsEstimate is ceil(1/p), or -1 when the target is unreachable
	EggsEstimate int
	Explanation  string
}

// CalculateOutput is the assembled breeding response
type CalculateOutput struct {
	// CalculationID identifies this calculation in logs
	CalculationID string

	ParentALabel string
	ParentBLabel string
	HeldItemA    string
	HeldItemB    string

	// InheritedCount is 3, or 5 when a kindred band is held
	InheritedCount int
	ForcedAxes     []string

	// Results always holds exactly 7 rows, perfect counts 0 through 6
	Results []StatRow

	Temperament *TemperamentInfo
	Talent      *TalentInfo
	TargetMatch *TargetMatchInfo
}
