package v1alpha1

import (
	"github.com/hatchforge/brood-api/internal/entities"
	"github.com/hatchforge/brood-api/internal/orchestrators/breeding"
	"github.com/hatchforge/brood-api/internal/orchestrators/catalog"
)

// Wire shapes for the JSON API. Field names are snake_case and stable.

type speciesSummaryPayload struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	PortraitURL string `json:"portrait_url,omitempty"`
}

type searchResponse struct {
	Results []speciesSummaryPayload `json:"results"`
}

type browseResponse struct {
	Total   int                     `json:"total"`
	Species []speciesSummaryPayload `json:"species"`
}

type compatibleResponse struct {
	Results []speciesSummaryPayload `json:"results"`
}

type kinGroupPayload struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type talentSlotPayload struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsHidden bool   `json:"is_hidden"`
}

type speciesDetailPayload struct {
	ID               int                 `json:"id"`
	Name             string              `json:"name"`
	PortraitURL      string              `json:"portrait_url,omitempty"`
	BaseStats        []int               `json:"base_stats"`
	FemaleRatio      float64             `json:"female_ratio"`
	IsBreedable      bool                `json:"is_breedable"`
	IsUniversalDonor bool                `json:"is_universal_donor"`
	KinGroups        []kinGroupPayload   `json:"kin_groups"`
	Talents          []talentSlotPayload `json:"talents"`
}

type temperamentPayload struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	RaisedStat  string `json:"raised_stat,omitempty"`
	LoweredStat string `json:"lowered_stat,omitempty"`
}

type temperamentsResponse struct {
	Temperaments []temperamentPayload `json:"temperaments"`
}

type kinGroupsResponse struct {
	KinGroups []kinGroupPayload `json:"kin_groups"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type parentPayload struct {
	SpeciesID      int    `json:"species_id"`
	PerfectStats   []bool `json:"perfect_stats"`
	HeldItem       string `json:"held_item"`
	Temperament    string `json:"temperament,omitempty"`
	Talent         string `json:"talent,omitempty"`
	TalentIsHidden bool   `json:"talent_is_hidden,omitempty"`
}

type calculateRequest struct {
	ParentA     parentPayload `json:"parent_a"`
	ParentB     parentPayload `json:"parent_b"`
	TargetStats []bool        `json:"target_stats,omitempty"`
}

type statRowPayload struct {
	PerfectCount int     `json:"perfect_count"`
	Probability  float64 `json:"probability"`
	Percentage   string  `json:"percentage"`
	Explanation  string  `json:"explanation"`
}

type temperamentInfoPayload struct {
	InheritedTemperament string  `json:"inherited_temperament,omitempty"`
	FromParent           string  `json:"from_parent,omitempty"`
	Probability          float64 `json:"probability"`
	Explanation          string  `json:"explanation"`
}

type talentOutcomePayload struct {
	Talent      string  `json:"talent"`
	IsHidden    bool    `json:"is_hidden"`
	Probability float64 `json:"probability"`
	Percentage  string  `json:"percentage"`
}

type talentInfoPayload struct {
	TalentName  string                 `json:"talent_name,omitempty"`
	IsHidden    bool                   `json:"is_hidden"`
	Probability float64                `json:"probability"`
	Outcomes    []talentOutcomePayload `json:"outcomes,omitempty"`
	Impossible  bool                   `json:"impossible"`
	DonorParent string                 `json:"donor_parent,omitempty"`
	Explanation string                 `json:"explanation"`
}

type targetMatchPayload struct {
	TargetAxes             []string `json:"target_axes"`
	ExactMatchProbability  float64  `json:"exact_match_probability"`
	Percentage             string   `json:"percentage"`
	EquivalentGeneralCount int      `json:"equivalent_general_count"`
	EggsEstimate           int      `json:"eggs_estimate"`
	Explanation            string   `json:"explanation"`
}

type calculateResponse struct {
	CalculationID  string                  `json:"calculation_id"`
	ParentA        string                  `json:"parent_a"`
	ParentB        string                  `json:"parent_b"`
	HeldItemA      string                  `json:"held_item_a"`
	HeldItemB      string                  `json:"held_item_b"`
	InheritedCount int                     `json:"inherited_count"`
	ForcedAxes     []string                `json:"forced_axes,omitempty"`
	Results        []statRowPayload        `json:"results"`
	Temperament    *temperamentInfoPayload `json:"temperament,omitempty"`
	Talent         *talentInfoPayload      `json:"talent,omitempty"`
	TargetMatch    *targetMatchPayload     `json:"target_match,omitempty"`
}

func toSummaryPayloads(summaries []catalog.SpeciesSummary) []speciesSummaryPayload {
	payloads := make([]speciesSummaryPayload, 0, len(summaries))
	for _, s := range summaries {
		payloads = append(payloads, speciesSummaryPayload{
			ID:          s.ID,
			Name:        s.Name,
			PortraitURL: s.PortraitURL,
		})
	}
	return payloads
}

func toSpeciesDetail(sp *entities.Species) speciesDetailPayload {
	detail := speciesDetailPayload{
		ID:               sp.ID,
		Name:             sp.Name,
		PortraitURL:      sp.PortraitURL,
		BaseStats:        sp.BaseStats[:],
		FemaleRatio:      sp.FemaleRatio,
		IsBreedable:      sp.IsBreedable,
		IsUniversalDonor: sp.IsUniversalDonor,
		KinGroups:        []kinGroupPayload{},
		Talents:          []talentSlotPayload{},
	}
	for _, kg := range sp.KinGroups {
		detail.KinGroups = append(detail.KinGroups, kinGroupPayload(kg))
	}
	for _, t := range sp.Talents {
		detail.Talents = append(detail.Talents, talentSlotPayload(t))
	}
	return detail
}

func toTemperamentPayloads(temperaments []entities.Temperament) []temperamentPayload {
	payloads := make([]temperamentPayload, 0, len(temperaments))
	for _, t := range temperaments {
		payloads = append(payloads, temperamentPayload(t))
	}
	return payloads
}

func toKinGroupPayloads(kinGroups []entities.KinGroup) []kinGroupPayload {
	payloads := make([]kinGroupPayload, 0, len(kinGroups))
	for _, kg := range kinGroups {
		payloads = append(payloads, kinGroupPayload(kg))
	}
	return payloads
}

func (r *calculateRequest) toInput() *breeding.CalculateInput {
	return &breeding.CalculateInput{
		ParentA: toParentInput(r.ParentA),
		ParentB: toParentInput(r.ParentB),
		Target:  r.TargetStats,
	}
}

func toParentInput(p parentPayload) breeding.ParentInput {
	return breeding.ParentInput{
		SpeciesID:      p.SpeciesID,
		Perfect:        p.PerfectStats,
		Item:           p.HeldItem,
		Temperament:    p.Temperament,
		Talent:         p.Talent,
		TalentIsHidden: p.TalentIsHidden,
	}
}

func toCalculateResponse(output *breeding.CalculateOutput) calculateResponse {
	resp := calculateResponse{
		CalculationID:  output.CalculationID,
		ParentA:        output.ParentALabel,
		ParentB:        output.ParentBLabel,
		HeldItemA:      output.HeldItemA,
		HeldItemB:      output.HeldItemB,
		InheritedCount: output.InheritedCount,
		ForcedAxes:     output.ForcedAxes,
		Results:        make([]statRowPayload, 0, len(output.Results)),
	}

	for _, row := range output.Results {
		resp.Results = append(resp.Results, statRowPayload{
			PerfectCount: row.PerfectCount,
			Probability:  row.Probability,
			Percentage:   row.PercentageText,
			Explanation:  row.Explanation,
		})
	}

	if output.Temperament != nil {
		resp.Temperament = &temperamentInfoPayload{
			InheritedTemperament: output.Temperament.InheritedTemperament,
			FromParent:           output.Temperament.FromParent,
			Probability:          output.Temperament.Probability,
			Explanation:          output.Temperament.Explanation,
		}
	}

	if output.Talent != nil {
		info := &talentInfoPayload{
			TalentName:  output.Talent.TalentName,
			IsHidden:    output.Talent.IsHidden,
			Probability: output.Talent.Probability,
			Impossible:  output.Talent.Impossible,
			DonorParent: output.Talent.DonorParent,
			Explanation: output.Talent.Explanation,
		}
		for _, outcome := range output.Talent.Outcomes {
			info.Outcomes = append(info.Outcomes, talentOutcomePayload{
				Talent:      outcome.Talent,
				IsHidden:    outcome.IsHidden,
				Probability: outcome.Probability,
				Percentage:  outcome.PercentageText,
			})
		}
		resp.Talent = info
	}

	if output.TargetMatch != nil {
		resp.TargetMatch = &targetMatchPayload{
			TargetAxes:             output.TargetMatch.TargetAxes,
			ExactMatchProbability:  output.TargetMatch.ExactMatchProbability,
			Percentage:             output.TargetMatch.PercentageText,
			EquivalentGeneralCount: output.TargetMatch.EquivalentGeneralCount,
			EggsEstimate:           output.TargetMatch.EggsEstimate,
			Explanation:            output.TargetMatch.Explanation,
		}
	}

	return resp
}
