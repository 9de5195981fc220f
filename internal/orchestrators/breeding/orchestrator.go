// Package breeding implements the breeding orchestrator: it validates a
// calculation request, loads the parents from the catalog, fans out to
// the probability engine, and assembles the response.
package breeding

//go:generate mockgen -destination=mock/mock_service.go -package=breedingmock github.com/hatchforge/brood-api/internal/orchestrators/breeding Service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hatchforge/brood-api/internal/engine"
	"github.com/hatchforge/brood-api/internal/entities"
	"github.com/hatchforge/brood-api/internal/errors"
	"github.com/hatchforge/brood-api/internal/pkg/idgen"
	"github.com/hatchforge/brood-api/internal/repositories/species"
)

// Service defines the interface for breeding calculations
type Service interface {
	// Calculate runs one full breeding probability calculation
	Calculate(ctx context.Context, input *CalculateInput) (*CalculateOutput, error)
}

// Config holds the dependencies for the breeding orchestrator
type Config struct {
	SpeciesRepo species.Repository
	Engine      engine.Engine
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SpeciesRepo == nil {
		vb.RequiredField("SpeciesRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	speciesRepo species.Repository
	engine      engine.Engine
	idGen       idgen.Generator
}

// NewOrchestrator creates a new breeding orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		speciesRepo: cfg.SpeciesRepo,
		engine:      cfg.Engine,
		idGen:       cfg.IDGenerator,
	}, nil
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)

// parsedRequest is a validated request with the parents loaded
type parsedRequest struct {
	perfectA entities.StatVector
	perfectB entities.StatVector
	itemA    entities.HeldItem
	itemB    entities.HeldItem
	target   *entities.StatVector

	parentA *entities.Species
	parentB *entities.Species
}

// Calculate runs one full breeding probability calculation
func (o *orchestrator) Calculate(ctx context.Context, input *CalculateInput) (*CalculateOutput, error) {
	req, err := o.parseRequest(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := checkCompatibility(req.parentA, req.parentB); err != nil {
		return nil, err
	}

	catalogSize, err := o.temperamentCatalogSize(ctx)
	if err != nil {
		return nil, err
	}

	// The three calculators share no state; run them in parallel
	var (
		wg sync.WaitGroup

		statOutput        *engine.StatDistributionOutput
		temperamentOutput *engine.TemperamentInheritanceOutput
		talentOutput      *engine.TalentInheritanceOutput

		statErr        error
		temperamentErr error
		talentErr      error
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		statOutput, statErr = o.engine.CalculateStatDistribution(ctx, &engine.StatDistributionInput{
			ParentAPerfect: req.perfectA,
			ParentBPerfect: req.perfectB,
			ItemA:          req.itemA,
			ItemB:          req.itemB,
			Target:         req.target,
		})
	}()

	go func() {
		defer wg.Done()
		temperamentOutput, temperamentErr = o.engine.CalculateTemperamentInheritance(ctx, &engine.TemperamentInheritanceInput{
			ItemA:        req.itemA,
			ItemB:        req.itemB,
			TemperamentA: input.ParentA.Temperament,
			TemperamentB: input.ParentB.Temperament,
			CatalogSize:  catalogSize,
		})
	}()

	go func() {
		defer wg.Done()
		talentOutput, talentErr = o.engine.CalculateTalentInheritance(ctx, &engine.TalentInheritanceInput{
			ParentA: engine.ParentTalent{
				Carried:       input.ParentA.Talent,
				CarriedHidden: input.ParentA.TalentIsHidden,
				RegularSlots:  req.parentA.RegularTalents(),
			},
			ParentB: engine.ParentTalent{
				Carried:       input.ParentB.Talent,
				CarriedHidden: input.ParentB.TalentIsHidden,
				RegularSlots:  req.parentB.RegularTalents(),
			},
			AIsUniversalDonor: req.parentA.IsUniversalDonor,
			BIsUniversalDonor: req.parentB.IsUniversalDonor,
		})
	}()

	wg.Wait()

	for _, err := range []error{statErr, temperamentErr, talentErr} {
		if err != nil {
			return nil, err
		}
	}

	output := o.assemble(req, statOutput, temperamentOutput, talentOutput)

	slog.Info("Breeding calculation finished",
		"calculation_id", output.CalculationID,
		"parent_a", output.ParentALabel,
		"parent_b", output.ParentBLabel,
		"inherited_count", output.InheritedCount,
	)

	return output, nil
}

// parseRequest validates the raw input and loads both parent species.
// Every InvalidConfiguration case is caught here, before any math runs.
func (o *orchestrator) parseRequest(ctx context.Context, input *CalculateInput) (*parsedRequest, error) {
	vb := errors.NewValidationBuilder()

	perfectA, ok := entities.StatVectorFromSlice(input.ParentA.Perfect)
	if !ok {
		vb.InvalidField("ParentA.Perfect", fmt.Sprintf("must hold exactly %d flags", entities.NumStatAxes))
	}
	perfectB, ok := entities.StatVectorFromSlice(input.ParentB.Perfect)
	if !ok {
		vb.InvalidField("ParentB.Perfect", fmt.Sprintf("must hold exactly %d flags", entities.NumStatAxes))
	}

	itemA := entities.HeldItem(input.ParentA.Item).Normalize()
	itemB := entities.HeldItem(input.ParentB.Item).Normalize()
	if !itemA.Valid() {
		vb.InvalidField("ParentA.Item", fmt.Sprintf("unknown held item %q", input.ParentA.Item))
	}
	if !itemB.Valid() {
		vb.InvalidField("ParentB.Item", fmt.Sprintf("unknown held item %q", input.ParentB.Item))
	}

	var target *entities.StatVector
	if len(input.Target) > 0 {
		t, ok := entities.StatVectorFromSlice(input.Target)
		if !ok {
			vb.InvalidField("Target", fmt.Sprintf("must hold exactly %d flags", entities.NumStatAxes))
		} else {
			target = &t
		}
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}

	parentA, err := o.loadParent(ctx, input.ParentA.SpeciesID, "parent A")
	if err != nil {
		return nil, err
	}
	parentB, err := o.loadParent(ctx, input.ParentB.SpeciesID, "parent B")
	if err != nil {
		return nil, err
	}

	return &parsedRequest{
		perfectA: perfectA,
		perfectB: perfectB,
		itemA:    itemA,
		itemB:    itemB,
		target:   target,
		parentA:  parentA,
		parentB:  parentB,
	}, nil
}

func (o *orchestrator) loadParent(ctx context.Context, id int, label string) (*entities.Species, error) {
	if id <= 0 {
		return nil, errors.InvalidArgumentf("%s species ID is required", label)
	}

	getOutput, err := o.speciesRepo.Get(ctx, species.GetInput{ID: id})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("%s not found", label)
		}
		return nil, errors.Wrapf(err, "failed to load %s", label)
	}

	return getOutput.Species, nil
}

// checkCompatibility enforces the pairing rules: both parents must be
// breedable, two universal donors never pair, and non-donor pairs must
// share a kin group.
func checkCompatibility(parentA, parentB *entities.Species) error {
	if !parentA.IsBreedable {
		return errors.FailedPreconditionf("%s is in the sealed kin group and cannot breed", parentA.Name)
	}
	if !parentB.IsBreedable {
		return errors.FailedPreconditionf("%s is in the sealed kin group and cannot breed", parentB.Name)
	}

	if parentA.IsUniversalDonor && parentB.IsUniversalDonor {
		return errors.FailedPrecondition("two universal donors cannot breed together")
	}
	if parentA.IsUniversalDonor || parentB.IsUniversalDonor {
		return nil
	}

	if !parentA.SharesKinGroup(parentB) {
		return errors.FailedPreconditionf("%s and %s share no kin group and cannot breed together",
			parentA.Name, parentB.Name)
	}

	return nil
}

// temperamentCatalogSize reads the catalog size for the uniform draw.
// An unseeded catalog falls back to the engine's default size.
func (o *orchestrator) temperamentCatalogSize(ctx context.Context) (int, error) {
	listOutput, err := o.speciesRepo.ListTemperaments(ctx, species.ListTemperamentsInput{})
	if err != nil {
		if errors.IsFailedPrecondition(err) {
			return 0, nil
		}
		return 0, errors.Wrap(err, "failed to read temperament catalog")
	}

	return len(listOutput.Temperaments), nil
}

// assemble builds the response from the three engine sections
func (o *orchestrator) assemble(
	req *parsedRequest,
	stat *engine.StatDistributionOutput,
	temperament *engine.TemperamentInheritanceOutput,
	talent *engine.TalentInheritanceOutput,
) *CalculateOutput {
	rows := make([]StatRow, 0, len(stat.Rows))
	for _, row := range stat.Rows {
		rows = append(rows, StatRow{
			PerfectCount:   row.PerfectCount,
			Probability:    row.Probability,
			PercentageText: percentageText(row.Probability),
			Explanation:    row.Explanation,
		})
	}

	output := &CalculateOutput{
		CalculationID:  o.idGen.Generate(),
		ParentALabel:   req.parentA.Name,
		ParentBLabel:   req.parentB.Name,
		HeldItemA:      string(req.itemA),
		HeldItemB:      string(req.itemB),
		InheritedCount: stat.InheritedCount,
		ForcedAxes:     stat.ForcedAxes,
		Results:        rows,
		Temperament: &TemperamentInfo{
			InheritedTemperament: temperament.InheritedTemperament,
			FromParent:           temperament.SourceParent,
			Probability:          temperament.Probability,
			Explanation:          temperament.Explanation,
		},
		Talent: &TalentInfo{
			TalentName:  talent.TalentName,
			IsHidden:    talent.IsHidden,
			Probability: talent.Probability,
			Impossible:  talent.Impossible,
			DonorParent: talent.DonorParent,
			Explanation: talent.Explanation,
		},
	}

	for _, outcome := range talent.Outcomes {
		output.Talent.Outcomes = append(output.Talent.Outcomes, TalentOutcomeRow{
			Talent:         outcome.Talent,
			IsHidden:       outcome.IsHidden,
			Probability:    outcome.Probability,
			PercentageText: percentageText(outcome.Probability),
		})
	}

	if stat.TargetMatch != nil {
		output.TargetMatch = &TargetMatchInfo{
			TargetAxes:             stat.TargetMatch.TargetAxes,
			ExactMatchProbability:  stat.TargetMatch.ExactMatchProbability,
			PercentageText:         percentageText(stat.TargetMatch.ExactMatchProbability),
			EquivalentGeneralCount: stat.TargetMatch.EquivalentGeneralCount,
			EggsEstimate:           stat.TargetMatch.EggsEstimate,
			Explanation:            stat.TargetMatch.Explanation,
		}
	}

	return output
}

func percentageText(p float64) string {
	return fmt.Sprintf("%.4f%%", p*100)
}
