package breeding_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/hatchforge/brood-api/internal/engine"
	enginemock "github.com/hatchforge/brood-api/internal/engine/mock"
	"github.com/hatchforge/brood-api/internal/entities"
	"github.com/hatchforge/brood-api/internal/errors"
	"github.com/hatchforge/brood-api/internal/orchestrators/breeding"
	"github.com/hatchforge/brood-api/internal/pkg/idgen"
	"github.com/hatchforge/brood-api/internal/repositories/species"
	speciesmock "github.com/hatchforge/brood-api/internal/repositories/species/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRepo   *speciesmock.MockRepository
	mockEngine *enginemock.MockEngine
	service    breeding.Service
	ctx        context.Context

	mother   *entities.Species
	father   *entities.Species
	donor    *entities.Species
	donorTwo *entities.Species
	sealed   *entities.Species
	stranger *entities.Species
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = speciesmock.NewMockRepository(s.ctrl)
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.ctx = context.Background()

	service, err := breeding.NewOrchestrator(&breeding.Config{
		SpeciesRepo: s.mockRepo,
		Engine:      s.mockEngine,
		IDGenerator: idgen.NewSequential("calc"),
	})
	s.Require().NoError(err)
	s.service = service

	verdant := entities.KinGroup{ID: 1, Name: "verdant"}
	ember := entities.KinGroup{ID: 2, Name: "ember"}

	s.mother = &entities.Species{
		ID: 1, Name: "sproutling", IsBreedable: true,
		KinGroups: []entities.KinGroup{verdant},
		Talents: []entities.TalentSlot{
			{ID: 10, Name: "overgrowth"},
			{ID: 34, Name: "lush-canopy", IsHidden: true},
		},
	}
	s.father = &entities.Species{
		ID: 7, Name: "aquapup", IsBreedable: true,
		KinGroups: []entities.KinGroup{verdant},
		Talents: []entities.TalentSlot{
			{ID: 11, Name: "torrent"},
			{ID: 12, Name: "undertow"},
		},
	}
	s.donor = &entities.Species{
		ID: 132, Name: "kinshift", IsBreedable: true, IsUniversalDonor: true,
		KinGroups: []entities.KinGroup{{ID: 13, Name: "shifter"}},
	}
	s.donorTwo = &entities.Species{
		ID: 133, Name: "kinshade", IsBreedable: true, IsUniversalDonor: true,
		KinGroups: []entities.KinGroup{{ID: 13, Name: "shifter"}},
	}
	s.sealed = &entities.Species{
		ID: 150, Name: "apexmind", IsBreedable: false,
		KinGroups: []entities.KinGroup{{ID: 15, Name: "sealed"}},
	}
	s.stranger = &entities.Species{
		ID: 4, Name: "cindercub", IsBreedable: true,
		KinGroups: []entities.KinGroup{ember},
	}
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectParents(a, b *entities.Species) {
	s.mockRepo.EXPECT().
		Get(s.ctx, species.GetInput{ID: a.ID}).
		Return(&species.GetOutput{Species: a}, nil)
	s.mockRepo.EXPECT().
		Get(s.ctx, species.GetInput{ID: b.ID}).
		Return(&species.GetOutput{Species: b}, nil)
}

func (s *OrchestratorTestSuite) expectCatalogSize(n int) {
	temperaments := make([]entities.Temperament, n)
	s.mockRepo.EXPECT().
		ListTemperaments(s.ctx, species.ListTemperamentsInput{}).
		Return(&species.ListTemperamentsOutput{Temperaments: temperaments}, nil)
}

func validInput(aID, bID int) *breeding.CalculateInput {
	return &breeding.CalculateInput{
		ParentA: breeding.ParentInput{
			SpeciesID: aID,
			Perfect:   []bool{true, true, true, true, true, false},
			Item:      "kindred_band",
			Talent:    "overgrowth",
		},
		ParentB: breeding.ParentInput{
			SpeciesID: bID,
			Perfect:   []bool{true, true, false, false, false, false},
			Item:      "",
		},
	}
}

func (s *OrchestratorTestSuite) TestCalculate() {
	input := validInput(1, 7)
	input.Target = []bool{true, true, true, false, false, false}

	s.expectParents(s.mother, s.father)
	s.expectCatalogSize(25)

	s.mockEngine.EXPECT().
		CalculateStatDistribution(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.StatDistributionInput) (*engine.StatDistributionOutput, error) {
			s.Equal(entities.HeldItemKindredBand, in.ItemA)
			s.Equal(entities.HeldItemNone, in.ItemB)
			s.Require().NotNil(in.Target)
			s.Equal(3, in.Target.PerfectCount())

			rows := make([]engine.StatOutcomeRow, 7)
			for i := range rows {
				rows[i] = engine.StatOutcomeRow{PerfectCount: i, Explanation: "row"}
			}
			rows[5].Probability = 0.96875
			rows[6].Probability = 0.03125
			return &engine.StatDistributionOutput{
				InheritedCount: 5,
				Rows:           rows,
				TargetMatch: &engine.TargetMatchResult{
					TargetAxes:             []string{"Vitality", "Power", "Guard"},
					ExactMatchProbability:  0.25,
					EquivalentGeneralCount: 3,
					EggsEstimate:           4,
					Explanation:            "target",
				},
			}, nil
		})

	s.mockEngine.EXPECT().
		CalculateTemperamentInheritance(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.TemperamentInheritanceInput) (*engine.TemperamentInheritanceOutput, error) {
			s.Equal(25, in.CatalogSize)
			return &engine.TemperamentInheritanceOutput{
				Probability: 1.0 / 25.0,
				Explanation: "uniform",
			}, nil
		})

	s.mockEngine.EXPECT().
		CalculateTalentInheritance(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.TalentInheritanceInput) (*engine.TalentInheritanceOutput, error) {
			s.Equal("overgrowth", in.ParentA.Carried)
			s.Equal([]string{"overgrowth"}, in.ParentA.RegularSlots)
			s.Equal([]string{"torrent", "undertow"}, in.ParentB.RegularSlots)
			s.False(in.AIsUniversalDonor)
			s.False(in.BIsUniversalDonor)

			return &engine.TalentInheritanceOutput{
				TalentName:  "overgrowth",
				Probability: 1.0,
				Outcomes: []engine.TalentOutcome{
					{Talent: "overgrowth", Probability: 1.0},
				},
				DonorParent: "A",
				Explanation: "single slot",
			}, nil
		})

	output, err := s.service.Calculate(s.ctx, input)
	s.Require().NoError(err)

	s.Equal("calc_1", output.CalculationID)
	s.Equal("sproutling", output.ParentALabel)
	s.Equal("aquapup", output.ParentBLabel)
	s.Equal("kindred_band", output.HeldItemA)
	s.Equal("none", output.HeldItemB)
	s.Equal(5, output.InheritedCount)

	s.Require().Len(output.Results, 7)
	s.Equal("96.8750%", output.Results[5].PercentageText)
	s.Equal("3.1250%", output.Results[6].PercentageText)

	s.Require().NotNil(output.TargetMatch)
	s.Equal("25.0000%", output.TargetMatch.PercentageText)
	s.Equal(4, output.TargetMatch.EggsEstimate)

	s.Require().NotNil(output.Talent)
	s.Require().Len(output.Talent.Outcomes, 1)
	s.Equal("100.0000%", output.Talent.Outcomes[0].PercentageText)

	s.Require().NotNil(output.Temperament)
	s.InDelta(1.0/25.0, output.Temperament.Probability, 1e-12)
}

func (s *OrchestratorTestSuite) TestCalculateValidation() {
	testCases := []struct {
		name   string
		mangle func(*breeding.CalculateInput)
	}{
		{
			name: "short stat vector",
			mangle: func(in *breeding.CalculateInput) {
				in.ParentA.Perfect = []bool{true, true}
			},
		},
		{
			name: "long stat vector",
			mangle: func(in *breeding.CalculateInput) {
				in.ParentB.Perfect = make([]bool, 7)
			},
		},
		{
			name: "unknown item",
			mangle: func(in *breeding.CalculateInput) {
				in.ParentA.Item = "lucky_charm"
			},
		},
		{
			name: "bad target length",
			mangle: func(in *breeding.CalculateInput) {
				in.Target = []bool{true}
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			input := validInput(1, 7)
			tc.mangle(input)

			_, err := s.service.Calculate(s.ctx, input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestCalculateParentNotFound() {
	s.mockRepo.EXPECT().
		Get(s.ctx, species.GetInput{ID: 1}).
		Return(nil, errors.NotFound("species 1 not found"))

	_, err := s.service.Calculate(s.ctx, validInput(1, 7))
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCalculateSealedParent() {
	s.expectParents(s.mother, s.sealed)

	input := validInput(1, 150)
	_, err := s.service.Calculate(s.ctx, input)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Contains(err.Error(), "apexmind")
}

func (s *OrchestratorTestSuite) TestCalculateTwoUniversalDonors() {
	s.expectParents(s.donor, s.donorTwo)

	_, err := s.service.Calculate(s.ctx, validInput(132, 133))
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestCalculateNoSharedKinGroup() {
	s.expectParents(s.mother, s.stranger)

	_, err := s.service.Calculate(s.ctx, validInput(1, 4))
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Contains(err.Error(), "share no kin group")
}

func (s *OrchestratorTestSuite) TestCalculateDonorSkipsKinGroupCheck() {
	s.expectParents(s.mother, s.donor)
	s.expectCatalogSize(25)

	s.mockEngine.EXPECT().
		CalculateStatDistribution(s.ctx, gomock.Any()).
		Return(&engine.StatDistributionOutput{
			InheritedCount: 5,
			Rows:           make([]engine.StatOutcomeRow, 7),
		}, nil)
	s.mockEngine.EXPECT().
		CalculateTemperamentInheritance(s.ctx, gomock.Any()).
		Return(&engine.TemperamentInheritanceOutput{}, nil)
	s.mockEngine.EXPECT().
		CalculateTalentInheritance(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.TalentInheritanceInput) (*engine.TalentInheritanceOutput, error) {
			s.True(in.BIsUniversalDonor)
			return &engine.TalentInheritanceOutput{DonorParent: "A"}, nil
		})

	_, err := s.service.Calculate(s.ctx, validInput(1, 132))
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestCalculateUnseededTemperamentCatalog() {
	s.expectParents(s.mother, s.father)
	s.mockRepo.EXPECT().
		ListTemperaments(s.ctx, species.ListTemperamentsInput{}).
		Return(nil, errors.FailedPrecondition("not seeded"))

	s.mockEngine.EXPECT().
		CalculateStatDistribution(s.ctx, gomock.Any()).
		Return(&engine.StatDistributionOutput{
			InheritedCount: 3,
			Rows:           make([]engine.StatOutcomeRow, 7),
		}, nil)
	s.mockEngine.EXPECT().
		CalculateTemperamentInheritance(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.TemperamentInheritanceInput) (*engine.TemperamentInheritanceOutput, error) {
			// Zero lets the engine fall back to its default catalog size
			s.Equal(0, in.CatalogSize)
			return &engine.TemperamentInheritanceOutput{}, nil
		})
	s.mockEngine.EXPECT().
		CalculateTalentInheritance(s.ctx, gomock.Any()).
		Return(&engine.TalentInheritanceOutput{DonorParent: "A"}, nil)

	_, err := s.service.Calculate(s.ctx, validInput(1, 7))
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestCalculateEngineErrorPropagates() {
	s.expectParents(s.mother, s.father)
	s.expectCatalogSize(25)

	s.mockEngine.EXPECT().
		CalculateStatDistribution(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidArgument("conflicting effects"))
	s.mockEngine.EXPECT().
		CalculateTemperamentInheritance(s.ctx, gomock.Any()).
		Return(&engine.TemperamentInheritanceOutput{}, nil)
	s.mockEngine.EXPECT().
		CalculateTalentInheritance(s.ctx, gomock.Any()).
		Return(&engine.TalentInheritanceOutput{DonorParent: "A"}, nil)

	_, err := s.service.Calculate(s.ctx, validInput(1, 7))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := breeding.NewOrchestrator(&breeding.Config{})
	s.Require().Error(err)
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
