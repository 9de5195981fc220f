package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	externalmock "github.com/hatchforge/brood-api/internal/clients/external/mock"
	"github.com/hatchforge/brood-api/internal/entities"
	"github.com/hatchforge/brood-api/internal/errors"
	"github.com/hatchforge/brood-api/internal/orchestrators/catalog"
	"github.com/hatchforge/brood-api/internal/repositories/species"
	speciesmock "github.com/hatchforge/brood-api/internal/repositories/species/mock"
)

var (
	verdantGroup = entities.KinGroup{ID: 1, Name: "verdant"}
	emberGroup   = entities.KinGroup{ID: 2, Name: "ember"}
	tideGroup    = entities.KinGroup{ID: 3, Name: "tide"}
	shifterGroup = entities.KinGroup{ID: 13, Name: "shifter"}
	sealedGroup  = entities.KinGroup{ID: 15, Name: "sealed"}
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *speciesmock.MockRepository
	mockExternal *externalmock.MockClient
	service      catalog.Service
	ctx          context.Context

	sproutling *entities.Species
	cindercub  *entities.Species
	aquapup    *entities.Species
	kinshift   *entities.Species
	apexmind   *entities.Species
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = speciesmock.NewMockRepository(s.ctrl)
	s.mockExternal = externalmock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	service, err := catalog.NewOrchestrator(&catalog.Config{
		SpeciesRepo:    s.mockRepo,
		ExternalClient: s.mockExternal,
	})
	s.Require().NoError(err)
	s.service = service

	s.sproutling = &entities.Species{
		ID: 1, Name: "sproutling", IsBreedable: true,
		KinGroups: []entities.KinGroup{verdantGroup},
	}
	s.cindercub = &entities.Species{
		ID: 4, Name: "cindercub", IsBreedable: true,
		KinGroups: []entities.KinGroup{emberGroup},
	}
	s.aquapup = &entities.Species{
		ID: 7, Name: "aquapup", IsBreedable: true,
		KinGroups: []entities.KinGroup{verdantGroup, tideGroup},
	}
	s.kinshift = &entities.Species{
		ID: 132, Name: "kinshift", IsBreedable: true, IsUniversalDonor: true,
		KinGroups: []entities.KinGroup{shifterGroup},
	}
	s.apexmind = &entities.Species{
		ID: 150, Name: "apexmind", IsBreedable: false,
		KinGroups: []entities.KinGroup{sealedGroup},
	}
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) allSpecies() *species.ListOutput {
	return &species.ListOutput{
		Species: []*entities.Species{s.sproutling, s.cindercub, s.aquapup, s.kinshift, s.apexmind},
	}
}

func (s *OrchestratorTestSuite) TestSearch() {
	s.mockRepo.EXPECT().
		List(s.ctx, species.ListInput{}).
		Return(s.allSpecies(), nil)

	output, err := s.service.Search(s.ctx, &catalog.SearchInput{Query: "pu"})
	s.Require().NoError(err)
	s.Require().Len(output.Results, 1)
	s.Equal("aquapup", output.Results[0].Name)
}

func (s *OrchestratorTestSuite) TestSearchRequiresQuery() {
	_, err := s.service.Search(s.ctx, &catalog.SearchInput{Query: "   "})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSearchHonorsLimit() {
	s.mockRepo.EXPECT().
		List(s.ctx, species.ListInput{}).
		Return(s.allSpecies(), nil)

	// "i" matches four species; the limit keeps the first two by ID
	output, err := s.service.Search(s.ctx, &catalog.SearchInput{Query: "i", Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(output.Results, 2)
	s.Equal(1, output.Results[0].ID)
	s.Equal(4, output.Results[1].ID)
}

func (s *OrchestratorTestSuite) TestBrowseExcludesSealed() {
	s.mockRepo.EXPECT().
		List(s.ctx, species.ListInput{}).
		Return(s.allSpecies(), nil)

	output, err := s.service.Browse(s.ctx, &catalog.BrowseInput{})
	s.Require().NoError(err)
	s.Equal(4, output.Total)
	for _, r := range output.Results {
		s.NotEqual("apexmind", r.Name)
	}
}

func (s *OrchestratorTestSuite) TestBrowseFilters() {
	s.Run("by name", func() {
		s.mockRepo.EXPECT().
			List(s.ctx, species.ListInput{}).
			Return(s.allSpecies(), nil)

		output, err := s.service.Browse(s.ctx, &catalog.BrowseInput{Name: "Cinder"})
		s.Require().NoError(err)
		s.Equal(1, output.Total)
		s.Equal("cindercub", output.Results[0].Name)
	})

	s.Run("by kin group", func() {
		s.mockRepo.EXPECT().
			List(s.ctx, species.ListInput{}).
			Return(s.allSpecies(), nil)

		output, err := s.service.Browse(s.ctx, &catalog.BrowseInput{KinGroupID: verdantGroup.ID})
		s.Require().NoError(err)
		s.Equal(2, output.Total)
		s.Equal("sproutling", output.Results[0].Name)
		s.Equal("aquapup", output.Results[1].Name)
	})

	s.Run("compatibility lock keeps universal donors", func() {
		s.mockRepo.EXPECT().
			List(s.ctx, species.ListInput{}).
			Return(s.allSpecies(), nil)

		output, err := s.service.Browse(s.ctx, &catalog.BrowseInput{KinGroupIDs: []int{emberGroup.ID}})
		s.Require().NoError(err)
		s.Equal(2, output.Total)
		s.Equal("cindercub", output.Results[0].Name)
		s.Equal("kinshift", output.Results[1].Name)
	})
}

func (s *OrchestratorTestSuite) TestBrowsePagination() {
	s.mockRepo.EXPECT().
		List(s.ctx, species.ListInput{}).
		Return(s.allSpecies(), nil).
		Times(2)

	page1, err := s.service.Browse(s.ctx, &catalog.BrowseInput{Limit: 3})
	s.Require().NoError(err)
	s.Equal(4, page1.Total)
	s.Len(page1.Results, 3)

	page2, err := s.service.Browse(s.ctx, &catalog.BrowseInput{Limit: 3, Offset: 3})
	s.Require().NoError(err)
	s.Equal(4, page2.Total)
	s.Require().Len(page2.Results, 1)
	s.Equal("kinshift", page2.Results[0].Name)
}

func (s *OrchestratorTestSuite) TestBrowseRejectsNegativeOffset() {
	_, err := s.service.Browse(s.ctx, &catalog.BrowseInput{Offset: -1})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetSpecies() {
	s.mockRepo.EXPECT().
		Get(s.ctx, species.GetInput{ID: 1}).
		Return(&species.GetOutput{Species: s.sproutling}, nil)

	output, err := s.service.GetSpecies(s.ctx, &catalog.GetSpeciesInput{ID: 1})
	s.Require().NoError(err)
	s.Equal(s.sproutling, output.Species)
}

func (s *OrchestratorTestSuite) TestGetSpeciesNotFound() {
	s.mockRepo.EXPECT().
		Get(s.ctx, species.GetInput{ID: 9999}).
		Return(nil, errors.NotFound("species 9999 not found"))

	_, err := s.service.GetSpecies(s.ctx, &catalog.GetSpeciesInput{ID: 9999})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListCompatible() {
	s.mockRepo.EXPECT().
		Get(s.ctx, species.GetInput{ID: 1}).
		Return(&species.GetOutput{Species: s.sproutling}, nil)
	s.mockRepo.EXPECT().
		List(s.ctx, species.ListInput{}).
		Return(s.allSpecies(), nil)

	output, err := s.service.ListCompatible(s.ctx, &catalog.ListCompatibleInput{ID: 1})
	s.Require().NoError(err)

	// Shared kin group match plus the universal donor, never self or sealed
	s.Require().Len(output.Results, 2)
	s.Equal("aquapup", output.Results[0].Name)
	s.Equal("kinshift", output.Results[1].Name)
}

func (s *OrchestratorTestSuite) TestListCompatibleForUniversalDonor() {
	s.mockRepo.EXPECT().
		Get(s.ctx, species.GetInput{ID: 132}).
		Return(&species.GetOutput{Species: s.kinshift}, nil)
	s.mockRepo.EXPECT().
		List(s.ctx, species.ListInput{}).
		Return(s.allSpecies(), nil)

	output, err := s.service.ListCompatible(s.ctx, &catalog.ListCompatibleInput{ID: 132})
	s.Require().NoError(err)

	// Every breedable species except other donors
	s.Require().Len(output.Results, 3)
	s.Equal("sproutling", output.Results[0].Name)
	s.Equal("cindercub", output.Results[1].Name)
	s.Equal("aquapup", output.Results[2].Name)
}

func (s *OrchestratorTestSuite) TestListCompatibleSealedParent() {
	s.mockRepo.EXPECT().
		Get(s.ctx, species.GetInput{ID: 150}).
		Return(&species.GetOutput{Species: s.apexmind}, nil)

	_, err := s.service.ListCompatible(s.ctx, &catalog.ListCompatibleInput{ID: 150})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestSyncUpToDate() {
	s.mockRepo.EXPECT().
		ListTemperaments(s.ctx, species.ListTemperamentsInput{}).
		Return(&species.ListTemperamentsOutput{}, nil)
	s.mockRepo.EXPECT().
		ListKinGroups(s.ctx, species.ListKinGroupsInput{}).
		Return(&species.ListKinGroupsOutput{}, nil)
	s.mockExternal.EXPECT().
		GetSpeciesCount(s.ctx).
		Return(5, nil)
	s.mockRepo.EXPECT().
		List(s.ctx, species.ListInput{}).
		Return(s.allSpecies(), nil)

	output, err := s.service.Sync(s.ctx, &catalog.SyncInput{})
	s.Require().NoError(err)
	s.Equal(5, output.UpstreamCount)
	s.Equal(5, output.StoredBefore)
	s.Equal(0, output.Added)
	s.Equal(0, output.Failed)
}

func (s *OrchestratorTestSuite) TestSyncFromEmptyStore() {
	temperaments := []entities.Temperament{{ID: 1, Name: "stalwart"}}
	kinGroups := []entities.KinGroup{verdantGroup, sealedGroup}

	// Catalogs not seeded yet
	s.mockRepo.EXPECT().
		ListTemperaments(s.ctx, species.ListTemperamentsInput{}).
		Return(nil, errors.FailedPrecondition("not seeded"))
	s.mockExternal.EXPECT().
		ListTemperaments(s.ctx).
		Return(temperaments, nil)
	s.mockRepo.EXPECT().
		PutTemperaments(s.ctx, species.PutTemperamentsInput{Temperaments: temperaments}).
		Return(&species.PutTemperamentsOutput{Count: 1}, nil)

	s.mockRepo.EXPECT().
		ListKinGroups(s.ctx, species.ListKinGroupsInput{}).
		Return(nil, errors.FailedPrecondition("not seeded"))
	s.mockExternal.EXPECT().
		ListKinGroups(s.ctx).
		Return(kinGroups, nil)
	s.mockRepo.EXPECT().
		PutKinGroups(s.ctx, species.PutKinGroupsInput{KinGroups: kinGroups}).
		Return(&species.PutKinGroupsOutput{Count: 2}, nil)

	s.mockExternal.EXPECT().
		GetSpeciesCount(s.ctx).
		Return(3, nil)
	s.mockRepo.EXPECT().
		List(s.ctx, species.ListInput{}).
		Return(nil, errors.FailedPrecondition("not seeded"))

	// Species 2 fails upstream and is skipped, the rest are stored
	s.mockExternal.EXPECT().GetSpecies(s.ctx, 1).Return(s.sproutling, nil)
	s.mockExternal.EXPECT().GetSpecies(s.ctx, 2).Return(nil, errors.Unavailable("upstream down"))
	s.mockExternal.EXPECT().GetSpecies(s.ctx, 3).Return(s.aquapup, nil)

	s.mockRepo.EXPECT().
		Put(s.ctx, species.PutInput{Species: s.sproutling}).
		Return(&species.PutOutput{Species: s.sproutling}, nil)
	s.mockRepo.EXPECT().
		Put(s.ctx, species.PutInput{Species: s.aquapup}).
		Return(&species.PutOutput{Species: s.aquapup}, nil)

	s.mockRepo.EXPECT().
		MarkSynced(s.ctx, species.MarkSyncedInput{}).
		Return(&species.MarkSyncedOutput{}, nil)

	output, err := s.service.Sync(s.ctx, &catalog.SyncInput{})
	s.Require().NoError(err)
	s.Equal(3, output.UpstreamCount)
	s.Equal(0, output.StoredBefore)
	s.Equal(2, output.Added)
	s.Equal(1, output.Failed)
}

func (s *OrchestratorTestSuite) TestSyncOnlyFetchesMissing() {
	stored := &species.ListOutput{
		Species: []*entities.Species{s.sproutling, s.cindercub},
	}

	s.mockRepo.EXPECT().
		ListTemperaments(s.ctx, species.ListTemperamentsInput{}).
		Return(&species.ListTemperamentsOutput{}, nil)
	s.mockRepo.EXPECT().
		ListKinGroups(s.ctx, species.ListKinGroupsInput{}).
		Return(&species.ListKinGroupsOutput{}, nil)
	s.mockExternal.EXPECT().
		GetSpeciesCount(s.ctx).
		Return(7, nil)
	s.mockRepo.EXPECT().
		List(s.ctx, species.ListInput{}).
		Return(stored, nil)

	// IDs 1 and 4 are already stored; only the gaps are fetched
	for _, id := range []int{2, 3, 5, 6, 7} {
		sp := &entities.Species{ID: id, Name: "filler", IsBreedable: true}
		s.mockExternal.EXPECT().GetSpecies(s.ctx, id).Return(sp, nil)
		s.mockRepo.EXPECT().
			Put(s.ctx, species.PutInput{Species: sp}).
			Return(&species.PutOutput{Species: sp}, nil)
	}

	s.mockRepo.EXPECT().
		MarkSynced(s.ctx, species.MarkSyncedInput{}).
		Return(&species.MarkSyncedOutput{}, nil)

	output, err := s.service.Sync(s.ctx, &catalog.SyncInput{})
	s.Require().NoError(err)
	s.Equal(2, output.StoredBefore)
	s.Equal(5, output.Added)
	s.Equal(0, output.Failed)
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := catalog.NewOrchestrator(&catalog.Config{})
	s.Require().Error(err)
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
