// Package catalog implements the reference-data orchestrator for the
// species catalog: search, browse, compatibility, and upstream sync.
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/hatchforge/brood-api/internal/orchestrators/catalog Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hatchforge/brood-api/internal/clients/external"
	"github.com/hatchforge/brood-api/internal/entities"
	"github.com/hatchforge/brood-api/internal/errors"
	"github.com/hatchforge/brood-api/internal/repositories/species"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50

	defaultBrowseLimit = 50
	maxBrowseLimit     = 200
)

// Service defines the interface for catalog operations
type Service interface {
	// Search matches species by name substring
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)

	// Browse lists breedable species with filters and pagination
	Browse(ctx context.Context, input *BrowseInput) (*BrowseOutput, error)

	// GetSpecies returns the full record for one species
	GetSpecies(ctx context.Context, input *GetSpeciesInput) (*GetSpeciesOutput, error)

	// ListCompatible returns every valid breeding partner for a species
	ListCompatible(ctx context.Context, input *ListCompatibleInput) (*ListCompatibleOutput, error)

	// ListTemperaments returns the temperament catalog
	ListTemperaments(ctx context.Context, input *ListTemperamentsInput) (*ListTemperamentsOutput, error)

	// ListKinGroups returns the kin group catalog
	ListKinGroups(ctx context.Context, input *ListKinGroupsInput) (*ListKinGroupsOutput, error)

	// Sync reconciles the local catalog against upstream, fetching
	// only what is missing
	Sync(ctx context.Context, input *SyncInput) (*SyncOutput, error)
}

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	SpeciesRepo    species.Repository
	ExternalClient external.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SpeciesRepo == nil {
		vb.RequiredField("SpeciesRepo")
	}
	if c.ExternalClient == nil {
		vb.RequiredField("ExternalClient")
	}

	return vb.Build()
}

type orchestrator struct {
	speciesRepo species.Repository
	external    external.Client
}

// NewOrchestrator creates a new catalog orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		speciesRepo: cfg.SpeciesRepo,
		external:    cfg.ExternalClient,
	}, nil
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)

// Search matches species by name substring
func (o *orchestrator) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	query := strings.ToLower(strings.TrimSpace(input.Query))
	if query == "" {
		return nil, errors.InvalidArgument("search query is required")
	}

	limit := clampLimit(input.Limit, defaultSearchLimit, maxSearchLimit)

	listOutput, err := o.speciesRepo.List(ctx, species.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list species")
	}

	var results []SpeciesSummary
	for _, sp := range listOutput.Species {
		if !strings.Contains(sp.Name, query) {
			continue
		}
		results = append(results, summarize(sp))
		if len(results) == limit {
			break
		}
	}

	return &SearchOutput{Results: results}, nil
}

// Browse lists breedable species with filters and pagination
func (o *orchestrator) Browse(ctx context.Context, input *BrowseInput) (*BrowseOutput, error) {
	limit := clampLimit(input.Limit, defaultBrowseLimit, maxBrowseLimit)
	if input.Offset < 0 {
		return nil, errors.InvalidArgument("offset cannot be negative")
	}

	listOutput, err := o.speciesRepo.List(ctx, species.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list species")
	}

	name := strings.ToLower(strings.TrimSpace(input.Name))

	var matched []SpeciesSummary
	for _, sp := range listOutput.Species {
		if !sp.IsBreedable {
			continue
		}
		if name != "" && !strings.Contains(sp.Name, name) {
			continue
		}
		if input.KinGroupID > 0 && !inKinGroup(sp, []int{input.KinGroupID}) {
			continue
		}
		// The compatibility lock keeps universal donors visible since
		// they pair with anything
		if len(input.KinGroupIDs) > 0 && !inKinGroup(sp, input.KinGroupIDs) && !sp.IsUniversalDonor {
			continue
		}
		matched = append(matched, summarize(sp))
	}

	total := len(matched)
	start := input.Offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &BrowseOutput{
		Total:   total,
		Results: matched[start:end],
	}, nil
}

// GetSpecies returns the full record for one species
func (o *orchestrator) GetSpecies(ctx context.Context, input *GetSpeciesInput) (*GetSpeciesOutput, error) {
	getOutput, err := o.speciesRepo.Get(ctx, species.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	return &GetSpeciesOutput{Species: getOutput.Species}, nil
}

// ListCompatible returns every valid breeding partner for a species.
// Partner rules: shared kin group, sealed species never breed, a
// universal donor pairs with any breedable species except another donor.
func (o *orchestrator) ListCompatible(ctx context.Context, input *ListCompatibleInput) (*ListCompatibleOutput, error) {
	getOutput, err := o.speciesRepo.Get(ctx, species.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	parent := getOutput.Species

	if !parent.IsBreedable {
		return nil, errors.FailedPreconditionf("%s is in the sealed kin group and cannot breed", parent.Name)
	}

	listOutput, err := o.speciesRepo.List(ctx, species.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list species")
	}

	var results []SpeciesSummary
	if parent.IsUniversalDonor {
		for _, sp := range listOutput.Species {
			if !sp.IsBreedable || sp.IsUniversalDonor {
				continue
			}
			results = append(results, summarize(sp))
		}
		return &ListCompatibleOutput{Results: results}, nil
	}

	var donors []SpeciesSummary
	for _, sp := range listOutput.Species {
		if sp.ID == parent.ID || !sp.IsBreedable {
			continue
		}
		if sp.IsUniversalDonor {
			donors = append(donors, summarize(sp))
			continue
		}
		if parent.SharesKinGroup(sp) {
			results = append(results, summarize(sp))
		}
	}

	// Universal donors are always an option for a non-donor parent
	results = append(results, donors...)

	return &ListCompatibleOutput{Results: results}, nil
}

// ListTemperaments returns the temperament catalog
func (o *orchestrator) ListTemperaments(ctx context.Context, input *ListTemperamentsInput) (*ListTemperamentsOutput, error) {
	listOutput, err := o.speciesRepo.ListTemperaments(ctx, species.ListTemperamentsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list temperaments")
	}

	return &ListTemperamentsOutput{Temperaments: listOutput.Temperaments}, nil
}

// ListKinGroups returns the kin group catalog
func (o *orchestrator) ListKinGroups(ctx context.Context, input *ListKinGroupsInput) (*ListKinGroupsOutput, error) {
	listOutput, err := o.speciesRepo.ListKinGroups(ctx, species.ListKinGroupsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list kin groups")
	}

	return &ListKinGroupsOutput{KinGroups: listOutput.KinGroups}, nil
}

// Sync reconciles the local catalog against upstream. Safe to run
// repeatedly: existing records are never refetched, and individual
// fetch failures are skipped rather than aborting the run.
func (o *orchestrator) Sync(ctx context.Context, input *SyncInput) (*SyncOutput, error) {
	if err := o.ensureCatalogs(ctx); err != nil {
		return nil, err
	}

	upstreamCount, err := o.external.GetSpeciesCount(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get upstream species count")
	}

	existing, err := o.existingIDs(ctx)
	if err != nil {
		return nil, err
	}

	output := &SyncOutput{
		UpstreamCount: upstreamCount,
		StoredBefore:  len(existing),
	}

	if len(existing) >= upstreamCount {
		slog.Info("Species catalog is up to date",
			"stored", len(existing),
			"upstream", upstreamCount,
		)
		return output, nil
	}

	slog.Info("Syncing species catalog",
		"stored", len(existing),
		"upstream", upstreamCount,
	)

	for id := 1; id <= upstreamCount; id++ {
		if _, ok := existing[id]; ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "sync canceled")
		}

		sp, err := o.external.GetSpecies(ctx, id)
		if err != nil {
			slog.Warn("Skipping species that failed to fetch",
				"species_id", id,
				"error", err,
			)
			output.Failed++
			continue
		}

		if _, err := o.speciesRepo.Put(ctx, species.PutInput{Species: sp}); err != nil {
			return nil, errors.Wrapf(err, "failed to store species %d", id)
		}
		output.Added++
	}

	if _, err := o.speciesRepo.MarkSynced(ctx, species.MarkSyncedInput{}); err != nil {
		return nil, errors.Wrap(err, "failed to record sync time")
	}

	slog.Info("Species catalog sync finished",
		"added", output.Added,
		"failed", output.Failed,
	)

	return output, nil
}

// ensureCatalogs seeds the temperament and kin group catalogs when the
// store has never been populated
func (o *orchestrator) ensureCatalogs(ctx context.Context) error {
	if _, err := o.speciesRepo.ListTemperaments(ctx, species.ListTemperamentsInput{}); err != nil {
		if !errors.IsFailedPrecondition(err) {
			return errors.Wrap(err, "failed to check temperament catalog")
		}

		temperaments, err := o.external.ListTemperaments(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to fetch temperaments")
		}
		if _, err := o.speciesRepo.PutTemperaments(ctx, species.PutTemperamentsInput{Temperaments: temperaments}); err != nil {
			return errors.Wrap(err, "failed to store temperaments")
		}
		slog.Info("Seeded temperament catalog", "count", len(temperaments))
	}

	if _, err := o.speciesRepo.ListKinGroups(ctx, species.ListKinGroupsInput{}); err != nil {
		if !errors.IsFailedPrecondition(err) {
			return errors.Wrap(err, "failed to check kin group catalog")
		}

		kinGroups, err := o.external.ListKinGroups(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to fetch kin groups")
		}
		if _, err := o.speciesRepo.PutKinGroups(ctx, species.PutKinGroupsInput{KinGroups: kinGroups}); err != nil {
			return errors.Wrap(err, "failed to store kin groups")
		}
		slog.Info("Seeded kin group catalog", "count", len(kinGroups))
	}

	return nil
}

// existingIDs returns the set of species IDs already in the store
func (o *orchestrator) existingIDs(ctx context.Context) (map[int]struct{}, error) {
	listOutput, err := o.speciesRepo.List(ctx, species.ListInput{})
	if err != nil {
		if errors.IsFailedPrecondition(err) {
			// Nothing stored yet
			return map[int]struct{}{}, nil
		}
		return nil, errors.Wrap(err, "failed to list stored species")
	}

	existing := make(map[int]struct{}, len(listOutput.Species))
	for _, sp := range listOutput.Species {
		existing[sp.ID] = struct{}{}
	}
	return existing, nil
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

func inKinGroup(sp *entities.Species, ids []int) bool {
	for _, kg := range sp.KinGroups {
		for _, id := range ids {
			if kg.ID == id {
				return true
			}
		}
	}
	return false
}

func summarize(sp *entities.Species) SpeciesSummary {
	return SpeciesSummary{
		ID:          sp.ID,
		Name:        sp.Name,
		PortraitURL: sp.PortraitURL,
	}
}
