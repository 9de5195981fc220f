package catalog

import (
	"github.com/hatchforge/brood-api/internal/entities"
)

// SpeciesSummary is the lightweight species shape used by search,
// browse, and compatibility listings.
type SpeciesSummary struct {
	ID          int
	Name        string
	PortraitURL string
}

// SearchInput contains parameters for name search
type SearchInput struct {
	// Query matches anywhere in the species name
	Query string
	// Limit caps the result count (default 10, max 50)
	Limit int
}

// SearchOutput contains the matching species in bestiary order
type SearchOutput struct {
	Results []SpeciesSummary
}

// BrowseInput contains filter parameters for the browse panel
type BrowseInput struct {
	// Name filters by substring when non-empty
	Name string
	// KinGroupID filters to a single kin group when positive
	KinGroupID int
	// KinGroupIDs filters to species in any of the given kin groups,
	// plus universal donors. Used for the compatibility lock.
	KinGroupIDs []int
	// Limit caps the page size (default 50, max 200)
	Limit int
	// Offset is the pagination offset
	Offset int
}

// BrowseOutput contains one page of breedable species plus the total
// match count before paging
type BrowseOutput struct {
	Total   int
	Results []SpeciesSummary
}

// GetSpeciesInput contains parameters for the species detail lookup
type GetSpeciesInput struct {
	ID int
}

// GetSpeciesOutput contains the full species record
type GetSpeciesOutput struct {
	Species *entities.Species
}

// ListCompatibleInput contains parameters for partner listing
type ListCompatibleInput struct {
	ID int
}

// ListCompatibleOutput contains every valid breeding partner in
// bestiary order
type ListCompatibleOutput struct {
	Results []SpeciesSummary
}

// ListTemperamentsInput contains parameters for the temperament catalog
type ListTemperamentsInput struct{}

// ListTemperamentsOutput contains the temperament catalog
type ListTemperamentsOutput struct {
	Temperaments []entities.Temperament
}

// ListKinGroupsInput contains parameters for the kin group catalog
type ListKinGroupsInput struct{}

// ListKinGroupsOutput contains the kin group catalog
type ListKinGroupsOutput struct {
	KinGroups []entities.KinGroup
}

// SyncInput contains parameters for the catalog sync
type SyncInput struct{}

// SyncOutput summarizes what a catalog sync did
type SyncOutput struct {
	UpstreamCount int
	StoredBefore  int
	Added         int
	Failed        int
}
