// Package species provides the repository interface and types for the
// species catalog backing the breeding and browse services.
package species

import (
	"context"
	"time"

	"github.com/hatchforge/brood-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=speciesmock github.com/hatchforge/brood-api/internal/repositories/species Repository

// GetInput contains parameters for retrieving a single species
type GetInput struct {
	ID int
}

// GetOutput contains the result of retrieving a single species
type GetOutput struct {
	Species *entities.Species
}

// PutInput contains parameters for storing a species
type PutInput struct {
	Species *entities.Species
}

// PutOutput contains the result of storing a species
type PutOutput struct {
	Species *entities.Species
}

// ListInput contains parameters for listing the full catalog
type ListInput struct{}

// ListOutput contains the catalog ordered by bestiary number
type ListOutput struct {
	Species []*entities.Species
}

// CountInput contains parameters for counting stored species
type CountInput struct{}

// CountOutput contains the number of stored species
type CountOutput struct {
	Count int64
}

// PutTemperamentsInput contains the temperament catalog to store
type PutTemperamentsInput struct {
	Temperaments []entities.Temperament
}

// PutTemperamentsOutput contains the result of storing the temperament catalog
type PutTemperamentsOutput struct {
	Count int
}

// ListTemperamentsInput contains parameters for listing temperaments
type ListTemperamentsInput struct{}

// ListTemperamentsOutput contains the temperament catalog in stored order
type ListTemperamentsOutput struct {
	Temperaments []entities.Temperament
}

// PutKinGroupsInput contains the kin group catalog to store
type PutKinGroupsInput struct {
	KinGroups []entities.KinGroup
}

// PutKinGroupsOutput contains the result of storing the kin group catalog
type PutKinGroupsOutput struct {
	Count int
}

// ListKinGroupsInput contains parameters for listing kin groups
type ListKinGroupsInput struct{}

// ListKinGroupsOutput contains the kin group catalog in stored order
type ListKinGroupsOutput struct {
	KinGroups []entities.KinGroup
}

// MarkSyncedInput contains parameters for recording a completed sync
type MarkSyncedInput struct{}

// MarkSyncedOutput contains the recorded sync time
type MarkSyncedOutput struct {
	SyncedAt time.Time
}

// LastSyncedInput contains parameters for reading the last sync time
type LastSyncedInput struct{}

// LastSyncedOutput contains the last recorded sync time, if any
type LastSyncedOutput struct {
	SyncedAt time.Time
	Synced   bool
}

// Repository defines the interface for species catalog storage operations
type Repository interface {
	// Get retrieves a species by bestiary number
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores or replaces a species and indexes it for listing
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// List returns every stored species ordered by bestiary number
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Count returns the number of stored species
	Count(ctx context.Context, input CountInput) (*CountOutput, error)

	// PutTemperaments replaces the temperament catalog
	PutTemperaments(ctx context.Context, input PutTemperamentsInput) (*PutTemperamentsOutput, error)

	// ListTemperaments returns the stored temperament catalog
	ListTemperaments(ctx context.Context, input ListTemperamentsInput) (*ListTemperamentsOutput, error)

	// PutKinGroups replaces the kin group catalog
	PutKinGroups(ctx context.Context, input PutKinGroupsInput) (*PutKinGroupsOutput, error)

	// ListKinGroups returns the stored kin group catalog
	ListKinGroups(ctx context.Context, input ListKinGroupsInput) (*ListKinGroupsOutput, error)

	// MarkSynced records that a catalog sync finished now
	MarkSynced(ctx context.Context, input MarkSyncedInput) (*MarkSyncedOutput, error)

	// LastSynced returns when the catalog last finished a sync
	LastSynced(ctx context.Context, input LastSyncedInput) (*LastSyncedOutput, error)
}
