package species

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/hatchforge/brood-api/internal/entities"
	"github.com/hatchforge/brood-api/internal/errors"
	"github.com/hatchforge/brood-api/internal/pkg/clock"
	redisclient "github.com/hatchforge/brood-api/internal/redis"
)

const (
	// Key pattern: species:{id}
	speciesKeyPrefix = "species:"
	speciesIDSetKey  = "species:ids"
	temperamentsKey  = "catalog:temperaments"
	kinGroupsKey     = "catalog:kin_groups"
	lastSyncKey      = "catalog:last_sync"

	// Error messages
	errSpeciesNil     = "species cannot be nil"
	errSpeciesIDZero  = "species ID must be positive"
	errSpeciesNoName  = "species name cannot be empty"
	errCatalogEmpty   = "catalog cannot be empty"
	errNotSeeded      = "species catalog has not been seeded"
	errTemperamentsNS = "temperament catalog has not been seeded"
	errKinGroupsNS    = "kin group catalog has not been seeded"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for the species catalog
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get retrieves a species by bestiary number
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errSpeciesIDZero)
	}

	data, err := r.client.Get(ctx, r.buildKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("species %d not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get species %d from Redis", input.ID)
	}

	var sp entities.Species
	if err := json.Unmarshal([]byte(data), &sp); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal species %d", input.ID)
	}

	return &GetOutput{
		Species: &sp,
	}, nil
}

// Put stores or replaces a species and indexes it for listing
func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Species == nil {
		return nil, errors.InvalidArgument(errSpeciesNil)
	}
	if input.Species.ID <= 0 {
		return nil, errors.InvalidArgument(errSpeciesIDZero)
	}
	if input.Species.Name == "" {
		return nil, errors.InvalidArgument(errSpeciesNoName)
	}

	data, err := json.Marshal(input.Species)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal species")
	}

	// Record and index membership in one round trip
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.buildKey(input.Species.ID), data, 0)
	pipe.SAdd(ctx, speciesIDSetKey, input.Species.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store species in Redis")
	}

	return &PutOutput{
		Species: input.Species,
	}, nil
}

// List returns every stored species ordered by bestiary number
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, speciesIDSetKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list species IDs from Redis")
	}
	if len(ids) == 0 {
		return nil, errors.FailedPrecondition(errNotSeeded)
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		n, err := strconv.Atoi(id)
		if err != nil {
			// Skip anything foreign that ended up in the index set
			continue
		}
		keys = append(keys, r.buildKey(n))
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load species from Redis")
	}

	list := make([]*entities.Species, 0, len(values))
	for _, v := range values {
		data, ok := v.(string)
		if !ok {
			// Indexed ID whose record was deleted out of band
			continue
		}
		var sp entities.Species
		if err := json.Unmarshal([]byte(data), &sp); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal species record")
		}
		list = append(list, &sp)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})

	return &ListOutput{
		Species: list,
	}, nil
}

// Count returns the number of stored species
func (r *redisRepository) Count(ctx context.Context, input CountInput) (*CountOutput, error) {
	n, err := r.client.SCard(ctx, speciesIDSetKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count species in Redis")
	}

	return &CountOutput{
		Count: n,
	}, nil
}

// PutTemperaments replaces the temperament catalog
func (r *redisRepository) PutTemperaments(ctx context.Context, input PutTemperamentsInput) (*PutTemperamentsOutput, error) {
	if len(input.Temperaments) == 0 {
		return nil, errors.InvalidArgument(errCatalogEmpty)
	}

	if err := r.putCatalog(ctx, temperamentsKey, input.Temperaments); err != nil {
		return nil, err
	}

	return &PutTemperamentsOutput{
		Count: len(input.Temperaments),
	}, nil
}

// ListTemperaments returns the stored temperament catalog
func (r *redisRepository) ListTemperaments(ctx context.Context, input ListTemperamentsInput) (*ListTemperamentsOutput, error) {
	var temperaments []entities.Temperament
	if err := r.getCatalog(ctx, temperamentsKey, errTemperamentsNS, &temperaments); err != nil {
		return nil, err
	}

	return &ListTemperamentsOutput{
		Temperaments: temperaments,
	}, nil
}

// PutKinGroups replaces the kin group catalog
func (r *redisRepository) PutKinGroups(ctx context.Context, input PutKinGroupsInput) (*PutKinGroupsOutput, error) {
	if len(input.KinGroups) == 0 {
		return nil, errors.InvalidArgument(errCatalogEmpty)
	}

	if err := r.putCatalog(ctx, kinGroupsKey, input.KinGroups); err != nil {
		return nil, err
	}

	return &PutKinGroupsOutput{
		Count: len(input.KinGroups),
	}, nil
}

// ListKinGroups returns the stored kin group catalog
func (r *redisRepository) ListKinGroups(ctx context.Context, input ListKinGroupsInput) (*ListKinGroupsOutput, error) {
	var kinGroups []entities.KinGroup
	if err := r.getCatalog(ctx, kinGroupsKey, errKinGroupsNS, &kinGroups); err != nil {
		return nil, err
	}

	return &ListKinGroupsOutput{
		KinGroups: kinGroups,
	}, nil
}

// MarkSynced records that a catalog sync finished now
func (r *redisRepository) MarkSynced(ctx context.Context, input MarkSyncedInput) (*MarkSyncedOutput, error) {
	now := r.clock.Now()

	err := r.client.Set(ctx, lastSyncKey, now.UTC().Format(time.RFC3339), 0).Err()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to record sync time in Redis")
	}

	return &MarkSyncedOutput{
		SyncedAt: now,
	}, nil
}

// LastSynced returns when the catalog last finished a sync
func (r *redisRepository) LastSynced(ctx context.Context, input LastSyncedInput) (*LastSyncedOutput, error) {
	data, err := r.client.Get(ctx, lastSyncKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &LastSyncedOutput{Synced: false}, nil
		}
		return nil, errors.Wrapf(err, "failed to read sync time from Redis")
	}

	syncedAt, err := time.Parse(time.RFC3339, data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse stored sync time %q", data)
	}

	return &LastSyncedOutput{
		SyncedAt: syncedAt,
		Synced:   true,
	}, nil
}

func (r *redisRepository) putCatalog(ctx context.Context, key string, catalog any) error {
	data, err := json.Marshal(catalog)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal catalog %s", key)
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store catalog %s in Redis", key)
	}

	return nil
}

func (r *redisRepository) getCatalog(ctx context.Context, key, missingMsg string, out any) error {
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return errors.FailedPrecondition(missingMsg)
		}
		return errors.Wrapf(err, "failed to get catalog %s from Redis", key)
	}

	if err := json.Unmarshal([]byte(data), out); err != nil {
		return errors.Wrapf(err, "failed to unmarshal catalog %s", key)
	}

	return nil
}

// buildKey creates the Redis key for a species record
func (r *redisRepository) buildKey(id int) string {
	return fmt.Sprintf("%s%d", speciesKeyPrefix, id)
}
