// Package external is the client for the upstream bestiary API
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/hatchforge/brood-api/internal/clients/external Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hatchforge/brood-api/internal/entities"
	"github.com/hatchforge/brood-api/internal/errors"
)

// axisIndexByName maps upstream stat axis names to our axis indexes
var axisIndexByName = map[string]int{
	"vitality": entities.AxisVitality,
	"power":    entities.AxisPower,
	"guard":    entities.AxisGuard,
	"insight":  entities.AxisInsight,
	"ward":     entities.AxisWard,
	"agility":  entities.AxisAgility,
}

// Client defines the interface for upstream bestiary interactions
type Client interface {
	// GetSpeciesCount returns how many species the upstream knows about
	GetSpeciesCount(ctx context.Context) (int, error)

	// GetSpecies fetches one species record by bestiary number
	GetSpecies(ctx context.Context, id int) (*entities.Species, error)

	// ListTemperaments fetches the full temperament catalog
	ListTemperaments(ctx context.Context) ([]entities.Temperament, error)

	// ListKinGroups fetches the full kin group catalog
	ListKinGroups(ctx context.Context) ([]entities.KinGroup, error)
}

// Config contains configuration options for the bestiary client.
type Config struct {
	// BaseURL of the upstream bestiary API
	BaseURL string
	// HTTPTimeout for individual requests (optional, defaults to 15 seconds)
	HTTPTimeout time.Duration
	// MaxRetries per request (optional, defaults to 3 attempts total)
	MaxRetries int
	// RetryBackoff is the first retry delay, doubled per attempt
	// (optional, defaults to 1 second)
	RetryBackoff time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		return errors.InvalidArgument("base URL is required")
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 15 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBackoff == 0 {
		cfg.RetryBackoff = time.Second
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	backoff    time.Duration
}

// New creates a new bestiary client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		maxRetries: cfg.MaxRetries,
		backoff:    cfg.RetryBackoff,
	}, nil
}

// Ensure client implements Client
var _ Client = (*client)(nil)

// GetSpeciesCount returns how many species the upstream knows about
func (c *client) GetSpeciesCount(ctx context.Context) (int, error) {
	var payload countPayload
	if err := c.fetchJSON(ctx, c.baseURL+"/species?limit=1", &payload); err != nil {
		return 0, errors.Wrap(err, "failed to fetch species count")
	}
	return payload.Count, nil
}

// GetSpecies fetches one species record by bestiary number
func (c *client) GetSpecies(ctx context.Context, id int) (*entities.Species, error) {
	if id <= 0 {
		return nil, errors.InvalidArgument("species ID must be positive")
	}

	var payload speciesPayload
	url := fmt.Sprintf("%s/species/%d", c.baseURL, id)
	if err := c.fetchJSON(ctx, url, &payload); err != nil {
		return nil, errors.Wrapf(err, "failed to fetch species %d", id)
	}

	return convertSpecies(&payload)
}

// ListTemperaments fetches the full temperament catalog
func (c *client) ListTemperaments(ctx context.Context) ([]entities.Temperament, error) {
	var list listPayload
	if err := c.fetchJSON(ctx, c.baseURL+"/temperaments?limit=50", &list); err != nil {
		return nil, errors.Wrap(err, "failed to fetch temperament list")
	}

	temperaments := make([]entities.Temperament, 0, len(list.Results))
	for _, ref := range list.Results {
		var payload temperamentPayload
		if err := c.fetchJSON(ctx, ref.URL, &payload); err != nil {
			return nil, errors.Wrapf(err, "failed to fetch temperament %q", ref.Name)
		}

		t := entities.Temperament{
			ID:   payload.ID,
			Name: payload.Name,
		}
		if payload.RaisedStat != nil {
			t.RaisedStat = payload.RaisedStat.Name
		}
		if payload.LoweredStat != nil {
			t.LoweredStat = payload.LoweredStat.Name
		}
		temperaments = append(temperaments, t)
	}

	return temperaments, nil
}

// ListKinGroups fetches the full kin group catalog
func (c *client) ListKinGroups(ctx context.Context) ([]entities.KinGroup, error) {
	var list listPayload
	if err := c.fetchJSON(ctx, c.baseURL+"/kin-groups?limit=30", &list); err != nil {
		return nil, errors.Wrap(err, "failed to fetch kin group list")
	}

	kinGroups := make([]entities.KinGroup, 0, len(list.Results))
	for _, ref := range list.Results {
		var payload kinGroupPayload
		if err := c.fetchJSON(ctx, ref.URL, &payload); err != nil {
			return nil, errors.Wrapf(err, "failed to fetch kin group %q", ref.Name)
		}
		kinGroups = append(kinGroups, entities.KinGroup{
			ID:   payload.ID,
			Name: payload.Name,
		})
	}

	return kinGroups, nil
}

// fetchJSON performs a GET with retries and exponential backoff and
// decodes the response body into out.
func (c *client) fetchJSON(ctx context.Context, url string, out any) error {
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			wait := c.backoff << (attempt - 1)
			select {
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "request canceled")
			case <-time.After(wait):
			}
		}

		lastErr = c.fetchJSONOnce(ctx, url, out)
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return lastErr
		}
	}

	return errors.WrapWithCode(lastErr, errors.CodeUnavailable,
		fmt.Sprintf("upstream unavailable after %d attempts", c.maxRetries))
}

func (c *client) fetchJSONOnce(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to build request for %s", url)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "request to %s failed", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return errors.Newf(errors.CodeUnavailable, "%s returned status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode response from %s", url)
	}

	return nil
}

// convertSpecies maps an upstream species payload to our entity.
func convertSpecies(payload *speciesPayload) (*entities.Species, error) {
	if payload.ID <= 0 || payload.Name == "" {
		return nil, errors.Internal("upstream species record is missing ID or name")
	}

	sp := &entities.Species{
		ID:               payload.ID,
		Name:             payload.Name,
		PortraitURL:      payload.PortraitURL,
		IsBreedable:      true,
		IsUniversalDonor: payload.IsUniversalDonor,
	}

	for _, sv := range payload.Stats {
		idx, ok := axisIndexByName[sv.Axis.Name]
		if !ok {
			// Unknown axes may appear when the upstream adds mechanics
			// we do not model yet
			continue
		}
		sp.BaseStats[idx] = sv.BaseValue
	}

	// Upstream scale: -1 sexless, otherwise eighths of a female chance
	if payload.FemaleEighths == -1 {
		sp.FemaleRatio = -1
	} else {
		sp.FemaleRatio = float64(payload.FemaleEighths) * 12.5
	}

	for _, ref := range payload.KinGroups {
		id, err := idFromURL(ref.URL)
		if err != nil {
			return nil, errors.Wrapf(err, "bad kin group reference for species %d", payload.ID)
		}
		if ref.Name == entities.SealedKinGroupName {
			sp.IsBreedable = false
		}
		sp.KinGroups = append(sp.KinGroups, entities.KinGroup{
			ID:   id,
			Name: ref.Name,
		})
	}

	for _, entry := range payload.Talents {
		id, err := idFromURL(entry.Talent.URL)
		if err != nil {
			return nil, errors.Wrapf(err, "bad talent reference for species %d", payload.ID)
		}
		sp.Talents = append(sp.Talents, entities.TalentSlot{
			ID:       id,
			Name:     entry.Talent.Name,
			IsHidden: entry.IsHidden,
		})
	}

	return sp, nil
}

// idFromURL extracts the trailing numeric ID of a resource URL,
// e.g. ".../talents/34/" -> 34.
func idFromURL(url string) (int, error) {
	trimmed := strings.TrimRight(url, "/")
	slash := strings.LastIndex(trimmed, "/")
	if slash < 0 || slash == len(trimmed)-1 {
		return 0, errors.InvalidArgumentf("no ID segment in URL %q", url)
	}

	id, err := strconv.Atoi(trimmed[slash+1:])
	if err != nil {
		return 0, errors.InvalidArgumentf("non-numeric ID in URL %q", url)
	}
	return id, nil
}
