// Package v1alpha1 exposes the catalog and breeding services over JSON REST
package v1alpha1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/hatchforge/brood-api/internal/errors"
	"github.com/hatchforge/brood-api/internal/orchestrators/breeding"
	"github.com/hatchforge/brood-api/internal/orchestrators/catalog"
)

// HandlerConfig holds dependencies for the API handler
type HandlerConfig struct {
	CatalogService  catalog.Service
	BreedingService breeding.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CatalogService == nil {
		vb.RequiredField("CatalogService")
	}
	if c.BreedingService == nil {
		vb.RequiredField("BreedingService")
	}

	return vb.Build()
}

// Handler implements the v1alpha1 JSON API
type Handler struct {
	catalogService  catalog.Service
	breedingService breeding.Service
}

// NewHandler creates a new API handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		catalogService:  cfg.CatalogService,
		breedingService: cfg.BreedingService,
	}, nil
}

// NewMux builds the route table and wraps it with CORS
func (h *Handler) NewMux() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/v1alpha1/species/search", h.SearchSpecies)
	mux.HandleFunc("GET /api/v1alpha1/species/browse", h.BrowseSpecies)
	mux.HandleFunc("GET /api/v1alpha1/species/{id}", h.GetSpecies)
	mux.HandleFunc("GET /api/v1alpha1/species/{id}/compatible", h.ListCompatible)
	mux.HandleFunc("POST /api/v1alpha1/breeding/calculate", h.Calculate)
	mux.HandleFunc("GET /api/v1alpha1/temperaments", h.ListTemperaments)
	mux.HandleFunc("GET /api/v1alpha1/kin-groups", h.ListKinGroups)

	return corsMiddleware(mux)
}

// corsMiddleware allows browser frontends on other origins to call the API
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Health reports that the server is up
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Message: "brood API",
	})
}

// SearchSpecies handles GET /api/v1alpha1/species/search?q=&limit=
func (h *Handler) SearchSpecies(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.catalogService.Search(r.Context(), &catalog.SearchInput{
		Query: r.URL.Query().Get("q"),
		Limit: limit,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Results: toSummaryPayloads(output.Results),
	})
}

// BrowseSpecies handles GET /api/v1alpha1/species/browse with filters
func (h *Handler) BrowseSpecies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	offset, err := intQuery(r, "offset", 0)
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}
	kinGroupID, err := intQuery(r, "kin_group", 0)
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	kinGroupIDs, err := intListQuery(query.Get("kin_groups"))
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.catalogService.Browse(r.Context(), &catalog.BrowseInput{
		Name:        query.Get("name"),
		KinGroupID:  kinGroupID,
		KinGroupIDs: kinGroupIDs,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, browseResponse{
		Total:   output.Total,
		Species: toSummaryPayloads(output.Results),
	})
}

// GetSpecies handles GET /api/v1alpha1/species/{id}
func (h *Handler) GetSpecies(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.catalogService.GetSpecies(r.Context(), &catalog.GetSpeciesInput{ID: id})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSpeciesDetail(output.Species))
}

// ListCompatible handles GET /api/v1alpha1/species/{id}/compatible
func (h *Handler) ListCompatible(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.catalogService.ListCompatible(r.Context(), &catalog.ListCompatibleInput{ID: id})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, compatibleResponse{
		Results: toSummaryPayloads(output.Results),
	})
}

// Calculate handles POST /api/v1alpha1/breeding/calculate
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteHTTP(w, errors.InvalidArgument("request body is not valid JSON"))
		return
	}

	output, err := h.breedingService.Calculate(r.Context(), req.toInput())
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCalculateResponse(output))
}

// ListTemperaments handles GET /api/v1alpha1/temperaments
func (h *Handler) ListTemperaments(w http.ResponseWriter, r *http.Request) {
	output, err := h.catalogService.ListTemperaments(r.Context(), &catalog.ListTemperamentsInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, temperamentsResponse{
		Temperaments: toTemperamentPayloads(output.Temperaments),
	})
}

// ListKinGroups handles GET /api/v1alpha1/kin-groups
func (h *Handler) ListKinGroups(w http.ResponseWriter, r *http.Request) {
	output, err := h.catalogService.ListKinGroups(r.Context(), &catalog.ListKinGroupsInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, kinGroupsResponse{
		KinGroups: toKinGroupPayloads(output.KinGroups),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response body", "error", err)
	}
}

func pathID(r *http.Request) (int, error) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.InvalidArgumentf("species ID %q is not a positive integer", raw)
	}
	return id, nil
}

func intQuery(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidArgumentf("query parameter %q must be an integer", name)
	}
	return value, nil
}

func intListQuery(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.InvalidArgumentf("kin group ID %q is not an integer", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
