// Package chi exposes the catalog HTTP API.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/catalogd/internal/domain"
	domasset "github.com/kailas-cloud/catalogd/internal/domain/asset"
	domreq "github.com/kailas-cloud/catalogd/internal/domain/request"
	"github.com/kailas-cloud/catalogd/internal/metrics"
	cataloguc "github.com/kailas-cloud/catalogd/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/catalogd/internal/usecase/health"
	requestuc "github.com/kailas-cloud/catalogd/internal/usecase/request"
	searchuc "github.com/kailas-cloud/catalogd/internal/usecase/search"
)

// Error codes returned in the error envelope.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeAssetNotFound    = "asset_not_found"
	codeNotFound         = "not_found"
	codeInternalError    = "internal_error"
)

// errorResponse is the envelope every failed call returns.
type errorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server routes catalog API requests to the use case services.
type Server struct {
	catalog       *cataloguc.Service
	search        *searchuc.Service
	requests      *requestuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	catalog *cataloguc.Service,
	search *searchuc.Service,
	requests *requestuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		catalog:  catalog,
		search:   search,
		requests: requests,
		health:   health,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrAssetNotFound, http.StatusNotFound, codeAssetNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
	}
	return s
}

// Routes mounts every API endpoint on a fresh chi router. Static segments
// are registered alongside the {id} wildcard; chi gives them precedence.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/assets", func(r chi.Router) {
			r.Get("/", s.ListAssets)
			r.Post("/search", s.SearchAssets)
			r.Get("/search", s.RecentSearches)
			r.Get("/featured", s.FeaturedAssets)

			r.Get("/KPI", s.listKind(domasset.KindKPI))
			r.Get("/layouts", s.listKind(domasset.KindLayout))
			r.Get("/visualizations", s.listKind(domasset.KindVisualization))
			r.Get("/storyboards", s.listKind(domasset.KindStoryboard))

			r.Post("/kpi", s.createKind(domasset.KindKPI))
			r.Post("/layouts", s.createKind(domasset.KindLayout))
			r.Post("/visualizations", s.createKind(domasset.KindVisualization))
			r.Post("/storyboards", s.createKind(domasset.KindStoryboard))

			r.Get("/{id}", s.GetAsset)
			r.Post("/{id}/shared", s.ShareAsset)
			r.Post("/{id}/favorited", s.FavoriteAsset)
			r.Post("/{id}/access/{type}/{access}", s.SetAssetAccess)
		})

		r.Get("/requests", s.ListRequests)
		r.Post("/requests", s.CreateRequest)
	})

	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	return r
}

// ListAssets handles GET /assets.
func (s *Server) ListAssets(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.ListAll(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries(items))
}

// FeaturedAssets handles GET /assets/featured.
func (s *Server) FeaturedAssets(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.Featured(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries(items))
}

// listKind builds the handler for a per-kind listing endpoint.
func (s *Server) listKind(kind domasset.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := s.catalog.ListKind(r.Context(), kind)
		if err != nil {
			s.handleDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, summaries(items))
	}
}

// GetAsset handles GET /assets/{id}: kinds are probed in fixed order and
// the first match wins.
func (s *Server) GetAsset(w http.ResponseWriter, r *http.Request) {
	a, err := s.catalog.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// createKind builds the creation handler for one asset variant.
func (s *Server) createKind(kind domasset.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft domasset.Asset
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body")
			return
		}

		a, err := s.catalog.Create(r.Context(), kind, draft)
		if err != nil {
			s.handleDomainError(w, err)
			return
		}

		metrics.AssetsCreatedTotal.WithLabelValues(string(kind)).Inc()
		writeJSON(w, http.StatusCreated, a)
	}
}

// ShareAsset handles POST /assets/{id}/shared.
func (s *Server) ShareAsset(w http.ResponseWriter, r *http.Request) {
	a, err := s.catalog.IncrementShared(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	metrics.EngagementEventsTotal.WithLabelValues("shared").Inc()
	writeJSON(w, http.StatusOK, a)
}

// FavoriteAsset handles POST /assets/{id}/favorited.
func (s *Server) FavoriteAsset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Favorited *bool `json:"favorited"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Favorited == nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "favorited flag is required")
		return
	}

	a, err := s.catalog.SetFavorited(r.Context(), chi.URLParam(r, "id"), *req.Favorited)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	event := "favorited"
	if !*req.Favorited {
		event = "unfavorited"
	}
	metrics.EngagementEventsTotal.WithLabelValues(event).Inc()
	writeJSON(w, http.StatusOK, a)
}

// SetAssetAccess handles POST /assets/{id}/access/{type}/{access}.
func (s *Server) SetAssetAccess(w http.ResponseWriter, r *http.Request) {
	sum, err := s.catalog.SetAccess(
		r.Context(),
		chi.URLParam(r, "id"),
		chi.URLParam(r, "type"),
		chi.URLParam(r, "access"),
	)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// SearchAssets handles POST /assets/search.
func (s *Server) SearchAssets(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
		User  string `json:"user"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body")
		return
	}

	result, err := s.search.Search(r.Context(), req.Query, req.User)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	if result.Items == nil {
		result.Items = []domasset.Summary{}
	}
	if result.Recent == nil {
		result.Recent = []string{}
	}
	writeJSON(w, http.StatusOK, result)
}

// RecentSearches handles GET /assets/search.
func (s *Server) RecentSearches(w http.ResponseWriter, r *http.Request) {
	queries, err := s.search.RecentQueries(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if queries == nil {
		queries = []string{}
	}
	writeJSON(w, http.StatusOK, queries)
}

// ListRequests handles GET /requests.
func (s *Server) ListRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := s.requests.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if reqs == nil {
		reqs = []domreq.Request{}
	}
	writeJSON(w, http.StatusOK, reqs)
}

// CreateRequest handles POST /requests.
func (s *Server) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title         string `json:"title"`
		Category      string `json:"category"`
		Description   string `json:"description"`
		Purpose       string `json:"purpose"`
		RequestedByID string `json:"requestedByID"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body")
		return
	}

	created, err := s.requests.Create(
		r.Context(), req.Title, req.Category, req.Description, req.Purpose, req.RequestedByID,
	)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"request": created,
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// summaries normalizes a nil slice so listings encode as [] rather than null.
func summaries(items []domasset.Summary) []domasset.Summary {
	if items == nil {
		return []domasset.Summary{}
	}
	return items
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Success: false,
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrValidation,
		domain.ErrAssetNotFound,
		domain.ErrNotFound,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
