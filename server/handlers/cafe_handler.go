package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"cafe-server/filters"
	services "cafe-server/service"
)

const SEARCH_QUERY_ARG = "query"

// CafeHandler serves the catalog surface: listing, search, filtering, single
// records and reference data.
type CafeHandler struct {
	cafeService *services.CafeService
	refresher   *services.CatalogRefresherService
}

func NewCafeHandler(cafeService *services.CafeService, refresher *services.CatalogRefresherService) *CafeHandler {
	return &CafeHandler{
		cafeService: cafeService,
		refresher:   refresher,
	}
}

// GetCafes handles GET /v1/cafes. A free-text query takes precedence, then the
// filter params carried by the URL; otherwise the plain first page is returned.
func (h *CafeHandler) GetCafes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if search := q.Get(SEARCH_QUERY_ARG); search != "" {
		cafes, err := h.cafeService.SearchCafes(search)
		h.writeCafes(w, cafes, err)
		return
	}

	if filters.URLCarriesFilters(q) {
		state := filters.Reconcile(q, nil)
		cafes, err := h.cafeService.FilterCafes(state)
		h.writeCafes(w, cafes, err)
		return
	}

	cafes, err := h.cafeService.GetAllCafes()
	h.writeCafes(w, cafes, err)
}

// GetHomeSections handles GET /v1/cafes/home.
func (h *CafeHandler) GetHomeSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.cafeService.GetHomeSections(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("[CafeHandler] Failed to load home sections")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, sections)
}

// GetCafe handles GET /v1/cafes/{id}.
func (h *CafeHandler) GetCafe(w http.ResponseWriter, r *http.Request) {
	cafeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid cafe id", http.StatusBadRequest)
		return
	}

	result, err := h.cafeService.GetCafe(cafeID)
	if err != nil {
		log.Error().Err(err).Int("cafe_id", cafeID).Msg("[CafeHandler] Failed to load cafe")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetTags handles GET /v1/tags.
func (h *CafeHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.refresher.CachedTags()
	if err != nil {
		log.Error().Err(err).Msg("[CafeHandler] Failed to load tag vocabulary")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

// GetPopularCities handles GET /v1/cities/popular.
func (h *CafeHandler) GetPopularCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.refresher.CachedPopularCities()
	if err != nil {
		log.Error().Err(err).Msg("[CafeHandler] Failed to load popular cities")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cities)
}

// Ping handles GET /ping.
func (h *CafeHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func (h *CafeHandler) writeCafes(w http.ResponseWriter, cafes interface{}, err error) {
	if err != nil {
		log.Error().Err(err).Msg("[CafeHandler] Failed to load cafes")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cafes)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("[handlers] Failed to encode response")
	}
}
