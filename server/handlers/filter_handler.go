package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"cafe-server/filters"
)

// FilterHandler exposes the filter surface over HTTP. Each request drives a
// fresh panel through its lifecycle against the shared persisted blob.
type FilterHandler struct {
	store filters.FilterStore
	tags  filters.TagVocabularyLoader
}

func NewFilterHandler(store filters.FilterStore, tags filters.TagVocabularyLoader) *FilterHandler {
	return &FilterHandler{
		store: store,
		tags:  tags,
	}
}

// filtersResponse is the panel snapshot returned by GET /v1/filters.
type filtersResponse struct {
	Filters     filters.FilterState `json:"filters"`
	Vocabulary  []string            `json:"vocabulary"`
	ActiveCount int                 `json:"activeCount"`
}

// applyResponse carries the wire query the client navigates to after an apply.
type applyResponse struct {
	Query       string `json:"query"`
	ActiveCount int    `json:"activeCount"`
}

// GetFilters handles GET /v1/filters: the state reconciled from the request's
// query and the persisted blob, plus the tag vocabulary.
func (h *FilterHandler) GetFilters(w http.ResponseWriter, r *http.Request) {
	panel := filters.NewPanel(h.store, h.tags)
	panel.Open(r.URL.Query())

	writeJSON(w, http.StatusOK, filtersResponse{
		Filters:     panel.Draft(),
		Vocabulary:  panel.Vocabulary(),
		ActiveCount: panel.ActiveCount(),
	})
}

// ApplyFilters handles POST /v1/filters/apply. The body carries the edited
// state; an invalid time range is rejected with 422 and nothing is persisted.
func (h *FilterHandler) ApplyFilters(w http.ResponseWriter, r *http.Request) {
	var state filters.FilterState
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		http.Error(w, "Invalid filter payload", http.StatusBadRequest)
		return
	}

	if err := filters.ValidateTimeRange(state); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	if err := h.store.Save(state); err != nil {
		log.Error().Err(err).Msg("[FilterHandler] Failed to persist filters")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, applyResponse{
		Query:       filters.EncodeWire(state).Encode(),
		ActiveCount: filters.ActiveCount(state),
	})
}

// ClearFilters handles POST /v1/filters/clear: erases the persisted blob and
// returns the default state.
func (h *FilterHandler) ClearFilters(w http.ResponseWriter, r *http.Request) {
	panel := filters.NewPanel(h.store, h.tags)
	panel.Open(r.URL.Query())

	if err := panel.ClearAll(); err != nil {
		log.Error().Err(err).Msg("[FilterHandler] Failed to clear filters")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, filtersResponse{
		Filters:     panel.Draft(),
		Vocabulary:  panel.Vocabulary(),
		ActiveCount: panel.ActiveCount(),
	})
}

// GetFilterCount handles GET /v1/filters/count: the badge value for the state
// reconciled from the request's query and the persisted blob.
func (h *FilterHandler) GetFilterCount(w http.ResponseWriter, r *http.Request) {
	persisted, err := h.store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("[FilterHandler] Failed to load persisted filters")
		persisted = nil
	}
	state := filters.Reconcile(r.URL.Query(), persisted)

	writeJSON(w, http.StatusOK, map[string]int{"activeCount": filters.ActiveCount(state)})
}
