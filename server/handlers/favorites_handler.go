package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	services "cafe-server/service"
)

// FavoritesHandler exposes the favorites list over HTTP.
type FavoritesHandler struct {
	store       *services.FavoritesStore
	cafeService *services.CafeService
}

func NewFavoritesHandler(store *services.FavoritesStore, cafeService *services.CafeService) *FavoritesHandler {
	return &FavoritesHandler{
		store:       store,
		cafeService: cafeService,
	}
}

// GetFavorites handles GET /v1/favorites.
func (h *FavoritesHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.store.Favorites()
	if err != nil {
		log.Error().Err(err).Msg("[FavoritesHandler] Failed to load favorites")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}

// ToggleFavorite handles POST /v1/favorites/{id}/toggle. The café is fetched
// from the catalog so a newly added favorite carries a full record.
func (h *FavoritesHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	cafeID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid cafe id", http.StatusBadRequest)
		return
	}

	target, err := h.cafeService.GetCafe(cafeID)
	if err != nil {
		log.Error().Err(err).Int("cafe_id", cafeID).Msg("[FavoritesHandler] Failed to load cafe")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	isFavorite, err := h.store.Toggle(*target)
	if err != nil {
		log.Error().Err(err).Int("cafe_id", cafeID).Msg("[FavoritesHandler] Failed to toggle favorite")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"isFavorite": isFavorite})
}
