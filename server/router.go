package server

import (
	"github.com/gorilla/mux"

	"cafe-server/server/handlers"
)

type Router struct {
	cafeHandler      *handlers.CafeHandler
	filterHandler    *handlers.FilterHandler
	favoritesHandler *handlers.FavoritesHandler
	router           *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	cafeHandler *handlers.CafeHandler,
	filterHandler *handlers.FilterHandler,
	favoritesHandler *handlers.FavoritesHandler,
	router *mux.Router) *Router {
	return &Router{
		cafeHandler:      cafeHandler,
		filterHandler:    filterHandler,
		favoritesHandler: favoritesHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	// accepts ?query={text} for search, or the filter params
	// (tags, priceRating, rating, openingHours)
	r.router.HandleFunc("/v1/cafes", r.cafeHandler.GetCafes).Methods("GET")
	r.router.HandleFunc("/v1/cafes/home", r.cafeHandler.GetHomeSections).Methods("GET")
	r.router.HandleFunc("/v1/cafes/{id}", r.cafeHandler.GetCafe).Methods("GET")
	r.router.HandleFunc("/v1/tags", r.cafeHandler.GetTags).Methods("GET")
	r.router.HandleFunc("/v1/cities/popular", r.cafeHandler.GetPopularCities).Methods("GET")

	r.router.HandleFunc("/v1/filters", r.filterHandler.GetFilters).Methods("GET")
	r.router.HandleFunc("/v1/filters/apply", r.filterHandler.ApplyFilters).Methods("POST")
	r.router.HandleFunc("/v1/filters/clear", r.filterHandler.ClearFilters).Methods("POST")
	r.router.HandleFunc("/v1/filters/count", r.filterHandler.GetFilterCount).Methods("GET")

	r.router.HandleFunc("/v1/favorites", r.favoritesHandler.GetFavorites).Methods("GET")
	r.router.HandleFunc("/v1/favorites/{id}/toggle", r.favoritesHandler.ToggleFavorite).Methods("POST")

	r.router.HandleFunc("/ping", r.cafeHandler.Ping).Methods("GET")
}
