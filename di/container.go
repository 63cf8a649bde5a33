package di

import (
	"context"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"cafe-server/api"
	"cafe-server/api/catalog"
	"cafe-server/config"
	"cafe-server/dao/redis"
	"cafe-server/db"
	"cafe-server/server"
	"cafe-server/server/handlers"
	services "cafe-server/service"
)

// Container holds all application dependencies.
type Container struct {
	KVClient                db.KVClient
	FilterDAO               *redis.RedisFilterDAO
	FavoritesDAO            *redis.RedisFavoritesDAO
	CatalogAPI              catalog.CatalogAPI
	CafeService             *services.CafeService
	FavoritesStore          *services.FavoritesStore
	CatalogRefresherService *services.CatalogRefresherService
	SearchDebouncer         *services.SearchDebouncer
	CafeHandler             *handlers.CafeHandler
	FilterHandler           *handlers.FilterHandler
	FavoritesHandler        *handlers.FavoritesHandler
	MuxRouter               *mux.Router
	Router                  *server.Router
	CafeHttpServer          *server.CafeHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Info().Str("env", env).Msg("[Container] Initializing container")
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.RedisAddress(),
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})
	kvClient := db.NewRedisKVClient(ctx, redisInternalClient)

	filterDAO := redis.NewRedisFilterDAO(kvClient)
	favoritesDAO := redis.NewRedisFavoritesDAO(kvClient)

	var catalogAPI catalog.CatalogAPI
	if env != "prod" {
		log.Info().Msg("[Container] Using mock catalog api")
		catalogAPI = catalog.NewCatalogApiClientMock()
	} else {
		log.Info().Msg("[Container] Using prod catalog api")
		catalogAPI = catalog.NewCatalogApiClient(api.NewHTTPClient(config.CatalogAPIBase()))
	}

	cafeService := services.NewCafeService(catalogAPI)
	favoritesStore := services.NewFavoritesStore(favoritesDAO)
	catalogRefresherService := services.NewCatalogRefresherService(catalogAPI, kvClient)

	searchDebouncer := services.NewSearchDebouncer(
		config.SEARCH_DEBOUNCE_MILLIS*time.Millisecond,
		func(query string) {
			results, err := cafeService.SearchCafes(query)
			if err != nil {
				log.Error().Err(err).Str("query", query).Msg("[Container] Debounced search failed")
				return
			}
			log.Debug().Str("query", query).Int("results", len(results)).Msg("[Container] Debounced search completed")
		},
	)

	cafeHandler := handlers.NewCafeHandler(cafeService, catalogRefresherService)
	filterHandler := handlers.NewFilterHandler(filterDAO, catalogRefresherService)
	favoritesHandler := handlers.NewFavoritesHandler(favoritesStore, cafeService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(cafeHandler, filterHandler, favoritesHandler, muxRouter)
	cafeHttpServer := server.NewCafeHttpServer(router, muxRouter, config.ServerAddress())

	return &Container{
		KVClient:                kvClient,
		FilterDAO:               filterDAO,
		FavoritesDAO:            favoritesDAO,
		CatalogAPI:              catalogAPI,
		CafeService:             cafeService,
		FavoritesStore:          favoritesStore,
		CatalogRefresherService: catalogRefresherService,
		SearchDebouncer:         searchDebouncer,
		CafeHandler:             cafeHandler,
		FilterHandler:           filterHandler,
		FavoritesHandler:        favoritesHandler,
		MuxRouter:               muxRouter,
		Router:                  router,
		CafeHttpServer:          cafeHttpServer,
	}
}
