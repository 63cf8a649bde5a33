package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"cafe-server/config"
	"cafe-server/di"
	"cafe-server/util"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment as-is")
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	env := config.GetEnvOr("APP_ENV", "dev")
	container := di.NewContainer(env)

	log.Info().Msg("Refreshing catalog reference data")
	if err := container.CatalogRefresherService.RefreshCatalogData(); err != nil {
		log.Error().Err(err).Msg("Initial catalog refresh failed, continuing with cold cache")
	}
	container.CatalogRefresherService.StartPeriodicJob(config.CATALOG_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	if cities, err := container.CatalogRefresherService.CachedPopularCities(); err == nil {
		if err := util.PlotPopularCities(cities, "popular_cities.html"); err != nil {
			log.Warn().Err(err).Msg("Failed to plot popular cities")
		}
	}

	log.Info().Msg("Starting server")
	container.CafeHttpServer.Start()
}
