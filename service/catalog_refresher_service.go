package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"cafe-server/api/catalog"
	"cafe-server/db"
	"cafe-server/models"
)

const TAG_VOCABULARY_CACHE_KEY = "catalog_cache_v1:tags"
const POPULAR_CITIES_CACHE_KEY = "catalog_cache_v1:popular_cities"

// CatalogRefresherService periodically refreshes the catalog reference data
// (tag vocabulary, popular cities) into the KV cache.
type CatalogRefresherService struct {
	catalogAPI catalog.CatalogAPI
	kv         db.KVClient
}

// NewCatalogRefresherService constructs a new refresher with dependencies.
func NewCatalogRefresherService(catalogAPI catalog.CatalogAPI, kv db.KVClient) *CatalogRefresherService {
	return &CatalogRefresherService{
		catalogAPI: catalogAPI,
		kv:         kv,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (cr *CatalogRefresherService) StartPeriodicJob(interval time.Duration) {
	go cr.startPeriodicJob(interval)
}

func (cr *CatalogRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Info().Msg("[CatalogRefresherService] Running periodic catalog refresher job")
		if err := cr.RefreshCatalogData(); err != nil {
			log.Error().Err(err).Msg("[CatalogRefresherService] RefreshCatalogData returned error")
		} else {
			log.Info().Msg("[CatalogRefresherService] RefreshCatalogData completed successfully")
		}
	}
}

// RefreshCatalogData fetches and caches both reference-data slices. A failure on
// one slice does not stop the other; the first error is reported.
func (cr *CatalogRefresherService) RefreshCatalogData() error {
	var firstErr error

	if err := cr.refreshTags(); err != nil {
		log.Error().Err(err).Msg("[CatalogRefresherService] Failed to refresh tag vocabulary")
		firstErr = err
	}
	if err := cr.refreshPopularCities(); err != nil {
		log.Error().Err(err).Msg("[CatalogRefresherService] Failed to refresh popular cities")
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// CachedTags reads the tag vocabulary through the cache, falling back to a live
// fetch (and caching it) on a miss.
func (cr *CatalogRefresherService) CachedTags() ([]string, error) {
	if str, err := cr.kv.Get(TAG_VOCABULARY_CACHE_KEY); err == nil {
		var tags []string
		if err := json.Unmarshal([]byte(str), &tags); err == nil {
			return tags, nil
		}
		log.Warn().Msg("[CatalogRefresherService] Corrupt tag cache, refreshing")
	}

	if err := cr.refreshTags(); err != nil {
		return nil, err
	}
	return cr.CachedTags()
}

// GetTags satisfies the filter panel's TagVocabularyLoader.
func (cr *CatalogRefresherService) GetTags() ([]string, error) {
	return cr.CachedTags()
}

// CachedPopularCities reads the popular cities through the cache, falling back
// to a live fetch on a miss.
func (cr *CatalogRefresherService) CachedPopularCities() ([]models.PopularCity, error) {
	if str, err := cr.kv.Get(POPULAR_CITIES_CACHE_KEY); err == nil {
		var cities []models.PopularCity
		if err := json.Unmarshal([]byte(str), &cities); err == nil {
			return cities, nil
		}
		log.Warn().Msg("[CatalogRefresherService] Corrupt cities cache, refreshing")
	}

	if err := cr.refreshPopularCities(); err != nil {
		return nil, err
	}
	return cr.CachedPopularCities()
}

func (cr *CatalogRefresherService) refreshTags() error {
	tags, err := cr.catalogAPI.GetTags()
	if err != nil {
		return fmt.Errorf("failed to fetch tag vocabulary: %w", err)
	}
	return cr.cache(TAG_VOCABULARY_CACHE_KEY, tags)
}

func (cr *CatalogRefresherService) refreshPopularCities() error {
	cities, err := cr.catalogAPI.GetPopularCities()
	if err != nil {
		return fmt.Errorf("failed to fetch popular cities: %w", err)
	}
	return cr.cache(POPULAR_CITIES_CACHE_KEY, cities)
}

func (cr *CatalogRefresherService) cache(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry %s: %w", key, err)
	}
	if err := cr.kv.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to cache %s: %w", key, err)
	}
	return nil
}
