package config

import "os"

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Catalog API
const CATALOG_API_ENDPOINT_BASE_V1 = "http://catalog:8081/api"

// HTTP server
const HTTP_SERVER_ADDRESS = ":8080"

// Client-local persistence keys. Blobs are overwritten wholesale on every save.
const FAVORITES_STORAGE_KEY = "cafe_favorites"
const FILTERS_STORAGE_KEY = "cafe_filters"

// Catalog refresher config
const CATALOG_REFRESHER_SCHEDULE_MINUTES = 60

// Live-search quiescence window in milliseconds
const SEARCH_DEBOUNCE_MILLIS = 300

// GetEnvOr returns the environment value for key, or fallback when unset.
func GetEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// RedisAddress resolves the Redis address, honoring the REDIS_ADDRESS override.
func RedisAddress() string {
	return GetEnvOr("REDIS_ADDRESS", REDIS_DB_ADDRESS)
}

// CatalogAPIBase resolves the catalog API base URL, honoring CATALOG_API_BASE.
func CatalogAPIBase() string {
	return GetEnvOr("CATALOG_API_BASE", CATALOG_API_ENDPOINT_BASE_V1)
}

// ServerAddress resolves the listen address, honoring SERVER_ADDRESS.
func ServerAddress() string {
	return GetEnvOr("SERVER_ADDRESS", HTTP_SERVER_ADDRESS)
}
