package db

import "context"

// KVClient defines the key-value persistence collaborator used for the favorites
// list, the filter blob and the catalog reference-data cache.
type KVClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Del(key string) error
	Keys(pattern string) ([]string, error)
	Ping() error
	GetContext() context.Context
}
