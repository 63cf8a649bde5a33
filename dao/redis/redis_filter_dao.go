package redis

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"cafe-server/config"
	"cafe-server/db"
	"cafe-server/filters"
)

// RedisFilterDAO persists the applied filter blob wholesale under a fixed key.
// There are no partial updates and no versioning.
type RedisFilterDAO struct {
	client db.KVClient
}

// NewRedisFilterDAO initializes a RedisFilterDAO with the KV client.
func NewRedisFilterDAO(client db.KVClient) *RedisFilterDAO {
	return &RedisFilterDAO{client: client}
}

// Load reads the persisted filter state. A missing or corrupt blob reads as
// absent (nil) rather than failing; callers fall through to defaults.
func (dao *RedisFilterDAO) Load() (*filters.FilterState, error) {
	str, err := dao.client.Get(config.FILTERS_STORAGE_KEY)
	if err != nil {
		return nil, nil
	}

	var state filters.FilterState
	if err := json.Unmarshal([]byte(str), &state); err != nil {
		log.Warn().Err(err).Msg("[RedisFilterDAO] Corrupt filter blob, treating as absent")
		return nil, nil
	}
	return &state, nil
}

// Save overwrites the persisted blob with the given state.
func (dao *RedisFilterDAO) Save(state filters.FilterState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal filter state: %w", err)
	}
	if err := dao.client.Set(config.FILTERS_STORAGE_KEY, string(data)); err != nil {
		return fmt.Errorf("failed to set filter blob in redis: %w", err)
	}
	return nil
}

// Clear erases the persisted blob.
func (dao *RedisFilterDAO) Clear() error {
	if err := dao.client.Del(config.FILTERS_STORAGE_KEY); err != nil {
		return fmt.Errorf("failed to delete filter blob: %w", err)
	}
	return nil
}
