package redis

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"cafe-server/config"
	"cafe-server/db"
	"cafe-server/models/cafe"
)

// RedisFavoritesDAO keeps the favorites list as one JSON blob under a fixed key,
// overwritten wholesale on every save.
type RedisFavoritesDAO struct {
	client db.KVClient
}

// NewRedisFavoritesDAO initializes a RedisFavoritesDAO with the KV client.
func NewRedisFavoritesDAO(client db.KVClient) *RedisFavoritesDAO {
	return &RedisFavoritesDAO{client: client}
}

// GetFavorites reads the stored list. Missing or corrupt blobs read as empty.
func (dao *RedisFavoritesDAO) GetFavorites() ([]cafe.Cafe, error) {
	str, err := dao.client.Get(config.FAVORITES_STORAGE_KEY)
	if err != nil {
		return []cafe.Cafe{}, nil
	}

	var favorites []cafe.Cafe
	if err := json.Unmarshal([]byte(str), &favorites); err != nil {
		log.Warn().Err(err).Msg("[RedisFavoritesDAO] Corrupt favorites blob, treating as empty")
		return []cafe.Cafe{}, nil
	}
	return favorites, nil
}

// SaveFavorites overwrites the stored list.
func (dao *RedisFavoritesDAO) SaveFavorites(favorites []cafe.Cafe) error {
	data, err := json.Marshal(favorites)
	if err != nil {
		return fmt.Errorf("failed to marshal favorites: %w", err)
	}
	if err := dao.client.Set(config.FAVORITES_STORAGE_KEY, string(data)); err != nil {
		return fmt.Errorf("failed to set favorites blob in redis: %w", err)
	}
	return nil
}
