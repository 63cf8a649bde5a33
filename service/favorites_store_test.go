package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"cafe-server/dao/redis"
	"cafe-server/db"
	"cafe-server/models/cafe"
)

func newFavoritesStore() *FavoritesStore {
	dao := redis.NewRedisFavoritesDAO(db.NewMockKVClient(context.Background()))
	return NewFavoritesStore(dao)
}

func TestFavoritesStore_AddAndIsFavorite(t *testing.T) {
	store := newFavoritesStore()

	err := store.Add(cafe.Cafe{ID: 1, Name: "Blue Cup"})

	assert.NoError(t, err)
	assert.True(t, store.IsFavorite(1))
	assert.False(t, store.IsFavorite(2))
}

func TestFavoritesStore_AddIsIdempotent(t *testing.T) {
	store := newFavoritesStore()

	_ = store.Add(cafe.Cafe{ID: 1, Name: "Blue Cup"})
	_ = store.Add(cafe.Cafe{ID: 1, Name: "Blue Cup"})

	favorites, err := store.Favorites()
	assert.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestFavoritesStore_Remove(t *testing.T) {
	store := newFavoritesStore()
	_ = store.Add(cafe.Cafe{ID: 1, Name: "Blue Cup"})
	_ = store.Add(cafe.Cafe{ID: 2, Name: "Mocha House"})

	err := store.Remove(1)

	assert.NoError(t, err)
	assert.False(t, store.IsFavorite(1))
	assert.True(t, store.IsFavorite(2))
}

func TestFavoritesStore_ToggleFlipsMembership(t *testing.T) {
	store := newFavoritesStore()
	target := cafe.Cafe{ID: 1, Name: "Blue Cup"}

	added, err := store.Toggle(target)
	assert.NoError(t, err)
	assert.True(t, added)
	assert.True(t, store.IsFavorite(1))

	removed, err := store.Toggle(target)
	assert.NoError(t, err)
	assert.False(t, removed)
	assert.False(t, store.IsFavorite(1))
}

func TestFavoritesStore_SubscribersNotifiedOnChange(t *testing.T) {
	store := newFavoritesStore()

	notified := 0
	unsubscribe := store.Subscribe(func() { notified++ })

	_ = store.Add(cafe.Cafe{ID: 1})
	_ = store.Remove(1)
	assert.Equal(t, 2, notified)

	unsubscribe()
	_ = store.Add(cafe.Cafe{ID: 2})
	assert.Equal(t, 2, notified, "unsubscribed callback must not fire")
}
