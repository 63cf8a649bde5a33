package services

import (
	"sync"

	"github.com/rs/zerolog/log"

	"cafe-server/dao/redis"
	"cafe-server/models/cafe"
)

// FavoritesStore owns the favorites list. It is passed by reference to the
// components that need it, and change notification runs through an explicit
// subscription list rather than an ambient event.
type FavoritesStore struct {
	dao *redis.RedisFavoritesDAO

	mu          sync.Mutex
	subscribers map[int]func()
	nextSubID   int
}

// NewFavoritesStore constructs a FavoritesStore with its DAO injected.
func NewFavoritesStore(dao *redis.RedisFavoritesDAO) *FavoritesStore {
	return &FavoritesStore{
		dao:         dao,
		subscribers: make(map[int]func()),
	}
}

// Subscribe registers a change callback and returns its unsubscribe function.
func (fs *FavoritesStore) Subscribe(callback func()) (unsubscribe func()) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	id := fs.nextSubID
	fs.nextSubID++
	fs.subscribers[id] = callback

	return func() {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		delete(fs.subscribers, id)
	}
}

// Favorites returns the current list.
func (fs *FavoritesStore) Favorites() ([]cafe.Cafe, error) {
	return fs.dao.GetFavorites()
}

// IsFavorite reports whether the café is in the list.
func (fs *FavoritesStore) IsFavorite(cafeID int) bool {
	favorites, err := fs.dao.GetFavorites()
	if err != nil {
		return false
	}
	for _, f := range favorites {
		if f.ID == cafeID {
			return true
		}
	}
	return false
}

// Add appends the café unless it is already present.
func (fs *FavoritesStore) Add(c cafe.Cafe) error {
	favorites, err := fs.dao.GetFavorites()
	if err != nil {
		return err
	}
	for _, f := range favorites {
		if f.ID == c.ID {
			return nil
		}
	}

	if err := fs.dao.SaveFavorites(append(favorites, c)); err != nil {
		return err
	}
	fs.notify()
	return nil
}

// Remove drops the café from the list.
func (fs *FavoritesStore) Remove(cafeID int) error {
	favorites, err := fs.dao.GetFavorites()
	if err != nil {
		return err
	}

	remaining := make([]cafe.Cafe, 0, len(favorites))
	for _, f := range favorites {
		if f.ID != cafeID {
			remaining = append(remaining, f)
		}
	}

	if err := fs.dao.SaveFavorites(remaining); err != nil {
		return err
	}
	fs.notify()
	return nil
}

// Toggle flips membership and reports whether the café is now a favorite.
func (fs *FavoritesStore) Toggle(c cafe.Cafe) (bool, error) {
	if fs.IsFavorite(c.ID) {
		return false, fs.Remove(c.ID)
	}
	return true, fs.Add(c)
}

func (fs *FavoritesStore) notify() {
	fs.mu.Lock()
	callbacks := make([]func(), 0, len(fs.subscribers))
	for _, cb := range fs.subscribers {
		callbacks = append(callbacks, cb)
	}
	fs.mu.Unlock()

	log.Debug().Int("subscribers", len(callbacks)).Msg("[FavoritesStore] Notifying subscribers")
	for _, cb := range callbacks {
		cb()
	}
}
