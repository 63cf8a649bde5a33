package redis

import (
	"context"
	"testing"

	"cafe-server/config"
	"cafe-server/db"
	"cafe-server/models/cafe"
)

func TestRedisFavoritesDAO_SaveAndGet(t *testing.T) {
	// Setup
	mockClient := db.NewMockKVClient(context.Background())
	dao := NewRedisFavoritesDAO(mockClient)

	favorites := []cafe.Cafe{
		{ID: 1, Name: "Blue Cup"},
		{ID: 2, Name: "Mocha House"},
	}

	// Act
	if err := dao.SaveFavorites(favorites); err != nil {
		t.Fatalf("SaveFavorites failed: %v", err)
	}

	loaded, err := dao.GetFavorites()

	// Assert
	if err != nil {
		t.Fatalf("GetFavorites failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 favorites, got %d", len(loaded))
	}
	if loaded[0].Name != "Blue Cup" {
		t.Errorf("Name = %q; want Blue Cup", loaded[0].Name)
	}
}

func TestRedisFavoritesDAO_AbsentReadsAsEmpty(t *testing.T) {
	dao := NewRedisFavoritesDAO(db.NewMockKVClient(context.Background()))

	loaded, err := dao.GetFavorites()

	if err != nil {
		t.Fatalf("GetFavorites failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Expected empty list, got %v", loaded)
	}
}

func TestRedisFavoritesDAO_CorruptBlobReadsAsEmpty(t *testing.T) {
	mockClient := db.NewMockKVClient(context.Background())
	_ = mockClient.Set(config.FAVORITES_STORAGE_KEY, "[broken")
	dao := NewRedisFavoritesDAO(mockClient)

	loaded, err := dao.GetFavorites()

	if err != nil {
		t.Fatalf("GetFavorites failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Expected empty list for corrupt blob, got %v", loaded)
	}
}

func TestRedisFavoritesDAO_SaveOverwritesWholesale(t *testing.T) {
	mockClient := db.NewMockKVClient(context.Background())
	dao := NewRedisFavoritesDAO(mockClient)

	_ = dao.SaveFavorites([]cafe.Cafe{{ID: 1, Name: "Blue Cup"}})
	_ = dao.SaveFavorites([]cafe.Cafe{{ID: 2, Name: "Mocha House"}})

	loaded, _ := dao.GetFavorites()
	if len(loaded) != 1 || loaded[0].ID != 2 {
		t.Errorf("Expected only the second list to survive, got %v", loaded)
	}
}
