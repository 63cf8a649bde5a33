package redis

import (
	"context"
	"testing"

	"cafe-server/config"
	"cafe-server/db"
	"cafe-server/filters"
)

func TestRedisFilterDAO_SaveAndLoad(t *testing.T) {
	// Setup
	mockClient := db.NewMockKVClient(context.Background())
	dao := NewRedisFilterDAO(mockClient)

	state := filters.FilterState{
		Tags:     []string{"Wi-Fi"},
		Prices:   []int{2},
		Rating:   []int{4},
		TimeFrom: "10:00 a.m.",
		TimeTo:   "8:00 p.m.",
	}

	// Act
	if err := dao.Save(state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := dao.Load()

	// Assert
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected a persisted state, got nil")
	}
	if len(loaded.Tags) != 1 || loaded.Tags[0] != "Wi-Fi" {
		t.Errorf("Tags = %v; want [Wi-Fi]", loaded.Tags)
	}
	if loaded.TimeFrom != "10:00 a.m." {
		t.Errorf("TimeFrom = %q; want 10:00 a.m.", loaded.TimeFrom)
	}
}

func TestRedisFilterDAO_LoadAbsentIsNil(t *testing.T) {
	dao := NewRedisFilterDAO(db.NewMockKVClient(context.Background()))

	loaded, err := dao.Load()

	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != nil {
		t.Errorf("Expected nil for an absent blob, got %+v", loaded)
	}
}

func TestRedisFilterDAO_CorruptBlobReadsAsAbsent(t *testing.T) {
	mockClient := db.NewMockKVClient(context.Background())
	_ = mockClient.Set(config.FILTERS_STORAGE_KEY, "{not json")
	dao := NewRedisFilterDAO(mockClient)

	loaded, err := dao.Load()

	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != nil {
		t.Errorf("Expected nil for a corrupt blob, got %+v", loaded)
	}
}

func TestRedisFilterDAO_Clear(t *testing.T) {
	mockClient := db.NewMockKVClient(context.Background())
	dao := NewRedisFilterDAO(mockClient)

	_ = dao.Save(filters.DefaultFilterState())
	if err := dao.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	loaded, _ := dao.Load()
	if loaded != nil {
		t.Errorf("Expected nil after Clear, got %+v", loaded)
	}
}
