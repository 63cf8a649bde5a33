package cafe

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTagList_UnmarshalBothShapes(t *testing.T) {
	t.Run("bare strings", func(t *testing.T) {
		var tags TagList
		err := json.Unmarshal([]byte(`["Wi-Fi","Vegan"]`), &tags)

		assert.NoError(t, err)
		assert.Equal(t, TagList{"Wi-Fi", "Vegan"}, tags)
	})

	t.Run("named objects", func(t *testing.T) {
		var tags TagList
		err := json.Unmarshal([]byte(`[{"name":"cozy"},{"name":"Wi-Fi"}]`), &tags)

		assert.NoError(t, err)
		assert.Equal(t, TagList{"cozy", "Wi-Fi"}, tags)
	})
}

func TestBackendCafe_UnmarshalNestedAddress(t *testing.T) {
	payload := `{
		"id": 7,
		"name": "Blue Cup",
		"priceRating": 2,
		"openingHours": "Mo-Fr 08:00-18:00",
		"rating": 4.6,
		"votesCount": 120,
		"tags": [{"name":"cozy"}],
		"addressDtoResponse": {
			"buildingNumber": "12",
			"streetDtoResponse": {
				"name": "Rynok Square",
				"cityDtoResponse": {"name": "Lviv"}
			}
		}
	}`

	var raw BackendCafe
	err := json.Unmarshal([]byte(payload), &raw)

	assert.NoError(t, err)
	assert.Equal(t, 7, *raw.ID)
	assert.Equal(t, "Lviv", raw.Address.Street.City.Name)
	assert.Equal(t, TagList{"cozy"}, raw.Tags)
}

func wednesdayAt(hour int) time.Time {
	// 2024-01-03 is a Wednesday.
	return time.Date(2024, time.January, 3, hour, 0, 0, 0, time.UTC)
}

func TestNormalize_DerivesOpenStatusAndAddress(t *testing.T) {
	id := 3
	raw := BackendCafe{
		ID:           &id,
		Name:         "Blue Cup",
		MainPhoto:    &Photo{PhotoLink: "main.jpg"},
		Photos:       []Photo{{PhotoLink: "a.jpg"}, {PhotoLink: "b.jpg"}},
		PriceRating:  2,
		OpeningHours: "Mo-Fr 08:00-18:00",
		Rating:       4.6,
		VotesCount:   120,
		Tags:         TagList{"cozy"},
		Address: AddressResponse{
			BuildingNumber: "12",
			Street: StreetResponse{
				Name: "Rynok Square",
				City: CityResponse{Name: "Lviv"},
			},
		},
	}

	got := Normalize(raw, 0, wednesdayAt(10))

	assert.Equal(t, 3, got.ID)
	assert.Equal(t, "Lviv, Rynok Square 12", got.Address)
	assert.True(t, got.IsOpen)
	assert.Equal(t, "18:00", got.ClosingTime)
	assert.Equal(t, "main.jpg", got.Image)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, got.Images)
	assert.Equal(t, 120, got.Reviews)
	assert.Equal(t, 2, got.Price)
}

func TestNormalize_FallsBackToIndexAndMainPhoto(t *testing.T) {
	raw := BackendCafe{
		Name:      "No Frills",
		MainPhoto: &Photo{PhotoLink: "main.jpg"},
	}

	got := Normalize(raw, 5, wednesdayAt(10))

	assert.Equal(t, 5, got.ID)
	// A record without a gallery promotes the main photo.
	assert.Equal(t, []string{"main.jpg"}, got.Images)
	assert.Equal(t, "main.jpg", got.Image)
	assert.False(t, got.IsOpen)
	assert.Equal(t, "N/A", got.ClosingTime)
	assert.Equal(t, []string{}, got.Tags)
}

func TestNormalize_PartialAddress(t *testing.T) {
	raw := BackendCafe{
		Name: "Somewhere",
		Address: AddressResponse{
			Street: StreetResponse{City: CityResponse{Name: "Kyiv"}},
		},
	}

	got := Normalize(raw, 0, wednesdayAt(10))

	assert.Equal(t, "Kyiv", got.Address)
}
