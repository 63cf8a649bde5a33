package cafe

import (
	"fmt"
	"strings"
	"time"

	"cafe-server/schedule"
)

// Cafe is the normalized catalog record served to the rendering surface.
// IsOpen and ClosingTime are derived from the raw schedule at normalization time
// and are never persisted.
type Cafe struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Image        string   `json:"image"`
	Images       []string `json:"images"`
	Address      string   `json:"address"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Price        int      `json:"price"`
	IsOpen       bool     `json:"isOpen"`
	ClosingTime  string   `json:"closingTime"`
	OpeningHours string   `json:"openingHours"`
	Tags         []string `json:"tags"`
	Description  string   `json:"description"`
}

func (c *Cafe) ToString() string {
	return fmt.Sprintf("Cafe(id=%d, name=%s, address=%s)", c.ID, c.Name, c.Address)
}

// Normalize flattens a raw record into a Cafe, deriving open status at the given
// time. index is the record's position in its page, used when the id is absent.
func Normalize(raw BackendCafe, index int, now time.Time) Cafe {
	status := schedule.Evaluate(raw.OpeningHours, now)

	images := make([]string, 0, len(raw.Photos))
	for _, p := range raw.Photos {
		if p.PhotoLink != "" {
			images = append(images, p.PhotoLink)
		}
	}
	if len(images) == 0 && raw.MainPhoto != nil && raw.MainPhoto.PhotoLink != "" {
		images = append(images, raw.MainPhoto.PhotoLink)
	}

	image := ""
	if raw.MainPhoto != nil {
		image = raw.MainPhoto.PhotoLink
	}
	if image == "" && len(images) > 0 {
		image = images[0]
	}

	id := index
	if raw.ID != nil {
		id = *raw.ID
	}

	tags := []string(raw.Tags)
	if tags == nil {
		tags = []string{}
	}

	return Cafe{
		ID:           id,
		Name:         raw.Name,
		Image:        image,
		Images:       images,
		Address:      joinAddress(raw.Address.Street.City.Name, raw.Address.Street.Name, raw.Address.BuildingNumber),
		Rating:       raw.Rating,
		Reviews:      raw.VotesCount,
		Price:        raw.PriceRating,
		IsOpen:       status.IsOpen,
		ClosingTime:  status.ClosingTime,
		OpeningHours: raw.OpeningHours,
		Tags:         tags,
		Description:  raw.Description,
	}
}

// joinAddress flattens the address DTO into "City, Street 12": comma-separated
// parts with the building number attached to the street by a space.
func joinAddress(city, street, building string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{city, street, building} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	full := strings.Join(parts, ", ")
	if building != "" {
		full = strings.Replace(full, ", "+building, " "+building, 1)
	}
	return full
}
