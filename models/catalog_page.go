package models

import (
	"bytes"
	"encoding/json"

	"cafe-server/models/cafe"
)

// CatalogPage matches the catalog query response. The endpoint returns either a
// paged envelope or a bare list; both decode into the same structure.
type CatalogPage struct {
	Content       []cafe.BackendCafe `json:"content"`
	TotalPages    int                `json:"totalPages"`
	TotalElements int                `json:"totalElements"`
}

func (p *CatalogPage) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []cafe.BackendCafe
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		p.Content = list
		p.TotalPages = 1
		p.TotalElements = len(list)
		return nil
	}

	// Alias avoids infinite recursion into this method.
	type Alias CatalogPage
	return json.Unmarshal(data, (*Alias)(p))
}
