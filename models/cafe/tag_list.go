package cafe

import "encoding/json"

// TagList accepts both wire shapes the catalog API produces for tags: a list of
// bare strings or a list of {name} objects. Normalized to plain strings once, at
// the API boundary.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}

		var named struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(item, &named); err != nil {
			return err
		}
		out = append(out, named.Name)
	}

	*t = out
	return nil
}
