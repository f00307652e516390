// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

//go:generate templ generate

import (
	"encoding/json"
	"fmt"
	"net/url"
	"slices"

	"github.com/danielhkuo/star-wars-characters/models"
)

const Title = "Star Wars Characters"

// CharacterPath is the detail route for a character
func CharacterPath(id string) string {
	return "/characters/" + url.PathEscape(id)
}

// fieldKeys lists the detail fields of c in display order
func fieldKeys(c models.Character) []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		if k != "name" {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

func fieldText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	default:
		return fmt.Sprint(v)
	}
}
