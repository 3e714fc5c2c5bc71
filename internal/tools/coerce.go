package tools

import (
	"fmt"
	"strconv"

	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/hashan-silva/linkedin-mcp-server/internal/linkedin"
)

// Argument coercion. JSON-RPC clients are sloppy about scalar types, so
// numbers may arrive as float64, strings or json integers, and booleans
// as strings like "true"/"1". Coercion only converts representation,
// trimming and required-field validation stay in the payload builders.

func stringArg(input Input, key string) string {
	v, exists := input[key]
	if !exists || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func intArg(input Input, key string) int {
	switch v := input[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case string:
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

func boolArg(input Input, key string) bool {
	switch v := input[key].(type) {
	case bool:
		return v
	case string:
		return misc.Truthy(v)
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return false
	}
}

func distributionArg(input Input, key string) map[string]any {
	v, ok := input[key].(map[string]any)
	if !ok {
		return nil
	}
	return v
}

// imagesArg converts the raw images list into image items. Per-item
// validation happens in the payload builder.
func imagesArg(input Input, key string) []linkedin.ImageItem {
	raw, ok := input[key].([]any)
	if !ok {
		return nil
	}
	items := make([]linkedin.ImageItem, 0, len(raw))
	for _, entry := range raw {
		obj, ok := entry.(map[string]any)
		if !ok {
			items = append(items, linkedin.ImageItem{})
			continue
		}
		id, _ := obj["id"].(string)
		alt, _ := obj["altText"].(string)
		items = append(items, linkedin.ImageItem{ID: id, AltText: alt})
	}
	return items
}
