package shared

import "strings"

const cacheKeySeparator = ":"

// BuildCacheKey joins the non-empty parts into a single namespaced cache key.
func BuildCacheKey(parts ...string) string {
	keys := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue
		}

		keys = append(keys, part)
	}

	return strings.Join(keys, cacheKeySeparator)
}
