package statusmap

import (
	"strings"

	"flowtrack/internal/core/domain/model/kernel"
)

// EffectiveStatus resolves a raw multi-token status string to the single winning
// mapping row.
//
// The raw string is split on arbitrary whitespace into non-empty tokens. Each
// token is matched case-sensitively and exactly against the active mappings.
// Scanning tokens left to right, a later token replaces the current best only
// when its sort order is strictly higher, so ties break in favor of the
// earliest-occurring token. Tokens with no active mapping are ignored.
//
// Returns false when no token matched. The function is deterministic: identical
// inputs always yield an identical result.
func EffectiveStatus(raw string, mappings []StatusMapping) (StatusMapping, bool) {
	byValue := make(map[string]StatusMapping, len(mappings))
	for _, m := range mappings {
		if !m.IsActive() {
			continue
		}
		// First active row wins for duplicated status values.
		if _, ok := byValue[m.StatusValue()]; !ok {
			byValue[m.StatusValue()] = m
		}
	}

	var (
		best  StatusMapping
		found bool
	)
	for _, token := range strings.Fields(raw) {
		m, ok := byValue[token]
		if !ok {
			continue
		}
		if !found || m.SortOrder() > best.SortOrder() {
			best = m
			found = true
		}
	}

	return best, found
}

// DeriveArea returns the area of the winning mapping for the raw status string,
// or Orders when no token matched. Every order therefore always has a derivable
// area, with the entry stage as the fallback.
func DeriveArea(raw string, mappings []StatusMapping) kernel.Area {
	if best, ok := EffectiveStatus(raw, mappings); ok {
		return best.Area()
	}
	return kernel.AreaOrders
}
