package usecase

import (
	"strings"

	"hvac_registry/internal/domain/entities"
)

// IsTagUnique reports whether tag is free in current, ignoring the record
// whose id is excludeID (0 when creating). Comparison is case-insensitive.
//
// current is whatever snapshot the caller holds; a stale snapshot can let a
// colliding tag through, which the store drivers reject on their side.
func IsTagUnique(tag string, excludeID int64, current []entities.Equipment) bool {
	for _, e := range current {
		if excludeID != 0 && e.ID == excludeID {
			continue
		}
		if sameName(e.Tag, tag) {
			return false
		}
	}
	return true
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
