package factory

import (
	fab "github.com/Goldziher/fabricator"

	"taskboard/internal/core/domain"
)

// NewTodo builds a Todo for tests. Field values not overridden through
// customData are pinned to valid defaults rather than left to the faker,
// since status and target_datetime have fixed shapes.
func NewTodo[T any](customData ...map[string]any) T {
	instance := fab.New(*new(T))

	defaults := map[string]any{
		"ID":             int64(0),
		"Username":       "alice",
		"Title":          "Write spec",
		"TargetDatetime": "2024-01-01 09:00:00",
		"Status":         domain.StatusTodo,
	}

	// fabricator's Build only applies the first overrides map, so defaults
	// and customData must be merged into a single map before the call.
	merged := make(map[string]any, len(defaults))
	for key, value := range defaults {
		merged[key] = value
	}
	for _, overrides := range customData {
		for key, value := range overrides {
			merged[key] = value
		}
	}

	return instance.Build(merged)
}
