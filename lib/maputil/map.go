package maputil

import (
	"maps"
	"slices"
)

func GetKeyFromMap(obj map[string]any, key string, defaultValue any) any {
	if len(obj) == 0 {
		return defaultValue
	}

	val, isOk := obj[key]
	if !isOk {
		return defaultValue
	}

	return val
}

// SortedKeys returns the keys of [obj] in ascending order.
func SortedKeys[V any](obj map[string]V) []string {
	return slices.Sorted(maps.Keys(obj))
}
