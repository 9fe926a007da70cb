package util

// ToInterfaceSlice converts a slice of any type to []interface{}, as qm.WhereIn expects.
func ToInterfaceSlice[T any](items []T) []interface{} {
	result := make([]interface{}, len(items))
	for i, item := range items {
		result[i] = item
	}
	return result
}

// Unique returns items without duplicates, keeping the first occurrence order.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

// Difference returns the items of a that are not in b.
func Difference[T comparable](a, b []T) []T {
	drop := make(map[T]struct{}, len(b))
	for _, item := range b {
		drop[item] = struct{}{}
	}
	result := make([]T, 0, len(a))
	for _, item := range a {
		if _, ok := drop[item]; !ok {
			result = append(result, item)
		}
	}
	return result
}
