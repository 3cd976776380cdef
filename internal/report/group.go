package report

import "slices"

// Group is the set of items sharing one key.
type Group[T any] struct {
	Key   string
	Items []T
}

// GroupBy partitions items by key. Groups whose key appears in priority come
// first in that order; other keys follow in first-seen order. Empty groups
// are omitted and item order within a group is preserved.
func GroupBy[T any](items []T, key func(T) string, priority []string) []Group[T] {
	var seen []string
	buckets := map[string][]T{}
	for _, it := range items {
		k := key(it)
		if _, ok := buckets[k]; !ok {
			seen = append(seen, k)
		}
		buckets[k] = append(buckets[k], it)
	}

	groups := make([]Group[T], 0, len(buckets))
	for _, k := range priority {
		if b, ok := buckets[k]; ok {
			groups = append(groups, Group[T]{Key: k, Items: b})
		}
	}
	for _, k := range seen {
		if slices.Contains(priority, k) {
			continue
		}
		groups = append(groups, Group[T]{Key: k, Items: buckets[k]})
	}
	return groups
}

// CountBy returns the number of items per key.
func CountBy[T any](items []T, key func(T) string) map[string]int {
	counts := map[string]int{}
	for _, it := range items {
		counts[key(it)]++
	}
	return counts
}

// Cap returns at most n items and how many were left out.
func Cap[T any](items []T, n int) ([]T, int) {
	if n < 0 || len(items) <= n {
		return items, 0
	}
	return items[:n], len(items) - n
}
