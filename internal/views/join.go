package views

import "github.com/vidhive/backend/internal/models"

// Join helpers for flattening normalized records into view models. All
// joins here are left-outer: a primary record with zero matches resolves to
// a zero count, an empty list or a nil single-record field, never an error.

// indexBy builds a to-one lookup keyed by the given function.
func indexBy[K comparable, T any](items []T, key func(T) K) map[K]T {
	m := make(map[K]T, len(items))
	for _, it := range items {
		m[key(it)] = it
	}
	return m
}

// groupBy builds a to-many lookup keyed by the given function.
func groupBy[K comparable, T any](items []T, key func(T) K) map[K][]T {
	m := make(map[K][]T)
	for _, it := range items {
		k := key(it)
		m[k] = append(m[k], it)
	}
	return m
}

// first collapses a to-one join result: the leading match wins and ok is
// false on an empty join. This is the single place where "at most one
// related record" assumptions are unwrapped.
func first[T any](matches []T) (T, bool) {
	if len(matches) == 0 {
		var zero T
		return zero, false
	}
	return matches[0], true
}

// dedup returns the unique keys in first-seen order.
func dedup[K comparable](keys []K) []K {
	seen := make(map[K]struct{}, len(keys))
	out := make([]K, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// likeIndex aggregates raw like rows per target: total count plus whether
// the viewer is among the likers. A missing entry means zero likes.
type likeIndex struct {
	counts   map[string]int
	byViewer map[string]bool
}

func buildLikeIndex(likes []models.Like, viewer uint) likeIndex {
	idx := likeIndex{
		counts:   make(map[string]int, len(likes)),
		byViewer: make(map[string]bool),
	}
	for _, l := range likes {
		idx.counts[l.TargetID]++
		if viewer != 0 && l.UserID == viewer {
			idx.byViewer[l.TargetID] = true
		}
	}
	return idx
}
