package views

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vidhive/backend/internal/models"
)

// Filters are the match predicates applied before joining and sorting.
// All set predicates combine with logical AND.
type Filters struct {
	Query         string // case-insensitive substring over the entity's text fields
	OwnerID       uint   // scope to one owner when non-zero
	PublishedOnly bool
	WindowDays    int // keep records created within the trailing N days
}

// Sort names the ordering of a listing. Key may be a stored field or a
// recognized computed score; anything else is rejected.
type Sort struct {
	Key       string
	Direction string // "asc" or "desc"; desc when empty
}

// fieldCmp pairs a standard comparator (<0 when a<b) with whether the key
// is a computed score. Score ties break on createdAt descending so score
// orderings stay reproducible.
type fieldCmp[T any] struct {
	cmp   func(a, b T) int
	score bool
}

func applySort[T any](items []T, s Sort, fields map[string]fieldCmp[T], createdAt func(T) time.Time) error {
	f, ok := fields[s.Key]
	if !ok {
		return fmt.Errorf("%w: unknown sort key %q", ErrInvalidInput, s.Key)
	}
	asc := strings.EqualFold(s.Direction, "asc")
	sort.SliceStable(items, func(i, j int) bool {
		c := f.cmp(items[i], items[j])
		if c != 0 {
			if asc {
				return c < 0
			}
			return c > 0
		}
		if f.score {
			return createdAt(items[i]).After(createdAt(items[j]))
		}
		return false
	})
	return nil
}

// matchQuery reports whether any of the fields contains the query,
// case-insensitively. An empty query matches everything.
func matchQuery(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func withinWindow(createdAt, now time.Time, days int) bool {
	if days <= 0 {
		return true
	}
	return !createdAt.Before(now.AddDate(0, 0, -days))
}

func filterVideos(videos []models.Video, f Filters, now time.Time) []models.Video {
	out := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if f.PublishedOnly && !v.IsPublished {
			continue
		}
		if f.OwnerID != 0 && v.OwnerID != f.OwnerID {
			continue
		}
		if !withinWindow(v.CreatedAt, now, f.WindowDays) {
			continue
		}
		if !matchQuery(f.Query, v.Title, v.Description) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func filterTweets(tweets []models.Tweet, f Filters, now time.Time) []models.Tweet {
	out := make([]models.Tweet, 0, len(tweets))
	for _, t := range tweets {
		if f.OwnerID != 0 && t.OwnerID != f.OwnerID {
			continue
		}
		if !withinWindow(t.CreatedAt, now, f.WindowDays) {
			continue
		}
		if !matchQuery(f.Query, t.Content) {
			continue
		}
		out = append(out, t)
	}
	return out
}
