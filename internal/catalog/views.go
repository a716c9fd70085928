package catalog

import (
	"sort"
	"strings"
)

// Derived views. Each function is a pure, stable transformation of its input:
// the input slice is never mutated and relative order survives every filter.

// SortMode selects the final ordering stage of a browse query.
type SortMode string

const (
	SortByScore  SortMode = "score"
	SortTrending SortMode = "trending-first"
	SortByRecent SortMode = "recent"
)

// ByCategory keeps ideas whose category exactly equals c (case-sensitive).
// CategoryAll returns the input unchanged; an unknown category yields an
// empty result, not an error.
func ByCategory(ideas []Idea, c string) []Idea {
	if c == CategoryAll {
		return ideas
	}
	out := make([]Idea, 0, len(ideas))
	for _, idea := range ideas {
		if idea.Category == c {
			out = append(out, idea)
		}
	}
	return out
}

// Trending keeps every idea carrying the editorial trending flag, in
// original order, with no upper bound.
func Trending(ideas []Idea) []Idea {
	out := make([]Idea, 0, len(ideas))
	for _, idea := range ideas {
		if idea.Trending {
			out = append(out, idea)
		}
	}
	return out
}

// TopRated returns the limit highest-scoring ideas, descending. Equal scores
// keep their collection order (stable sort, no secondary key). A limit past
// the collection size returns the whole collection sorted.
func TopRated(ideas []Idea, limit int) []Idea {
	sorted := make([]Idea, len(ideas))
	copy(sorted, ideas)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MarketScore > sorted[j].MarketScore
	})
	if limit < 0 {
		limit = 0
	}
	if limit > len(sorted) {
		limit = len(sorted)
	}
	return sorted[:limit]
}

// Search keeps ideas where the lowercased query is a substring of the title,
// description, category, or any tag. An empty or whitespace-only query is a
// no-op filter: the full input comes back. This is a filter, not a ranked
// search; input order is preserved.
func Search(ideas []Idea, query string) []Idea {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ideas
	}
	out := make([]Idea, 0, len(ideas))
	for _, idea := range ideas {
		if matchesQuery(idea, q) {
			out = append(out, idea)
		}
	}
	return out
}

func matchesQuery(idea Idea, q string) bool {
	if strings.Contains(strings.ToLower(idea.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(idea.Description), q) {
		return true
	}
	if strings.Contains(strings.ToLower(idea.Category), q) {
		return true
	}
	for _, tag := range idea.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Related returns up to limit ideas sharing id's category, excluding id
// itself, in original order. Used when the upstream detail lookup fails and
// related ideas must be computed locally.
func Related(ideas []Idea, id string, limit int) []Idea {
	var current *Idea
	for i := range ideas {
		if ideas[i].ID == id {
			current = &ideas[i]
			break
		}
	}
	if current == nil || limit <= 0 {
		return []Idea{}
	}
	out := make([]Idea, 0, limit)
	for _, idea := range ideas {
		if idea.ID == id || idea.Category != current.Category {
			continue
		}
		out = append(out, idea)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Browse composes the full browse-page query. Stages run in a fixed order:
// search, then category, then sort. The two filters commute; the sort must
// always be last so that narrowing never happens on an already-sorted
// subset's truncation.
func Browse(ideas []Idea, query, category string, mode SortMode) []Idea {
	narrowed := ByCategory(Search(ideas, query), category)
	switch mode {
	case SortByScore:
		return TopRated(narrowed, len(narrowed))
	case SortTrending:
		// Stable partition: trending first, no reorder inside either group.
		out := make([]Idea, 0, len(narrowed))
		out = append(out, Trending(narrowed)...)
		for _, idea := range narrowed {
			if !idea.Trending {
				out = append(out, idea)
			}
		}
		return out
	case SortByRecent:
		sorted := make([]Idea, len(narrowed))
		copy(sorted, narrowed)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt > sorted[j].CreatedAt
		})
		return sorted
	default:
		return narrowed
	}
}
