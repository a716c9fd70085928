package catalog

import (
	"reflect"
	"testing"
)

func fixtureIdeas() []Idea {
	return []Idea{
		{ID: "a", Title: "AI-Powered Personal Finance Coach", Description: "budget coaching", Category: "FinTech", MarketScore: 92, Trending: true, Tags: []string{"AI", "B2C"}, CreatedAt: "2025-01-12"},
		{ID: "b", Title: "Churn Radar", Description: "retention alerts", Category: "SaaS", MarketScore: 92, Trending: false, Tags: []string{"Retention"}, CreatedAt: "2025-02-03"},
		{ID: "c", Title: "Slotting Optimizer", Description: "warehouse travel", Category: "SaaS", MarketScore: 87, Trending: false, Tags: []string{"Logistics"}, CreatedAt: "2024-09-14"},
		{ID: "d", Title: "Prep Forecaster", Description: "kitchen forecasting", Category: "SaaS", MarketScore: 91, Trending: true, Tags: []string{"AI", "Restaurants"}, CreatedAt: "2024-08-27"},
	}
}

func ids(ideas []Idea) []string {
	out := make([]string, 0, len(ideas))
	for _, i := range ideas {
		out = append(out, i.ID)
	}
	return out
}

func TestByCategory(t *testing.T) {
	in := fixtureIdeas()
	cases := []struct {
		name     string
		category string
		want     []string
	}{
		{name: "exact_match_preserves_order", category: "SaaS", want: []string{"b", "c", "d"}},
		{name: "all_wildcard_returns_everything", category: "All", want: []string{"a", "b", "c", "d"}},
		{name: "unknown_category_is_empty_not_error", category: "SpaceTech", want: []string{}},
		{name: "match_is_case_sensitive", category: "saas", want: []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(ByCategory(in, tc.category))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ByCategory(%q)=%v, want %v", tc.category, got, tc.want)
			}
		})
	}
}

func TestTrending(t *testing.T) {
	got := ids(Trending(fixtureIdeas()))
	want := []string{"a", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Trending()=%v, want %v", got, want)
	}
}

func TestTopRatedStableTieBreak(t *testing.T) {
	in := fixtureIdeas() // scores 92, 92, 87, 91 in input order
	got := ids(TopRated(in, 3))
	// The two 92s keep their input order, then 91.
	want := []string{"a", "b", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TopRated(3)=%v, want %v", got, want)
	}
}

func TestTopRatedLimitClamping(t *testing.T) {
	in := fixtureIdeas()
	if got := len(TopRated(in, 100)); got != len(in) {
		t.Fatalf("limit past collection size: got %d items, want %d", got, len(in))
	}
	if got := len(TopRated(in, 0)); got != 0 {
		t.Fatalf("zero limit: got %d items, want 0", got)
	}
}

func TestTopRatedDoesNotMutateInput(t *testing.T) {
	in := fixtureIdeas()
	before := ids(in)
	_ = TopRated(in, len(in))
	if !reflect.DeepEqual(ids(in), before) {
		t.Fatalf("input reordered: %v, want %v", ids(in), before)
	}
}

func TestSearch(t *testing.T) {
	in := fixtureIdeas()
	cases := []struct {
		name  string
		query string
		want  []string
	}{
		// "ai" matches title of a and tag "AI" of d (whose title lacks it).
		{name: "title_and_tag_matches", query: "ai", want: []string{"a", "d"}},
		{name: "description_match", query: "retention alerts", want: []string{"b"}},
		{name: "category_match", query: "fintech", want: []string{"a"}},
		{name: "case_insensitive", query: "CHURN", want: []string{"b"}},
		{name: "no_match", query: "blockchain", want: []string{}},
		{name: "empty_query_is_noop_filter", query: "", want: []string{"a", "b", "c", "d"}},
		{name: "whitespace_query_is_noop_filter", query: "   ", want: []string{"a", "b", "c", "d"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Search(in, tc.query))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Search(%q)=%v, want %v", tc.query, got, tc.want)
			}
		})
	}
}

func TestRelated(t *testing.T) {
	in := fixtureIdeas()
	cases := []struct {
		name  string
		id    string
		limit int
		want  []string
	}{
		{name: "same_category_excluding_self", id: "b", limit: 3, want: []string{"c", "d"}},
		{name: "cap_applies_in_original_order", id: "d", limit: 1, want: []string{"b"}},
		{name: "unknown_id_is_empty", id: "zzz", limit: 3, want: []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Related(in, tc.id, tc.limit))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Related(%q,%d)=%v, want %v", tc.id, tc.limit, got, tc.want)
			}
		})
	}
}

func TestBrowseSortModes(t *testing.T) {
	in := fixtureIdeas()
	cases := []struct {
		name     string
		query    string
		category string
		mode     SortMode
		want     []string
	}{
		{name: "score_sort_after_filters", query: "", category: "SaaS", mode: SortByScore, want: []string{"b", "d", "c"}},
		{name: "trending_first_is_stable_partition", query: "", category: "All", mode: SortTrending, want: []string{"a", "d", "b", "c"}},
		{name: "recent_sorts_by_created_at_desc", query: "", category: "All", mode: SortByRecent, want: []string{"b", "a", "c", "d"}},
		{name: "search_then_category_then_sort", query: "ai", category: "SaaS", mode: SortByScore, want: []string{"d"}},
		{name: "no_sort_mode_keeps_narrowed_order", query: "", category: "SaaS", mode: "", want: []string{"b", "c", "d"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Browse(in, tc.query, tc.category, tc.mode))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Browse(%q,%q,%q)=%v, want %v", tc.query, tc.category, tc.mode, got, tc.want)
			}
		})
	}
}

// Sorting must be the last stage: sorting then filtering would truncate the
// wrong top-N when the filter removes high scorers.
func TestBrowseSortIsLastStage(t *testing.T) {
	in := fixtureIdeas()
	got := ids(Browse(in, "", "SaaS", SortByScore))
	// Filtering first keeps all three SaaS ideas sorted by score. Pre-sorting
	// the whole set and truncating to 3 before filtering would have kept "a"
	// (FinTech, score 92) and dropped "c".
	want := []string{"b", "d", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Browse sorted-last=%v, want %v", got, want)
	}
	for _, id := range got {
		if id == "a" {
			t.Fatalf("category filter leaked a non-SaaS idea into results")
		}
	}
}
