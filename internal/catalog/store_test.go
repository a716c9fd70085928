package catalog

import "testing"

func TestStoreGetByID(t *testing.T) {
	store := NewStore(nil)

	idea, ok := store.GetByID("ai-finance-coach")
	if !ok {
		t.Fatalf("expected ai-finance-coach in the built-in dataset")
	}
	if idea.Title != "AI-Powered Personal Finance Coach" {
		t.Fatalf("unexpected title: %q", idea.Title)
	}
	// Enrichment sub-objects ride along on lookups.
	if idea.Playbook == nil || len(idea.CustomerPersonas) == 0 {
		t.Fatalf("expected playbook and personas on ai-finance-coach")
	}

	if _, ok := store.GetByID("does-not-exist"); ok {
		t.Fatalf("unknown id must report not-found, not a record")
	}
}

func TestStoreAllIsACopy(t *testing.T) {
	store := NewStore(nil)
	first := store.All()
	first[0], first[1] = first[1], first[0]

	again := store.All()
	if again[0].ID == first[0].ID && again[1].ID == first[1].ID {
		t.Fatalf("mutating All() result leaked into the store")
	}
}

func TestDatasetInvariants(t *testing.T) {
	ideas := Dataset()
	// The built-in collection ships around fifty records so every
	// category page has something to browse.
	if len(ideas) < 45 {
		t.Fatalf("dataset has %d ideas, want at least 45", len(ideas))
	}
	seen := map[string]bool{}
	valid := map[string]bool{}
	covered := map[string]bool{}
	for _, c := range Categories() {
		valid[c] = true
	}
	for _, idea := range ideas {
		covered[idea.Category] = true
		if idea.ID == "" {
			t.Fatalf("idea %q has empty id", idea.Title)
		}
		if seen[idea.ID] {
			t.Fatalf("duplicate id %q", idea.ID)
		}
		seen[idea.ID] = true
		if idea.MarketScore < 0 || idea.MarketScore > 100 {
			t.Fatalf("idea %q market score out of range: %d", idea.ID, idea.MarketScore)
		}
		if !valid[idea.Category] {
			t.Fatalf("idea %q has unpublished category %q", idea.ID, idea.Category)
		}
		if idea.Category == CategoryAll {
			t.Fatalf("idea %q stores the All wildcard as a category", idea.ID)
		}
		// Playbooks are all-or-nothing.
		if p := idea.Playbook; p != nil {
			if len(p.Week1to4) == 0 || len(p.Week5to8) == 0 || len(p.Week9to12) == 0 {
				t.Fatalf("idea %q has a partial playbook", idea.ID)
			}
		}
	}
	for _, c := range Categories() {
		if !covered[c] {
			t.Fatalf("category %q has no ideas in the dataset", c)
		}
	}
}
