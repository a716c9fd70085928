package services

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/Stevekaplanai/venturevault-backend/internal/catalog"
	"github.com/Stevekaplanai/venturevault-backend/internal/logger"
)

type fakeUpstream struct {
	ideas []catalog.Idea
	fail  bool
}

func (f *fakeUpstream) FetchIdeas(_ context.Context) ([]catalog.Idea, error) {
	if f.fail {
		return nil, fmt.Errorf("connection refused")
	}
	return f.ideas, nil
}

func (f *fakeUpstream) FetchIdea(_ context.Context, id string) (catalog.Idea, []catalog.Idea, error) {
	if f.fail {
		return catalog.Idea{}, nil, fmt.Errorf("connection refused")
	}
	for _, idea := range f.ideas {
		if idea.ID == id {
			return idea, nil, nil
		}
	}
	return catalog.Idea{}, nil, fmt.Errorf("not found")
}

func TestBrowseWithoutUpstream(t *testing.T) {
	store := catalog.NewStore(nil)
	svc := NewIdeaService(logger.NewNop(), store, nil, nil)

	ideas, source, err := svc.Browse(context.Background(), "", catalog.CategoryAll, catalog.SortByScore)
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if source != IdeaSourceStatic {
		t.Fatalf("source got=%q, want %q", source, IdeaSourceStatic)
	}
	if len(ideas) != store.Len() {
		t.Fatalf("idea count got=%d, want %d", len(ideas), store.Len())
	}
}

func TestBrowseSurfacesUpstreamFailure(t *testing.T) {
	store := catalog.NewStore(nil)
	svc := NewIdeaService(logger.NewNop(), store, &fakeUpstream{fail: true}, nil)

	// The list endpoint reports the failure so clients can render retry.
	_, _, err := svc.Browse(context.Background(), "", catalog.CategoryAll, catalog.SortByScore)
	if err == nil {
		t.Fatalf("Browse with failing upstream: got nil error")
	}
}

func TestDetailFallsBackSilently(t *testing.T) {
	store := catalog.NewStore(nil)
	svc := NewIdeaService(logger.NewNop(), store, &fakeUpstream{fail: true}, nil)
	id := catalog.Dataset()[0].ID

	// Detail lookups never error out on upstream failure; the static record
	// and locally computed related set come back identical on every attempt.
	firstIdea, firstRelated, source, ok := svc.GetIdea(context.Background(), id)
	if !ok {
		t.Fatalf("GetIdea(%q) not found", id)
	}
	if source != IdeaSourceStatic {
		t.Fatalf("source got=%q, want %q", source, IdeaSourceStatic)
	}
	secondIdea, secondRelated, _, _ := svc.GetIdea(context.Background(), id)
	if !reflect.DeepEqual(firstIdea, secondIdea) || !reflect.DeepEqual(firstRelated, secondRelated) {
		t.Fatalf("repeated fallback lookups diverged")
	}
	if len(firstRelated) > 3 {
		t.Fatalf("related count got=%d, want <= 3", len(firstRelated))
	}
	for _, rel := range firstRelated {
		if rel.Category != firstIdea.Category {
			t.Fatalf("related idea %q has category %q, want %q", rel.ID, rel.Category, firstIdea.Category)
		}
		if rel.ID == firstIdea.ID {
			t.Fatalf("related set contains the idea itself")
		}
	}
}

func TestGetIdeaUnknownID(t *testing.T) {
	svc := NewIdeaService(logger.NewNop(), catalog.NewStore(nil), nil, nil)
	if _, _, _, ok := svc.GetIdea(context.Background(), "missing"); ok {
		t.Fatalf("GetIdea(missing) got ok=true")
	}
}

func TestBrowseUsesLiveData(t *testing.T) {
	store := catalog.NewStore(nil)
	live := []catalog.Idea{
		{ID: "live-1", Title: "Live One", Category: "SaaS", MarketScore: 70},
		{ID: "live-2", Title: "Live Two", Category: "SaaS", MarketScore: 90},
	}
	svc := NewIdeaService(logger.NewNop(), store, &fakeUpstream{ideas: live}, nil)

	ideas, source, err := svc.Browse(context.Background(), "", catalog.CategoryAll, catalog.SortByScore)
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if source != IdeaSourceLive {
		t.Fatalf("source got=%q, want %q", source, IdeaSourceLive)
	}
	// Live data replaces the static set entirely, sorted by score.
	if len(ideas) != 2 || ideas[0].ID != "live-2" || ideas[1].ID != "live-1" {
		t.Fatalf("live browse got=%+v", ideas)
	}
}
