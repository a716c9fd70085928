package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Stevekaplanai/venturevault-backend/internal/catalog"
	redisc "github.com/Stevekaplanai/venturevault-backend/internal/clients/redis"
	"github.com/Stevekaplanai/venturevault-backend/internal/clients/upstream"
	"github.com/Stevekaplanai/venturevault-backend/internal/logger"
)

// IdeaSource tags where a response's records came from so clients can tell a
// live result from the built-in fallback set.
type IdeaSource string

const (
	IdeaSourceLive   IdeaSource = "live"
	IdeaSourceStatic IdeaSource = "static"
)

const (
	upstreamListCacheKey = "ideas:upstream:list"
	upstreamListCacheTTL = 60 * time.Second
	relatedIdeasLimit    = 3
)

// IdeaService serves catalog reads. When an upstream idea service is
// configured its data fully replaces the static set for that request; it is
// never merged. The two failure paths differ deliberately: the browse list
// surfaces upstream failure as an error (clients render retry), while detail
// lookups silently fall back to the static store and compute related ideas
// locally.
type IdeaService interface {
	Browse(ctx context.Context, query, category string, sort catalog.SortMode) ([]catalog.Idea, IdeaSource, error)
	GetIdea(ctx context.Context, id string) (catalog.Idea, []catalog.Idea, IdeaSource, bool)
	Categories() []string
}

type ideaService struct {
	log      *logger.Logger
	store    *catalog.Store
	upstream upstream.Client // nil when not configured
	cache    redisc.Cache    // nil when redis is unavailable
}

func NewIdeaService(log *logger.Logger, store *catalog.Store, up upstream.Client, cache redisc.Cache) IdeaService {
	return &ideaService{
		log:      log.With("service", "IdeaService"),
		store:    store,
		upstream: up,
		cache:    cache,
	}
}

func (is *ideaService) Browse(ctx context.Context, query, category string, sort catalog.SortMode) ([]catalog.Idea, IdeaSource, error) {
	if is.upstream == nil {
		return catalog.Browse(is.store.All(), query, category, sort), IdeaSourceStatic, nil
	}
	ideas, err := is.liveIdeas(ctx)
	if err != nil {
		is.log.Warn("Upstream idea fetch failed for browse", "error", err)
		return nil, IdeaSourceStatic, fmt.Errorf("upstream idea service unavailable: %w", err)
	}
	return catalog.Browse(ideas, query, category, sort), IdeaSourceLive, nil
}

func (is *ideaService) GetIdea(ctx context.Context, id string) (catalog.Idea, []catalog.Idea, IdeaSource, bool) {
	if is.upstream != nil {
		idea, related, err := is.upstream.FetchIdea(ctx, id)
		if err == nil {
			if len(related) > relatedIdeasLimit {
				related = related[:relatedIdeasLimit]
			}
			return idea, related, IdeaSourceLive, true
		}
		is.log.Debug("Upstream detail fetch failed, falling back to static store", "id", id, "error", err)
	}

	idea, ok := is.store.GetByID(id)
	if !ok {
		return catalog.Idea{}, nil, IdeaSourceStatic, false
	}
	related := catalog.Related(is.store.All(), id, relatedIdeasLimit)
	return idea, related, IdeaSourceStatic, true
}

func (is *ideaService) Categories() []string {
	return catalog.Categories()
}

// liveIdeas consults the short-lived redis cache before hitting the upstream
// service. Only the raw upstream list is cached; derived views are always
// recomputed per request.
func (is *ideaService) liveIdeas(ctx context.Context) ([]catalog.Idea, error) {
	if is.cache != nil {
		var cached []catalog.Idea
		if hit, err := is.cache.GetJSON(ctx, upstreamListCacheKey, &cached); err == nil && hit && len(cached) > 0 {
			return cached, nil
		}
	}
	ideas, err := is.upstream.FetchIdeas(ctx)
	if err != nil {
		return nil, err
	}
	if is.cache != nil {
		if err := is.cache.SetJSON(ctx, upstreamListCacheKey, ideas, upstreamListCacheTTL); err != nil {
			is.log.Debug("Caching upstream ideas failed", "error", err)
		}
	}
	return ideas, nil
}
