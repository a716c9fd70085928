package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Stevekaplanai/venturevault-backend/internal/catalog"
	"github.com/Stevekaplanai/venturevault-backend/internal/logger"
)

// Client talks to the hosted idea service that is the live source of truth
// for catalog data. Every caller treats it as optional: on any failure the
// static catalog store takes over, and live data always replaces (never
// merges with) the static set.
type Client interface {
	FetchIdeas(ctx context.Context) ([]catalog.Idea, error)
	FetchIdea(ctx context.Context, id string) (catalog.Idea, []catalog.Idea, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	httpClient *http.Client
}

// New builds a client against baseURL. An empty baseURL means no upstream is
// configured; New reports that as an error and the caller skips live fetches
// entirely.
func New(log *logger.Logger, baseURL string) (Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("no upstream idea service configured")
	}
	return &client{
		log:        log.With("service", "UpstreamIdeaClient"),
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type ideasResponse struct {
	Ideas []catalog.Idea `json:"ideas"`
}

type ideaResponse struct {
	Idea         *catalog.Idea  `json:"idea"`
	RelatedIdeas []catalog.Idea `json:"relatedIdeas"`
}

func (c *client) FetchIdeas(ctx context.Context) ([]catalog.Idea, error) {
	var parsed ideasResponse
	if err := c.getJSON(ctx, c.baseURL+"/api/ideas", &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Ideas) == 0 {
		return nil, fmt.Errorf("upstream returned no ideas")
	}
	return parsed.Ideas, nil
}

func (c *client) FetchIdea(ctx context.Context, id string) (catalog.Idea, []catalog.Idea, error) {
	u := fmt.Sprintf("%s/api/get-idea?id=%s", c.baseURL, url.QueryEscape(id))
	var parsed ideaResponse
	if err := c.getJSON(ctx, u, &parsed); err != nil {
		return catalog.Idea{}, nil, err
	}
	if parsed.Idea == nil || parsed.Idea.ID == "" {
		return catalog.Idea{}, nil, fmt.Errorf("upstream returned no idea for %q", id)
	}
	return *parsed.Idea, parsed.RelatedIdeas, nil
}

func (c *client) getJSON(ctx context.Context, rawURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream call: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream status %d", res.StatusCode)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read upstream body: %w", err)
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("malformed upstream body: %w", err)
	}
	return nil
}
