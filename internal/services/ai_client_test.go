package services

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Stevekaplanai/venturevault-backend/internal/logger"
)

func TestFallbackResearchIsDeterministic(t *testing.T) {
	ac := NewAIClient(logger.NewNop(), nil)
	ctx := context.Background()

	first, source := ac.Research(ctx, "meal planning for athletes")
	if source != AISourceFallback {
		t.Fatalf("source got=%q, want %q", source, AISourceFallback)
	}
	second, _ := ac.Research(ctx, "meal planning for athletes")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same query produced different payloads:\n%+v\n%+v", first, second)
	}
	if first.Score < 0 || first.Score > 100 {
		t.Fatalf("score out of range: %d", first.Score)
	}
	if len(first.SWOT.Strengths) == 0 || len(first.Recommendations) == 0 {
		t.Fatalf("payload missing sections: %+v", first)
	}
}

func TestFallbackResearchVariesByQuery(t *testing.T) {
	ac := NewAIClient(logger.NewNop(), nil)
	ctx := context.Background()

	a, _ := ac.Research(ctx, "pet insurance comparison")
	b, _ := ac.Research(ctx, "fleet telematics for contractors")
	if a.Summary == b.Summary && a.Score == b.Score {
		t.Fatalf("distinct queries produced identical payloads")
	}
}

func TestFallbackGenerateIsDeterministic(t *testing.T) {
	ac := NewAIClient(logger.NewNop(), nil)
	ctx := context.Background()
	req := GenerateIdeasRequest{
		Skills:               []string{"go", "devops"},
		Interests:            []string{"logistics"},
		IncludeMarketContext: true,
	}

	first, firstCtx, source := ac.GenerateIdeas(ctx, req)
	if source != AISourceFallback {
		t.Fatalf("source got=%q, want %q", source, AISourceFallback)
	}
	second, secondCtx, _ := ac.GenerateIdeas(ctx, req)
	if !reflect.DeepEqual(first, second) || firstCtx != secondCtx {
		t.Fatalf("same request produced different results")
	}
	if len(first) != 3 {
		t.Fatalf("idea count got=%d, want 3", len(first))
	}
	for _, idea := range first {
		if idea.Title == "" || idea.Description == "" || len(idea.FirstSteps) == 0 {
			t.Fatalf("incomplete idea: %+v", idea)
		}
		if idea.MarketScore < 0 || idea.MarketScore > 100 {
			t.Fatalf("market score out of range: %d", idea.MarketScore)
		}
	}
	if firstCtx == "" {
		t.Fatalf("market context requested but empty")
	}
}

type stubModelClient struct {
	jsonPayload map[string]any
	text        string
	textCalls   int
}

func (s *stubModelClient) GenerateJSON(_ context.Context, _, _, _ string, _ map[string]any) (map[string]any, error) {
	return s.jsonPayload, nil
}

func (s *stubModelClient) GenerateText(_ context.Context, _, _ string) (string, error) {
	s.textCalls++
	return s.text, nil
}

func TestLiveGenerateMarketContextUsesTextCompletion(t *testing.T) {
	stub := &stubModelClient{
		jsonPayload: map[string]any{
			"ideas": []any{map[string]any{
				"title": "Fleet Margin Radar", "description": "Tracks per-route margins.",
				"category": "SaaS", "tags": []any{"logistics"}, "marketScore": 78,
				"revenueModel": "Subscription", "whyYou": "You ran ops.",
				"firstSteps": []any{"Interview dispatchers"},
			}},
		},
		text: "  Freight software budgets are expanding this year.  ",
	}
	ac := NewAIClient(logger.NewNop(), stub)

	ideas, marketContext, source := ac.GenerateIdeas(context.Background(), GenerateIdeasRequest{
		Skills:               []string{"ops"},
		Interests:            []string{"logistics"},
		IncludeMarketContext: true,
	})
	if source != AISourceLive {
		t.Fatalf("source got=%q, want %q", source, AISourceLive)
	}
	if len(ideas) != 1 || ideas[0].Title != "Fleet Margin Radar" {
		t.Fatalf("unexpected ideas: %+v", ideas)
	}
	if marketContext != "Freight software budgets are expanding this year." {
		t.Fatalf("market context got=%q", marketContext)
	}
	if stub.textCalls != 1 {
		t.Fatalf("text completion calls got=%d, want 1", stub.textCalls)
	}

	_, marketContext, _ = ac.GenerateIdeas(context.Background(), GenerateIdeasRequest{
		Skills:    []string{"ops"},
		Interests: []string{"logistics"},
	})
	if marketContext != "" {
		t.Fatalf("market context got=%q, want empty when not requested", marketContext)
	}
	if stub.textCalls != 1 {
		t.Fatalf("text completion called without market context request")
	}
}

func TestFallbackGenerateFormatsCleanly(t *testing.T) {
	// Every template is filled with one title argument and two
	// description arguments, so the verb counts must match.
	for i, tpl := range mockIdeaTemplates {
		if got := strings.Count(tpl.Title, "%s"); got != 1 {
			t.Fatalf("template %d title has %d format verbs, want 1", i, got)
		}
		if got := strings.Count(tpl.Description, "%s"); got != 2 {
			t.Fatalf("template %d description has %d format verbs, want 2", i, got)
		}
	}

	ac := NewAIClient(logger.NewNop(), nil)
	ctx := context.Background()

	requests := []GenerateIdeasRequest{
		{Skills: []string{"go"}, Interests: []string{"logistics"}, IncludeMarketContext: true},
		{Skills: []string{"sales"}, Interests: []string{"real estate"}, ProblemAreas: []string{"slow closings"}, IncludeMarketContext: true},
		{Skills: []string{"ml", "design"}, Interests: []string{"healthcare", "fitness"}},
		{Skills: []string{"ops"}, Interests: []string{"restaurants"}, ProblemAreas: []string{"food waste"}},
	}
	for _, req := range requests {
		ideas, marketContext, _ := ac.GenerateIdeas(ctx, req)
		for _, idea := range ideas {
			for _, field := range []string{idea.Title, idea.Description, idea.WhyYou} {
				if strings.Contains(field, "%!") {
					t.Fatalf("unconsumed format verb in %q (request %+v)", field, req)
				}
			}
		}
		if strings.Contains(marketContext, "%!") {
			t.Fatalf("unconsumed format verb in market context %q", marketContext)
		}
	}
}

func TestFallbackGenerateMultibyteInterest(t *testing.T) {
	ac := NewAIClient(logger.NewNop(), nil)
	ideas, _, _ := ac.GenerateIdeas(context.Background(), GenerateIdeasRequest{
		Skills:    []string{"coaching"},
		Interests: []string{"éducation finance"},
	})
	for _, idea := range ideas {
		if !utf8.ValidString(idea.Title) {
			t.Fatalf("title is not valid UTF-8: %q", idea.Title)
		}
		if !strings.Contains(idea.Title, "Éducation Finance") {
			t.Fatalf("title %q missing capitalized interest", idea.Title)
		}
	}
}

func TestFallbackGenerateWithoutMarketContext(t *testing.T) {
	ac := NewAIClient(logger.NewNop(), nil)
	ideas, marketContext, _ := ac.GenerateIdeas(context.Background(), GenerateIdeasRequest{
		Skills:    []string{"design"},
		Interests: []string{"education"},
	})
	if len(ideas) != 3 {
		t.Fatalf("idea count got=%d, want 3", len(ideas))
	}
	if marketContext != "" {
		t.Fatalf("market context got=%q, want empty", marketContext)
	}
}
