package services

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Stevekaplanai/venturevault-backend/internal/clients/openai"
	"github.com/Stevekaplanai/venturevault-backend/internal/logger"
)

// AISource tags whether an AI payload came from the live model or the
// built-in mock generator, so callers and tests can tell the paths apart.
type AISource string

const (
	AISourceLive     AISource = "live"
	AISourceFallback AISource = "fallback"
)

// MarketSize is the TAM/SAM/SOM breakdown of a research payload.
type MarketSize struct {
	TAM string `json:"tam"`
	SAM string `json:"sam"`
	SOM string `json:"som"`
}

type Competitor struct {
	Name     string `json:"name"`
	Strength string `json:"strength"`
	Weakness string `json:"weakness"`
}

type SWOT struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

// MarketResearch is the full market-analysis payload for one query.
type MarketResearch struct {
	Query           string       `json:"query"`
	Summary         string       `json:"summary"`
	MarketSize      MarketSize   `json:"marketSize"`
	Competitors     []Competitor `json:"competitors"`
	SWOT            SWOT         `json:"swot"`
	Trends          []string     `json:"trends"`
	Recommendations []string     `json:"recommendations"`
	Score           int          `json:"score"`
}

// GeneratedIdea is one idea produced by the generator, shaped like a catalog
// record but never joined into the curated set.
type GeneratedIdea struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
	MarketScore  int      `json:"marketScore"`
	RevenueModel string   `json:"revenueModel"`
	WhyYou       string   `json:"whyYou"`
	FirstSteps   []string `json:"firstSteps"`
}

type GenerateIdeasRequest struct {
	Skills               []string `json:"skills"`
	Interests            []string `json:"interests"`
	ProblemAreas         []string `json:"problemAreas,omitempty"`
	IncludeMarketContext bool     `json:"includeMarketContext"`
}

// AIClient is the single abstraction behind both AI pages. The live path
// calls the model with a strict JSON schema; any failure (or an absent
// client) routes to the deterministic mock generator, and every result is
// tagged with the path taken.
type AIClient interface {
	Research(ctx context.Context, query string) (MarketResearch, AISource)
	GenerateIdeas(ctx context.Context, req GenerateIdeasRequest) ([]GeneratedIdea, string, AISource)
}

type aiClient struct {
	log    *logger.Logger
	openai openai.Client // nil runs fallback-only, the local-dev mode
}

func NewAIClient(log *logger.Logger, oa openai.Client) AIClient {
	return &aiClient{log: log.With("service", "AIClient"), openai: oa}
}

func (ac *aiClient) Research(ctx context.Context, query string) (MarketResearch, AISource) {
	query = strings.TrimSpace(query)
	if ac.openai != nil {
		research, err := ac.liveResearch(ctx, query)
		if err == nil {
			return research, AISourceLive
		}
		ac.log.Warn("Live research call failed, using fallback generator", "error", err)
	}
	return mockResearch(query), AISourceFallback
}

func (ac *aiClient) GenerateIdeas(ctx context.Context, req GenerateIdeasRequest) ([]GeneratedIdea, string, AISource) {
	if ac.openai != nil {
		ideas, marketContext, err := ac.liveGenerate(ctx, req)
		if err == nil && len(ideas) > 0 {
			return ideas, marketContext, AISourceLive
		}
		if err != nil {
			ac.log.Warn("Live idea generation failed, using fallback generator", "error", err)
		}
	}
	ideas, marketContext := mockGenerateIdeas(req)
	return ideas, marketContext, AISourceFallback
}

func (ac *aiClient) liveResearch(ctx context.Context, query string) (MarketResearch, error) {
	schema := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required": []string{
			"summary", "marketSize", "competitors", "swot",
			"trends", "recommendations", "score",
		},
		"properties": map[string]any{
			"summary": map[string]any{"type": "string"},
			"marketSize": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"tam", "sam", "som"},
				"properties": map[string]any{
					"tam": map[string]any{"type": "string"},
					"sam": map[string]any{"type": "string"},
					"som": map[string]any{"type": "string"},
				},
			},
			"competitors": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"name", "strength", "weakness"},
					"properties": map[string]any{
						"name":     map[string]any{"type": "string"},
						"strength": map[string]any{"type": "string"},
						"weakness": map[string]any{"type": "string"},
					},
				},
			},
			"swot": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []string{"strengths", "weaknesses", "opportunities", "threats"},
				"properties": map[string]any{
					"strengths":     stringArraySchema(),
					"weaknesses":    stringArraySchema(),
					"opportunities": stringArraySchema(),
					"threats":       stringArraySchema(),
				},
			},
			"trends":          stringArraySchema(),
			"recommendations": stringArraySchema(),
			"score":           map[string]any{"type": "integer"},
		},
	}

	raw, err := ac.openai.GenerateJSON(ctx,
		"You are a startup market analyst. Produce a concise, realistic market research report for the given business idea.",
		fmt.Sprintf("Business idea: %s", query),
		"market_research", schema)
	if err != nil {
		return MarketResearch{}, err
	}
	var research MarketResearch
	if err := remarshal(raw, &research); err != nil {
		return MarketResearch{}, err
	}
	research.Query = query
	if research.Score < 0 || research.Score > 100 {
		return MarketResearch{}, fmt.Errorf("model score %d out of range", research.Score)
	}
	return research, nil
}

func (ac *aiClient) liveGenerate(ctx context.Context, req GenerateIdeasRequest) ([]GeneratedIdea, string, error) {
	schema := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"ideas"},
		"properties": map[string]any{
			"ideas": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required": []string{
						"title", "description", "category", "tags",
						"marketScore", "revenueModel", "whyYou", "firstSteps",
					},
					"properties": map[string]any{
						"title":        map[string]any{"type": "string"},
						"description":  map[string]any{"type": "string"},
						"category":     map[string]any{"type": "string"},
						"tags":         stringArraySchema(),
						"marketScore":  map[string]any{"type": "integer"},
						"revenueModel": map[string]any{"type": "string"},
						"whyYou":       map[string]any{"type": "string"},
						"firstSteps":   stringArraySchema(),
					},
				},
			},
		},
	}

	var prompt strings.Builder
	prompt.WriteString("Generate three startup ideas tailored to this founder profile.\n")
	prompt.WriteString("Skills: " + strings.Join(req.Skills, ", ") + "\n")
	prompt.WriteString("Interests: " + strings.Join(req.Interests, ", ") + "\n")
	if len(req.ProblemAreas) > 0 {
		prompt.WriteString("Problem areas they care about: " + strings.Join(req.ProblemAreas, ", ") + "\n")
	}

	raw, err := ac.openai.GenerateJSON(ctx,
		"You are a startup idea generator. Produce concrete, buildable business ideas matched to the founder's skills and interests.",
		prompt.String(), "generated_ideas", schema)
	if err != nil {
		return nil, "", err
	}
	var out struct {
		Ideas []GeneratedIdea `json:"ideas"`
	}
	if err := remarshal(raw, &out); err != nil {
		return nil, "", err
	}

	// The market context is free prose, not schema-bound JSON, so it goes
	// through a plain text completion.
	marketContext := ""
	if req.IncludeMarketContext {
		marketContext, err = ac.openai.GenerateText(ctx,
			"You are a startup market analyst. Answer with a single short paragraph and no preamble.",
			fmt.Sprintf("Describe current market conditions for a founder with skills in %s building for %s.",
				strings.Join(req.Skills, ", "), strings.Join(req.Interests, ", ")))
		if err != nil {
			return nil, "", err
		}
		marketContext = strings.TrimSpace(marketContext)
	}
	return out.Ideas, marketContext, nil
}

func stringArraySchema() map[string]any {
	return map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
}

func remarshal(raw map[string]any, dest any) error {
	buf, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("re-encode model payload: %w", err)
	}
	if err := json.Unmarshal(buf, dest); err != nil {
		return fmt.Errorf("decode model payload: %w", err)
	}
	return nil
}

// seed hashes the inputs so the mock generators stay deterministic: the same
// request always yields the same payload.
func seed(parts ...string) uint32 {
	h := fnv.New32a()
	for _, p := range parts {
		_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(p))))
		_, _ = h.Write([]byte{0})
	}
	return h.Sum32()
}

func pick(s uint32, offset int, options []string) string {
	return options[(int(s)+offset)%len(options)]
}

func mockResearch(query string) MarketResearch {
	s := seed(query)
	subject := query
	if subject == "" {
		subject = "this market"
	}

	sizes := []string{"$4.2B", "$9.8B", "$15.4B", "$27.1B", "$48.6B"}
	growth := []string{
		"growing 11% annually",
		"growing 18% annually",
		"expanding on the back of remote-work adoption",
		"consolidating around a few well-funded incumbents",
	}

	return MarketResearch{
		Query: query,
		Summary: fmt.Sprintf(
			"The market around %s shows a global opportunity of roughly %s, %s. Early entrants compete on distribution rather than technology, leaving room for a focused niche product.",
			subject, pick(s, 0, sizes), pick(s, 1, growth)),
		MarketSize: MarketSize{
			TAM: pick(s, 0, sizes),
			SAM: pick(s, 2, []string{"$820M", "$1.4B", "$2.3B", "$3.9B"}),
			SOM: pick(s, 3, []string{"$24M", "$58M", "$95M", "$140M"}),
		},
		Competitors: []Competitor{
			{
				Name:     pick(s, 0, []string{"MarketLeader Inc", "Incumbent Labs", "FirstMover Co", "Category King"}),
				Strength: "Strong brand recognition and an established distribution channel",
				Weakness: "Legacy product with slow release cycles and an aging interface",
			},
			{
				Name:     pick(s, 1, []string{"NicheTool", "UpstartHQ", "SideChannel", "FocusWorks"}),
				Strength: "Loyal community in a single vertical",
				Weakness: "Limited feature depth outside its core workflow",
			},
		},
		SWOT: SWOT{
			Strengths: []string{
				"Clear differentiation for an underserved segment",
				"Low infrastructure cost at launch scale",
			},
			Weaknesses: []string{
				"No existing brand or audience",
				"Single-founder execution risk in the first year",
			},
			Opportunities: []string{
				pick(s, 2, []string{
					"Incumbents ignore the SMB tier",
					"Regulatory shifts are forcing tool replacement",
					"AI features are resetting buyer expectations",
					"Procurement is moving to self-serve purchasing",
				}),
				"Partnership channels with adjacent products remain open",
			},
			Threats: []string{
				"A funded competitor could outspend on acquisition",
				"Platform dependency on third-party APIs",
			},
		},
		Trends: []string{
			pick(s, 4, []string{
				"Buyers increasingly expect usage-based pricing",
				"Vertical-specific tooling is outgrowing horizontal suites",
				"Compliance requirements are pushing spend toward specialists",
				"Community-led growth is replacing outbound sales",
			}),
			"AI-assisted workflows are becoming table stakes",
		},
		Recommendations: []string{
			"Validate willingness to pay with a concierge pilot before building",
			"Pick one narrow segment and own its workflow end to end",
			pick(s, 5, []string{
				"Launch with a free tier to seed word of mouth",
				"Anchor pricing to a measurable cost saving",
				"Build in public to attract the early-adopter audience",
				"Target the integration gap incumbents leave open",
			}),
		},
		Score: 55 + int(s%41), // 55..95
	}
}

var mockIdeaTemplates = []GeneratedIdea{
	{
		Title:        "Workflow Autopilot for %s",
		Description:  "A tool that watches how %s teams handle %s and automates the repetitive half of it, starting with the single most painful weekly task.",
		Category:     "SaaS",
		Tags:         []string{"automation", "productivity", "b2b"},
		RevenueModel: "Monthly subscription per seat with a free single-user tier",
		FirstSteps: []string{
			"Interview ten practitioners about their weekly routine",
			"Prototype the one automation they all complain about",
			"Charge for it before generalizing",
		},
	},
	{
		Title:        "%s Insights Dashboard",
		Description:  "An analytics layer that turns scattered %s data into one scoreboard for people working on %s, with alerts when a number drifts.",
		Category:     "AI/ML",
		Tags:         []string{"analytics", "dashboard", "ai"},
		RevenueModel: "Tiered subscription priced on data volume",
		FirstSteps: []string{
			"Pick the three metrics the audience already tracks by hand",
			"Ship a read-only dashboard fed by CSV import",
			"Add integrations only after five paying users ask",
		},
	},
	{
		Title:        "Marketplace for %s Specialists",
		Description:  "A curated two-sided market connecting people who need help with %s to specialists vetted on %s, with escrowed payments and outcome reviews.",
		Category:     "Marketplace",
		Tags:         []string{"marketplace", "services", "community"},
		RevenueModel: "Transaction fee on completed engagements",
		FirstSteps: []string{
			"Recruit ten supply-side specialists by hand",
			"Broker the first deals manually over email",
			"Automate matching once demand is proven",
		},
	},
	{
		Title:        "Learning Companion for %s",
		Description:  "A structured practice product that turns %s expertise into guided exercises for people breaking into %s, with progress tracking.",
		Category:     "EdTech",
		Tags:         []string{"education", "learning", "cohort"},
		RevenueModel: "One-time course purchase plus an optional coaching add-on",
		FirstSteps: []string{
			"Outline a four-week curriculum from your own notes",
			"Run one paid cohort of eight students",
			"Record the sessions into a self-serve product",
		},
	},
}

func mockGenerateIdeas(req GenerateIdeasRequest) ([]GeneratedIdea, string) {
	s := seed(append(append(append([]string{}, req.Skills...), req.Interests...), req.ProblemAreas...)...)

	skill := "software"
	if len(req.Skills) > 0 {
		skill = req.Skills[int(s)%len(req.Skills)]
	}
	interest := "small businesses"
	if len(req.Interests) > 0 {
		interest = req.Interests[int(s/7)%len(req.Interests)]
	}
	problem := interest
	if len(req.ProblemAreas) > 0 {
		problem = req.ProblemAreas[int(s/13)%len(req.ProblemAreas)]
	}

	ideas := make([]GeneratedIdea, 0, 3)
	for i := 0; i < 3; i++ {
		tpl := mockIdeaTemplates[(int(s)+i)%len(mockIdeaTemplates)]
		idea := tpl
		idea.Title = fmt.Sprintf(tpl.Title, titleWord(interest))
		idea.Description = fmt.Sprintf(tpl.Description, skill, problem)
		idea.MarketScore = 60 + int((s+uint32(i)*17)%36) // 60..95
		idea.WhyYou = fmt.Sprintf("Your background in %s gives you an unfair advantage: you already understand the workflow your customers in %s live inside.", skill, interest)
		idea.Tags = append([]string(nil), tpl.Tags...)
		idea.FirstSteps = append([]string(nil), tpl.FirstSteps...)
		ideas = append(ideas, idea)
	}

	marketContext := ""
	if req.IncludeMarketContext {
		marketContext = fmt.Sprintf(
			"Tooling for %s is in an adoption upswing: buyers who digitized during the last platform shift are now replacing first-generation tools, and niche products with strong %s workflows are winning those migrations.",
			interest, skill)
	}
	return ideas, marketContext
}

// titleWord uppercases the first rune of each word for use inside titles.
func titleWord(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	if len(words) == 0 {
		return "Niche"
	}
	return strings.Join(words, " ")
}
