package catalog

// CompetitionLevel grades how crowded an idea's market is.
type CompetitionLevel string

const (
	CompetitionLow    CompetitionLevel = "Low"
	CompetitionMedium CompetitionLevel = "Medium"
	CompetitionHigh   CompetitionLevel = "High"
)

// Published category set. "All" is a query-time wildcard, never stored on an Idea.
const (
	CategoryAll         = "All"
	CategorySaaS        = "SaaS"
	CategoryAIML        = "AI/ML"
	CategoryEcommerce   = "E-commerce"
	CategoryFinTech     = "FinTech"
	CategoryHealthTech  = "HealthTech"
	CategoryEdTech      = "EdTech"
	CategoryMarketplace = "Marketplace"
)

// Categories lists the stored category values in display order.
func Categories() []string {
	return []string{
		CategorySaaS,
		CategoryAIML,
		CategoryEcommerce,
		CategoryFinTech,
		CategoryHealthTech,
		CategoryEdTech,
		CategoryMarketplace,
	}
}

// Persona is one target-customer profile attached to an Idea.
type Persona struct {
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Demographics string   `json:"demographics"`
	PainPoints   []string `json:"painPoints"`
	Goals        []string `json:"goals"`
	Channels     []string `json:"channels"`
}

// Playbook is a 12-week launch plan in three phases. When present all three
// phases are populated; a partial playbook is not a valid state.
type Playbook struct {
	Week1to4  []string `json:"week1to4"`
	Week5to8  []string `json:"week5to8"`
	Week9to12 []string `json:"week9to12"`
}

type UnitEconomics struct {
	CACEstimate   string `json:"cacEstimate"`
	LTVEstimate   string `json:"ltvEstimate"`
	PaybackPeriod string `json:"paybackPeriod"`
	GrossMargin   string `json:"grossMargin"`
}

type LandingPageCopy struct {
	Headlines  []string `json:"headlines"`
	ValueProps []string `json:"valueProps"`
	CTAOptions []string `json:"ctaOptions"`
}

// Idea is one catalog entry: a startup opportunity with market metadata.
// The JSON shape mirrors the upstream idea service exactly. Apart from
// MarketScore the magnitude fields (PotentialRevenue, MarketSize, GrowthRate,
// InitialInvestment, TimeToMVP) are free-text descriptors and must never be
// parsed as numbers.
type Idea struct {
	ID                string           `json:"id"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	FullDescription   string           `json:"fullDescription"`
	Category          string           `json:"category"`
	MarketScore       int              `json:"marketScore"`
	CompetitionLevel  CompetitionLevel `json:"competitionLevel"`
	PotentialRevenue  string           `json:"potentialRevenue"`
	Trending          bool             `json:"trending"`
	Tags              []string         `json:"tags"`
	TargetAudience    string           `json:"targetAudience"`
	ProblemSolved     string           `json:"problemSolved"`
	MonetizationModel []string         `json:"monetizationModel"`
	MarketSize        string           `json:"marketSize"`
	GrowthRate        string           `json:"growthRate"`
	KeyCompetitors    []string         `json:"keyCompetitors"`
	MVPFeatures       []string         `json:"mvpFeatures"`
	TechStack         []string         `json:"techStack"`
	TimeToMVP         string           `json:"timeToMVP"`
	InitialInvestment string           `json:"initialInvestment"`
	CreatedAt         string           `json:"createdAt"`

	CustomerPersonas []Persona        `json:"customerPersonas,omitempty"`
	Playbook         *Playbook        `json:"playbook,omitempty"`
	UnitEconomics    *UnitEconomics   `json:"unitEconomics,omitempty"`
	LandingPageCopy  *LandingPageCopy `json:"landingPageCopy,omitempty"`
}
