package catalog

// Dataset returns the built-in idea collection. Declaration order is the
// canonical collection order every derived view preserves.
func Dataset() []Idea {
	return []Idea{
		{
			ID:               "ai-finance-coach",
			Title:            "AI-Powered Personal Finance Coach",
			Description:      "A conversational coach that analyzes spending, builds budgets, and nudges users toward savings goals.",
			FullDescription:  "Consumers drown in transaction data but get no guidance from their banks. An AI coach connects to existing accounts, categorizes spending automatically, and holds short weekly check-ins that translate raw numbers into one or two concrete actions. Retention comes from visible progress against goals rather than dashboards nobody opens.",
			Category:         CategoryFinTech,
			MarketScore:      92,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$10M-50M ARR",
			Trending:         true,
			Tags:             []string{"AI", "Personal Finance", "B2C", "Subscription"},
			TargetAudience:   "Millennials and Gen Z professionals with irregular spending habits",
			ProblemSolved:    "Banking apps show data but never tell users what to do next",
			MonetizationModel: []string{"Freemium subscription", "Premium coaching tier", "Affiliate referrals"},
			MarketSize:        "$1.5T personal finance management",
			GrowthRate:        "24% CAGR",
			KeyCompetitors:    []string{"Copilot Money", "Cleo", "Rocket Money"},
			MVPFeatures:       []string{"Account aggregation", "Auto-categorization", "Weekly AI check-in", "Goal tracking"},
			TechStack:         []string{"Plaid", "LLM API", "React Native", "Postgres"},
			TimeToMVP:         "3-4 months",
			InitialInvestment: "$25K-75K",
			CreatedAt:         "2025-01-12",
			CustomerPersonas: []Persona{
				{
					Name:         "Overwhelmed Olivia",
					Role:         "Marketing manager, first real salary",
					Demographics: "27, urban, $85K income",
					PainPoints:   []string{"Money disappears every month with no clear cause", "Too busy to budget manually"},
					Goals:        []string{"Save for a down payment", "Stop end-of-month anxiety"},
					Channels:     []string{"Instagram", "Personal finance podcasts", "TikTok"},
				},
				{
					Name:         "Freelance Felix",
					Role:         "Independent designer with lumpy income",
					Demographics: "33, remote, $60-120K variable",
					PainPoints:   []string{"Irregular income breaks every budgeting app", "Quarterly taxes surprise him"},
					Goals:        []string{"Smooth cash flow", "Automate tax set-asides"},
					Channels:     []string{"Twitter/X", "Designer communities", "YouTube"},
				},
			},
			Playbook: &Playbook{
				Week1to4:  []string{"Interview 30 target users about budgeting failures", "Ship landing page with waitlist", "Prototype the weekly check-in flow"},
				Week5to8:  []string{"Integrate account aggregation", "Run closed beta with 50 users", "Tune categorization accuracy above 90%"},
				Week9to12: []string{"Launch freemium tier", "Instrument retention funnels", "Start content marketing on savings wins"},
			},
			UnitEconomics: &UnitEconomics{
				CACEstimate:   "$18-30 via organic content",
				LTVEstimate:   "$240 over 24 months",
				PaybackPeriod: "4-6 months",
				GrossMargin:   "80-85%",
			},
			LandingPageCopy: &LandingPageCopy{
				Headlines:  []string{"Your money, finally explained", "A finance coach that actually knows your accounts"},
				ValueProps: []string{"One weekly check-in instead of daily dashboards", "Advice from your real transactions, not generic tips"},
				CTAOptions: []string{"Start your free check-in", "Join the waitlist"},
			},
		},
		{
			ID:               "micro-saas-churn-radar",
			Title:            "Churn Radar for Micro-SaaS",
			Description:      "Early-warning system that flags at-risk subscribers from product usage and billing signals.",
			FullDescription:  "Small SaaS teams discover churn when the cancellation email arrives. Churn Radar ingests usage events and billing webhooks, scores every account weekly, and drafts the save-offer email before the customer leaves.",
			Category:         CategorySaaS,
			MarketScore:      84,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$1M-10M ARR",
			Trending:         false,
			Tags:             []string{"SaaS", "Retention", "Analytics", "B2B"},
			TargetAudience:   "Bootstrapped SaaS founders with 100-5,000 subscribers",
			ProblemSolved:    "Churn is only visible after it happens",
			MonetizationModel: []string{"Tiered subscription", "Usage-based pricing"},
			MarketSize:        "$4B customer success tooling",
			GrowthRate:        "18% CAGR",
			KeyCompetitors:    []string{"ChurnZero", "Vitally", "ProfitWell Retain"},
			MVPFeatures:       []string{"Stripe webhook ingestion", "Risk scoring", "Slack alerts", "Save-offer templates"},
			TechStack:         []string{"Go", "Postgres", "Stripe API", "Slack API"},
			TimeToMVP:         "2-3 months",
			InitialInvestment: "$10K-25K",
			CreatedAt:         "2025-02-03",
		},
		{
			ID:               "resume-signal-screener",
			Title:            "Signal-Based Technical Screening",
			Description:      "Replaces resume keyword filters with evidence pulled from public work: repos, talks, writing.",
			FullDescription:  "Keyword resume screens reject strong engineers and pass keyword stuffers. This tool builds a skill graph from a candidate's public artifacts and scores fit against the actual role rubric, with a human-readable evidence trail for every score.",
			Category:         CategoryAIML,
			MarketScore:      79,
			CompetitionLevel: CompetitionHigh,
			PotentialRevenue: "$5M-20M ARR",
			Trending:         false,
			Tags:             []string{"AI", "Hiring", "HR Tech", "B2B"},
			TargetAudience:   "Engineering managers at 50-500 person companies",
			ProblemSolved:    "Resume screening filters on keywords instead of demonstrated skill",
			MonetizationModel: []string{"Per-seat subscription", "Per-hire success fee"},
			MarketSize:        "$30B recruiting software",
			GrowthRate:        "15% CAGR",
			KeyCompetitors:    []string{"HireVue", "Karat", "CodeSignal"},
			MVPFeatures:       []string{"GitHub/portfolio ingestion", "Role rubric builder", "Evidence-linked scoring"},
			TechStack:         []string{"Python", "LLM API", "Neo4j", "React"},
			TimeToMVP:         "4-6 months",
			InitialInvestment: "$50K-150K",
			CreatedAt:         "2024-11-20",
		},
		{
			ID:               "local-inventory-bridge",
			Title:            "Local Inventory Bridge",
			Description:      "Lets neighborhood retailers publish live in-store stock to search and map results without a new POS.",
			FullDescription:  "Shoppers default to Amazon because they cannot see what the store three blocks away has on the shelf. The bridge syncs from existing POS exports, normalizes SKUs, and feeds local inventory listings so 'near me' searches show real availability.",
			Category:         CategoryEcommerce,
			MarketScore:      76,
			CompetitionLevel: CompetitionLow,
			PotentialRevenue: "$1M-10M ARR",
			Trending:         true,
			Tags:             []string{"Local Commerce", "Retail", "SMB", "Integrations"},
			TargetAudience:   "Independent retailers with 1-5 locations",
			ProblemSolved:    "In-store inventory is invisible to online shoppers",
			MonetizationModel: []string{"Flat monthly fee per location", "Transaction fee on reservations"},
			MarketSize:        "$25B local commerce enablement",
			GrowthRate:        "12% CAGR",
			KeyCompetitors:    []string{"Pointy", "NearSt"},
			MVPFeatures:       []string{"POS CSV/API sync", "SKU normalization", "Google local listings feed"},
			TechStack:         []string{"Go", "Postgres", "Google Content API"},
			TimeToMVP:         "3-4 months",
			InitialInvestment: "$15K-40K",
			CreatedAt:         "2025-03-18",
		},
		{
			ID:               "clinic-noshow-predictor",
			Title:            "Clinic No-Show Predictor",
			Description:      "Predicts appointment no-shows and automates overbooking plus reminder escalation for outpatient clinics.",
			FullDescription:  "No-shows cost US clinics billions in idle capacity. The predictor learns each clinic's no-show patterns from scheduling history, scores upcoming appointments, and drives a reminder ladder plus safe overbooking suggestions that keep utilization high without waiting-room pileups.",
			Category:         CategoryHealthTech,
			MarketScore:      88,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$10M-50M ARR",
			Trending:         true,
			Tags:             []string{"Healthcare", "Prediction", "Scheduling", "B2B"},
			TargetAudience:   "Outpatient clinic operators with 5-50 providers",
			ProblemSolved:    "15-30% of appointment slots die as no-shows",
			MonetizationModel: []string{"Per-provider subscription", "Outcome-based pricing"},
			MarketSize:        "$150B ambulatory care operations",
			GrowthRate:        "20% CAGR",
			KeyCompetitors:    []string{"Luma Health", "Relatient"},
			MVPFeatures:       []string{"EHR schedule import", "No-show risk scoring", "SMS reminder ladder"},
			TechStack:         []string{"Python", "Postgres", "Twilio", "HL7/FHIR"},
			TimeToMVP:         "4-6 months",
			InitialInvestment: "$40K-100K",
			CreatedAt:         "2025-01-29",
			UnitEconomics: &UnitEconomics{
				CACEstimate:   "$800-1,500 per clinic",
				LTVEstimate:   "$18K over 36 months",
				PaybackPeriod: "3-5 months",
				GrossMargin:   "75-80%",
			},
		},
		{
			ID:               "homework-feedback-engine",
			Title:            "Instant Homework Feedback Engine",
			Description:      "Gives students step-level feedback on written math and science work within seconds of submission.",
			FullDescription:  "Teachers cannot give detailed feedback on 150 assignments a night, so students wait days and repeat mistakes. The engine reads worked solutions, pinpoints the first wrong step, and explains the misconception, while teachers get a class-level misconception heatmap.",
			Category:         CategoryEdTech,
			MarketScore:      81,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$5M-20M ARR",
			Trending:         false,
			Tags:             []string{"Education", "AI", "K-12", "B2B2C"},
			TargetAudience:   "Middle and high school STEM teachers",
			ProblemSolved:    "Feedback arrives too late to change how students practice",
			MonetizationModel: []string{"School-site license", "Teacher freemium"},
			MarketSize:        "$12B K-12 digital instruction",
			GrowthRate:        "16% CAGR",
			KeyCompetitors:    []string{"Photomath", "Gradescope", "Khanmigo"},
			MVPFeatures:       []string{"Handwriting OCR", "Step-level error detection", "Misconception reports"},
			TechStack:         []string{"Python", "Vision models", "React", "Postgres"},
			TimeToMVP:         "4-5 months",
			InitialInvestment: "$50K-120K",
			CreatedAt:         "2024-12-08",
		},
		{
			ID:               "equipment-share-exchange",
			Title:            "Heavy Equipment Share Exchange",
			Description:      "Two-sided marketplace matching idle construction equipment with contractors who need it this week.",
			FullDescription:  "Contractors own machines that sit idle 60% of the time while competitors rent the same machine across town at retail rates. The exchange verifies operators, handles insurance per rental, and prices dynamically by utilization, turning idle iron into revenue.",
			Category:         CategoryMarketplace,
			MarketScore:      72,
			CompetitionLevel: CompetitionHigh,
			PotentialRevenue: "$10M-100M GMV",
			Trending:         false,
			Tags:             []string{"Marketplace", "Construction", "Asset Sharing"},
			TargetAudience:   "Small and mid-size general contractors",
			ProblemSolved:    "Expensive equipment sits idle while neighbors rent at retail",
			MonetizationModel: []string{"Take rate on rentals", "Insurance margin", "Delivery logistics fee"},
			MarketSize:        "$50B equipment rental",
			GrowthRate:        "8% CAGR",
			KeyCompetitors:    []string{"EquipmentShare", "BigRentz", "Dozr"},
			MVPFeatures:       []string{"Listing with utilization calendar", "Per-rental insurance", "Operator verification"},
			TechStack:         []string{"Rails", "Postgres", "Stripe Connect"},
			TimeToMVP:         "5-6 months",
			InitialInvestment: "$100K-250K",
			CreatedAt:         "2024-10-02",
		},
		{
			ID:               "compliance-copilot-smb",
			Title:            "Compliance Copilot for SMB Lenders",
			Description:      "Automates fair-lending and disclosure compliance checks for small lending teams.",
			FullDescription:  "Community lenders face the same regulatory burden as national banks with a fraction of the staff. The copilot reviews loan files against current regulations, flags missing disclosures before closing, and produces examiner-ready audit trails automatically.",
			Category:         CategoryFinTech,
			MarketScore:      85,
			CompetitionLevel: CompetitionLow,
			PotentialRevenue: "$5M-25M ARR",
			Trending:         false,
			Tags:             []string{"RegTech", "Lending", "Compliance", "B2B"},
			TargetAudience:   "Community banks and credit unions under $10B in assets",
			ProblemSolved:    "Manual compliance review is slow, expensive, and error-prone",
			MonetizationModel: []string{"Per-loan pricing", "Annual platform license"},
			MarketSize:        "$20B regulatory compliance software",
			GrowthRate:        "14% CAGR",
			KeyCompetitors:    []string{"Ncontracts", "Wolters Kluwer"},
			MVPFeatures:       []string{"Loan file parsing", "Disclosure checklist engine", "Audit trail export"},
			TechStack:         []string{"Go", "LLM API", "Postgres"},
			TimeToMVP:         "4-6 months",
			InitialInvestment: "$60K-150K",
			CreatedAt:         "2025-02-21",
		},
		{
			ID:               "warehouse-slotting-optimizer",
			Title:            "Warehouse Slotting Optimizer",
			Description:      "Continuously re-slots pick locations from order velocity so fast movers sit where pickers walk least.",
			FullDescription:  "Mid-size warehouses slot products once and never revisit, so pickers walk marathon distances for yesterday's bestsellers. The optimizer reads order history from the WMS, simulates travel distance, and emits a weekly re-slot worklist ranked by labor minutes saved.",
			Category:         CategorySaaS,
			MarketScore:      77,
			CompetitionLevel: CompetitionLow,
			PotentialRevenue: "$1M-10M ARR",
			Trending:         false,
			Tags:             []string{"Logistics", "Optimization", "B2B", "SaaS"},
			TargetAudience:   "3PLs and e-commerce warehouses from 20K-500K sq ft",
			ProblemSolved:    "Static slotting wastes 20-30% of picker travel time",
			MonetizationModel: []string{"Per-facility subscription"},
			MarketSize:        "$6B warehouse execution systems",
			GrowthRate:        "13% CAGR",
			KeyCompetitors:    []string{"Optricity", "Slot3D"},
			MVPFeatures:       []string{"WMS order import", "Travel-distance simulation", "Ranked re-slot worklist"},
			TechStack:         []string{"Go", "Postgres", "React"},
			TimeToMVP:         "3-4 months",
			InitialInvestment: "$20K-60K",
			CreatedAt:         "2024-09-14",
		},
		{
			ID:               "caregiver-coordination-hub",
			Title:            "Family Caregiver Coordination Hub",
			Description:      "One shared workspace for the adult children coordinating an aging parent's care across siblings and agencies.",
			FullDescription:  "Care for an aging parent is coordinated today through group texts, forwarded PDFs, and guilt. The hub centralizes medication lists, appointments, agency schedules, and spending, with task rotation between siblings and a clean handoff packet for every new professional caregiver.",
			Category:         CategoryHealthTech,
			MarketScore:      83,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$5M-25M ARR",
			Trending:         true,
			Tags:             []string{"Healthcare", "Consumer", "Aging", "Subscription"},
			TargetAudience:   "Adult children aged 45-60 coordinating parent care",
			ProblemSolved:    "Care coordination lives in group texts and nobody owns anything",
			MonetizationModel: []string{"Family subscription", "Agency-side SaaS"},
			MarketSize:        "$80B family caregiving support",
			GrowthRate:        "22% CAGR",
			KeyCompetitors:    []string{"CaringBridge", "Lotsa Helping Hands", "ianacare"},
			MVPFeatures:       []string{"Shared care calendar", "Medication list", "Task rotation", "Caregiver handoff packet"},
			TechStack:         []string{"React Native", "Postgres", "Twilio"},
			TimeToMVP:         "3-4 months",
			InitialInvestment: "$25K-75K",
			CreatedAt:         "2025-03-05",
		},
		{
			ID:               "restaurant-prep-forecaster",
			Title:            "Restaurant Prep Forecaster",
			Description:      "Tells kitchens how much of each prep item to make tomorrow from sales history, weather, and local events.",
			FullDescription:  "Kitchens over-prep to be safe and throw away the safety margin nightly. The forecaster joins POS sales, weather, and event calendars into next-day prep quantities per item, cutting food waste without 86'ing the specials on a busy night.",
			Category:         CategoryAIML,
			MarketScore:      74,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$1M-10M ARR",
			Trending:         false,
			Tags:             []string{"Restaurants", "Forecasting", "Sustainability", "SMB"},
			TargetAudience:   "Independent restaurants and small groups (1-15 locations)",
			ProblemSolved:    "Daily prep decisions are gut calls that waste 4-10% of food cost",
			MonetizationModel: []string{"Per-location subscription"},
			MarketSize:        "$9B restaurant management software",
			GrowthRate:        "11% CAGR",
			KeyCompetitors:    []string{"Galley", "MarginEdge", "Crunchtime"},
			MVPFeatures:       []string{"POS integration", "Per-item prep forecast", "Waste logging"},
			TechStack:         []string{"Python", "Postgres", "Toast/Square APIs"},
			TimeToMVP:         "2-3 months",
			InitialInvestment: "$15K-40K",
			CreatedAt:         "2024-08-27",
		},
		{
			ID:               "returns-resale-router",
			Title:            "Returns-to-Resale Router",
			Description:      "Routes e-commerce returns to the highest-value channel: restock, open-box resale, liquidation, or donation.",
			FullDescription:  "Most merchants send every return down one path, losing margin on items that deserved a better channel. The router grades each returned unit from inspection photos, prices the open-box option against live marketplaces, and books the shipment to whichever channel nets most after fees.",
			Category:         CategoryEcommerce,
			MarketScore:      80,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$5M-30M ARR",
			Trending:         true,
			Tags:             []string{"E-commerce", "Returns", "Recommerce", "B2B"},
			TargetAudience:   "DTC brands doing $5M-100M with 10%+ return rates",
			ProblemSolved:    "Returns are liquidated in bulk when many units could resell near retail",
			MonetizationModel: []string{"Per-unit routing fee", "Resale take rate"},
			MarketSize:        "$800B of annual returned merchandise",
			GrowthRate:        "19% CAGR",
			KeyCompetitors:    []string{"Loop Returns", "Happy Returns", "B-Stock"},
			MVPFeatures:       []string{"Inspection grading", "Channel price comparison", "Routing rules engine"},
			TechStack:         []string{"Go", "Postgres", "Shopify API", "eBay API"},
			TimeToMVP:         "3-5 months",
			InitialInvestment: "$30K-80K",
			CreatedAt:         "2025-02-14",
		},
		{
			ID:               "field-notes-tutor",
			Title:            "Apprenticeship Field Notes Tutor",
			Description:      "Turns a trade apprentice's daily photos and voice notes into structured learning records and quiz prompts.",
			FullDescription:  "Trade apprentices learn on the job but document almost nothing, which slows certification. The tutor takes end-of-day photos and voice notes, structures them against the apprenticeship competency framework, and quizzes the apprentice on weak areas before assessments.",
			Category:         CategoryEdTech,
			MarketScore:      68,
			CompetitionLevel: CompetitionLow,
			PotentialRevenue: "$1M-5M ARR",
			Trending:         false,
			Tags:             []string{"Education", "Trades", "Mobile", "AI"},
			TargetAudience:   "Electrical, plumbing, and HVAC apprentices and their sponsors",
			ProblemSolved:    "On-the-job learning leaves no record for certification or review",
			MonetizationModel: []string{"Sponsor-paid seats", "Apprentice subscription"},
			MarketSize:        "$2B apprenticeship training tools",
			GrowthRate:        "10% CAGR",
			KeyCompetitors:    []string{"Interplay Learning", "Penn Foster"},
			MVPFeatures:       []string{"Photo/voice capture", "Competency mapping", "Spaced-repetition quizzes"},
			TechStack:         []string{"React Native", "LLM API", "Postgres"},
			TimeToMVP:         "3-4 months",
			InitialInvestment: "$20K-50K",
			CreatedAt:         "2024-07-19",
		},
		{
			ID:               "vendor-risk-monitor",
			Title:            "Continuous Vendor Risk Monitor",
			Description:      "Watches a company's software vendors for breaches, outages, and compliance lapses between annual reviews.",
			FullDescription:  "Vendor risk is assessed once a year and then ignored until a breach email arrives. The monitor tracks status pages, breach disclosures, certificate expirations, and compliance registries for every vendor, and pushes a scored alert when a vendor's posture actually changes.",
			Category:         CategorySaaS,
			MarketScore:      92,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$10M-50M ARR",
			Trending:         false,
			Tags:             []string{"Security", "Risk", "B2B", "SaaS"},
			TargetAudience:   "Security and procurement teams at 200-5,000 person companies",
			ProblemSolved:    "Annual vendor reviews go stale the week after they finish",
			MonetizationModel: []string{"Per-vendor-monitored pricing", "Platform tiers"},
			MarketSize:        "$10B third-party risk management",
			GrowthRate:        "17% CAGR",
			KeyCompetitors:    []string{"SecurityScorecard", "BitSight", "UpGuard"},
			MVPFeatures:       []string{"Vendor inventory import", "Breach/status feeds", "Change-based alerts"},
			TechStack:         []string{"Go", "Postgres", "Redis"},
			TimeToMVP:         "3-5 months",
			InitialInvestment: "$40K-100K",
			CreatedAt:         "2025-01-05",
		},
		{
			ID:               "creator-licensing-desk",
			Title:            "Creator Content Licensing Desk",
			Description:      "Marketplace where brands license existing creator content instead of commissioning new campaigns.",
			FullDescription:  "Brands pay for new creator campaigns while thousands of perfect existing posts sit unlicensed. The desk lets creators list back-catalog content with usage terms, gives brands search by product and aesthetic, and handles licensing paperwork and payouts in one flow.",
			Category:         CategoryMarketplace,
			MarketScore:      71,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$5M-50M GMV",
			Trending:         false,
			Tags:             []string{"Creator Economy", "Licensing", "Marketplace"},
			TargetAudience:   "DTC brand marketers and mid-tier creators",
			ProblemSolved:    "Existing creator content has no liquid licensing market",
			MonetizationModel: []string{"Take rate on licenses", "Brand subscription for search"},
			MarketSize:        "$25B creator economy tooling",
			GrowthRate:        "21% CAGR",
			KeyCompetitors:    []string{"Billo", "Insense", "#paid"},
			MVPFeatures:       []string{"Content listing with rights metadata", "Visual search", "License checkout"},
			TechStack:         []string{"Next.js", "Postgres", "Stripe Connect"},
			TimeToMVP:         "4-5 months",
			InitialInvestment: "$50K-120K",
			CreatedAt:         "2024-06-30",
		},
		{
			ID:               "payroll-advance-rails",
			Title:            "Earned Wage Access for Hourly Teams",
			Description:      "Lets hourly employees draw already-earned wages before payday, integrated at the scheduling layer.",
			FullDescription:  "Hourly workers bridge payday gaps with overdrafts and payday loans at brutal rates. Integrating at the scheduling and timeclock layer gives exact earned balances in real time, so advances carry near-zero risk and employers offer the benefit at no cost to themselves.",
			Category:         CategoryFinTech,
			MarketScore:      87,
			CompetitionLevel: CompetitionHigh,
			PotentialRevenue: "$20M-100M ARR",
			Trending:         true,
			Tags:             []string{"Payroll", "Financial Inclusion", "B2B2C"},
			TargetAudience:   "Employers of shift workers: QSR, retail, healthcare staffing",
			ProblemSolved:    "Payday timing forces workers into high-cost credit",
			MonetizationModel: []string{"Per-transaction fee", "Employer SaaS fee", "Interchange"},
			MarketSize:        "$90B short-term liquidity for hourly workers",
			GrowthRate:        "26% CAGR",
			KeyCompetitors:    []string{"DailyPay", "EarnIn", "Payactiv"},
			MVPFeatures:       []string{"Timeclock integration", "Earned balance ledger", "Instant transfer rails"},
			TechStack:         []string{"Go", "Postgres", "Banking-as-a-Service APIs"},
			TimeToMVP:         "5-6 months",
			InitialInvestment: "$150K-400K",
			CreatedAt:         "2024-12-22",
		},
		{
			ID:               "contract-renewal-sentry",
			Title:            "Contract Renewal Sentry",
			Description:      "Reads every signed vendor contract and alerts finance before auto-renewal windows close.",
			FullDescription:  "Auto-renewal clauses quietly lock companies into another year of software nobody uses. The sentry parses executed contracts for renewal terms, notice periods, and price escalators, then opens a review task with enough lead time to renegotiate or cancel.",
			Category:         CategorySaaS,
			MarketScore:      78,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$1M-10M ARR",
			Trending:         false,
			Tags:             []string{"Finance Ops", "Contracts", "B2B", "SaaS"},
			TargetAudience:   "Finance teams at 100-2,000 person companies",
			ProblemSolved:    "Auto-renewals fire before anyone re-evaluates the vendor",
			MonetizationModel: []string{"Per-contract pricing", "Platform subscription"},
			MarketSize:        "$3B contract lifecycle management",
			GrowthRate:        "14% CAGR",
			KeyCompetitors:    []string{"Tropic", "Vendr", "Ironclad"},
			MVPFeatures:       []string{"Contract PDF parsing", "Renewal calendar", "Notice-period alerts"},
			TechStack:         []string{"Go", "LLM API", "Postgres"},
			TimeToMVP:         "2-3 months",
			InitialInvestment: "$15K-40K",
			CreatedAt:         "2025-04-02",
		},
		{
			ID:               "solar-yield-auditor",
			Title:            "Residential Solar Yield Auditor",
			Description:      "Compares a home solar array's actual output to its modeled potential and flags underperformance causes.",
			FullDescription:  "Homeowners have no idea whether their panels produce what the installer promised. The auditor pulls inverter data, models expected yield from weather and panel orientation, and names the likely cause of any gap, from shading growth to a failing optimizer, with a repair referral.",
			Category:         CategorySaaS,
			MarketScore:      66,
			CompetitionLevel: CompetitionLow,
			PotentialRevenue: "$1M-5M ARR",
			Trending:         false,
			Tags:             []string{"Climate", "Energy", "Consumer", "IoT"},
			TargetAudience:   "Homeowners with rooftop solar past the installer warranty",
			ProblemSolved:    "Solar underperformance goes unnoticed for years",
			MonetizationModel: []string{"Annual audit subscription", "Repair referral fees"},
			MarketSize:        "$4B residential solar services",
			GrowthRate:        "15% CAGR",
			KeyCompetitors:    []string{"Omnidian", "Enphase monitoring"},
			MVPFeatures:       []string{"Inverter API ingestion", "Yield modeling", "Underperformance diagnosis"},
			TechStack:         []string{"Python", "Postgres", "Weather APIs"},
			TimeToMVP:         "3-4 months",
			InitialInvestment: "$20K-50K",
			CreatedAt:         "2024-05-11",
		},
		{
			ID:               "dental-membership-builder",
			Title:            "In-House Dental Membership Builder",
			Description:      "Lets dental practices run their own subscription plans for uninsured patients, replacing middleman platforms.",
			FullDescription:  "A third of dental patients have no insurance and skip visits over price uncertainty. The builder gives practices a branded membership with predictable pricing, handles recurring billing and compliance disclosures, and shows which plan tiers actually drive recall visits.",
			Category:         CategoryHealthTech,
			MarketScore:      75,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$5M-20M ARR",
			Trending:         false,
			Tags:             []string{"Dental", "Subscription", "B2B", "Payments"},
			TargetAudience:   "Independent dental practices with 1-10 locations",
			ProblemSolved:    "Uninsured patients defer care over unpredictable pricing",
			MonetizationModel: []string{"Per-member fee", "Practice SaaS subscription"},
			MarketSize:        "$7B dental practice software",
			GrowthRate:        "12% CAGR",
			KeyCompetitors:    []string{"Kleer", "BoomCloud"},
			MVPFeatures:       []string{"Plan builder", "Recurring billing", "Recall analytics"},
			TechStack:         []string{"Rails", "Postgres", "Stripe"},
			TimeToMVP:         "3-4 months",
			InitialInvestment: "$25K-60K",
			CreatedAt:         "2024-04-22",
		},
		{
			ID:               "speech-therapy-companion",
			Title:            "Pediatric Speech Therapy Companion",
			Description:      "Daily practice app that keeps kids progressing between weekly speech therapy sessions.",
			FullDescription:  "Speech therapists see kids thirty minutes a week and send home exercises that rarely happen. The companion turns each therapist's plan into five-minute daily games, scores articulation from the child's recordings, and gives the therapist a practice log before every session.",
			Category:         CategoryHealthTech,
			MarketScore:      79,
			CompetitionLevel: CompetitionLow,
			PotentialRevenue: "$1M-10M ARR",
			Trending:         true,
			Tags:             []string{"Pediatrics", "Speech", "Consumer Health", "AI"},
			TargetAudience:   "Parents of children in speech therapy, and their SLPs",
			ProblemSolved:    "Home practice is the biggest gap in speech therapy outcomes",
			MonetizationModel: []string{"Parent subscription", "Clinic-side licensing"},
			MarketSize:        "$5B pediatric therapy services",
			GrowthRate:        "18% CAGR",
			KeyCompetitors:    []string{"Speech Blubs", "Articulation Station"},
			MVPFeatures:       []string{"Therapist plan import", "Articulation scoring", "Practice streaks"},
			TechStack:         []string{"React Native", "Speech models", "Postgres"},
			TimeToMVP:         "4-5 months",
			InitialInvestment: "$40K-90K",
			CreatedAt:         "2025-03-27",
		},
		{
			ID:               "construction-punchlist-ai",
			Title:            "Photo-Driven Punch List Builder",
			Description:      "Walks a job site with a phone camera and produces the punch list, assigned by trade, automatically.",
			FullDescription:  "Superintendents spend evenings typing up defects they photographed during the day. This tool turns a walkthrough video into an itemized punch list, tags each defect by trade and location, and tracks closure with before/after photo pairs the GC can hand to the owner.",
			Category:         CategoryAIML,
			MarketScore:      73,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$5M-20M ARR",
			Trending:         false,
			Tags:             []string{"Construction", "Computer Vision", "B2B", "Mobile"},
			TargetAudience:   "General contractors on commercial and multifamily projects",
			ProblemSolved:    "Punch list creation eats superintendent evenings",
			MonetizationModel: []string{"Per-project pricing", "Company subscription"},
			MarketSize:        "$12B construction management software",
			GrowthRate:        "13% CAGR",
			KeyCompetitors:    []string{"Procore", "Fieldwire", "OpenSpace"},
			MVPFeatures:       []string{"Walkthrough capture", "Defect detection and tagging", "Trade assignment"},
			TechStack:         []string{"Python", "Vision models", "React Native"},
			TimeToMVP:         "5-6 months",
			InitialInvestment: "$80K-200K",
			CreatedAt:         "2024-03-15",
		},
		{
			ID:               "ad-creative-fatigue-alarm",
			Title:            "Ad Creative Fatigue Alarm",
			Description:      "Detects the exact week a paid social creative stops earning its spend and queues the replacement brief.",
			FullDescription:  "Media buyers keep spending on tired creatives because fatigue is obvious only in hindsight. The alarm watches frequency, thumb-stop rate, and cost trends per asset, calls fatigue early with a confidence interval, and drafts the variation brief from what the winning elements have in common.",
			Category:         CategoryAIML,
			MarketScore:      70,
			CompetitionLevel: CompetitionHigh,
			PotentialRevenue: "$1M-10M ARR",
			Trending:         false,
			Tags:             []string{"AdTech", "Analytics", "Marketing", "B2B"},
			TargetAudience:   "In-house growth teams spending $50K-1M monthly on paid social",
			ProblemSolved:    "Creative fatigue is diagnosed weeks after it starts burning budget",
			MonetizationModel: []string{"Percentage of managed spend", "Flat platform fee"},
			MarketSize:        "$20B creative analytics and optimization",
			GrowthRate:        "16% CAGR",
			KeyCompetitors:    []string{"Motion", "Foreplay", "VidMob"},
			MVPFeatures:       []string{"Ad account sync", "Per-asset fatigue scoring", "Variation briefs"},
			TechStack:         []string{"Python", "Meta/TikTok APIs", "Postgres"},
			TimeToMVP:         "3-4 months",
			InitialInvestment: "$30K-70K",
			CreatedAt:         "2024-02-09",
		},
		{
			ID:               "grant-pipeline-manager",
			Title:            "Grant Pipeline Manager for Nonprofits",
			Description:      "Tracks every grant from prospect to report deadline and drafts first-pass applications from past wins.",
			FullDescription:  "Small nonprofits run grant pipelines in spreadsheets and miss renewal deadlines worth more than their software budget. The manager keeps a living calendar of deadlines and report obligations, and drafts application sections by adapting language from the organization's previously funded proposals.",
			Category:         CategorySaaS,
			MarketScore:      69,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$1M-5M ARR",
			Trending:         false,
			Tags:             []string{"Nonprofit", "Grants", "AI", "SaaS"},
			TargetAudience:   "Development staff at nonprofits with $500K-10M budgets",
			ProblemSolved:    "Grant deadlines and reporting obligations slip through spreadsheets",
			MonetizationModel: []string{"Tiered subscription by organization size"},
			MarketSize:        "$2B nonprofit fundraising software",
			GrowthRate:        "10% CAGR",
			KeyCompetitors:    []string{"Instrumentl", "GrantHub"},
			MVPFeatures:       []string{"Deadline pipeline", "Report obligation tracking", "Draft generation from past proposals"},
			TechStack:         []string{"Rails", "LLM API", "Postgres"},
			TimeToMVP:         "2-3 months",
			InitialInvestment: "$10K-30K",
			CreatedAt:         "2024-01-26",
		},
		{
			ID:               "rental-deposit-alternative",
			Title:            "Rental Deposit Alternative",
			Description:      "Replaces cash security deposits with a small monthly fee backed by surety coverage.",
			FullDescription:  "Renters lock up billions in deposits while landlords still find them insufficient for real damage. A surety-backed alternative charges renters a small monthly fee, gives landlords stronger coverage than one month's rent, and returns move-in costs to people who need the cash.",
			Category:         CategoryFinTech,
			MarketScore:      82,
			CompetitionLevel: CompetitionHigh,
			PotentialRevenue: "$10M-50M ARR",
			Trending:         false,
			Tags:             []string{"PropTech", "Insurance", "B2B2C"},
			TargetAudience:   "Mid-size property managers with 500-20,000 units",
			ProblemSolved:    "Deposits burden renters without fully protecting landlords",
			MonetizationModel: []string{"Monthly renter fee", "Carrier margin share"},
			MarketSize:        "$45B held in US security deposits",
			GrowthRate:        "14% CAGR",
			KeyCompetitors:    []string{"Rhino", "Obligo", "Jetty"},
			MVPFeatures:       []string{"Property manager onboarding", "Coverage underwriting", "Claims workflow"},
			TechStack:         []string{"Go", "Postgres", "Insurance carrier APIs"},
			TimeToMVP:         "5-6 months",
			InitialInvestment: "$100K-300K",
			CreatedAt:         "2023-12-19",
		},
		{
			ID:               "classroom-sub-marketplace",
			Title:            "Substitute Teacher Marketplace",
			Description:      "Fills same-day substitute teaching slots from a vetted local pool with one tap from the principal's phone.",
			FullDescription:  "Districts fill barely half their substitute requests, dumping classes on other teachers' prep periods. A local marketplace keeps a credential-verified pool warm, pushes same-day openings by grade and subject fit, and handles timesheets and district payroll integration.",
			Category:         CategoryMarketplace,
			MarketScore:      74,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$5M-30M GMV",
			Trending:         false,
			Tags:             []string{"Education", "Staffing", "Marketplace"},
			TargetAudience:   "School districts and charter networks",
			ProblemSolved:    "Half of substitute requests go unfilled",
			MonetizationModel: []string{"Take rate on filled shifts", "District subscription"},
			MarketSize:        "$4B substitute staffing",
			GrowthRate:        "9% CAGR",
			KeyCompetitors:    []string{"Swing Education", "Kelly Education"},
			MVPFeatures:       []string{"Credential verification", "Same-day shift matching", "Payroll export"},
			TechStack:         []string{"Rails", "Postgres", "Twilio"},
			TimeToMVP:         "4-5 months",
			InitialInvestment: "$50K-120K",
			CreatedAt:         "2023-11-30",
		},
		{
			ID:               "wholesale-b2b-storefronts",
			Title:            "Wholesale Storefronts for Food Makers",
			Description:      "Gives small food producers a wholesale ordering portal so retail buyers stop ordering over text message.",
			FullDescription:  "Independent food makers take wholesale orders by text and invoice from memory. The storefront gives each maker a buyer-facing catalog with live inventory, case pricing, and order minimums, plus route-day scheduling so delivery batching stops being a whiteboard problem.",
			Category:         CategoryEcommerce,
			MarketScore:      71,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$1M-10M ARR",
			Trending:         false,
			Tags:             []string{"Food & Beverage", "B2B", "E-commerce", "SMB"},
			TargetAudience:   "Local food and beverage producers selling to 10-200 retail accounts",
			ProblemSolved:    "Wholesale ordering runs on text threads and stale price sheets",
			MonetizationModel: []string{"Monthly subscription", "Payment processing margin"},
			MarketSize:        "$8B specialty food distribution tooling",
			GrowthRate:        "11% CAGR",
			KeyCompetitors:    []string{"Faire", "Mable", "Local Line"},
			MVPFeatures:       []string{"Wholesale catalog", "Case pricing and minimums", "Route-day scheduling"},
			TechStack:         []string{"Next.js", "Postgres", "Stripe"},
			TimeToMVP:         "2-3 months",
			InitialInvestment: "$10K-30K",
			CreatedAt:         "2025-04-15",
		},
		{
			ID:               "fleet-ev-transition-planner",
			Title:            "Fleet EV Transition Planner",
			Description:      "Models which vehicles in a commercial fleet can go electric now, and sequences the swap by payback.",
			FullDescription:  "Fleet managers know electrification is coming but cannot say which van to replace first. The planner ingests telematics history, maps real routes against EV range and depot charging capacity, and produces a replacement sequence ranked by total-cost-of-ownership payback, with utility rebate paperwork attached.",
			Category:         CategorySaaS,
			MarketScore:      80,
			CompetitionLevel: CompetitionLow,
			PotentialRevenue: "$5M-25M ARR",
			Trending:         true,
			Tags:             []string{"Fleet", "Climate", "EV", "B2B"},
			TargetAudience:   "Operators of 50-2,000 vehicle commercial fleets",
			ProblemSolved:    "EV transition decisions are made on vendor slides, not route data",
			MonetizationModel: []string{"Per-vehicle-analyzed pricing", "Annual platform license"},
			MarketSize:        "$10B fleet management software",
			GrowthRate:        "19% CAGR",
			KeyCompetitors:    []string{"Geotab", "Samsara", "Electriphi"},
			MVPFeatures:       []string{"Telematics import", "Range and duty-cycle modeling", "Payback-ranked swap plan"},
			TechStack:         []string{"Python", "Postgres", "Telematics APIs"},
			TimeToMVP:         "4-5 months",
			InitialInvestment: "$60K-150K",
			CreatedAt:         "2025-02-28",
		},
		{
			ID:               "law-firm-intake-router",
			Title:            "Law Firm Intake Router",
			Description:      "Answers, qualifies, and routes inbound legal leads around the clock so firms stop losing cases to voicemail.",
			FullDescription:  "Consumer law firms win or lose cases on who answers first. The router handles intake conversations on phone and chat, qualifies matter type and jurisdiction against the firm's criteria, books the consult directly on the right attorney's calendar, and syncs the transcript to the practice management system.",
			Category:         CategoryAIML,
			MarketScore:      76,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$5M-20M ARR",
			Trending:         true,
			Tags:             []string{"Legal", "AI", "Intake", "B2B"},
			TargetAudience:   "Consumer law firms: personal injury, family, immigration",
			ProblemSolved:    "After-hours leads go to voicemail and sign with whoever answers",
			MonetizationModel: []string{"Per-qualified-lead pricing", "Monthly platform fee"},
			MarketSize:        "$6B legal practice software",
			GrowthRate:        "15% CAGR",
			KeyCompetitors:    []string{"Smith.ai", "Intaker", "Lawmatics"},
			MVPFeatures:       []string{"Conversational intake", "Matter qualification rules", "Calendar booking"},
			TechStack:         []string{"Go", "LLM API", "Twilio", "Postgres"},
			TimeToMVP:         "3-4 months",
			InitialInvestment: "$30K-80K",
			CreatedAt:         "2025-01-17",
		},
		{
			ID:               "tutor-matching-network",
			Title:            "Outcome-Verified Tutor Network",
			Description:      "Matches students to tutors using verified before/after results instead of self-reported credentials.",
			FullDescription:  "Tutor marketplaces compete on headshots and hourly rates because nobody measures outcomes. This network baselines each student, tracks progress through the engagement, and ranks tutors by verified improvement in their subject, making results the marketplace currency.",
			Category:         CategoryEdTech,
			MarketScore:      72,
			CompetitionLevel: CompetitionHigh,
			PotentialRevenue: "$5M-50M GMV",
			Trending:         false,
			Tags:             []string{"Education", "Marketplace", "Tutoring"},
			TargetAudience:   "Parents of middle and high school students",
			ProblemSolved:    "Tutor quality is invisible until months of fees are spent",
			MonetizationModel: []string{"Take rate on sessions", "Assessment subscription"},
			MarketSize:        "$10B private tutoring",
			GrowthRate:        "12% CAGR",
			KeyCompetitors:    []string{"Wyzant", "Varsity Tutors", "Preply"},
			MVPFeatures:       []string{"Baseline assessments", "Progress tracking", "Outcome-ranked matching"},
			TechStack:         []string{"Next.js", "Postgres", "Stripe Connect"},
			TimeToMVP:         "4-5 months",
			InitialInvestment: "$40K-100K",
			CreatedAt:         "2023-10-12",
		},
		{
			ID:               "pharmacy-sync-assistant",
			Title:            "Independent Pharmacy Refill Sync",
			Description:      "Aligns all of a patient's prescriptions to one monthly pickup and automates the refill outreach.",
			FullDescription:  "Patients on five medications make five pharmacy trips a month and abandon refills between them. Sync analysis aligns every prescription to a single pickup date, handles prescriber outreach for the short fills, and turns refill adherence into the independent pharmacy's retention advantage against mail order.",
			Category:         CategoryHealthTech,
			MarketScore:      70,
			CompetitionLevel: CompetitionLow,
			PotentialRevenue: "$1M-10M ARR",
			Trending:         false,
			Tags:             []string{"Pharmacy", "Adherence", "B2B", "Healthcare"},
			TargetAudience:   "Independent pharmacies and small chains",
			ProblemSolved:    "Scattered refill dates drive abandonment and lost patients",
			MonetizationModel: []string{"Per-pharmacy subscription", "Per-synced-patient fee"},
			MarketSize:        "$3B pharmacy management systems",
			GrowthRate:        "9% CAGR",
			KeyCompetitors:    []string{"Amplicare", "Prescryptive"},
			MVPFeatures:       []string{"Dispensing system import", "Sync date calculation", "Prescriber fax/e-script outreach"},
			TechStack:         []string{"Go", "Postgres", "NCPDP interfaces"},
			TimeToMVP:         "4-6 months",
			InitialInvestment: "$50K-120K",
			CreatedAt:         "2023-09-08",
		},
		{
			ID:               "ugc-rights-vault",
			Title:            "UGC Rights Vault",
			Description:      "Collects, tracks, and renews usage rights for every customer photo a brand reposts.",
			FullDescription:  "Brands repost customer content daily with rights secured by an Instagram comment, which collapses the first time a creator lawyers up. The vault requests rights through a clean consent flow, stores the grant with scope and expiry, and alerts marketing before a campaign outlives its permissions.",
			Category:         CategoryEcommerce,
			MarketScore:      64,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$1M-5M ARR",
			Trending:         false,
			Tags:             []string{"Marketing", "Legal", "UGC", "B2B"},
			TargetAudience:   "Social and brand teams at consumer companies",
			ProblemSolved:    "UGC usage rights live in comment threads and expire silently",
			MonetizationModel: []string{"Tiered subscription by asset volume"},
			MarketSize:        "$2B UGC management",
			GrowthRate:        "13% CAGR",
			KeyCompetitors:    []string{"TINT", "Flowbox"},
			MVPFeatures:       []string{"Consent request flow", "Rights registry with expiry", "Campaign usage alerts"},
			TechStack:         []string{"Next.js", "Postgres", "Instagram API"},
			TimeToMVP:         "2-3 months",
			InitialInvestment: "$10K-30K",
			CreatedAt:         "2023-08-21",
		},
		{
			ID:               "microfactory-batch-broker",
			Title:            "Small-Batch Manufacturing Broker",
			Description:      "Matches hardware startups needing 50-5,000 unit runs with domestic factories that have open capacity.",
			FullDescription:  "Runs too small for contract manufacturers and too complex for makerspaces die in founders' garages. The broker profiles regional factories by process and open capacity, converts a CAD package into comparable quotes, and supervises the first article so a fifty-unit run stops requiring a factory-finding odyssey.",
			Category:         CategoryMarketplace,
			MarketScore:      67,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$5M-25M GMV",
			Trending:         false,
			Tags:             []string{"Manufacturing", "Hardware", "Marketplace", "B2B"},
			TargetAudience:   "Hardware startups and product studios",
			ProblemSolved:    "Small production runs cannot find a factory that will answer email",
			MonetizationModel: []string{"Broker fee on runs", "Quote subscription for factories"},
			MarketSize:        "$40B small-batch contract manufacturing",
			GrowthRate:        "10% CAGR",
			KeyCompetitors:    []string{"Xometry", "Fictiv", "Hubs"},
			MVPFeatures:       []string{"Factory capability profiles", "CAD-to-quote pipeline", "First-article tracking"},
			TechStack:         []string{"Python", "Postgres", "CAD parsing"},
			TimeToMVP:         "5-6 months",
			InitialInvestment: "$80K-200K",
			CreatedAt:         "2023-07-14",
		},
		{
			ID:               "invoice-factoring-gig",
			Title:            "Instant Factoring for Gig Agencies",
			Description:      "Advances staffing agencies the payroll for placed workers while they wait 45 days for client payment.",
			FullDescription:  "Small staffing agencies turn down placements because payroll is due Friday and the client pays in 45 days. Factoring wired to the agency's timesheet system advances verified hours at funding, collects from the client invoice, and prices risk from payment history instead of a personal guarantee.",
			Category:         CategoryFinTech,
			MarketScore:      77,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$10M-50M ARR",
			Trending:         false,
			Tags:             []string{"Lending", "Staffing", "B2B", "Embedded Finance"},
			TargetAudience:   "Staffing agencies with $1M-20M annual billings",
			ProblemSolved:    "Payroll timing caps how many workers an agency can place",
			MonetizationModel: []string{"Factoring discount rate", "Platform fee"},
			MarketSize:        "$140B invoice factoring",
			GrowthRate:        "8% CAGR",
			KeyCompetitors:    []string{"FundThrough", "altLINE", "Payro"},
			MVPFeatures:       []string{"Timesheet verification", "Advance underwriting", "Invoice collection"},
			TechStack:         []string{"Go", "Postgres", "Banking-as-a-Service APIs"},
			TimeToMVP:         "5-6 months",
			InitialInvestment: "$150K-400K",
			CreatedAt:         "2023-06-28",
		},
		{
			ID:               "church-ops-platform",
			Title:            "Operations Platform for Small Congregations",
			Description:      "Runs giving, volunteer scheduling, and member care for congregations too small for enterprise church software.",
			FullDescription:  "Congregations under 200 members run on a shared inbox and a retiring volunteer's spreadsheet. One affordable platform covers online giving with statements, volunteer rotation that respects blackout dates, and a member care log so pastoral follow-ups stop depending on memory.",
			Category:         CategorySaaS,
			MarketScore:      62,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$1M-5M ARR",
			Trending:         false,
			Tags:             []string{"Community", "Nonprofit", "SMB", "SaaS"},
			TargetAudience:   "Congregations and community organizations under 200 members",
			ProblemSolved:    "Small congregations are priced out of purpose-built operations tools",
			MonetizationModel: []string{"Flat monthly fee", "Giving payment margin"},
			MarketSize:        "$1.5B faith-based software",
			GrowthRate:        "7% CAGR",
			KeyCompetitors:    []string{"Planning Center", "Tithe.ly", "Breeze"},
			MVPFeatures:       []string{"Online giving", "Volunteer scheduling", "Member care log"},
			TechStack:         []string{"Rails", "Postgres", "Stripe"},
			TimeToMVP:         "3-4 months",
			InitialInvestment: "$15K-40K",
			CreatedAt:         "2023-05-19",
		},
		{
			ID:               "procurement-copilot-k12",
			Title:            "K-12 Procurement Copilot",
			Description:      "Guides school business officials through compliant purchasing, from quote thresholds to board approval packets.",
			FullDescription:  "School purchasing rules differ by state, district, and dollar amount, and getting them wrong surfaces in an audit. The copilot asks what the district is buying, applies the right threshold rules, gathers the required quotes or bids, and assembles the board approval packet with every compliance box checked.",
			Category:         CategoryEdTech,
			MarketScore:      65,
			CompetitionLevel: CompetitionLow,
			PotentialRevenue: "$1M-10M ARR",
			Trending:         false,
			Tags:             []string{"Education", "Procurement", "GovTech", "B2B"},
			TargetAudience:   "School district business offices",
			ProblemSolved:    "Purchasing compliance knowledge lives in one person's head per district",
			MonetizationModel: []string{"District annual license"},
			MarketSize:        "$3B K-12 administrative software",
			GrowthRate:        "9% CAGR",
			KeyCompetitors:    []string{"Frontline Education", "Bonfire"},
			MVPFeatures:       []string{"Threshold rule engine", "Quote collection", "Board packet assembly"},
			TechStack:         []string{"Next.js", "Postgres", "LLM API"},
			TimeToMVP:         "3-4 months",
			InitialInvestment: "$25K-60K",
			CreatedAt:         "2023-04-25",
		},
		{
			ID:               "resale-authentication-api",
			Title:            "Resale Authentication API",
			Description:      "Authenticates sneakers, bags, and watches from photos so smaller resale platforms can offer buyer guarantees.",
			FullDescription:  "Authentication is the moat the big resale platforms hold over every smaller marketplace. An API trained on authenticated-item imagery scores listings from seller photos, escalates uncertain items to human experts, and lets any niche resale community offer the same guarantee badge as the giants.",
			Category:         CategoryEcommerce,
			MarketScore:      78,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$5M-25M ARR",
			Trending:         true,
			Tags:             []string{"Resale", "Computer Vision", "API", "Trust & Safety"},
			TargetAudience:   "Niche resale marketplaces and consignment stores",
			ProblemSolved:    "Counterfeit risk keeps buyers on the two biggest platforms",
			MonetizationModel: []string{"Per-authentication pricing", "Volume tiers"},
			MarketSize:        "$50B branded resale",
			GrowthRate:        "20% CAGR",
			KeyCompetitors:    []string{"Entrupy", "Real Authentication"},
			MVPFeatures:       []string{"Photo capture guide", "Authenticity scoring", "Expert escalation queue"},
			TechStack:         []string{"Python", "Vision models", "Go API gateway"},
			TimeToMVP:         "5-6 months",
			InitialInvestment: "$100K-250K",
			CreatedAt:         "2025-03-11",
		},
		{
			ID:               "hoa-management-modernizer",
			Title:            "Self-Managed HOA Toolkit",
			Description:      "Gives volunteer HOA boards the billing, vendor, and records tooling to skip the management company.",
			FullDescription:  "Small associations pay management companies mostly for dues collection and a filing cabinet. The toolkit automates assessments and late notices, keeps vendor contracts and meeting minutes in a shared record, and walks volunteer treasurers through the annual budget so a 40-home association can self-manage confidently.",
			Category:         CategorySaaS,
			MarketScore:      68,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$1M-10M ARR",
			Trending:         false,
			Tags:             []string{"PropTech", "Community", "SMB", "Payments"},
			TargetAudience:   "Volunteer boards of associations under 150 homes",
			ProblemSolved:    "Small HOAs overpay managers for clerical work",
			MonetizationModel: []string{"Per-door monthly pricing", "Payment processing margin"},
			MarketSize:        "$5B association management",
			GrowthRate:        "8% CAGR",
			KeyCompetitors:    []string{"Buildium", "HOA Express", "PayHOA"},
			MVPFeatures:       []string{"Assessment billing", "Document vault", "Budget builder"},
			TechStack:         []string{"Rails", "Postgres", "Stripe"},
			TimeToMVP:         "3-4 months",
			InitialInvestment: "$20K-50K",
			CreatedAt:         "2023-03-17",
			UnitEconomics: &UnitEconomics{
				CACEstimate:   "$150-300 per association",
				LTVEstimate:   "$4,800 over 48 months",
				PaybackPeriod: "2-4 months",
				GrossMargin:   "82-88%",
			},
		},
		{
			ID:               "clinical-trial-finder",
			Title:            "Plain-Language Clinical Trial Finder",
			Description:      "Matches patients to recruiting clinical trials from a plain-language description of their diagnosis.",
			FullDescription:  "Trial registries are written for coordinators, not the patients they need. The finder translates a patient's own description and records into eligibility criteria matching, explains each candidate trial in plain language with travel burden estimates, and hands sites pre-screened referrals they currently pay thousands to generate.",
			Category:         CategoryHealthTech,
			MarketScore:      84,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$10M-50M ARR",
			Trending:         true,
			Tags:             []string{"Clinical Trials", "AI", "Patients", "B2B2C"},
			TargetAudience:   "Patients with serious diagnoses and trial site coordinators",
			ProblemSolved:    "80% of trials miss enrollment timelines while patients never hear of them",
			MonetizationModel: []string{"Per-referral fees from sites", "Sponsor partnerships"},
			MarketSize:        "$15B patient recruitment",
			GrowthRate:        "17% CAGR",
			KeyCompetitors:    []string{"Antidote", "TrialSpark", "Power"},
			MVPFeatures:       []string{"Plain-language intake", "Eligibility matching", "Site referral handoff"},
			TechStack:         []string{"Python", "LLM API", "Postgres", "FHIR"},
			TimeToMVP:         "4-6 months",
			InitialInvestment: "$80K-200K",
			CreatedAt:         "2025-04-08",
		},
		{
			ID:               "restaurant-tip-pool-ledger",
			Title:            "Transparent Tip Pool Ledger",
			Description:      "Calculates, documents, and pays out restaurant tip pools with an audit trail every employee can see.",
			FullDescription:  "Tip pooling disputes are a top source of restaurant wage lawsuits, and most pools live in a manager's notebook. The ledger applies the house's pool rules to POS tip data per shift, shows every employee exactly how their payout was computed, and keeps the records a wage audit will demand.",
			Category:         CategoryFinTech,
			MarketScore:      66,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$1M-10M ARR",
			Trending:         false,
			Tags:             []string{"Restaurants", "Payroll", "Compliance", "SMB"},
			TargetAudience:   "Full-service restaurants with pooled tips",
			ProblemSolved:    "Opaque tip math breeds disputes and wage-claim exposure",
			MonetizationModel: []string{"Per-location subscription"},
			MarketSize:        "$2B restaurant payroll tooling",
			GrowthRate:        "10% CAGR",
			KeyCompetitors:    []string{"Kickfin", "7shifts Tip Payouts"},
			MVPFeatures:       []string{"POS tip import", "Pool rule engine", "Employee-visible statements"},
			TechStack:         []string{"Go", "Postgres", "Toast/Square APIs"},
			TimeToMVP:         "2-3 months",
			InitialInvestment: "$10K-30K",
			CreatedAt:         "2023-02-23",
		},
		{
			ID:               "elder-scam-shield",
			Title:            "Family Scam Shield for Seniors",
			Description:      "Watches a senior's accounts for scam patterns and alerts a trusted family member before money moves.",
			FullDescription:  "Elder fraud losses keep climbing because the scam is only visible after the wire clears. With the senior's consent, the shield monitors linked accounts for scam-shaped activity, new payees, odd hours, gift card runs, coached transfers, and gives a chosen family member a short window to intervene.",
			Category:         CategoryFinTech,
			MarketScore:      81,
			CompetitionLevel: CompetitionLow,
			PotentialRevenue: "$5M-25M ARR",
			Trending:         true,
			Tags:             []string{"Consumer", "Fraud", "Aging", "Family"},
			TargetAudience:   "Adult children of seniors managing money independently",
			ProblemSolved:    "Elder scams are detected after the money is unrecoverable",
			MonetizationModel: []string{"Family subscription", "Bank partnership licensing"},
			MarketSize:        "$30B annual elder fraud losses",
			GrowthRate:        "23% CAGR",
			KeyCompetitors:    []string{"EverSafe", "Carefull"},
			MVPFeatures:       []string{"Account linking with consent", "Scam pattern detection", "Family alert workflow"},
			TechStack:         []string{"Go", "Plaid", "Postgres", "Twilio"},
			TimeToMVP:         "4-5 months",
			InitialInvestment: "$50K-120K",
			CreatedAt:         "2025-02-07",
		},
		{
			ID:               "trade-show-roi-tracker",
			Title:            "Trade Show ROI Tracker",
			Description:      "Connects badge scans to closed revenue so exhibitors finally know which shows pay for themselves.",
			FullDescription:  "Companies spend six figures per trade show and judge success by booth traffic vibes. The tracker ingests badge scans and booth conversations, pushes them into the CRM with show attribution, and reports pipeline and closed revenue per event, so next year's show calendar is built on numbers.",
			Category:         CategorySaaS,
			MarketScore:      63,
			CompetitionLevel: CompetitionLow,
			PotentialRevenue: "$1M-5M ARR",
			Trending:         false,
			Tags:             []string{"Events", "Sales", "Analytics", "B2B"},
			TargetAudience:   "Marketing teams exhibiting at 5+ shows annually",
			ProblemSolved:    "Trade show spend has no revenue attribution",
			MonetizationModel: []string{"Per-event pricing", "Annual subscription"},
			MarketSize:        "$2B event marketing software",
			GrowthRate:        "9% CAGR",
			KeyCompetitors:    []string{"iCapture", "momencio"},
			MVPFeatures:       []string{"Badge scan ingestion", "CRM attribution sync", "Per-show revenue reporting"},
			TechStack:         []string{"Next.js", "Postgres", "Salesforce/HubSpot APIs"},
			TimeToMVP:         "2-3 months",
			InitialInvestment: "$10K-25K",
			CreatedAt:         "2023-01-20",
		},
		{
			ID:               "ortho-home-exercise-coach",
			Title:            "Physical Therapy Form Coach",
			Description:      "Uses a phone camera to coach patients through home physical therapy exercises with rep-by-rep form feedback.",
			FullDescription:  "PT outcomes hinge on home exercise compliance, which hovers around 30%. The coach watches reps through the phone camera, corrects form in real time, adapts the day's plan to reported pain, and sends the therapist a compliance and range-of-motion trend before the next visit.",
			Category:         CategoryHealthTech,
			MarketScore:      80,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$5M-30M ARR",
			Trending:         false,
			Tags:             []string{"Physical Therapy", "Computer Vision", "Recovery", "B2B2C"},
			TargetAudience:   "Outpatient PT clinics and orthopedic practices",
			ProblemSolved:    "Home exercise programs fail silently between visits",
			MonetizationModel: []string{"Per-patient-month pricing to clinics", "RTM billing support"},
			MarketSize:        "$35B outpatient physical therapy",
			GrowthRate:        "14% CAGR",
			KeyCompetitors:    []string{"Sword Health", "Hinge Health", "Kaia"},
			MVPFeatures:       []string{"Pose-based rep counting", "Form correction cues", "Therapist trend reports"},
			TechStack:         []string{"React Native", "Pose estimation models", "Postgres"},
			TimeToMVP:         "5-6 months",
			InitialInvestment: "$100K-250K",
			CreatedAt:         "2024-11-05",
		},
		{
			ID:               "language-exchange-campus",
			Title:            "Structured Campus Language Exchange",
			Description:      "Pairs university students for guided conversation practice and counts it toward language course credit.",
			FullDescription:  "Universities full of native speakers of every language still teach conversation from textbooks. The exchange pairs learners with native-speaker students, structures each session with level-matched prompts, verifies participation for course credit, and gives instructors a speaking-time dashboard per student.",
			Category:         CategoryEdTech,
			MarketScore:      58,
			CompetitionLevel: CompetitionLow,
			PotentialRevenue: "$1M-5M ARR",
			Trending:         false,
			Tags:             []string{"Language Learning", "Higher Ed", "Community"},
			TargetAudience:   "University language departments",
			ProblemSolved:    "Conversation practice is scarce despite native speakers everywhere on campus",
			MonetizationModel: []string{"Department license", "Campus-wide site license"},
			MarketSize:        "$1B university language instruction tooling",
			GrowthRate:        "8% CAGR",
			KeyCompetitors:    []string{"Tandem", "ConversiFi"},
			MVPFeatures:       []string{"Level-matched pairing", "Session prompt decks", "Credit verification"},
			TechStack:         []string{"Next.js", "Postgres", "WebRTC"},
			TimeToMVP:         "3-4 months",
			InitialInvestment: "$15K-40K",
			CreatedAt:         "2022-12-09",
		},
		{
			ID:               "salvage-parts-graph",
			Title:            "Auto Salvage Parts Graph",
			Description:      "Indexes dismantler inventory into a searchable interchange graph so body shops find used parts in minutes.",
			FullDescription:  "Body shops call six salvage yards to find a door that an interchange database already knows fits. The graph ingests yard inventory feeds, normalizes them against part interchange data, and gives shops one search with photos, grades, and delivery ETAs, while yards finally get demand signal for pricing.",
			Category:         CategoryMarketplace,
			MarketScore:      69,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$5M-30M GMV",
			Trending:         false,
			Tags:             []string{"Automotive", "Recommerce", "B2B", "Search"},
			TargetAudience:   "Collision repair shops and auto dismantlers",
			ProblemSolved:    "Used part sourcing runs on phone calls and luck",
			MonetizationModel: []string{"Transaction fee", "Yard subscription for demand analytics"},
			MarketSize:        "$12B recycled auto parts",
			GrowthRate:        "9% CAGR",
			KeyCompetitors:    []string{"Car-Part.com", "eBay Motors"},
			MVPFeatures:       []string{"Inventory feed ingestion", "Interchange normalization", "Unified search with grading"},
			TechStack:         []string{"Go", "Postgres", "Elasticsearch"},
			TimeToMVP:         "4-5 months",
			InitialInvestment: "$60K-150K",
			CreatedAt:         "2022-11-15",
		},
		{
			ID:               "podcast-sponsor-matcher",
			Title:            "Mid-Tail Podcast Sponsor Matcher",
			Description:      "Matches niche podcasts with 5K-50K listeners to sponsors their audience actually buys from.",
			FullDescription:  "Podcasts below the top 500 have engaged audiences and empty ad slots, while niche brands cannot evaluate a thousand small shows. The matcher verifies listenership, profiles audience interest from episode content, and packages multi-show buys by audience segment so a small brand books relevant reach in one order.",
			Category:         CategoryMarketplace,
			MarketScore:      61,
			CompetitionLevel: CompetitionHigh,
			PotentialRevenue: "$5M-20M GMV",
			Trending:         false,
			Tags:             []string{"Podcasting", "AdTech", "Creator Economy"},
			TargetAudience:   "Independent podcasters and DTC brand marketers",
			ProblemSolved:    "Mid-tail podcast inventory is unsellable at current transaction costs",
			MonetizationModel: []string{"Take rate on bookings"},
			MarketSize:        "$2.5B podcast advertising",
			GrowthRate:        "15% CAGR",
			KeyCompetitors:    []string{"Podcorn", "Gumball", "AdvertiseCast"},
			MVPFeatures:       []string{"Listenership verification", "Audience profiling", "Multi-show package builder"},
			TechStack:         []string{"Next.js", "Postgres", "Stripe Connect"},
			TimeToMVP:         "3-4 months",
			InitialInvestment: "$25K-60K",
			CreatedAt:         "2022-10-06",
		},
		{
			ID:               "open-source-maintainer-fund",
			Title:            "Dependency Funding Router",
			Description:      "Lets companies fund the open source maintainers they actually depend on, weighted by real usage.",
			FullDescription:  "Companies want to fund open source but route checks to whatever is famous rather than what is load-bearing. The router scans a company's dependency manifests, weights maintainers by how critical each package is to production builds, and distributes a monthly budget automatically with receipts for the finance team.",
			Category:         CategorySaaS,
			MarketScore:      59,
			CompetitionLevel: CompetitionLow,
			PotentialRevenue: "$1M-5M ARR",
			Trending:         false,
			Tags:             []string{"Developer Tools", "Open Source", "B2B"},
			TargetAudience:   "Engineering organizations with OSS funding budgets",
			ProblemSolved:    "OSS funding ignores the unglamorous packages everything depends on",
			MonetizationModel: []string{"Platform fee on distributed funds"},
			MarketSize:        "$500M corporate OSS funding",
			GrowthRate:        "20% CAGR",
			KeyCompetitors:    []string{"Open Collective", "thanks.dev", "GitHub Sponsors"},
			MVPFeatures:       []string{"Manifest scanning", "Criticality weighting", "Automated distribution"},
			TechStack:         []string{"Go", "Postgres", "GitHub API", "Stripe Connect"},
			TimeToMVP:         "2-3 months",
			InitialInvestment: "$10K-25K",
			CreatedAt:         "2022-09-17",
		},
		{
			ID:               "menu-engineering-analyzer",
			Title:            "Menu Engineering Analyzer",
			Description:      "Scores every menu item on margin and popularity, then recommends the menu changes worth making.",
			FullDescription:  "Restaurant menus are designed by instinct while the margin data sits unused in the POS. The analyzer joins item sales with ingredient costs, places every dish on the classic popularity/profit matrix, and proposes specific moves: reprice these two, reposition this one, retire that anchor that sells nothing.",
			Category:         CategoryAIML,
			MarketScore:      67,
			CompetitionLevel: CompetitionMedium,
			PotentialRevenue: "$1M-5M ARR",
			Trending:         false,
			Tags:             []string{"Restaurants", "Analytics", "Pricing", "SMB"},
			TargetAudience:   "Independent restaurants and small hospitality groups",
			ProblemSolved:    "Menu decisions ignore the margin data already in the POS",
			MonetizationModel: []string{"Per-location subscription"},
			MarketSize:        "$9B restaurant management software",
			GrowthRate:        "11% CAGR",
			KeyCompetitors:    []string{"MarginEdge", "MenuCalc"},
			MVPFeatures:       []string{"POS sales import", "Recipe costing", "Matrix-based recommendations"},
			TechStack:         []string{"Python", "Postgres", "Toast/Square APIs"},
			TimeToMVP:         "2-3 months",
			InitialInvestment: "$10K-30K",
			CreatedAt:         "2022-08-24",
		},
		{
			ID:               "apartment-package-concierge",
			Title:            "Apartment Package Concierge",
			Description:      "Turns unstaffed apartment package rooms into managed pickup points with smart access and resident notifications.",
			FullDescription:  "Package rooms overflow and thefts spike while property staff play warehouse clerk. The concierge combines camera-verified courier access, automatic arrival detection and resident notification, and escalation for stale packages, giving mid-size buildings doorman-grade package handling without the doorman.",
			Category:         CategoryEcommerce,
			MarketScore:      60,
			CompetitionLevel: CompetitionHigh,
			PotentialRevenue: "$1M-10M ARR",
			Trending:         false,
			Tags:             []string{"PropTech", "Logistics", "IoT", "B2B"},
			TargetAudience:   "Property managers of 50-300 unit buildings",
			ProblemSolved:    "Package chaos is a top resident complaint in mid-size buildings",
			MonetizationModel: []string{"Per-unit monthly fee", "Hardware margin"},
			MarketSize:        "$3B residential package management",
			GrowthRate:        "10% CAGR",
			KeyCompetitors:    []string{"Luxer One", "Package Concierge", "Amazon Hub"},
			MVPFeatures:       []string{"Courier access control", "Arrival detection", "Resident notifications"},
			TechStack:         []string{"Go", "Computer vision", "React Native"},
			TimeToMVP:         "5-6 months",
			InitialInvestment: "$100K-250K",
			CreatedAt:         "2022-07-13",
		},
		{
			ID:               "field-service-parts-predictor",
			Title:            "Field Service Parts Predictor",
			Description:      "Predicts which parts a technician should carry to each job so repairs finish in one visit.",
			FullDescription:  "A third of field service visits end with the part on back order and a second truck roll. The predictor reads the work order and asset history, forecasts likely failure parts per job, and builds the morning van load-out, converting second visits into first-visit fixes.",
			Category:         CategoryAIML,
			MarketScore:      75,
			CompetitionLevel: CompetitionLow,
			PotentialRevenue: "$5M-20M ARR",
			Trending:         false,
			Tags:             []string{"Field Service", "Prediction", "Inventory", "B2B"},
			TargetAudience:   "HVAC, appliance, and equipment service companies with 10-200 techs",
			ProblemSolved:    "Wrong-part truck rolls double the cost of a third of repairs",
			MonetizationModel: []string{"Per-technician subscription"},
			MarketSize:        "$5B field service management",
			GrowthRate:        "13% CAGR",
			KeyCompetitors:    []string{"ServiceTitan", "Aquant", "XOi"},
			MVPFeatures:       []string{"Work order ingestion", "Failure-part forecasting", "Van load-out lists"},
			TechStack:         []string{"Python", "Postgres", "FSM integrations"},
			TimeToMVP:         "4-5 months",
			InitialInvestment: "$50K-120K",
			CreatedAt:         "2024-10-18",
		},
		{
			ID:               "reusable-packaging-loop",
			Title:            "Reusable Packaging Deposit Loop",
			Description:      "Runs deposit-based reusable container programs for restaurant districts and food halls.",
			FullDescription:  "Single-use takeout packaging costs restaurants real money and cities are starting to ban it. The loop supplies standardized containers, handles deposits through the existing POS, places return kiosks across a district, and runs the wash cycle logistics, making reuse cheaper than disposables at district scale.",
			Category:         CategoryEcommerce,
			MarketScore:      57,
			CompetitionLevel: CompetitionLow,
			PotentialRevenue: "$1M-10M ARR",
			Trending:         false,
			Tags:             []string{"Sustainability", "Restaurants", "Logistics"},
			TargetAudience:   "Food halls, campuses, and dense restaurant districts",
			ProblemSolved:    "Reusable packaging fails at single-restaurant scale",
			MonetizationModel: []string{"Per-container cycle fee", "District program contracts"},
			MarketSize:        "$10B sustainable packaging services",
			GrowthRate:        "22% CAGR",
			KeyCompetitors:    []string{"Topanga.io", "Bold Reuse", "Muuse"},
			MVPFeatures:       []string{"POS deposit integration", "Return kiosk network", "Wash logistics routing"},
			TechStack:         []string{"Go", "Postgres", "QR/NFC tracking"},
			TimeToMVP:         "4-6 months",
			InitialInvestment: "$80K-200K",
			CreatedAt:         "2022-06-20",
		},
		{
			ID:               "youth-sports-registrar",
			Title:            "Youth Sports League Registrar",
			Description:      "Handles registration, payments, rosters, and compliance paperwork for volunteer-run youth sports leagues.",
			FullDescription:  "Volunteer league administrators spend their season chasing forms, checks, and background-check expirations. The registrar runs signup with sibling discounts and scholarships, tracks coach certification and safety compliance, builds balanced rosters, and syncs schedules to every family's calendar.",
			Category:         CategorySaaS,
			MarketScore:      64,
			CompetitionLevel: CompetitionHigh,
			PotentialRevenue: "$1M-10M ARR",
			Trending:         false,
			Tags:             []string{"Sports", "Community", "SMB", "Payments"},
			TargetAudience:   "Volunteer-run youth sports leagues and clubs",
			ProblemSolved:    "League administration burns out the volunteers who run it",
			MonetizationModel: []string{"Per-registration fee", "League subscription"},
			MarketSize:        "$19B youth sports",
			GrowthRate:        "9% CAGR",
			KeyCompetitors:    []string{"TeamSnap", "SportsEngine", "LeagueApps"},
			MVPFeatures:       []string{"Registration and payments", "Compliance tracking", "Roster builder"},
			TechStack:         []string{"Rails", "Postgres", "Stripe"},
			TimeToMVP:         "3-4 months",
			InitialInvestment: "$20K-50K",
			CreatedAt:         "2022-05-11",
		},
	}
}
