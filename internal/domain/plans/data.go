package plans

// Canonical plan data. Hand-authored; edit here, not in component code.

var defaultPlans = []Plan{
	{
		ID:             TierPro,
		Name:           "Pro",
		PricePerEditor: 99,
		Description:    "The best way for analysts to turn BI into business improvement.",
		MinSeats:       1,
		Collaborators:  75,
		FeatureList: []string{
			"2 database connections",
			"2 alerts",
			"14-day version history",
		},
	},
	{
		ID:             TierTeam,
		Name:           "Team",
		PricePerEditor: 79,
		Description:    "Ideal for data teams to explore data and tell stories that drive real change.",
		MinSeats:       12,
		Collaborators:  150,
		DuckDB:         &DuckDBAllowance{Capacity: "4GB", Saving: "~15%"},
		FeatureList: []string{
			"Unlimited database connections",
			"Unlimited alerts",
			"Unlimited version history",
			"4GB DuckDB Server Query Cache",
			"Project permissions",
			"Custom templates",
		},
	},
	{
		ID:             TierScale,
		Name:           "Scale",
		PricePerEditor: 59,
		Description:    "The best BI tool in the world, for the best data-led organizations in the world.",
		MinSeats:       40,
		Collaborators:  400,
		DuckDB:         &DuckDBAllowance{Capacity: "16GB", Saving: "~30%"},
		FeatureList: []string{
			"Unlimited database connections",
			"Unlimited alerts",
			"Unlimited version history",
			"16GB DuckDB Server Query Cache",
			"Project + Group permissions",
			"Report-only user role",
			"Custom templates",
			"Secure embedding",
			"Custom workspace styles",
			"API Access",
			"Okta SSO",
		},
	},
}

var defaultBaseFeatures = []string{
	"Python and SQL cells",
	"Count AI",
	"No-code tables and visualizations",
	"Reporting",
	"User permissions",
	"dbt + GitHub integration",
	"Count Metrics semantic layer",
	"SOC2 and GDPR compliance",
	"Result caching",
	"In-browser DuckDB",
}

// Additional features with the first tier they're available in.
var defaultFeatureGates = []FeatureGate{
	{Feature: "Custom fonts, colors, and styles", RequiredTier: TierTeam},
	{Feature: "Priority support", RequiredTier: TierTeam},
	{Feature: "Canvas tags", RequiredTier: TierTeam},
	{Feature: "Scheduled queries", RequiredTier: TierTeam},
	{Feature: "Full usage telemetry", RequiredTier: TierScale},
	{Feature: "Embedding", RequiredTier: TierScale},
	{Feature: "Okta SSO", RequiredTier: TierScale},
	{Feature: "HIPPA compliance", RequiredTier: TierEnterprise},
	{Feature: "Row-level security", RequiredTier: TierEnterprise},
	{Feature: "Custom data storage location", RequiredTier: TierEnterprise},
	{Feature: "Custom SSO", RequiredTier: TierEnterprise},
	{Feature: "Disable exports", RequiredTier: TierEnterprise},
	{Feature: "API", RequiredTier: TierScale},
}

// DefaultCatalog builds the canonical catalog shipped with the app.
func DefaultCatalog() *Catalog {
	return MustNewCatalog(defaultPlans, defaultBaseFeatures, defaultFeatureGates)
}
