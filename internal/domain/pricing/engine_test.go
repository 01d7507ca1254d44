package pricing

import (
	"testing"

	"pricing-app/internal/domain/plans"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(plans.DefaultCatalog())
}

func TestAutoSelectTier(t *testing.T) {
	e := newEngine(t)

	cases := []struct {
		seats int
		want  plans.Tier
	}{
		{1, plans.TierPro},
		{11, plans.TierPro},
		{12, plans.TierTeam},
		{39, plans.TierTeam},
		{40, plans.TierScale},
		{60, plans.TierScale},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, e.AutoSelectTier(tc.seats), "seats=%d", tc.seats)
	}
}

func TestAutoSelectTierMonotonic(t *testing.T) {
	e := newEngine(t)

	prev := e.AutoSelectTier(plans.MinSeatCount)
	for seats := plans.MinSeatCount; seats <= plans.MaxSeatCount; seats++ {
		got := e.AutoSelectTier(seats)
		assert.True(t, got.Selectable(), "seats=%d", seats)
		assert.GreaterOrEqual(t, got.Rank(), prev.Rank(), "tier dropped at seats=%d", seats)
		// Pure: repeated calls agree.
		assert.Equal(t, got, e.AutoSelectTier(seats))
		prev = got
	}
}

func TestTotalMonthlyPriceLinear(t *testing.T) {
	e := newEngine(t)
	catalog := plans.DefaultCatalog()

	for _, tier := range []plans.Tier{plans.TierPro, plans.TierTeam, plans.TierScale} {
		per := catalog.Plan(tier).PricePerEditor
		for _, seats := range []int{1, 2, 13, 40, 60} {
			assert.Equal(t, per*seats, e.TotalMonthlyPrice(tier, seats))
		}
	}

	assert.Equal(t, 2950, e.TotalMonthlyPrice(plans.TierScale, 50))
	assert.Equal(t, 35400, e.AnnualPrice(plans.TierScale, 50))
}

func TestIsFeatureIncluded(t *testing.T) {
	e := newEngine(t)

	// Base features are in every plan.
	assert.True(t, e.IsFeatureIncluded(plans.TierPro, "Reporting"))
	assert.True(t, e.IsFeatureIncluded(plans.TierScale, "Reporting"))

	// Team-gated.
	assert.False(t, e.IsFeatureIncluded(plans.TierPro, "Priority support"))
	assert.True(t, e.IsFeatureIncluded(plans.TierTeam, "Priority support"))
	assert.True(t, e.IsFeatureIncluded(plans.TierScale, "Priority support"))

	// Scale-gated.
	assert.False(t, e.IsFeatureIncluded(plans.TierTeam, "Okta SSO"))
	assert.True(t, e.IsFeatureIncluded(plans.TierScale, "Okta SSO"))

	// Enterprise-gated features are out of reach for every selectable tier.
	assert.False(t, e.IsFeatureIncluded(plans.TierScale, "Row-level security"))

	// Unknown feature names are never included.
	assert.False(t, e.IsFeatureIncluded(plans.TierScale, "Time travel"))
}

func TestIsFeatureIncludedMonotonicInRank(t *testing.T) {
	e := newEngine(t)
	catalog := plans.DefaultCatalog()

	ordered := []plans.Tier{plans.TierPro, plans.TierTeam, plans.TierScale}
	for _, g := range catalog.FeatureGates() {
		included := false
		for _, tier := range ordered {
			now := e.IsFeatureIncluded(tier, g.Feature)
			if included {
				assert.True(t, now, "feature %q lost at tier %q", g.Feature, tier)
			}
			included = now
		}
	}
}

func TestDuckDBMessage(t *testing.T) {
	e := newEngine(t)

	assert.Contains(t, e.DuckDBMessage(plans.TierPro), "included on Team and above")
	assert.Contains(t, e.DuckDBMessage(plans.TierTeam), "4GB DuckDB Server Query Cache")
	assert.Contains(t, e.DuckDBMessage(plans.TierTeam), "~15%")
	assert.Contains(t, e.DuckDBMessage(plans.TierScale), "16GB DuckDB Server Query Cache")
	assert.Contains(t, e.DuckDBMessage(plans.TierScale), "~30%")
}

func TestEngineOverCustomCatalog(t *testing.T) {
	catalog, err := plans.NewCatalog(
		[]plans.Plan{
			{ID: plans.TierPro, Name: "Pro", PricePerEditor: 12, MinSeats: 1},
			{ID: plans.TierTeam, Name: "Team", PricePerEditor: 10, MinSeats: 6},
			{ID: plans.TierScale, Name: "Scale", PricePerEditor: 5, MinSeats: 20},
		},
		[]string{"Reporting"},
		nil,
	)
	require.NoError(t, err)
	e := NewEngine(catalog)

	assert.Equal(t, plans.TierPro, e.AutoSelectTier(5))
	assert.Equal(t, plans.TierTeam, e.AutoSelectTier(6))
	assert.Equal(t, plans.TierScale, e.AutoSelectTier(20))
}
