package plans

import (
	"fmt"
	"strings"
)

// Tier identifies a pricing plan.
type Tier string

// Tier constants (single source of truth)
const (
	TierPro        Tier = "pro"
	TierTeam       Tier = "team"
	TierScale      Tier = "scale"
	TierEnterprise Tier = "enterprise"
)

// tierRank orders tiers for feature gating: pro < team < scale < enterprise.
var tierRank = map[Tier]int{
	TierPro:        0,
	TierTeam:       1,
	TierScale:      2,
	TierEnterprise: 3,
}

// Rank returns the gating rank of a tier. Unknown tiers are a data-authoring
// defect, not a runtime condition: the tier set is closed.
func (t Tier) Rank() int {
	rank, ok := tierRank[t]
	if !ok {
		panic(fmt.Sprintf("plans: unknown tier %q", t))
	}
	return rank
}

// AtLeast reports whether t ranks at or above other.
func (t Tier) AtLeast(other Tier) bool {
	return t.Rank() >= other.Rank()
}

// Selectable reports whether a visitor can pick this tier directly.
// Enterprise is referenced only by feature gating and the sales nudge.
func (t Tier) Selectable() bool {
	switch t {
	case TierPro, TierTeam, TierScale:
		return true
	}
	return false
}

// ParseTier normalizes raw input ("Team", " scale ") into a selectable tier.
func ParseTier(raw string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Selectable() {
		return "", fmt.Errorf("unknown plan tier: %q", raw)
	}
	return t, nil
}
