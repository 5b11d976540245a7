package catalog

// Tier is the service plan classification that drives base pricing.
type Tier string

const (
	TierStarter      Tier = "starter"
	TierProfessional Tier = "professional"
	TierEnterprise   Tier = "enterprise"
)

// DefaultTier is used whenever no assessment has suggested one.
const DefaultTier = TierStarter

// TierInfo carries the monthly platform fee and one-time setup fee of a tier.
type TierInfo struct {
	Tier        Tier
	Name        string
	PlatformFee float64
	SetupFee    float64
	Features    []string
}

// Tiers lists every plan from lowest to highest.
var Tiers = []TierInfo{
	{
		Tier:        TierStarter,
		Name:        "Starter",
		PlatformFee: 599,
		SetupFee:    500,
		Features:    []string{"Business-hours coverage", "Shared agent pool", "Email reporting"},
	},
	{
		Tier:        TierProfessional,
		Name:        "Professional",
		PlatformFee: 1299,
		SetupFee:    1200,
		Features:    []string{"Extended hours", "Dedicated team lead", "Client dashboard", "Ticketing"},
	},
	{
		Tier:        TierEnterprise,
		Name:        "Enterprise",
		PlatformFee: 2499,
		SetupFee:    2500,
		Features:    []string{"24/7 coverage", "Dedicated agents", "Compliance reporting", "Custom integrations"},
	},
}

// LookupTier returns the pricing row for t.
func LookupTier(t Tier) (TierInfo, bool) {
	for _, info := range Tiers {
		if info.Tier == t {
			return info, true
		}
	}
	return TierInfo{}, false
}

// ParseTier converts a free-form value into a known tier.
func ParseTier(s string) (Tier, bool) {
	t := Tier(s)
	_, ok := LookupTier(t)
	return t, ok
}
