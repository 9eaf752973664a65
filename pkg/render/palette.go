package render

// TierPalette lists the colours of tiers 0 through 4.
var TierPalette = []string{"#FF6B6B", "#FFD93D", "#6BCF7F", "#9B59B6", "#E67E22"}

// FallbackTierColor is used for tiers beyond the palette.
const FallbackTierColor = "#888"

// TierColor returns the badge colour of a tier.
func TierColor(tier int) string {
	if tier >= 0 && tier < len(TierPalette) {
		return TierPalette[tier]
	}
	return FallbackTierColor
}
