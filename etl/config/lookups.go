package config

import (
	"math/rand"
)

// WeightedLabel is one outcome of a weighted categorical draw.
type WeightedLabel struct {
	Label  string
	Weight float64
}

// Lookups bundles the static reference tables used by the transform stage.
// They are built once and passed in explicitly so tests can substitute
// alternate geographies or category maps.
type Lookups struct {
	// StateToRegion maps a state/province code to its geographic region.
	StateToRegion map[string]string

	// CategoryMapping maps a raw product category name to its level-1
	// display category.
	CategoryMapping map[string]string

	// CustomerTiers is the weighted distribution used when an incoming
	// customer row carries no tier.
	CustomerTiers []WeightedLabel

	// SellerTiers is the weighted distribution for seller tiers.
	SellerTiers []WeightedLabel
}

// DefaultLookups returns the reference tables for the platform: the
// Vietnamese provinces the generator emits plus the Brazilian benchmark
// states present in the external order datasets.
func DefaultLookups() Lookups {
	stateToRegion := map[string]string{
		// Vietnamese provinces
		"Hanoi":            "North",
		"Hai Phong":        "North",
		"Thai Nguyen":      "North",
		"Thanh Hoa":        "North",
		"Nam Dinh":         "North",
		"Quang Ninh":       "North",
		"Ha Tinh":          "North",
		"Nghe An":          "North",
		"Quang Binh":       "North",
		"Da Nang":          "Central",
		"Thua Thien Hue":   "Central",
		"Khanh Hoa":        "Central",
		"Binh Thuan":       "Central",
		"Binh Dinh":        "Central",
		"Phu Yen":          "Central",
		"Quang Nam":        "Central",
		"Quang Tri":        "Central",
		"Dak Lak":          "Central Highlands",
		"Lam Dong":         "Central Highlands",
		"Gia Lai":          "Central Highlands",
		"HCMC":             "South",
		"Can Tho":          "South",
		"Dong Nai":         "South",
		"Ba Ria-Vung Tau":  "South",
		"Binh Duong":       "South",
		"Kien Giang":       "South",
		"An Giang":         "South",

		// Brazilian benchmark states
		"SP": "Southeast", "RJ": "Southeast", "MG": "Southeast", "ES": "Southeast",
		"RS": "South", "SC": "South", "PR": "South",
		"BA": "Northeast", "PE": "Northeast", "CE": "Northeast", "MA": "Northeast",
		"PI": "Northeast", "RN": "Northeast", "PB": "Northeast", "AL": "Northeast", "SE": "Northeast",
		"GO": "Central-West", "MT": "Central-West", "MS": "Central-West", "DF": "Central-West",
		"AM": "North", "PA": "North", "AC": "North", "RO": "North", "RR": "North", "AP": "North",
	}

	categoryMapping := map[string]string{
		"electronics":   "Electronics",
		"fashion":       "Fashion & Accessories",
		"home_garden":   "Home & Garden",
		"sports":        "Sports & Outdoors",
		"books":         "Books & Media",
		"toys":          "Toys & Games",
		"health_beauty": "Health & Beauty",
		"automotive":    "Automotive",
		"food":          "Food & Beverages",
		"furniture":     "Furniture & Decor",
	}

	customerTiers := []WeightedLabel{
		{Label: "Silver", Weight: 0.45},
		{Label: "Gold", Weight: 0.30},
		{Label: "Platinum", Weight: 0.15},
		{Label: "Diamond", Weight: 0.08},
		{Label: "VIP", Weight: 0.02},
	}

	sellerTiers := []WeightedLabel{
		{Label: "Basic", Weight: 0.6},
		{Label: "Premium", Weight: 0.3},
		{Label: "Enterprise", Weight: 0.1},
	}

	return Lookups{
		StateToRegion:   stateToRegion,
		CategoryMapping: categoryMapping,
		CustomerTiers:   customerTiers,
		SellerTiers:     sellerTiers,
	}
}

// PickWeighted draws one label from a weighted categorical distribution.
// Weights do not have to sum to exactly 1; the last label absorbs any
// rounding remainder.
func PickWeighted(rng *rand.Rand, labels []WeightedLabel) string {
	total := 0.0
	for _, l := range labels {
		total += l.Weight
	}

	draw := rng.Float64() * total
	cumulative := 0.0
	for _, l := range labels {
		cumulative += l.Weight
		if draw < cumulative {
			return l.Label
		}
	}
	return labels[len(labels)-1].Label
}
