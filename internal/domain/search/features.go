package search

// featureVariants maps a canonical filter token to the stored-name spellings
// that must be treated as equivalent. The data carries several generations of
// naming: snake_case tokens, human-readable labels, and "has"-prefixed flags
// that live on the layout instead of the unit's features collection.
var featureVariants = map[string][]string{
	"sea_view":     {"sea_view", "Sea View"},
	"pet_friendly": {"pet_friendly", "Pet Friendly", "hasPets"},
	"smart_home":   {"smart_home", "Smart Home", "hasSmartHome"},
	"parking":      {"parking", "Parking", "hasParking"},
	"balcony":      {"balcony", "Balcony", "hasBalcony"},
	"furnished":    {"furnished", "Furnished"},
	"private_pool": {"private_pool", "Private Pool"},
	"high_floor":   {"high_floor", "High Floor"},
}

// NormalizeFeature resolves a filter token to its stored-name variants.
// Unknown tokens fall back to a singleton list containing the token itself,
// so novel feature names keep working without a table update. Matching among
// the variants is OR semantics; no ordering is guaranteed.
func NormalizeFeature(token string) []string {
	if variants, ok := featureVariants[token]; ok {
		return variants
	}

	return []string{token}
}
