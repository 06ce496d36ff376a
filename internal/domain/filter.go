package domain

// PerfumerRef addresses a perfumer inside a catalog record by both renditions
// of the canonical name. RU is nil when the canonical entity has no
// localized name.
type PerfumerRef struct {
	EN string
	RU *string
}

// PerfumeFilter contains the fully resolved parameters for a catalog search.
// Slugs and ids have already been resolved to canonical names by the service
// layer; the repository only builds SQL from it.
//
// QueryVariants are the normalized and transliterated forms of the free-text
// query, matched OR-ed against name, localized name, and brand. ExactVariants
// are the forms those fields must equal for the relevance boost, including
// the raw lowercased query with diacritics intact. Combining a
// brand/perfumer/note filter with the free-text query is a logical AND.
type PerfumeFilter struct {
	QueryVariants []string
	ExactVariants []string
	Brand         *string
	Perfumer      *PerfumerRef
	Note          *string
	Gender        *Gender
	ReleaseYear   *int
	Sort          SortPolicy
	Limit         int
	Offset        int
}
