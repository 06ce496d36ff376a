package domain

import "strings"

// Slugify converts a display name to a URL-safe identifier: transliterates
// Cyrillic, folds diacritics, lowercases, keeps [a-z0-9], collapses everything
// else into single hyphens, and trims hyphens at both ends.
//
// Pure and deterministic; the result always matches
// ^[a-z0-9]+(-[a-z0-9]+)*$ for non-empty input with at least one
// alphanumeric rune. Uniqueness is not guaranteed here — the registry
// enforces it at persistence time.
//
// Example:
//
//	Slugify("Yves Saint Laurent")  // "yves-saint-laurent"
//	Slugify("L'Artisan Parfumeur") // "l-artisan-parfumeur"
//	Slugify("Новая Заря")          // "novaya-zarya"
func Slugify(name string) string {
	name = NormalizeText(Transliterate(name))

	var b strings.Builder
	b.Grow(len(name))
	pendingHyphen := false
	for _, r := range name {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}
