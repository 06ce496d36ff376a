package domain

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics decomposes to NFD, drops combining marks, recomposes.
// "é" -> "e", "Моско́вский" -> "Московский".
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeText prepares text for matching:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - strips combining diacritical marks ("é" -> "e")
//   - compresses runs of whitespace into a single space
//
// Idempotent: NormalizeText(NormalizeText(s)) == NormalizeText(s).
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	text, _, _ = transform.String(foldDiacritics, text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// cyrillicToLatin maps lowercase Cyrillic letters to a Latin phonetic
// approximation. Hard and soft signs map to nothing.
var cyrillicToLatin = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "yo", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "yu", 'я': "ya",
}

// Transliterate renders Cyrillic input as a lowercase Latin phonetic
// approximation; non-Cyrillic runes are lowercased and passed through.
// The output contains no Cyrillic, so the function is idempotent.
func Transliterate(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if latin, ok := cyrillicToLatin[r]; ok {
			b.WriteString(latin)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// QueryVariants returns the distinct matching forms of a query: the
// normalized form, its transliteration, and the raw lowercased form when
// diacritics distinguish it. The raw form keeps accented stored names
// reachable, since the substring match runs over the columns verbatim.
// Search matches a field against every variant, OR-ed, case-insensitively.
func QueryVariants(query string) []string {
	n := NormalizeText(query)
	if n == "" {
		return nil
	}
	variants := []string{n}
	if t := Transliterate(n); t != n {
		variants = append(variants, t)
	}
	if raw := rawForm(query); raw != "" && !slices.Contains(variants, raw) {
		variants = append(variants, raw)
	}
	return variants
}

// ExactVariants returns the distinct forms a lowercased field must equal for
// an exact-match rank boost: the raw query (lowercased, whitespace-collapsed,
// diacritics intact) plus every matching variant. The raw form is what lets
// "Crème de la Crème" rank a record literally named that.
func ExactVariants(query string) []string {
	raw := rawForm(query)
	if raw == "" {
		return nil
	}
	variants := []string{raw}
	for _, v := range QueryVariants(query) {
		if v != raw {
			variants = append(variants, v)
		}
	}
	return variants
}

// rawForm lowercases and whitespace-collapses without touching diacritics.
func rawForm(query string) string {
	return strings.ToLower(strings.Join(strings.Fields(query), " "))
}
