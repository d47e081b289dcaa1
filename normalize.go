package morphodrill

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// sigmaReplacer folds final sigma and the lunate sigma into medial σ so
// ending checks do not depend on word position.
var sigmaReplacer = strings.NewReplacer(
	"ς", "σ", // ς → σ
	"ϲ", "σ", // ϲ → σ
	"Σ", "σ", // Σ → σ
)

// StripDiacritics removes accents, breathings, iota subscripts, macrons and
// breves from s, leaving bare base letters in NFC.
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeKey returns the comparison key for a Greek word: lower case,
// no diacritics, all sigmas medial.
func NormalizeKey(s string) string {
	return sigmaReplacer.Replace(strings.ToLower(StripDiacritics(strings.TrimSpace(s))))
}

// greekVowels holds the bare vowels after NormalizeKey.
const greekVowels = "αεηιουω"

// isGreekConsonant reports whether r is a bare Greek consonant.
func isGreekConsonant(r rune) bool {
	if r < 'α' || r > 'ω' {
		return false
	}
	return !strings.ContainsRune(greekVowels, r)
}

// firstAlternative returns the first of several slash-separated variants,
// e.g. "ἔστησα / ἔστην" → "ἔστησα".
func firstAlternative(pp string) string {
	if i := strings.Index(pp, "/"); i >= 0 {
		pp = pp[:i]
	}
	return strings.TrimSpace(pp)
}
