package domain

import (
	"strings"

	"golang.org/x/text/width"
)

// NormalizeText turns user input into the key used for lookups and
// comparisons. Full-width Latin letters typed from a Chinese IME fold to
// their ASCII form, any run of Unicode whitespace (including the
// ideographic space U+3000) collapses to one space, and case is lowered.
// Hyphens, apostrophes and diacritics survive.
func NormalizeText(text string) string {
	text = width.Fold.String(text)
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
