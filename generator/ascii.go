package generator

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// diacriticOverrides covers Vietnamese letters that Unicode decomposition
// alone does not reduce to plain ASCII.
var diacriticOverrides = map[rune]rune{
	'Đ': 'D', 'đ': 'd',
	'Ă': 'A', 'ă': 'a',
	'Â': 'A', 'â': 'a',
	'Ê': 'E', 'ê': 'e',
	'Ô': 'O', 'ô': 'o',
	'Ơ': 'O', 'ơ': 'o',
	'Ư': 'U', 'ư': 'u',
}

// RemoveDiacritics converts Vietnamese text to its ASCII form: NFD
// decomposition, dropping combining marks, then the override map above.
func RemoveDiacritics(text string) string {
	if text == "" {
		return text
	}

	decomposed := norm.NFD.String(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if ascii, ok := diacriticOverrides[r]; ok {
			r = ascii
		}
		b.WriteRune(r)
	}

	return b.String()
}

// TitleCase re-capitalizes each space-separated word: first letter upper,
// rest lower.
func TitleCase(text string) string {
	parts := strings.Fields(text)
	for i, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
