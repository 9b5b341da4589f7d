// Package locale resolves display text for signs and categories in the
// learner's language. The catalogue's own text is English; other languages
// overlay word and description where a translation exists and fall back to
// English otherwise.
package locale

import (
	"sort"
	"strings"

	"github.com/liisbet/viipekeel/internal/catalog"
)

// DefaultLanguage is the catalogue's base language.
const DefaultLanguage = "en"

// translation overrides the display text of a single sign.
type translation struct {
	Word        string
	Description string
}

// Available returns the supported language codes in display order.
func Available() []string {
	return []string{"en", "et", "ru"}
}

// Localize returns a copy of the sign with word and description resolved for
// the given language. Missing translations leave the English text in place.
func Localize(sign catalog.Sign, lang string) catalog.Sign {
	if lang == "" || lang == DefaultLanguage {
		return sign
	}
	tr, ok := signTranslations[lang][sign.ID]
	if !ok {
		return sign
	}
	if tr.Word != "" {
		sign.Word = tr.Word
	}
	if tr.Description != "" {
		sign.Description = tr.Description
	}
	return sign
}

// Search extends the catalogue's word and keyword search with the given
// language's translated words, so a learner can search in the language
// they study in. Results are sorted by id.
func Search(query, lang string) []catalog.Sign {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	out := catalog.Search(query)
	if lang == "" || lang == DefaultLanguage {
		return out
	}

	seen := make(map[int]bool, len(out))
	for _, s := range out {
		seen[s.ID] = true
	}
	for _, s := range catalog.Signs() {
		if seen[s.ID] {
			continue
		}
		tr, ok := signTranslations[lang][s.ID]
		if ok && tr.Word != "" && strings.Contains(strings.ToLower(tr.Word), q) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LocalizeAll localizes a slice of signs, preserving order.
func LocalizeAll(signs []catalog.Sign, lang string) []catalog.Sign {
	out := make([]catalog.Sign, len(signs))
	for i, s := range signs {
		out[i] = Localize(s, lang)
	}
	return out
}

// CategoryTitle resolves a category title for the given language, falling
// back to the catalogue title. Unknown category ids return ok=false.
func CategoryTitle(categoryID int, lang string) (string, bool) {
	cat, err := catalog.GetCategory(categoryID)
	if err != nil {
		return "", false
	}
	if title, ok := categoryTitles[lang][categoryID]; ok {
		return title, true
	}
	return cat.Title, true
}
