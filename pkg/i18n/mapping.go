// Package i18n holds the per-locale vocabulary tables used to translate
// localized card-search terms into Scryfall query grammar.
package i18n

// Mapping is an immutable vocabulary table for one locale. All maps go
// from the localized surface form to the canonical grammar token and are
// read-only after construction.
type Mapping struct {
	// LanguageCode is the ISO 639-1 code ("en", "ja").
	LanguageCode string

	// Colors maps localized color terms to single-letter codes (w u b r g c).
	Colors map[string]string

	// Types maps localized card type terms to canonical type names.
	Types map[string]string

	// Operators maps localized comparison words to grammar operators.
	Operators map[string]string

	// Fields maps localized field names to grammar fields (power -> p).
	Fields map[string]string

	// Keywords maps localized terms to complete grammar tokens
	// (飛行 -> keyword:flying, multicolor -> multicolor).
	Keywords map[string]string
}

// DefaultLocale is used when a requested locale has no mapping.
const DefaultLocale = "en"

var mappings = map[string]*Mapping{
	"en": englishMapping,
	"ja": japaneseMapping,
}

// Lookup returns the vocabulary for locale, falling back to English for
// unknown locales. The returned mapping must not be modified.
func Lookup(locale string) *Mapping {
	if m, ok := mappings[locale]; ok {
		return m
	}
	return mappings[DefaultLocale]
}

// Supported returns the locale codes with a registered mapping.
func Supported() []string {
	return []string{"en", "ja"}
}
