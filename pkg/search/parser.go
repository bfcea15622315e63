// Package search translates localized free-text card queries into the
// Scryfall search grammar. Parsing extracts structured entities; building
// assembles them into a deterministic grammar string.
package search

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/width"

	"github.com/reonyanarticle/scryfall-mcp/pkg/i18n"
)

// Comparison is one numeric filter extracted from the query, already in
// grammar form (Field "p", Op ">=", Value "3").
type Comparison struct {
	Field string
	Op    string
	Value string
}

// ParsedQuery is the structured form of a free-text query. Entity slices
// only hold values from the locale's vocabulary; anything unrecognized is
// preserved verbatim in Leftovers so no user input is ever dropped.
type ParsedQuery struct {
	// Text is the original input before normalization.
	Text string

	// Locale is the vocabulary the query was parsed with.
	Locale string

	// Colors holds single-letter color codes in wubrgc order, unique.
	Colors []string

	// Types holds canonical type names, sorted, unique.
	Types []string

	// Comparisons holds numeric filters in extraction order.
	Comparisons []Comparison

	// Names holds quoted literals in input order.
	Names []string

	// Keywords holds recognized grammar tokens in extraction order.
	Keywords []string

	// Leftovers holds unmatched tokens verbatim, in input order.
	Leftovers []string
}

// Parser extracts entities from free text using one locale's vocabulary.
type Parser struct {
	mapping *i18n.Mapping
}

// NewParser returns a parser for locale (English for unknown locales).
func NewParser(locale string) *Parser {
	return &Parser{mapping: i18n.Lookup(locale)}
}

var (
	quotedLiteral = regexp.MustCompile(`"([^"]+)"`)

	// Token-level comparison like power>=3 or mv:4.
	tokenComparison = regexp.MustCompile(`^([a-zA-Z]+)(>=|<=|!=|>|<|=|:)([0-9]+)$`)

	// Japanese compound: color adjective directly attached to a type,
	// as in 白いクリーチャー or 赤のソーサリー.
	jaColorType = regexp.MustCompile(`(白|青|黒|赤|緑|無色)(?:い|の)?(アーティファクト|クリーチャー|エンチャント|インスタント|プレインズウォーカー|ソーサリー|土地)`)

	// Japanese compound: field, number, trailing comparison word, as in
	// パワー3以上 or マナ総量が4以下. Longest field names first so
	// 点数で見たマナコスト wins over マナコスト.
	jaFieldComparison = regexp.MustCompile(`(パワー|タフネス|点数で見たマナコスト|マナ総量|マナコスト|忠誠度)が?([0-9]+)(以上|以下|より大きい|未満|と等しい|等しい)?`)

	// English phrase comparison, as in "power greater than 3" or
	// "mana value is at least 4". Longest operator phrases first so
	// "greater than or equal to" wins over "greater than".
	enFieldComparison = regexp.MustCompile(`(?i)\b(mana value|manavalue|power|toughness|cmc|loyalty|price)\s+(?:is\s+)?(greater than or equal to|less than or equal to|at least|at most|greater than|more than|less than|equal to|equals|exactly)\s+([0-9]+)\b`)
)

// Parse extracts structured entities from text. It never fails; input the
// vocabulary cannot interpret degrades into verbatim leftover tokens.
func (p *Parser) Parse(text string) *ParsedQuery {
	parsed := &ParsedQuery{
		Text:   text,
		Locale: p.mapping.LanguageCode,
	}

	rest := normalize(text)

	// Quoted literals are atomic; extract them before any tokenization.
	for _, m := range quotedLiteral.FindAllStringSubmatch(rest, -1) {
		parsed.Names = append(parsed.Names, m[1])
	}
	rest = quotedLiteral.ReplaceAllString(rest, " ")

	colorSet := map[string]bool{}
	typeSet := map[string]bool{}

	if p.mapping.LanguageCode == "ja" {
		rest = p.extractJapanese(rest, parsed, colorSet, typeSet)
	} else {
		rest = p.extractEnglishComparisons(rest, parsed)
	}

	for _, token := range strings.Fields(rest) {
		p.matchToken(token, parsed, colorSet, typeSet)
	}

	parsed.Colors = orderColors(colorSet)
	parsed.Types = orderTypes(typeSet)
	return parsed
}

// extractJapanese consumes compound patterns and vocabulary substrings
// from the text, which has no word boundaries to tokenize on. The
// remainder is returned for generic token handling.
func (p *Parser) extractJapanese(rest string, parsed *ParsedQuery, colorSet, typeSet map[string]bool) string {
	rest = jaColorType.ReplaceAllStringFunc(rest, func(match string) string {
		m := jaColorType.FindStringSubmatch(match)
		colorSet[p.mapping.Colors[m[1]]] = true
		typeSet[p.mapping.Types[m[2]]] = true
		return " "
	})

	rest = jaFieldComparison.ReplaceAllStringFunc(rest, func(match string) string {
		m := jaFieldComparison.FindStringSubmatch(match)
		op := "="
		if m[3] != "" {
			op = p.mapping.Operators[m[3]]
		}
		parsed.Comparisons = append(parsed.Comparisons, Comparison{
			Field: p.mapping.Fields[m[1]],
			Op:    op,
			Value: m[2],
		})
		return " "
	})

	// Longest vocabulary term first so 神話レア is not eaten by レア.
	for _, term := range p.jaVocabTerms() {
		for strings.Contains(rest, term) {
			if code, ok := p.mapping.Colors[term]; ok {
				colorSet[code] = true
			} else if typ, ok := p.mapping.Types[term]; ok {
				typeSet[typ] = true
			} else {
				parsed.Keywords = append(parsed.Keywords, p.mapping.Keywords[term])
			}
			rest = strings.Replace(rest, term, " ", 1)
		}
	}

	return rest
}

// extractEnglishComparisons consumes spelled-out comparisons before the
// text is split into tokens, since the field and operator span words.
func (p *Parser) extractEnglishComparisons(rest string, parsed *ParsedQuery) string {
	return enFieldComparison.ReplaceAllStringFunc(rest, func(match string) string {
		m := enFieldComparison.FindStringSubmatch(match)
		field := strings.ReplaceAll(strings.ToLower(m[1]), " ", "")
		parsed.Comparisons = append(parsed.Comparisons, Comparison{
			Field: p.mapping.Fields[field],
			Op:    p.mapping.Operators[strings.ToLower(m[2])],
			Value: m[3],
		})
		return " "
	})
}

// jaVocabTerms returns all color, type and keyword surface forms sorted
// longest first, then lexicographically for determinism.
func (p *Parser) jaVocabTerms() []string {
	terms := make([]string, 0, len(p.mapping.Colors)+len(p.mapping.Types)+len(p.mapping.Keywords))
	for term := range p.mapping.Colors {
		terms = append(terms, term)
	}
	for term := range p.mapping.Types {
		terms = append(terms, term)
	}
	for term := range p.mapping.Keywords {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})
	return terms
}

// matchToken classifies one whitespace-delimited token. Precedence:
// numeric comparison, color, type, keyword; everything else is a leftover
// preserved verbatim.
func (p *Parser) matchToken(token string, parsed *ParsedQuery, colorSet, typeSet map[string]bool) {
	lower := strings.ToLower(token)

	if m := tokenComparison.FindStringSubmatch(lower); m != nil {
		field, ok := p.mapping.Fields[m[1]]
		if ok {
			parsed.Comparisons = append(parsed.Comparisons, Comparison{
				Field: field,
				Op:    m[2],
				Value: m[3],
			})
			return
		}
		// Unrecognized field: the whole token passes through untouched.
		parsed.Leftovers = append(parsed.Leftovers, token)
		return
	}

	if code, ok := p.mapping.Colors[lower]; ok {
		colorSet[code] = true
		return
	}
	if typ, ok := p.mapping.Types[lower]; ok {
		typeSet[typ] = true
		return
	}
	if kw, ok := p.mapping.Keywords[lower]; ok {
		parsed.Keywords = append(parsed.Keywords, kw)
		return
	}

	parsed.Leftovers = append(parsed.Leftovers, token)
}

// normalize folds width variants (full-width digits and operators become
// ASCII, half-width katakana becomes full-width), replaces smart quotes,
// and collapses whitespace.
func normalize(text string) string {
	text = width.Fold.String(text)

	replacer := strings.NewReplacer(
		"“", `"`, "”", `"`,
		"‘", "'", "’", "'",
	)
	text = replacer.Replace(text)

	return strings.Join(strings.Fields(text), " ")
}

// wubrgc is the canonical Magic color ordering plus colorless last.
var wubrgc = []string{"w", "u", "b", "r", "g", "c"}

func orderColors(set map[string]bool) []string {
	var out []string
	for _, code := range wubrgc {
		if set[code] {
			out = append(out, code)
		}
	}
	return out
}

func orderTypes(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for typ := range set {
		out = append(out, typ)
	}
	sort.Strings(out)
	return out
}
