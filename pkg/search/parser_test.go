package search

import (
	"reflect"
	"testing"
)

func TestParse_JapaneseColorType(t *testing.T) {
	p := NewParser("ja")
	parsed := p.Parse("白いクリーチャー")

	if !reflect.DeepEqual(parsed.Colors, []string{"w"}) {
		t.Errorf("Colors = %v, want [w]", parsed.Colors)
	}
	if !reflect.DeepEqual(parsed.Types, []string{"creature"}) {
		t.Errorf("Types = %v, want [creature]", parsed.Types)
	}
	if len(parsed.Leftovers) != 0 {
		t.Errorf("Leftovers = %v, want none", parsed.Leftovers)
	}
}

func TestParse_JapaneseFieldComparison(t *testing.T) {
	p := NewParser("ja")

	tests := []struct {
		input string
		want  Comparison
	}{
		{"パワー3以上", Comparison{Field: "p", Op: ">=", Value: "3"}},
		{"パワーが3以上", Comparison{Field: "p", Op: ">=", Value: "3"}},
		{"タフネス2以下", Comparison{Field: "tou", Op: "<=", Value: "2"}},
		{"マナ総量4未満", Comparison{Field: "mv", Op: "<", Value: "4"}},
		{"点数で見たマナコスト5より大きい", Comparison{Field: "cmc", Op: ">", Value: "5"}},
		{"忠誠度3", Comparison{Field: "loy", Op: "=", Value: "3"}},
	}

	for _, tt := range tests {
		parsed := p.Parse(tt.input)
		if len(parsed.Comparisons) != 1 {
			t.Errorf("Parse(%q): Comparisons = %v, want one", tt.input, parsed.Comparisons)
			continue
		}
		if parsed.Comparisons[0] != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.input, parsed.Comparisons[0], tt.want)
		}
	}
}

func TestParse_FullWidthDigitsNormalized(t *testing.T) {
	p := NewParser("ja")
	parsed := p.Parse("パワー３以上")

	want := Comparison{Field: "p", Op: ">=", Value: "3"}
	if len(parsed.Comparisons) != 1 || parsed.Comparisons[0] != want {
		t.Errorf("Comparisons = %v, want [%+v]", parsed.Comparisons, want)
	}
}

func TestParse_JapaneseCombined(t *testing.T) {
	p := NewParser("ja")
	parsed := p.Parse("パワー3以上の赤いクリーチャー 飛行")

	if !reflect.DeepEqual(parsed.Colors, []string{"r"}) {
		t.Errorf("Colors = %v, want [r]", parsed.Colors)
	}
	if !reflect.DeepEqual(parsed.Types, []string{"creature"}) {
		t.Errorf("Types = %v, want [creature]", parsed.Types)
	}
	want := Comparison{Field: "p", Op: ">=", Value: "3"}
	if len(parsed.Comparisons) != 1 || parsed.Comparisons[0] != want {
		t.Errorf("Comparisons = %v, want [%+v]", parsed.Comparisons, want)
	}
	if !reflect.DeepEqual(parsed.Keywords, []string{"keyword:flying"}) {
		t.Errorf("Keywords = %v, want [keyword:flying]", parsed.Keywords)
	}
}

func TestParse_EnglishTokens(t *testing.T) {
	p := NewParser("en")
	parsed := p.Parse("power>=3 red creature")

	if !reflect.DeepEqual(parsed.Colors, []string{"r"}) {
		t.Errorf("Colors = %v, want [r]", parsed.Colors)
	}
	if !reflect.DeepEqual(parsed.Types, []string{"creature"}) {
		t.Errorf("Types = %v, want [creature]", parsed.Types)
	}
	want := Comparison{Field: "p", Op: ">=", Value: "3"}
	if len(parsed.Comparisons) != 1 || parsed.Comparisons[0] != want {
		t.Errorf("Comparisons = %v, want [%+v]", parsed.Comparisons, want)
	}
}

func TestParse_EnglishPhraseComparison(t *testing.T) {
	p := NewParser("en")

	tests := []struct {
		input string
		want  Comparison
	}{
		{"power greater than 3", Comparison{Field: "p", Op: ">", Value: "3"}},
		{"power is at least 3", Comparison{Field: "p", Op: ">=", Value: "3"}},
		{"toughness less than 2", Comparison{Field: "tou", Op: "<", Value: "2"}},
		{"mana value at most 4", Comparison{Field: "mv", Op: "<=", Value: "4"}},
		{"cmc greater than or equal to 5", Comparison{Field: "cmc", Op: ">=", Value: "5"}},
		{"loyalty exactly 3", Comparison{Field: "loy", Op: "=", Value: "3"}},
		{"Power Equals 7", Comparison{Field: "p", Op: "=", Value: "7"}},
	}

	for _, tt := range tests {
		parsed := p.Parse(tt.input)
		if len(parsed.Comparisons) != 1 {
			t.Errorf("Parse(%q): Comparisons = %v, want one", tt.input, parsed.Comparisons)
			continue
		}
		if parsed.Comparisons[0] != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.input, parsed.Comparisons[0], tt.want)
		}
		if len(parsed.Leftovers) != 0 {
			t.Errorf("Parse(%q): Leftovers = %v, want none", tt.input, parsed.Leftovers)
		}
	}
}

func TestParse_EnglishPhraseComparisonCombined(t *testing.T) {
	p := NewParser("en")
	parsed := p.Parse("red creatures with power greater than 3")

	if !reflect.DeepEqual(parsed.Colors, []string{"r"}) {
		t.Errorf("Colors = %v, want [r]", parsed.Colors)
	}
	if !reflect.DeepEqual(parsed.Types, []string{"creature"}) {
		t.Errorf("Types = %v, want [creature]", parsed.Types)
	}
	want := Comparison{Field: "p", Op: ">", Value: "3"}
	if len(parsed.Comparisons) != 1 || parsed.Comparisons[0] != want {
		t.Errorf("Comparisons = %v, want [%+v]", parsed.Comparisons, want)
	}
	if !reflect.DeepEqual(parsed.Leftovers, []string{"with"}) {
		t.Errorf("Leftovers = %v, want [with]", parsed.Leftovers)
	}
}

func TestParse_JapaneseColorParticleForms(t *testing.T) {
	p := NewParser("ja")

	tests := []struct {
		input string
		want  string
	}{
		{"白の", "w"},
		{"青の", "u"},
		{"黒の", "b"},
		{"赤の", "r"},
		{"緑の", "g"},
		{"無色の", "c"},
	}

	for _, tt := range tests {
		parsed := p.Parse(tt.input)
		if !reflect.DeepEqual(parsed.Colors, []string{tt.want}) {
			t.Errorf("Parse(%q): Colors = %v, want [%s]", tt.input, parsed.Colors, tt.want)
		}
		if len(parsed.Leftovers) != 0 {
			t.Errorf("Parse(%q): Leftovers = %v, want none", tt.input, parsed.Leftovers)
		}
	}
}

func TestParse_UnrecognizedFieldPassesThrough(t *testing.T) {
	p := NewParser("en")
	parsed := p.Parse("power>=3 zorp:5 red creature")

	if !reflect.DeepEqual(parsed.Leftovers, []string{"zorp:5"}) {
		t.Errorf("Leftovers = %v, want the unrecognized filter verbatim", parsed.Leftovers)
	}
	if len(parsed.Comparisons) != 1 {
		t.Errorf("Comparisons = %v, want the recognized one", parsed.Comparisons)
	}
}

func TestParse_QuotedLiterals(t *testing.T) {
	p := NewParser("en")
	parsed := p.Parse(`blue instant "Lightning Bolt" "Counterspell"`)

	if !reflect.DeepEqual(parsed.Names, []string{"Lightning Bolt", "Counterspell"}) {
		t.Errorf("Names = %v, want both literals in order", parsed.Names)
	}
	if !reflect.DeepEqual(parsed.Colors, []string{"u"}) {
		t.Errorf("Colors = %v, want [u]", parsed.Colors)
	}
}

func TestParse_SmartQuotesNormalized(t *testing.T) {
	p := NewParser("en")
	parsed := p.Parse("“Lightning Bolt”")

	if !reflect.DeepEqual(parsed.Names, []string{"Lightning Bolt"}) {
		t.Errorf("Names = %v, want the smart-quoted literal", parsed.Names)
	}
}

func TestParse_ColorsDeduplicatedAndOrdered(t *testing.T) {
	p := NewParser("en")
	parsed := p.Parse("green white green blue")

	if !reflect.DeepEqual(parsed.Colors, []string{"w", "u", "g"}) {
		t.Errorf("Colors = %v, want [w u g] in wubrg order", parsed.Colors)
	}
}

func TestParse_NothingDropped(t *testing.T) {
	p := NewParser("en")
	parsed := p.Parse("mysterious xyzzy o:draw red")

	if !reflect.DeepEqual(parsed.Leftovers, []string{"mysterious", "xyzzy", "o:draw"}) {
		t.Errorf("Leftovers = %v, want every unmatched token verbatim", parsed.Leftovers)
	}
}

func TestParse_UnknownLocaleUsesEnglish(t *testing.T) {
	p := NewParser("fr")
	parsed := p.Parse("red creature")

	if parsed.Locale != "en" {
		t.Errorf("Locale = %q, want en fallback", parsed.Locale)
	}
	if !reflect.DeepEqual(parsed.Colors, []string{"r"}) {
		t.Errorf("Colors = %v, want [r]", parsed.Colors)
	}
}
