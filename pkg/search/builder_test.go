package search

import (
	"reflect"
	"strings"
	"testing"
)

func TestBuild_JapaneseColorCreature(t *testing.T) {
	parsed := NewParser("ja").Parse("白いクリーチャー")
	built := NewBuilder().Build(parsed)

	if built.Query != "c:w t:creature" {
		t.Errorf("Query = %q, want %q", built.Query, "c:w t:creature")
	}
}

func TestBuild_EnglishWithPassthrough(t *testing.T) {
	parsed := NewParser("en").Parse("power>=3 red creature zorp:5")
	built := NewBuilder().Build(parsed)

	if built.Query != "c:r t:creature p>=3 zorp:5" {
		t.Errorf("Query = %q, want %q", built.Query, "c:r t:creature p>=3 zorp:5")
	}
}

func TestBuild_ClauseOrder(t *testing.T) {
	// Input order deliberately scrambled relative to emission order.
	parsed := NewParser("en").Parse(`flying "Sol Ring" power>=2 artifact white leftovertoken`)
	built := NewBuilder().Build(parsed)

	want := []string{"c:w", "t:artifact", "p>=2", `"Sol Ring"`, "keyword:flying", "leftovertoken"}
	if !reflect.DeepEqual(built.Clauses, want) {
		t.Errorf("Clauses = %v, want %v", built.Clauses, want)
	}
	if built.Query != strings.Join(want, " ") {
		t.Errorf("Query = %q, want joined clauses", built.Query)
	}
}

func TestBuild_MultipleColorsJoined(t *testing.T) {
	parsed := NewParser("en").Parse("white blue creature")
	built := NewBuilder().Build(parsed)

	if built.Query != "c:wu t:creature" {
		t.Errorf("Query = %q, want %q", built.Query, "c:wu t:creature")
	}
}

func TestBuild_EmptyParse(t *testing.T) {
	built := NewBuilder().Build(NewParser("en").Parse(""))

	if built.Query != "" {
		t.Errorf("Query = %q, want empty", built.Query)
	}
	if len(built.Clauses) != 0 {
		t.Errorf("Clauses = %v, want none", built.Clauses)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	inputs := []struct {
		locale string
		text   string
	}{
		{"ja", "パワー3以上の赤いクリーチャー 飛行"},
		{"en", `green creature trample "Ghalta" mv:4 mystery`},
		{"ja", "青いインスタント 瞬速 マナ総量2以下"},
	}

	for _, tt := range inputs {
		parser := NewParser(tt.locale)
		builder := NewBuilder()

		first := builder.Build(parser.Parse(tt.text)).Query
		for i := 0; i < 10; i++ {
			if got := builder.Build(parser.Parse(tt.text)).Query; got != first {
				t.Errorf("Build(Parse(%q)) not deterministic: %q vs %q", tt.text, got, first)
			}
		}
	}
}

func TestBuild_ParsedReferenceKept(t *testing.T) {
	parsed := NewParser("en").Parse("red instant")
	built := NewBuilder().Build(parsed)

	if built.Parsed != parsed {
		t.Error("Expected BuiltQuery to reference its source ParsedQuery")
	}
}
