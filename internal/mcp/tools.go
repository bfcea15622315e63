package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/reonyanarticle/scryfall-mcp/pkg/pipeline"
)

// SearchCardsInput is the input schema for the search_cards tool.
type SearchCardsInput struct {
	Query      string `json:"query" jsonschema:"natural language card search query"`
	Language   string `json:"language,omitempty" jsonschema:"query language code, en or ja (default en)"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of cards to return, 1-175 (default 20)"`
	Format     string `json:"format,omitempty" jsonschema:"restrict to cards legal in this format (standard, modern, ...)"`
}

// SearchCardsOutput is the output schema for the search_cards tool.
type SearchCardsOutput struct {
	Query      string       `json:"query"`
	Cards      []CardOutput `json:"cards"`
	TotalCards int          `json:"total_cards"`
	Cached     bool         `json:"cached"`
}

// CardOutput is one card in a search result.
type CardOutput struct {
	Name        string `json:"name"`
	PrintedName string `json:"printed_name,omitempty"`
	ManaCost    string `json:"mana_cost,omitempty"`
	TypeLine    string `json:"type_line,omitempty"`
	OracleText  string `json:"oracle_text,omitempty"`
	Power       string `json:"power,omitempty"`
	Toughness   string `json:"toughness,omitempty"`
	Rarity      string `json:"rarity,omitempty"`
	SetName     string `json:"set_name,omitempty"`
}

// AutocompleteInput is the input schema for the autocomplete tool.
type AutocompleteInput struct {
	Query    string `json:"query" jsonschema:"card name prefix to complete"`
	Language string `json:"language,omitempty" jsonschema:"query language code, en or ja (default en)"`
}

// AutocompleteOutput is the output schema for the autocomplete tool.
type AutocompleteOutput struct {
	Names []string `json:"names"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_cards",
		Description: "Search Magic: The Gathering cards using natural language (English or Japanese)",
	}, s.handleSearchCards)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "autocomplete_card_name",
		Description: "Complete a partial Magic: The Gathering card name",
	}, s.handleAutocomplete)
}

// handleSearchCards handles the search_cards tool invocation.
func (s *Server) handleSearchCards(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchCardsInput,
) (*mcp.CallToolResult, SearchCardsOutput, error) {
	locale := input.Language
	if locale == "" {
		locale = "en"
	}

	result, err := s.pipeline.HandleSearch(ctx, input.Query, locale, pipeline.SearchOptions{
		MaxResults:   input.MaxResults,
		Multilingual: locale != "en",
		FormatFilter: input.Format,
	})
	if err != nil {
		return nil, SearchCardsOutput{}, err
	}

	output := SearchCardsOutput{
		Query:      result.Query,
		Cards:      make([]CardOutput, len(result.Cards)),
		TotalCards: result.TotalCards,
		Cached:     result.Cached,
	}
	for i, card := range result.Cards {
		output.Cards[i] = CardOutput{
			Name:        card.Name,
			PrintedName: card.PrintedName,
			ManaCost:    card.ManaCost,
			TypeLine:    card.TypeLine,
			OracleText:  card.OracleText,
			Power:       card.Power,
			Toughness:   card.Toughness,
			Rarity:      card.Rarity,
			SetName:     card.SetName,
		}
	}

	return nil, output, nil
}

// handleAutocomplete handles the autocomplete_card_name tool invocation.
func (s *Server) handleAutocomplete(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AutocompleteInput,
) (*mcp.CallToolResult, AutocompleteOutput, error) {
	locale := input.Language
	if locale == "" {
		locale = "en"
	}

	names, err := s.pipeline.HandleAutocomplete(ctx, input.Query, locale)
	if err != nil {
		return nil, AutocompleteOutput{}, err
	}

	return nil, AutocompleteOutput{Names: names}, nil
}
