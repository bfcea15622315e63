package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/reonyanarticle/scryfall-mcp/internal/testutil"
	"github.com/reonyanarticle/scryfall-mcp/pkg/cache"
	"github.com/reonyanarticle/scryfall-mcp/pkg/client"
	"github.com/reonyanarticle/scryfall-mcp/pkg/logging"
	"github.com/reonyanarticle/scryfall-mcp/pkg/pipeline"
)

func newTestServer(t *testing.T, baseURL string) *Server {
	t.Helper()

	c, err := client.New(client.Config{
		BaseURL:      baseURL,
		UserAgent:    "scryfall-mcp-test/1.0 (test@example.com)",
		Timeout:      5 * time.Second,
		RateInterval: 1 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("client.New failed: %v", err)
	}

	cm := cache.NewManager(cache.NewMemoryCache(100), nil, logging.NewLogger("test"))
	return NewServer(pipeline.New(c, cm))
}

func TestHandleSearchCards(t *testing.T) {
	mock := testutil.NewMockScryfall()
	defer mock.Close()
	mock.SetSearchResponse("Lightning Bolt")

	s := newTestServer(t, mock.URL())
	_, output, err := s.handleSearchCards(context.Background(), nil, SearchCardsInput{
		Query: "red instant",
	})
	if err != nil {
		t.Fatalf("handleSearchCards failed: %v", err)
	}

	if output.TotalCards != 1 {
		t.Errorf("TotalCards = %d, want 1", output.TotalCards)
	}
	if len(output.Cards) != 1 || output.Cards[0].Name != "Lightning Bolt" {
		t.Errorf("Unexpected cards: %+v", output.Cards)
	}
	if output.Query != "c:r t:instant" {
		t.Errorf("Query = %q, want the translated grammar", output.Query)
	}
}

func TestHandleSearchCards_JapaneseDefaultsMultilingual(t *testing.T) {
	mock := testutil.NewMockScryfall()
	defer mock.Close()
	mock.SetSearchResponse("Savannah Lions")

	s := newTestServer(t, mock.URL())
	_, _, err := s.handleSearchCards(context.Background(), nil, SearchCardsInput{
		Query:    "白いクリーチャー",
		Language: "ja",
	})
	if err != nil {
		t.Fatalf("handleSearchCards failed: %v", err)
	}

	if got := mock.LastRequestHeader.Get("User-Agent"); got == "" {
		t.Error("Expected identified request")
	}
	if got := mock.GetLastQuery(); got != "c:w t:creature" {
		t.Errorf("Upstream q = %q, want the translated grammar", got)
	}
}

func TestHandleAutocomplete(t *testing.T) {
	mock := testutil.NewMockScryfall()
	defer mock.Close()
	mock.SetAutocompleteResponse("Lightning Bolt", "Lightning Helix")

	s := newTestServer(t, mock.URL())
	_, output, err := s.handleAutocomplete(context.Background(), nil, AutocompleteInput{
		Query: "light",
	})
	if err != nil {
		t.Fatalf("handleAutocomplete failed: %v", err)
	}

	if len(output.Names) != 2 {
		t.Errorf("len(Names) = %d, want 2", len(output.Names))
	}
}
