// Package pipeline wires the query translation, cache and upstream client
// into the two operations the tool layer calls: card search and card name
// autocomplete.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/reonyanarticle/scryfall-mcp/pkg/cache"
	"github.com/reonyanarticle/scryfall-mcp/pkg/client"
	"github.com/reonyanarticle/scryfall-mcp/pkg/logging"
	"github.com/reonyanarticle/scryfall-mcp/pkg/search"
)

const (
	// DefaultMaxResults is returned when the caller does not limit results.
	DefaultMaxResults = 20

	// MaxResults mirrors the upstream page size ceiling.
	MaxResults = client.MaxPageSize
)

// SearchOptions tunes one search request.
type SearchOptions struct {
	// MaxResults caps the returned cards; clamped to 1..175, default 20.
	MaxResults int

	// Multilingual includes non-English printings. Part of the cache key
	// because it changes the result shape.
	Multilingual bool

	// FormatFilter restricts results to cards legal in a format
	// ("standard", "modern", ...). Empty means no restriction.
	FormatFilter string
}

// Result is a completed search.
type Result struct {
	// Query is the grammar string actually executed upstream.
	Query string

	// Cards is the result page, trimmed to MaxResults.
	Cards []client.Card

	// TotalCards is the upstream total across all pages.
	TotalCards int

	// Cached reports whether the payload came from cache.
	Cached bool
}

// Pipeline orchestrates parse, build, cache lookup and upstream execution.
type Pipeline struct {
	client  *client.Client
	cache   *cache.Manager
	builder *search.Builder
	logger  zerolog.Logger
}

// New creates a pipeline over the given client and cache manager.
func New(c *client.Client, cm *cache.Manager) *Pipeline {
	return &Pipeline{
		client:  c,
		cache:   cm,
		builder: search.NewBuilder(),
		logger:  logging.NewLogger("pipeline"),
	}
}

// HandleSearch translates text in the given locale to a grammar query,
// serves it from cache when possible, and otherwise executes it upstream
// and stores the payload. Cache failures degrade to upstream calls;
// upstream failures propagate classified.
func (p *Pipeline) HandleSearch(ctx context.Context, text, locale string, opts SearchOptions) (*Result, error) {
	opts.MaxResults = clampMaxResults(opts.MaxResults)

	built := p.builder.Build(search.NewParser(locale).Parse(text))
	query := built.Query
	if opts.FormatFilter != "" {
		query = query + " f:" + opts.FormatFilter
	}

	key := cache.Key{
		Namespace:    "search",
		Query:        query,
		Locale:       locale,
		PageSize:     opts.MaxResults,
		Multilingual: opts.Multilingual,
	}

	if entry, err := p.cache.Get(ctx, key); err == nil {
		result, decodeErr := p.decodeSearch(query, entry.Data, opts.MaxResults)
		if decodeErr == nil {
			result.Cached = true
			p.logger.Debug().Str("query", query).Str("tier", string(entry.Tier)).Msg("Search served from cache")
			return result, nil
		}
		// A corrupt entry must not poison the request; drop and refetch.
		p.logger.Warn().Err(decodeErr).Str("query", query).Msg("Dropping undecodable cache entry")
		p.cache.Delete(ctx, key)
	}

	payload, err := p.client.SearchCardsRaw(ctx, query, client.SearchOptions{
		IncludeMultilingual: opts.Multilingual,
	})
	if err != nil {
		return nil, err
	}

	if err := p.cache.Set(ctx, key, payload, cache.ClassSearch); err != nil {
		p.logger.Warn().Err(err).Str("query", query).Msg("Failed to cache search result")
	}

	return p.decodeSearch(query, payload, opts.MaxResults)
}

// HandleAutocomplete returns card name completions for a prefix, cached
// per prefix and locale.
func (p *Pipeline) HandleAutocomplete(ctx context.Context, prefix, locale string) ([]string, error) {
	key := cache.Key{
		Namespace: "autocomplete",
		Query:     prefix,
		Locale:    locale,
	}

	if entry, err := p.cache.Get(ctx, key); err == nil {
		var names []string
		if decodeErr := json.Unmarshal(entry.Data, &names); decodeErr == nil {
			return names, nil
		}
		p.cache.Delete(ctx, key)
	}

	names, err := p.client.Autocomplete(ctx, prefix)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(names)
	if err != nil {
		return nil, fmt.Errorf("encode autocomplete payload: %w", err)
	}
	if err := p.cache.Set(ctx, key, payload, cache.ClassAutocomplete); err != nil {
		p.logger.Warn().Err(err).Str("prefix", prefix).Msg("Failed to cache autocomplete result")
	}

	return names, nil
}

// decodeSearch maps a raw upstream payload to a Result, trimming the card
// list to limit.
func (p *Pipeline) decodeSearch(query string, payload []byte, limit int) (*Result, error) {
	var sr client.SearchResult
	if err := json.Unmarshal(payload, &sr); err != nil {
		return nil, fmt.Errorf("decode search payload: %w", err)
	}

	cards := sr.Data
	if len(cards) > limit {
		cards = cards[:limit]
	}

	return &Result{
		Query:      query,
		Cards:      cards,
		TotalCards: sr.TotalCards,
	}, nil
}

func clampMaxResults(n int) int {
	switch {
	case n <= 0:
		return DefaultMaxResults
	case n > MaxResults:
		return MaxResults
	default:
		return n
	}
}
