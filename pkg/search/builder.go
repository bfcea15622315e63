package search

import (
	"fmt"
	"strings"
)

// BuiltQuery is the assembled grammar string plus the clause list it was
// built from, kept for explanation and debugging.
type BuiltQuery struct {
	// Query is the final grammar string sent upstream and used for the
	// cache key.
	Query string

	// Clauses are the individual filter clauses in emission order.
	Clauses []string

	// Parsed is the source the query was built from.
	Parsed *ParsedQuery
}

// Builder assembles a ParsedQuery into grammar text. The clause order is
// fixed (colors, types, comparisons, names, keywords, leftovers) so an
// identical ParsedQuery always yields an identical string. Cache keys
// depend on this.
type Builder struct{}

// NewBuilder returns a query builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build assembles parsed into a grammar string. It never fails; an empty
// ParsedQuery yields an empty query.
func (b *Builder) Build(parsed *ParsedQuery) BuiltQuery {
	var clauses []string

	if len(parsed.Colors) > 0 {
		clauses = append(clauses, "c:"+strings.Join(parsed.Colors, ""))
	}

	for _, typ := range parsed.Types {
		clauses = append(clauses, "t:"+typ)
	}

	for _, cmp := range parsed.Comparisons {
		clauses = append(clauses, cmp.Field+cmp.Op+cmp.Value)
	}

	for _, name := range parsed.Names {
		clauses = append(clauses, fmt.Sprintf("%q", name))
	}

	clauses = append(clauses, parsed.Keywords...)
	clauses = append(clauses, parsed.Leftovers...)

	return BuiltQuery{
		Query:   strings.Join(clauses, " "),
		Clauses: clauses,
		Parsed:  parsed,
	}
}
