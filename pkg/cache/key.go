package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// maxRawQueryLen is the longest query segment embedded verbatim in a key.
// Longer queries are hashed to keep Redis keys bounded.
const maxRawQueryLen = 100

// Key identifies a cached upstream result. Two semantically identical
// requests must produce identical keys, so every field that changes the
// upstream response shape participates in String().
type Key struct {
	// Namespace groups keys by operation (e.g. "search", "autocomplete").
	Namespace string

	// Query is the built Scryfall query string (or prefix for autocomplete).
	Query string

	// Locale is the request locale code.
	Locale string

	// PageSize is the requested result page size.
	PageSize int

	// Multilingual requests non-English printings alongside English ones.
	Multilingual bool
}

// String generates a deterministic cache key string.
// Format: scryfall:<namespace>:<locale>:<page_size>:<ml>:<query>
//
// Example:
//
//	scryfall:search:ja:20:0:c:w t:creature
func (k Key) String() string {
	query := strings.TrimSpace(k.Query)
	if len(query) > maxRawQueryLen {
		sum := sha256.Sum256([]byte(query))
		query = hex.EncodeToString(sum[:])
	}

	ml := 0
	if k.Multilingual {
		ml = 1
	}

	return fmt.Sprintf("scryfall:%s:%s:%d:%d:%s", k.Namespace, k.Locale, k.PageSize, ml, query)
}
