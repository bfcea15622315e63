package cache

import (
	"time"
)

// TTLClass names a fixed cache-lifetime category. TTL values are fixed per
// class and applied at write time; entries carry their own expiry so the
// lifetime is independent of the tier holding the entry.
type TTLClass string

const (
	// ClassSearch covers card search results.
	ClassSearch TTLClass = "search-result"

	// ClassCard covers single card detail payloads.
	ClassCard TTLClass = "item-detail"

	// ClassAutocomplete covers card name autocomplete catalogs.
	ClassAutocomplete TTLClass = "autocomplete"

	// ClassDefault covers everything else.
	ClassDefault TTLClass = "default"
)

// TTL values per class, mirroring how volatile each payload is: search
// results churn with new printings, card details are near-static.
const (
	ttlSearch       = 30 * time.Minute
	ttlCard         = 24 * time.Hour
	ttlAutocomplete = 1 * time.Hour
	ttlDefault      = 15 * time.Minute
)

// TTLFor returns the fixed lifetime for a TTL class.
func TTLFor(class TTLClass) time.Duration {
	switch class {
	case ClassSearch:
		return ttlSearch
	case ClassCard:
		return ttlCard
	case ClassAutocomplete:
		return ttlAutocomplete
	default:
		return ttlDefault
	}
}

// Tier names for Entry.Tier and metrics labels.
const (
	TierMemory = "memory"
	TierRedis  = "redis"
)

// Entry is a cached upstream payload.
type Entry struct {
	// Data is the opaque result payload.
	Data []byte `json:"data"`

	// Class is the TTL class the entry was written under.
	Class TTLClass `json:"class"`

	// CachedAt is when the entry was created.
	CachedAt time.Time `json:"cached_at"`

	// Expires is when the entry becomes stale.
	Expires time.Time `json:"expires"`

	// Tier records which tier served the entry. Not serialized; set on read.
	Tier string `json:"-"`
}

// NewEntry creates an entry whose expiry follows the class TTL.
func NewEntry(data []byte, class TTLClass) *Entry {
	now := time.Now()
	return &Entry{
		Data:     data,
		Class:    class,
		CachedAt: now,
		Expires:  now.Add(TTLFor(class)),
	}
}

// IsExpired returns true if the entry has passed its expiry.
func (e *Entry) IsExpired() bool {
	return time.Now().After(e.Expires)
}

// TTL returns the remaining time until expiry, or 0 if already expired.
func (e *Entry) TTL() time.Duration {
	ttl := time.Until(e.Expires)
	if ttl < 0 {
		return 0
	}
	return ttl
}
