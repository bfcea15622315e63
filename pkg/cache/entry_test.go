package cache

import (
	"testing"
	"time"
)

func TestTTLFor(t *testing.T) {
	tests := []struct {
		class TTLClass
		want  time.Duration
	}{
		{ClassSearch, 30 * time.Minute},
		{ClassCard, 24 * time.Hour},
		{ClassAutocomplete, 1 * time.Hour},
		{ClassDefault, 15 * time.Minute},
		{TTLClass("unknown"), 15 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			if got := TTLFor(tt.class); got != tt.want {
				t.Errorf("TTLFor(%s) = %v, want %v", tt.class, got, tt.want)
			}
		})
	}
}

func TestNewEntry(t *testing.T) {
	data := []byte(`{"total_cards": 1}`)
	entry := NewEntry(data, ClassSearch)

	if string(entry.Data) != string(data) {
		t.Errorf("Data = %s, want %s", entry.Data, data)
	}
	if entry.Class != ClassSearch {
		t.Errorf("Class = %s, want %s", entry.Class, ClassSearch)
	}
	if entry.IsExpired() {
		t.Error("fresh entry should not be expired")
	}

	wantExpiry := entry.CachedAt.Add(30 * time.Minute)
	if !entry.Expires.Equal(wantExpiry) {
		t.Errorf("Expires = %v, want %v", entry.Expires, wantExpiry)
	}
}

func TestEntry_IsExpired(t *testing.T) {
	entry := &Entry{
		Data:    []byte("x"),
		Expires: time.Now().Add(-1 * time.Second),
	}

	if !entry.IsExpired() {
		t.Error("entry past its expiry should report expired")
	}
	if entry.TTL() != 0 {
		t.Errorf("TTL of expired entry = %v, want 0", entry.TTL())
	}
}

func TestEntry_TTL(t *testing.T) {
	entry := &Entry{
		Data:    []byte("x"),
		Expires: time.Now().Add(5 * time.Minute),
	}

	ttl := entry.TTL()
	if ttl <= 4*time.Minute || ttl > 5*time.Minute {
		t.Errorf("TTL = %v, want close to 5m", ttl)
	}
}
