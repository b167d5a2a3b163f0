package domain

import (
	"encoding/json"
	"time"
)

type CacheCategory string

const (
	CategoryLegalQuery        CacheCategory = "legal_query"
	CategoryVectorSearch      CacheCategory = "vector_search"
	CategoryDocumentContent   CacheCategory = "document_content"
	CategoryQualityAssessment CacheCategory = "quality_assessment"
	CategoryUserSession       CacheCategory = "user_session"
)

// DefaultTTLByCategory is the fixed per-category TTL table. Values are
// configuration, not computed.
func DefaultTTLByCategory() map[CacheCategory]time.Duration {
	return map[CacheCategory]time.Duration{
		CategoryLegalQuery:        3600 * time.Second,
		CategoryVectorSearch:      1800 * time.Second,
		CategoryDocumentContent:   7200 * time.Second,
		CategoryQualityAssessment: 900 * time.Second,
		CategoryUserSession:       3600 * time.Second,
	}
}

// DurableCategories are written through to the disk tier and survive process
// restarts.
func DurableCategories() map[CacheCategory]bool {
	return map[CacheCategory]bool{
		CategoryLegalQuery:      true,
		CategoryDocumentContent: true,
	}
}

type CacheEntry struct {
	Key            string          `json:"key"`
	Category       CacheCategory   `json:"category"`
	Payload        json.RawMessage `json:"payload"`
	CreatedAt      time.Time       `json:"created_at"`
	LastAccessedAt time.Time       `json:"last_accessed_at"`
	AccessCount    int64           `json:"access_count"`
	TTL            time.Duration   `json:"ttl_seconds"`
	SizeBytes      int64           `json:"size_bytes"`
}

// ExpiredAt reports whether the entry's absolute TTL has elapsed. Expiry is
// measured from CreatedAt, not from last access, and the boundary instant
// itself is still live.
func (e *CacheEntry) ExpiredAt(now time.Time) bool {
	return now.Sub(e.CreatedAt) > e.TTL
}

type CacheStats struct {
	Size         int     `json:"size"`
	UsageBytes   int64   `json:"usage_bytes"`
	Hits         int64   `json:"hits"`
	Misses       int64   `json:"misses"`
	Evictions    int64   `json:"evictions"`
	TotalQueries int64   `json:"total_queries"`
	HitRate      float64 `json:"hit_rate"`
}

type ClearResult struct {
	MemoryRemoved int `json:"memory_removed"`
	DiskRemoved   int `json:"disk_removed"`
}

type OptimizeResult struct {
	MemoryRemoved  int `json:"memory_removed"`
	DiskRemoved    int `json:"disk_removed"`
	CorruptRemoved int `json:"corrupt_removed"`
}
