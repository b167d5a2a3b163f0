package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tmabaso/legal-qa-core/internal/core/domain"
	"github.com/tmabaso/legal-qa-core/internal/infrastructure/resilience"
	"github.com/tmabaso/legal-qa-core/internal/observability/metrics"
)

const (
	defaultMemoryBudget = 64 << 20 // 64 MiB
	defaultWriteQueue   = 256
)

type Options struct {
	Dir               string
	MemoryBudgetBytes int64
	TTLByCategory     map[domain.CacheCategory]time.Duration
	Durable           map[domain.CacheCategory]bool
	Executor          *resilience.Executor
	Metrics           *metrics.QAMetrics
	Service           string

	// Now is the clock used for TTL decisions. Tests inject a fake.
	Now func() time.Time

	// DiskWriteQueueSize bounds the async disk-write backlog.
	DiskWriteQueueSize int
}

// Manager is the two-tier query cache: a size-bounded in-memory tier with
// LRU eviction in front of an unbounded disk tier for durable categories.
// All memory-tier state is guarded by a single mutex; disk writes happen on
// a background writer goroutine off the request path.
type Manager struct {
	budget  int64
	ttl     map[domain.CacheCategory]time.Duration
	durable map[domain.CacheCategory]bool
	metrics *metrics.QAMetrics
	service string
	now     func() time.Time

	disk *diskTier

	mu           sync.Mutex
	entries      map[string]*domain.CacheEntry
	usage        int64
	hits         int64
	misses       int64
	evictions    int64
	totalQueries int64

	writes    chan diskWrite
	writerWG  sync.WaitGroup
	closeOnce sync.Once
}

type diskWrite struct {
	category domain.CacheCategory
	env      envelope
}

func NewManager(options Options) (*Manager, error) {
	disk, err := newDiskTier(options.Dir, options.Executor)
	if err != nil {
		return nil, fmt.Errorf("init disk tier: %w", err)
	}

	budget := options.MemoryBudgetBytes
	if budget <= 0 {
		budget = defaultMemoryBudget
	}
	ttl := options.TTLByCategory
	if ttl == nil {
		ttl = domain.DefaultTTLByCategory()
	}
	durable := options.Durable
	if durable == nil {
		durable = domain.DurableCategories()
	}
	now := options.Now
	if now == nil {
		now = time.Now
	}
	queueSize := options.DiskWriteQueueSize
	if queueSize <= 0 {
		queueSize = defaultWriteQueue
	}
	service := options.Service
	if service == "" {
		service = "legal-qa"
	}

	m := &Manager{
		budget:  budget,
		ttl:     ttl,
		durable: durable,
		metrics: options.Metrics,
		service: service,
		now:     now,
		disk:    disk,
		entries: make(map[string]*domain.CacheEntry),
		writes:  make(chan diskWrite, queueSize),
	}

	m.writerWG.Add(1)
	go m.writerLoop()

	return m, nil
}

// Close drains pending disk writes and stops the writer.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		close(m.writes)
		m.writerWG.Wait()
	})
}

func (m *Manager) Get(ctx context.Context, category domain.CacheCategory, keyParts ...string) (json.RawMessage, bool) {
	key := buildKey(category, keyParts...)
	now := m.now()

	m.mu.Lock()
	m.totalQueries++
	if entry, ok := m.entries[key]; ok {
		if !entry.ExpiredAt(now) {
			entry.LastAccessedAt = now
			entry.AccessCount++
			m.hits++
			payload := entry.Payload
			m.mu.Unlock()
			m.metrics.CacheHit(m.service, string(category), "memory")
			return payload, true
		}
		// Lazy expiry: the entry stayed resident until this read touched it.
		m.dropLocked(entry)
	}
	m.mu.Unlock()

	if m.durable[category] {
		if payload, ok := m.warmHit(ctx, category, key, now); ok {
			return payload, true
		}
	}

	m.mu.Lock()
	m.misses++
	m.mu.Unlock()
	m.metrics.CacheMiss(m.service, string(category))
	return nil, false
}

// warmHit serves a durable-category read from the disk tier and promotes the
// entry back into memory.
func (m *Manager) warmHit(ctx context.Context, category domain.CacheCategory, key string, now time.Time) (json.RawMessage, bool) {
	env, err := m.disk.read(ctx, category, key)
	if err != nil {
		if domain.IsKind(err, domain.ErrCorruptEntry) {
			slog.Warn("cache_disk_entry_corrupt", "category", category, "error", err)
		}
		return nil, false
	}

	ttl := m.ttlFor(category)
	if now.Sub(env.CreatedAt) > ttl {
		m.disk.remove(category, key)
		return nil, false
	}

	entry := &domain.CacheEntry{
		Key:            key,
		Category:       category,
		Payload:        env.Data,
		CreatedAt:      env.CreatedAt,
		LastAccessedAt: now,
		AccessCount:    1,
		TTL:            ttl,
		SizeBytes:      int64(len(env.Data)),
	}

	m.mu.Lock()
	m.hits++
	if entry.SizeBytes <= m.budget {
		m.insertLocked(entry)
	}
	usage, count := m.usage, len(m.entries)
	m.mu.Unlock()

	m.metrics.CacheHit(m.service, string(category), "disk")
	m.metrics.SetCacheUsage(usage, count)
	return env.Data, true
}

func (m *Manager) Set(ctx context.Context, category domain.CacheCategory, value any, keyParts ...string) bool {
	payload, err := json.Marshal(value)
	if err != nil {
		slog.Error("cache_set_marshal_failed", "category", category, "error", err)
		return false
	}

	size := int64(len(payload))
	if size > m.budget {
		slog.Warn("cache_set_rejected_oversized", "category", category, "size_bytes", size, "budget_bytes", m.budget)
		return false
	}

	key := buildKey(category, keyParts...)
	now := m.now()
	entry := &domain.CacheEntry{
		Key:            key,
		Category:       category,
		Payload:        payload,
		CreatedAt:      now,
		LastAccessedAt: now,
		TTL:            m.ttlFor(category),
		SizeBytes:      size,
	}

	m.mu.Lock()
	m.insertLocked(entry)
	usage, count := m.usage, len(m.entries)
	m.mu.Unlock()
	m.metrics.SetCacheUsage(usage, count)

	if m.durable[category] {
		m.enqueueDiskWrite(category, envelope{
			Data:      payload,
			CreatedAt: now,
			Category:  string(category),
			Key:       key,
		})
	}
	return true
}

func (m *Manager) Clear(_ context.Context, category domain.CacheCategory) domain.ClearResult {
	m.mu.Lock()
	memRemoved := 0
	for key, entry := range m.entries {
		if category != "" && entry.Category != category {
			continue
		}
		m.usage -= entry.SizeBytes
		delete(m.entries, key)
		memRemoved++
	}
	usage, count := m.usage, len(m.entries)
	m.mu.Unlock()
	m.metrics.SetCacheUsage(usage, count)

	diskRemoved := m.disk.clear(category)
	return domain.ClearResult{MemoryRemoved: memRemoved, DiskRemoved: diskRemoved}
}

func (m *Manager) Stats() domain.CacheStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := domain.CacheStats{
		Size:         len(m.entries),
		UsageBytes:   m.usage,
		Hits:         m.hits,
		Misses:       m.misses,
		Evictions:    m.evictions,
		TotalQueries: m.totalQueries,
	}
	if stats.TotalQueries > 0 {
		stats.HitRate = float64(stats.Hits) / float64(stats.TotalQueries)
	}
	return stats
}

// Optimize is the eager maintenance pass: it removes every TTL-expired
// memory entry and every expired or corrupt disk file. Reads only ever expire
// entries lazily; this sweep is what keeps cold expired data from lingering.
func (m *Manager) Optimize(_ context.Context) domain.OptimizeResult {
	sweepID := uuid.NewString()
	started := time.Now()
	now := m.now()

	m.mu.Lock()
	memRemoved := 0
	for _, entry := range m.entries {
		if entry.ExpiredAt(now) {
			m.dropLocked(entry)
			memRemoved++
		}
	}
	usage, count := m.usage, len(m.entries)
	m.mu.Unlock()
	m.metrics.SetCacheUsage(usage, count)

	diskRemoved, corrupt := m.disk.sweep(now, m.ttlFor)

	duration := time.Since(started)
	m.metrics.SweepCompleted(m.service, duration, memRemoved, diskRemoved+corrupt)
	slog.Info("cache_sweep_complete",
		"sweep_id", sweepID,
		"memory_removed", memRemoved,
		"disk_removed", diskRemoved,
		"corrupt_removed", corrupt,
		"duration_ms", float64(duration.Microseconds())/1000.0,
	)

	return domain.OptimizeResult{
		MemoryRemoved:  memRemoved,
		DiskRemoved:    diskRemoved,
		CorruptRemoved: corrupt,
	}
}

func (m *Manager) ttlFor(category domain.CacheCategory) time.Duration {
	if ttl, ok := m.ttl[category]; ok {
		return ttl
	}
	return domain.DefaultTTLByCategory()[domain.CategoryLegalQuery]
}

// insertLocked places the entry in the memory tier, evicting the least
// recently accessed entries until the budget holds. Ties break on key order
// so eviction is reproducible.
func (m *Manager) insertLocked(entry *domain.CacheEntry) {
	if old, ok := m.entries[entry.Key]; ok {
		m.dropLocked(old)
	}
	for m.usage+entry.SizeBytes > m.budget {
		victim := m.lruVictimLocked()
		if victim == nil {
			break
		}
		m.dropLocked(victim)
		m.evictions++
		m.metrics.CacheEviction()
	}
	m.entries[entry.Key] = entry
	m.usage += entry.SizeBytes
}

func (m *Manager) lruVictimLocked() *domain.CacheEntry {
	var victim *domain.CacheEntry
	for _, entry := range m.entries {
		if victim == nil {
			victim = entry
			continue
		}
		if entry.LastAccessedAt.Before(victim.LastAccessedAt) {
			victim = entry
			continue
		}
		if entry.LastAccessedAt.Equal(victim.LastAccessedAt) && entry.Key < victim.Key {
			victim = entry
		}
	}
	return victim
}

func (m *Manager) dropLocked(entry *domain.CacheEntry) {
	if _, ok := m.entries[entry.Key]; !ok {
		return
	}
	m.usage -= entry.SizeBytes
	delete(m.entries, entry.Key)
}

func (m *Manager) enqueueDiskWrite(category domain.CacheCategory, env envelope) {
	select {
	case m.writes <- diskWrite{category: category, env: env}:
	default:
		slog.Warn("cache_disk_write_queue_full", "category", category)
		m.metrics.CacheDiskWriteFailure()
	}
}

func (m *Manager) writerLoop() {
	defer m.writerWG.Done()
	for w := range m.writes {
		if err := m.disk.write(context.Background(), w.category, w.env); err != nil {
			slog.Error("cache_disk_write_failed", "category", w.category, "error", err)
			m.metrics.CacheDiskWriteFailure()
		}
	}
}
