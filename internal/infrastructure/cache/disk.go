package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tmabaso/legal-qa-core/internal/core/domain"
	"github.com/tmabaso/legal-qa-core/internal/infrastructure/resilience"
)

// envelope is the on-disk entry format: one JSON file per entry, named
// {category}_{first 32 chars of key}.json.
type envelope struct {
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
	Category  string          `json:"category"`
	Key       string          `json:"key"`
}

type diskTier struct {
	dir  string
	exec *resilience.Executor
}

func newDiskTier(dir string, exec *resilience.Executor) (*diskTier, error) {
	if dir == "" {
		dir = "./data/cache"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	if exec == nil {
		exec = resilience.NewExecutor(resilience.DefaultConfig())
	}
	return &diskTier{dir: dir, exec: exec}, nil
}

func (d *diskTier) path(category domain.CacheCategory, key string) string {
	short := key
	if len(short) > 32 {
		short = short[:32]
	}
	return filepath.Join(d.dir, fmt.Sprintf("%s_%s.json", category, short))
}

// read loads and validates an envelope. A missing file is a plain miss; an
// unreadable or mismatched envelope is reported as corrupt and the file is
// deleted so it cannot keep failing.
func (d *diskTier) read(ctx context.Context, category domain.CacheCategory, key string) (*envelope, error) {
	path := d.path(category, key)

	var raw []byte
	err := d.exec.Execute(ctx, "cache_disk_read", func(context.Context) error {
		var readErr error
		raw, readErr = os.ReadFile(path)
		return readErr
	}, fsClassifier)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.WrapError(domain.ErrCacheMiss, "disk read", err)
		}
		return nil, fmt.Errorf("disk read: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		d.removeFile(path)
		return nil, domain.WrapError(domain.ErrCorruptEntry, "disk decode", err)
	}
	if env.Key != key {
		d.removeFile(path)
		return nil, domain.WrapError(domain.ErrCorruptEntry, "disk decode", fmt.Errorf("key mismatch in %s", filepath.Base(path)))
	}
	return &env, nil
}

func (d *diskTier) write(ctx context.Context, category domain.CacheCategory, env envelope) error {
	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	path := d.path(category, env.Key)
	return d.exec.Execute(ctx, "cache_disk_write", func(context.Context) error {
		return os.WriteFile(path, raw, 0o644)
	}, fsClassifier)
}

func (d *diskTier) remove(category domain.CacheCategory, key string) {
	d.removeFile(d.path(category, key))
}

func (d *diskTier) removeFile(path string) {
	// A file that cannot be removed now is picked up by the next sweep.
	_ = os.Remove(path)
}

// clear removes every entry file, or only the given category's files when
// category is non-empty. Returns the number of files removed.
func (d *diskTier) clear(category domain.CacheCategory) int {
	names, err := d.list()
	if err != nil {
		return 0
	}
	removed := 0
	for _, name := range names {
		if category != "" && !strings.HasPrefix(name, string(category)+"_") {
			continue
		}
		if err := os.Remove(filepath.Join(d.dir, name)); err == nil {
			removed++
		}
	}
	return removed
}

// sweep removes TTL-expired and corrupt entry files. ttlFor maps a category
// name to its configured TTL.
func (d *diskTier) sweep(now time.Time, ttlFor func(domain.CacheCategory) time.Duration) (removed, corrupt int) {
	names, err := d.list()
	if err != nil {
		return 0, 0
	}
	for _, name := range names {
		path := filepath.Join(d.dir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil || env.Key == "" {
			if os.Remove(path) == nil {
				corrupt++
			}
			continue
		}
		ttl := ttlFor(domain.CacheCategory(env.Category))
		if now.Sub(env.CreatedAt) > ttl {
			if os.Remove(path) == nil {
				removed++
			}
		}
	}
	return removed, corrupt
}

func (d *diskTier) list() ([]string, error) {
	dirEntries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".json") {
			continue
		}
		names = append(names, de.Name())
	}
	return names, nil
}

// fsClassifier: a missing file is definitive and healthy; everything else is
// worth one retry and counts against the breaker.
func fsClassifier(err error) resilience.ErrorClassification {
	if os.IsNotExist(err) {
		return resilience.ErrorClassification{Retryable: false, RecordFailure: false}
	}
	return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
}
