package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/coachos/pitchpilot/pkg/metrics"
)

const diskFileMode = 0o644

// DiskCache stores payloads as files under a data directory, one file per
// key. Matches the layout older revisions of the engine wrote by hand.
type DiskCache struct {
	dir string
}

// NewDisk creates a disk cache rooted at dir, creating it if needed.
func NewDisk(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Get reads the payload for key from disk. A missing file is a miss, not an
// error.
func (c *DiskCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(c.path(key))
	if errors.Is(err, os.ErrNotExist) {
		metrics.RecordCacheMiss("disk")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cache file: %w", err)
	}
	metrics.RecordCacheHit("disk")
	return data, true, nil
}

// Set writes the payload for key to disk.
func (c *DiskCache) Set(_ context.Context, key string, data []byte) error {
	if err := os.WriteFile(c.path(key), data, diskFileMode); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	return nil
}

func (c *DiskCache) path(key string) string {
	// Keys look like "events/3869685"; flatten to a single file name.
	name := strings.NewReplacer("/", "_", ":", "_").Replace(key)
	return filepath.Join(c.dir, name+".json")
}
