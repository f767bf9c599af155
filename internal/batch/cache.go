package batch

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Increment when DiskPayload changes shape.
const diskCacheSchemaVersion uint16 = 1

// Digest identifies a cached batch file: SHA-256 over its content and the
// output base.
type Digest [32]byte

// DiskCache stores rendered batch results on disk keyed by Digest.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is one cached file evaluation.
type DiskPayload struct {
	Schema uint16
	Lines  []LineResult
}

// OpenDiskCache opens the cache under the user cache directory
// ($XDG_CACHE_HOME/<app> on Linux).
func OpenDiskCache(app string) (*DiskCache, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("locate cache directory: %w", err)
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens the cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "batch", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and atomically writes a payload.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp) //nolint:errcheck // already renamed on success

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close() //nolint:errcheck,gosec
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

// Get reads a payload. It reports false when the key is absent.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close() //nolint:errcheck

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll removes every cached entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "batch"))
}
