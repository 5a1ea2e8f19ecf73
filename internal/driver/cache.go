package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"nesclex/internal/dialect"
	"nesclex/internal/diag"
	"nesclex/internal/source"
	"nesclex/internal/token"
	"nesclex/internal/version"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// CacheKey identifies one lexing result: same bytes, same dialect, same
// system-header marking, same build.
type CacheKey [32]byte

func (k CacheKey) String() string { return hex.EncodeToString(k[:]) }

// DiskCache хранит результаты лексинга по CacheKey на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the msgpack form of a FileResult.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path        string
	Dialect     dialect.Kind
	Reason      string
	Tokens      []token.Token
	Docs        []DocEntry
	Diagnostics []diag.Diagnostic
	Fatal       bool
}

// OpenDiskCache initializes a disk cache rooted at dir.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if dir == "" {
		return nil, errors.New("empty cache directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key CacheKey) string {
	// результаты лежат в подкаталоге "lex"
	return filepath.Join(c.dir, "lex", key.String()+".mp")
}

// cacheKey derives the key for lexing f in dialect d.
func cacheKey(f *source.File, d dialect.Kind, systemHeader bool) CacheKey {
	h := sha256.New()
	h.Write(f.Hash[:])
	fmt.Fprintf(h, "|%s|%s|%t|%d|%s", f.Path, d, systemHeader, diskCacheSchemaVersion, version.Fingerprint())
	var key CacheKey
	copy(key[:], h.Sum(nil))
	return key
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key CacheKey, payload *DiskPayload) (err error) {
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
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	payload.Schema = diskCacheSchemaVersion
	enc := msgpack.NewEncoder(f)
	if err = enc.Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(tmp, p)
}

// Get reads and deserializes a payload from the disk cache. Entries written
// with another schema are reported as misses.
func (c *DiskCache) Get(key CacheKey, out *DiskPayload) (bool, error) {
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
	defer f.Close()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, fmt.Errorf("decode cache entry %s: %w", key, err)
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

func payloadFromResult(r *FileResult) *DiskPayload {
	return &DiskPayload{
		Path:        r.Path,
		Dialect:     r.Dialect,
		Reason:      r.DialectReason,
		Tokens:      r.Tokens,
		Docs:        r.Docs,
		Diagnostics: r.Bag.Items(),
		Fatal:       r.Fatal,
	}
}

func (p *DiskPayload) restore(r *FileResult) {
	r.Dialect = p.Dialect
	r.DialectReason = p.Reason
	r.Tokens = p.Tokens
	r.Docs = p.Docs
	r.Fatal = p.Fatal
	for _, d := range p.Diagnostics {
		r.Bag.Add(d)
	}
	r.Cached = true
}
