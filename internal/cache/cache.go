// Package cache is a content-addressed, on-disk cache of a file's
// compile outcome, letting a directory build skip recompiling
// files whose content hasn't changed since the last run.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

const schemaVersion uint16 = 1

// Key is a content hash identifying one source file's bytes.
type Key [sha256.Size]byte

// KeyOf hashes content into a Key.
func KeyOf(content []byte) Key {
	return Key(sha256.Sum256(content))
}

// Payload is what gets cached for a successfully type-checked file: enough
// to report "no diagnostics" on a cache hit without re-running the
// pipeline. The HIR tree itself is not cached — only its outcome.
type Payload struct {
	Schema    uint16
	Succeeded bool
	// TypeStrings holds the rendered type of every function's return
	// value, in declaration order, for a warm-cache summary. The directory
	// build (driver.BuildDir) does not fill it in.
	TypeStrings []string
}

// Disk is a thread-safe, msgpack-backed on-disk cache keyed by Key.
type Disk struct {
	mu  sync.RWMutex
	dir string
}

// Open initializes a Disk cache rooted at dir, creating it if necessary.
func Open(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Disk{dir: dir}, nil
}

func (c *Disk) pathFor(key Key) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// Put serializes and atomically writes a payload.
func (c *Disk) Put(key Key, payload Payload) error {
	if c == nil {
		return nil
	}
	payload.Schema = schemaVersion
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

// Get reads and deserializes a payload, reporting false if absent or the
// schema has since changed.
func (c *Disk) Get(key Key) (Payload, bool, error) {
	if c == nil {
		return Payload{}, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Payload{}, false, nil
		}
		return Payload{}, false, err
	}
	defer f.Close()

	var payload Payload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return Payload{}, false, err
	}
	if payload.Schema != schemaVersion {
		return Payload{}, false, nil
	}
	return payload, true, nil
}
