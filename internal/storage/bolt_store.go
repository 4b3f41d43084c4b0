package storage

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	feedBucketPrefix = "feed:"
	expiryValueBytes = 8
)

// boltStore keeps one bucket per feed; values are big-endian unix expiry times.
type boltStore struct {
	db              *bolt.DB
	now             func() time.Time
	cleanupMu       sync.Mutex
	lastCleanup     atomic.Int64
	ttl             time.Duration
	cleanupInterval time.Duration
}

func openBolt(path string, opts Options, now func() time.Time) (*boltStore, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if now == nil {
		now = time.Now
	}

	store := &boltStore{
		db:              db,
		now:             now,
		ttl:             opts.TTL,
		cleanupInterval: opts.CleanupInterval,
	}
	store.lastCleanup.Store(now().Unix())
	return store, nil
}

// Close closes the BoltDB store.
func (b *boltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// Seen reports whether key was marked for feedID and has not expired.
func (b *boltStore) Seen(feedID, key string) (bool, error) {
	if b == nil || b.db == nil {
		return false, nil
	}

	now := b.now()
	if err := b.maybeCleanupExpired(now); err != nil {
		return false, err
	}

	var seen bool
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(feedBucket(feedID))
		if bucket == nil {
			return nil
		}
		expiry, ok := decodeExpiry(bucket.Get([]byte(key)))
		seen = ok && expiry.After(now)
		return nil
	})
	return seen, err
}

// Mark records key for feedID until the configured TTL elapses.
func (b *boltStore) Mark(feedID, key string) error {
	if b == nil || b.db == nil {
		return nil
	}

	now := b.now()
	if err := b.maybeCleanupExpired(now); err != nil {
		return err
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(feedBucket(feedID))
		if err != nil {
			return fmt.Errorf("create feed bucket: %w", err)
		}
		buf := make([]byte, expiryValueBytes)
		binary.BigEndian.PutUint64(buf, uint64(now.Add(b.ttl).Unix()))
		return bucket.Put([]byte(key), buf)
	})
}

// maybeCleanupExpired drops expired entries from every feed bucket at most
// once per cleanup interval.
func (b *boltStore) maybeCleanupExpired(now time.Time) error {
	last := time.Unix(b.lastCleanup.Load(), 0)
	if now.Sub(last) < b.cleanupInterval {
		return nil
	}

	b.cleanupMu.Lock()
	defer b.cleanupMu.Unlock()

	last = time.Unix(b.lastCleanup.Load(), 0)
	if now.Sub(last) < b.cleanupInterval {
		return nil
	}

	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.ForEach(func(_ []byte, bucket *bolt.Bucket) error {
			var expired [][]byte
			err := bucket.ForEach(func(k, v []byte) error {
				if expiry, ok := decodeExpiry(v); !ok || !expiry.After(now) {
					expired = append(expired, append([]byte(nil), k...))
				}
				return nil
			})
			if err != nil {
				return err
			}
			for _, k := range expired {
				if err := bucket.Delete(k); err != nil {
					return err
				}
			}
			return nil
		})
	})
	if err == nil {
		b.lastCleanup.Store(now.Unix())
	}
	return err
}

func feedBucket(feedID string) []byte {
	return []byte(feedBucketPrefix + feedID)
}

func decodeExpiry(value []byte) (time.Time, bool) {
	if len(value) != expiryValueBytes {
		return time.Time{}, false
	}
	unix := int64(binary.BigEndian.Uint64(value))
	if unix <= 0 {
		return time.Time{}, false
	}
	return time.Unix(unix, 0), true
}
