// Package store is the local catalog cache persisted in a bbolt file.
package store

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/anidex-cli/anidex/anime"
	"github.com/anidex-cli/anidex/constant"
	"github.com/anidex-cli/anidex/log"
	"github.com/samber/mo"
	bolt "go.etcd.io/bbolt"
)

var (
	bucketAnime = []byte("anime")
	bucketMeta  = []byte("meta")

	keySchemaVersion = []byte("schema_version")
)

var (
	// ErrNotFound is returned when a write targets a missing record.
	ErrNotFound = errors.New("anime not found in cache")
	// ErrSchemaTooNew is returned when the file was written by a newer anidex.
	ErrSchemaTooNew = errors.New("cache schema is newer than supported")
)

// Record is a cached anime together with the time it was last written.
type Record struct {
	anime.Anime
	LastUpdated time.Time `json:"last_updated"`
}

// MergeFunc combines an incoming item with the record already cached under its id.
type MergeFunc func(existing mo.Option[anime.Anime], incoming anime.Anime) anime.Anime

// PreserveFavorite keeps the cached favorite flag when a fresh copy is written.
func PreserveFavorite(existing mo.Option[anime.Anime], incoming anime.Anime) anime.Anime {
	if cached, ok := existing.Get(); ok {
		incoming.Favorite = cached.Favorite
	}
	return incoming
}

// Store is safe for concurrent use. Writers are serialized by bbolt.
type Store struct {
	db       *bolt.DB
	now      func() time.Time
	registry *registry
}

// Option customizes a Store.
type Option func(*Store)

// WithClock replaces time.Now for LastUpdated stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open opens or creates the cache file at path.
func Open(path string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketAnime); err != nil {
			return err
		}

		meta, err := tx.CreateBucketIfNotExists(bucketMeta)
		if err != nil {
			return err
		}

		raw := meta.Get(keySchemaVersion)
		if raw == nil {
			return meta.Put(keySchemaVersion, []byte(strconv.Itoa(constant.SchemaVersion)))
		}

		version, err := strconv.Atoi(string(raw))
		if err != nil {
			return fmt.Errorf("read schema version: %w", err)
		}
		if version > constant.SchemaVersion {
			return fmt.Errorf("%w: %d > %d", ErrSchemaTooNew, version, constant.SchemaVersion)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db, now: time.Now, registry: newRegistry()}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Close closes every subscription and the underlying file.
func (s *Store) Close() error {
	s.registry.close()
	return s.db.Close()
}

func itob(id int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}

func decode(data []byte) (Record, error) {
	var r Record
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&r); err != nil {
		return Record{}, err
	}
	if r.Genres == nil {
		r.Genres = []string{}
	}
	return r, nil
}

func getRecord(b *bolt.Bucket, id int) (mo.Option[Record], error) {
	data := b.Get(itob(id))
	if data == nil {
		return mo.None[Record](), nil
	}

	r, err := decode(data)
	if err != nil {
		return mo.None[Record](), fmt.Errorf("decode anime %d: %w", id, err)
	}
	return mo.Some(r), nil
}

func (s *Store) putRecord(b *bolt.Bucket, a anime.Anime) error {
	data, err := json.Marshal(Record{Anime: a.Clone(), LastUpdated: s.now()})
	if err != nil {
		return err
	}
	return b.Put(itob(a.ID), data)
}

// Record returns the cached record with its timestamp.
func (s *Store) Record(id int) (mo.Option[Record], error) {
	var rec mo.Option[Record]
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		rec, err = getRecord(tx.Bucket(bucketAnime), id)
		return err
	})
	return rec, err
}

// Get returns a copy of the cached anime.
func (s *Store) Get(id int) (mo.Option[anime.Anime], error) {
	rec, err := s.Record(id)
	if err != nil {
		return mo.None[anime.Anime](), err
	}

	if r, ok := rec.Get(); ok {
		return mo.Some(r.Anime), nil
	}
	return mo.None[anime.Anime](), nil
}

// Put inserts or replaces one record.
func (s *Store) Put(a anime.Anime) error {
	return s.update(func(b *bolt.Bucket) error {
		return s.putRecord(b, a)
	})
}

// PutAll inserts or replaces every item in one transaction. Later duplicates win.
func (s *Store) PutAll(items []anime.Anime) error {
	return s.update(func(b *bolt.Bucket) error {
		for _, a := range items {
			if err := s.putRecord(b, a); err != nil {
				return err
			}
		}
		return nil
	})
}

// Merge writes every item after combining it with the cached record through fn, in one transaction.
func (s *Store) Merge(items []anime.Anime, fn MergeFunc) error {
	return s.update(func(b *bolt.Bucket) error {
		for _, a := range items {
			rec, err := getRecord(b, a.ID)
			if err != nil {
				return err
			}

			existing := mo.None[anime.Anime]()
			if r, ok := rec.Get(); ok {
				existing = mo.Some(r.Anime)
			}

			if err = s.putRecord(b, fn(existing, a)); err != nil {
				return err
			}
		}
		return nil
	})
}

// SetFavorite updates the flag of an existing record. LastUpdated is left alone.
func (s *Store) SetFavorite(id int, favorite bool) error {
	return s.update(func(b *bolt.Bucket) error {
		rec, err := getRecord(b, id)
		if err != nil {
			return err
		}

		r, ok := rec.Get()
		if !ok {
			return ErrNotFound
		}

		r.Favorite = favorite
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		return b.Put(itob(id), data)
	})
}

// Clear removes every cached record.
func (s *Store) Clear() error {
	return s.update(func(b *bolt.Bucket) error {
		var keys [][]byte
		if err := b.ForEach(func(k, _ []byte) error {
			keys = append(keys, slices.Clone(k))
			return nil
		}); err != nil {
			return err
		}

		for _, k := range keys {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

// All returns every cached anime in display order.
func (s *Store) All() ([]anime.Anime, error) {
	return s.load(ViewAll)
}

// Favorites returns the favorite subset in display order.
func (s *Store) Favorites() ([]anime.Anime, error) {
	return s.load(ViewFavorites)
}

// Count returns the number of cached records.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(bucketAnime).Stats().KeyN
		return nil
	})
	return n, err
}

func (s *Store) load(view View) ([]anime.Anime, error) {
	items := make([]anime.Anime, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketAnime).ForEach(func(k, v []byte) error {
			r, err := decode(v)
			if err != nil {
				return fmt.Errorf("decode anime %d: %w", binary.BigEndian.Uint64(k), err)
			}
			if view == ViewFavorites && !r.Favorite {
				return nil
			}
			items = append(items, r.Anime)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sortByScore(items)
	return items, nil
}

// sortByScore orders by descending score, unknown scores last, ties by ascending id.
func sortByScore(items []anime.Anime) {
	slices.SortFunc(items, func(a, b anime.Anime) int {
		switch {
		case a.Score == nil && b.Score == nil:
		case a.Score == nil:
			return 1
		case b.Score == nil:
			return -1
		default:
			if c := cmp.Compare(*b.Score, *a.Score); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// update runs fn in a write transaction and publishes fresh snapshots once it commits.
func (s *Store) update(fn func(b *bolt.Bucket) error) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return fn(tx.Bucket(bucketAnime))
	})
	if err != nil {
		return err
	}

	s.publish()
	return nil
}

func (s *Store) publish() {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	for _, view := range []View{ViewAll, ViewFavorites} {
		if !s.registry.watched(view) {
			continue
		}

		items, err := s.load(view)
		if err != nil {
			log.Errorf("store: snapshot %s: %s", view, err)
			continue
		}
		s.registry.deliver(view, items)
	}
}
