package storage

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("store")

// Bolt persists slots in a single-file bbolt database, one bucket for
// every slot key.
type Bolt struct {
	db *bolt.DB
}

func NewBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to open bolt database at %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: failed to create bucket: %w", err)
	}

	log.Info().Str("path", path).Msg("Opened bolt storage")
	return &Bolt{db: db}, nil
}

func (b *Bolt) Get(key string) ([]byte, bool, error) {
	var value []byte
	found := false

	err := b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketName).Get([]byte(key))
		if raw != nil {
			found = true
			value = make([]byte, len(raw))
			copy(value, raw)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("storage: failed to read slot %q: %w", key, err)
	}

	return value, found, nil
}

func (b *Bolt) Put(key string, value []byte) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("storage: failed to write slot %q: %w", key, err)
	}
	return nil
}

func (b *Bolt) Delete(key string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("storage: failed to delete slot %q: %w", key, err)
	}
	return nil
}

func (b *Bolt) Close() error {
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("storage: failed to close bolt database: %w", err)
	}
	log.Info().Msg("Bolt storage closed")
	return nil
}
