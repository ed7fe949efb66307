package scan

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/xpenseai/expense-tracker/internal/entity"
)

const sessionBucket = "scan_sessions"

// Snapshot is everything needed to restore a review screen: the drafts, the
// receipt's own arithmetic, and where the preview image lives. Persisted so
// an interrupted review survives a restart.
type Snapshot struct {
	ID          string                `json:"id"`
	Items       []entity.DraftItem    `json:"items"`
	Summary     entity.ReceiptSummary `json:"summary"`
	PreviewPath string                `json:"preview_path,omitempty"`
	ReceiptID   string                `json:"receipt_id,omitempty"`
	SavedAt     time.Time             `json:"saved_at"`
}

// SessionStore persists review snapshots between requests.
type SessionStore interface {
	Save(snap Snapshot) error
	Load(id string) (Snapshot, bool, error)
	Delete(id string) error
	Close() error
}

// BoltStore implements SessionStore using bbolt. Save replaces any existing
// snapshot under the same id; Delete of a missing id is a no-op.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(sessionBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating session bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (b *BoltStore) Save(snap Snapshot) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucket))
		data, err := json.Marshal(snap)
		if err != nil {
			return fmt.Errorf("marshaling snapshot: %w", err)
		}
		return bucket.Put([]byte(snap.ID), data)
	})
}

func (b *BoltStore) Load(id string) (Snapshot, bool, error) {
	var snap Snapshot
	found := false
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucket))
		data := bucket.Get([]byte(id))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &snap)
	})
	if err != nil {
		return Snapshot{}, false, err
	}
	return snap, found, nil
}

func (b *BoltStore) Delete(id string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Delete([]byte(id))
	})
}

func (b *BoltStore) Close() error {
	return b.db.Close()
}
