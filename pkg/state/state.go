package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
)

var bucketInstances = []byte("instances")

// InstanceRecord is the durable trace of one spawned child. It is written on
// spawn and removed on reap, so that after an agent restart the reconciler
// can decide whether a recorded pid still belongs to its instance and adopt
// it instead of double-starting.
type InstanceRecord struct {
	InstanceID string `json:"instanceId"`
	PID        int    `json:"pid"`
	StartCmd   string `json:"startCmd,omitempty"`
	StartedAt  int64  `json:"startedAt"`
}

// Store is a bbolt-backed record of the agent's spawned instances
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the agent database under dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	db, err := bolt.Open(filepath.Join(dir, "agent.db"), 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketInstances)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores or replaces the record for one instance
func (s *Store) Put(rec InstanceRecord) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketInstances).Put([]byte(rec.InstanceID), data)
	})
}

// Delete removes the record for one instance. Deleting an absent record is
// not an error.
func (s *Store) Delete(instanceID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketInstances).Delete([]byte(instanceID))
	})
}

// List returns every stored record
func (s *Store) List() ([]InstanceRecord, error) {
	var records []InstanceRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketInstances).ForEach(func(k, v []byte) error {
			var rec InstanceRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("decode record %s: %w", k, err)
			}
			records = append(records, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
