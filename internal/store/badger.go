package store

import (
	"github.com/dgraph-io/badger/v4"
)

// keyPrefix namespaces session keys in the database.
const keyPrefix = "session/"

// BadgerStore persists sessions in BadgerDB, one key per session.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens (or creates) a store in dir. An empty dir keeps the
// database in memory, which is useful in tests.
func NewBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{db: db}, nil
}

func sessionKey(id string) []byte {
	return []byte(keyPrefix + id)
}

// Create stores a record under a new id.
func (s *BadgerStore) Create(record string) (string, error) {
	id := newID()
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(sessionKey(id), []byte(record))
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Load returns the record of a session.
func (s *BadgerStore) Load(id string) (string, error) {
	if err := checkID(id); err != nil {
		return "", err
	}

	var record string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(id))
		if err == badger.ErrKeyNotFound {
			return notFound(id)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			record = string(val)
			return nil
		})
	})
	return record, err
}

// Save replaces the record of an existing session.
func (s *BadgerStore) Save(id, record string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := requireKey(txn, id); err != nil {
			return err
		}
		return txn.Set(sessionKey(id), []byte(record))
	})
}

// Delete removes a session.
func (s *BadgerStore) Delete(id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := requireKey(txn, id); err != nil {
			return err
		}
		return txn.Delete(sessionKey(id))
	})
}

// Count returns the number of sessions.
func (s *BadgerStore) Count() (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// Close closes the database.
func (s *BadgerStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// requireKey fails with ErrSessionNotFound when the session is absent.
func requireKey(txn *badger.Txn, id string) error {
	_, err := txn.Get(sessionKey(id))
	if err == badger.ErrKeyNotFound {
		return notFound(id)
	}
	return err
}
