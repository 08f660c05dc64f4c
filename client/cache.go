package client

import (
	"encoding/json"
	"fmt"

	"slingshot/domain"

	"github.com/dgraph-io/badger/v4"
)

// Cache is a local snapshot of previously seen messages, used as the initial
// view source before the first gateway fetch completes.
//
// Keys are "msg:{timestamp_padded}:{id}":
//  1. The 19-digit zero padding keeps chronological order under badger's
//     lexicographic iteration.
//  2. The store id disambiguates two messages created in the same nanosecond.
type Cache struct {
	db *badger.DB
}

func OpenCache(path string) (*Cache, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLoggingLevel(badger.ERROR))
	if err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) Put(messages ...domain.Message) error {
	return c.db.Update(func(txn *badger.Txn) error {
		for _, m := range messages {
			key := fmt.Sprintf("msg:%019d:%d", m.CreatedAt.UnixNano(), m.ID)
			value, err := json.Marshal(m)
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(key), value); err != nil {
				return err
			}
		}
		return nil
	})
}

// Snapshot returns every cached message in chronological order.
func (c *Cache) Snapshot() ([]domain.Message, error) {
	var messages []domain.Message
	err := c.db.View(func(txn *badger.Txn) error {
		prefix := []byte("msg:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var m domain.Message
				if err := json.Unmarshal(value, &m); err != nil {
					return err
				}
				messages = append(messages, m)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}
