package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

var ErrNotFound = errors.New("script not found")

var (
	scriptsBucket = []byte("scripts")
	resultsBucket = []byte("results")
)

// Result is the outcome of the last run of a script.
type Result struct {
	Value   string    `json:"value"`
	Type    string    `json:"type"`
	Session string    `json:"session"`
	When    time.Time `json:"when"`
}

// Store is a library of named scripts kept in a bbolt file. Names are case
// insensitive.
type Store struct {
	db *bolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{scriptsBucket, resultsBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Put(name, source string) error {
	key, err := normalize(name)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(scriptsBucket).Put(key, []byte(source))
	})
}

func (s *Store) Get(name string) (string, error) {
	key, err := normalize(name)
	if err != nil {
		return "", err
	}
	var source string
	err = s.db.View(func(tx *bolt.Tx) error {
		buf := tx.Bucket(scriptsBucket).Get(key)
		if buf == nil {
			return fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		source = string(buf)
		return nil
	})
	return source, err
}

// List gives the names of the scripts in order.
func (s *Store) List() ([]string, error) {
	var list []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(scriptsBucket).ForEach(func(k, _ []byte) error {
			list = append(list, string(k))
			return nil
		})
	})
	return list, err
}

// Delete removes a script and its last result.
func (s *Store) Delete(name string) error {
	key, err := normalize(name)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(scriptsBucket)
		if b.Get(key) == nil {
			return fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		if err := b.Delete(key); err != nil {
			return err
		}
		return tx.Bucket(resultsBucket).Delete(key)
	})
}

func (s *Store) SaveResult(name string, res Result) error {
	key, err := normalize(name)
	if err != nil {
		return err
	}
	if res.When.IsZero() {
		res.When = time.Now()
	}
	buf, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(scriptsBucket).Get(key) == nil {
			return fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return tx.Bucket(resultsBucket).Put(key, buf)
	})
}

func (s *Store) LastResult(name string) (Result, error) {
	var res Result
	key, err := normalize(name)
	if err != nil {
		return res, err
	}
	err = s.db.View(func(tx *bolt.Tx) error {
		buf := tx.Bucket(resultsBucket).Get(key)
		if buf == nil {
			return fmt.Errorf("%s: no result: %w", name, ErrNotFound)
		}
		return json.Unmarshal(buf, &res)
	})
	return res, err
}

func normalize(name string) ([]byte, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, fmt.Errorf("empty script name")
	}
	return []byte(name), nil
}
