// Package cartstore реализует хранилище отложенных корзин в BoltDB.
//
// Снимки корзин лежат в одном файле рядом с приложением, внешняя СУБД
// для них не нужна. Снимок хранит позиции с ценами на момент сохранения;
// актуальность остатков проверяется при восстановлении.
package cartstore

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/mmeshcher/hardstore-system/internal/cart"
	"github.com/mmeshcher/hardstore-system/internal/model"
)

const bucketCarts = "carts"

// Snapshot описывает сохранённую корзину.
type Snapshot struct {
	Token   string      `json:"token"`
	Lines   []cart.Line `json:"lines"`
	SavedAt time.Time   `json:"saved_at"`
}

// Store предоставляет доступ к файлу сохранённых корзин.
type Store struct {
	db *bolt.DB
}

// New открывает или создаёт файл BoltDB по указанному пути.
func New(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open carts file: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCarts))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create carts bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close освобождает файл хранилища.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save записывает снимок корзины и возвращает его токен.
func (s *Store) Save(lines []cart.Line) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	snap := Snapshot{
		Token:   token,
		Lines:   lines,
		SavedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketCarts)).Put([]byte(token), data)
	})
	if err != nil {
		return "", fmt.Errorf("put snapshot: %w", err)
	}

	return token, nil
}

// List возвращает все сохранённые корзины, новые сверху.
func (s *Store) List() ([]Snapshot, error) {
	var snapshots []Snapshot

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketCarts)).ForEach(func(k, v []byte) error {
			var snap Snapshot
			if err := json.Unmarshal(v, &snap); err != nil {
				return fmt.Errorf("unmarshal snapshot %s: %w", k, err)
			}
			snapshots = append(snapshots, snap)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].SavedAt.After(snapshots[j].SavedAt)
	})

	return snapshots, nil
}

// Load возвращает снимок по токену.
func (s *Store) Load(token string) (*Snapshot, error) {
	var snap Snapshot

	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketCarts)).Get([]byte(token))
		if v == nil {
			return fmt.Errorf("%w: saved cart %q", model.ErrNotFound, token)
		}
		return json.Unmarshal(v, &snap)
	})
	if err != nil {
		return nil, err
	}

	return &snap, nil
}

// Delete удаляет снимок по токену.
func (s *Store) Delete(token string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCarts))
		if b.Get([]byte(token)) == nil {
			return fmt.Errorf("%w: saved cart %q", model.ErrNotFound, token)
		}
		return b.Delete([]byte(token))
	})
}

func newToken() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
