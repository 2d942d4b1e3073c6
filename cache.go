package hamster

import (
	"database/sql"
	"fmt"

	"github.com/bodgit/hamster/ham"
	"github.com/klauspost/compress/zstd"
	_ "github.com/mattn/go-sqlite3"
)

// CacheDB stores encoded HAM6 images so that converting the same source
// with the same options again can skip the encoder.
type CacheDB struct {
	db  *sql.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewCacheDB opens or creates the cache database in file.
func NewCacheDB(file string) (*CacheDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS conversion (id INTEGER PRIMARY KEY NOT NULL, key TEXT NOT NULL UNIQUE, width INTEGER NOT NULL, height INTEGER NOT NULL, ham BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		db.Close()
		return nil, err
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		db.Close()
		return nil, err
	}

	return &CacheDB{
		db:  db,
		enc: enc,
		dec: dec,
	}, nil
}

// Close closes the database.
func (db *CacheDB) Close() error {
	db.dec.Close()
	if err := db.enc.Close(); err != nil {
		db.db.Close()
		return err
	}
	return db.db.Close()
}

// Find returns the image stored for key, or nil if there isn't one.
func (db *CacheDB) Find(key string) (*ham.Image, error) {
	var b []byte
	switch err := db.db.QueryRow("SELECT ham FROM conversion WHERE key = ?", key).Scan(&b); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		raw, err := db.dec.DecodeAll(b, nil)
		if err != nil {
			return nil, err
		}
		m := new(ham.Image)
		if err := m.UnmarshalBinary(raw); err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, err
	}
}

// Store saves the image under key, replacing anything already there.
func (db *CacheDB) Store(key string, m *ham.Image) error {
	raw, err := m.MarshalBinary()
	if err != nil {
		return err
	}

	if _, err := db.db.Exec("INSERT OR REPLACE INTO conversion (key, width, height, ham) VALUES (?, ?, ?, ?)", key, m.Width, m.Height, db.enc.EncodeAll(raw, nil)); err != nil {
		return err
	}
	return nil
}

// Count returns the number of cached images.
func (db *CacheDB) Count() (int, error) {
	var n int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM conversion").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Pixels returns the total number of pixels across every cached image.
func (db *CacheDB) Pixels() (int64, error) {
	var n int64
	if err := db.db.QueryRow("SELECT COALESCE(SUM(width * height), 0) FROM conversion").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Purge removes every cached image.
func (db *CacheDB) Purge() error {
	if _, err := db.db.Exec("DELETE FROM conversion"); err != nil {
		return err
	}
	return nil
}
