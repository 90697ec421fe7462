package credential

import (
	"errors"
	"fmt"

	"github.com/alexflint/go-filemutex"
	"github.com/tidwall/buntdb"
)

type Store interface {
	Save(c Credentials) error
	Load() (Credentials, error)
}

const (
	UserIDKey   = "user_id"
	APITokenKey = "api_token"
)

// NewStore keeps credentials in db. mux may be nil when only one process can
// touch db, as with an in-memory database.
func NewStore(db *buntdb.DB, mux *filemutex.FileMutex) Store {
	return &store{db: db, mux: mux}
}

type store struct {
	db  *buntdb.DB
	mux *filemutex.FileMutex
}

func (s *store) Save(c Credentials) error {
	if !c.IsComplete() {
		return fmt.Errorf("both user id and api token are required")
	}
	if s.mux != nil {
		if err := s.mux.Lock(); err != nil {
			return err
		}
		defer func() {
			_ = s.mux.Unlock()
		}()
	}

	return s.db.Update(func(tx *buntdb.Tx) error {
		if _, _, err := tx.Set(UserIDKey, c.UserID, nil); err != nil {
			return err
		}
		_, _, err := tx.Set(APITokenKey, c.APIToken, nil)
		return err
	})
}

func (s *store) Load() (Credentials, error) {
	var c Credentials
	err := s.db.View(func(tx *buntdb.Tx) error {
		var err error
		if c.UserID, err = get(tx, UserIDKey); err != nil {
			return err
		}
		c.APIToken, err = get(tx, APITokenKey)
		return err
	})
	if err != nil {
		return Credentials{}, err
	}
	return c, nil
}

func get(tx *buntdb.Tx, key string) (string, error) {
	v, err := tx.Get(key)
	if errors.Is(err, buntdb.ErrNotFound) {
		return "", nil
	} else if err != nil {
		return "", err
	}
	return v, nil
}
