package repositories

import (
	"github.com/dgraph-io/badger/v4"

	"inkwell/app/models"
)

// BadgerSessionRepository implements SessionRepository using BadgerDB
type BadgerSessionRepository struct {
	db *badger.DB
}

// NewBadgerSessionRepository creates a new BadgerSessionRepository
func NewBadgerSessionRepository(db *badger.DB) *BadgerSessionRepository {
	return &BadgerSessionRepository{db: db}
}

// Create stores a session record keyed by its token
func (r *BadgerSessionRepository) Create(session *models.Session) error {
	return r.db.Update(func(txn *badger.Txn) error {
		data, err := marshalEntity(session)
		if err != nil {
			return err
		}
		return txn.Set([]byte(SessionKeyPrefix+session.Token), data)
	})
}

// Get retrieves a session by token. Expiry is the caller's concern.
func (r *BadgerSessionRepository) Get(token string) (*models.Session, error) {
	var session models.Session

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(SessionKeyPrefix + token))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &session)
		})
	})

	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete removes a session. Deleting a token that does not exist is not
// an error, so destroy stays idempotent.
func (r *BadgerSessionRepository) Delete(token string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(SessionKeyPrefix + token))
	})
}
