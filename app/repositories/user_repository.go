package repositories

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"inkwell/app/models"
)

// storedUser is the persisted form of a user. models.User hides the
// password hash from JSON, so the store needs its own representation.
type storedUser struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toStored(u *models.User) *storedUser {
	return &storedUser{ID: u.ID, Name: u.Name, Email: u.Email, PasswordHash: u.PasswordHash, CreatedAt: u.CreatedAt}
}

func (s *storedUser) toModel() *models.User {
	return &models.User{ID: s.ID, Name: s.Name, Email: s.Email, PasswordHash: s.PasswordHash, CreatedAt: s.CreatedAt}
}

// BadgerUserRepository implements UserRepository using BadgerDB
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// Create creates a new user. The email index is written in the same
// transaction, so duplicate emails fail with ErrConflict and leave
// nothing behind.
func (r *BadgerUserRepository) Create(user *models.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		emailKey := []byte(UserEmailKeyPrefix + user.Email)
		_, err := txn.Get(emailKey)
		if err == nil {
			return ErrConflict
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		id, err := getNextID(txn, UserSeqKey)
		if err != nil {
			return err
		}
		user.ID = id
		user.BeforeCreate()

		data, err := marshalEntity(toStored(user))
		if err != nil {
			return err
		}

		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, user.ID))
		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(emailKey, []byte(fmt.Sprintf("%d", user.ID)))
	})
}

// GetByID retrieves a user by ID
func (r *BadgerUserRepository) GetByID(id int) (*models.User, error) {
	var stored storedUser

	err := r.db.View(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, id))
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &stored)
		})
	})

	if err != nil {
		return nil, err
	}
	return stored.toModel(), nil
}

// GetByEmail retrieves a user through the email index
func (r *BadgerUserRepository) GetByEmail(email string) (*models.User, error) {
	var stored storedUser

	err := r.db.View(func(txn *badger.Txn) error {
		emailKey := []byte(UserEmailKeyPrefix + email)
		item, err := txn.Get(emailKey)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var id int
		err = item.Value(func(val []byte) error {
			_, serr := fmt.Sscanf(string(val), "%d", &id)
			return serr
		})
		if err != nil {
			return err
		}

		userItem, err := txn.Get([]byte(fmt.Sprintf("%s%d", UserKeyPrefix, id)))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return userItem.Value(func(val []byte) error {
			return unmarshalEntity(val, &stored)
		})
	})

	if err != nil {
		return nil, err
	}
	return stored.toModel(), nil
}

// List retrieves all users
func (r *BadgerUserRepository) List() ([]*models.User, error) {
	var users []*models.User
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(UserKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var stored storedUser
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &stored)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal user: %v", err)
			}
			users = append(users, stored.toModel())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}
