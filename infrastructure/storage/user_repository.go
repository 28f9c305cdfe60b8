package storage

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	goerrors "errors"

	"github.com/dgraph-io/badger/v4"
)

var _ contract.IUserRepository = (*UserRepository)(nil)

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Get(userID domain.UserID) (domain.User, error) {
	var user domain.User
	err := view(r.db, "get user", func(txn *badger.Txn) error {
		return getUser(txn, userID, &user)
	})
	return user, err
}

// GetMany skips unknown ids, the result keeps the requested order.
func (r *UserRepository) GetMany(userIDs []domain.UserID) ([]domain.User, error) {
	users := make([]domain.User, 0, len(userIDs))
	err := view(r.db, "get users", func(txn *badger.Txn) error {
		for _, id := range userIDs {
			var user domain.User
			err := getUser(txn, id, &user)
			if goerrors.Is(err, errors.ErrUserNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			users = append(users, user)
		}
		return nil
	})
	return users, err
}

func (r *UserRepository) Save(user domain.User) error {
	return update(r.db, "save user", func(txn *badger.Txn) error {
		return setJSON(txn, userKey(user.ID), user)
	})
}

func (r *UserRepository) SetStatus(userID domain.UserID, status domain.UserStatus) error {
	_, err := r.mutate("set user status", userID, func(u *domain.User) bool {
		if u.Status == status {
			return false
		}
		u.Status = status
		return true
	})
	return err
}

func (r *UserRepository) SetReadPosition(userID domain.UserID, roomID domain.RoomID, scrollPos float64) (domain.User, error) {
	return r.mutate("set read position", userID, func(u *domain.User) bool {
		u.SetReadPosition(roomID, scrollPos)
		return true
	})
}

// UpdateProfile reports whether the public profile changed.
func (r *UserRepository) UpdateProfile(userID domain.UserID, fields domain.ProfileUpdate) (domain.User, bool, error) {
	var publicChange bool
	user, err := r.mutate("update profile", userID, func(u *domain.User) bool {
		publicChange = fields.Apply(u)
		return true
	})
	return user, publicChange, err
}

func (r *UserRepository) mutate(op string, userID domain.UserID, fn func(u *domain.User) bool) (domain.User, error) {
	var user domain.User
	err := update(r.db, op, func(txn *badger.Txn) error {
		user = domain.User{}
		if err := getUser(txn, userID, &user); err != nil {
			return err
		}
		if !fn(&user) {
			return nil
		}
		return setJSON(txn, userKey(userID), user)
	})
	return user, err
}

func getUser(txn *badger.Txn, userID domain.UserID, user *domain.User) error {
	err := getJSON(txn, userKey(userID), user)
	if goerrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrUserNotFound
	}
	return err
}
