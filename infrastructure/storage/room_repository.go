package storage

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	goerrors "errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

var _ contract.IRoomRepository = (*RoomRepository)(nil)

type RoomRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewRoomRepository(db *badger.DB, log *slog.Logger) *RoomRepository {
	return &RoomRepository{db: db, log: log}
}

func (r *RoomRepository) Get(roomID domain.RoomID) (domain.Room, error) {
	var room domain.Room
	err := view(r.db, "get room", func(txn *badger.Txn) error {
		return getRoom(txn, roomID, &room)
	})
	return room, err
}

// GetByName resolves a private room through its name index.
func (r *RoomRepository) GetByName(name string) (domain.Room, error) {
	var room domain.Room
	err := view(r.db, "get room by name", func(txn *badger.Txn) error {
		id, err := roomIDByName(txn, name)
		if err != nil {
			return err
		}
		return getRoom(txn, id, &room)
	})
	return room, err
}

// Create persists the room, its indexes and the optional first message in
// one transaction. An already existing room is returned with ErrRoomAlreadyExists.
func (r *RoomRepository) Create(room domain.Room, first *domain.Message) error {
	if err := checkKeyParts(room.ID); err != nil {
		return err
	}
	if err := checkKeyParts(room.Participants...); err != nil {
		return err
	}
	return update(r.db, "create room", func(txn *badger.Txn) error {
		existing, found, err := findExisting(txn, room.Type, room.Name, room.ID)
		if err != nil {
			return err
		}
		if found {
			return &ConflictError{Room: existing}
		}
		if first != nil {
			if err := checkFirstTempID(txn, first.TempID); err != nil {
				return err
			}
			room.AppendMessage(first.ID)
			if err := putMessage(txn, *first); err != nil {
				return err
			}
		}
		if room.Type == domain.RoomPrivate {
			if err := txn.Set(roomNameKey(room.Name), []byte(room.ID)); err != nil {
				return err
			}
		}
		for _, userID := range room.Participants {
			if err := txn.Set(memberKey(userID, room.ID), nil); err != nil {
				return err
			}
		}
		return setJSON(txn, roomKey(room.ID), room)
	})
}

// AddParticipant is idempotent, it reports whether the membership changed.
func (r *RoomRepository) AddParticipant(roomID domain.RoomID, userID domain.UserID) (domain.Room, bool, error) {
	var room domain.Room
	var changed bool
	if err := checkKeyParts(userID); err != nil {
		return room, false, err
	}
	err := update(r.db, "join room", func(txn *badger.Txn) error {
		room = domain.Room{}
		if err := getRoom(txn, roomID, &room); err != nil {
			return err
		}
		var err error
		if changed, err = room.AddParticipant(userID); err != nil || !changed {
			return err
		}
		room.UpdatedAt = time.Now().UTC()
		if err := txn.Set(memberKey(userID, roomID), nil); err != nil {
			return err
		}
		return setJSON(txn, roomKey(roomID), room)
	})
	return room, changed, err
}

// Update applies fields to the room. Renaming a private room moves its name
// index and fails with a conflict when another room owns the new name.
func (r *RoomRepository) Update(roomID domain.RoomID, fields domain.RoomUpdate, at time.Time) (domain.Room, error) {
	var room domain.Room
	err := update(r.db, "update room", func(txn *badger.Txn) error {
		room = domain.Room{}
		if err := getRoom(txn, roomID, &room); err != nil {
			return err
		}
		previous := room.Name
		fields.Apply(&room, at)
		if room.Type == domain.RoomPrivate && room.Name != previous {
			if err := moveName(txn, room, previous); err != nil {
				return err
			}
		}
		return setJSON(txn, roomKey(roomID), room)
	})
	return room, err
}

func moveName(txn *badger.Txn, room domain.Room, previous string) error {
	existing, found, err := findExisting(txn, domain.RoomPrivate, room.Name, "")
	if err != nil {
		return err
	}
	if found && existing.ID != room.ID {
		return &ConflictError{Room: existing}
	}
	if err := txn.Delete(roomNameKey(previous)); err != nil {
		return err
	}
	return txn.Set(roomNameKey(room.Name), []byte(room.ID))
}

// Delete purges the room, its indexes and every message it holds. The
// tempID keys of the messages are kept like for a single message delete.
// Keys are collected in a read transaction then dropped with a write batch
// so that large rooms do not hit the transaction size limit.
func (r *RoomRepository) Delete(roomID domain.RoomID) error {
	var keys [][]byte
	err := view(r.db, "collect room keys", func(txn *badger.Txn) error {
		var room domain.Room
		if err := getRoom(txn, roomID, &room); err != nil {
			return err
		}
		keys = append(keys, roomKey(roomID))
		if room.Type == domain.RoomPrivate {
			keys = append(keys, roomNameKey(room.Name))
		}
		for _, userID := range room.Participants {
			keys = append(keys, memberKey(userID, roomID))
		}
		prefix := roomMessagePrefix(roomID)
		for _, suffix := range scanKeys(txn, prefix, false) {
			keys = append(keys,
				append(append([]byte{}, prefix...), suffix...),
				messageKey(domain.MessageID(messageIDFromSuffix(suffix))),
			)
		}
		return nil
	})
	if err != nil {
		return err
	}

	wb := r.db.NewWriteBatch()
	defer wb.Cancel()
	for _, key := range keys {
		if err := wb.Delete(key); err != nil {
			return errors.Store("delete room", err)
		}
	}
	if err := wb.Flush(); err != nil {
		return errors.Store("delete room", err)
	}
	r.log.Debug("Room purged", "room_id", roomID, "keys", len(keys))
	return nil
}

// RoomsOf lists the rooms userID belongs to through the membership index.
func (r *RoomRepository) RoomsOf(userID domain.UserID) ([]domain.Room, error) {
	var rooms []domain.Room
	err := view(r.db, "list rooms of user", func(txn *badger.Txn) error {
		for _, id := range scanKeys(txn, memberPrefix(userID), false) {
			var room domain.Room
			err := getRoom(txn, domain.RoomID(id), &room)
			if goerrors.Is(err, errors.ErrRoomNotFound) {
				r.log.Warn("Dangling membership index", "room_id", id, "user_id", userID)
				continue
			}
			if err != nil {
				return err
			}
			rooms = append(rooms, room)
		}
		return nil
	})
	return rooms, err
}

// ConflictError carries the room that already owns the uniqueness key.
type ConflictError struct {
	Room domain.Room
}

func (e *ConflictError) Error() string {
	return errors.ErrRoomAlreadyExists.Error()
}

func (e *ConflictError) Unwrap() error {
	return errors.ErrRoomAlreadyExists
}

// FailureResult is echoed in the negative acknowledgment.
func (e *ConflictError) FailureResult() any {
	return e.Room
}

func findExisting(txn *badger.Txn, roomType domain.RoomType, name string, id domain.RoomID) (domain.Room, bool, error) {
	var room domain.Room
	if roomType == domain.RoomPrivate {
		existing, err := roomIDByName(txn, name)
		if goerrors.Is(err, errors.ErrRoomNotFound) {
			return room, false, nil
		}
		if err != nil {
			return room, false, err
		}
		err = getRoom(txn, existing, &room)
		return room, err == nil, ignoreNotFound(err)
	}
	if id == "" {
		return room, false, nil
	}
	err := getRoom(txn, id, &room)
	return room, err == nil, ignoreNotFound(err)
}

// checkFirstTempID refuses a first message whose tempID was already posted.
// When that message still lives the conflict carries its room, which is the
// room an earlier try of the same creation produced.
func checkFirstTempID(txn *badger.Txn, tempID string) error {
	if tempID == "" {
		return nil
	}
	var existing domain.Message
	found, err := messageByTempID(txn, tempID, &existing)
	if err != nil || !found {
		return err
	}
	if !existing.Deleted {
		var room domain.Room
		err := getRoom(txn, existing.RoomID, &room)
		if err == nil {
			return &ConflictError{Room: room}
		}
		if !goerrors.Is(err, errors.ErrRoomNotFound) {
			return err
		}
	}
	return errors.ErrTempIDTaken
}

func ignoreNotFound(err error) error {
	if goerrors.Is(err, errors.ErrNotFound) {
		return nil
	}
	return err
}

func roomIDByName(txn *badger.Txn, name string) (domain.RoomID, error) {
	item, err := txn.Get(roomNameKey(name))
	if goerrors.Is(err, badger.ErrKeyNotFound) {
		return "", errors.ErrRoomNotFound
	}
	if err != nil {
		return "", err
	}
	value, err := item.ValueCopy(nil)
	return domain.RoomID(value), err
}

func getRoom(txn *badger.Txn, roomID domain.RoomID, room *domain.Room) error {
	err := getJSON(txn, roomKey(roomID), room)
	if goerrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrRoomNotFound
	}
	return err
}
