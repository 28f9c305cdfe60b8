package storage

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	goerrors "errors"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

var _ contract.IMessageRepository = (*MessageRepository)(nil)

const defaultPageSize = 30

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) *MessageRepository {
	return &MessageRepository{db: db, log: log}
}

func (r *MessageRepository) Get(messageID domain.MessageID) (domain.Message, error) {
	var msg domain.Message
	err := view(r.db, "get message", func(txn *badger.Txn) error {
		return getMessage(txn, messageID, &msg)
	})
	return msg, err
}

func (r *MessageRepository) GetByTempID(tempID string) (domain.Message, bool, error) {
	var msg domain.Message
	var found bool
	err := view(r.db, "get message by temp id", func(txn *badger.Txn) error {
		var err error
		found, err = messageByTempID(txn, tempID, &msg)
		return err
	})
	return msg, found, err
}

// Post persists a message exactly once per tempID. When the tempID is already
// known the stored message is returned with created=false and nothing is written.
// Otherwise the message, its tempID key, the history index, the room sequence
// and the reply list of the target are written in one transaction.
func (r *MessageRepository) Post(msg domain.Message) (domain.Message, bool, error) {
	stored := msg
	var created bool
	err := update(r.db, "post message", func(txn *badger.Txn) error {
		created = false
		stored = msg
		if msg.TempID != "" {
			var existing domain.Message
			found, err := messageByTempID(txn, msg.TempID, &existing)
			if err != nil {
				return err
			}
			if found {
				stored = existing
				return nil
			}
		}

		var room domain.Room
		if err := getRoom(txn, msg.RoomID, &room); err != nil {
			return err
		}
		if msg.ReplyToID != "" {
			var target domain.Message
			if err := getMessage(txn, msg.ReplyToID, &target); err != nil {
				return err
			}
			target.AddReply(msg.ID)
			if err := setJSON(txn, messageKey(target.ID), target); err != nil {
				return err
			}
		}
		if err := putMessage(txn, msg); err != nil {
			return err
		}
		room.AppendMessage(msg.ID)
		created = true
		return setJSON(txn, roomKey(room.ID), room)
	})
	return stored, created, err
}

// Mutate applies mutation to the stored message and writes it back when it
// reports a change.
func (r *MessageRepository) Mutate(messageID domain.MessageID, mutation contract.MessageMutation) (domain.Message, bool, error) {
	var msg domain.Message
	var changed bool
	err := update(r.db, "mutate message", func(txn *badger.Txn) error {
		msg = domain.Message{}
		if err := getMessage(txn, messageID, &msg); err != nil {
			return err
		}
		var err error
		if changed, err = mutation(&msg); err != nil || !changed {
			return err
		}
		return setJSON(txn, messageKey(messageID), msg)
	})
	return msg, changed, err
}

// Delete hard-deletes a message and removes it from its room sequence.
// The updated room is returned so that callers know the new last message.
// The tempID key is kept so that a late retry is never posted again.
func (r *MessageRepository) Delete(messageID domain.MessageID) (domain.Room, error) {
	var room domain.Room
	err := update(r.db, "delete message", func(txn *badger.Txn) error {
		var msg domain.Message
		if err := getMessage(txn, messageID, &msg); err != nil {
			return err
		}
		room = domain.Room{}
		if err := getRoom(txn, msg.RoomID, &room); err != nil {
			return err
		}
		room.RemoveMessage(messageID)
		for _, key := range [][]byte{messageKey(messageID), roomMessageKey(msg)} {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return setJSON(txn, roomKey(room.ID), room)
	})
	return room, err
}

// List returns a page of the room history, newest first, without the messages
// hidden for viewer. The cursor is the index suffix of the last returned
// message and is empty once the beginning of the room is reached.
func (r *MessageRepository) List(roomID domain.RoomID, viewer domain.UserID, cursor string, limit int) ([]domain.Message, string, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	var messages []domain.Message
	var next string
	err := view(r.db, "list messages", func(txn *badger.Txn) error {
		ok, err := exists(txn, roomKey(roomID))
		if err != nil {
			return err
		}
		if !ok {
			return errors.ErrRoomNotFound
		}
		prefix := roomMessagePrefix(roomID)
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		options.Reverse = true
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := append(append([]byte{}, prefix...), 0xFF)
		if cursor != "" {
			seekKey = append(append([]byte{}, prefix...), []byte(cursor)...)
		}
		it.Seek(seekKey)
		if cursor != "" && it.ValidForPrefix(prefix) && string(it.Item().Key()[len(prefix):]) == cursor {
			it.Next()
		}

		var last string
		for ; it.ValidForPrefix(prefix); it.Next() {
			if len(messages) == limit {
				next = last
				return nil
			}
			suffix := string(it.Item().Key()[len(prefix):])
			last = suffix
			var msg domain.Message
			err := getMessage(txn, domain.MessageID(messageIDFromSuffix(suffix)), &msg)
			if goerrors.Is(err, errors.ErrMessageNotFound) {
				r.log.Warn("Dangling history index", "room_id", roomID, "key", suffix)
				continue
			}
			if err != nil {
				return err
			}
			if !msg.VisibleFor(viewer) {
				continue
			}
			messages = append(messages, msg)
		}
		return nil
	})
	return messages, next, err
}

// CountUnseen counts the messages of a room viewer has neither sent, seen nor hidden.
func (r *MessageRepository) CountUnseen(roomID domain.RoomID, viewer domain.UserID) (int, error) {
	var count int
	err := view(r.db, "count unseen", func(txn *badger.Txn) error {
		for _, suffix := range scanKeys(txn, roomMessagePrefix(roomID), false) {
			var msg domain.Message
			err := getMessage(txn, domain.MessageID(messageIDFromSuffix(suffix)), &msg)
			if goerrors.Is(err, errors.ErrMessageNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			if msg.UnseenBy(viewer) {
				count++
			}
		}
		return nil
	})
	return count, err
}

// putMessage writes the message document, its tempID key and its history index.
func putMessage(txn *badger.Txn, msg domain.Message) error {
	if err := setJSON(txn, messageKey(msg.ID), msg); err != nil {
		return err
	}
	if msg.TempID != "" {
		if err := txn.Set(tempIDKey(msg.TempID), []byte(msg.ID)); err != nil {
			return err
		}
	}
	return txn.Set(roomMessageKey(msg), nil)
}

// messageByTempID reports whether tempID was ever posted. Once its message is
// deleted msg is a placeholder with Deleted set.
func messageByTempID(txn *badger.Txn, tempID string, msg *domain.Message) (bool, error) {
	item, err := txn.Get(tempIDKey(tempID))
	if goerrors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	id, err := item.ValueCopy(nil)
	if err != nil {
		return false, err
	}
	err = getMessage(txn, domain.MessageID(id), msg)
	if goerrors.Is(err, errors.ErrMessageNotFound) {
		*msg = domain.Message{ID: domain.MessageID(id), TempID: tempID, Deleted: true}
		return true, nil
	}
	return err == nil, err
}

func getMessage(txn *badger.Txn, messageID domain.MessageID, msg *domain.Message) error {
	err := getJSON(txn, messageKey(messageID), msg)
	if goerrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrMessageNotFound
	}
	return err
}

// messageIDFromSuffix extracts {id} from "{timestamp_padded}:{id}".
func messageIDFromSuffix(suffix string) string {
	_, id, found := strings.Cut(suffix, ":")
	if !found {
		return suffix
	}
	return id
}
