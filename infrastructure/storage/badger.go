// Package storage persists users, rooms, messages and calls in BadgerDB.
// Values are JSON documents, secondary indexes are empty-valued keys whose
// layout gives the iteration order.
package storage

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const maxConflictRetries = 5

// update runs fn in a read-write transaction and retries it when badger
// detects a conflict with a concurrent transaction.
func update(db *badger.DB, op string, fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		err = db.Update(fn)
		if !goerrors.Is(err, badger.ErrConflict) {
			break
		}
	}
	return classify(op, err)
}

func view(db *badger.DB, op string, fn func(txn *badger.Txn) error) error {
	return classify(op, db.View(fn))
}

// classify lets domain errors through and wraps everything else raised by
// badger or the codec as a store failure.
func classify(op string, err error) error {
	if err == nil || errors.KindOf(err) != errors.KindInternal {
		return err
	}
	return errors.Store(op, err)
}

func getJSON(txn *badger.Txn, key []byte, v any) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func setJSON(txn *badger.Txn, key []byte, v any) error {
	bytes, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return txn.Set(key, bytes)
}

func exists(txn *badger.Txn, key []byte) (bool, error) {
	_, err := txn.Get(key)
	switch {
	case err == nil:
		return true, nil
	case goerrors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	default:
		return false, err
	}
}

// scanKeys returns the keys under prefix, newest first when reverse is set.
// Only the part after the prefix is returned.
func scanKeys(txn *badger.Txn, prefix []byte, reverse bool) []string {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	options.Reverse = reverse
	options.Prefix = prefix
	it := txn.NewIterator(options)
	defer it.Close()

	seek := prefix
	if reverse {
		// Start after the last possible key of the prefix then walk backward
		seek = append(append([]byte{}, prefix...), 0xFF)
	}
	var keys []string
	for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, string(it.Item().Key()[len(prefix):]))
	}
	return keys
}

// separator ends every id segment of an index key, so an id holding it would
// make the prefix scan of one id match the keys of another.
const separator = ":"

// checkKeyParts rejects ids that cannot be used inside an index key.
func checkKeyParts[T ~string](ids ...T) error {
	for _, id := range ids {
		if strings.Contains(string(id), separator) {
			return errors.Validation("id %q must not contain %q", id, separator)
		}
	}
	return nil
}

func stamp(at time.Time) string {
	return fmt.Sprintf("%019d", at.UnixNano())
}

func userKey(id domain.UserID) []byte {
	return []byte("user:" + string(id))
}

func roomKey(id domain.RoomID) []byte {
	return []byte("room:" + string(id))
}

func roomNameKey(name string) []byte {
	return []byte("roomname:" + name)
}

func memberPrefix(userID domain.UserID) []byte {
	return []byte("member:" + string(userID) + ":")
}

func memberKey(userID domain.UserID, roomID domain.RoomID) []byte {
	return append(memberPrefix(userID), []byte(roomID)...)
}

func messageKey(id domain.MessageID) []byte {
	return []byte("msg:" + string(id))
}

func tempIDKey(tempID string) []byte {
	return []byte("tempid:" + tempID)
}

func roomMessagePrefix(roomID domain.RoomID) []byte {
	return []byte("roommsg:" + string(roomID) + ":")
}

// roomMessageKey is "roommsg:{room}:{timestamp_padded}:{id}". The 19-digit
// padding keeps the lexicographical order chronological.
func roomMessageKey(m domain.Message) []byte {
	return append(roomMessagePrefix(m.RoomID), []byte(stamp(m.CreatedAt)+":"+string(m.ID))...)
}

func callKey(id domain.CallID) []byte {
	return []byte("call:" + string(id))
}

func attemptPrefix(id domain.AttemptID) []byte {
	return []byte("callattempt:" + string(id) + ":")
}

func userCallPrefix(userID domain.UserID) []byte {
	return []byte("usercall:" + string(userID) + ":")
}

func roomCallPrefix(roomID domain.RoomID) []byte {
	return []byte("roomcall:" + string(roomID) + ":")
}
