package storage

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	goerrors "errors"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

var _ contract.ICallRepository = (*CallRepository)(nil)

// openScanDepth bounds how many recent attempts of a room are inspected when
// looking for open calls.
const openScanDepth = 50

type CallRepository struct {
	db *badger.DB
}

func NewCallRepository(db *badger.DB) *CallRepository {
	return &CallRepository{db: db}
}

// Create stores views and indexes each attempt once in the history of both
// parties and of the room. Indexing again the same attempt is idempotent.
func (r *CallRepository) Create(calls ...domain.CallRecord) error {
	for _, call := range calls {
		if err := checkKeyParts(call.CallerID, call.ReceiverID); err != nil {
			return err
		}
		if err := checkKeyParts(call.RoomID); err != nil {
			return err
		}
	}
	return update(r.db, "create call", func(txn *badger.Txn) error {
		for _, call := range calls {
			if err := setJSON(txn, callKey(call.ID), call); err != nil {
				return err
			}
			suffix := stamp(call.StartTime) + ":" + string(call.AttemptID)
			keys := [][]byte{
				append(attemptPrefix(call.AttemptID), []byte(call.ID)...),
				append(userCallPrefix(call.CallerID), []byte(suffix)...),
				append(userCallPrefix(call.ReceiverID), []byte(suffix)...),
				append(roomCallPrefix(call.RoomID), []byte(suffix)...),
			}
			for _, key := range keys {
				if err := txn.Set(key, nil); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (r *CallRepository) Get(callID domain.CallID) (domain.CallRecord, error) {
	var call domain.CallRecord
	err := view(r.db, "get call", func(txn *badger.Txn) error {
		return getCall(txn, callID, &call)
	})
	return call, err
}

// MutateAttempt applies mutation to every view of the attempt callID belongs
// to, in one transaction. It returns the views after mutation and whether at
// least one of them changed.
func (r *CallRepository) MutateAttempt(callID domain.CallID, mutation contract.CallMutation) ([]domain.CallRecord, bool, error) {
	var calls []domain.CallRecord
	var changed bool
	err := update(r.db, "mutate call", func(txn *badger.Txn) error {
		changed = false
		var call domain.CallRecord
		if err := getCall(txn, callID, &call); err != nil {
			return err
		}
		var err error
		if calls, err = attemptViews(txn, call.AttemptID); err != nil {
			return err
		}
		for i := range calls {
			if !mutation(&calls[i]) {
				continue
			}
			changed = true
			if err := setJSON(txn, callKey(calls[i].ID), calls[i]); err != nil {
				return err
			}
		}
		return nil
	})
	return calls, changed, err
}

// OpenInRoom returns the non-terminal views of the most recent attempts of a
// room accepted by filter, newest first.
func (r *CallRepository) OpenInRoom(roomID domain.RoomID, filter func(domain.CallRecord) bool) ([]domain.CallRecord, error) {
	var open []domain.CallRecord
	err := view(r.db, "find open calls", func(txn *badger.Txn) error {
		suffixes := scanKeys(txn, roomCallPrefix(roomID), true)
		for _, suffix := range lo.Slice(suffixes, 0, openScanDepth) {
			calls, err := attemptViews(txn, attemptFromSuffix(suffix))
			if err != nil {
				return err
			}
			open = append(open, lo.Filter(calls, func(c domain.CallRecord, _ int) bool {
				return c.Open() && (filter == nil || filter(c))
			})...)
		}
		return nil
	})
	return open, err
}

// HistoryOf returns one view per attempt userID took part in, newest first.
func (r *CallRepository) HistoryOf(userID domain.UserID, limit, skip int) ([]domain.CallRecord, error) {
	return r.history("user call history", userCallPrefix(userID), limit, skip)
}

func (r *CallRepository) HistoryOfRoom(roomID domain.RoomID, limit, skip int) ([]domain.CallRecord, error) {
	return r.history("room call history", roomCallPrefix(roomID), limit, skip)
}

func (r *CallRepository) history(op string, prefix []byte, limit, skip int) ([]domain.CallRecord, error) {
	var calls []domain.CallRecord
	err := view(r.db, op, func(txn *badger.Txn) error {
		suffixes := scanKeys(txn, prefix, true)
		for _, suffix := range lo.Slice(suffixes, skip, skip+limit) {
			views, err := attemptViews(txn, attemptFromSuffix(suffix))
			if err != nil {
				return err
			}
			if len(views) == 0 {
				continue
			}
			calls = append(calls, views[0])
		}
		return nil
	})
	return calls, err
}

// attemptViews loads the views of an attempt, caller view first.
func attemptViews(txn *badger.Txn, attemptID domain.AttemptID) ([]domain.CallRecord, error) {
	var calls []domain.CallRecord
	for _, id := range scanKeys(txn, attemptPrefix(attemptID), false) {
		var call domain.CallRecord
		err := getCall(txn, domain.CallID(id), &call)
		if goerrors.Is(err, errors.ErrCallNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		calls = append(calls, call)
	}
	sort.SliceStable(calls, func(i, j int) bool {
		return calls[i].Direction == domain.Outgoing && calls[j].Direction != domain.Outgoing
	})
	return calls, nil
}

func attemptFromSuffix(suffix string) domain.AttemptID {
	_, id, _ := strings.Cut(suffix, ":")
	return domain.AttemptID(id)
}

func getCall(txn *badger.Txn, callID domain.CallID, call *domain.CallRecord) error {
	err := getJSON(txn, callKey(callID), call)
	if goerrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrCallNotFound
	}
	return err
}
