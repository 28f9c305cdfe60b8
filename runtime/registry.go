package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"sort"
	"sync"
)

var _ contract.IRegistry = (*Registry)(nil)

type Set map[domain.ConnectionID]struct{}

type binding struct {
	userID domain.UserID
	conn   contract.Connection
}

// Registry is the in-memory presence directory. It maps connections to the
// user they subscribed for, users to their live connections, and rooms to
// the connections that joined their delivery group.
type Registry struct {
	mu        sync.RWMutex
	byConn    map[domain.ConnectionID]binding
	byUser    map[domain.UserID]Set
	groups    map[domain.RoomID]Set
	connRooms map[domain.ConnectionID]map[domain.RoomID]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		byConn:    make(map[domain.ConnectionID]binding),
		byUser:    make(map[domain.UserID]Set),
		groups:    make(map[domain.RoomID]Set),
		connRooms: make(map[domain.ConnectionID]map[domain.RoomID]struct{}),
	}
}

// Register binds conn to userID. It is idempotent for the same pair.
// A connection subscribing again for another user is rebound and leaves the
// groups it joined for the previous one, which is reported as Replaced.
func (r *Registry) Register(userID domain.UserID, conn contract.Connection) contract.Registration {
	r.mu.Lock()
	defer r.mu.Unlock()

	var registration contract.Registration
	connID := conn.ID()
	if current, ok := r.byConn[connID]; ok {
		if current.userID == userID {
			return registration
		}
		registration.Replaced = &domain.PresenceEntry{ConnectionID: connID, UserID: current.userID}
		registration.ReplacedLast = r.detach(connID, current.userID)
	}

	registration.FirstForUser = len(r.byUser[userID]) == 0
	r.byConn[connID] = binding{userID: userID, conn: conn}
	if _, ok := r.byUser[userID]; !ok {
		r.byUser[userID] = make(Set)
	}
	r.byUser[userID][connID] = struct{}{}
	return registration
}

// Remove drops the connection from the directory and from every group.
// lastForUser is true when the user has no live connection left.
func (r *Registry) Remove(connID domain.ConnectionID) (domain.PresenceEntry, bool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byConn[connID]
	if !ok {
		r.leaveAll(connID)
		return domain.PresenceEntry{}, false, false
	}
	last := r.detach(connID, current.userID)
	return domain.PresenceEntry{ConnectionID: connID, UserID: current.userID}, last, true
}

// detach must be called with the write lock held.
func (r *Registry) detach(connID domain.ConnectionID, userID domain.UserID) bool {
	delete(r.byConn, connID)
	r.leaveAll(connID)
	conns := r.byUser[userID]
	delete(conns, connID)
	if len(conns) == 0 {
		delete(r.byUser, userID)
		return true
	}
	return false
}

func (r *Registry) leaveAll(connID domain.ConnectionID) {
	for roomID := range r.connRooms[connID] {
		r.leave(roomID, connID)
	}
	delete(r.connRooms, connID)
}

func (r *Registry) FindByUser(userID domain.UserID) []contract.Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolve(r.byUser[userID])
}

func (r *Registry) FindByConnection(connID domain.ConnectionID) (domain.PresenceEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	current, ok := r.byConn[connID]
	if !ok {
		return domain.PresenceEntry{}, false
	}
	return domain.PresenceEntry{ConnectionID: connID, UserID: current.userID}, true
}

// Join adds a subscribed connection to the delivery group of a room.
// Unknown connections are ignored.
func (r *Registry) Join(roomID domain.RoomID, connID domain.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byConn[connID]; !ok {
		return
	}
	if _, ok := r.groups[roomID]; !ok {
		r.groups[roomID] = make(Set)
	}
	r.groups[roomID][connID] = struct{}{}
	if _, ok := r.connRooms[connID]; !ok {
		r.connRooms[connID] = make(map[domain.RoomID]struct{})
	}
	r.connRooms[connID][roomID] = struct{}{}
}

func (r *Registry) Leave(roomID domain.RoomID, connID domain.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leave(roomID, connID)
	if rooms, ok := r.connRooms[connID]; ok {
		delete(rooms, roomID)
		if len(rooms) == 0 {
			delete(r.connRooms, connID)
		}
	}
}

// leave removes the connection from one group and drops the group once
// empty so that no empty set is left behind.
func (r *Registry) leave(roomID domain.RoomID, connID domain.ConnectionID) {
	if members, ok := r.groups[roomID]; ok {
		delete(members, connID)
		if len(members) == 0 {
			delete(r.groups, roomID)
		}
	}
}

// DropGroup forgets a room group, used once the room is deleted.
func (r *Registry) DropGroup(roomID domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for connID := range r.groups[roomID] {
		if rooms, ok := r.connRooms[connID]; ok {
			delete(rooms, roomID)
			if len(rooms) == 0 {
				delete(r.connRooms, connID)
			}
		}
	}
	delete(r.groups, roomID)
}

func (r *Registry) GroupConnections(roomID domain.RoomID) []contract.Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolve(r.groups[roomID])
}

// SubscribedConnections returns the connections that joined at least one group.
func (r *Registry) SubscribedConnections() []contract.Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set := make(Set, len(r.connRooms))
	for connID := range r.connRooms {
		set[connID] = struct{}{}
	}
	return r.resolve(set)
}

// Snapshot lists every live presence entry ordered by user then connection.
func (r *Registry) Snapshot() []domain.PresenceEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]domain.PresenceEntry, 0, len(r.byConn))
	for connID, current := range r.byConn {
		entries = append(entries, domain.PresenceEntry{ConnectionID: connID, UserID: current.userID})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].UserID != entries[j].UserID {
			return entries[i].UserID < entries[j].UserID
		}
		return entries[i].ConnectionID < entries[j].ConnectionID
	})
	return entries
}

// Counts is read by the health endpoint from another goroutine.
func (r *Registry) Counts() (int, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byConn), len(r.byUser)
}

// resolve must be called with the lock held. The result is sorted so that
// fan-out order is stable.
func (r *Registry) resolve(set Set) []contract.Connection {
	if len(set) == 0 {
		return nil
	}
	ids := make([]domain.ConnectionID, 0, len(set))
	for connID := range set {
		ids = append(ids, connID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	conns := make([]contract.Connection, 0, len(ids))
	for _, connID := range ids {
		if current, ok := r.byConn[connID]; ok {
			conns = append(conns, current.conn)
		}
	}
	return conns
}
