// Package domain contains core concepts of the chat system.
// This file defines users, their presence and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

type UserID string

type UserStatus string

const (
	StatusOnline  UserStatus = "online"
	StatusOffline UserStatus = "offline"
)

// User is the persisted account as seen by the coordinator.
// Accounts are created elsewhere, only the status, the profile and the
// read positions are written from here.
type User struct {
	ID            UserID         `json:"id"`
	Name          string         `json:"name"`
	LastName      string         `json:"lastName"`
	Username      string         `json:"username"`
	Avatar        string         `json:"avatar,omitempty"`
	Biography     string         `json:"biography"`
	Phone         string         `json:"phone"`
	Status        UserStatus     `json:"status"`
	ReadPositions []ReadPosition `json:"readPositions"`
}

// ReadPosition remembers where a user stopped scrolling in a room.
type ReadPosition struct {
	RoomID    RoomID  `json:"roomID"`
	ScrollPos float64 `json:"scrollPos"`
}

// Profile is the public part of a user, embedded in outgoing events.
type Profile struct {
	ID       UserID     `json:"id"`
	Name     string     `json:"name"`
	LastName string     `json:"lastName"`
	Username string     `json:"username"`
	Avatar   string     `json:"avatar,omitempty"`
	Status   UserStatus `json:"status,omitempty"`
}

func (u User) Profile() Profile {
	return Profile{
		ID:       u.ID,
		Name:     u.Name,
		LastName: u.LastName,
		Username: u.Username,
		Avatar:   u.Avatar,
		Status:   u.Status,
	}
}

// SetReadPosition updates the position for roomID or appends a new one.
func (u *User) SetReadPosition(roomID RoomID, scrollPos float64) {
	for i := range u.ReadPositions {
		if u.ReadPositions[i].RoomID == roomID {
			u.ReadPositions[i].ScrollPos = scrollPos
			return
		}
	}
	u.ReadPositions = append(u.ReadPositions, ReadPosition{RoomID: roomID, ScrollPos: scrollPos})
}

// ProfileUpdate carries the optional fields of an update-user request.
// A nil field is left untouched.
type ProfileUpdate struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=3,max=20"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,max=20"`
	Username  *string `json:"username,omitempty" validate:"omitempty,min=3,max=20"`
	Avatar    *string `json:"avatar,omitempty"`
	Biography *string `json:"biography,omitempty" validate:"omitempty,max=70"`
	Phone     *string `json:"phone,omitempty"`
}

// Apply copies the non-nil fields on u and reports whether the public
// profile (name, last name, avatar) changed.
func (p ProfileUpdate) Apply(u *User) bool {
	before := u.Profile()
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Biography != nil {
		u.Biography = *p.Biography
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	after := u.Profile()
	return before.Name != after.Name || before.LastName != after.LastName || before.Avatar != after.Avatar
}

type ConnectionID string

// PresenceEntry binds one live connection to the user it was subscribed for.
type PresenceEntry struct {
	ConnectionID ConnectionID `json:"connectionID"`
	UserID       UserID       `json:"userID"`
}
