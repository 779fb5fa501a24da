package user

import "time"

// Document field names shared by every store backend.
const (
	FieldID         = "_id"
	FieldUsername   = "username"
	FieldPassword   = "password"
	FieldDateJoined = "dateJoined"
)

// User represents the users collection.
type User struct {
	ID         string    `json:"_id,omitempty" bson:"_id,omitempty" gorm:"primaryKey"`
	Username   string    `json:"username" bson:"username" gorm:"uniqueIndex;not null"`
	Password   string    `json:"password" bson:"password" gorm:"not null"`
	DateJoined time.Time `json:"dateJoined" bson:"dateJoined" gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) GetID() string {
	return u.ID
}

func (u *User) SetID(id string) {
	u.ID = id
}

// Safe strips the password.
func (u User) Safe() SafeUser {
	return SafeUser{
		ID:         u.ID,
		Username:   u.Username,
		DateJoined: u.DateJoined,
	}
}

// SafeUser is the only user shape handed back to callers.
type SafeUser struct {
	ID         string    `json:"_id,omitempty"`
	Username   string    `json:"username"`
	DateJoined time.Time `json:"dateJoined"`
}

// Credentials is what a caller presents to log in.
type Credentials struct {
	Username string
	Password string
}

// Updates holds the mutable fields of a user. Nil means unchanged.
// Username is the natural key and DateJoined is immutable, so neither appears here.
type Updates struct {
	Password *string
}

// Fields returns the set fields keyed by document field name.
func (u Updates) Fields() map[string]any {
	fields := make(map[string]any)
	if u.Password != nil {
		fields[FieldPassword] = *u.Password
	}
	return fields
}
