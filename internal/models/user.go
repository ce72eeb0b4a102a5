package models

import "time"

// Role values accepted for User.Role.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an authenticated principal. Password holds a bcrypt hash
// and is never exposed in JSON.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:20;not null;default:'user'" json:"role"`
	Name      string    `gorm:"size:100" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// NewUser fills the registration defaults: role "user" and the
// username as display name when none is given.
func NewUser(username, passwordHash, role, name string) User {
	if role == "" {
		role = RoleUser
	}
	if name == "" {
		name = username
	}
	return User{Username: username, Password: passwordHash, Role: role, Name: name}
}
