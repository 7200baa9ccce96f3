package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Username     string    `gorm:"size:64;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Description  string    `gorm:"type:text" json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// OwnerID reports the user as the owner of their own profile.
func (u *User) OwnerID() string {
	return u.ID
}

// UserSummary is the public listing shape of a user.
type UserSummary struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Description string `json:"description"`
}
