package models

import "time"

// AuthToken is an opaque bearer credential. Each user holds at most one:
// login reuses the existing row, logout deletes it.
type AuthToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Key       string    `gorm:"uniqueIndex;not null;size:40" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (AuthToken) TableName() string {
	return "auth_tokens"
}
