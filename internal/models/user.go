package models

import "time"

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id" example:"1"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username" example:"moviebuff42"`
	Email        string    `gorm:"index" json:"email" example:"moviebuff42@example.com"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"not null;default:member;index" json:"role" example:"member"`
	JoinedDate   time.Time `gorm:"type:date" json:"joined_date"`
	Reviews      []Review  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *User) IsMember() bool {
	return u != nil && u.Role == RoleMember
}
