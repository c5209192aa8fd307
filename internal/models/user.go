package models

import (
	"time"
)

const (
	UserStatusNormal = 0
	UserStatusMuted  = 1
	UserStatusBanned = 2
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"uniqueIndex;not null" json:"username"`
	DisplayName string    `gorm:"size:255" json:"display_name"` // shown as comment author
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	URL         string    `gorm:"size:255" json:"url"`     // personal site
	Password    string    `gorm:"not null" json:"-"`       // Hash
	Status      int       `gorm:"default:0" json:"status"` // 0:normal, 1:muted, 2:banned
	IsActivated bool      `gorm:"default:false" json:"is_activated"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CommonName is the name shown publicly, falling back to the login
func (u *User) CommonName() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
