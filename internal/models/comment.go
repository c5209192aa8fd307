package models

import (
	"time"
)

// Comment status values
const (
	CommentPublished   = 1
	CommentUnpublished = 0
	CommentPending     = -1
	CommentJunk        = -2
)

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Post      Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID    *uint     `gorm:"index" json:"user_id"` // nil for anonymous comments
	Author    string    `gorm:"size:255;not null" json:"author"`
	Email     string    `gorm:"size:255" json:"email"`
	Site      string    `gorm:"size:255" json:"site"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	IP        string    `gorm:"size:64" json:"-"`
	Status    int       `gorm:"not null;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
