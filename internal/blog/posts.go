package blog

import (
	"context"
	"errors"

	"frontsession/internal/behavior"
	"frontsession/internal/models"

	"gorm.io/gorm"
)

type Posts struct {
	db        *gorm.DB
	behaviors *behavior.Stack
}

func NewPosts(db *gorm.DB, behaviors *behavior.Stack) *Posts {
	return &Posts{db: db, behaviors: behaviors}
}

// List returns the latest posts
func (p *Posts) List(ctx context.Context, limit int) (*PostRecords, error) {
	var posts []models.Post
	err := p.db.WithContext(ctx).Preload("User").Order("created_at DESC").Limit(limit).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return p.records(ctx, posts)
}

// ByID returns a listing holding the post, or an empty listing
func (p *Posts) ByID(ctx context.Context, id uint) (*PostRecords, error) {
	var post models.Post
	err := p.db.WithContext(ctx).Preload("User").First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewPostRecords(nil), nil
	}
	if err != nil {
		return nil, err
	}
	return p.records(ctx, []models.Post{post})
}

func (p *Posts) records(ctx context.Context, posts []models.Post) (*PostRecords, error) {
	rs := NewPostRecords(posts)
	if err := p.behaviors.Call(ctx, behavior.CoreBlogGetPosts, rs); err != nil {
		return nil, err
	}
	return rs, nil
}
