package blog

import (
	"context"
	"errors"
	"strings"

	"frontsession/internal/behavior"
	"frontsession/internal/models"

	"gorm.io/gorm"
)

// Validation failures, worded for visitors
var (
	ErrContentRequired = errors.New("You must provide a comment.")
	ErrAuthorRequired  = errors.New("You must provide an author name.")
)

// RejectedError is returned when a behavior refuses a new comment.
// Its message is meant for the visitor.
type RejectedError struct {
	Err error
}

func (e *RejectedError) Error() string { return e.Err.Error() }

func (e *RejectedError) Unwrap() error { return e.Err }

type Comments struct {
	db        *gorm.DB
	behaviors *behavior.Stack
}

func NewComments(db *gorm.DB, behaviors *behavior.Stack) *Comments {
	return &Comments{db: db, behaviors: behaviors}
}

// Prepare sets the default status of cur and runs the pre-insert behaviors
func (s *Comments) Prepare(ctx context.Context, cur *models.Comment) error {
	if strings.TrimSpace(cur.Content) == "" {
		return &RejectedError{Err: ErrContentRequired}
	}
	if FromContext(ctx).Settings.Bool(SettingCommentsPub) {
		cur.Status = models.CommentPublished
	} else {
		cur.Status = models.CommentPending
	}
	if err := s.behaviors.Call(ctx, behavior.PublicBeforeCommentCreate, cur); err != nil {
		return &RejectedError{Err: err}
	}
	return nil
}

// Create prepares then persists cur. The author is checked after the
// behaviors, which may fill it from the visitor profile.
func (s *Comments) Create(ctx context.Context, cur *models.Comment) error {
	if err := s.Prepare(ctx, cur); err != nil {
		return err
	}
	if strings.TrimSpace(cur.Author) == "" {
		return &RejectedError{Err: ErrAuthorRequired}
	}
	return s.db.WithContext(ctx).Create(cur).Error
}

// Published lists the visible comments of a post, oldest first
func (s *Comments) Published(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Where("post_id = ? AND status = ?", postID, models.CommentPublished).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// FillCounts sets CommentCount on every record
func (s *Comments) FillCounts(ctx context.Context, rs *PostRecords) error {
	if rs.Len() == 0 {
		return nil
	}

	postIDs := make([]uint, rs.Len())
	for i, r := range rs.Items {
		postIDs[i] = r.ID
	}

	type countResult struct {
		PostID uint
		Count  int
	}
	var results []countResult
	err := s.db.WithContext(ctx).Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ? AND status = ?", postIDs, models.CommentPublished).
		Group("post_id").
		Scan(&results).Error
	if err != nil {
		return err
	}

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}
	for _, r := range rs.Items {
		r.CommentCount = countMap[r.ID]
	}
	return nil
}
