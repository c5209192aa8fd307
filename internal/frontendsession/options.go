package frontendsession

import (
	"frontsession/internal/blog"
	"frontsession/internal/models"
)

// CommentOptions is handed to HookCommentsActive listeners. Both decisions
// are tri-state: nil leaves the plugin rules in charge.
type CommentOptions struct {
	post     *blog.PostRecord
	cursor   *models.Comment
	active   *bool
	moderate *bool
}

// NewCommentOptions builds options for a post; cursor is nil outside
// comment creation
func NewCommentOptions(post *blog.PostRecord, cursor *models.Comment) *CommentOptions {
	return &CommentOptions{post: post, cursor: cursor}
}

func (o *CommentOptions) Post() *blog.PostRecord { return o.post }

func (o *CommentOptions) Cursor() *models.Comment { return o.cursor }

func (o *CommentOptions) IsActive() *bool { return o.active }

func (o *CommentOptions) SetActive(active bool) { o.active = &active }

func (o *CommentOptions) IsModerate() *bool { return o.moderate }

func (o *CommentOptions) SetModerate(moderate bool) { o.moderate = &moderate }
