package blog

import "frontsession/internal/models"

// PostRecord is one post of a listing
type PostRecord struct {
	*models.Post
	commentsActive func(*PostRecord) bool
}

// CommentsActive reports whether the post accepts new comments. Without an
// extension this is the post's own open flag.
func (r *PostRecord) CommentsActive() bool {
	if r.commentsActive != nil {
		return r.commentsActive(r)
	}
	return r.OpenComment
}

// PostRecords is the result of a post query, extensible by behaviors
type PostRecords struct {
	Items []*PostRecord
}

func NewPostRecords(posts []models.Post) *PostRecords {
	rs := &PostRecords{Items: make([]*PostRecord, len(posts))}
	for i := range posts {
		rs.Items[i] = &PostRecord{Post: &posts[i]}
	}
	return rs
}

// Extend replaces the CommentsActive rule of every record
func (rs *PostRecords) Extend(fn func(*PostRecord) bool) {
	for _, r := range rs.Items {
		r.commentsActive = fn
	}
}

func (rs *PostRecords) Len() int { return len(rs.Items) }

// First returns the first record, nil on an empty result
func (rs *PostRecords) First() *PostRecord {
	if len(rs.Items) == 0 {
		return nil
	}
	return rs.Items[0]
}
