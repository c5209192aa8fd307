package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"frontsession/internal/behavior"
	"frontsession/internal/blog"
	"frontsession/internal/locale"
	"frontsession/internal/models"
	"frontsession/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	site     *Site
	posts    *blog.Posts
	comments *blog.Comments
}

func NewPostHandler(site *Site, posts *blog.Posts, comments *blog.Comments) *PostHandler {
	return &PostHandler{site: site, posts: posts, comments: comments}
}

// commentView is a published comment ready for display
type commentView struct {
	models.Comment
	HTML template.HTML
}

// List shows the latest posts (home page)
func (h *PostHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	blog.FromContext(ctx).URLType = "default"

	rs, err := h.posts.List(ctx, 20)
	if err != nil {
		h.site.Log.Error().Err(err).Msg("list posts")
		h.site.RenderError(c, http.StatusInternalServerError, "Unable to load posts.")
		return
	}
	if err := h.comments.FillCounts(ctx, rs); err != nil {
		h.site.Log.Warn().Err(err).Msg("count comments")
	}

	h.site.Render(c, http.StatusOK, "post/list.html", gin.H{"Posts": rs.Items})
}

// Detail shows one post, its comments and the comment form
func (h *PostHandler) Detail(c *gin.Context) {
	rec, ok := h.load(c)
	if !ok {
		return
	}
	h.detail(c, http.StatusOK, rec, "")
}

// CreateComment stores a visitor comment
func (h *PostHandler) CreateComment(c *gin.Context) {
	rec, ok := h.load(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	bc := blog.FromContext(ctx)

	bc.Preview = blog.CommentPreview{
		Name:    strings.TrimSpace(c.PostForm("c_name")),
		Mail:    strings.TrimSpace(c.PostForm("c_mail")),
		Site:    strings.TrimSpace(c.PostForm("c_site")),
		Content: c.PostForm("c_content"),
	}

	if !rec.CommentsActive() {
		h.detail(c, http.StatusForbidden, rec, locale.T(bc.Lang(), "Comments are closed."))
		return
	}

	cur := &models.Comment{
		PostID:  rec.ID,
		Author:  bc.Preview.Name,
		Email:   bc.Preview.Mail,
		Site:    bc.Preview.Site,
		Content: bc.Preview.Content,
		IP:      c.ClientIP(),
	}
	if bc.User != nil {
		cur.UserID = &bc.User.ID
	}

	if err := h.comments.Create(ctx, cur); err != nil {
		var rej *blog.RejectedError
		if errors.As(err, &rej) {
			h.detail(c, http.StatusForbidden, rec, locale.T(bc.Lang(), rej.Error()))
			return
		}
		h.site.Log.Error().Err(err).Uint("post_id", rec.ID).Msg("create comment")
		h.site.RenderError(c, http.StatusInternalServerError, "Unable to save your comment.")
		return
	}

	target := fmt.Sprintf("/post/%d", rec.ID)
	if cur.Status != models.CommentPublished {
		target += "?pub=0"
	}
	c.Redirect(http.StatusFound, target+"#comments")
}

func (h *PostHandler) load(c *gin.Context) (*blog.PostRecord, bool) {
	ctx := c.Request.Context()
	blog.FromContext(ctx).URLType = "post"

	id := utils.ParseID(c.Param("id"))
	if id == 0 {
		h.site.NotFound(c)
		return nil, false
	}
	rs, err := h.posts.ByID(ctx, id)
	if err != nil {
		h.site.Log.Error().Err(err).Uint("post_id", id).Msg("load post")
		h.site.RenderError(c, http.StatusInternalServerError, "Unable to load posts.")
		return nil, false
	}
	rec := rs.First()
	if rec == nil {
		h.site.NotFound(c)
		return nil, false
	}
	return rec, true
}

func (h *PostHandler) detail(c *gin.Context, code int, rec *blog.PostRecord, errMsg string) {
	ctx := c.Request.Context()
	bc := blog.FromContext(ctx)

	comments, err := h.comments.Published(ctx, rec.ID)
	if err != nil {
		h.site.Log.Warn().Err(err).Uint("post_id", rec.ID).Msg("load comments")
	}
	views := make([]commentView, len(comments))
	for i, cm := range comments {
		views[i] = commentView{Comment: cm, HTML: utils.RenderMarkdown(cm.Content)}
	}

	active := rec.CommentsActive()
	if active {
		if err := h.site.Behaviors.Call(ctx, behavior.PublicCommentFormBeforeContent, &bc.Preview); err != nil {
			h.site.Log.Warn().Err(err).Msg("comment form behavior failed")
		}
	}

	h.site.Render(c, code, "post/detail.html", gin.H{
		"Title":          rec.Title,
		"Post":           rec,
		"PostHTML":       utils.RenderMarkdown(rec.Content),
		"Comments":       views,
		"CommentsActive": active,
		"Preview":        bc.Preview,
		"Pending":        c.Query("pub") == "0",
		"Error":          errMsg,
	})
}
