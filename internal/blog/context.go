// Package blog holds the host side of a frontend request: the per-request
// context handed to behaviors and widgets, post records and comment creation.
package blog

import (
	"context"
	"strconv"

	"frontsession/internal/models"
	"frontsession/internal/settings"
)

// System setting names (namespace "system")
const (
	SystemNamespace      = "system"
	SettingTheme         = "theme"
	SettingLang          = "lang"
	SettingAllowComments = "allow_comments"
	SettingCommentsTTL   = "comments_ttl"
	SettingCommentsPub   = "comments_pub"
)

// CommentPreview is the comment form state of the current request
// SessionUserKey holds the signed-in user id in the session
const SessionUserKey = "user_id"

type CommentPreview struct {
	Name    string
	Mail    string
	Site    string
	Content string
}

// Context is built once per frontend request
type Context struct {
	BlogID   string
	BlogURL  string // ends with "/"
	Settings settings.Reader
	URLs     *URLs
	User     *models.User // nil for anonymous visitors
	URLType  string
	SelfURI  string
	Nonce    string
	Preview  CommentPreview
}

// UserID is empty for anonymous visitors
func (c *Context) UserID() string {
	if c.User == nil {
		return ""
	}
	return strconv.FormatUint(uint64(c.User.ID), 10)
}

// Check reports whether the visitor holds an active, usable account
func (c *Context) Check() bool {
	return c.User != nil && c.User.IsActivated && c.User.Status != models.UserStatusBanned
}

// UserInfo returns one profile field of the current user
func (c *Context) UserInfo(key string) string {
	if c.User == nil {
		return ""
	}
	switch key {
	case "user_id":
		return c.User.Username
	case "user_cn":
		return c.User.CommonName()
	case "user_email":
		return c.User.Email
	case "user_url":
		return c.User.URL
	}
	return ""
}

// Lang is the blog language setting, "en" when unset
func (c *Context) Lang() string {
	if c.Settings == nil {
		return "en"
	}
	if l := c.Settings.Get(SettingLang); l != "" {
		return l
	}
	return "en"
}

// URLFor returns the absolute URL of a registered handler
func (c *Context) URLFor(handler string) string {
	if c.URLs == nil {
		return c.BlogURL
	}
	return c.BlogURL + c.URLs.Path(handler)
}

type ctxKey struct{}

func WithContext(ctx context.Context, bc *Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, bc)
}

// FromContext returns the request blog context, or an empty anonymous one
func FromContext(ctx context.Context) *Context {
	if bc, ok := ctx.Value(ctxKey{}).(*Context); ok {
		return bc
	}
	return &Context{Settings: settings.Map{}}
}
