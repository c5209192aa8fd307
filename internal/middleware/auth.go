package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"frontsession/internal/blog"
	"frontsession/internal/models"
	"frontsession/internal/nonce"
	"frontsession/internal/settings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const CheckUserKey = "user"

// UserLoader resolves the session user id
type UserLoader interface {
	ByID(ctx context.Context, id uint) (*models.User, error)
}

// LoadUser retrieves user from session and sets to context
func LoadUser(users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if id, ok := sessionUserID(session.Get(blog.SessionUserKey)); ok {
			user, err := users.ByID(c.Request.Context(), id)
			switch {
			case err == nil:
				c.Set(CheckUserKey, user)
			case errors.Is(err, gorm.ErrRecordNotFound):
				// stale session, account gone
				session.Delete(blog.SessionUserKey)
				session.Save()
			}
		}
		c.Next()
	}
}

func sessionUserID(v interface{}) (uint, bool) {
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), id > 0
	case int64:
		return uint(id), id > 0
	}
	return 0, false
}

// Frontend builds the blog context of the request
func Frontend(blogID, blogURL string, system settings.Reader, urls *blog.URLs) gin.HandlerFunc {
	return func(c *gin.Context) {
		bc := &blog.Context{
			BlogID:   blogID,
			BlogURL:  blogURL,
			Settings: system,
			URLs:     urls,
			URLType:  "default",
			SelfURI:  selfURI(c.Request),
			Nonce:    nonce.Get(sessions.Default(c)),
		}
		if user, exists := c.Get(CheckUserKey); exists {
			bc.User = user.(*models.User)
		}
		c.Request = c.Request.WithContext(blog.WithContext(c.Request.Context(), bc))
		c.Next()
	}
}

func selfURI(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s", scheme, r.Host, r.URL.RequestURI())
}
