package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"frontsession/internal/behavior"
	"frontsession/internal/blog"
	"frontsession/internal/locale"
	"frontsession/internal/middleware"
	"frontsession/internal/settings"
	"frontsession/internal/widgets"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Site carries what every frontend page needs
type Site struct {
	Behaviors    *behavior.Stack
	Widgets      *widgets.Stack
	WidgetConfig settings.Reader
	Log          zerolog.Logger
}

// Render helper to inject common variables like 'current user'
func (s *Site) Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}
	ctx := c.Request.Context()
	bc := blog.FromContext(ctx)

	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}

	var head strings.Builder
	if err := s.Behaviors.Call(ctx, behavior.PublicHeadContent, &head); err != nil {
		s.Log.Warn().Err(err).Msg("head content behavior failed")
	}
	obj["HeadContent"] = template.HTML(head.String())

	var sidebar []template.HTML
	for _, html := range s.Widgets.RenderAll(ctx, s.WidgetConfig) {
		sidebar = append(sidebar, template.HTML(html))
	}
	obj["Sidebar"] = sidebar
	obj["BlogURL"] = bc.BlogURL
	obj["Lang"] = bc.Lang()
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// RenderError renders the error page with a translated message
func (s *Site) RenderError(c *gin.Context, code int, message string) {
	bc := blog.FromContext(c.Request.Context())
	s.Render(c, code, "error.html", gin.H{"Error": locale.T(bc.Lang(), message)})
}

// NotFound is the fallback route
func (s *Site) NotFound(c *gin.Context) {
	s.RenderError(c, http.StatusNotFound, "Page not found.")
}
