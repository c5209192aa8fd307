package frontendsession

import (
	"context"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"time"

	"frontsession/internal/blog"
	"frontsession/internal/locale"
	"frontsession/internal/models"
	"frontsession/internal/nonce"
	"frontsession/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// PageTemplate is the view name the host registers PageView under
const PageTemplate = "session/page.html"

// PageView is the content block of the session page
const PageView = `{{define "content"}}{{.Session}}{{end}}`

// UserFinder resolves a login (email or username) to an account
type UserFinder interface {
	ByLogin(ctx context.Context, login string) (*models.User, error)
}

// Renderer renders a host view with the common page variables
type Renderer func(c *gin.Context, code int, name string, obj gin.H)

// Handler serves the session page and processes the widget forms
type Handler struct {
	plugin      *Plugin
	users       UserFinder
	render      Renderer
	rememberFor time.Duration
}

func NewHandler(p *Plugin, users UserFinder, render Renderer, rememberFor time.Duration) *Handler {
	return &Handler{plugin: p, users: users, render: render, rememberFor: rememberFor}
}

// PageContent renders the body of the session page
func (p *Plugin) PageContent(bc *blog.Context, errMsg, login string) string {
	lang := bc.Lang()
	page := sessionPage{ID: ID, Error: errMsg}

	if bc.UserID() != "" {
		page.Form = template.HTML(signoutHTML(bc, "_page"))
		return execute("page", page)
	}

	page.Form = template.HTML(signinHTML(bc, "_page", login))
	if p.settings.Bool(SettingEnableRecovery) {
		page.Sections = append(page.Sections, pageSection{
			ID:    ID + ActionRecover,
			Title: locale.T(lang, "Password recovery"),
			Text:  locale.T(lang, "Password recovery is handled by the blog administrator."),
		})
	}
	if p.settings.Bool(SettingEnableRegistration) {
		page.Sections = append(page.Sections, pageSection{
			ID:    ID + ActionSignup,
			Title: locale.T(lang, "Sign up"),
			Text:  locale.T(lang, "Registration requests are handled by the blog administrator."),
		})
	}
	return execute("page", page)
}

// Show renders the session page
func (h *Handler) Show(c *gin.Context) {
	if !h.plugin.Active() {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	bc := blog.FromContext(c.Request.Context())
	bc.URLType = ID
	h.page(c, http.StatusOK, bc, "", "")
}

func (h *Handler) page(c *gin.Context, code int, bc *blog.Context, errMsg, login string) {
	h.render(c, code, PageTemplate, gin.H{
		"Title":   locale.T(bc.Lang(), "My account"),
		"Session": template.HTML(h.plugin.PageContent(bc, errMsg, login)),
	})
}

// Action handles the signin and signout forms
func (h *Handler) Action(c *gin.Context) {
	if !h.plugin.Active() {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	bc := blog.FromContext(c.Request.Context())
	bc.URLType = ID
	session := sessions.Default(c)

	if !nonce.Check(session, c.PostForm(ID+"check")) {
		h.plugin.metrics.signin("bad_nonce")
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	// Honeypot filled in: pretend nothing happened
	if c.PostForm("email") != "" {
		h.plugin.metrics.signin("honeypot")
		c.Redirect(http.StatusFound, bc.BlogURL)
		return
	}

	switch c.PostForm(ID + "action") {
	case ActionSignin:
		h.signin(c, bc, session)
	case ActionSignout:
		session.Clear()
		session.Save()
		c.Redirect(http.StatusFound, bc.BlogURL)
	default:
		c.Redirect(http.StatusFound, bc.URLFor(ID))
	}
}

func (h *Handler) signin(c *gin.Context, bc *blog.Context, session sessions.Session) {
	lang := bc.Lang()
	login := strings.TrimSpace(c.PostForm(ID + ActionSignin + "_login"))
	password := c.PostForm(ID + ActionSignin + "_password")

	if login == "" || password == "" {
		h.plugin.metrics.signin("failed")
		h.page(c, http.StatusUnauthorized, bc, locale.T(lang, "Wrong login or password."), login)
		return
	}

	user, err := h.users.ByLogin(c.Request.Context(), login)
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		h.plugin.metrics.signin("failed")
		h.page(c, http.StatusUnauthorized, bc, locale.T(lang, "Wrong login or password."), login)
		return
	}
	if user.Status == models.UserStatusBanned {
		h.plugin.metrics.signin("disabled")
		h.page(c, http.StatusForbidden, bc, locale.T(lang, "This account is disabled."), login)
		return
	}
	if !user.IsActivated {
		h.plugin.metrics.signin("inactive")
		h.page(c, http.StatusForbidden, bc, locale.T(lang, "This account is not active."), login)
		return
	}

	if c.PostForm(ID+ActionSignin+"_remember") != "" {
		session.Options(sessions.Options{
			Path:     "/",
			MaxAge:   int(h.rememberFor.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	session.Set(blog.SessionUserKey, user.ID)
	session.Save()

	h.plugin.metrics.signin("success")
	c.Redirect(http.StatusFound, safeRedirect(c.Request.Host, c.PostForm(ID+"redir"), bc.BlogURL))
}

// safeRedirect keeps redirects on the current host
func safeRedirect(host, target, fallback string) string {
	// browsers read "\" as "/", so "/\host" would leave the blog
	if target == "" || strings.Contains(target, "\\") {
		return fallback
	}
	u, err := url.Parse(target)
	if err != nil {
		return fallback
	}
	if u.Host == "" {
		if u.Scheme == "" && strings.HasPrefix(u.Path, "/") && !strings.HasPrefix(target, "//") {
			return target
		}
		return fallback
	}
	if (u.Scheme == "http" || u.Scheme == "https") && u.Host == host {
		return target
	}
	return fallback
}
