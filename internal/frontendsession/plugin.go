// Package frontendsession adds a public session widget (signin, signout,
// recovery and signup links) and adjusts comment rules and page markup for
// signed-in visitors.
package frontendsession

import (
	"context"
	"io"

	"frontsession/internal/behavior"
	"frontsession/internal/blog"
	"frontsession/internal/models"
	"frontsession/internal/settings"
	"frontsession/internal/widgets"
)

const (
	ID = "FrontendSession"

	// URLPath is the session page, relative to the blog URL
	URLPath = "session"

	ActionSignin  = "signin"
	ActionSignout = "signout"
	ActionRecover = "recover"
	ActionSignup  = "signup"
)

// Plugin settings (namespace ID)
const (
	SettingActive             = "active"
	SettingDisableCSS         = "disable_css"
	SettingLimitComment       = "limit_comment"
	SettingEnableRecovery     = "enable_recovery"
	SettingEnableRegistration = "enable_registration"
)

// Extension points fired by the plugin
const (
	// HookCommentsActive receives a *CommentOptions
	HookCommentsActive = "FrontendSessionCommentsActive"
	// HookWidget receives the *[]widgets.Line of the signed-in menu
	HookWidget = "FrontendSessionWidget"
)

// Defaults seeds the plugin namespace on first start
var Defaults = settings.Map{
	SettingActive:             "1",
	SettingDisableCSS:         "0",
	SettingLimitComment:       "0",
	SettingEnableRecovery:     "0",
	SettingEnableRegistration: "0",
}

// PostFinder loads a post listing
type PostFinder interface {
	ByID(ctx context.Context, id uint) (*blog.PostRecords, error)
}

// TemplateSets resolves the template set of a theme
type TemplateSets interface {
	TplSet(theme string) string
}

type Plugin struct {
	settings  settings.Reader
	behaviors *behavior.Stack
	posts     PostFinder
	themes    TemplateSets
	metrics   *Metrics
}

func New(s settings.Reader, behaviors *behavior.Stack, posts PostFinder, themes TemplateSets, metrics *Metrics) *Plugin {
	return &Plugin{
		settings:  s,
		behaviors: behaviors,
		posts:     posts,
		themes:    themes,
		metrics:   metrics,
	}
}

// Active reports the plugin "active" setting
func (p *Plugin) Active() bool {
	return p.settings.Bool(SettingActive)
}

// Register hooks the plugin into the host behaviors and URL map
func (p *Plugin) Register(urls *blog.URLs) {
	urls.Register(ID, URLPath)

	p.behaviors.Add(behavior.CoreBlogGetPosts, func(ctx context.Context, arg any) error {
		if rs, ok := arg.(*blog.PostRecords); ok {
			p.CoreBlogGetPosts(ctx, rs)
		}
		return nil
	})
	p.behaviors.Add(behavior.PublicBeforeCommentCreate, func(ctx context.Context, arg any) error {
		cur, ok := arg.(*models.Comment)
		if !ok {
			return nil
		}
		return p.PublicBeforeCommentCreate(ctx, cur)
	})
	p.behaviors.Add(behavior.PublicHeadContent, func(ctx context.Context, arg any) error {
		w, ok := arg.(io.StringWriter)
		if !ok {
			return nil
		}
		_, err := w.WriteString(p.PublicHeadContent(ctx))
		return err
	})
	p.behaviors.Add(behavior.PublicCommentFormBeforeContent, func(ctx context.Context, _ any) error {
		p.PublicCommentFormBeforeContent(ctx)
		return nil
	})
	p.behaviors.Add(behavior.InitWidgets, func(ctx context.Context, arg any) error {
		if stack, ok := arg.(*widgets.Stack); ok {
			p.InitWidgets(ctx, stack)
		}
		return nil
	})
}
