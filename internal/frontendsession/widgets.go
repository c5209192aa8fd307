package frontendsession

import (
	"context"

	"frontsession/internal/blog"
	"frontsession/internal/locale"
	"frontsession/internal/widgets"
)

// Widget "show" setting
const (
	SettingShow = "show"

	ShowAll  = "*"
	ShowForm = "form"
	ShowMenu = "menu"
)

// InitWidgets registers the session widget
func (p *Plugin) InitWidgets(ctx context.Context, stack *widgets.Stack) {
	lang := blog.FromContext(ctx).Lang()
	stack.
		Create(ID, locale.T(lang, "Frontend session"), p.RenderWidget, "Public login form").
		AddTitle(locale.T(lang, "My account")).
		Setting(SettingShow, locale.T(lang, "Content:"), ShowAll, "combo",
			widgets.Option{Label: locale.T(lang, "Form and menu"), Value: ShowAll},
			widgets.Option{Label: locale.T(lang, "Only form"), Value: ShowForm},
			widgets.Option{Label: locale.T(lang, "Only menu"), Value: ShowMenu},
		).
		AddHomeOnly().
		AddContentOnly().
		AddClass().
		AddOffline()
}

// RenderWidget renders the account menu and signout form for signed-in
// visitors, or the recovery/signup links and signin form otherwise.
func (p *Plugin) RenderWidget(ctx context.Context, el *widgets.Element) string {
	bc := blog.FromContext(ctx)
	if el.IsOffline() || !el.CheckHomeOnly(bc.URLType) || !p.Active() {
		return ""
	}

	lang := bc.Lang()
	url := bc.URLFor(ID)
	show := el.Get(SettingShow)

	var lines []widgets.Line
	form := ""

	if bc.UserID() != "" {
		if show != ShowForm {
			_ = p.behaviors.Call(ctx, HookWidget, &lines)
			lines = append(lines, widgets.Line{Href: url, Text: locale.T(lang, "My account")})
		}
		if show != ShowMenu {
			form = signoutHTML(bc, "_widget")
		}
	} else if show != ShowMenu {
		if p.settings.Bool(SettingEnableRecovery) {
			lines = append(lines, widgets.Line{Href: url + "#" + ID + ActionRecover, Text: locale.T(lang, "Password recovery")})
		}
		if p.settings.Bool(SettingEnableRegistration) {
			lines = append(lines, widgets.Line{Href: url + "#" + ID + ActionSignup, Text: locale.T(lang, "Sign up")})
		}
		form = signinHTML(bc, "_widget", "")
	}

	if form == "" && len(lines) == 0 {
		return ""
	}

	return el.RenderDiv(
		el.Bool(widgets.SettingContentOnly),
		ID+" "+el.Get(widgets.SettingClass),
		"",
		el.RenderTitle(el.Get(widgets.SettingTitle))+form+widgets.RenderList(lines),
	)
}
