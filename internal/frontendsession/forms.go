package frontendsession

import (
	"bytes"
	"html/template"

	"frontsession/internal/blog"
	"frontsession/internal/locale"
)

var formTpl = template.Must(template.New("forms").Parse(`
{{- define "signin" -}}
<form action="{{.Action}}" method="post" id="{{.ID}}signinform{{.Suffix}}" class="session-form">
<p><label for="{{.ID}}signin_login{{.Suffix}}" class="required">{{.LoginLabel}}</label> <input type="text" name="{{.ID}}signin_login" id="{{.ID}}signin_login{{.Suffix}}" value="{{.Login}}" maxlength="255" autocomplete="username"></p>
<p><label for="{{.ID}}signin_password{{.Suffix}}" class="required">{{.PasswordLabel}}</label> <input type="password" name="{{.ID}}signin_password" id="{{.ID}}signin_password{{.Suffix}}" maxlength="255" autocomplete="current-password"></p>
<p style="display:none;"><input type="email" name="email" id="email{{.Suffix}}" value=""></p>
<p><input type="checkbox" name="{{.ID}}signin_remember" id="{{.ID}}signin_remember{{.Suffix}}" value="1"> <label for="{{.ID}}signin_remember{{.Suffix}}" class="classic">{{.RememberLabel}}</label></p>
<p><input type="hidden" name="{{.ID}}check" value="{{.Nonce}}"><input type="hidden" name="{{.ID}}state" value=""><input type="hidden" name="{{.ID}}redir" id="{{.ID}}signinredir{{.Suffix}}" value="{{.Redir}}"><input type="hidden" name="{{.ID}}action" id="{{.ID}}signinaction{{.Suffix}}" value="signin"><input type="submit" name="{{.ID}}submit" id="{{.ID}}signinsubmit{{.Suffix}}" value="{{.SubmitLabel}}"></p>
</form>
{{- end -}}

{{- define "signout" -}}
<form action="{{.Action}}" method="post" id="{{.ID}}signoutform{{.Suffix}}" class="session-form">
<p>{{.ConnectedAs}}<br />{{.UserName}}</p>
<p><input type="hidden" name="{{.ID}}check" value="{{.Nonce}}"><input type="hidden" name="{{.ID}}state" value=""><input type="hidden" name="{{.ID}}action" id="{{.ID}}signoutaction{{.Suffix}}" value="signout"><input type="submit" name="{{.ID}}submit" id="{{.ID}}signoutsubmit{{.Suffix}}" value="{{.SubmitLabel}}"></p>
</form>
{{- end -}}

{{- define "page" -}}
<div class="{{.ID}}-page">
{{- if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{.Form}}
{{- range .Sections}}
<div id="{{.ID}}" class="{{$.ID}}-section"><h3>{{.Title}}</h3><p>{{.Text}}</p></div>
{{- end}}
</div>
{{- end -}}
`))

type signinForm struct {
	ID            string
	Suffix        string
	Action        string
	Nonce         string
	Redir         string
	Login         string
	LoginLabel    string
	PasswordLabel string
	RememberLabel string
	SubmitLabel   string
}

type signoutForm struct {
	ID          string
	Suffix      string
	Action      string
	Nonce       string
	ConnectedAs string
	UserName    string
	SubmitLabel string
}

type pageSection struct {
	ID    string
	Title string
	Text  string
}

type sessionPage struct {
	ID       string
	Error    string
	Form     template.HTML
	Sections []pageSection
}

func execute(name string, data any) string {
	var buf bytes.Buffer
	if err := formTpl.ExecuteTemplate(&buf, name, data); err != nil {
		return ""
	}
	return buf.String()
}

// signinHTML renders the signin form; suffix keeps element ids unique per
// placement ("_widget", "_page")
func signinHTML(bc *blog.Context, suffix, login string) string {
	lang := bc.Lang()
	return execute("signin", signinForm{
		ID:            ID,
		Suffix:        suffix,
		Action:        bc.URLFor(ID),
		Nonce:         bc.Nonce,
		Redir:         bc.SelfURI,
		Login:         login,
		LoginLabel:    locale.T(lang, "Login:"),
		PasswordLabel: locale.T(lang, "Password:"),
		RememberLabel: locale.T(lang, "Remember me"),
		SubmitLabel:   locale.T(lang, "Connect"),
	})
}

func signoutHTML(bc *blog.Context, suffix string) string {
	lang := bc.Lang()
	return execute("signout", signoutForm{
		ID:          ID,
		Suffix:      suffix,
		Action:      bc.URLFor(ID),
		Nonce:       bc.Nonce,
		ConnectedAs: locale.T(lang, "You are connected as:"),
		UserName:    bc.UserInfo("user_cn"),
		SubmitLabel: locale.T(lang, "Disconnect"),
	})
}
