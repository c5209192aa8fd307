package frontendsession

import (
	"context"
	"strings"
	"testing"
	"time"

	"frontsession/internal/behavior"
	"frontsession/internal/blog"
	"frontsession/internal/models"
	"frontsession/internal/settings"
	"frontsession/internal/widgets"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

type fakePosts map[uint]models.Post

func (f fakePosts) ByID(_ context.Context, id uint) (*blog.PostRecords, error) {
	if p, ok := f[id]; ok {
		return blog.NewPostRecords([]models.Post{p}), nil
	}
	return blog.NewPostRecords(nil), nil
}

var testPosts = fakePosts{
	1: {ID: 1, Title: "Open", OpenComment: true, CreatedAt: time.Now()},
	2: {ID: 2, Title: "Closed", OpenComment: false, CreatedAt: time.Now()},
	3: {ID: 3, Title: "Old", OpenComment: true, CreatedAt: time.Now().Add(-40 * 24 * time.Hour)},
}

func testUser() *models.User {
	return &models.User{
		ID:          42,
		Username:    "jcpd",
		DisplayName: "Jean-Christian",
		Email:       "jc@example.org",
		URL:         "https://jc.example.org",
		IsActivated: true,
	}
}

func newTestPlugin(t *testing.T, overrides settings.Map) (*Plugin, *behavior.Stack) {
	t.Helper()
	conf := settings.Map{}
	for k, v := range Defaults {
		conf[k] = v
	}
	for k, v := range overrides {
		conf[k] = v
	}
	stack := behavior.NewStack()
	return New(conf, stack, testPosts, blog.DefaultThemes, nil), stack
}

func systemSettings(extra settings.Map) settings.Map {
	sys := settings.Map{
		blog.SettingTheme:         "berlin",
		blog.SettingLang:          "en",
		blog.SettingAllowComments: "1",
	}
	for k, v := range extra {
		sys[k] = v
	}
	return sys
}

func newBlogContext(user *models.User, sys settings.Map) *blog.Context {
	urls := blog.NewURLs()
	urls.Register(ID, URLPath)
	return &blog.Context{
		BlogID:   "default",
		BlogURL:  "http://blog.test/",
		Settings: sys,
		URLs:     urls,
		User:     user,
		URLType:  "default",
		SelfURI:  "http://blog.test/post/1",
		Nonce:    "nonce-123",
	}
}

func ctxWith(bc *blog.Context) context.Context {
	return blog.WithContext(context.Background(), bc)
}

func widgetElement(t *testing.T, p *Plugin, values map[string]string) *widgets.Element {
	t.Helper()
	stack := widgets.NewStack()
	p.InitWidgets(context.Background(), stack)
	w, ok := stack.Get(ID)
	require.True(t, ok)
	el := w.Element(nil)
	for k, v := range values {
		el.Set(k, v)
	}
	return el
}

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}
