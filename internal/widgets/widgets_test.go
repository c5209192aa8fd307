package widgets

import (
	"context"
	"testing"

	"frontsession/internal/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWidget(s *Stack) *Widget {
	return s.Create("Test", "Test widget", func(_ context.Context, el *Element) string {
		if el.IsOffline() {
			return ""
		}
		return el.RenderDiv(el.Bool(SettingContentOnly), "Test "+el.Get(SettingClass), "", el.RenderTitle(el.Get(SettingTitle)))
	}, "for tests").
		AddTitle("Hello").
		Setting("show", "Content:", "*", "combo", Option{"All", "*"}, Option{"Form", "form"}).
		AddHomeOnly().
		AddContentOnly().
		AddClass().
		AddOffline()
}

func TestElementDefaultsAndOverrides(t *testing.T) {
	w := newTestWidget(NewStack())

	el := w.Element(nil)
	assert.Equal(t, "Hello", el.Get(SettingTitle))
	assert.Equal(t, "*", el.Get("show"))
	assert.False(t, el.IsOffline())

	el = w.Element(settings.Map{"Test.show": "form", "Test.offline": "1", "Other.show": "menu"})
	assert.Equal(t, "form", el.Get("show"))
	assert.True(t, el.IsOffline())
	assert.Len(t, w.Settings(), 6)
}

func TestElementKeepsBlankValue(t *testing.T) {
	s := NewStack()
	newTestWidget(s)

	w, _ := s.Get("Test")
	assert.Equal(t, "", w.Element(settings.Map{"Test.title": ""}).Get(SettingTitle))
	assert.Equal(t, "Hello", w.Element(settings.Map{"Test.class": ""}).Get(SettingTitle))

	out := s.Render(context.Background(), "Test", settings.Map{"Test.title": ""})
	assert.Equal(t, "<div class=\"widget Test\"></div>\n", out)
}

func TestCheckHomeOnly(t *testing.T) {
	el := newTestWidget(NewStack()).Element(nil)
	assert.True(t, el.CheckHomeOnly("default"))
	assert.True(t, el.CheckHomeOnly("post"))

	el.Set(SettingHomeOnly, HomeOnlyHome)
	assert.True(t, el.CheckHomeOnly("default"))
	assert.True(t, el.CheckHomeOnly("default-page"))
	assert.False(t, el.CheckHomeOnly("post"))

	el.Set(SettingHomeOnly, HomeOnlyNotHome)
	assert.False(t, el.CheckHomeOnly("default"))
	assert.True(t, el.CheckHomeOnly("post"))
}

func TestRenderDivAndTitle(t *testing.T) {
	el := newTestWidget(NewStack()).Element(nil)

	assert.Equal(t, "", el.RenderTitle("  "))
	assert.Equal(t, "<h2>Me</h2>", el.RenderTitle("<b>Me</b>"))

	assert.Equal(t, "x", el.RenderDiv(true, "a", "", "x"))
	assert.Equal(t, "<div class=\"widget Test\">x</div>\n", el.RenderDiv(false, "Test ", "", "x"))
	assert.Equal(t, "<div class=\"widget a &#34;b\" id=\"w\">x</div>\n", el.RenderDiv(false, `a "b`, `id="w"`, "x"))
}

func TestStackRender(t *testing.T) {
	s := NewStack()
	newTestWidget(s)

	out := s.Render(context.Background(), "Test", settings.Map{"Test.class": "side"})
	assert.Equal(t, "<div class=\"widget Test side\"><h2>Hello</h2></div>\n", out)
	assert.Equal(t, "", s.Render(context.Background(), "missing", nil))

	all := s.RenderAll(context.Background(), settings.Map{"Test.offline": "1"})
	assert.Empty(t, all)

	w, ok := s.Get("Test")
	require.True(t, ok)
	assert.Equal(t, "Test widget", w.Name)
	assert.Len(t, s.List(), 1)
}

func TestRenderList(t *testing.T) {
	assert.Equal(t, "", RenderList(nil))
	assert.Equal(t,
		`<ul><li><a href="/a?x=1&amp;y=2">A &amp; B</a></li></ul>`,
		RenderList([]Line{{Href: "/a?x=1&y=2", Text: "A & B"}}))
}
