package widgets

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var titlePolicy = bluemonday.StrictPolicy()

// Element is a widget instance with resolved setting values
type Element struct {
	widget *Widget
	values map[string]string
}

func (e *Element) Get(name string) string { return e.values[name] }

// Set overrides one value
func (e *Element) Set(name, value string) *Element {
	e.values[name] = value
	return e
}

func (e *Element) Bool(name string) bool {
	switch e.values[name] {
	case "1", "true", "on":
		return true
	}
	return false
}

func (e *Element) IsOffline() bool { return e.Bool(SettingOffline) }

// CheckHomeOnly reports whether the widget shows on a page of urlType
func (e *Element) CheckHomeOnly(urlType string) bool {
	home := urlType == "default" || urlType == "default-page"
	switch e.values[SettingHomeOnly] {
	case HomeOnlyHome:
		return home
	case HomeOnlyNotHome:
		return !home
	}
	return true
}

// RenderTitle wraps a non-empty title in h2; markup in the title is dropped
func (e *Element) RenderTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<h2>" + titlePolicy.Sanitize(title) + "</h2>"
}

// RenderDiv wraps content in the widget container unless contentOnly
func (e *Element) RenderDiv(contentOnly bool, class, attr, content string) string {
	if contentOnly {
		return content
	}

	var b strings.Builder
	b.WriteString(`<div class="widget`)
	if class = strings.TrimSpace(class); class != "" {
		b.WriteString(" " + html.EscapeString(class))
	}
	b.WriteString(`"`)
	if attr != "" {
		b.WriteString(" " + attr)
	}
	b.WriteString(">")
	b.WriteString(content)
	b.WriteString("</div>\n")
	return b.String()
}
