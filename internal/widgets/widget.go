// Package widgets is the host registry of sidebar widgets and the helpers
// widget callbacks use to render themselves.
package widgets

import (
	"context"

	"frontsession/internal/settings"
)

// Standard setting names
const (
	SettingTitle       = "title"
	SettingHomeOnly    = "homeonly"
	SettingContentOnly = "content_only"
	SettingClass       = "class"
	SettingOffline     = "offline"
)

// Home-only modes
const (
	HomeOnlyAll     = "0"
	HomeOnlyHome    = "1"
	HomeOnlyNotHome = "2"
)

type Option struct {
	Label string
	Value string
}

// Setting describes one configurable value of a widget
type Setting struct {
	Name    string
	Title   string
	Default string
	Type    string // text, combo, check
	Options []Option
}

// Callback renders one widget instance
type Callback func(ctx context.Context, el *Element) string

// Widget is a registered widget definition
type Widget struct {
	ID       string
	Name     string
	Desc     string
	callback Callback
	settings []Setting
}

// Setting appends a custom setting
func (w *Widget) Setting(name, title, def, typ string, options ...Option) *Widget {
	w.settings = append(w.settings, Setting{Name: name, Title: title, Default: def, Type: typ, Options: options})
	return w
}

func (w *Widget) AddTitle(def string) *Widget {
	return w.Setting(SettingTitle, "Title (optional):", def, "text")
}

func (w *Widget) AddHomeOnly() *Widget {
	return w.Setting(SettingHomeOnly, "Display on:", HomeOnlyAll, "combo",
		Option{Label: "All pages", Value: HomeOnlyAll},
		Option{Label: "Home page only", Value: HomeOnlyHome},
		Option{Label: "Except on home page", Value: HomeOnlyNotHome},
	)
}

func (w *Widget) AddContentOnly() *Widget {
	return w.Setting(SettingContentOnly, "Content only", "0", "check")
}

func (w *Widget) AddClass() *Widget {
	return w.Setting(SettingClass, "CSS class:", "", "text")
}

func (w *Widget) AddOffline() *Widget {
	return w.Setting(SettingOffline, "Offline", "0", "check")
}

func (w *Widget) Settings() []Setting {
	return append([]Setting(nil), w.settings...)
}

// Element builds an instance; conf values are keyed "<widget id>.<setting>"
// and missing keys keep the default.
func (w *Widget) Element(conf settings.Reader) *Element {
	el := &Element{widget: w, values: make(map[string]string, len(w.settings))}
	for _, s := range w.settings {
		v := s.Default
		if conf != nil {
			if c, ok := conf.Lookup(w.ID + "." + s.Name); ok {
				v = c
			}
		}
		el.values[s.Name] = v
	}
	return el
}

func (w *Widget) Render(ctx context.Context, el *Element) string {
	return w.callback(ctx, el)
}
