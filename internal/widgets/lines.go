package widgets

import (
	"bytes"
	"html/template"
)

// Line is one menu entry of a widget list
type Line struct {
	Href string
	Text string
}

var listTpl = template.Must(template.New("list").Parse(
	`<ul>{{range .}}<li><a href="{{.Href}}">{{.Text}}</a></li>{{end}}</ul>`))

// RenderList renders lines as a ul, empty for no lines
func RenderList(lines []Line) string {
	if len(lines) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := listTpl.Execute(&buf, lines); err != nil {
		return ""
	}
	return buf.String()
}
