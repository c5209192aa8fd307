// Package web embeds the frontend templates.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"

	"github.com/gin-contrib/multitemplate"
)

//go:embed templates
var Templates embed.FS

var funcMap = template.FuncMap{
	"plural": func(n int, one, many string) string {
		if n == 1 {
			return fmt.Sprintf("%d %s", n, one)
		}
		return fmt.Sprintf("%d %s", n, many)
	},
}

var views = []string{
	"post/list.html",
	"post/detail.html",
	"error.html",
}

// Renderer builds the page renderer: every view is rendered inside the base
// layout. extra maps more view names to their "content" definition.
func Renderer(extra map[string]string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	read := func(name string) string {
		b, err := fs.ReadFile(Templates, path.Join("templates", name))
		if err != nil {
			panic(err)
		}
		return string(b)
	}
	layout := read("layouts/base.html")

	for _, name := range views {
		r.AddFromStringsFuncs(name, funcMap, layout, read(path.Join("views", name)))
	}
	for name, view := range extra {
		r.AddFromStringsFuncs(name, funcMap, layout, view)
	}
	return r
}
