// Package web embeds the HTML templates and static assets of the site.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"

	"siris-blog/slug"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// ImagePrefix is where post illustrations are served from.
const ImagePrefix = "/static/assets/img/"

// FuncMap holds the helpers available to every template.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"slugify":  slug.Slugify,
		"imageURL": ImageURL,
	}
}

// ImageURL maps a post image to a URL. Absolute http(s) URLs pass through.
func ImageURL(name string) string {
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return name
	}
	return ImagePrefix + strings.TrimPrefix(name, "/")
}

// Templates parses every embedded page and partial.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}

// Static returns the static asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
