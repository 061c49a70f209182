package web

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siris-blog/models"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"index.html", "post.html", "about.html", "contact.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestIndexRendersSlugLinks(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "index.html", map[string]any{
		"Posts":       []models.Post{{Title: "All About Llamas", Image: "llama.jpg", Author: "Mojo Jojo"}},
		"Page":        "home",
		"MyName":      `Gavin "Siris" Martin`,
		"CurrentYear": 2026,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `href="/post/all-about-llamas"`)
	assert.Contains(t, out, `src="/static/assets/img/llama.jpg"`)
	assert.Contains(t, out, "2026")
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "/static/assets/img/heart2.jpg", ImageURL("heart2.jpg"))
	assert.Equal(t, "/static/assets/img/x.jpg", ImageURL("/x.jpg"))
	assert.Equal(t, "https://cdn.example.com/a.png", ImageURL("https://cdn.example.com/a.png"))
}

func TestStaticContainsStylesheet(t *testing.T) {
	_, err := fs.Stat(Static(), "css/styles.css")
	assert.NoError(t, err)
}
