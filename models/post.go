package models

import (
	"strings"
	"time"

	"siris-blog/slug"
)

// Date layouts accepted on Post.Date.
const (
	// DateLayout is stamped on remote posts at fetch time, e.g. "Oct 16, 2026 09:05AM".
	DateLayout = "Jan 02, 2006 03:04PM"
	// ISODateLayout is used by the static fallback post.
	ISODateLayout = "2006-01-02"
)

// Post is one blog entry as rendered by the site.
// It has no identity beyond Title; the slug is derived on demand.
type Post struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Author   string `json:"author,omitempty"`
	Date     string `json:"date,omitempty"`
	Image    string `json:"image,omitempty"`
	Body     string `json:"body,omitempty"`
}

// Slug returns the URL identifier of the post.
func (p Post) Slug() string {
	return slug.Slugify(p.Title)
}

// Timestamp parses Date with DateLayout or ISODateLayout.
// ok is false when Date matches neither.
func (p Post) Timestamp() (t time.Time, ok bool) {
	d := strings.TrimSpace(p.Date)
	if d == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{DateLayout, ISODateLayout} {
		if parsed, err := time.Parse(layout, d); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
