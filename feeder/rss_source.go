package feeder

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"

	"siris-blog/models"
)

// RSSSource reads an RSS or Atom feed and maps its items onto records.
type RSSSource struct {
	URL    string
	Client *http.Client
}

func NewRSSSource(url string, client *http.Client) *RSSSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &RSSSource{URL: url, Client: client}
}

func (s *RSSSource) Key() string { return "rss:" + s.URL }

func (s *RSSSource) Fetch(ctx context.Context) ([]Record, error) {
	fp := gofeed.NewParser()
	fp.Client = s.Client

	feed, err := fp.ParseURLWithContext(s.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse rss feed: %w", err)
	}

	records := make([]Record, 0, len(feed.Items))
	for _, item := range feed.Items {
		records = append(records, recordFromItem(item))
	}
	return records, nil
}

func recordFromItem(item *gofeed.Item) Record {
	rec := Record{
		Title:    strings.TrimSpace(item.Title),
		Subtitle: htmlToText(item.Description),
	}

	if item.Author != nil {
		rec.Author = strings.TrimSpace(item.Author.Name)
	} else if len(item.Authors) > 0 && item.Authors[0] != nil {
		rec.Author = strings.TrimSpace(item.Authors[0].Name)
	}

	if item.PublishedParsed != nil {
		rec.Date = item.PublishedParsed.Format(models.DateLayout)
	} else if item.UpdatedParsed != nil {
		rec.Date = item.UpdatedParsed.Format(models.DateLayout)
	}

	if item.Image != nil {
		rec.Image = item.Image.URL
	} else {
		for _, enc := range item.Enclosures {
			if enc != nil && strings.HasPrefix(enc.Type, "image/") {
				rec.Image = enc.URL
				break
			}
		}
	}

	body := item.Content
	if strings.TrimSpace(body) == "" {
		body = item.Description
	}
	rec.Body = htmlToText(body)
	return rec
}
