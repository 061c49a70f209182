package feeder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Record is one post-like entry as delivered by a feed, before normalization.
// Empty strings mean the field was absent.
type Record struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Image    string `json:"image"`
	Body     string `json:"body"`
}

// Source fetches raw records from one remote feed.
type Source interface {
	Fetch(ctx context.Context) ([]Record, error)
	// Key identifies the feed for caching.
	Key() string
}

// JSONSource reads a JSON array of post objects over HTTP GET.
type JSONSource struct {
	URL    string
	Client *http.Client
}

func NewJSONSource(url string, client *http.Client) *JSONSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &JSONSource{URL: url, Client: client}
}

func (s *JSONSource) Key() string { return "json:" + s.URL }

func (s *JSONSource) Fetch(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("feed returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	return records, nil
}
