package services

import (
	"context"
	"errors"
	"sort"

	"siris-blog/models"
	"siris-blog/slug"
)

// ErrPostNotFound is returned when no post has the requested slug.
var ErrPostNotFound = errors.New("post not found")

// PostFetcher yields the current set of posts. feeder.Aggregator implements it.
type PostFetcher interface {
	FetchPosts(ctx context.Context) []models.Post
}

// PostService serves the listing and lookup operations over a PostFetcher.
// Every call re-fetches; nothing is kept between requests.
type PostService struct {
	fetcher PostFetcher
}

func NewPostService(fetcher PostFetcher) *PostService {
	return &PostService{fetcher: fetcher}
}

// List returns the posts newest first.
// Posts with unparsable dates go last; ties keep fetch order.
func (s *PostService) List(ctx context.Context) []models.Post {
	posts := s.fetcher.FetchPosts(ctx)
	SortByDateDesc(posts)
	return posts
}

// FindBySlug returns the first post, in fetch order, whose title slugifies to slugStr.
func (s *PostService) FindBySlug(ctx context.Context, slugStr string) (models.Post, error) {
	for _, p := range s.fetcher.FetchPosts(ctx) {
		if slug.Slugify(p.Title) == slugStr {
			return p, nil
		}
	}
	return models.Post{}, ErrPostNotFound
}

// SortByDateDesc sorts posts in place by parsed date, newest first.
func SortByDateDesc(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		ti, okI := posts[i].Timestamp()
		tj, okJ := posts[j].Timestamp()
		switch {
		case okI && okJ:
			return ti.After(tj)
		case okI:
			return true
		default:
			return false
		}
	})
}
