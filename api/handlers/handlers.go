package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"siris-blog/dto"
	"siris-blog/logger"
	"siris-blog/models"
	"siris-blog/services"
	"siris-blog/trace"
)

// Plain-text bodies for the error responses of the HTML pages.
const (
	msgPostNotFound = "Post not found"
	msgInvalidInput = "Invalid input data"
)

// PostReader is the read side used by the page and API handlers.
// services.PostService implements it.
type PostReader interface {
	List(ctx context.Context) []models.Post
	FindBySlug(ctx context.Context, slug string) (models.Post, error)
}

// ContactSubmitter is satisfied by services.ContactService.
type ContactSubmitter interface {
	Submit(ctx context.Context, sub models.ContactSubmission) models.ContactOutcome
}

// Site carries the values every template receives.
type Site struct {
	OwnerName string
	// Now defaults to time.Now.
	Now func() time.Time
}

func (s Site) render(c *gin.Context, status int, name string, data gin.H) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	if data == nil {
		data = gin.H{}
	}
	data["CurrentYear"] = now().Year()
	data["MyName"] = s.OwnerName
	c.HTML(status, name, data)
}

// HomeHandler renders the post listing, newest first.
func HomeHandler(posts PostReader, site Site) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := posts.List(c.Request.Context())
		site.render(c, http.StatusOK, "index.html", gin.H{
			"Posts": items,
			"Page":  "home",
		})
	}
}

// PostPageHandler renders one post by slug, or answers 404 in plain text.
func PostPageHandler(posts PostReader, site Site) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := posts.FindBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if !errors.Is(err, services.ErrPostNotFound) {
				_ = c.Error(err)
			}
			c.String(http.StatusNotFound, msgPostNotFound)
			return
		}
		site.render(c, http.StatusOK, "post.html", gin.H{
			"Post": post,
			"Page": "post",
		})
	}
}

func AboutHandler(site Site) gin.HandlerFunc {
	return func(c *gin.Context) {
		site.render(c, http.StatusOK, "about.html", gin.H{"Page": "about"})
	}
}

// ContactFormHandler renders the empty contact form.
func ContactFormHandler(site Site) gin.HandlerFunc {
	return func(c *gin.Context) {
		site.render(c, http.StatusOK, "contact.html", gin.H{
			"Page":          "contact",
			"FormSubmitted": false,
		})
	}
}

// ContactSubmitHandler validates and relays the contact form.
// Invalid input answers 400 in plain text. A failed delivery still shows
// the confirmation; the failure is logged by the service.
func ContactSubmitHandler(contact ContactSubmitter, site Site) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sub models.ContactSubmission
		if err := c.ShouldBind(&sub); err != nil {
			logger.WarnWithFields("Validation failed for contact form submission.", logger.Fields{
				"error":      err.Error(),
				"request_id": trace.RequestIDFromContext(c.Request.Context()),
			})
			c.String(http.StatusBadRequest, msgInvalidInput)
			return
		}

		outcome := contact.Submit(c.Request.Context(), sub)
		if !outcome.Submitted() {
			c.String(http.StatusBadRequest, msgInvalidInput)
			return
		}

		c.Header("X-Contact-Outcome", outcome.String())
		site.render(c, http.StatusOK, "contact.html", gin.H{
			"Page":          "contact",
			"FormSubmitted": true,
		})
	}
}

// ListPostsHandler godoc
// @Summary      List posts
// @Description  List every post, newest first. The static fallback post is always included.
// @Tags         posts
// @Produce      json
// @Success      200  {array}  dto.PostDTO
// @Router       /posts [get]
func ListPostsHandler(posts PostReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := posts.List(c.Request.Context())
		c.JSON(http.StatusOK, dto.NewPostDTOs(items))
	}
}

// GetPostHandler godoc
// @Summary      Get post by slug
// @Description  Get a single post by its slug
// @Tags         posts
// @Param        slug  path  string  true  "Post slug"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /posts/{slug} [get]
func GetPostHandler(posts PostReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := posts.FindBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
			return
		}
		c.JSON(http.StatusOK, dto.NewPostDTO(post))
	}
}

// HealthHandler answers liveness probes. It does not touch the feed.
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponseDTO{Status: "ok"})
	}
}
