package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"siris-blog/api/handlers"
	"siris-blog/api/middleware"
	_ "siris-blog/docs"
	"siris-blog/web"
)

// Deps are the services the routes are wired to.
type Deps struct {
	Posts   handlers.PostReader
	Contact handlers.ContactSubmitter
	Site    handlers.Site
}

func New(deps Deps) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(web.Static()))

	// Health check
	r.GET("/health", handlers.HealthHandler())

	// Pages
	r.GET("/", handlers.HomeHandler(deps.Posts, deps.Site))
	r.GET("/home", handlers.HomeHandler(deps.Posts, deps.Site))
	r.GET("/post/:slug", handlers.PostPageHandler(deps.Posts, deps.Site))
	r.GET("/about", handlers.AboutHandler(deps.Site))
	r.GET("/contact", handlers.ContactFormHandler(deps.Site))
	r.POST("/contact", handlers.ContactSubmitHandler(deps.Contact, deps.Site))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/posts", handlers.ListPostsHandler(deps.Posts))
		api.GET("/posts/:slug", handlers.GetPostHandler(deps.Posts))
	}

	return r, nil
}

// NewHandler wraps engine with CORS for the given origins.
// Only GET requests are allowed cross-origin; the contact form is same-origin.
func NewHandler(engine http.Handler, allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id", "X-Span-Id"},
		MaxAge:         600,
	})
	return c.Handler(engine)
}
