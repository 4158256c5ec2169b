package handlers

import (
	"net/http"

	"newsroom-cms/helper"
	"newsroom-cms/middleware"

	"github.com/gin-gonic/gin"
)

// Router bundles what SetupRouter needs to mount the API.
type Router struct {
	Articles  *ArticleHandler
	Frontpage *FrontpageHandler
	Sections  *SectionHandler
	Tags      *TagHandler
	Images    *ImageHandler
	Helper    *helper.HTTPHelper
	JWTSecret []byte
}

func SetupRouter(r Router) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), middleware.CORS())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/frontpage", r.Frontpage.GetFrontpage)
		v1.GET("/sections", r.Sections.GetSections)
		v1.GET("/sections/frontpages", r.Frontpage.GetSectionFrontpages)
		v1.GET("/sections/:key/frontpage", r.Frontpage.GetSectionFrontpage)
		v1.GET("/topics", r.Tags.GetTopics)
		v1.GET("/topics/:id/articles", r.Frontpage.GetTopicArticles)
		v1.GET("/tags", r.Tags.GetTags)
		v1.GET("/tags/:id", r.Tags.GetTag)
		v1.GET("/people", r.Sections.GetPeople)
		v1.GET("/articles/:id", r.Articles.GetArticle)
		v1.GET("/articles/:id/revisions", r.Articles.GetRevisions)
		v1.GET("/articles/:id/previous", r.Articles.GetPreviousRevision)

		// Editorial routes
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(r.JWTSecret, r.Helper))
		{
			protected.POST("/articles", r.Articles.CreateArticle)
			protected.PUT("/articles/:id", r.Articles.SaveArticle)
			protected.POST("/sections", r.Sections.CreateSection)
			protected.POST("/tags", r.Tags.CreateTag)
			protected.POST("/topics", r.Tags.CreateTopic)
			protected.POST("/people", r.Sections.CreatePerson)
			protected.POST("/images", r.Images.CreateImage)

			destructive := protected.Group("")
			destructive.Use(middleware.RequireRole(r.Helper, "admin", "editor"))
			{
				destructive.DELETE("/articles/:id", r.Articles.DeleteArticle)
				destructive.DELETE("/images/:id", r.Images.DeleteImage)
			}
		}
	}

	return router
}
