package handler

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blog-engagement/internal/middleware"
)

// RouterConfig holds the handlers and settings used to build the router.
type RouterConfig struct {
	BasePath    string
	CORSOrigins []string

	Articles   *ArticleHandler
	Engagement *EngagementHandler
	Health     *HealthHandler
}

// unmeteredPaths are excluded from request metrics and access logs.
var unmeteredPaths = []string{"/health", "/ready", "/live", "/metrics"}

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(cfg.CORSOrigins))
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics(unmeteredPaths...))
	router.Use(middleware.DeviceID())
	router.Use(middleware.AccessLog(unmeteredPaths...))

	// Health and metrics endpoints
	router.GET("/health", cfg.Health.Health)
	router.GET("/ready", cfg.Health.Ready)
	router.GET("/live", cfg.Health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group(cfg.BasePath)
	{
		articles := api.Group("/articles")
		{
			articles.GET("/", cfg.Articles.ListArticles)
			articles.POST("/", cfg.Articles.CreateArticle)
			articles.GET("/top", cfg.Articles.TopArticles)
			articles.GET("/:id", cfg.Articles.GetArticle)
			articles.GET("/:id/stats", cfg.Engagement.Stats)
			articles.GET("/:id/like", cfg.Engagement.LikeStatus)
			articles.POST("/:id/like", cfg.Engagement.ToggleLike)
			articles.POST("/:id/share", cfg.Engagement.RecordShare)
			articles.GET("/:id/comments", cfg.Engagement.ListComments)
			articles.POST("/:id/comments", cfg.Engagement.PostComment)
		}
	}

	// Older clients of the news API call these paths without the base path
	news := router.Group("/api/news")
	{
		news.POST("/store", cfg.Articles.StoreNews)
		news.GET("/edited", cfg.Articles.ListNews)
		news.GET("/edited/:id", cfg.Articles.GetNews)
	}

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader, middleware.DeviceIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader, NextPageTokenHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
