package main

import (
	"net/http"

	"megaferia-backend/internal/shared/middleware"
	"megaferia-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupPersonRoutes(v1, c)
		setupPublisherRoutes(v1, c)
		setupStandRoutes(v1, c)
		setupBookRoutes(v1, c)
	}

	return router
}

// ========================================
// PERSON ROUTES
// ========================================
func setupPersonRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.POST("/authors", c.PersonHandler.CreateAuthor)
	v1.GET("/authors", c.PersonHandler.ListAuthors)
	v1.POST("/managers", c.PersonHandler.CreateManager)
	v1.GET("/managers", c.PersonHandler.ListManagers)
	v1.POST("/narrators", c.PersonHandler.CreateNarrator)
	v1.GET("/narrators", c.PersonHandler.ListNarrators)
}

// ========================================
// PUBLISHER ROUTES
// ========================================
func setupPublisherRoutes(v1 *gin.RouterGroup, c *container.Container) {
	publishers := v1.Group("/publishers")
	{
		publishers.POST("", c.PublisherHandler.CreatePublisher)
		publishers.GET("", c.PublisherHandler.ListPublishers)
	}
}

// ========================================
// STAND ROUTES
// ========================================
func setupStandRoutes(v1 *gin.RouterGroup, c *container.Container) {
	stands := v1.Group("/stands")
	{
		stands.POST("", c.StandHandler.CreateStand)
		stands.GET("", c.StandHandler.ListStands)
		stands.POST("/purchase", c.StandHandler.BuyStands)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.POST("/printed", c.BookHandler.CreatePrintedBook)
		books.POST("/digital", c.BookHandler.CreateDigitalBook)
		books.POST("/audio", c.BookHandler.CreateAudiobook)
		books.GET("", c.BookHandler.ListBooks)
		books.GET("/format", c.BookHandler.ListBooksByFormat)
		books.GET("/by-author/:id", c.BookHandler.ListBooksByAuthor)
		books.GET("/top-authors", c.BookHandler.ListAuthorsWithMostPublishers)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := gin.H{
			"status":      "ok",
			"app":         c.Config.App.Name,
			"version":     c.Config.App.Version,
			"change_feed": c.Redis != nil,
		}

		if c.Redis != nil {
			if err := c.Redis.Client.Ping(ctx.Request.Context()).Err(); err != nil {
				status["status"] = "degraded"
				status["change_feed_error"] = err.Error()
				ctx.JSON(http.StatusServiceUnavailable, status)
				return
			}
		}

		ctx.JSON(http.StatusOK, status)
	}
}
