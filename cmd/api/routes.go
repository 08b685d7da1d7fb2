package main

import (
	"context"
	"net/http"
	"time"

	"estatehub/internal/middleware"
	"estatehub/pkg/cache"
	"estatehub/pkg/database"
	"estatehub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "estatehub/docs"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupSystemRoutes()
	a.setupHealthCheck()
	a.setupAPIRoutes()
}

// setupSystemRoutes configures documentation and operational endpoints
func (a *App) setupSystemRoutes() {
	a.Router.GET("/", a.SystemHandler.Root)
	a.Router.GET("/test", a.SystemHandler.Diagnostics)
	a.Router.GET("/schema", a.SystemHandler.Schema)

	// Serve Swagger UI
	a.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Expose Prometheus metrics endpoint
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupHealthCheck configures the health check endpoint
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := database.MongoClient.Ping(ctx, nil); err != nil {
			logger.GlobalLogger.Printf("MongoDB ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "MongoDB unavailable"})
			return
		}

		if _, err := cache.RedisClient.Ping(ctx).Result(); err != nil {
			logger.GlobalLogger.Printf("Redis ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// setupAPIRoutes configures the resource routes
func (a *App) setupAPIRoutes() {
	auth := a.Router.Group("/auth")
	{
		auth.POST("/register", a.AuthHandler.Register)
		auth.POST("/login", a.AuthHandler.Login)
	}

	properties := a.Router.Group("/properties")
	{
		properties.POST("", a.PropertyHandler.Create)
		properties.GET("", a.PropertyHandler.List)
		properties.GET("/:id", a.PropertyHandler.Get)
		properties.PUT("/:id", a.PropertyHandler.Update)
		properties.DELETE("/:id", a.PropertyHandler.Delete)
		properties.POST("/:id/verify", a.PropertyHandler.Verify)
	}

	messages := a.Router.Group("/messages")
	{
		messages.POST("", a.MessageHandler.Create)
		messages.GET("", a.MessageHandler.List)
	}

	payments := a.Router.Group("/payments")
	{
		payments.POST("", a.PaymentHandler.Create)
		payments.GET("", a.PaymentHandler.List)
		payments.POST("/:id/status", a.PaymentHandler.UpdateStatus)
	}

	admin := a.Router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(a.Config.JWT.Secret))
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/users", a.AdminHandler.ListUsers)
		admin.POST("/users/:id/status", a.AdminHandler.UpdateUserStatus)
	}
}
