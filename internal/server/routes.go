package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(NewEchoLogger(s.logger))
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:       300,
	}))

	e.GET("/health", s.healthHandler)

	var clientGroup = e.Group("/clients")
	clientGroup.GET("", s.ListClients)
	clientGroup.POST("", s.CreateClient)
	clientGroup.PUT("/:id", s.UpdateClient)
	clientGroup.DELETE("/:id", s.DeleteClient)

	// Allocations hang off their owning client; echo requires the same
	// param name for the shared segment, so every route uses :id.
	clientGroup.GET("/:id/allocations", s.ListAllocations)
	clientGroup.POST("/:id/allocations", s.CreateAllocation)
	clientGroup.PUT("/:id/allocations/:assetId", s.UpdateAllocation)
	clientGroup.DELETE("/:id/allocations/:assetId", s.DeleteAllocation)

	var assetGroup = e.Group("/assets")
	assetGroup.GET("", s.ListAssets)

	return e
}
