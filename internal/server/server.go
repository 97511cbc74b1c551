package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sabinstha/brewdash/internal/catalog"
	"github.com/sabinstha/brewdash/internal/session"
)

// Server exposes a small read-only HTTP surface for local dashboards: a
// health probe and a snapshot of the resolved catalog.
type Server struct {
	router   *gin.Engine
	resolver *catalog.Resolver
	session  session.Store
}

// NewServer creates a new server instance
func NewServer(resolver *catalog.Resolver, sess session.Store) *Server {
	router := gin.Default()

	server := &Server{
		router:   router,
		resolver: resolver,
		session:  sess,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.GET("/catalog", s.catalogSnapshot)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"service":       "brewdash",
		"authenticated": s.session.Authenticated(),
	})
}

// catalogSnapshot runs one full resolution and returns the joined view model.
func (s *Server) catalogSnapshot(c *gin.Context) {
	snap, err := s.resolver.Resolve(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status": "error",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
