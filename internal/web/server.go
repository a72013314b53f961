// Package web serves the schedule UI and APIs: the interactive grid
// pages, the upload endpoint and the three export sinks (xlsx, png, ics).
package web

import (
	"embed"
	"html/template"
	"net"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"archecal/internal/config"
	appLog "archecal/internal/log"
	"archecal/internal/schedule"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server wires the in-memory schedule store to the HTTP surface.
type Server struct {
	cfg    *config.Config
	store  *schedule.Store
	router *gin.Engine
}

// ginMode is set once; gin's mode is a package global and concurrent
// server construction in tests must not race on it.
var ginMode sync.Once

// NewServer constructs the server and registers all routes.
func NewServer(cfg *config.Config, store *schedule.Store) *Server {
	ginMode.Do(func() { gin.SetMode(gin.ReleaseMode) })

	s := &Server{
		cfg:    cfg,
		store:  store,
		router: gin.New(),
	}

	// Recovery is the top-level catch: unexpected faults become a 500
	// response instead of killing the session.
	s.router.Use(gin.Recovery())

	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.html"))
	s.router.SetHTMLTemplate(tmpl)

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/", s.handleIndex)
	s.router.GET("/grid/:variant", s.handleGridPage)

	api := s.router.Group("/api")
	{
		api.POST("/upload", s.handleUpload)
		api.GET("/grid/:variant", s.handleGridJSON)
		api.GET("/legend", s.handleLegend)
	}

	exp := s.router.Group("/export")
	{
		exp.GET("/:variant/xlsx", s.handleExportXLSX)
		exp.GET("/:variant/png", s.handleExportPNG)
		exp.GET("/:variant/ics", s.handleExportICS)
	}
}

// Run blocks serving on the configured listen address.
func (s *Server) Run() error {
	appLog.Info("starting HTTP server", "listen", "http://"+s.cfg.Listen)
	return s.router.Run(s.cfg.Listen)
}

// Handler exposes the router; tests drive it via httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// selfURL builds an URL the PNG capture can use to reach this very
// server. Wildcard listen hosts are replaced with loopback.
func (s *Server) selfURL(path string) string {
	host, port, err := net.SplitHostPort(s.cfg.Listen)
	if err != nil {
		return "http://" + s.cfg.Listen + path
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port) + path
}
