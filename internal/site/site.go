// Package site serves the portfolio pages, the JSON API and the admin dashboard.
package site

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/bento-portfolio/internal/catalog"
	"github.com/Zachkp/bento-portfolio/internal/config"
	"github.com/Zachkp/bento-portfolio/internal/nav"
	"github.com/Zachkp/bento-portfolio/internal/store"
	"github.com/Zachkp/bento-portfolio/internal/tracking"
)

// Analytics is the part of the store the admin dashboard reads and prunes.
type Analytics interface {
	Stats(ctx context.Context, now time.Time) (*store.Stats, error)
	RecentVisits(ctx context.Context, limit int) ([]store.Visit, error)
	Visit(ctx context.Context, id int64) (store.Visit, error)
	DeleteVisitsBefore(ctx context.Context, cutoff time.Time) (int64, error)
	Ping(ctx context.Context) error
}

// Options wires the router. Analytics and Tracker may be nil, in which case
// visits are not recorded and the admin routes are not mounted.
type Options struct {
	Config    config.Config
	Catalog   *catalog.Catalog
	Analytics Analytics
	Tracker   *tracking.Tracker
}

// Server holds the state shared by the handlers.
type Server struct {
	cfg        config.Config
	catalog    *catalog.Catalog
	menu       []nav.Item
	analytics  Analytics
	tracker    *tracking.Tracker
	adminToken string
	now        func() time.Time
}

// NewRouter builds the gin engine serving every route.
func NewRouter(opts Options) (*gin.Engine, error) {
	if opts.Catalog == nil {
		return nil, fmt.Errorf("site: no catalog")
	}
	s := &Server{
		cfg:       opts.Config,
		catalog:   opts.Catalog,
		menu:      nav.Menu(opts.Catalog),
		analytics: opts.Analytics,
		tracker:   opts.Tracker,
		now:       time.Now,
	}

	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, fmt.Errorf("site: static assets: %w", err)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), requestID())
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	pages := r.Group("/")
	if s.tracker != nil {
		pages.Use(s.tracker.Middleware())
	}
	pages.GET("/", s.home)
	pages.GET("/project/:id", s.projectDetail)

	api := r.Group("/api")
	api.GET("/projects", s.listProjects)
	api.GET("/projects/:id", s.getProject)
	api.GET("/health", s.health)

	if s.analytics != nil && s.cfg.AdminEnabled() {
		s.adminToken = tracking.RandomToken()
		s.setupAdminRoutes(r)
		log.Printf("Admin access available at: /admin/login")
	} else {
		log.Printf("Admin dashboard disabled: set ADMIN_USERNAME and ADMIN_PASSWORD and enable tracking")
	}

	r.NoRoute(s.notFound)
	return r, nil
}

// requestID tags every response with an X-Request-ID, reusing the caller's.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
