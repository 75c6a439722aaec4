package site

import (
	"crypto/subtle"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/bento-portfolio/internal/store"
	"github.com/Zachkp/bento-portfolio/internal/tracking"
)

const adminCookie = "admin_token"

// adminAuth redirects to the login page unless the request carries the
// current admin token.
func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !equal(token, s.adminToken) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (s *Server) clientHash(c *gin.Context) string {
	if s.tracker == nil {
		return "-"
	}
	return s.tracker.HashIP(c.ClientIP())
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin_login.html", gin.H{"title": "Admin Login"})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		userOK := equal(c.PostForm("username"), s.cfg.AdminUsername)
		passOK := equal(c.PostForm("password"), s.cfg.AdminPassword)
		if !userOK || !passOK {
			log.Printf("Failed admin login attempt from %s", s.clientHash(c))
			c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", gin.Mode() == gin.ReleaseMode, true)
		log.Printf("Admin login successful from %s", s.clientHash(c))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuth())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.analytics.Stats(c.Request.Context(), s.now())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
			"stats":    stats,
			"projects": s.catalog.Len(),
		})
	})

	// HTMX polls this to refresh the dashboard counters.
	admin.GET("/fragments/stats", func(c *gin.Context) {
		stats, err := s.analytics.Stats(c.Request.Context(), s.now())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.String(http.StatusInternalServerError, "Failed to load statistics")
			return
		}
		c.HTML(http.StatusOK, "admin_stats", gin.H{"stats": stats})
	})

	admin.GET("/visitors", func(c *gin.Context) {
		visits, err := s.analytics.RecentVisits(c.Request.Context(), 200)
		if err != nil {
			log.Printf("Error loading visitors: %v", err)
			c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}
		c.HTML(http.StatusOK, "admin_visitors.html", gin.H{"visitors": visits})
	})

	admin.GET("/visitors/:id", func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.HTML(http.StatusNotFound, "admin_error.html", gin.H{"error": "Visit not found"})
			return
		}
		visit, err := s.analytics.Visit(c.Request.Context(), id)
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.HTML(http.StatusNotFound, "admin_error.html", gin.H{"error": "Visit not found"})
			return
		case err != nil:
			log.Printf("Error loading visit %d: %v", id, err)
			c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
				"error": "Failed to load visit",
			})
			return
		}
		c.HTML(http.StatusOK, "admin_visit.html", gin.H{"visit": visit})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.analytics.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.analytics.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		log.Printf("Admin stats exported by %s", s.clientHash(c))
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := tracking.Prune(c.Request.Context(), s.analytics, s.cfg.VisitorRetention, s.now())
		if err != nil {
			log.Printf("Error cleaning up visitor data: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": n})
	})
}
