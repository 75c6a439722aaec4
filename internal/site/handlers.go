package site

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/bento-portfolio/internal/catalog"
	"github.com/Zachkp/bento-portfolio/internal/motion"
	"github.com/Zachkp/bento-portfolio/internal/nav"
)

// backParam is set by the detail page's back and close controls. The home
// page reads it once to skip an entrance animation the visitor already saw.
const backParam = "back"

func (s *Server) page(path string, data gin.H) gin.H {
	data["siteTitle"] = s.cfg.SiteTitle
	data["githubURL"] = s.cfg.GitHubURL
	data["menu"] = nav.Mark(s.menu, path)
	return data
}

// GET /
func (s *Server) home(c *gin.Context) {
	back := c.Query(backParam) == "1"
	c.HTML(http.StatusOK, "home.html", s.page("/", gin.H{
		"projects":      s.catalog.All(),
		"schedule":      motion.Home(back),
		"heroBadge":     HeroBadge,
		"heroText":      HeroDescription,
		"projectsIntro": ProjectsIntro,
		"footerNote":    FooterNote,
	}))
}

// GET /project/:id
func (s *Server) projectDetail(c *gin.Context) {
	id := c.Param("id")
	project, ok := s.catalog.Lookup(id)
	if !ok {
		s.renderNotFound(c, "Project Not Found")
		return
	}
	c.HTML(http.StatusOK, "project.html", s.page(c.Request.URL.Path, gin.H{
		"project":     project,
		"backURL":     "/?" + backParam + "=1",
		"noLinksNote": NoLinksNote,
	}))
}

func (s *Server) notFound(c *gin.Context) {
	s.renderNotFound(c, "Page Not Found")
}

func (s *Server) renderNotFound(c *gin.Context, heading string) {
	c.HTML(http.StatusNotFound, "not_found.html", s.page(c.Request.URL.Path, gin.H{
		"heading": heading,
	}))
}

// GET /api/projects
func (s *Server) listProjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"projects": s.catalog.All()})
}

// GET /api/projects/:id
func (s *Server) getProject(c *gin.Context) {
	project, ok := s.catalog.Lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, projectJSON(project))
}

type projectResponse struct {
	catalog.Project
	SizeClasses string `json:"size_classes"`
}

func projectJSON(p catalog.Project) projectResponse {
	return projectResponse{Project: p, SizeClasses: p.SizeClasses()}
}

// GET /api/health
func (s *Server) health(c *gin.Context) {
	status := gin.H{"status": "ok", "projects": s.catalog.Len()}
	if s.analytics != nil {
		if err := s.analytics.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, status)
}
