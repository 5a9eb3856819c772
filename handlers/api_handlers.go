package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-server-go/airtable"
	"portfolio-server-go/catalog"
	"portfolio-server-go/middleware"
	"portfolio-server-go/models"
	"portfolio-server-go/portfolio"
)

// RosterSource lists the students on the roster
type RosterSource interface {
	GetAllStudents() ([]models.Student, error)
}

// APIHandler holds the dependencies for the HTTP handlers
type APIHandler struct {
	Views      catalog.StudentViewMap
	Roster     RosterSource
	Upstream   *airtable.Client
	Categories *catalog.CategoryTable
	// Source is what the portfolio page loads experiences through,
	// normally a ProxyClient pointed back at this server.
	Source portfolio.ExperienceSource
}

// NewAPIHandler creates a new APIHandler
func NewAPIHandler(views catalog.StudentViewMap, roster RosterSource, upstream *airtable.Client,
	categories *catalog.CategoryTable, source portfolio.ExperienceSource) *APIHandler {
	return &APIHandler{
		Views:      views,
		Roster:     roster,
		Upstream:   upstream,
		Categories: categories,
		Source:     source,
	}
}

// RegisterRoutes mounts every handler on router
func RegisterRoutes(router *gin.Engine, h *APIHandler) {
	router.Use(middleware.RequestID())

	api := router.Group("/api")
	{
		api.GET("/get-experiences", h.GetExperiences)
		api.GET("/students", h.GetStudents)
		api.GET("/students/:student/export.xlsx", h.ExportPortfolio)
		api.GET("/ping", PingHandler)
	}

	// Path the static site called before the proxy moved under /api
	router.GET("/.netlify/functions/get-experiences", h.GetExperiences)

	router.GET("/portfolio/:student", h.GetPortfolioPage)
}

// --- Roster Handlers ---

// GetStudents handles GET /api/students
func (h *APIHandler) GetStudents(c *gin.Context) {
	students, err := h.Roster.GetAllStudents()
	if err != nil {
		log.Printf("[%s] Error in GetStudents handler: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve students"})
		return
	}
	if students == nil {
		// Return empty list instead of null for JSON consistency
		c.JSON(http.StatusOK, []models.Student{})
		return
	}
	c.JSON(http.StatusOK, students)
}

// --- Ping Handler ---
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Pong!"})
}
