package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-server-go/middleware"
)

// resolveView applies the proxy's checks in order: token configured, student
// given, student known. On failure it writes the error response and returns
// false without any outbound call.
func (h *APIHandler) resolveView(c *gin.Context, student string) (string, bool) {
	if !h.Upstream.Configured() {
		log.Printf("[%s] Airtable token is not configured", middleware.GetRequestID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API token not configured"})
		return "", false
	}
	if student == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Student name required"})
		return "", false
	}
	view, ok := h.Views.Lookup(student)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid student name"})
		return "", false
	}
	return view, true
}

// GetExperiences handles GET /api/get-experiences?student=<name>
//
// It forwards one authenticated read of the student's view and relays the
// upstream JSON unchanged.
func (h *APIHandler) GetExperiences(c *gin.Context) {
	view, ok := h.resolveView(c, c.Query("student"))
	if !ok {
		return
	}

	body, err := h.Upstream.ListExperiences(c.Request.Context(), view)
	if err != nil {
		log.Printf("[%s] Error fetching from Airtable (view %q): %v", middleware.GetRequestID(c), view, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch experiences",
			"message": err.Error(),
		})
		return
	}

	c.Header("Access-Control-Allow-Origin", "*")
	c.Data(http.StatusOK, "application/json", body)
}
