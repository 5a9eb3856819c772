package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"

	"portfolio-server-go/airtable"
	"portfolio-server-go/catalog"
	"portfolio-server-go/export"
	"portfolio-server-go/middleware"
	"portfolio-server-go/portfolio"
	"portfolio-server-go/view"
)

var statLabels = []view.StatLabel{
	{ID: portfolio.StatExperiencesID, Label: "Experiences"},
	{ID: portfolio.StatHoursID, Label: "Hours"},
	{ID: portfolio.StatSkillsID, Label: "Skills"},
}

// GetPortfolioPage handles GET /portfolio/:student
//
// The timeline is built by the portfolio loader against an in-memory page;
// load failures show up inside the page, so this always answers 200.
func (h *APIHandler) GetPortfolioPage(c *gin.Context) {
	student := c.Param("student")
	locale := portfolio.ResolveLocale(c.Request)

	ids := make([]string, len(statLabels))
	for i, s := range statLabels {
		ids[i] = s.ID
	}
	doc := view.NewDocument([]string{portfolio.DefaultTimelineSelector}, ids)

	loader := portfolio.NewLoader(student, h.Source, doc, portfolio.NewRenderer(h.Categories, locale))
	loader.Init(c.Request.Context())

	timeline, _ := doc.HTML(portfolio.DefaultTimelineSelector)
	stats := make(map[string]string, len(ids))
	for _, id := range ids {
		stats[id], _ = doc.Text(id)
	}

	var buf bytes.Buffer
	err := view.RenderPage(&buf, view.PageData{
		Lang:      locale.Tag.String(),
		Student:   cases.Title(locale.Tag).String(catalog.NormalizeStudent(student)),
		Timeline:  template.HTML(timeline),
		Stats:     stats,
		StatOrder: statLabels,
		Reveal:    doc.Revealed(),
	})
	if err != nil {
		log.Printf("[%s] Error rendering portfolio page for %s: %v", middleware.GetRequestID(c), student, err)
		c.String(http.StatusInternalServerError, "Failed to render portfolio")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// ExportPortfolio handles GET /api/students/:student/export.xlsx
func (h *APIHandler) ExportPortfolio(c *gin.Context) {
	student := catalog.NormalizeStudent(c.Param("student"))
	viewName, ok := h.resolveView(c, student)
	if !ok {
		return
	}

	body, err := h.Upstream.ListExperiences(c.Request.Context(), viewName)
	if err != nil {
		log.Printf("[%s] Error fetching from Airtable for export (view %q): %v", middleware.GetRequestID(c), viewName, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch experiences",
			"message": err.Error(),
		})
		return
	}
	records, err := airtable.DecodeRecords(body)
	if err != nil {
		log.Printf("[%s] Error decoding experiences for export: %v", middleware.GetRequestID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read experiences", "message": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, student, records); err != nil {
		log.Printf("[%s] Error writing workbook for %s: %v", middleware.GetRequestID(c), student, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export experiences"})
		return
	}

	log.Printf("[%s] Exported %d experiences for %s", middleware.GetRequestID(c), len(records), student)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-portfolio.xlsx"`, student))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
