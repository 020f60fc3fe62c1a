package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rafikey/rafikey-admin/internal/application"
	"github.com/rafikey/rafikey-admin/internal/domain/entity"
	"github.com/rafikey/rafikey-admin/internal/interface/middleware"
	"github.com/rafikey/rafikey-admin/pkg/views"
)

type DashboardHandler struct {
	Metrics *application.MetricsService
	Catalog *application.Catalog
	Logger  *logrus.Logger
}

func NewDashboardHandler(metrics *application.MetricsService, catalog *application.Catalog, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{Metrics: metrics, Catalog: catalog, Logger: logger}
}

type liveMetric struct {
	Label string
	Value application.MetricValue
}

type catalogCard struct {
	Entry entity.CatalogEntry
	Value *application.MetricValue
}

type analysisPage struct {
	Live       []liveMetric
	Categories []string
	Category   string
	Query      string
	Entries    []catalogCard
}

func (h *DashboardHandler) Home(c *gin.Context) {
	set := h.Metrics.Fetch(c.Request.Context(), middleware.ActorFrom(c), application.DashboardMetrics)
	renderPage(c, http.StatusOK, views.Dashboard, "Dashboard", application.BuildDashboard(set))
}

// Analysis shows every analysis metric live plus the filtered catalog.
func (h *DashboardHandler) Analysis(c *gin.Context) {
	set := h.Metrics.Fetch(c.Request.Context(), middleware.ActorFrom(c), application.AnalysisMetrics)

	p := analysisPage{
		Categories: h.Catalog.Categories(),
		Category:   c.DefaultQuery("category", application.AllCategories),
		Query:      c.Query("q"),
	}
	for _, d := range application.AnalysisMetrics {
		if d.Key == application.MetricGenderAnalysis {
			continue
		}
		p.Live = append(p.Live, liveMetric{Label: d.Label, Value: application.Display(set, d.Key)})
	}
	for _, e := range h.Catalog.Filter(p.Category, p.Query) {
		card := catalogCard{Entry: e}
		if e.Live != "" {
			v := application.Display(set, e.Live)
			card.Value = &v
		}
		p.Entries = append(p.Entries, card)
	}
	renderPage(c, http.StatusOK, views.Analysis, "Analysis", p)
}
