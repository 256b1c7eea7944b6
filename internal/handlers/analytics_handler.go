package handlers

import (
	"net/http"

	"fluxcrm/config"
	"fluxcrm/internal/analytics"
	"fluxcrm/internal/store"

	"github.com/gin-gonic/gin"
)

// newEngine wires the aggregation engine to the live collections. Engines
// are stateless, so building one per request is free.
func newEngine() *analytics.Engine {
	return analytics.NewEngine(
		store.NewLeadStore(config.DB),
		store.NewOrganizationStore(config.DB),
		store.NewStageLabels(config.DB),
		store.NewTypeLabels(config.DB),
		config.AvgScanSizeGB,
	)
}

// DashboardAnalyticsHandler returns the full dashboard report.
func DashboardAnalyticsHandler(c *gin.Context) {
	report, err := newEngine().Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard analytics"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GeographyAnalyticsHandler returns the per-state rollup.
func GeographyAnalyticsHandler(c *gin.Context) {
	report, err := newEngine().Geography(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute geography analytics"})
		return
	}
	c.JSON(http.StatusOK, report)
}
