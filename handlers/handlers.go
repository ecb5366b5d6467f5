package handlers

import (
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"retail-analytics/helpers"
	"retail-analytics/models"
	"retail-analytics/services"
	ws "retail-analytics/websocket"
)

// AnalyticsHandler exposes the aggregation engine over HTTP.
type AnalyticsHandler struct {
	service *services.AnalyticsService
	hub     *ws.Hub
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(service *services.AnalyticsService, hub *ws.Hub) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		hub:     hub,
	}
}

// HealthCheck returns service health status and cache statistics.
func (h *AnalyticsHandler) HealthCheck(c *gin.Context) {
	records, cached, computations := h.service.Stats()
	connectedClients := 0
	if h.hub != nil {
		connectedClients, _ = h.hub.GetStats()
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:           "healthy",
		Service:          "retail-analytics",
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
		Records:          records,
		AnalyticsCached:  cached,
		Computations:     computations,
		ConnectedClients: connectedClients,
	})
}

// GetRetailers returns the per-retailer analytical views.
func (h *AnalyticsHandler) GetRetailers(c *gin.Context) {
	profiles := h.service.GetRetailerProfiles()
	c.JSON(http.StatusOK, models.RetailersResponse{
		Count:     len(profiles),
		Retailers: profiles,
	})
}

// GetProducts returns the full per-product analytical views, waiting
// for the shared computation when the cache is cold.
func (h *AnalyticsHandler) GetProducts(c *gin.Context) {
	products, err := h.service.GetProductAnalytics(c.Request.Context())
	if err != nil {
		log.Errorf("Product analytics request aborted: %v", err)
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "Request cancelled before analytics finished"})
		return
	}

	c.JSON(http.StatusOK, models.ProductsResponse{
		Count:    len(products),
		Partial:  false,
		Products: products,
	})
}

// GetProductsLite returns the fast partial view for initial rendering.
func (h *AnalyticsHandler) GetProductsLite(c *gin.Context) {
	products, partial := h.service.GetProductAnalyticsLite()
	c.JSON(http.StatusOK, models.ProductsResponse{
		Count:    len(products),
		Partial:  partial,
		Products: products,
	})
}

// GetFilters returns the distinct value sets for selection controls.
func (h *AnalyticsHandler) GetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetFilterOptions())
}

// Export serves the raw record set. CSV is serialized here; any other
// supported format gets the raw records as JSON for the out-of-scope
// serializer.
func (h *AnalyticsHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	records := h.service.ExportData()

	switch format {
	case "csv":
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", "attachment; filename=order-lines.csv")
		c.Status(http.StatusOK)
		if err := helpers.WriteRecordsCSV(c.Writer, records); err != nil {
			log.Errorf("Failed to write CSV export: %v", err)
		}
	case "xlsx":
		c.JSON(http.StatusOK, models.ExportResponse{
			Format:  format,
			Count:   len(records),
			Records: records,
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported export format: " + format})
	}
}
