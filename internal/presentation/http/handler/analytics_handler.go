package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kibetdev/salespulse-api/internal/application/service"
	"github.com/kibetdev/salespulse-api/internal/domain/enum"
	"github.com/kibetdev/salespulse-api/internal/presentation/http/dto/request"
	"github.com/kibetdev/salespulse-api/internal/presentation/http/dto/response"
)

// AnalyticsHandler handles analytics-related HTTP requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetSnapshot handles computing the analytics snapshot for a period
func (h *AnalyticsHandler) GetSnapshot(c *gin.Context) {
	var req request.AnalyticsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid analytics query parameters")
		return
	}

	kind, start, end := resolvePeriodQuery(&req)

	snapshot, err := h.analyticsService.GetSnapshot(c.Request.Context(), kind, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Analytics snapshot computed successfully", snapshot)
}

// GetTopProducts handles ranking the best-selling products of a period
func (h *AnalyticsHandler) GetTopProducts(c *gin.Context) {
	var req request.AnalyticsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid analytics query parameters")
		return
	}

	kind, start, end := resolvePeriodQuery(&req)

	products, err := h.analyticsService.GetTopProducts(c.Request.Context(), kind, start, end, req.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top products retrieved successfully", products)
}

// resolvePeriodQuery maps the query parameters to a period kind and
// optional custom bounds. An unknown period name falls back to month; a
// date-only end bound is widened to the end of its day.
func resolvePeriodQuery(req *request.AnalyticsRequest) (enum.PeriodKind, *time.Time, *time.Time) {
	kind, _ := enum.ParsePeriodKind(req.Period)
	if kind != enum.PeriodCustom {
		return kind, nil, nil
	}

	start := parseTimeParam(req.Start)
	end := parseTimeParam(req.End)
	if end != nil {
		e := endOfDay(*end)
		end = &e
	}
	return kind, start, end
}
