package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/M-Vasconez/fin/internal/apperrors"
	"github.com/M-Vasconez/fin/internal/core/domain"
	portssvc "github.com/M-Vasconez/fin/internal/core/ports/services"
	"github.com/M-Vasconez/fin/internal/dto"
	"github.com/M-Vasconez/fin/internal/middleware"
)

const queryDateLayout = "2006-01-02"

// reportingHandler handles HTTP requests for summaries, breakdowns, trends
// and insights.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the reporting endpoints.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/categories", h.getCategories)
		reports.GET("/trends", h.getTrends)
		reports.GET("/insights", h.getInsights)
	}
}

// registerTransactionRoutes registers the read-only transaction listing,
// which shares the reporting range filters.
func registerTransactionRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)
	rg.GET("/transactions", h.listTransactions)
}

// resolveReportRange binds the shared range query parameters and resolves
// them into a concrete window. It writes the error response itself and
// reports false when the caller should stop.
func (h *reportingHandler) resolveReportRange(c *gin.Context, params *dto.ReportParams) (portssvc.ReportRange, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := c.ShouldBindQuery(params); err != nil {
		logger.Warn("Failed to bind reporting query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return portssvc.ReportRange{}, false
	}

	var start, end time.Time
	if params.Filter == domain.RangeCustomRange {
		var err error
		if start, err = time.Parse(queryDateLayout, params.StartDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate; expected YYYY-MM-DD"})
			return portssvc.ReportRange{}, false
		}
		if end, err = time.Parse(queryDateLayout, params.EndDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate; expected YYYY-MM-DD"})
			return portssvc.ReportRange{}, false
		}
	}

	r, err := h.reportingService.ResolveRange(params.Filter, start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to resolve reporting range", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve reporting range"})
		}
		return portssvc.ReportRange{}, false
	}
	return r, true
}

func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReportParams
	r, ok := h.resolveReportRange(c, &params)
	if !ok {
		return
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), r)
	if err != nil {
		logger.Error("Failed to compute summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{
		Filter:  params.Filter,
		Start:   r.Start,
		End:     r.End,
		Summary: *summary,
	})
}

func (h *reportingHandler) getCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.CategoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind category query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	r, ok := h.resolveReportRange(c, &params.ReportParams)
	if !ok {
		return
	}

	categories, err := h.reportingService.Categories(c.Request.Context(), r, params.Type)
	if err != nil {
		logger.Error("Failed to compute category breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute category breakdown"})
		return
	}

	c.JSON(http.StatusOK, dto.CategoryBreakdownResponse{
		Type:       params.Type,
		Categories: categories,
	})
}

func (h *reportingHandler) getTrends(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReportParams
	r, ok := h.resolveReportRange(c, &params)
	if !ok {
		return
	}

	points, err := h.reportingService.Trends(c.Request.Context(), r, params.Filter)
	if err != nil {
		logger.Error("Failed to compute trends", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute trends"})
		return
	}

	c.JSON(http.StatusOK, dto.TrendsResponse{Points: points})
}

func (h *reportingHandler) getInsights(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReportParams
	r, ok := h.resolveReportRange(c, &params)
	if !ok {
		return
	}

	insights, err := h.reportingService.Insights(c.Request.Context(), r)
	if err != nil {
		logger.Error("Failed to compute insights", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute insights"})
		return
	}

	c.JSON(http.StatusOK, dto.InsightsResponse{Insights: insights})
}

func (h *reportingHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReportParams
	r, ok := h.resolveReportRange(c, &params)
	if !ok {
		return
	}

	transactions, err := h.reportingService.ListTransactions(c.Request.Context(), r)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(transactions))
}
