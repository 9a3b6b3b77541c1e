package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/cekel_duit/internal/core/domain"
	portssvc "github.com/SscSPs/cekel_duit/internal/core/ports/services"
	"github.com/SscSPs/cekel_duit/internal/dto"
	"github.com/SscSPs/cekel_duit/internal/middleware"
	"github.com/SscSPs/cekel_duit/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// reportingHandler handles HTTP requests for derived views
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{reportingService: rs, now: time.Now}
}

// registerReportingRoutes registers the report, home and category routes
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvc) {
	h := newReportingHandler(rs)

	reports := rg.Group("/reports")
	{
		reports.GET("/balance", h.getBalance)
		reports.GET("/period", h.getPeriodReport)
	}
	rg.GET("/home", h.getHome)
	rg.GET("/categories", h.getCategories)
}

func toBalanceResponse(balance decimal.Decimal) dto.BalanceResponse {
	return dto.BalanceResponse{Balance: balance, BalanceFormatted: utils.FormatRupiah(balance)}
}

// getBalance godoc
// @Summary Current balance
// @Description Total inflow minus total outflow over every transaction
// @Tags reports
// @Produce json
// @Success 200 {object} dto.BalanceResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to calculate balance"
// @Router /reports/balance [get]
func (h *reportingHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	balance, err := h.reportingService.Balance(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to calculate balance")
		return
	}
	c.JSON(http.StatusOK, toBalanceResponse(balance))
}

// getPeriodReport godoc
// @Summary Period report
// @Description Totals, category breakdown and daily series for the last 7 or 30 days
// @Tags reports
// @Produce json
// @Param period query string false "week or month" Enums(week, month) default(month)
// @Success 200 {object} dto.PeriodReportResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid period"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Router /reports/period [get]
func (h *reportingHandler) getPeriodReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PeriodReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query params for PeriodReport")
		return
	}

	logger = logger.With(slog.String("period", params.Period))
	report, err := h.reportingService.PeriodReport(c.Request.Context(), domain.Period(params.Period), h.now())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate report")
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodReportResponse(*report))
}

// getHome godoc
// @Summary Home summary
// @Description Greeting name, balance, the last five transactions and a motivational quote
// @Tags home
// @Produce json
// @Success 200 {object} dto.HomeResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to load home summary"
// @Router /home [get]
func (h *reportingHandler) getHome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	home, err := h.reportingService.HomeSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load home summary")
		return
	}
	c.JSON(http.StatusOK, dto.HomeResponse{
		Profile: dto.ToProfileResponse(home.Profile),
		Balance: toBalanceResponse(home.Balance),
		Recent:  dto.ToTransactionResponses(home.Recent),
		Quote:   home.Quote,
	})
}

// getCategories godoc
// @Summary Category tables
// @Tags home
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /categories [get]
func (h *reportingHandler) getCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Expense: domain.CategoriesFor(domain.Outflow),
		Income:  domain.CategoriesFor(domain.Inflow),
	})
}
