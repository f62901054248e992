// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moneywise/backend/internal/application/usecase/report"
	domainerror "github.com/moneywise/backend/internal/domain/error"
	"github.com/moneywise/backend/internal/integration/entrypoint/dto"
	"github.com/moneywise/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles report chart endpoints.
type ReportController struct {
	chartsUseCase *report.GetChartsUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(chartsUseCase *report.GetChartsUseCase) *ReportController {
	return &ReportController{
		chartsUseCase: chartsUseCase,
	}
}

// Charts handles GET /reports/charts requests. The optional start_date and
// end_date filter applies to the category rollup only; the balance evolution
// always covers the rolling window given by window_months.
func (c *ReportController) Charts(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := report.GetChartsInput{
		UserID:       userID,
		WindowMonths: report.DefaultWindowMonths,
		Now:          time.Now().UTC(),
	}

	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.StartDate = &startDate
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		input.EndDate = &endDate
	}

	if windowStr := ctx.Query("window_months"); windowStr != "" {
		window, err := strconv.Atoi(windowStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "window_months must be an integer",
				Code:  string(domainerror.ErrCodeInvalidWindowMonths),
			})
			return
		}
		input.WindowMonths = window
	}

	output, err := c.chartsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	response := dto.ToChartsResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		statusCode := c.getStatusCodeForReportError(rptErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidWindowMonths:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
