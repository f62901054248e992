// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moneywise/backend/internal/application/usecase/summary"
	domainerror "github.com/moneywise/backend/internal/domain/error"
	"github.com/moneywise/backend/internal/integration/entrypoint/dto"
	"github.com/moneywise/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles the dashboard summary endpoint.
type DashboardController struct {
	summaryUseCase *summary.GetSummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(summaryUseCase *summary.GetSummaryUseCase) *DashboardController {
	return &DashboardController{
		summaryUseCase: summaryUseCase,
	}
}

// Summary handles GET /dashboard/summary requests. The start_date/end_date
// filter scopes the period figures; current balance, goals progress and total
// invested are always all-time.
func (c *DashboardController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := summary.GetSummaryInput{
		UserID: userID,
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

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var rptErr *domainerror.ReportError
		if errors.As(err, &rptErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: rptErr.Message,
				Code:  string(rptErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	response := dto.ToSummaryResponse(output)
	ctx.JSON(http.StatusOK, response)
}
