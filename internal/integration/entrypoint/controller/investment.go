// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/moneywise/backend/internal/application/usecase/investment"
	"github.com/moneywise/backend/internal/domain/entity"
	domainerror "github.com/moneywise/backend/internal/domain/error"
	"github.com/moneywise/backend/internal/integration/entrypoint/dto"
	"github.com/moneywise/backend/internal/integration/entrypoint/middleware"
)

// InvestmentController handles investment endpoints, including the
// compound growth simulator.
type InvestmentController struct {
	listUseCase     *investment.ListInvestmentsUseCase
	createUseCase   *investment.CreateInvestmentUseCase
	updateUseCase   *investment.UpdateInvestmentUseCase
	deleteUseCase   *investment.DeleteInvestmentUseCase
	simulateUseCase *investment.SimulateInvestmentUseCase
}

// NewInvestmentController creates a new investment controller instance.
func NewInvestmentController(
	listUseCase *investment.ListInvestmentsUseCase,
	createUseCase *investment.CreateInvestmentUseCase,
	updateUseCase *investment.UpdateInvestmentUseCase,
	deleteUseCase *investment.DeleteInvestmentUseCase,
	simulateUseCase *investment.SimulateInvestmentUseCase,
) *InvestmentController {
	return &InvestmentController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		simulateUseCase: simulateUseCase,
	}
}

// List handles GET /investments requests.
func (c *InvestmentController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), investment.ListInvestmentsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve investments",
		})
		return
	}

	response := dto.ToInvestmentListResponse(output.Investments)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /investments requests.
func (c *InvestmentController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateInvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingInvestmentFields),
		})
		return
	}

	amount, err := dto.ParseSimulationParam("amount", req.Amount)
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	interestRate, err := dto.ParseSimulationParam("interest_rate", req.InterestRate)
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date format, expected YYYY-MM-DD",
		})
		return
	}

	input := investment.CreateInvestmentInput{
		UserID:       userID,
		Name:         req.Name,
		Type:         entity.InvestmentType(req.Type),
		Amount:       amount,
		InterestRate: interestRate,
		StartDate:    startDate,
	}

	if req.MaturityDate != nil {
		maturityDate, err := time.Parse("2006-01-02", *req.MaturityDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid maturity_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.MaturityDate = &maturityDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	response := dto.ToInvestmentResponse(output.Investment)
	ctx.JSON(http.StatusCreated, response)
}

// Update handles PATCH /investments/:id requests.
func (c *InvestmentController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	investmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid investment ID format",
		})
		return
	}

	var req dto.UpdateInvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := investment.UpdateInvestmentInput{
		InvestmentID: investmentID,
		UserID:       userID,
		Name:         req.Name,
	}

	if req.Type != nil {
		investmentType := entity.InvestmentType(*req.Type)
		input.Type = &investmentType
	}

	if req.Amount != nil {
		amount, err := dto.ParseSimulationParam("amount", *req.Amount)
		if err != nil {
			c.handleInvestmentError(ctx, err)
			return
		}
		input.Amount = &amount
	}

	if req.InterestRate != nil {
		interestRate, err := dto.ParseSimulationParam("interest_rate", *req.InterestRate)
		if err != nil {
			c.handleInvestmentError(ctx, err)
			return
		}
		input.InterestRate = &interestRate
	}

	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.StartDate = &startDate
	}

	if req.MaturityDate != nil {
		maturityDate, err := time.Parse("2006-01-02", *req.MaturityDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid maturity_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.MaturityDate = &maturityDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	response := dto.ToInvestmentResponse(output.Investment)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /investments/:id requests.
func (c *InvestmentController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	investmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid investment ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), investment.DeleteInvestmentInput{
		InvestmentID: investmentID,
		UserID:       userID,
	})
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Simulate handles POST /investments/simulate requests. The simulation is
// stateless; nothing is persisted.
func (c *InvestmentController) Simulate(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SimulateInvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingInvestmentFields),
		})
		return
	}

	principal, err := dto.ParseSimulationParam("amount", req.Amount)
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	rate, err := dto.ParseSimulationParam("interest_rate", req.InterestRate)
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	contribution, err := dto.ParseSimulationParam("monthly_contribution", req.MonthlyContribution)
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	output, err := c.simulateUseCase.Execute(ctx.Request.Context(), investment.SimulateInput{
		Principal:           principal,
		AnnualRatePercent:   rate,
		Years:               req.Years,
		MonthlyContribution: contribution,
	})
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	response := dto.ToSimulateInvestmentResponse(output.Projections)
	ctx.JSON(http.StatusOK, response)
}

// handleInvestmentError handles investment errors and returns appropriate HTTP responses.
func (c *InvestmentController) handleInvestmentError(ctx *gin.Context, err error) {
	var invErr *domainerror.InvestmentError
	if errors.As(err, &invErr) {
		statusCode := c.getStatusCodeForInvestmentError(invErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: invErr.Message,
			Code:  string(invErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForInvestmentError maps investment error codes to HTTP status codes.
func (c *InvestmentController) getStatusCodeForInvestmentError(code domainerror.InvestmentErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvestmentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedInvestment:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidInvestmentType,
		domainerror.ErrCodeInvalidInvestmentAmount,
		domainerror.ErrCodeInvalidInterestRate,
		domainerror.ErrCodeMissingInvestmentFields,
		domainerror.ErrCodeInvalidSimulationYears,
		domainerror.ErrCodeInvalidSimulationPrincipal,
		domainerror.ErrCodeInvalidSimulationRate,
		domainerror.ErrCodeInvalidSimulationContribution,
		domainerror.ErrCodeUnparsableSimulationParam:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
