// Package error defines domain-specific errors for the MoneyWise application.
package error

import "errors"

// Investment domain errors.
var (
	// ErrInvestmentNotFound is returned when an investment is not found in the system.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrInvalidInvestmentType is returned when the investment type is invalid.
	ErrInvalidInvestmentType = errors.New("invalid investment type")

	// ErrInvalidInvestmentAmount is returned when the investment amount is negative.
	ErrInvalidInvestmentAmount = errors.New("invalid investment amount")

	// ErrInvalidInterestRate is returned when the interest rate is negative.
	ErrInvalidInterestRate = errors.New("invalid interest rate")

	// ErrUnauthorizedInvestmentAccess is returned when user is not authorized to access an investment.
	ErrUnauthorizedInvestmentAccess = errors.New("unauthorized access to investment")

	// ErrInvalidSimulationYears is returned when the simulation horizon is below one year.
	ErrInvalidSimulationYears = errors.New("years must be at least 1")

	// ErrInvalidSimulationPrincipal is returned when the simulation principal is negative.
	ErrInvalidSimulationPrincipal = errors.New("principal must not be negative")

	// ErrInvalidSimulationRate is returned when the simulation rate is negative.
	ErrInvalidSimulationRate = errors.New("annual rate must not be negative")

	// ErrInvalidSimulationContribution is returned when the monthly contribution is negative.
	ErrInvalidSimulationContribution = errors.New("monthly contribution must not be negative")
)

// InvestmentErrorCode defines error codes for investment errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InvestmentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidInvestmentType   InvestmentErrorCode = "INV-010001"
	ErrCodeInvalidInvestmentAmount InvestmentErrorCode = "INV-010002"
	ErrCodeInvalidInterestRate     InvestmentErrorCode = "INV-010003"
	ErrCodeMissingInvestmentFields InvestmentErrorCode = "INV-010004"

	// Lookup/authorization errors (02XXXX)
	ErrCodeInvestmentNotFound     InvestmentErrorCode = "INV-020001"
	ErrCodeUnauthorizedInvestment InvestmentErrorCode = "INV-020002"

	// Simulation parameter errors (03XXXX)
	ErrCodeInvalidSimulationYears        InvestmentErrorCode = "INV-030001"
	ErrCodeInvalidSimulationPrincipal    InvestmentErrorCode = "INV-030002"
	ErrCodeInvalidSimulationRate         InvestmentErrorCode = "INV-030003"
	ErrCodeInvalidSimulationContribution InvestmentErrorCode = "INV-030004"
	ErrCodeUnparsableSimulationParam     InvestmentErrorCode = "INV-030005"
)

// InvestmentError represents an investment error with code and message.
type InvestmentError struct {
	Code    InvestmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvestmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvestmentError) Unwrap() error {
	return e.Err
}

// NewInvestmentError creates a new InvestmentError with the given code and message.
func NewInvestmentError(code InvestmentErrorCode, message string, err error) *InvestmentError {
	return &InvestmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
