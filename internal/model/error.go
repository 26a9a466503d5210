package model

import "fmt"

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeDuplicateName     = "DUPLICATE_NAME"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeInsufficientStock = "INSUFFICIENT_STOCK"
	ErrCodeEmptyCart         = "EMPTY_CART"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrEmptyCart       = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidInput, "Quantity must be greater than zero")
	ErrInvalidPrice    = NewDomainError(ErrCodeInvalidInput, "Price must not be negative")
	ErrInvalidName     = NewDomainError(ErrCodeInvalidInput, "Product name must not be empty")
	ErrInvalidRestock  = NewDomainError(ErrCodeInvalidInput, "Restock delta must be greater than zero")
)

// DuplicateNameError reports an add of a product whose name already exists
// in the catalog under case-insensitive comparison.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("Product '%s' already exists", e.Name)
}

// Code returns the API error code for the duplicate-name condition.
func (e *DuplicateNameError) Code() string { return ErrCodeDuplicateName }

// InsufficientStockError reports a cart add that exceeds the on-hand
// quantity. Available carries the quantity the caller can still sell.
type InsufficientStockError struct {
	Name      string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Only %d available in stock", e.Available)
}

// Code returns the API error code for the insufficient-stock condition.
func (e *InsufficientStockError) Code() string { return ErrCodeInsufficientStock }
