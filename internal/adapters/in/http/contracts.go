package http

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RequestValidator plugs go-playground/validator into echo's binding pipeline.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used for all request bodies.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MoveOrderRequest is an operator's request to place an order in another area.
type MoveOrderRequest struct {
	TargetArea    string `json:"target_area" validate:"required"`
	Justification string `json:"justification"`
	Actor         string `json:"actor" validate:"required"`
}

// MoveOrderResponse reports the order's placement after a successful move.
type MoveOrderResponse struct {
	OrderID      string    `json:"order_id"`
	PreviousArea string    `json:"previous_area"`
	CurrentArea  string    `json:"current_area"`
	Source       string    `json:"source"`
	MovedAt      time.Time `json:"moved_at"`
	MovedBy      string    `json:"moved_by"`
}

// OrderResponse is one order row of the board.
type OrderResponse struct {
	ID                string          `json:"id"`
	Number            string          `json:"number"`
	Plant             string          `json:"plant"`
	Material          string          `json:"material"`
	StartDate         string          `json:"start_date"`
	FinishDate        string          `json:"finish_date"`
	OrderQuantity     decimal.Decimal `json:"order_quantity"`
	DeliveredQuantity decimal.Decimal `json:"delivered_quantity"`
	RawStatus         string          `json:"raw_status"`
	CurrentArea       string          `json:"current_area"`
	SapArea           string          `json:"sap_area"`
	Source            string          `json:"source"`
	Discrepancy       bool            `json:"discrepancy"`
	HasChanges        bool            `json:"has_changes"`
}

// MoveAuditEntryResponse is one entry of an order's move history.
type MoveAuditEntryResponse struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	FromArea      string    `json:"from_area"`
	ToArea        string    `json:"to_area"`
	Justification string    `json:"justification"`
	MovedAt       time.Time `json:"moved_at"`
	Actor         string    `json:"actor"`
}

// FlowErrorResponse is one classified finding.
type FlowErrorResponse struct {
	Category    string `json:"category"`
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	Description string `json:"description"`
	CurrentArea string `json:"current_area,omitempty"`
	SapArea     string `json:"sap_area,omitempty"`
}

// AreaModesRequest sets the placement mode of every configurable area.
type AreaModesRequest struct {
	Warehouse  string `json:"warehouse" validate:"required,oneof=AUTO MANUAL"`
	Production string `json:"production" validate:"required,oneof=AUTO MANUAL"`
	Logistics  string `json:"logistics" validate:"required,oneof=AUTO MANUAL"`
}

// AreaModesResponse reports the current mode of every configurable area.
type AreaModesResponse struct {
	Warehouse  string `json:"warehouse"`
	Production string `json:"production"`
	Logistics  string `json:"logistics"`
}

// StatusMappingRow is one row of the mapping table, in requests and responses.
type StatusMappingRow struct {
	StatusValue string `json:"status_value" validate:"required"`
	Area        string `json:"area" validate:"required"`
	Label       string `json:"label"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
}

// StatusMappingsRequest replaces the whole mapping table.
type StatusMappingsRequest struct {
	Mappings []StatusMappingRow `json:"mappings" validate:"required,dive"`
}

// IngestRecordRow is one upstream order snapshot row.
type IngestRecordRow struct {
	Number            string          `json:"number" validate:"required"`
	Plant             string          `json:"plant"`
	Material          string          `json:"material"`
	StartDate         string          `json:"start_date"`
	FinishDate        string          `json:"finish_date"`
	OrderQuantity     decimal.Decimal `json:"order_quantity"`
	DeliveredQuantity decimal.Decimal `json:"delivered_quantity"`
	RawStatus         string          `json:"raw_status"`
	ChangedFields     []string        `json:"changed_fields"`
}

// IngestOrdersRequest carries one upstream snapshot batch.
type IngestOrdersRequest struct {
	Records []IngestRecordRow `json:"records" validate:"required,min=1,dive"`
}
