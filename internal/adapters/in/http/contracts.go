package http

import (
	"time"

	"github.com/oapi-codegen/runtime/types"
)

// Request bodies accepted by the workflow endpoints. Dates travel in the
// date-only form (2006-01-02); types.Date handles the JSON conversion.
type (
	// NewOrderRequest describes the jewelry item for order creation and
	// order request submission. Product and quantity are required, the
	// rest is optional paperwork detail.
	NewOrderRequest struct {
		Product     string      `json:"product"`
		Design      string      `json:"design"`
		Purity      string      `json:"purity"`
		Narration   string      `json:"narration"`
		Quantity    int         `json:"quantity"`
		DueDate     *types.Date `json:"due_date,omitempty"`
		PartnerCode *string     `json:"partner_code,omitempty"`
	}

	// ScreenRequest carries the key user's screening decision on a
	// submitted order request.
	ScreenRequest struct {
		Accept *bool  `json:"accept"`
		Notes  string `json:"notes"`
	}

	// NotesRequest carries the optional free-form notes recorded in the
	// decision stamp of an approval, verification, or rejection.
	NotesRequest struct {
		Notes string `json:"notes"`
	}

	// AssignRequest names the craftsman in the combined "CODE-Business Name"
	// form used on paperwork. The due date, when present, replaces the
	// order's current one.
	AssignRequest struct {
		Craftsman string      `json:"craftsman"`
		DueDate   *types.Date `json:"due_date,omitempty"`
	}

	// RespondRequest carries the assigned craftsman's answer to an
	// assignment: "accept" or "reject".
	RespondRequest struct {
		Action string `json:"action"`
	}

	// NewCraftsmanRequest registers a craftsman directory entry.
	NewCraftsmanRequest struct {
		Code         string `json:"code"`
		BusinessName string `json:"business_name"`
	}
)

// Response bodies produced by the workflow endpoints.
type (
	// TransitionResponse is the envelope returned by every mutating
	// endpoint. NewStatus carries the display label of the order's state
	// after the transition; it is empty when the order was deleted.
	TransitionResponse struct {
		Ok        bool   `json:"ok"`
		OrderNo   string `json:"order_no,omitempty"`
		NewStatus string `json:"new_status,omitempty"`
		Message   string `json:"message"`
	}

	// Error is the envelope returned on request failures.
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	// OrderSummary is one row of the order book listing.
	OrderSummary struct {
		OrderNo     string      `json:"order_no"`
		Status      string      `json:"status"`
		PartnerCode *string     `json:"partner_code,omitempty"`
		DueDate     *types.Date `json:"due_date,omitempty"`
		Craftsman   *string     `json:"craftsman,omitempty"`
	}

	// OrderCard is the full single-order view.
	OrderCard struct {
		OrderNo     string      `json:"order_no"`
		Status      string      `json:"status"`
		Product     string      `json:"product"`
		Design      string      `json:"design"`
		Purity      string      `json:"purity"`
		Narration   string      `json:"narration"`
		Quantity    int         `json:"quantity"`
		OrderDate   time.Time   `json:"order_date"`
		DueDate     *types.Date `json:"due_date,omitempty"`
		PartnerCode *string     `json:"partner_code,omitempty"`
		CreatedBy   string      `json:"created_by"`
		Craftsman   *string     `json:"craftsman,omitempty"`
	}

	// Rejecter identifies the craftsman who refused an order.
	Rejecter struct {
		Code         string `json:"code"`
		BusinessName string `json:"business_name"`
	}

	// RejectedOrder is one row of the rejected orders report.
	RejectedOrder struct {
		OrderNo    string   `json:"order_no"`
		RejectedBy Rejecter `json:"rejected_by"`
	}

	// RejectedOrders is the rejected orders report: the rows plus the
	// total count the dashboard shows.
	RejectedOrders struct {
		RejectedOrders []RejectedOrder `json:"rejected_orders"`
		TotalRejected  int             `json:"total_rejected"`
	}

	// OverdueOrder is one row of the overdue orders report.
	OverdueOrder struct {
		OrderNo   string     `json:"order_no"`
		Status    string     `json:"status"`
		DueDate   types.Date `json:"due_date"`
		Craftsman *string    `json:"craftsman,omitempty"`
	}

	// Craftsman is one directory entry in the craftsmen listing.
	// DisplayName is the combined form the assignment endpoint accepts.
	Craftsman struct {
		ID           string `json:"id"`
		Code         string `json:"code"`
		BusinessName string `json:"business_name"`
		DisplayName  string `json:"display_name"`
	}
)
