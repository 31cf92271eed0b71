package http

import (
	"time"

	"bakehouse/internal/core/application/usecases/queries"
	"bakehouse/internal/core/domain/model/order"
	"bakehouse/internal/core/domain/services"
)

// Error is the standard error response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CapacityError is returned when an admission is rejected for lack of
// capacity. Carries the full check so clients can render the shortfall.
type CapacityError struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Check   CapacityCheck `json:"check"`
}

// OrderItem is a single order line in requests and responses.
// Unit prices travel as decimal strings to avoid float rounding.
type OrderItem struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

// OrderRequest is the body for submitting or revising an order.
type OrderRequest struct {
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	CustomerEmail string      `json:"customer_email"`
	Items         []OrderItem `json:"items"`
	DeliveryDate  string      `json:"delivery_date"`
	DeliveryTime  string      `json:"delivery_time"`
	Source        string      `json:"source"`
	Notes         string      `json:"notes"`
	ForceAccepted bool        `json:"force_accepted"`
}

// OrderResponse is the full order representation returned by write operations.
type OrderResponse struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	CustomerEmail string      `json:"customer_email"`
	Items         []OrderItem `json:"items"`
	DeliveryDate  string      `json:"delivery_date"`
	DeliveryTime  string      `json:"delivery_time,omitempty"`
	Status        string      `json:"status"`
	Source        string      `json:"source"`
	TotalPrice    string      `json:"total_price"`
	TotalUnits    int         `json:"total_units"`
	ForceAccepted bool        `json:"force_accepted"`
	Notes         string      `json:"notes,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// StatusChangeRequest is the body for transitioning an order's status.
// Cancellation additionally requires confirmed to be true.
type StatusChangeRequest struct {
	Status    string `json:"status"`
	Confirmed bool   `json:"confirmed"`
}

// CapacityCheck reports a day's load against its limit.
type CapacityCheck struct {
	HasCapacity       bool    `json:"has_capacity"`
	CurrentUnits      int     `json:"current_units"`
	ProposedUnits     int     `json:"proposed_units"`
	MaxUnits          int     `json:"max_units"`
	AvailableUnits    int     `json:"available_units"`
	OccupationPercent float64 `json:"occupation_percent"`
}

// DayCapacityRequest is the body for setting a single day's limit.
type DayCapacityRequest struct {
	MaxUnits int    `json:"max_units"`
	Notes    string `json:"notes"`
}

// MonthCapacityRequest is the body for applying one limit to a whole month.
type MonthCapacityRequest struct {
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	MaxUnits int    `json:"max_units"`
	Notes    string `json:"notes"`
}

// CalendarDay is one day's occupancy summary in the calendar response.
type CalendarDay struct {
	Date       string `json:"date"`
	TotalUnits int    `json:"total_units"`
	MaxUnits   int    `json:"max_units"`
	OrderCount int    `json:"order_count"`
}

func toOrderResponse(aggregate *order.Order) OrderResponse {
	items := make([]OrderItem, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItem{
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().String(),
		})
	}

	return OrderResponse{
		ID:            aggregate.ID().String(),
		CustomerName:  aggregate.CustomerName(),
		CustomerPhone: aggregate.CustomerPhone(),
		CustomerEmail: aggregate.CustomerEmail(),
		Items:         items,
		DeliveryDate:  aggregate.DeliveryDate().String(),
		DeliveryTime:  aggregate.DeliveryTime(),
		Status:        aggregate.Status().String(),
		Source:        aggregate.Source().String(),
		TotalPrice:    aggregate.TotalPrice().String(),
		TotalUnits:    aggregate.TotalUnits(),
		ForceAccepted: aggregate.ForceAccepted(),
		Notes:         aggregate.Notes(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

func toCapacityCheck(check services.CapacityCheck) CapacityCheck {
	return CapacityCheck{
		HasCapacity:       check.HasCapacity,
		CurrentUnits:      check.CurrentUnits,
		ProposedUnits:     check.ProposedUnits,
		MaxUnits:          check.MaxUnits,
		AvailableUnits:    check.AvailableUnits,
		OccupationPercent: check.OccupationPercent,
	}
}

func toCalendarDays(summaries []queries.DailyOrderSummary) []CalendarDay {
	days := make([]CalendarDay, 0, len(summaries))
	for _, summary := range summaries {
		days = append(days, CalendarDay{
			Date:       summary.Date.String(),
			TotalUnits: summary.TotalUnits,
			MaxUnits:   summary.MaxUnits,
			OrderCount: summary.OrderCount,
		})
	}
	return days
}
