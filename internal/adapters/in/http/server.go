// Package http exposes the application's use cases over a REST API.
// It coordinates between echo HTTP handlers and command/query handlers,
// mapping domain errors to status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"bakehouse/internal/core/application/usecases/commands"
	"bakehouse/internal/core/application/usecases/queries"
	"bakehouse/internal/core/domain/model/kernel"
	"bakehouse/internal/core/domain/model/order"
	"bakehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server implements the HTTP handlers for order admission, order lifecycle,
// and capacity management.
type Server struct {
	// Command handlers
	submitOrderHandler        commands.SubmitOrderCommandHandler
	reviseOrderHandler        commands.ReviseOrderCommandHandler
	changeOrderStatusHandler  commands.ChangeOrderStatusCommandHandler
	setDayCapacityHandler     commands.SetDayCapacityCommandHandler
	applyMonthCapacityHandler commands.ApplyMonthCapacityCommandHandler

	// Query handlers
	checkCapacityHandler      queries.CheckCapacityQueryHandler
	getCalendarSummaryHandler queries.GetCalendarSummaryQueryHandler
	getOrdersHandler          queries.GetOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	reviseOrderHandler commands.ReviseOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	setDayCapacityHandler commands.SetDayCapacityCommandHandler,
	applyMonthCapacityHandler commands.ApplyMonthCapacityCommandHandler,
	checkCapacityHandler queries.CheckCapacityQueryHandler,
	getCalendarSummaryHandler queries.GetCalendarSummaryQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
) *Server {
	return &Server{
		submitOrderHandler:        submitOrderHandler,
		reviseOrderHandler:        reviseOrderHandler,
		changeOrderStatusHandler:  changeOrderStatusHandler,
		setDayCapacityHandler:     setDayCapacityHandler,
		applyMonthCapacityHandler: applyMonthCapacityHandler,
		checkCapacityHandler:      checkCapacityHandler,
		getCalendarSummaryHandler: getCalendarSummaryHandler,
		getOrdersHandler:          getOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.SubmitOrder)
	api.GET("/orders", s.ListOrders)
	api.PUT("/orders/:id", s.ReviseOrder)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)

	api.GET("/capacity/check", s.CheckCapacity)
	api.PUT("/capacity/month", s.ApplyMonthCapacity)
	api.PUT("/capacity/:date", s.SetDayCapacity)

	api.GET("/calendar", s.GetCalendar)

	e.GET("/health", s.Health)
}

// SubmitOrder handles POST /api/v1/orders - admits a new order against the
// delivery day's capacity. Rejections return 409 with the capacity check.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var request OrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := buildSubmitCommand(kernel.NewUUID(), request)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	admitted, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(admitted))
}

// ReviseOrder handles PUT /api/v1/orders/:id - replaces an existing order's
// details, re-running the capacity check without counting the order's own
// units against itself.
func (s *Server) ReviseOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request OrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := buildReviseCommand(orderID, request)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	revised, err := s.reviseOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(revised))
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - moves an order
// along its lifecycle. Illegal transitions return 409.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request StatusChangeRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+request.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target, request.Confirmed)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	changed, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(changed))
}

// ListOrders handles GET /api/v1/orders - lists the orders booked for a
// delivery-date range, line items included.
func (s *Server) ListOrders(ctx echo.Context) error {
	from, err := kernel.DateFromString(ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "Invalid from date")
	}

	to, err := kernel.DateFromString(ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "Invalid to date")
	}

	query, err := queries.NewGetOrdersQuery(from, to)
	if err != nil {
		return badRequest(ctx, "Invalid date range: "+err.Error())
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}

	return ctx.JSON(http.StatusOK, responses)
}

// CheckCapacity handles GET /api/v1/capacity/check - reports whether a
// proposed unit count fits on a date, without admitting anything.
func (s *Server) CheckCapacity(ctx echo.Context) error {
	date, err := kernel.DateFromString(ctx.QueryParam("date"))
	if err != nil {
		return badRequest(ctx, "Invalid date")
	}

	units, err := parsePositiveInt(ctx.QueryParam("units"))
	if err != nil {
		return badRequest(ctx, "Invalid units")
	}

	var excludeID *kernel.UUID
	if raw := ctx.QueryParam("exclude_order_id"); raw != "" {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "Invalid exclude_order_id")
		}
		excludeID = &id
	}

	query, err := queries.NewCheckCapacityQuery(date, units, excludeID)
	if err != nil {
		return badRequest(ctx, "Invalid capacity check: "+err.Error())
	}

	check, err := s.checkCapacityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCapacityCheck(check))
}

// GetCalendar handles GET /api/v1/calendar - returns one occupancy summary
// per day in [from, to], zero-filled for days without orders.
func (s *Server) GetCalendar(ctx echo.Context) error {
	from, err := kernel.DateFromString(ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "Invalid from date")
	}

	to, err := kernel.DateFromString(ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "Invalid to date")
	}

	query, err := queries.NewGetCalendarSummaryQuery(from, to)
	if err != nil {
		return badRequest(ctx, "Invalid calendar range: "+err.Error())
	}

	summaries, err := s.getCalendarSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCalendarDays(summaries))
}

// SetDayCapacity handles PUT /api/v1/capacity/:date - sets one day's limit.
func (s *Server) SetDayCapacity(ctx echo.Context) error {
	date, err := kernel.DateFromString(ctx.Param("date"))
	if err != nil {
		return badRequest(ctx, "Invalid date")
	}

	var request DayCapacityRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetDayCapacityCommand(date, request.MaxUnits, request.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid capacity data: "+err.Error())
	}

	if err = s.setDayCapacityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyMonthCapacity handles PUT /api/v1/capacity/month - applies one limit
// to every day of a month.
func (s *Server) ApplyMonthCapacity(ctx echo.Context) error {
	var request MonthCapacityRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewApplyMonthCapacityCommand(
		request.Year,
		time.Month(request.Month),
		request.MaxUnits,
		request.Notes,
	)
	if err != nil {
		return badRequest(ctx, "Invalid capacity data: "+err.Error())
	}

	if err = s.applyMonthCapacityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func buildSubmitCommand(orderID kernel.UUID, request OrderRequest) (commands.SubmitOrderCommand, error) {
	items, err := parseItems(request.Items)
	if err != nil {
		return commands.SubmitOrderCommand{}, err
	}

	date, err := kernel.DateFromString(request.DeliveryDate)
	if err != nil {
		return commands.SubmitOrderCommand{}, err
	}

	source, err := order.SourceFromString(request.Source)
	if err != nil {
		return commands.SubmitOrderCommand{}, err
	}

	return commands.NewSubmitOrderCommand(
		orderID,
		request.CustomerName, request.CustomerPhone, request.CustomerEmail,
		items,
		date,
		request.DeliveryTime,
		source,
		request.Notes,
		request.ForceAccepted,
	)
}

func buildReviseCommand(orderID kernel.UUID, request OrderRequest) (commands.ReviseOrderCommand, error) {
	items, err := parseItems(request.Items)
	if err != nil {
		return commands.ReviseOrderCommand{}, err
	}

	date, err := kernel.DateFromString(request.DeliveryDate)
	if err != nil {
		return commands.ReviseOrderCommand{}, err
	}

	source, err := order.SourceFromString(request.Source)
	if err != nil {
		return commands.ReviseOrderCommand{}, err
	}

	return commands.NewReviseOrderCommand(
		orderID,
		request.CustomerName, request.CustomerPhone, request.CustomerEmail,
		items,
		date,
		request.DeliveryTime,
		source,
		request.Notes,
		request.ForceAccepted,
	)
}

func parseItems(items []OrderItem) ([]order.Item, error) {
	parsed := make([]order.Item, 0, len(items))
	for _, item := range items {
		price, err := decimal.NewFromString(item.UnitPrice)
		if err != nil {
			return nil, errs.NewValueIsInvalidError("unit_price")
		}

		domainItem, err := order.NewItem(item.ProductName, item.Quantity, price)
		if err != nil {
			return nil, err
		}

		parsed = append(parsed, domainItem)
	}
	return parsed, nil
}

func parsePositiveInt(raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, errs.NewValueIsOutOfRangeError("units", raw, 1, nil)
	}
	return value, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates application and domain errors to HTTP responses:
// validation failures to 400, missing aggregates to 404, lifecycle and
// capacity conflicts to 409, everything else to 500.
func mapError(ctx echo.Context, err error) error {
	var capacityErr *commands.CapacityExceededError
	if errors.As(err, &capacityErr) {
		return ctx.JSON(http.StatusConflict, CapacityError{
			Code:    http.StatusConflict,
			Message: capacityErr.Error(),
			Check:   toCapacityCheck(capacityErr.Check),
		})
	}

	switch {
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderIsTerminal),
		errors.Is(err, commands.ErrCancellationNotConfirmed):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
