package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/generated/servers"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	approveOrderHandler         commands.ApproveOrderCommandHandler
	rejectOrderHandler          commands.RejectOrderCommandHandler
	advanceKitchenStatusHandler commands.AdvanceKitchenStatusCommandHandler
	completeOrderHandler        commands.CompleteOrderCommandHandler

	// Query handlers
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler
	getActiveOrdersHandler  queries.GetActiveOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	advanceKitchenStatusHandler commands.AdvanceKitchenStatusCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		approveOrderHandler:         approveOrderHandler,
		rejectOrderHandler:          rejectOrderHandler,
		advanceKitchenStatusHandler: advanceKitchenStatusHandler,
		completeOrderHandler:        completeOrderHandler,
		getPendingOrdersHandler:     getPendingOrdersHandler,
		getActiveOrdersHandler:      getActiveOrdersHandler,
		getOrderHandler:             getOrderHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - places a new order for a table.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	paymentMethod, err := order.PaymentMethodFromString(string(newOrder.PaymentMethod))
	if err != nil {
		return errorResponse(ctx, err)
	}

	lines := make([]commands.OrderLine, len(newOrder.Items))
	for i, item := range newOrder.Items {
		menuItemID, idErr := kernel.UUIDFromBytes(item.MenuItemId[:])
		if idErr != nil {
			return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("menuItemId", idErr))
		}

		lines[i] = commands.OrderLine{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
		}
		if item.SpecialInstructions != nil {
			lines[i].SpecialInstructions = *item.SpecialInstructions
		}
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, newOrder.TableNumber,
		newOrder.CustomerSessionId, paymentMethod, lines)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

// ApproveOrder handles POST /api/v1/orders/{orderId}/approve - approves a pending order.
func (s *Server) ApproveOrder(ctx echo.Context, orderID servers.OrderId) error {
	var request servers.ApproveRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewApproveOrderCommand(id, request.EstimatedMinutes)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// RejectOrder handles POST /api/v1/orders/{orderId}/reject - rejects a pending order.
func (s *Server) RejectOrder(ctx echo.Context, orderID servers.OrderId) error {
	var request servers.RejectRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewRejectOrderCommand(id, request.Reason)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// UpdateKitchenStatus handles POST /api/v1/orders/{orderId}/kitchen-status - reports
// kitchen preparation progress.
func (s *Server) UpdateKitchenStatus(ctx echo.Context, orderID servers.OrderId) error {
	var request servers.KitchenStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	target, err := order.KitchenStatusFromString(string(request.KitchenStatus))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAdvanceKitchenStatusCommand(id, target)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.advanceKitchenStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/complete - completes a ready order.
func (s *Server) CompleteOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// GetPendingOrders handles GET /api/v1/orders/pending - retrieves orders awaiting approval.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	query := queries.NewGetPendingOrdersQuery()

	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve pending orders",
		})
	}

	return ctx.JSON(http.StatusOK, toOrderList(orders))
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves orders between
// approval and completion.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve active orders",
		})
	}

	return ctx.JSON(http.StatusOK, toOrderList(orders))
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// respondWithOrder reads the order back through the query side and returns its
// full payload. Commands deliberately return nothing; clients always see the
// same representation regardless of which endpoint they called.
func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(status, toOrder(response))
}

// errorResponse translates application errors into HTTP status codes:
// validation failures map to 400, missing orders to 404, lost optimistic
// concurrency races to 409 and disallowed lifecycle transitions to 422.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConcurrentModification):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition):
		status = http.StatusUnprocessableEntity
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: err.Error(),
	})
}

func toOrderList(orders []queries.OrderResponse) []servers.Order {
	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return response
}

func toOrder(o queries.OrderResponse) servers.Order {
	response := servers.Order{
		Id:                   o.ID.Bytes(),
		OrderNumber:          o.OrderNumber,
		Status:               servers.OrderStatus(o.Status),
		TableNumber:          o.TableNumber,
		CustomerSessionId:    o.CustomerSessionID,
		PaymentMethod:        o.PaymentMethod,
		Items:                make([]servers.OrderItem, len(o.Items)),
		TotalAmount:          kernel.FormatCents(o.TotalAmountCents),
		CreatedAt:            o.CreatedAt,
		ExpectedCompletionAt: o.ExpectedCompletionAt,
		CompletedAt:          o.CompletedAt,
	}

	if o.KitchenStatus != "" {
		kitchenStatus := servers.OrderKitchenStatus(o.KitchenStatus)
		response.KitchenStatus = &kitchenStatus
	}
	if o.CancelReason != "" {
		cancelReason := o.CancelReason
		response.CancelReason = &cancelReason
	}

	for i, item := range o.Items {
		response.Items[i] = servers.OrderItem{
			MenuItemId: item.MenuItemID.Bytes(),
			Name:       item.Name,
			UnitPrice:  kernel.FormatCents(item.UnitPriceCents),
			Quantity:   item.Quantity,
		}
		if item.SpecialInstructions != "" {
			instructions := item.SpecialInstructions
			response.Items[i].SpecialInstructions = &instructions
		}
		if item.Status != "" {
			itemStatus := item.Status
			response.Items[i].Status = &itemStatus
		}
	}

	return response
}
