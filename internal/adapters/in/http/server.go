package http

import (
	"errors"
	"net/http"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime/types"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Actor identity headers. Authentication itself stays outside this service;
// the gateway forwards the verified identity in these headers.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

// Server coordinates between HTTP handlers and application use cases.
// Every mutating endpoint reads the acting party from the actor headers,
// builds a command, and answers with the TransitionResponse envelope.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	submitOrderRequestHandler commands.SubmitOrderRequestCommandHandler
	screenOrderRequestHandler commands.ScreenOrderRequestCommandHandler
	approveOrderHandler       commands.ApproveOrderCommandHandler
	rejectOrderHandler        commands.RejectOrderCommandHandler
	verifyOrderHandler        commands.VerifyOrderCommandHandler
	adminRejectOrderHandler   commands.AdminRejectOrderCommandHandler
	assignCraftsmanHandler    commands.AssignCraftsmanCommandHandler
	acceptAssignmentHandler   commands.AcceptAssignmentCommandHandler
	rejectAssignmentHandler   commands.RejectAssignmentCommandHandler
	completeOrderHandler      commands.CompleteOrderCommandHandler
	approveCompletionHandler  commands.ApproveCompletionCommandHandler
	registerCraftsmanHandler  commands.RegisterCraftsmanCommandHandler

	// Query handlers
	getOrdersHandler         queries.GetOrdersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getRejectedOrdersHandler queries.GetRejectedOrdersQueryHandler
	getOverdueOrdersHandler  queries.GetOverdueOrdersQueryHandler
	getCraftsmenHandler      queries.GetCraftsmenQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	submitOrderRequestHandler commands.SubmitOrderRequestCommandHandler,
	screenOrderRequestHandler commands.ScreenOrderRequestCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	verifyOrderHandler commands.VerifyOrderCommandHandler,
	adminRejectOrderHandler commands.AdminRejectOrderCommandHandler,
	assignCraftsmanHandler commands.AssignCraftsmanCommandHandler,
	acceptAssignmentHandler commands.AcceptAssignmentCommandHandler,
	rejectAssignmentHandler commands.RejectAssignmentCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	approveCompletionHandler commands.ApproveCompletionCommandHandler,
	registerCraftsmanHandler commands.RegisterCraftsmanCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getRejectedOrdersHandler queries.GetRejectedOrdersQueryHandler,
	getOverdueOrdersHandler queries.GetOverdueOrdersQueryHandler,
	getCraftsmenHandler queries.GetCraftsmenQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		submitOrderRequestHandler: submitOrderRequestHandler,
		screenOrderRequestHandler: screenOrderRequestHandler,
		approveOrderHandler:       approveOrderHandler,
		rejectOrderHandler:        rejectOrderHandler,
		verifyOrderHandler:        verifyOrderHandler,
		adminRejectOrderHandler:   adminRejectOrderHandler,
		assignCraftsmanHandler:    assignCraftsmanHandler,
		acceptAssignmentHandler:   acceptAssignmentHandler,
		rejectAssignmentHandler:   rejectAssignmentHandler,
		completeOrderHandler:      completeOrderHandler,
		approveCompletionHandler:  approveCompletionHandler,
		registerCraftsmanHandler:  registerCraftsmanHandler,
		getOrdersHandler:          getOrdersHandler,
		getOrderHandler:           getOrderHandler,
		getRejectedOrdersHandler:  getRejectedOrdersHandler,
		getOverdueOrdersHandler:   getOverdueOrdersHandler,
		getCraftsmenHandler:       getCraftsmenHandler,
	}
}

// RegisterRoutes attaches all workflow endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/rejected", s.GetRejectedOrders)
	api.GET("/orders/overdue", s.GetOverdueOrders)
	api.GET("/orders/:order_no", s.GetOrder)
	api.POST("/orders/:order_no/approve", s.ApproveOrder)
	api.POST("/orders/:order_no/reject", s.RejectOrder)
	api.POST("/orders/:order_no/verify", s.VerifyOrder)
	api.POST("/orders/:order_no/admin-reject", s.AdminRejectOrder)
	api.POST("/orders/:order_no/assign", s.AssignCraftsman)
	api.POST("/orders/:order_no/response", s.RespondToAssignment)
	api.POST("/orders/:order_no/complete", s.CompleteOrder)
	api.POST("/orders/:order_no/approve-completion", s.ApproveCompletion)

	api.POST("/order-requests", s.SubmitOrderRequest)
	api.POST("/order-requests/:order_no/screen", s.ScreenOrderRequest)

	api.GET("/craftsmen", s.GetCraftsmen)
	api.POST("/craftsmen", s.CreateCraftsman)

	e.GET("/openapi.json", s.GetOpenAPIDocument)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// CreateOrder handles POST /api/v1/orders - creates a new order in the
// pending state. The order number is allocated by the workflow, the order
// date is stamped with the current time.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req NewOrderRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return respondBindError(ctx)
	}

	details, err := order.NewDetails(req.Product, req.Design, req.Purity, req.Narration, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	partnerCode, err := partnerCodeFromRequest(req.PartnerCode)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(caller, details, time.Now(), dateToTime(req.DueDate), partnerCode)
	if err != nil {
		return respondError(ctx, err)
	}

	orderNo, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, TransitionResponse{
		Ok:        true,
		OrderNo:   orderNo.String(),
		NewStatus: order.Pending.Label(),
		Message:   "Order created",
	})
}

// SubmitOrderRequest handles POST /api/v1/order-requests - submits an order
// request that enters the workflow pending key-user screening.
func (s *Server) SubmitOrderRequest(ctx echo.Context) error {
	caller, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req NewOrderRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return respondBindError(ctx)
	}

	details, err := order.NewDetails(req.Product, req.Design, req.Purity, req.Narration, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	partnerCode, err := partnerCodeFromRequest(req.PartnerCode)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSubmitOrderRequestCommand(caller, details, time.Now(), dateToTime(req.DueDate), partnerCode)
	if err != nil {
		return respondError(ctx, err)
	}

	orderNo, err := s.submitOrderRequestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, TransitionResponse{
		Ok:        true,
		OrderNo:   orderNo.String(),
		NewStatus: order.PendingVerification.Label(),
		Message:   "Order request submitted",
	})
}

// ScreenOrderRequest handles POST /api/v1/order-requests/:order_no/screen -
// records the key user's screening decision on a submitted request.
func (s *Server) ScreenOrderRequest(ctx echo.Context) error {
	caller, orderNo, err := transitionContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req ScreenRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return respondBindError(ctx)
	}
	if req.Accept == nil {
		return respondError(ctx, errs.NewValueIsRequiredError("accept"))
	}

	cmd, err := commands.NewScreenOrderRequestCommand(orderNo, caller, *req.Accept, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	newStatus, err := s.screenOrderRequestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return transitionOK(ctx, orderNo, newStatus, "Order request screened")
}

// ApproveOrder handles POST /api/v1/orders/:order_no/approve - key-user
// approval of a pending order.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	caller, orderNo, err := transitionContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req NotesRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return respondBindError(ctx)
	}

	cmd, err := commands.NewApproveOrderCommand(orderNo, caller, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	newStatus, err := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return transitionOK(ctx, orderNo, newStatus, "Order approved")
}

// RejectOrder handles POST /api/v1/orders/:order_no/reject - key-user
// rejection of a pending order. The record is permanently removed.
func (s *Server) RejectOrder(ctx echo.Context) error {
	caller, orderNo, err := transitionContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRejectOrderCommand(orderNo, caller)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, TransitionResponse{
		Ok:      true,
		OrderNo: orderNo.String(),
		Message: "Order rejected and removed",
	})
}

// VerifyOrder handles POST /api/v1/orders/:order_no/verify - admin
// verification of an approved order.
func (s *Server) VerifyOrder(ctx echo.Context) error {
	caller, orderNo, err := transitionContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req NotesRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return respondBindError(ctx)
	}

	cmd, err := commands.NewVerifyOrderCommand(orderNo, caller, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	newStatus, err := s.verifyOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return transitionOK(ctx, orderNo, newStatus, "Order verified")
}

// AdminRejectOrder handles POST /api/v1/orders/:order_no/admin-reject -
// admin rejection of an approved order. The record is kept for audit.
func (s *Server) AdminRejectOrder(ctx echo.Context) error {
	caller, orderNo, err := transitionContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req NotesRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return respondBindError(ctx)
	}

	cmd, err := commands.NewAdminRejectOrderCommand(orderNo, caller, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	newStatus, err := s.adminRejectOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return transitionOK(ctx, orderNo, newStatus, "Order rejected by admin")
}

// AssignCraftsman handles POST /api/v1/orders/:order_no/assign - hands a
// verified, rejected, or already assigned order to the named craftsman.
func (s *Server) AssignCraftsman(ctx echo.Context) error {
	caller, orderNo, err := transitionContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req AssignRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return respondBindError(ctx)
	}

	cmd, err := commands.NewAssignCraftsmanCommand(orderNo, caller, req.Craftsman, dateToTime(req.DueDate))
	if err != nil {
		return respondError(ctx, err)
	}

	newStatus, err := s.assignCraftsmanHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return transitionOK(ctx, orderNo, newStatus, "Order assigned")
}

// RespondToAssignment handles POST /api/v1/orders/:order_no/response - the
// assigned craftsman accepts or rejects the assignment. A rejection triggers
// the reassignment search within the same transaction.
func (s *Server) RespondToAssignment(ctx echo.Context) error {
	caller, orderNo, err := transitionContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req RespondRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return respondBindError(ctx)
	}

	switch req.Action {
	case "accept":
		cmd, cmdErr := commands.NewAcceptAssignmentCommand(orderNo, caller)
		if cmdErr != nil {
			return respondError(ctx, cmdErr)
		}

		newStatus, handleErr := s.acceptAssignmentHandler.Handle(ctx.Request().Context(), cmd)
		if handleErr != nil {
			return respondError(ctx, handleErr)
		}

		return transitionOK(ctx, orderNo, newStatus, "Assignment accepted")
	case "reject":
		cmd, cmdErr := commands.NewRejectAssignmentCommand(orderNo, caller)
		if cmdErr != nil {
			return respondError(ctx, cmdErr)
		}

		newStatus, handleErr := s.rejectAssignmentHandler.Handle(ctx.Request().Context(), cmd)
		if handleErr != nil {
			return respondError(ctx, handleErr)
		}

		return transitionOK(ctx, orderNo, newStatus, "Assignment rejected")
	default:
		return respondError(ctx, errs.NewValueIsInvalidError("action"))
	}
}

// CompleteOrder handles POST /api/v1/orders/:order_no/complete - the
// assigned craftsman reports the work done. The resulting state depends on
// whether the craftsman had accepted the assignment first.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	caller, orderNo, err := transitionContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderNo, caller)
	if err != nil {
		return respondError(ctx, err)
	}

	newStatus, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return transitionOK(ctx, orderNo, newStatus, "Order completed by craftsman")
}

// ApproveCompletion handles POST /api/v1/orders/:order_no/approve-completion -
// final admin sign-off on a completed order.
func (s *Server) ApproveCompletion(ctx echo.Context) error {
	caller, orderNo, err := transitionContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req NotesRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return respondBindError(ctx)
	}

	cmd, err := commands.NewApproveCompletionCommand(orderNo, caller, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	newStatus, err := s.approveCompletionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return transitionOK(ctx, orderNo, newStatus, "Completion approved")
}

// GetOrders handles GET /api/v1/orders - lists the order book, optionally
// narrowed by status label and partner code.
func (s *Server) GetOrders(ctx echo.Context) error {
	var statuses []order.Status
	if label := ctx.QueryParam("status"); label != "" {
		statuses = order.StatusesForLabel(label)
		if len(statuses) == 0 {
			return respondError(ctx, errs.NewValueIsInvalidError("status"))
		}
	}

	var partnerCode *kernel.PartnerCode
	if code := ctx.QueryParam("partner_code"); code != "" {
		parsed, err := kernel.NewPartnerCode(code)
		if err != nil {
			return respondError(ctx, err)
		}
		partnerCode = &parsed
	}

	query, err := queries.NewGetOrdersQuery(statuses, partnerCode)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummary, len(rows))
	for i, row := range rows {
		summary := OrderSummary{
			OrderNo: row.OrderNo.String(),
			Status:  row.Status.Label(),
			DueDate: timeToDate(row.DueDate),
		}
		if row.PartnerCode != nil {
			code := row.PartnerCode.String()
			summary.PartnerCode = &code
		}
		summary.Craftsman = row.Craftsman

		response[i] = summary
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:order_no - the full order card.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderNo, err := kernel.NewOrderNumber(ctx.Param("order_no"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderNo)
	if err != nil {
		return respondError(ctx, err)
	}

	card, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := OrderCard{
		OrderNo:   card.OrderNo.String(),
		Status:    card.Status.Label(),
		Product:   card.Product,
		Design:    card.Design,
		Purity:    card.Purity,
		Narration: card.Narration,
		Quantity:  card.Quantity,
		OrderDate: card.OrderDate,
		DueDate:   timeToDate(card.DueDate),
		CreatedBy: card.CreatedBy.String(),
		Craftsman: card.Craftsman,
	}
	if card.PartnerCode != nil {
		code := card.PartnerCode.String()
		response.PartnerCode = &code
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRejectedOrders handles GET /api/v1/orders/rejected - the rejected
// orders report with rejecter identity and total count.
func (s *Server) GetRejectedOrders(ctx echo.Context) error {
	query := queries.NewGetRejectedOrdersQuery()

	report, err := s.getRejectedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	rows := make([]RejectedOrder, len(report.Orders))
	for i, row := range report.Orders {
		rows[i] = RejectedOrder{
			OrderNo: row.OrderNo.String(),
			RejectedBy: Rejecter{
				Code:         row.RejectedByCode.String(),
				BusinessName: row.RejectedByName,
			},
		}
	}

	return ctx.JSON(http.StatusOK, RejectedOrders{
		RejectedOrders: rows,
		TotalRejected:  report.TotalRejected,
	})
}

// GetOverdueOrders handles GET /api/v1/orders/overdue - non-terminal orders
// whose due date has passed, most overdue first.
func (s *Server) GetOverdueOrders(ctx echo.Context) error {
	query, err := queries.NewGetOverdueOrdersQuery(time.Now())
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.getOverdueOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OverdueOrder, len(rows))
	for i, row := range rows {
		response[i] = OverdueOrder{
			OrderNo:   row.OrderNo.String(),
			Status:    row.Status.Label(),
			DueDate:   types.Date{Time: row.DueDate},
			Craftsman: row.Craftsman,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCraftsmen handles GET /api/v1/craftsmen - the craftsman directory in
// registration order.
func (s *Server) GetCraftsmen(ctx echo.Context) error {
	query := queries.NewGetCraftsmenQuery()

	entries, err := s.getCraftsmenHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Craftsman, len(entries))
	for i, entry := range entries {
		response[i] = Craftsman{
			ID:           entry.ID.String(),
			Code:         entry.Code.String(),
			BusinessName: entry.BusinessName,
			DisplayName:  entry.DisplayName,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCraftsman handles POST /api/v1/craftsmen - registers a craftsman
// directory entry.
func (s *Server) CreateCraftsman(ctx echo.Context) error {
	caller, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req NewCraftsmanRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return respondBindError(ctx)
	}

	code, err := kernel.NewPartnerCode(req.Code)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRegisterCraftsmanCommand(caller, code, req.BusinessName)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.registerCraftsmanHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, TransitionResponse{
		Ok:      true,
		Message: "Craftsman registered",
	})
}

// GetOpenAPIDocument handles GET /openapi.json - the API description.
func (s *Server) GetOpenAPIDocument(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, OpenAPIDocument())
}

// actorFromRequest reads the acting party from the actor identity headers.
func actorFromRequest(ctx echo.Context) (actor.Actor, error) {
	rawID := ctx.Request().Header.Get(HeaderActorID)
	if rawID == "" {
		return actor.Actor{}, errs.NewValueIsRequiredError(HeaderActorID)
	}

	actorID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return actor.Actor{}, err
	}

	rawRole := ctx.Request().Header.Get(HeaderActorRole)
	if rawRole == "" {
		return actor.Actor{}, errs.NewValueIsRequiredError(HeaderActorRole)
	}

	role, err := actor.RoleFromString(rawRole)
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(actorID, role)
}

// transitionContext reads the caller and the order number every transition
// endpoint needs.
func transitionContext(ctx echo.Context) (actor.Actor, kernel.OrderNumber, error) {
	caller, err := actorFromRequest(ctx)
	if err != nil {
		return actor.Actor{}, kernel.OrderNumber{}, err
	}

	orderNo, err := kernel.NewOrderNumber(ctx.Param("order_no"))
	if err != nil {
		return actor.Actor{}, kernel.OrderNumber{}, err
	}

	return caller, orderNo, nil
}

// transitionOK answers a successful transition with the standard envelope.
func transitionOK(ctx echo.Context, orderNo kernel.OrderNumber, newStatus order.Status, message string) error {
	return ctx.JSON(http.StatusOK, TransitionResponse{
		Ok:        true,
		OrderNo:   orderNo.String(),
		NewStatus: newStatus.Label(),
		Message:   message,
	})
}

// respondError maps a workflow error onto its HTTP status and error envelope.
func respondError(ctx echo.Context, err error) error {
	code := statusForError(err)
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

// respondBindError answers a malformed request body.
func respondBindError(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// statusForError maps workflow error kinds onto HTTP statuses: validation
// 400, forbidden 403, not found 404, transition and numbering conflicts 409.
// Anything unrecognized is a server-side failure.
func statusForError(err error) int {
	var notFound *errs.ObjectNotFoundError
	var forbidden *errs.ForbiddenError
	var invalidTransition *errs.InvalidTransitionError
	var valueInvalid *errs.ValueIsInvalidError
	var valueRequired *errs.ValueIsRequiredError
	var valueOutOfRange *errs.ValueIsOutOfRangeError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &invalidTransition):
		return http.StatusConflict
	case errors.Is(err, ports.ErrOrderNumberConflict):
		return http.StatusConflict
	case errors.As(err, &valueInvalid), errors.As(err, &valueRequired), errors.As(err, &valueOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// partnerCodeFromRequest parses an optional partner code field.
func partnerCodeFromRequest(raw *string) (*kernel.PartnerCode, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	code, err := kernel.NewPartnerCode(*raw)
	if err != nil {
		return nil, err
	}

	return &code, nil
}

// dateToTime converts an optional wire date to the domain's time form.
func dateToTime(d *types.Date) *time.Time {
	if d == nil {
		return nil
	}

	t := d.Time
	return &t
}

// timeToDate converts an optional domain time to the wire's date form.
func timeToDate(t *time.Time) *types.Date {
	if t == nil {
		return nil
	}

	return &types.Date{Time: *t}
}
