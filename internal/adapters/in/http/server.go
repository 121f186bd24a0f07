// Package http exposes the order and locker API over echo. Every endpoint
// reads its payload from the "request" query parameter as a JSON object,
// which is the contract the original clients of this service rely on.
package http

import (
	"errors"
	"net/http"

	"pickpoint/internal/core/application/usecases/commands"
	"pickpoint/internal/core/application/usecases/queries"
	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/order"
	"pickpoint/internal/core/ports"
	"pickpoint/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	changeStatusHandler      commands.ChangeOrderStatusCommandHandler
	changeCompositionHandler commands.ChangeOrderCompositionCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	getOrderHandler            queries.GetOrderQueryHandler
	getPostautomatHandler      queries.GetPostautomatQueryHandler
	getOpenPostautomatsHandler queries.GetOpenPostautomatsQueryHandler
}

// NewServer creates an HTTP server over the given command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	changeCompositionHandler commands.ChangeOrderCompositionCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getPostautomatHandler queries.GetPostautomatQueryHandler,
	getOpenPostautomatsHandler queries.GetOpenPostautomatsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		changeStatusHandler:        changeStatusHandler,
		changeCompositionHandler:   changeCompositionHandler,
		deleteOrderHandler:         deleteOrderHandler,
		getOrderHandler:            getOrderHandler,
		getPostautomatHandler:      getPostautomatHandler,
		getOpenPostautomatsHandler: getOpenPostautomatsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.GET("/order/GetOrder", s.GetOrder)
	e.POST("/order/PostOrder", s.PostOrder)
	e.PUT("/order/ChangeStatus", s.ChangeStatus)
	e.PUT("/order/ChangeProductComposition", s.ChangeProductComposition)
	e.DELETE("/order/DeleteOrder", s.DeleteOrder)

	e.GET("/postautomat/GetOpenedPostautomat", s.GetOpenedPostautomat)
	e.GET("/postautomat/GetPostautomat", s.GetPostautomat)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// GetOrder handles GET /order/GetOrder. Request format: {"number":N}.
func (s *Server) GetOrder(c echo.Context) error {
	obj, err := parseObject(c.QueryParam("request"))
	if err != nil {
		return s.respondError(c, err, "")
	}

	number, err := intField(obj, "number", "Not valid number value")
	if err != nil {
		return s.respondError(c, err, "")
	}
	if number <= 0 {
		// A non-positive number can never be stored.
		return c.NoContent(http.StatusNotFound)
	}

	query, err := queries.NewGetOrderQuery(number)
	if err != nil {
		return s.respondError(c, err, "")
	}

	resp, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err, "")
	}

	return c.JSON(http.StatusOK, orderResponseFrom(resp))
}

// PostOrder handles POST /order/PostOrder. The request carries the full
// order body; the created order is re-read through the query side so the 201
// body is exactly what a subsequent GetOrder would return.
func (s *Server) PostOrder(c echo.Context) error {
	obj, err := parseObject(c.QueryParam("request"))
	if err != nil {
		return s.respondError(c, err, "")
	}

	number, err := intField(obj, "number", "Not valid number value")
	if err != nil {
		return s.respondError(c, err, "")
	}

	statusID, err := intField(obj, "status", "Not valid status value")
	if err != nil {
		return s.respondError(c, err, "")
	}

	composition, err := stringsField(obj, "composition", "Not valid composition value")
	if err != nil {
		return s.respondError(c, err, "")
	}
	if len(composition) > order.MaxComposition {
		return c.String(http.StatusBadRequest, "Order must not contain more than 10 products")
	}

	cost, err := decimalField(obj, "cost", "Not valid cost value")
	if err != nil {
		return s.respondError(c, err, "")
	}

	phone, err := kernel.NewPhone(stringField(obj, "phone"))
	if err != nil {
		return c.String(http.StatusBadRequest, "Phone number format: +7XXXXXXXXXX")
	}

	// A malformed locker number cannot reference a stored locker, so it gets
	// the same reply as an unknown one.
	locker, err := kernel.NewLockerNumber(stringField(obj, "postautomat"))
	if err != nil {
		return c.String(http.StatusBadRequest, "Postautomat not found")
	}

	cmd, err := commands.NewCreateOrderCommand(
		number, statusID, composition, cost, locker, phone, stringField(obj, "recipient"),
	)
	if err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}

	if err = s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err, "Order not posted")
	}

	return s.respondWithOrder(c, http.StatusCreated, number)
}

// ChangeStatus handles PUT /order/ChangeStatus.
// Request format: {"number":N,"status":S} with status in [1..6].
func (s *Server) ChangeStatus(c echo.Context) error {
	obj, err := parseObject(c.QueryParam("request"))
	if err != nil {
		return s.respondError(c, err, "")
	}

	number, err := intField(obj, "number", "Not valid number value")
	if err != nil {
		return s.respondError(c, err, "")
	}
	if number <= 0 {
		return c.NoContent(http.StatusNotFound)
	}

	statusID, err := intField(obj, "status", "Not valid status value")
	if err != nil {
		return s.respondError(c, err, "")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(number, statusID)
	if err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}

	if err = s.changeStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err, "Failed to save changes")
	}

	return s.respondWithOrder(c, http.StatusOK, number)
}

// ChangeProductComposition handles PUT /order/ChangeProductComposition.
// Request format: {"number":N,"composition":[...],"cost":C}.
func (s *Server) ChangeProductComposition(c echo.Context) error {
	obj, err := parseObject(c.QueryParam("request"))
	if err != nil {
		return s.respondError(c, err, "")
	}

	number, err := intField(obj, "number", "Not valid number value")
	if err != nil {
		return s.respondError(c, err, "")
	}
	if number <= 0 {
		return c.NoContent(http.StatusNotFound)
	}

	composition, err := stringsField(obj, "composition", "Not valid composition value")
	if err != nil {
		return s.respondError(c, err, "")
	}
	if len(composition) > order.MaxComposition {
		return c.String(http.StatusBadRequest, "Order must not contain more than 10 products")
	}

	cost, err := decimalField(obj, "cost", "Not valid cost value")
	if err != nil {
		return s.respondError(c, err, "")
	}

	cmd, err := commands.NewChangeOrderCompositionCommand(number, composition, cost)
	if err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}

	if err = s.changeCompositionHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err, "Failed to save changes")
	}

	return s.respondWithOrder(c, http.StatusOK, number)
}

// DeleteOrder handles DELETE /order/DeleteOrder. Request format: {"number":N}.
func (s *Server) DeleteOrder(c echo.Context) error {
	obj, err := parseObject(c.QueryParam("request"))
	if err != nil {
		return s.respondError(c, err, "")
	}

	number, err := intField(obj, "number", "Not valid number value")
	if err != nil {
		return s.respondError(c, err, "")
	}
	if number <= 0 {
		return c.NoContent(http.StatusNotFound)
	}

	cmd, err := commands.NewDeleteOrderCommand(number)
	if err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}

	if err = s.deleteOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.respondError(c, err, "Order not deleted")
	}

	return c.NoContent(http.StatusNoContent)
}

// GetOpenedPostautomat handles GET /postautomat/GetOpenedPostautomat.
func (s *Server) GetOpenedPostautomat(c echo.Context) error {
	lockers, err := s.getOpenPostautomatsHandler.Handle(
		c.Request().Context(), queries.NewGetOpenPostautomatsQuery(),
	)
	if err != nil {
		return s.respondError(c, err, "")
	}

	response := make([]postautomatResponse, 0, len(lockers))
	for _, locker := range lockers {
		response = append(response, postautomatResponseFrom(locker))
	}

	return c.JSON(http.StatusOK, response)
}

// GetPostautomat handles GET /postautomat/GetPostautomat.
// Request format: {"number":"XXXX-XXXX"}.
func (s *Server) GetPostautomat(c echo.Context) error {
	obj, err := parseObject(c.QueryParam("request"))
	if err != nil {
		return s.respondError(c, err, "")
	}

	number, err := kernel.NewLockerNumber(stringField(obj, "number"))
	if err != nil {
		return c.String(http.StatusBadRequest, "Required numbers format XXXX-XXXX")
	}

	query, err := queries.NewGetPostautomatQuery(number)
	if err != nil {
		return s.respondError(c, err, "")
	}

	resp, err := s.getPostautomatHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err, "")
	}

	return c.JSON(http.StatusOK, postautomatResponseFrom(resp))
}

// respondWithOrder re-reads the order through the query side and writes it
// with the given status code.
func (s *Server) respondWithOrder(c echo.Context, code, number int) error {
	query, err := queries.NewGetOrderQuery(number)
	if err != nil {
		return s.respondError(c, err, "")
	}

	resp, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.respondError(c, err, "")
	}

	return c.JSON(code, orderResponseFrom(resp))
}

// respondError maps application errors to the API contract. savedMessage is
// the endpoint-specific problem text for a write that affected no rows.
func (s *Server) respondError(c echo.Context, err error, savedMessage string) error {
	var pErr parseError
	switch {
	case errors.As(err, &pErr):
		return c.String(http.StatusBadRequest, pErr.message)
	case errors.Is(err, commands.ErrOrderAlreadyExists):
		return c.String(http.StatusBadRequest, "The order exists")
	case errors.Is(err, commands.ErrPostautomatNotFound):
		return c.String(http.StatusBadRequest, "Postautomat not found")
	case errors.Is(err, commands.ErrStatusNotFound):
		return c.String(http.StatusBadRequest, "Status not found")
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.NoContent(http.StatusNotFound)
	case errors.Is(err, ports.ErrNothingSaved):
		return c.JSON(http.StatusInternalServerError, problemResponse{
			Code:    http.StatusInternalServerError,
			Message: savedMessage,
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.String(http.StatusBadRequest, err.Error())
	default:
		// Deliberately leaks the error text for operator diagnosis.
		return c.JSON(http.StatusInternalServerError, problemResponse{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}
