// Package http is the inbound HTTP adapter. It maps JSON requests onto
// commands and queries and their results back onto JSON responses.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"coffee/internal/core/application/usecases/commands"
	"coffee/internal/core/application/usecases/queries"
	"coffee/internal/core/ports"
	"coffee/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests by delegating to the application use cases.
type Server struct {
	// Command handlers
	quoteOrderHandler ports.QuoteOrderUseCase

	// Query handlers
	getMenuHandler ports.GetMenuUseCase

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	quoteOrderHandler ports.QuoteOrderUseCase,
	getMenuHandler ports.GetMenuUseCase,
	logger *slog.Logger,
) *Server {
	return &Server{
		quoteOrderHandler: quoteOrderHandler,
		getMenuHandler:    getMenuHandler,
		logger:            logger.With("component", "http_server"),
	}
}

// RegisterHandlers mounts the server routes on e.
func RegisterHandlers(e *echo.Echo, s *Server) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.GET("/menu", s.GetMenu)
	v1.POST("/orders/quote", s.QuoteOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetMenu handles GET /api/v1/menu - lists bases, sizes, milks and extras.
func (s *Server) GetMenu(ctx echo.Context) error {
	menu, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to read menu", "error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve menu",
		})
	}

	response := MenuResponse{
		Bases:         make([]MenuItem, len(menu.Bases)),
		Sizes:         make([]SizeItem, len(menu.Sizes)),
		Milks:         make([]MenuItem, len(menu.Milks)),
		SyrupPrice:    menu.SyrupPrice.String(),
		IcedSurcharge: menu.IcedSurcharge.String(),
		MaxSyrups:     menu.MaxSyrups,
		MinSugar:      menu.MinSugar,
		MaxSugar:      menu.MaxSugar,
	}
	for i, item := range menu.Bases {
		response.Bases[i] = MenuItem{Name: item.Base.String(), Price: item.Price.String()}
	}
	for i, item := range menu.Sizes {
		response.Sizes[i] = SizeItem{Name: item.Size.String(), Multiplier: item.Multiplier.StringFixed(1)}
	}
	for i, item := range menu.Milks {
		response.Milks[i] = MenuItem{Name: item.Milk.String(), Price: item.Price.String()}
	}

	return ctx.JSON(http.StatusOK, response)
}

// QuoteOrder handles POST /api/v1/orders/quote - prices a coffee selection.
func (s *Server) QuoteOrder(ctx echo.Context) error {
	var request QuoteRequest
	decoder := json.NewDecoder(ctx.Request().Body)
	decoder.UseNumber()
	if err := decoder.Decode(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewQuoteOrderCommand(
		request.Base,
		request.Size,
		request.Milk,
		request.Syrups,
		request.Sugar,
		request.Iced,
	)
	if err != nil {
		return s.selectionError(ctx, err)
	}

	quote, err := s.quoteOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.selectionError(ctx, err)
	}

	o := quote.Order
	return ctx.JSON(http.StatusOK, QuoteResponse{
		ID:          quote.ID.String(),
		Base:        o.Base().String(),
		Size:        o.Size().String(),
		Milk:        o.Milk().String(),
		Syrups:      o.Syrups(),
		Sugar:       o.Sugar(),
		Iced:        o.Iced(),
		Price:       o.Price(),
		Total:       o.Total().String(),
		Description: o.Description(),
	})
}

// selectionError answers 400 for errors caused by the request and 500 for anything else.
func (s *Server) selectionError(ctx echo.Context, err error) error {
	if errs.IsInvalidArgument(err) || errors.Is(err, errs.ErrTypeIsInvalid) {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	s.logger.ErrorContext(ctx.Request().Context(), "Failed to quote order", "error", err)
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "Failed to quote order",
	})
}
