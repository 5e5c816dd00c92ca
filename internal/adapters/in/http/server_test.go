package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpin "coffee/internal/adapters/in/http"
	"coffee/internal/core/application/usecases/commands"
	"coffee/internal/core/application/usecases/queries"
	"coffee/internal/core/domain/model/kernel"
	"coffee/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockQuoteOrderUseCase struct{ mock.Mock }

func (m *MockQuoteOrderUseCase) Handle(ctx context.Context, cmd commands.QuoteOrderCommand) (commands.Quote, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.Quote), args.Error(1)
}

type MockGetMenuUseCase struct{ mock.Mock }

func (m *MockGetMenuUseCase) Handle(ctx context.Context, query queries.GetMenuQuery) (queries.GetMenuQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetMenuQueryResponse), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEcho(quoter *MockQuoteOrderUseCase, menu *MockGetMenuUseCase) *echo.Echo {
	e := echo.New()
	httpin.RegisterHandlers(e, httpin.NewServer(quoter, menu, discardLogger()))
	return e
}

func newRealEcho() *echo.Echo {
	logger := discardLogger()
	e := echo.New()
	httpin.RegisterHandlers(e, httpin.NewServer(
		commands.NewQuoteOrderCommandHandler(logger),
		queries.NewGetMenuQueryHandler(logger),
		logger,
	))
	return e
}

func postQuote(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/quote", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpin.Error {
	t.Helper()
	var body httpin.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestServer_Health(t *testing.T) {
	e := newEcho(new(MockQuoteOrderUseCase), new(MockGetMenuUseCase))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestServer_GetMenu(t *testing.T) {
	t.Run("should list the menu", func(t *testing.T) {
		e := newRealEcho()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body httpin.MenuResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Bases, 4)
		assert.Equal(t, httpin.MenuItem{Name: "espresso", Price: "200"}, body.Bases[0])
		require.Len(t, body.Sizes, 3)
		assert.Equal(t, httpin.SizeItem{Name: "medium", Multiplier: "1.2"}, body.Sizes[1])
		require.Len(t, body.Milks, 5)
		assert.Equal(t, httpin.MenuItem{Name: "none", Price: "0"}, body.Milks[0])
		assert.Equal(t, "40", body.SyrupPrice)
		assert.Equal(t, "0.2", body.IcedSurcharge)
		assert.Equal(t, 4, body.MaxSyrups)
		assert.Equal(t, 5, body.MaxSugar)
	})

	t.Run("should answer 500 when the menu cannot be read", func(t *testing.T) {
		menu := new(MockGetMenuUseCase)
		menu.On("Handle", mock.Anything, mock.AnythingOfType("queries.GetMenuQuery")).
			Return(queries.GetMenuQueryResponse{}, errors.New("boom")).Once()
		e := newEcho(new(MockQuoteOrderUseCase), menu)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to retrieve menu", decodeError(t, rec).Message)
		menu.AssertExpectations(t)
	})
}

func TestServer_QuoteOrder(t *testing.T) {
	t.Run("should quote a full selection", func(t *testing.T) {
		e := newRealEcho()

		rec := postQuote(e, `{
			"base": "latte",
			"size": "medium",
			"milk": "oat",
			"syrups": ["vanilla", "caramel"],
			"sugar": 2,
			"iced": true
		}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var body httpin.QuoteResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		_, err := kernel.UUIDFromString(body.ID)
		require.NoError(t, err)
		assert.Equal(t, "latte", body.Base)
		assert.Equal(t, "medium", body.Size)
		assert.Equal(t, "oat", body.Milk)
		assert.Equal(t, []string{"vanilla", "caramel"}, body.Syrups)
		assert.Equal(t, 2, body.Sugar)
		assert.True(t, body.Iced)
		assert.InDelta(t, 500.2, body.Price, 1e-4)
		assert.Equal(t, "500.20", body.Total)
		assert.Equal(t, "medium latte with oat milk +vanilla, caramel (iced) 2 tsp sugar", body.Description)
	})

	t.Run("should default omitted extras", func(t *testing.T) {
		e := newRealEcho()

		rec := postQuote(e, `{"base": "espresso", "size": "small"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var body httpin.QuoteResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "none", body.Milk)
		assert.Empty(t, body.Syrups)
		assert.Equal(t, "small espresso", body.Description)
		assert.Equal(t, "200.00", body.Total)
	})

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"missing base", `{"size": "small"}`, "Base is required"},
		{"missing size", `{"base": "americano"}`, "Size is required"},
		{"unknown milk", `{"base": "latte", "size": "small", "milk": "almond"}`, `"almond"`},
		{"sugar out of range", `{"base": "latte", "size": "small", "sugar": 6}`, "sugar is 6"},
		{"sugar as string", `{"base": "latte", "size": "small", "sugar": "2"}`, "sugar must be an integer"},
		{"fractional sugar", `{"base": "latte", "size": "small", "sugar": 2.5}`, "sugar must be an integer"},
		{"iced as number", `{"base": "latte", "size": "small", "iced": 1}`, "iced must be a boolean"},
		{"five syrups", `{"base": "latte", "size": "small", "syrups": ["a", "b", "c", "d", "e"]}`, "cannot add more than 4 syrups"},
		{"malformed body", `{"base": `, "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			e := newRealEcho()

			rec := postQuote(e, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, http.StatusBadRequest, body.Code)
			assert.Contains(t, body.Message, tt.message)
		})
	}

	t.Run("should pass the decoded selection to the use case", func(t *testing.T) {
		quoter := new(MockQuoteOrderUseCase)
		o, err := order.NewBuilder().SetBase(order.Cappuccino).SetSize(order.Large).Build()
		require.NoError(t, err)
		quote := commands.Quote{ID: kernel.NewUUID(), Order: o}

		quoter.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.QuoteOrderCommand) bool {
			sugar, ok := cmd.Sugar()
			return cmd.Base() == order.Cappuccino && cmd.Size() == order.Large && ok && sugar == 3
		})).Return(quote, nil).Once()
		e := newEcho(quoter, new(MockGetMenuUseCase))

		rec := postQuote(e, `{"base": "cappuccino", "size": "large", "sugar": 3}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var body httpin.QuoteResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, quote.ID.String(), body.ID)
		quoter.AssertExpectations(t)
	})

	t.Run("should answer 500 on unexpected errors", func(t *testing.T) {
		quoter := new(MockQuoteOrderUseCase)
		quoter.On("Handle", mock.Anything, mock.Anything).
			Return(commands.Quote{}, errors.New("boom")).Once()
		e := newEcho(quoter, new(MockGetMenuUseCase))

		rec := postQuote(e, `{"base": "latte", "size": "small"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to quote order", decodeError(t, rec).Message)
		quoter.AssertExpectations(t)
	})
}
