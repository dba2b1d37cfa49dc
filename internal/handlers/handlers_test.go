package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go_currency_converter/internal/converter"
	"go_currency_converter/internal/external"
	"go_currency_converter/internal/logger"
	"go_currency_converter/internal/models"
	"go_currency_converter/internal/theme"
	"go_currency_converter/internal/utils"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Мок для конвертера
type MockConverter struct {
	mock.Mock
}

func (m *MockConverter) ConvertInput(ctx context.Context, amountText, from, to string) (*models.ConversionResponse, error) {
	args := m.Called(amountText, from, to)
	resp, _ := args.Get(0).(*models.ConversionResponse)
	return resp, args.Error(1)
}

func (m *MockConverter) Convert(ctx context.Context, req models.ConversionRequest) (*models.ConversionResponse, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*models.ConversionResponse)
	return resp, args.Error(1)
}

// Мок для контроллера темы
type MockThemes struct {
	mock.Mock
}

func (m *MockThemes) Current() models.Theme {
	args := m.Called()
	return args.Get(0).(models.Theme)
}

func (m *MockThemes) Toggle(ctx context.Context) (models.Theme, error) {
	args := m.Called()
	return args.Get(0).(models.Theme), args.Error(1)
}

var testCurrencies = []string{"EUR", "GBP", "JPY", "USD"}

func newTestHandler(conv Converter, themes ThemeController) *Handler {
	return New(conv, themes, logger.Discard(), testCurrencies)
}

func newRouter(h *Handler) *mux.Router {
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	h.RegisterAPIRoutes(router.PathPrefix("/api/v1").Subrouter())
	return router
}

func sampleResponse() *models.ConversionResponse {
	return &models.ConversionResponse{
		ConversionResult: models.ConversionResult{
			From: "USD", To: "EUR", Amount: 100,
			UnitRate: 0.9, ConvertedAmount: 90,
			UnitRateText: "0.90", ConvertedAmountText: "90.00",
		},
		Status: "1 USD = 0.90 EUR",
		Result: "100 USD = 90.00 EUR",
	}
}

func TestConvertAPI(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(*MockConverter)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Valid request",
			body: `{"from":"USD","to":"EUR","amount":100}`,
			mockSetup: func(m *MockConverter) {
				m.On("Convert", models.ConversionRequest{From: "USD", To: "EUR", Amount: 100}).Return(sampleResponse(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid JSON",
			body:           `{"from":`,
			mockSetup:      func(m *MockConverter) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Validation error",
			body: `{"from":"USD","to":"EUR","amount":-1}`,
			mockSetup: func(m *MockConverter) {
				m.On("Convert", mock.Anything).Return(nil, &converter.ValidationError{Field: "amount", Message: "amount must be a non-negative number"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Error: amount must be a non-negative number",
		},
		{
			name: "Unsupported currency",
			body: `{"from":"USD","to":"GBP","amount":1}`,
			mockSetup: func(m *MockConverter) {
				m.On("Convert", mock.Anything).Return(nil, &utils.UnsupportedCurrencyError{Codes: []string{"GBP"}})
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "GBP",
		},
		{
			name: "Provider failure",
			body: `{"from":"USD","to":"EUR","amount":1}`,
			mockSetup: func(m *MockConverter) {
				m.On("Convert", mock.Anything).Return(nil, &external.FetchError{StatusCode: 500})
			},
			expectedStatus: http.StatusBadGateway,
			expectedError:  "500",
		},
		{
			name: "Malformed provider response",
			body: `{"from":"USD","to":"EUR","amount":1}`,
			mockSetup: func(m *MockConverter) {
				m.On("Convert", mock.Anything).Return(nil, &external.MalformedResponseError{Reason: "no conversion_rates in response"})
			},
			expectedStatus: http.StatusBadGateway,
			expectedError:  "conversion_rates",
		},
		{
			name: "Unexpected error",
			body: `{"from":"USD","to":"EUR","amount":1}`,
			mockSetup: func(m *MockConverter) {
				m.On("Convert", mock.Anything).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := new(MockConverter)
			tt.mockSetup(conv)
			handler := newTestHandler(conv, new(MockThemes))

			req := httptest.NewRequest("POST", "/api/v1/convert", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rr := httptest.NewRecorder()
			handler.Convert(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp models.ConversionResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "0.90", resp.UnitRateText)
				assert.Equal(t, "100 USD = 90.00 EUR", resp.Result)
			}

			if tt.expectedError != "" {
				var errorResp models.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResp))
				assert.Contains(t, errorResp.Message, tt.expectedError)
			}

			conv.AssertExpectations(t)
		})
	}
}

func TestGetCurrencies(t *testing.T) {
	router := newRouter(newTestHandler(new(MockConverter), new(MockThemes)))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/currencies", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.CurrenciesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, testCurrencies, resp.Currencies)
}

func TestThemeAPI(t *testing.T) {
	store := theme.NewMemoryStore()
	controller := theme.NewController(context.Background(), store, logger.Discard())
	router := newRouter(newTestHandler(new(MockConverter), controller))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/theme", nil))
	assert.JSONEq(t, `{"theme":"dark"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("POST", "/api/v1/theme/toggle", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"theme":"light"}`, rr.Body.String())

	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, saved)
}

func TestThemeAPI_SaveFailure(t *testing.T) {
	themes := new(MockThemes)
	themes.On("Toggle").Return(models.ThemeDark, assert.AnError)
	handler := newTestHandler(new(MockConverter), themes)

	rr := httptest.NewRecorder()
	handler.ToggleTheme(rr, httptest.NewRequest("POST", "/api/v1/theme/toggle", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	themes.AssertExpectations(t)
}

func postForm(router http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestIndex(t *testing.T) {
	themes := new(MockThemes)
	themes.On("Current").Return(models.ThemeDark)
	router := newRouter(newTestHandler(new(MockConverter), themes))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, `<html lang="en" class="dark">`)
	assert.Contains(t, body, `<option value="">From</option>`)
	assert.Contains(t, body, `<option value="JPY">JPY</option>`)
	assert.Contains(t, body, "🌞")
}

func TestIndex_LightTheme(t *testing.T) {
	themes := new(MockThemes)
	themes.On("Current").Return(models.ThemeLight)
	router := newRouter(newTestHandler(new(MockConverter), themes))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	body := rr.Body.String()
	assert.Contains(t, body, `<html lang="en" class="">`)
	assert.Contains(t, body, "🌙")
}

func TestSubmitConversion(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		conv := new(MockConverter)
		conv.On("ConvertInput", "100", "USD", "EUR").Return(sampleResponse(), nil)
		themes := new(MockThemes)
		themes.On("Current").Return(models.ThemeDark)
		router := newRouter(newTestHandler(conv, themes))

		rr := postForm(router, "/convert", url.Values{"amount": {"100"}, "from": {"usd"}, "to": {"EUR"}})

		require.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "1 USD = 0.90 EUR")
		assert.Contains(t, body, "100 USD = 90.00 EUR")
		assert.Contains(t, body, `<option value="USD" selected>USD</option>`)
		assert.Contains(t, body, `<option value="EUR" selected>EUR</option>`)
		assert.Contains(t, body, `value="100"`)
		conv.AssertExpectations(t)
	})

	t.Run("Provider error keeps the form usable", func(t *testing.T) {
		conv := new(MockConverter)
		conv.On("ConvertInput", "100", "USD", "EUR").Return(nil, &external.FetchError{StatusCode: 500})
		themes := new(MockThemes)
		themes.On("Current").Return(models.ThemeDark)
		router := newRouter(newTestHandler(conv, themes))

		rr := postForm(router, "/convert", url.Values{"amount": {"100"}, "from": {"USD"}, "to": {"EUR"}})

		require.Equal(t, http.StatusOK, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "Error: exchange rate request failed: HTTP status 500")
		assert.Contains(t, body, `class="result error"`)
		assert.Contains(t, body, `<form class="convert" method="post" action="/convert">`)
		assert.NotContains(t, body, `class="status"`)
	})
}

func TestSwap(t *testing.T) {
	themes := new(MockThemes)
	themes.On("Current").Return(models.ThemeDark)
	conv := new(MockConverter)
	router := newRouter(newTestHandler(conv, themes))

	rr := postForm(router, "/swap", url.Values{"amount": {"42"}, "from": {"USD"}, "to": {"JPY"}})

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `value="42"`)

	fromSelect := body[strings.Index(body, `name="from"`):strings.Index(body, `name="to"`)]
	assert.Contains(t, fromSelect, `<option value="JPY" selected>`)
	toSelect := body[strings.Index(body, `name="to"`):]
	assert.Contains(t, toSelect, `<option value="USD" selected>`)
	conv.AssertNotCalled(t, "ConvertInput", mock.Anything, mock.Anything, mock.Anything)
}

type recordingThemeRecorder struct {
	toggles []string
}

func (r *recordingThemeRecorder) ObserveThemeToggle(theme string) {
	r.toggles = append(r.toggles, theme)
}

func TestSubmitThemeToggle(t *testing.T) {
	controller := theme.NewController(context.Background(), theme.NewMemoryStore(), logger.Discard())
	recorder := &recordingThemeRecorder{}
	router := newRouter(newTestHandler(new(MockConverter), controller).WithRecorder(recorder))

	rr := postForm(router, "/theme/toggle", url.Values{})

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.Equal(t, models.ThemeLight, controller.Current())
	assert.Equal(t, []string{"light"}, recorder.toggles)
}

func TestHealth(t *testing.T) {
	router := newRouter(newTestHandler(new(MockConverter), new(MockThemes)))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"healthy"`)
}
