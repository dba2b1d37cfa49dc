package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"go_currency_converter/internal/converter"
	"go_currency_converter/internal/external"
	"go_currency_converter/internal/models"
	"go_currency_converter/internal/utils"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Конвертер, через который проходят отправки формы и запросы API
type Converter interface {
	ConvertInput(ctx context.Context, amountText, from, to string) (*models.ConversionResponse, error)
	Convert(ctx context.Context, req models.ConversionRequest) (*models.ConversionResponse, error)
}

// Контроллер темы оформления
type ThemeController interface {
	Current() models.Theme
	Toggle(ctx context.Context) (models.Theme, error)
}

// Учёт переключений темы
type ThemeRecorder interface {
	ObserveThemeToggle(theme string)
}

// Зависимости для обработчиков
type Handler struct {
	converter           Converter
	themes              ThemeController
	logger              *logrus.Logger
	supportedCurrencies []string
	recorder            ThemeRecorder
	page                *template.Template
}

// Создаём новый экземпляр Handler
func New(conv Converter, themes ThemeController, logger *logrus.Logger, supportedCurrencies []string) *Handler {
	return &Handler{
		converter:           conv,
		themes:              themes,
		logger:              logger,
		supportedCurrencies: supportedCurrencies,
		page:                pageTemplate,
	}
}

// WithRecorder подключает учёт переключений темы
func (h *Handler) WithRecorder(recorder ThemeRecorder) *Handler {
	h.recorder = recorder
	return h
}

// @Summary Список валют
// @Description Возвращает фиксированный список поддерживаемых валют в порядке отображения
// @Tags currencies
// @Produce json
// @Success 200 {object} models.CurrenciesResponse
// @Router /api/v1/currencies [get]
func (h *Handler) GetCurrencies(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, models.CurrenciesResponse{Currencies: h.supportedCurrencies})
}

// @Summary Конвертировать сумму
// @Description Запрашивает актуальные курсы относительно USD и пересчитывает сумму из одной валюты в другую. Значения округляются до 2 знаков.
// @Tags conversion
// @Accept json
// @Produce json
// @Param request body models.ConversionRequest true "Запрос на конвертацию"
// @Success 200 {object} models.ConversionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/convert [post]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var req models.ConversionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}

	response, err := h.converter.Convert(r.Context(), req)
	if err != nil {
		status, title := errorStatus(err)
		h.writeErrorResponse(w, status, title, converter.UserMessage(err))
		return
	}

	h.writeJSONResponse(w, http.StatusOK, response)
}

// @Summary Текущая тема
// @Description Возвращает текущую тему оформления (dark или light)
// @Tags theme
// @Produce json
// @Success 200 {object} models.ThemeResponse
// @Router /api/v1/theme [get]
func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, models.ThemeResponse{Theme: h.themes.Current()})
}

// @Summary Переключить тему
// @Description Переключает тему оформления и сразу сохраняет её
// @Tags theme
// @Produce json
// @Success 200 {object} models.ThemeResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/theme/toggle [post]
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	next, err := h.toggleTheme(r.Context())
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "Internal error", "Failed to save theme")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, models.ThemeResponse{Theme: next})
}

// @Summary Health check
// @Description Проверка состояния сервиса
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "currency-converter",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	h.writeJSONResponse(w, http.StatusOK, response)
}

func (h *Handler) toggleTheme(ctx context.Context) (models.Theme, error) {
	next, err := h.themes.Toggle(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to toggle theme")
		return next, err
	}
	if h.recorder != nil {
		h.recorder.ObserveThemeToggle(next.String())
	}
	return next, nil
}

// Статус ответа API по типу ошибки
func errorStatus(err error) (int, string) {
	var validationErr *converter.ValidationError
	var unsupportedErr *utils.UnsupportedCurrencyError
	var fetchErr *external.FetchError
	var malformedErr *external.MalformedResponseError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, "Validation error"
	case errors.As(err, &unsupportedErr):
		return http.StatusUnprocessableEntity, "Unsupported currency"
	case errors.As(err, &fetchErr), errors.As(err, &malformedErr):
		return http.StatusBadGateway, "Exchange rate provider error"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}

// Записываем JSON ответ
func (h *Handler) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.WithError(err).Error("Failed to encode JSON response")
	}
}

// Записываем JSON ответ с ошибкой
func (h *Handler) writeErrorResponse(w http.ResponseWriter, statusCode int, error, message string) {
	response := models.ErrorResponse{
		Error:   error,
		Message: message,
	}

	h.writeJSONResponse(w, statusCode, response)
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.Index).Methods("GET")
	router.HandleFunc("/convert", h.SubmitConversion).Methods("POST")
	router.HandleFunc("/swap", h.Swap).Methods("POST")
	router.HandleFunc("/theme/toggle", h.SubmitThemeToggle).Methods("POST")
	router.HandleFunc("/health", h.Health).Methods("GET")
}

// Маршруты JSON API, обычно на subrouter /api/v1
func (h *Handler) RegisterAPIRoutes(router *mux.Router) {
	router.HandleFunc("/currencies", h.GetCurrencies).Methods("GET")
	router.HandleFunc("/convert", h.Convert).Methods("POST")
	router.HandleFunc("/theme", h.GetTheme).Methods("GET")
	router.HandleFunc("/theme/toggle", h.ToggleTheme).Methods("POST")
}
