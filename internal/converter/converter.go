package converter

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"go_currency_converter/internal/external"
	"go_currency_converter/internal/models"
	"go_currency_converter/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// RateFetcher возвращает свежую таблицу курсов относительно base
type RateFetcher interface {
	FetchLatestRates(ctx context.Context, base string) (models.RateTable, error)
}

// Recorder учитывает исход каждой конвертации
type Recorder interface {
	ObserveConversion(outcome string)
}

// ValidationError - некорректный ввод, сеть не вызывалась
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Service выполняет отправку формы: проверка ввода, запрос курсов, расчёт.
// Курсы запрашиваются заново на каждый вызов и нигде не хранятся.
type Service struct {
	rates    RateFetcher
	base     string
	logger   *logrus.Logger
	recorder Recorder
	validate *validator.Validate
}

func New(rates RateFetcher, base string, logger *logrus.Logger) *Service {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Service{
		rates:    rates,
		base:     base,
		logger:   logger,
		validate: validate,
	}
}

// WithRecorder подключает учёт конвертаций
func (s *Service) WithRecorder(recorder Recorder) *Service {
	s.recorder = recorder
	return s
}

// ConvertInput принимает значения формы как есть. Сумма в ответе выводится так, как её ввели
func (s *Service) ConvertInput(ctx context.Context, amountText, from, to string) (*models.ConversionResponse, error) {
	amount, err := ParseAmount(amountText)
	if err != nil {
		s.record(err)
		return nil, err
	}

	req := models.ConversionRequest{From: from, To: to, Amount: amount}
	return s.convert(ctx, req, strings.TrimSpace(amountText))
}

// Convert выполняет конвертацию для запроса API
func (s *Service) Convert(ctx context.Context, req models.ConversionRequest) (*models.ConversionResponse, error) {
	return s.convert(ctx, req, "")
}

func (s *Service) convert(ctx context.Context, req models.ConversionRequest, amountText string) (*models.ConversionResponse, error) {
	req.From = normalizeCode(req.From)
	req.To = normalizeCode(req.To)

	if err := s.validateRequest(req); err != nil {
		s.record(err)
		return nil, err
	}
	if amountText == "" {
		amountText = decimal.NewFromFloat(req.Amount).String()
	}

	fields := logrus.Fields{
		"from":   req.From,
		"to":     req.To,
		"amount": amountText,
	}
	s.logger.WithFields(fields).Debug("Converting")

	rates, err := s.rates.FetchLatestRates(ctx, s.base)
	if err != nil {
		s.logger.WithError(err).WithFields(fields).Error("Failed to fetch exchange rates")
		s.record(err)
		return nil, err
	}

	result, err := utils.Convert(rates, req.From, req.To, req.Amount)
	if err != nil {
		s.logger.WithError(err).WithFields(fields).Error("Failed to convert amount")
		s.record(err)
		return nil, err
	}

	response := &models.ConversionResponse{
		ConversionResult: *result,
		Status:           fmt.Sprintf("1 %s = %s %s", req.From, result.UnitRateText, req.To),
		Result:           fmt.Sprintf("%s %s = %s %s", amountText, req.From, result.ConvertedAmountText, req.To),
	}

	s.logger.WithFields(logrus.Fields{
		"from":             req.From,
		"to":               req.To,
		"unit_rate":        result.UnitRateText,
		"converted_amount": result.ConvertedAmountText,
	}).Info("Conversion completed")

	s.record(nil)
	return response, nil
}

func (s *Service) validateRequest(req models.ConversionRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	first := validationErrs[0]
	switch first.Field() {
	case "amount":
		return &ValidationError{Field: "amount", Message: "amount must be a non-negative number"}
	default:
		if first.Tag() == "required" {
			return &ValidationError{Field: first.Field(), Message: first.Field() + " currency is required"}
		}
		return &ValidationError{Field: first.Field(), Message: fmt.Sprintf("%s currency must be a 3-letter code", first.Field())}
	}
}

func (s *Service) record(err error) {
	if s.recorder != nil {
		s.recorder.ObserveConversion(Outcome(err))
	}
}

// ParseAmount разбирает введённую сумму. Отрицательные и нечисловые значения отклоняются
func ParseAmount(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, &ValidationError{Field: "amount", Message: "amount is required"}
	}

	value, err := decimal.NewFromString(text)
	if err != nil {
		return 0, &ValidationError{Field: "amount", Message: fmt.Sprintf("amount %q is not a number", text)}
	}
	if value.IsNegative() {
		return 0, &ValidationError{Field: "amount", Message: "amount must be a non-negative number"}
	}
	return value.InexactFloat64(), nil
}

// Outcome сводит ошибку к метке для метрик
func Outcome(err error) string {
	var validationErr *ValidationError
	var unsupportedErr *utils.UnsupportedCurrencyError
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &validationErr):
		return "validation_error"
	case errors.As(err, &unsupportedErr):
		return "unsupported_currency"
	default:
		return external.FetchOutcome(err)
	}
}

// UserMessage - единое сообщение об ошибке для пользователя
func UserMessage(err error) string {
	return "Error: " + err.Error()
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
