package external

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go_currency_converter/internal/config"
	"go_currency_converter/internal/models"

	"github.com/sirupsen/logrus"
)

// Некорректный код базовой валюты
var ErrInvalidBaseCurrency = errors.New("base currency must be a supported 3-letter code")

// RateObserver получает длительность и исход каждого запроса к провайдеру
type RateObserver interface {
	ObserveFetch(outcome string, duration time.Duration)
}

// Клиент для работы с exchangerate-api
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *logrus.Logger
	observer   RateObserver
}

// Создаём новый клиент для внешнего API. Повторов и кеширования нет
func New(cfg *config.ExternalConfig, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// WithObserver подключает сбор метрик запросов
func (c *Client) WithObserver(observer RateObserver) *Client {
	c.observer = observer
	return c
}

// Получаем таблицу курсов относительно base одним запросом
func (c *Client) FetchLatestRates(ctx context.Context, base string) (models.RateTable, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if !models.IsSupportedCurrency(base) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseCurrency, base)
	}

	start := time.Now()
	rates, err := c.fetch(ctx, base)
	c.observe(err, time.Since(start))
	return rates, err
}

func (c *Client) fetch(ctx context.Context, base string) (models.RateTable, error) {
	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("User-Agent", "Currency-Converter/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.WithFields(logrus.Fields{
		"base":       base,
		"body_bytes": len(body),
	}).Debug("Exchange rate API response")

	var apiResp models.ExternalAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, &MalformedResponseError{Reason: "invalid JSON", Err: err}
	}

	if apiResp.ConversionRates == nil {
		return nil, &MalformedResponseError{Reason: "no conversion_rates in response"}
	}

	c.logger.WithFields(logrus.Fields{
		"base":        base,
		"rates_count": len(apiResp.ConversionRates),
	}).Info("Successfully retrieved exchange rates")

	return models.RateTable(apiResp.ConversionRates), nil
}

func (c *Client) observe(err error, duration time.Duration) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveFetch(FetchOutcome(err), duration)
}

// FetchOutcome сводит ошибку запроса к метке для метрик
func FetchOutcome(err error) string {
	var fetchErr *FetchError
	var malformedErr *MalformedResponseError
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &fetchErr):
		return "fetch_error"
	case errors.As(err, &malformedErr):
		return "malformed_response"
	default:
		return "error"
	}
}
