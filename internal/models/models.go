package models

// Курсы валют относительно базовой валюты: код -> курс
type RateTable map[string]float64

// Намерение пользователя конвертировать сумму
type ConversionRequest struct {
	From   string  `json:"from" validate:"required,len=3,alpha"` // Исходная валюта (например, "USD")
	To     string  `json:"to" validate:"required,len=3,alpha"`   // Целевая валюта (например, "EUR")
	Amount float64 `json:"amount" validate:"gte=0"`              // Сумма в исходной валюте
}

// Результат конвертации. Все значения округлены до 2 знаков
type ConversionResult struct {
	From                string  `json:"from"`
	To                  string  `json:"to"`
	Amount              float64 `json:"amount"`
	UnitRate            float64 `json:"unit_rate"`
	ConvertedAmount     float64 `json:"converted_amount"`
	UnitRateText        string  `json:"unit_rate_text"`
	ConvertedAmountText string  `json:"converted_amount_text"`
}

// Ответ API на конвертацию
type ConversionResponse struct {
	ConversionResult
	Status string `json:"status"` // "1 USD = 0.90 EUR"
	Result string `json:"result"` // "100 USD = 90.00 EUR"
}

// Список поддерживаемых валют
type CurrenciesResponse struct {
	Currencies []string `json:"currencies"`
}

// Текущая тема оформления
type ThemeResponse struct {
	Theme Theme `json:"theme"`
}

// Ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Ответ от exchangerate-api (v6, /latest/{base}).
// ConversionRates остаётся nil, если поле отсутствует в ответе.
type ExternalAPIResponse struct {
	Result             string             `json:"result"`
	BaseCode           string             `json:"base_code"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
	ConversionRates    map[string]float64 `json:"conversion_rates"`
	ErrorType          string             `json:"error-type,omitempty"`
}
