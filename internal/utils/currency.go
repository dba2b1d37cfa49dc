package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go_currency_converter/internal/models"

	"github.com/shopspring/decimal"
)

// Количество знаков после запятой при отображении
const DisplayPlaces = 2

// UnsupportedCurrencyError - в таблице курсов нет одной или обеих валют.
// Codes перечислены в порядке: исходная, целевая.
type UnsupportedCurrencyError struct {
	Codes []string
}

func (e *UnsupportedCurrencyError) Error() string {
	if len(e.Codes) == 1 {
		return fmt.Sprintf("unsupported currency: %s", e.Codes[0])
	}
	return fmt.Sprintf("unsupported currencies: %s", strings.Join(e.Codes, ", "))
}

// Вычисляем курс валютной пары используя курсы относительно базовой валюты
func CalculateExchangeRate(from, to string, rates models.RateTable) (float64, error) {
	var missing []string
	fromRate, fromExists := lookupRate(rates, from)
	if !fromExists {
		missing = append(missing, from)
	}
	toRate, toExists := lookupRate(rates, to)
	if !toExists && to != from {
		missing = append(missing, to)
	}
	if len(missing) > 0 {
		return 0, &UnsupportedCurrencyError{Codes: missing}
	}

	return toRate / fromRate, nil
}

// Convert переводит amount из from в to по таблице курсов.
// Арифметика во float64, округление только при выводе.
func Convert(rates models.RateTable, from, to string, amount float64) (*models.ConversionResult, error) {
	rate, err := CalculateExchangeRate(from, to, rates)
	if err != nil {
		return nil, err
	}

	converted := amount * rate

	return &models.ConversionResult{
		From:                from,
		To:                  to,
		Amount:              amount,
		UnitRate:            Round2(rate),
		ConvertedAmount:     Round2(converted),
		UnitRateText:        FormatFixed(rate),
		ConvertedAmountText: FormatFixed(converted),
	}, nil
}

// Round2 округляет точное двоичное значение до 2 знаков, половина - от нуля.
// NaN и бесконечности возвращаются как есть.
func Round2(value float64) float64 {
	if !isFinite(value) {
		return value
	}
	return exactDecimal(value).Round(DisplayPlaces).InexactFloat64()
}

// FormatFixed форматирует значение ровно с 2 знаками, независимо от локали.
// 1.005 хранится как 1.00499999999999989... и выводится как "1.00"
func FormatFixed(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	}
	return exactDecimal(value).StringFixed(DisplayPlaces)
}

// Полное десятичное разложение float64: у него не больше 1074 знаков после запятой.
// NewFromFloat берёт кратчайшее представление и округлял бы 1.005 вверх
func exactDecimal(value float64) decimal.Decimal {
	return decimal.RequireFromString(strconv.FormatFloat(value, 'f', 1074, 64))
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// Курс считается отсутствующим, если его нет, он не положительный или NaN
func lookupRate(rates models.RateTable, code string) (float64, bool) {
	rate, ok := rates[code]
	if !ok || !isFinite(rate) || rate <= 0 {
		return 0, false
	}
	return rate, true
}
