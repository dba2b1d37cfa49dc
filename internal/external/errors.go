package external

import "fmt"

// FetchError - сетевая ошибка или неуспешный HTTP статус.
// StatusCode == 0, если ответ не был получен.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("exchange rate request failed: HTTP status %d", e.StatusCode)
	}
	return fmt.Sprintf("exchange rate request failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// MalformedResponseError - ответ получен, но в нём нет ожидаемых данных
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed exchange rate response: %s: %v", e.Reason, e.Err)
	}
	return "malformed exchange rate response: " + e.Reason
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
