package models

import "strings"

// Тема оформления
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Тема по умолчанию, если сохранённой нет
const DefaultTheme = ThemeDark

// ParseTheme разбирает сохранённое значение. ok == false для неизвестных значений
func ParseTheme(value string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case ThemeDark:
		return ThemeDark, true
	case ThemeLight:
		return ThemeLight, true
	}
	return DefaultTheme, false
}

// Toggled возвращает противоположную тему
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) IsDark() bool {
	return t == ThemeDark
}

func (t Theme) String() string {
	return string(t)
}
