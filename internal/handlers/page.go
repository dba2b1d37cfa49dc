package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"go_currency_converter/internal/converter"
	"go_currency_converter/internal/models"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// Данные для страницы виджета
type pageData struct {
	Theme      models.Theme
	Currencies []string
	Amount     string
	From       string
	To         string
	Status     string
	Result     string
	IsError    bool
}

func (h *Handler) newPageData(r *http.Request) pageData {
	return pageData{
		Theme:      h.themes.Current(),
		Currencies: h.supportedCurrencies,
		Amount:     strings.TrimSpace(r.FormValue("amount")),
		From:       strings.ToUpper(strings.TrimSpace(r.FormValue("from"))),
		To:         strings.ToUpper(strings.TrimSpace(r.FormValue("to"))),
	}
}

// Index показывает пустую форму
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, http.StatusOK, pageData{
		Theme:      h.themes.Current(),
		Currencies: h.supportedCurrencies,
	})
}

// SubmitConversion обрабатывает отправку формы. Любая ошибка превращается
// в сообщение на странице, форма остаётся доступной
func (h *Handler) SubmitConversion(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		data := h.newPageData(r)
		data.Result, data.IsError = converter.UserMessage(err), true
		h.renderPage(w, http.StatusBadRequest, data)
		return
	}

	data := h.newPageData(r)
	response, err := h.converter.ConvertInput(r.Context(), data.Amount, data.From, data.To)
	if err != nil {
		data.Result, data.IsError = converter.UserMessage(err), true
		h.renderPage(w, http.StatusOK, data)
		return
	}

	data.Status = response.Status
	data.Result = response.Result
	h.renderPage(w, http.StatusOK, data)
}

// Swap меняет местами исходную и целевую валюты, сумма сохраняется
func (h *Handler) Swap(w http.ResponseWriter, r *http.Request) {
	data := h.newPageData(r)
	data.From, data.To = data.To, data.From
	h.renderPage(w, http.StatusOK, data)
}

// SubmitThemeToggle переключает тему и возвращает на главную
func (h *Handler) SubmitThemeToggle(w http.ResponseWriter, r *http.Request) {
	if _, err := h.toggleTheme(r.Context()); err != nil {
		http.Error(w, "Failed to save theme", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) renderPage(w http.ResponseWriter, statusCode int, data pageData) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		h.logger.WithError(err).Error("Failed to render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.WithError(err).Debug("Failed to write page")
	}
}
