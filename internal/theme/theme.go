package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go_currency_converter/internal/models"

	"github.com/sirupsen/logrus"
)

// Сохранённой темы нет
var ErrNotFound = errors.New("theme preference not found")

// Store хранит единственное значение темы
type Store interface {
	Load(ctx context.Context) (models.Theme, error)
	Save(ctx context.Context, theme models.Theme) error
}

// Controller держит текущую тему и сохраняет её при каждом изменении.
// Безопасен для конкурентного использования.
type Controller struct {
	mu     sync.Mutex
	store  Store
	theme  models.Theme
	logger *logrus.Logger
}

// NewController читает сохранённую тему. Если её нет или она повреждена - dark
func NewController(ctx context.Context, store Store, logger *logrus.Logger) *Controller {
	c := &Controller{
		store:  store,
		theme:  models.DefaultTheme,
		logger: logger,
	}

	saved, err := store.Load(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		logger.WithField("theme", c.theme).Debug("No saved theme, using default")
	case err != nil:
		logger.WithError(err).Warn("Failed to load theme preference, using default")
	default:
		c.theme = saved
	}

	return c
}

// Current возвращает текущую тему
func (c *Controller) Current() models.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

// Toggle переключает тему и сразу сохраняет её.
// При ошибке сохранения тема не меняется.
func (c *Controller) Toggle(ctx context.Context) (models.Theme, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.theme.Toggled()
	if err := c.store.Save(ctx, next); err != nil {
		return c.theme, fmt.Errorf("failed to save theme: %w", err)
	}
	c.theme = next

	c.logger.WithField("theme", next).Info("Theme toggled")
	return next, nil
}
