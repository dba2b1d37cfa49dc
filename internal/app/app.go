package app

import (
	"context"
	"fmt"

	"go_currency_converter/internal/config"
	"go_currency_converter/internal/database"
	"go_currency_converter/internal/theme"

	"github.com/sirupsen/logrus"
)

func noopClose() error { return nil }

// OpenThemeStore выбирает хранилище темы по конфигурации.
// Вторым значением возвращается функция закрытия хранилища
func OpenThemeStore(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (theme.Store, func() error, error) {
	switch cfg.Theme.Store {
	case config.ThemeStoreFile, "":
		logger.WithField("path", cfg.Theme.FilePath).Info("Using file theme store")
		return theme.NewFileStore(cfg.Theme.FilePath), noopClose, nil
	case config.ThemeStoreMemory:
		logger.Info("Using in-memory theme store")
		return theme.NewMemoryStore(), noopClose, nil
	case config.ThemeStorePostgres:
		db, err := database.New(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres theme store: %w", err)
		}
		logger.WithFields(logrus.Fields{
			"host":   cfg.Database.Host,
			"dbname": cfg.Database.DBName,
		}).Info("Using postgres theme store")
		return db, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown theme store %q", cfg.Theme.Store)
	}
}
