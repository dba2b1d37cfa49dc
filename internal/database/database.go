package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go_currency_converter/internal/config"
	"go_currency_converter/internal/models"
	"go_currency_converter/internal/theme"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// Ключ темы в таблице настроек
const themeKey = "theme"

// DB хранит тему в Postgres
var _ theme.Store = (*DB)(nil)

// Соединение с базой данных
type DB struct {
	conn   *sql.DB
	logger *logrus.Logger
}

// Создаём новое соединение с базой данных
func New(ctx context.Context, cfg *config.DatabaseConfig, logger *logrus.Logger) (*DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Проверяем соединение
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db, err := NewWithConn(ctx, conn, logger)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Оборачиваем готовое соединение и создаём таблицы
func NewWithConn(ctx context.Context, conn *sql.DB, logger *logrus.Logger) (*DB, error) {
	db := &DB{
		conn:   conn,
		logger: logger,
	}

	if err := db.createTables(ctx); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// Закрываем соединение с базой данных
func (db *DB) Close() error {
	return db.conn.Close()
}

// Создаём необходимые таблицы
func (db *DB) createTables(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS preferences (
			key VARCHAR(64) PRIMARY KEY,
			value VARCHAR(32) NOT NULL,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`

	if _, err := db.conn.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to execute table query: %w", err)
	}
	return nil
}

// Получаем сохранённую тему
func (db *DB) Load(ctx context.Context) (models.Theme, error) {
	query := `SELECT value FROM preferences WHERE key = $1`

	var value string
	err := db.conn.QueryRowContext(ctx, query, themeKey).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", theme.ErrNotFound
		}
		return "", fmt.Errorf("failed to get theme preference: %w", err)
	}

	t, ok := models.ParseTheme(value)
	if !ok {
		db.logger.WithField("value", value).Warn("Unknown theme value stored")
		return "", fmt.Errorf("unknown theme value %q", value)
	}
	return t, nil
}

// Сохраняем тему
func (db *DB) Save(ctx context.Context, t models.Theme) error {
	query := `INSERT INTO preferences (key, value, updated_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (key)
			  DO UPDATE SET value = $2, updated_at = $3`

	if _, err := db.conn.ExecContext(ctx, query, themeKey, t.String(), time.Now()); err != nil {
		return fmt.Errorf("failed to save theme preference: %w", err)
	}
	return nil
}
