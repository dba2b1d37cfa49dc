package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go_currency_converter/internal/models"
)

// FileStore хранит тему в JSON файле вида {"theme":"dark"}
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

type filePreference struct {
	Theme string `json:"theme"`
}

func (s *FileStore) Load(_ context.Context) (models.Theme, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read theme file: %w", err)
	}

	var pref filePreference
	if err := json.Unmarshal(data, &pref); err != nil {
		return "", fmt.Errorf("failed to parse theme file: %w", err)
	}

	theme, ok := models.ParseTheme(pref.Theme)
	if !ok {
		return "", fmt.Errorf("unknown theme %q in %s", pref.Theme, s.path)
	}
	return theme, nil
}

// Save пишет во временный файл и переименовывает его
func (s *FileStore) Save(_ context.Context, theme models.Theme) error {
	data, err := json.Marshal(filePreference{Theme: theme.String()})
	if err != nil {
		return fmt.Errorf("failed to encode theme: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create theme directory: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace theme file: %w", err)
	}
	return nil
}

// MemoryStore хранит тему только в памяти процесса
type MemoryStore struct {
	mu    sync.Mutex
	theme models.Theme
	saves int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (models.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.theme == "" {
		return "", ErrNotFound
	}
	return s.theme, nil
}

func (s *MemoryStore) Save(_ context.Context, theme models.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	s.saves++
	return nil
}

// Saves возвращает количество сохранений
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
