// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings: параметры запуска, которые можно менять без пересборки
type Settings struct {
	Seed          int64  // 0: сид от текущего времени
	MaxRounds     int    // длина матча
	StartFromMenu bool   // false: сразу в игру
	WeaponsFile   string // необязательный JSON с каталогом оружия
}

// DefaultSettings возвращает настройки по умолчанию
func DefaultSettings() Settings {
	return Settings{
		Seed:      0,
		MaxRounds: MaxRounds,
	}
}

// LoadSettings читает .env (если есть), затем переменные окружения.
// Переменные окружения процесса важнее значений из файла.
func LoadSettings(envFile string) (Settings, error) {
	s := DefaultSettings()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return s, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
			log.Printf("settings: %s not found, using environment only", envFile)
		}
	}

	if v := os.Getenv("SPIKE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return s, fmt.Errorf("invalid SPIKE_SEED %q: %w", v, err)
		}
		s.Seed = seed
	}
	if v := os.Getenv("SPIKE_MAX_ROUNDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return s, fmt.Errorf("invalid SPIKE_MAX_ROUNDS %q: %w", v, err)
		}
		if n < 1 {
			return s, fmt.Errorf("SPIKE_MAX_ROUNDS must be positive, got %d", n)
		}
		s.MaxRounds = n
	}
	if v := os.Getenv("SPIKE_START_FROM_MENU"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("invalid SPIKE_START_FROM_MENU %q: %w", v, err)
		}
		s.StartFromMenu = b
	}
	s.WeaponsFile = os.Getenv("SPIKE_WEAPONS_FILE")

	return s, nil
}
