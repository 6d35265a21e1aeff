// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hazadus/go-videoplayer/internal/data"
)

// EnvPrefix префикс переменных окружения, переопределяющих конфигурацию
const EnvPrefix = "VIDEOPLAYER"

// Config структура для хранения конфигурации приложения
type Config struct {
	Library    string `mapstructure:"library" yaml:"library"`         // Файл библиотеки (YAML или TOML)
	LibraryDir string `mapstructure:"library_dir" yaml:"library_dir"` // Каталог с медиафайлами для сканирования
	LogLevel   string `mapstructure:"log_level" yaml:"log_level"`
	Seed       uint64 `mapstructure:"seed" yaml:"seed"` // 0 означает случайный выбор при каждом запуске
	Prompt     string `mapstructure:"prompt" yaml:"prompt"`
}

// flagKeys связывает ключи конфигурации с именами флагов командной строки
var flagKeys = map[string]string{
	"library":     "library",
	"library_dir": "library-dir",
	"log_level":   "log-level",
	"seed":        "seed",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("library", "")
	v.SetDefault("library_dir", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("seed", 0)
	v.SetDefault("prompt", "VIDEOPLAYER> ")
}

// LoadConfig загружает конфигурацию приложения.
// Приоритет: флаги, переменные окружения VIDEOPLAYER_*, файл, значения по умолчанию.
// Пустой filePath означает работу без файла конфигурации.
func LoadConfig(filePath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("ошибка привязки флага %s: %w", name, err)
				}
			}
		}
	}

	if filePath != "" {
		path, err := data.ExpandHome(filePath)
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("ошибка чтения yaml конфигурации: %w", err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.Library != "" && c.LibraryDir != "" {
		return errors.New("нельзя одновременно задать library и library_dir")
	}
	return nil
}

// SlogLevel возвращает уровень логирования для slog
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("неверный уровень логирования %q: %w", c.LogLevel, err)
	}
	return level, nil
}
