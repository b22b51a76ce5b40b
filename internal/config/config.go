package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации примера.
// Пустые поля заменяются значениями по умолчанию через геттеры.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Noise    NoiseConfig    `yaml:"noise"`
	Grid     GridConfig     `yaml:"grid"`
	Collider ColliderConfig `yaml:"collider"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

type NoiseConfig struct {
	Seed    int64   `yaml:"seed"`
	Alpha   float64 `yaml:"alpha"`
	Beta    float64 `yaml:"beta"`
	Octaves int32   `yaml:"octaves"`
	Scale   float64 `yaml:"scale"`
}

type GridConfig struct {
	Width  int32   `yaml:"width"`
	Height int32   `yaml:"height"`
	Step   float64 `yaml:"step"`
}

type ColliderConfig struct {
	Width  int32 `yaml:"width"`
	Height int32 `yaml:"height"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Log:      LogConfig{Level: "info", MaxSizeMB: 10, MaxBackups: 3},
		Noise:    NoiseConfig{Alpha: 2.0, Beta: 2.0, Octaves: 3, Scale: 0.1},
		Grid:     GridConfig{Width: 8, Height: 8, Step: 1.0},
		Collider: ColliderConfig{Width: 2, Height: 2},
	}
}

// GetSeed возвращает сид шума с поддержкой fallback значений
func (n *NoiseConfig) GetSeed() int64 {
	if n.Seed != 0 {
		return n.Seed
	}
	if envVal := os.Getenv("VECMATH_SEED"); envVal != "" {
		if seed, err := strconv.ParseInt(envVal, 10, 64); err == nil {
			return seed
		}
	}
	return 12345
}

// applyDefaults заполняет нулевые поля значениями из Default
func (c *Config) applyDefaults() {
	def := Default()

	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = def.Log.MaxSizeMB
	}
	if c.Log.MaxBackups <= 0 {
		c.Log.MaxBackups = def.Log.MaxBackups
	}
	if c.Noise.Alpha == 0 {
		c.Noise.Alpha = def.Noise.Alpha
	}
	if c.Noise.Beta == 0 {
		c.Noise.Beta = def.Noise.Beta
	}
	if c.Noise.Octaves <= 0 {
		c.Noise.Octaves = def.Noise.Octaves
	}
	if c.Noise.Scale <= 0 {
		c.Noise.Scale = def.Noise.Scale
	}
	if c.Grid.Width <= 0 {
		c.Grid.Width = def.Grid.Width
	}
	if c.Grid.Height <= 0 {
		c.Grid.Height = def.Grid.Height
	}
	if c.Grid.Step <= 0 {
		c.Grid.Step = def.Grid.Step
	}
	if c.Collider.Width <= 0 {
		c.Collider.Width = def.Collider.Width
	}
	if c.Collider.Height <= 0 {
		c.Collider.Height = def.Collider.Height
	}
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать путь из ENV VECMATH_CONFIG,
// иначе возвращает конфигурацию по умолчанию.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("VECMATH_CONFIG")
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}
