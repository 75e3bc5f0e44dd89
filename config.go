package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	configFileName = ".paperfoldrc"
	envPrefix      = "PAPERFOLD_"
)

type Config struct {
	SaveDirectory string `koanf:"save_directory"`
	Confirmations bool   `koanf:"confirmations"`
	Silhouette    string `koanf:"silhouette"`
	ShowMaterial  bool   `koanf:"show_material"`
	LogFile       string `koanf:"log_file"`
	PNGSize       int    `koanf:"png_size"`
}

func defaultConfig() *Config {
	return &Config{
		Confirmations: true,
		ShowMaterial:  true,
		PNGSize:       800,
	}
}

// loadConfig reads the YAML rc file at path (~/.paperfoldrc when empty), then
// applies PAPERFOLD_* environment overrides. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	home, _ := os.UserHomeDir()
	if path == "" && home != "" {
		path = filepath.Join(home, configFileName)
	}
	if path != "" {
		content, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	// PAPERFOLD_SAVE_DIRECTORY -> save_directory
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	config := defaultConfig()
	if err := k.Unmarshal("", config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if dir := config.SaveDirectory; dir != "" {
		if strings.HasPrefix(dir, "~") && home != "" {
			dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
		}
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		config.SaveDirectory = dir
	}
	if config.PNGSize <= 0 {
		config.PNGSize = defaultConfig().PNGSize
	}
	return config, nil
}

func (c *Config) GetSavePath(filename string) string {
	if c == nil || c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
