package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
)

// Window holds the main window settings.
type Window struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Title     string `json:"title"`
	Resizable bool   `json:"resizable"`
	VSync     bool   `json:"vsync"`
}

// Config is the editor's startup configuration, read from a JSON file and
// merged over Default.
type Config struct {
	Window         Window     `json:"window"`
	ClearColor     [4]float32 `json:"clear_color"`
	EnableDocking  bool       `json:"enable_docking"`
	SidebarWidth   int        `json:"sidebar_width"`
	SceneCollapsed bool       `json:"scene_collapsed"`
	FPSLimit       int        `json:"fps_limit"`
	CameraSpeed    float32    `json:"camera_speed"`
	AssetsDir      string     `json:"assets_dir"`
	TextureDir     string     `json:"texture_dir"`
	ShaderDir      string     `json:"shader_dir"`
	DefaultTexture string     `json:"default_texture"`
	FloorTexture   string     `json:"floor_texture"`
	DecodeWorkers  int        `json:"decode_workers"`
	LogLevel       string     `json:"log_level"`
}

const (
	MinWindowWidth  = 320
	MinWindowHeight = 240
	MinFPSLimit     = 30
	MaxFPSLimit     = 1000
	MaxDecodeWorker = 16
	MinCameraSpeed  = 1
	MaxCameraSpeed  = 20
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "spx editor",
			Resizable: true,
			VSync:     true,
		},
		ClearColor:     [4]float32{0.1, 0.1, 0.12, 1},
		EnableDocking:  true,
		SidebarWidth:   260,
		FPSLimit:       0,
		CameraSpeed:    5,
		TextureDir:     "textures",
		ShaderDir:      "shaders",
		DefaultTexture: "checker.png",
		FloorTexture:   "grid.png",
		DecodeWorkers:  4,
		LogLevel:       "info",
	}
}

// Load reads path over Default and validates the result. A missing file is
// not an error; an empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Validate()
	return cfg, nil
}

// Validate clamps every field into its supported range.
func (c *Config) Validate() {
	c.Window.Width = max(c.Window.Width, MinWindowWidth)
	c.Window.Height = max(c.Window.Height, MinWindowHeight)
	if strings.TrimSpace(c.Window.Title) == "" {
		c.Window.Title = Default().Window.Title
	}

	if c.FPSLimit < 0 {
		c.FPSLimit = 0
	}
	if c.FPSLimit > 0 {
		c.FPSLimit = min(max(c.FPSLimit, MinFPSLimit), MaxFPSLimit)
	}

	c.SidebarWidth = min(max(c.SidebarWidth, 0), c.Window.Width/2)
	c.DecodeWorkers = min(max(c.DecodeWorkers, 1), MaxDecodeWorker)
	c.CameraSpeed = min(max(c.CameraSpeed, MinCameraSpeed), MaxCameraSpeed)

	for i, v := range c.ClearColor {
		c.ClearColor[i] = min(max(v, 0), 1)
	}
	if c.TextureDir == "" {
		c.TextureDir = "textures"
	}
	if c.ShaderDir == "" {
		c.ShaderDir = "shaders"
	}
	if _, err := c.Level(); err != nil {
		c.LogLevel = "info"
	}
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
