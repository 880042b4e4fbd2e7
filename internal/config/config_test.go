package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "editor.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"window": {"width": 1600, "height": 900, "title": "demo"},
		"fps_limit": 144,
		"log_level": "debug"
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1600, cfg.Window.Width)
	assert.Equal(t, 900, cfg.Window.Height)
	assert.Equal(t, "demo", cfg.Window.Title)
	assert.Equal(t, 144, cfg.FPSLimit)
	assert.Equal(t, Default().SidebarWidth, cfg.SidebarWidth)
	assert.Equal(t, Default().DefaultTexture, cfg.DefaultTexture)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadRejectsBadJSON(t *testing.T) {
	path := writeConfig(t, `{"window": `)
	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestValidateClamps(t *testing.T) {
	cfg := Config{
		Window:        Window{Width: 10, Height: 10, Title: "  "},
		ClearColor:    [4]float32{-1, 0.5, 2, 1},
		SidebarWidth:  5000,
		FPSLimit:      5,
		DecodeWorkers: 99,
		CameraSpeed:   0,
		LogLevel:      "loud",
	}
	cfg.Validate()

	assert.Equal(t, MinWindowWidth, cfg.Window.Width)
	assert.Equal(t, MinWindowHeight, cfg.Window.Height)
	assert.Equal(t, Default().Window.Title, cfg.Window.Title)
	assert.Equal(t, [4]float32{0, 0.5, 1, 1}, cfg.ClearColor)
	assert.Equal(t, MinWindowWidth/2, cfg.SidebarWidth)
	assert.Equal(t, MinFPSLimit, cfg.FPSLimit)
	assert.Equal(t, MaxDecodeWorker, cfg.DecodeWorkers)
	assert.Equal(t, float32(MinCameraSpeed), cfg.CameraSpeed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "textures", cfg.TextureDir)
	assert.Equal(t, "shaders", cfg.ShaderDir)

	cfg.FPSLimit = -3
	cfg.Validate()
	assert.Zero(t, cfg.FPSLimit)

	cfg.FPSLimit = 5000
	cfg.Validate()
	assert.Equal(t, MaxFPSLimit, cfg.FPSLimit)
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	cfg.Validate()
	assert.Equal(t, Default(), cfg)
}

func TestSettings(t *testing.T) {
	cfg := Default()
	cfg.FPSLimit = 60
	cfg.SceneCollapsed = true
	s := NewSettings(cfg)

	assert.Equal(t, 60, s.FPSLimit())
	assert.Equal(t, cfg.CameraSpeed, s.CameraSpeed())
	assert.True(t, s.SceneCollapsed())

	s.SetFPSLimit(10)
	assert.Equal(t, MinFPSLimit, s.FPSLimit())
	s.SetFPSLimit(-1)
	assert.Zero(t, s.FPSLimit())

	s.SetCameraSpeed(100)
	assert.Equal(t, float32(MaxCameraSpeed), s.CameraSpeed())

	s.SetSceneCollapsed(false)
	assert.False(t, s.SceneCollapsed())
}
