package config

import "sync"

// Settings holds the values the editor changes while running. They start
// from a Config and are safe for concurrent use.
type Settings struct {
	mu             sync.RWMutex
	fpsLimit       int
	cameraSpeed    float32
	sceneCollapsed bool
}

// NewSettings seeds runtime settings from cfg.
func NewSettings(cfg Config) *Settings {
	s := &Settings{}
	s.SetFPSLimit(cfg.FPSLimit)
	s.SetCameraSpeed(cfg.CameraSpeed)
	s.SetSceneCollapsed(cfg.SceneCollapsed)
	return s
}

// FPSLimit returns the frame cap; 0 means uncapped.
func (s *Settings) FPSLimit() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fpsLimit
}

// SetFPSLimit sets the frame cap. Values <= 0 uncap.
func (s *Settings) SetFPSLimit(limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		s.fpsLimit = 0
		return
	}
	s.fpsLimit = min(max(limit, MinFPSLimit), MaxFPSLimit)
}

// CameraSpeed returns the fly camera speed in units per second.
func (s *Settings) CameraSpeed() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cameraSpeed
}

// SetCameraSpeed sets the camera speed, clamped to the supported range.
func (s *Settings) SetCameraSpeed(speed float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cameraSpeed = min(max(speed, MinCameraSpeed), MaxCameraSpeed)
}

// SceneCollapsed reports whether the scene panel is hidden.
func (s *Settings) SceneCollapsed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sceneCollapsed
}

// SetSceneCollapsed hides or shows the scene panel.
func (s *Settings) SetSceneCollapsed(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sceneCollapsed = v
}
