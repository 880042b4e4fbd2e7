// Package framebuffer manages the offscreen render target that the scene is
// drawn into before it is shown inside an editor panel.
//
// A Surface is owned by the render goroutine. None of its methods are safe for
// concurrent use.
package framebuffer

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrAllocation is returned when the device cannot build a complete render
// target at the requested size.
var ErrAllocation = errors.New("framebuffer: render target allocation failed")

// Target is the set of GPU objects backing a surface.
type Target struct {
	Framebuffer uint32
	Color       uint32
	Depth       uint32
}

// Valid reports whether both attachments exist.
func (t Target) Valid() bool {
	return t.Color != 0 && t.Depth != 0
}

func (t Target) empty() bool {
	return t.Framebuffer == 0 && t.Color == 0 && t.Depth == 0
}

// Device allocates and binds render targets.
type Device interface {
	// CreateRenderTarget returns a complete target or an error. On error it
	// may still return the objects it managed to create.
	CreateRenderTarget(width, height int) (Target, error)
	DestroyRenderTarget(t Target)
	BindRenderTarget(t Target, width, height int)
	BindDefaultRenderTarget(width, height int)
}

// WindowSize reports the owning window's framebuffer size in pixels.
type WindowSize func() (width, height int)

// State is the lifecycle state of a Surface.
type State int

const (
	Unconstructed State = iota
	Ready
)

func (s State) String() string {
	switch s {
	case Unconstructed:
		return "unconstructed"
	case Ready:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Surface is an offscreen color+depth target that follows a panel's size.
type Surface struct {
	device Device
	window WindowSize
	logger *slog.Logger

	target Target
	width  int
	height int
	state  State
	bound  bool
}

// Option configures a Surface.
type Option func(*Surface)

// WithLogger sets the logger used for allocation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Surface) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an unconstructed surface. No GPU work happens until EnsureSize.
func New(dev Device, window WindowSize, opts ...Option) *Surface {
	s := &Surface{
		device: dev,
		window: window,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current lifecycle state.
func (s *Surface) State() State { return s.state }

// IsBound reports whether the surface is the active render target.
func (s *Surface) IsBound() bool { return s.bound }

// Size returns the current attachment size, or 0,0 when unconstructed.
func (s *Surface) Size() (int, int) { return s.width, s.height }

// ColorTextureHandle returns the color attachment for display. The handle is
// only valid until the next EnsureSize that changes the size; callers must
// not keep it across frames. It returns 0 when unconstructed.
func (s *Surface) ColorTextureHandle() uint32 {
	if s.state != Ready {
		return 0
	}
	return s.target.Color
}

// EnsureSize makes the surface match width x height. A non-positive size is
// ignored. A matching size does nothing. Otherwise the current attachments are
// destroyed before new ones are created. On failure the surface is left
// unconstructed and an error wrapping ErrAllocation is returned.
func (s *Surface) EnsureSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if s.state == Ready && s.width == width && s.height == height {
		return nil
	}

	s.teardown()

	t, err := s.device.CreateRenderTarget(width, height)
	if err == nil && !t.Valid() {
		err = errors.New("device returned incomplete attachments")
	}
	if err != nil {
		if !t.empty() {
			s.device.DestroyRenderTarget(t)
		}
		s.logger.Warn("framebuffer: allocation failed", "width", width, "height", height, "err", err)
		return fmt.Errorf("%w: %dx%d: %v", ErrAllocation, width, height, err)
	}

	s.target = t
	s.width = width
	s.height = height
	s.state = Ready
	s.logger.Debug("framebuffer: created", "width", width, "height", height, "color", t.Color)
	return nil
}

// Bind makes the surface the render target and sets the viewport to its size.
// It does nothing and returns false when unconstructed.
func (s *Surface) Bind() bool {
	if s.state != Ready {
		return false
	}
	s.device.BindRenderTarget(s.target, s.width, s.height)
	s.bound = true
	return true
}

// Unbind restores the default render target and the window's full viewport.
func (s *Surface) Unbind() {
	if !s.bound {
		return
	}
	w, h := s.windowSize()
	s.device.BindDefaultRenderTarget(w, h)
	s.bound = false
}

// RenderInto binds the surface, calls render with the surface size and
// unbinds again. It returns false without calling render when the surface is
// unconstructed.
func (s *Surface) RenderInto(render func(width, height int)) bool {
	if !s.Bind() {
		return false
	}
	defer s.Unbind()
	render(s.width, s.height)
	return true
}

// Destroy releases the attachments. The surface can be sized again later.
func (s *Surface) Destroy() {
	s.teardown()
}

func (s *Surface) teardown() {
	if s.bound {
		s.Unbind()
	}
	if s.state == Ready {
		s.device.DestroyRenderTarget(s.target)
		s.logger.Debug("framebuffer: destroyed", "width", s.width, "height", s.height)
	}
	s.target = Target{}
	s.width = 0
	s.height = 0
	s.state = Unconstructed
}

func (s *Surface) windowSize() (int, int) {
	if s.window == nil {
		return s.width, s.height
	}
	return s.window()
}
