// Package stage resolves the bounded region panels are laid out in. The
// region may come from a fixed configuration value or from the usable work
// area of the active display; either way consumers see a stage-local
// rectangle with its origin at (0, 0).
package stage

import (
	"fmt"

	"github.com/1broseidon/stagehand/internal/geom"
	"github.com/1broseidon/stagehand/internal/platform"
)

// Provider reports the current stage rectangle in stage-local coordinates.
type Provider interface {
	Stage() (geom.Rect, error)
}

// FixedProvider always reports the same stage rectangle. Used when the
// configuration pins the stage size instead of tracking a display.
type FixedProvider struct {
	rect geom.Rect
}

// NewFixedProvider creates a provider for a pinned stage size.
func NewFixedProvider(size geom.Size) *FixedProvider {
	return &FixedProvider{rect: geom.Rect{Width: size.Width, Height: size.Height}}
}

// Stage returns the pinned rectangle.
func (p *FixedProvider) Stage() (geom.Rect, error) {
	return p.rect, nil
}

// DisplayProvider derives the stage from the active display's work area.
type DisplayProvider struct {
	backend platform.Backend
}

// NewDisplayProvider creates a provider backed by a platform display backend.
func NewDisplayProvider(backend platform.Backend) *DisplayProvider {
	return &DisplayProvider{backend: backend}
}

// Stage returns the active display's usable area as a stage-local rectangle.
func (p *DisplayProvider) Stage() (geom.Rect, error) {
	if p.backend == nil {
		return geom.Rect{}, fmt.Errorf("display provider has no backend")
	}
	display, err := p.backend.ActiveDisplay()
	if err != nil {
		return geom.Rect{}, fmt.Errorf("failed to resolve active display: %w", err)
	}
	return normalize(display.Usable), nil
}

// Padded wraps a provider and shrinks its stage by fixed insets.
type Padded struct {
	inner Provider
	pad   geom.Padding
}

// WithPadding wraps a provider with insets. Zero padding returns the inner
// provider unchanged.
func WithPadding(inner Provider, pad geom.Padding) Provider {
	if pad == (geom.Padding{}) {
		return inner
	}
	return &Padded{inner: inner, pad: pad}
}

// Stage returns the inner stage shrunk by the padding insets.
func (p *Padded) Stage() (geom.Rect, error) {
	r, err := p.inner.Stage()
	if err != nil {
		return geom.Rect{}, err
	}
	return normalize(geom.ApplyPadding(r, p.pad)), nil
}

// normalize drops the origin so consumers always work in stage-local space.
func normalize(r geom.Rect) geom.Rect {
	return geom.Rect{Width: r.Width, Height: r.Height}
}
