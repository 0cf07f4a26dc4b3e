// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeline

import (
	"fmt"

	"cogentcore.org/animedit/base/iox/tomlx"
)

// Config contains the layout parameters of a timeline view.
// It is not modified after the view is created.
type Config struct {

	// Width is the width of the keyframe area in pixels.
	Width float64 `toml:"width"`

	// Height is the height of the view in pixels.
	Height float64 `toml:"height"`

	// HeaderHeight is the height of the time header at the top of the view.
	// Pressing the pointer within it moves the playhead.
	HeaderHeight float64 `toml:"header_height"`

	// PropertyColumnWidth is the number of pixels per second at zoom 1.
	PropertyColumnWidth float64 `toml:"property_column_width"`

	// RowHeight is the height of one property row.
	RowHeight float64 `toml:"row_height"`

	// OffsetX is the left edge of the keyframe area within the view.
	// Event positions are shifted by it before time mapping, and
	// rendered positions are shifted back.
	OffsetX float64 `toml:"offset_x"`

	// OffsetY is the top of the first property row within the view.
	OffsetY float64 `toml:"offset_y"`

	// MinGridSpacing is the minimum spacing of time grid lines in pixels.
	MinGridSpacing float64 `toml:"min_grid_spacing"`

	// HitNested makes pointer hit testing include the keyframes of
	// expanded child properties, instead of only top-level properties.
	HitNested bool `toml:"hit_nested"`
}

// DefaultConfig returns the default timeline configuration.
func DefaultConfig() Config {
	return Config{
		Width:               800,
		Height:              300,
		HeaderHeight:        30,
		PropertyColumnWidth: 200,
		RowHeight:           24,
		OffsetY:             30,
		MinGridSpacing:      60,
	}
}

// Validate returns an error if the configuration cannot
// be used for mapping between time and pixels.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("timeline.Config: size must be positive, not %gx%g", c.Width, c.Height)
	case c.PropertyColumnWidth <= 0:
		return fmt.Errorf("timeline.Config: property_column_width must be positive, not %g", c.PropertyColumnWidth)
	case c.RowHeight <= 0:
		return fmt.Errorf("timeline.Config: row_height must be positive, not %g", c.RowHeight)
	case c.HeaderHeight < 0 || c.MinGridSpacing < 0:
		return fmt.Errorf("timeline.Config: header_height and min_grid_spacing must not be negative")
	}
	return nil
}

// OpenConfig reads a configuration from the given TOML file, starting
// from [DefaultConfig] so that missing keys keep their defaults.
func OpenConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	if err := tomlx.Open(&cfg, filename); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
