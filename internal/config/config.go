// Package config provides YAML-based configuration loading, size presets
// and environment overrides for mazey.
package config

import (
	"fmt"
	"time"
)

// Config is the complete mazey configuration.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Rect     RectConfig    `yaml:"rect"`
	Circle   CircleConfig  `yaml:"circle"`
	Render   RenderConfig  `yaml:"render"`
	Storage  StorageConfig `yaml:"storage"`
	Server   ServerConfig  `yaml:"server"`
}

// Point is a cell coordinate in configuration files.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// RectConfig defines rectangular maze generation.
type RectConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Algorithm string `yaml:"algorithm"`
	Start     *Point `yaml:"start"`  // nil = top-left corner
	Finish    *Point `yaml:"finish"` // nil = bottom-right corner
}

// StartPoint returns the configured start or the top-left corner.
func (r RectConfig) StartPoint() Point {
	if r.Start != nil {
		return *r.Start
	}
	return Point{}
}

// FinishPoint returns the configured finish or the bottom-right corner.
func (r RectConfig) FinishPoint() Point {
	if r.Finish != nil {
		return *r.Finish
	}
	return Point{X: r.Width - 1, Y: r.Height - 1}
}

// CircleConfig defines polar maze generation.
type CircleConfig struct {
	Rings       int     `yaml:"rings"`
	HubCells    int     `yaml:"hub_cells"`
	LevelHeight float64 `yaml:"level_height"`
	CellArc     float64 `yaml:"cell_arc"`
	Algorithm   string  `yaml:"algorithm"`
}

// RenderConfig defines text and SVG output.
type RenderConfig struct {
	Style      string  `yaml:"style"` // "blocks" or "lines"
	ShowPath   bool    `yaml:"show_path"`
	Heat       bool    `yaml:"heat"`
	CellSize   float64 `yaml:"cell_size"`
	WallWidth  float64 `yaml:"wall_width"`
	Padding    float64 `yaml:"padding"`
	WallColor  string  `yaml:"wall_color"`
	PathColor  string  `yaml:"path_color"`
	Background string  `yaml:"background"`
}

// StorageConfig defines the run history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
	Record bool   `yaml:"record"`
}

// ServerConfig defines the SSH and HTTP front ends.
type ServerConfig struct {
	SSHAddr     string        `yaml:"ssh_addr"`
	HostKeyPath string        `yaml:"host_key_path"`
	HTTPAddr    string        `yaml:"http_addr"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	MaxCells    int           `yaml:"max_cells"` // largest maze a remote client may request
}

// Validate checks the numeric fields that generation depends on.
func (c Config) Validate() error {
	if c.Rect.Width < 1 || c.Rect.Height < 1 {
		return fmt.Errorf("config: rect size %dx%d must be at least 1x1", c.Rect.Width, c.Rect.Height)
	}
	if c.Circle.Rings < 1 {
		return fmt.Errorf("config: circle rings %d must be at least 1", c.Circle.Rings)
	}
	if c.Circle.HubCells < 3 {
		return fmt.Errorf("config: circle hub_cells %d must be at least 3", c.Circle.HubCells)
	}
	if c.Render.CellSize <= 0 {
		return fmt.Errorf("config: render cell_size must be positive")
	}
	return nil
}
