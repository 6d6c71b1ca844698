package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/mazey.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Rect: RectConfig{
			Width:     20,
			Height:    20,
			Algorithm: "wilson",
		},
		Circle: CircleConfig{
			Rings:       12,
			HubCells:    6,
			LevelHeight: 30,
			CellArc:     15,
			Algorithm:   "growing-tree",
		},
		Render: RenderConfig{
			Style:      "blocks",
			ShowPath:   true,
			Heat:       false,
			CellSize:   16,
			WallWidth:  4,
			Padding:    8,
			WallColor:  "#8099b3",
			PathColor:  "#c82828",
			Background: "#1a1a1a",
		},
		Storage: StorageConfig{
			DBPath: "~/.mazey/history.db",
			Record: true,
		},
		Server: ServerConfig{
			SSHAddr:     ":2323",
			HostKeyPath: ".ssh/mazey_ed25519",
			HTTPAddr:    ":8080",
			IdleTimeout: 30 * time.Minute,
			MaxCells:    40000,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
