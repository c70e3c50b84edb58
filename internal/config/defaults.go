// Package config provides configuration loading and defaults for codecommenter.
package config

import "time"

// DefaultConfigDir is the default location for codecommenter configuration.
const DefaultConfigDir = "~/.config/codecommenter"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// EnvPrefix prefixes environment variable overrides, e.g.
// CODECOMMENTER_ANALYSIS_LATENCY=1500ms.
const EnvPrefix = "CODECOMMENTER"

// DefaultAnalysis holds the default analysis settings. The web front end
// this tool grew out of waited 1.5s to mimic a remote call; the CLI does not.
var DefaultAnalysis = Analysis{
	Latency:   0,
	Numbering: "fixed",
	Language:  "",
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color:     true,
	Highlight: true,
	Style:     "dracula",
}

// DefaultServer holds the default HTTP API settings.
var DefaultServer = Server{
	Addr:         ":8080",
	MaxBodyBytes: 1 << 20,
}

// DefaultScan holds the default directory scan settings.
var DefaultScan = Scan{
	Workers:      4,
	MaxFileBytes: 1 << 20,
	Extensions:   []string{".js", ".mjs", ".cjs", ".jsx", ".ts", ".tsx", ".py", ".java", ".cpp", ".cc", ".cxx", ".hpp", ".h", ".c"},
}

// DefaultWatch holds the default watch settings.
var DefaultWatch = Watch{
	Interval: 2 * time.Second,
}

// DefaultLog holds the default logging settings.
var DefaultLog = Log{
	Level: "info",
}
