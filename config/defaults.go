package config

import "github.com/magoc/flowgen/constants"

// Default locations and listen address for flowgen.
const (
	// DefaultConfigPath is the config file looked up when --config is not given.
	DefaultConfigPath = constants.ConfigFileName
	// DefaultHost is the default HTTP listen host.
	DefaultHost = "0.0.0.0"
	// DefaultPort is the default HTTP listen port.
	DefaultPort = 8000
)
