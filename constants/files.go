package constants

// File locations
const (
	// LogDir holds the debug log, relative to the working directory
	LogDir = "logs"

	// LogFileName is the active debug log file
	LogFileName = "vi-snake.log"

	// MaxLogSize triggers rotation of the previous log on startup
	MaxLogSize = 10 * 1024 * 1024

	// EnvFileName is the optional dotenv file loaded before environment overrides
	EnvFileName = ".env"

	// EnvPrefix prefixes every environment override
	EnvPrefix = "VI_SNAKE_"
)
