package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the log encoding (json, console).
	Format string `mapstructure:"format" default:"console"`
	// File is the path of the run log mirroring the comparison report.
	File string `mapstructure:"file" default:"diff_results.log"`
}
