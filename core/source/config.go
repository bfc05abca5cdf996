package source

// Config selects and configures the source of the compared collections.
type Config struct {
	// Kind is the source type (directory, bucket, table).
	Kind string `mapstructure:"kind" default:"directory"`
	// Directory is the folder scanned by the directory source.
	Directory string `mapstructure:"directory" default:"."`
	// Prefix restricts the bucket source to objects under this prefix.
	Prefix string `mapstructure:"prefix" default:""`
	// CacheTTLSeconds keeps loaded collections in memory; zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
}
