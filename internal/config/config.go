// Package config defines service configuration structures and loading.
//
// Conventions follow the rest of the codebase: defaults come from New,
// Load layers an optional YAML file and environment variables on top, and
// callers treat the result as immutable.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataDir is where the disk cache keeps fetched match files.
	DataDir string `koanf:"data_dir"`

	// ModelsDir holds the oracle coefficient files.
	ModelsDir string `koanf:"models_dir"`

	// CacheBackend selects the match cache: disk, redis or none.
	CacheBackend string `koanf:"cache_backend"`

	// RedisURL configures the redis cache when cache_backend is redis.
	RedisURL string `koanf:"redis_url"`

	// MatchID is the default match analyzed when a request names none.
	MatchID int `koanf:"match_id"`

	// HomeSide designates the perspective for win-probability deltas.
	HomeSide string `koanf:"home_side"`

	// VideoID is the replay video for timestamp links.
	VideoID string `koanf:"video_id"`

	// MaxTopN caps the ranked list length a request may ask for.
	MaxTopN int `koanf:"max_top_n"`

	// DefaultTopN is the list length used when a request names none.
	DefaultTopN int `koanf:"default_top_n"`
}

// New returns the default configuration. The bundled defaults target the
// reference match the engine ships against.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		Addr:         ":9090",
		DataDir:      "./data",
		ModelsDir:    "./models",
		CacheBackend: "disk",
		RedisURL:     "redis://localhost:6379/0",
		MatchID:      3869685,
		HomeSide:     "Argentina",
		VideoID:      "vkyCLzUvv7c",
		MaxTopN:      50,
		DefaultTopN:  5,
	}
}
