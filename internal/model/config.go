package model

import "time"

// Config holds the complete runtime configuration.
// Pattern tables are not part of Config: they are fixed, compiled once at
// construction, and shared read-only across all invocations.
type Config struct {
	Analysis     AnalysisConfig     `yaml:"analysis" json:"analysis"`
	Cache        CacheConfig        `yaml:"cache" json:"cache"`
	NLU          NLUConfig          `yaml:"nlu" json:"nlu"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" json:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" json:"rate_limiting"`
	HTTP         HTTPConfig         `yaml:"http" json:"http"`
	Output       OutputConfig       `yaml:"output" json:"output"`
}

// AnalysisConfig tunes the core annotation pipeline.
type AnalysisConfig struct {
	MinSegmentLength int `yaml:"min_segment_length" json:"min_segment_length"` // Classifier-only filter
	ToneSampleSize   int `yaml:"tone_sample_size" json:"tone_sample_size"`     // Segments sampled by tone analysis
}

// CacheConfig controls the analysis result cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	Dir     string        `yaml:"dir" json:"dir"`
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
}

// NLUConfig configures the optional external NLU collaborator.
type NLUConfig struct {
	Provider  string `yaml:"provider" json:"provider"` // "openai", "mock", "" (disabled)
	Model     string `yaml:"model" json:"model"`
	APIKey    string `yaml:"-" json:"-"`
	BaseURL   string `yaml:"base_url" json:"base_url"`
	Timeout   int    `yaml:"timeout" json:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`

	HTTPProxy  string `yaml:"http_proxy" json:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy" json:"https_proxy"`
	NoProxy    string `yaml:"no_proxy" json:"no_proxy"`
}

// ConcurrencyConfig controls batch processing parallelism.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// RateLimitingConfig throttles calls to external services.
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" json:"burst_size"`
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Addr           string `yaml:"addr" json:"addr"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" json:"max_upload_bytes"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			MinSegmentLength: 20,
			ToneSampleSize:   10,
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     ".clauselens-cache",
			TTL:     24 * time.Hour,
		},
		NLU: NLUConfig{
			Provider:  "", // Disabled by default
			Timeout:   30,
			MaxTokens: 1000,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 2,
			BurstSize:         5,
		},
		HTTP: HTTPConfig{
			Addr:           ":5000",
			MaxUploadBytes: 16 << 20,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
