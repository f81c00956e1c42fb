package model

import "time"

// Config is the complete runtime configuration, populated from defaults,
// the config file, ASSISTENTE_* environment variables and CLI flags.
type Config struct {
	Dictionary  DictionaryConfig  `yaml:"dictionary" json:"dictionary"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Output      OutputConfig      `yaml:"output" json:"output"`
	Prefilter   PrefilterConfig   `yaml:"prefilter" json:"prefilter"`
}

// DictionaryConfig describes the controlled-vocabulary source.
type DictionaryConfig struct {
	// Path to the line-oriented dictionary file
	Path string `yaml:"path" json:"path"`

	// Delimiter between specificity levels on one line
	Delimiter string `yaml:"delimiter" json:"delimiter"`

	// Orientation of each line: "generic-first" (default) means the
	// leftmost level is the most generic term, "specific-first" means
	// the leftmost level is the most specific
	Orientation string `yaml:"orientation" json:"orientation"`
}

// LLMConfig configures the suggestion and summarization oracles.
type LLMConfig struct {
	// Provider name: "openai", "anthropic", "ollama"
	Provider string `yaml:"provider" json:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model" json:"model"`

	// APIKey for OpenAI/Anthropic (prefer env vars)
	APIKey string `yaml:"api_key,omitempty" json:"api_key,omitempty"`

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string `yaml:"base_url,omitempty" json:"base_url,omitempty"`

	// Timeout for API requests, in seconds
	Timeout int `yaml:"timeout" json:"timeout"`

	// MaxTokens for response generation
	MaxTokens int `yaml:"max_tokens" json:"max_tokens"`

	// MaxTerms is the term count the suggestion prompt asks for
	MaxTerms int `yaml:"max_terms" json:"max_terms"`

	// Proxy settings
	HTTPProxy  string `yaml:"http_proxy,omitempty" json:"http_proxy,omitempty"`
	HTTPSProxy string `yaml:"https_proxy,omitempty" json:"https_proxy,omitempty"`
	NoProxy    string `yaml:"no_proxy,omitempty" json:"no_proxy,omitempty"`
}

// CacheConfig controls oracle response caching.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing.
type ConcurrencyConfig struct {
	// Workers is the number of documents processed in parallel
	Workers int `yaml:"workers" json:"workers"`

	// OracleRate caps oracle calls per second across all workers
	OracleRate float64 `yaml:"oracle_rate" json:"oracle_rate"`

	// OracleBurst is the rate limiter burst size
	OracleBurst int `yaml:"oracle_burst" json:"oracle_burst"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// PrefilterConfig controls the regex pre-filter stage.
type PrefilterConfig struct {
	// Enabled turns the built-in rules on
	Enabled bool `yaml:"enabled" json:"enabled"`

	// Rules maps a rule name to pattern + fixed terms; built-in rules
	// are used when empty
	Rules []PrefilterRule `yaml:"rules,omitempty" json:"rules,omitempty"`
}

// PrefilterRule short-circuits the suggestion oracle when its pattern
// matches the document text.
type PrefilterRule struct {
	Name    string   `yaml:"name" json:"name"`
	Pattern string   `yaml:"pattern" json:"pattern"`
	Terms   []string `yaml:"terms" json:"terms"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Dictionary: DictionaryConfig{
			Path:        "dicionario.txt",
			Delimiter:   ">",
			Orientation: "generic-first",
		},
		LLM: LLMConfig{
			Provider:  "openai",
			Model:     "",
			Timeout:   30,
			MaxTokens: 1000,
			MaxTerms:  8,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers:     4,
			OracleRate:  2,
			OracleBurst: 4,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		Prefilter: PrefilterConfig{
			Enabled: true,
		},
	}
}
