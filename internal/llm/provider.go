package llm

import (
	"context"

	"github.com/tiagobortoncello/assistente-rt/internal/model"
)

// Provider defines the interface for the two external oracles: term
// suggestion and summarization. Both outputs are untrusted; callers
// validate suggested terms against the controlled vocabulary.
type Provider interface {
	// Name returns the provider name
	Name() string

	// SuggestTerms asks the oracle for candidate indexing terms drawn
	// from the supplied vocabulary. The response is raw and unvalidated.
	SuggestTerms(ctx context.Context, req SuggestRequest) (*SuggestResponse, error)

	// Summarize generates a legislative-style prose summary
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SuggestRequest contains the input for term suggestion
type SuggestRequest struct {
	// Text is the document text to index
	Text string

	// Vocabulary is the controlled term list the oracle should draw
	// from. The oracle is not guaranteed to honor it.
	Vocabulary []string

	// MaxTerms bounds the number of suggestions requested
	MaxTerms int

	// Model is the specific model to use (provider-specific)
	Model string
}

// SuggestResponse contains the oracle's raw candidate terms
type SuggestResponse struct {
	// Terms are the parsed candidate strings, unvalidated
	Terms []string

	// Raw is the unparsed model output, kept for diagnostics
	Raw string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// SummarizeRequest contains the input for summarization
type SummarizeRequest struct {
	// Text is the document text to summarize
	Text string

	// DocLabel is the Portuguese document type name used in the prompt
	// ("proposição", "requerimento")
	DocLabel string

	// StyleRules optionally overrides the default style instruction
	StyleRules string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the summarization output
type SummarizeResponse struct {
	// Summary is the generated prose
	Summary string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds oracle provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// MaxTerms requested from the suggestion oracle
	MaxTerms int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "openai",
		Timeout:   30,
		MaxTokens: 1000,
		MaxTerms:  8,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(mc model.LLMConfig) Config {
	return Config{
		Provider:   mc.Provider,
		Model:      mc.Model,
		APIKey:     mc.APIKey,
		BaseURL:    mc.BaseURL,
		Timeout:    mc.Timeout,
		MaxTokens:  mc.MaxTokens,
		MaxTerms:   mc.MaxTerms,
		HTTPProxy:  mc.HTTPProxy,
		HTTPSProxy: mc.HTTPSProxy,
		NoProxy:    mc.NoProxy,
	}
}
