package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements the Provider interface for OpenAI models
type OpenAIProvider struct {
	client *openai.Client
	config Config
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(config Config) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	client := openai.NewClientWithConfig(clientConfig)

	return &OpenAIProvider{
		client: client,
		config: config,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is properly configured
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	// Simple check: try to list models (lightweight API call)
	_, err := p.client.ListModels(ctx)
	if err != nil {
		// Log the actual error for debugging (this helps users diagnose API key issues)
		fmt.Fprintf(os.Stderr, "OpenAI API check failed: %v\n", err)
		return false
	}
	return true
}

// SuggestTerms requests candidate indexing terms using the Chat Completions API
func (p *OpenAIProvider) SuggestTerms(ctx context.Context, req SuggestRequest) (*SuggestResponse, error) {
	maxTerms := req.MaxTerms
	if maxTerms == 0 {
		maxTerms = p.config.MaxTerms
	}
	prompt := BuildTermPrompt(req.Text, req.Vocabulary, maxTerms)

	content, model, tokens, err := p.complete(ctx, req.Model, termSystemInstruction, prompt, 0)
	if err != nil {
		return nil, err
	}

	return &SuggestResponse{
		Terms:      ParseTermList(content),
		Raw:        content,
		Model:      model,
		TokensUsed: tokens,
	}, nil
}

// Summarize generates a summary using the Chat Completions API
func (p *OpenAIProvider) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	prompt := BuildSummaryPrompt(req.Text, req.DocLabel, req.StyleRules)

	content, model, tokens, err := p.complete(ctx, req.Model, summarySystemInstruction, prompt, req.MaxTokens)
	if err != nil {
		return nil, err
	}

	return &SummarizeResponse{
		Summary:    content,
		Model:      model,
		TokensUsed: tokens,
	}, nil
}

// complete performs one chat completion with the provider defaults applied
func (p *OpenAIProvider) complete(ctx context.Context, model, system, prompt string, maxTokens int) (string, string, int, error) {
	if model == "" {
		model = p.config.Model
	}
	if model == "" {
		model = openai.GPT4oMini // Default to gpt-4o-mini
	}

	if maxTokens == 0 {
		maxTokens = p.config.MaxTokens
	}
	if maxTokens == 0 {
		maxTokens = 1000
	}

	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.3, // Lower temperature for more focused, factual output
	}

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return "", "", 0, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", "", 0, fmt.Errorf("no response from OpenAI")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	return content, model, resp.Usage.TotalTokens, nil
}
