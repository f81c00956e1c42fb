package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tiagobortoncello/assistente-rt/internal/model"
	"github.com/tiagobortoncello/assistente-rt/internal/pipeline"
)

var (
	outJSON     string
	outMD       string
	timeout     time.Duration
	docTypeFlag string
	dictPath    string
	dictDelim   string
	dictOrient  string
	maxBytes    int64
	noCache     bool
	noFooter    bool
	noPrefilter bool
	llmProvider string
	llmModel    string
	maxTerms    int
)

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:   "index <arquivo|->",
	Short: "Sugere termos de indexação e gera o resumo de um documento",
	Long: `Index analisa um documento (arquivo ou stdin com "-") e produz:
- termos de indexação do vocabulário controlado, com termos genéricos
  podados quando um termo mais específico também foi sugerido
- um resumo em estilo legislativo

Example:
  assistente index ementa.txt
  assistente index pl-123.txt --tipo requerimento --json resultado.json
  cat ementa.txt | assistente index - --llm-provider ollama`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)

	// Output flags
	indexCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	indexCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// Document flags
	indexCmd.Flags().StringVar(&docTypeFlag, "tipo", "proposicao", "document type (proposicao, requerimento)")
	indexCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max document bytes to read")
	indexCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall timeout for both oracle calls")

	// Dictionary flags
	indexCmd.Flags().StringVar(&dictPath, "dict", "", "controlled vocabulary file (default from config)")
	indexCmd.Flags().StringVar(&dictDelim, "delimiter", ">", "level delimiter in dictionary lines")
	indexCmd.Flags().StringVar(&dictOrient, "orientation", "generic-first", "dictionary line orientation (generic-first, specific-first)")

	// Pipeline flags
	indexCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable oracle response cache")
	indexCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	indexCmd.Flags().BoolVar(&noPrefilter, "no-prefilter", false, "disable the regex prefilter rules")

	// LLM flags
	indexCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "oracle provider (openai, anthropic, ollama)")
	indexCmd.Flags().StringVar(&llmModel, "llm-model", "", "oracle model name")
	indexCmd.Flags().IntVar(&maxTerms, "max-terms", 8, "maximum number of suggested terms requested")
}

func runIndex(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Documento: %s\n", path)
		fmt.Fprintf(os.Stderr, "Vocabulário: %s\n", cfg.Dictionary.Path)
		fmt.Fprintf(os.Stderr, "Provedor: %s\n", cfg.LLM.Provider)
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	doc, err := pipeline.NewSource(maxBytes).Read(path, model.ParseDocumentType(docTypeFlag))
	if err != nil {
		return err
	}

	result := p.Index(ctx, doc)

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ %d termos sugeridos\n", len(result.Terms))
		if result.Prefilter != "" {
			fmt.Fprintf(os.Stderr, "✓ Pré-filtro aplicado: %s\n", result.Prefilter)
		}
		if result.TokensUsed > 0 {
			fmt.Fprintf(os.Stderr, "✓ Tokens consumidos: %d\n", result.TokensUsed)
		}
		fmt.Fprintln(os.Stderr)
	}

	renderer := pipeline.NewRenderer(!noFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(result, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(result, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
	}
	renderer.RenderSummary(result)

	return nil
}

// buildConfig merges defaults, config file values and flags into the
// runtime configuration, and resolves the oracle API key from the
// environment.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if v := viper.GetString("dictionary.path"); v != "" {
		cfg.Dictionary.Path = v
	}
	if v := viper.GetString("dictionary.delimiter"); v != "" {
		cfg.Dictionary.Delimiter = v
	}
	if v := viper.GetString("dictionary.orientation"); v != "" {
		cfg.Dictionary.Orientation = v
	}
	if v := viper.GetString("cache.dir"); v != "" {
		cfg.Cache.Dir = v
	}

	// Flags override the config file
	if dictPath != "" {
		cfg.Dictionary.Path = dictPath
	}
	if dictDelim != "" {
		cfg.Dictionary.Delimiter = dictDelim
	}
	if dictOrient != "" {
		cfg.Dictionary.Orientation = dictOrient
	}

	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	cfg.Prefilter.Enabled = !noPrefilter

	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel
	cfg.LLM.MaxTerms = maxTerms

	// Get API key from environment
	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg, nil
}
