package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tiagobortoncello/assistente-rt/internal/model"
	"github.com/tiagobortoncello/assistente-rt/internal/pipeline"
	"github.com/tiagobortoncello/assistente-rt/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	// docTypeFlag and dictionary flags are defined in index.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <lista>",
	Short: "Indexa vários documentos em paralelo",
	Long: `Batch processa vários documentos de uma vez:
- lê os caminhos dos documentos de um arquivo de lista (um por linha)
- indexa os documentos em paralelo, com taxa de chamadas ao provedor
  limitada globalmente
- grava um relatório JSON por documento no diretório de saída

Example:
  assistente batch documentos.txt
  assistente batch documentos.txt --concurrency 8 --output-dir ./relatorios`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./assistente-relatorios", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Inherit flags from index command
	batchCmd.Flags().StringVar(&docTypeFlag, "tipo", "proposicao", "document type (proposicao, requerimento)")
	batchCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max document bytes to read")
	batchCmd.Flags().StringVar(&dictPath, "dict", "", "controlled vocabulary file (default from config)")
	batchCmd.Flags().StringVar(&dictDelim, "delimiter", ">", "level delimiter in dictionary lines")
	batchCmd.Flags().StringVar(&dictOrient, "orientation", "generic-first", "dictionary line orientation (generic-first, specific-first)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable oracle response cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	batchCmd.Flags().BoolVar(&noPrefilter, "no-prefilter", false, "disable the regex prefilter rules")

	// LLM flags
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "oracle provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "oracle model name")
	batchCmd.Flags().IntVar(&maxTerms, "max-terms", 8, "maximum number of suggested terms requested")
}

// indexJob processes one document through the shared pipeline
type indexJob struct {
	path     string
	docType  model.DocumentType
	pipeline *pipeline.Pipeline
	source   *pipeline.Source
	renderer *pipeline.Renderer
	outDir   string
}

// indexJobResult reports the outcome of one document
type indexJobResult struct {
	path  string
	terms int
	err   error
}

func (r indexJobResult) GetError() error { return r.err }

func (j indexJob) Execute(ctx context.Context) worker.Result {
	doc, err := j.source.Read(j.path, j.docType)
	if err != nil {
		return indexJobResult{path: j.path, err: err}
	}

	result := j.pipeline.Index(ctx, doc)

	outPath := filepath.Join(j.outDir, reportName(j.path))
	if err := j.renderer.RenderJSON(result, outPath); err != nil {
		return indexJobResult{path: j.path, err: err}
	}

	return indexJobResult{path: j.path, terms: len(result.Terms)}
}

func runBatch(cmd *cobra.Command, args []string) error {
	listPath := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	paths, err := readPathList(listPath)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("nenhum documento listado em %s", listPath)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("criar diretório de saída: %w", err)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Documentos: %d\n", len(paths))
		fmt.Fprintf(os.Stderr, "Workers: %d\n", concurrency)
		fmt.Fprintln(os.Stderr)
	}

	source := pipeline.NewSource(maxBytes)
	renderer := pipeline.NewRenderer(!noFooter)
	docType := model.ParseDocumentType(docTypeFlag)

	pool := worker.NewPool(concurrency)
	pool.Start()

	// Abort outstanding jobs when the batch timeout expires
	go func() {
		<-ctx.Done()
		if ctx.Err() == context.DeadlineExceeded {
			pool.Shutdown()
		}
	}()

	for _, path := range paths {
		pool.Submit(indexJob{
			path:     path,
			docType:  docType,
			pipeline: p,
			source:   source,
			renderer: renderer,
			outDir:   outputDir,
		})
	}

	results := pool.Wait()

	var failed int
	for _, res := range results {
		r := res.(indexJobResult)
		if r.err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", r.path, r.err)
			continue
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s: %d termos\n", r.path, r.terms)
		}
	}

	fmt.Printf("Processados %d documentos (%d com falha). Relatórios em %s\n",
		len(results), failed, outputDir)

	if failed > 0 {
		return fmt.Errorf("%d documentos falharam", failed)
	}
	return nil
}

// readPathList reads document paths from the list file, one per line;
// blank lines and # comments are skipped.
func readPathList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir lista: %w", err)
	}
	defer func() { _ = f.Close() }()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ler lista: %w", err)
	}
	return paths, nil
}

// reportName derives the report file name from the document path.
func reportName(docPath string) string {
	base := filepath.Base(docPath)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".json"
}
