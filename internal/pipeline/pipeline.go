// Package pipeline sequences one document through the indexing flow:
// pre-filter → term-suggestion oracle → vocabulary validation →
// specificity filter, with summarization running alongside. All oracle
// failures degrade to warnings; the pipeline never aborts a document.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tiagobortoncello/assistente-rt/internal/cache"
	"github.com/tiagobortoncello/assistente-rt/internal/extract"
	"github.com/tiagobortoncello/assistente-rt/internal/llm"
	"github.com/tiagobortoncello/assistente-rt/internal/model"
	"github.com/tiagobortoncello/assistente-rt/internal/thesaurus"
	"github.com/tiagobortoncello/assistente-rt/internal/worker"
)

// Pipeline holds the immutable per-process state: the dictionary, the
// oracle provider, the pre-filter and the response cache. One Pipeline
// serves any number of documents, concurrently if needed.
type Pipeline struct {
	dict      *thesaurus.Dictionary
	oracle    llm.Provider
	prefilter *Prefilter
	cache     cache.Cache
	limiter   *worker.Limiter
	config    *model.Config

	// startupWarnings are carried into every result (e.g. dictionary
	// unavailable, oracle misconfigured)
	startupWarnings []string
}

// NewPipeline builds a pipeline from configuration. A missing dictionary
// or a misconfigured oracle is downgraded to a per-result warning; only
// an invalid pre-filter rule is a hard error, since it is a config bug
// the user must fix.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	p := &Pipeline{config: cfg}

	dict, err := thesaurus.LoadFile(cfg.Dictionary.Path, thesaurus.LoaderOptions{
		Delimiter:   cfg.Dictionary.Delimiter,
		Orientation: thesaurus.ParseOrientation(cfg.Dictionary.Orientation),
	})
	if err != nil {
		if errors.Is(err, thesaurus.ErrSourceUnavailable) {
			p.startupWarnings = append(p.startupWarnings,
				"vocabulário controlado indisponível; nenhum termo será sugerido")
		} else {
			p.startupWarnings = append(p.startupWarnings,
				fmt.Sprintf("falha ao carregar o vocabulário: %v", err))
		}
	}
	p.dict = dict

	oracle, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		p.startupWarnings = append(p.startupWarnings,
			fmt.Sprintf("provedor de sugestões indisponível: %v", err))
		oracle = nil
	}
	p.oracle = oracle

	prefilter, err := NewPrefilter(cfg.Prefilter)
	if err != nil {
		return nil, err
	}
	p.prefilter = prefilter

	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			p.cache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			p.cache = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	p.limiter = worker.NewLimiter(cfg.Concurrency.OracleRate, cfg.Concurrency.OracleBurst)

	return p, nil
}

// Dictionary exposes the loaded vocabulary (for the dict subcommands).
func (p *Pipeline) Dictionary() *thesaurus.Dictionary {
	return p.dict
}

// Index runs the complete flow for one document. Term suggestion and
// summarization are independent and run concurrently; at most one
// oracle call of each kind is issued per document.
func (p *Pipeline) Index(ctx context.Context, doc model.Document) *model.IndexResult {
	result := &model.IndexResult{
		Document:  doc.Name,
		Type:      doc.Type,
		IndexedAt: time.Now().UTC(),
		Terms:     []string{},
	}
	result.Warnings = append(result.Warnings, p.startupWarnings...)

	text := extract.PlainText(doc.Text)
	if text == "" {
		result.Warnings = append(result.Warnings, "documento vazio; nada a analisar")
		return result
	}

	// Summarization is independent of the term pipeline and must not
	// delay it; run it alongside.
	type summaryOut struct {
		summary string
		tokens  int
		warning string
	}
	summaryCh := make(chan summaryOut, 1)
	go func() {
		s, tokens, warning := p.summarize(ctx, text, doc.Type)
		summaryCh <- summaryOut{summary: s, tokens: tokens, warning: warning}
	}()

	p.indexTerms(ctx, text, result)

	s := <-summaryCh
	result.Summary = s.summary
	result.TokensUsed += s.tokens
	if s.warning != "" {
		result.Warnings = append(result.Warnings, s.warning)
	}

	return result
}

// indexTerms fills the term half of the result: candidate suggestions
// (pre-filter or oracle), vocabulary validation, specificity filtering.
func (p *Pipeline) indexTerms(ctx context.Context, text string, result *model.IndexResult) {
	// Pre-filter rules short-circuit the oracle entirely: the rule's
	// fixed terms are final, no validation applies to them.
	if rule, ok := p.prefilter.Match(text); ok {
		result.Prefilter = rule.Name
		final, err := p.dict.FilterSpecific(rule.Terms)
		if err != nil {
			result.Warnings = append(result.Warnings,
				"vocabulário com hierarquia inconsistente; termos exibidos sem poda")
		}
		result.Terms = final
		return
	}

	if p.dict.Len() == 0 {
		// No vocabulary, nothing to constrain the oracle against
		return
	}

	raw, tokens, warning := p.suggest(ctx, text)
	if warning != "" {
		result.Warnings = append(result.Warnings, warning)
	}
	result.RawSuggestions = raw
	result.TokensUsed += tokens
	if p.oracle != nil {
		result.Provider = p.oracle.Name()
		result.Model = p.config.LLM.Model
	}

	validated := p.dict.Validate(raw)
	final, err := p.dict.FilterSpecific(validated)
	if err != nil {
		result.Warnings = append(result.Warnings,
			"vocabulário com hierarquia inconsistente; termos exibidos sem poda")
	}
	result.Terms = final
}

// suggest issues at most one term-suggestion call, consulting the
// response cache first.
func (p *Pipeline) suggest(ctx context.Context, text string) ([]string, int, string) {
	if p.oracle == nil {
		return nil, 0, "nenhum provedor de sugestões configurado"
	}

	key := cache.Key("termos", text)
	if p.cache != nil {
		if data, found := p.cache.Get(key); found {
			var resp llm.SuggestResponse
			if err := json.Unmarshal(data, &resp); err == nil {
				return resp.Terms, 0, ""
			}
		}
	}

	if err := p.limiter.Wait(ctx, p.oracle.Name()); err != nil {
		return nil, 0, "análise interrompida antes da consulta de termos"
	}

	resp, err := p.oracle.SuggestTerms(ctx, llm.SuggestRequest{
		Text:       text,
		Vocabulary: p.dict.Terms(),
		MaxTerms:   p.config.LLM.MaxTerms,
	})
	if err != nil {
		return nil, 0, "não foi possível obter sugestões de termos; envie o texto novamente"
	}

	if p.cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			_ = p.cache.Set(key, data, 0)
		}
	}

	return resp.Terms, resp.TokensUsed, ""
}

// summarize issues at most one summarization call, consulting the
// response cache first.
func (p *Pipeline) summarize(ctx context.Context, text string, docType model.DocumentType) (string, int, string) {
	if p.oracle == nil {
		return "", 0, "nenhum provedor de resumos configurado"
	}

	key := cache.Key("resumo:"+string(docType), text)
	if p.cache != nil {
		if data, found := p.cache.Get(key); found {
			var resp llm.SummarizeResponse
			if err := json.Unmarshal(data, &resp); err == nil {
				return resp.Summary, 0, ""
			}
		}
	}

	if err := p.limiter.Wait(ctx, p.oracle.Name()); err != nil {
		return "", 0, "análise interrompida antes da geração do resumo"
	}

	resp, err := p.oracle.Summarize(ctx, llm.SummarizeRequest{
		Text:      text,
		DocLabel:  docType.Label(),
		MaxTokens: p.config.LLM.MaxTokens,
	})
	if err != nil {
		return "", 0, "não foi possível gerar o resumo; envie o texto novamente"
	}

	if p.cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			_ = p.cache.Set(key, data, 0)
		}
	}

	return resp.Summary, resp.TokensUsed, ""
}
