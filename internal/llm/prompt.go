package llm

import (
	"fmt"
	"strings"
)

// termSystemInstruction is the persona for the suggestion oracle.
const termSystemInstruction = "Você é um indexador de documentos legislativos altamente experiente. " +
	"Sua tarefa é analisar o texto de uma proposição e sugerir termos de indexação " +
	"que capturem os tópicos principais e o escopo do documento. Os termos devem ser " +
	"curtos, precisos e refletir o conteúdo conceitual. " +
	"Responda somente com um array JSON de strings, sem nenhum outro texto."

// summarySystemInstruction is the persona for the summarization oracle.
const summarySystemInstruction = "Você é um redator da equipe de documentação legislativa. " +
	"Produza resumos em estilo legislativo: texto corrido, objetivo, impessoal."

// vocabularyPromptLimit caps how many terms are embedded in the prompt,
// to avoid token bloat with very large dictionaries.
const vocabularyPromptLimit = 500

// BuildTermPrompt constructs the term-suggestion prompt: the controlled
// vocabulary, the requested term count, and the document text.
func BuildTermPrompt(text string, vocabulary []string, maxTerms int) string {
	if maxTerms <= 0 {
		maxTerms = 8
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Sugira no máximo %d termos de indexação para o documento abaixo.\n", maxTerms)
	b.WriteString("Escolha EXCLUSIVAMENTE termos do vocabulário controlado a seguir, ")
	b.WriteString("copiando-os exatamente como escritos:\n")
	b.WriteString(joinVocabulary(vocabulary))
	b.WriteString("\n\nDocumento:\n")
	b.WriteString(text)
	b.WriteString("\n\nResponda com um array JSON de strings. Exemplo: [\"Comércio Eletrônico\", \"Serviço de Atendimento ao Público\"]")
	return b.String()
}

// BuildSummaryPrompt constructs the summarization prompt in the style
// the indexing team expects.
func BuildSummaryPrompt(text, docLabel, styleRules string) string {
	if docLabel == "" {
		docLabel = "documento"
	}
	if styleRules == "" {
		styleRules = "em estilo legislativo, texto corrido, objetivo, sem perder informações essenciais"
	}
	return fmt.Sprintf("Resuma o seguinte %s %s:\n\n%s", docLabel, styleRules, text)
}

func joinVocabulary(vocabulary []string) string {
	if len(vocabulary) == 0 {
		return "(vocabulário vazio)"
	}
	var b strings.Builder
	for i, term := range vocabulary {
		if i >= vocabularyPromptLimit {
			fmt.Fprintf(&b, "\n... e mais %d termos", len(vocabulary)-vocabularyPromptLimit)
			break
		}
		fmt.Fprintf(&b, "\n- %s", term)
	}
	return b.String()
}
