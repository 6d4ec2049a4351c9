package nlp

import (
	"regexp"
	"strings"
)

// stopWords are common English words with no semantic weight for
// keyword analysis.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "was": true,
	"are": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true, "may": true,
	"might": true, "shall": true, "can": true, "need": true, "not": true,
	"no": true, "nor": true, "so": true, "if": true, "then": true, "than": true,
	"too": true, "very": true, "just": true, "about": true, "above": true,
	"after": true, "again": true, "all": true, "also": true, "am": true,
	"any": true, "because": true, "before": true, "between": true, "both": true,
	"each": true, "few": true, "further": true, "get": true, "got": true,
	"here": true, "how": true, "i": true, "into": true, "it": true, "its": true,
	"me": true, "more": true, "most": true, "my": true, "myself": true,
	"now": true, "only": true, "other": true, "our": true, "out": true,
	"over": true, "own": true, "same": true, "she": true, "he": true,
	"her": true, "him": true, "his": true, "some": true, "such": true,
	"that": true, "their": true, "them": true, "there": true, "these": true,
	"they": true, "this": true, "those": true, "through": true, "under": true,
	"until": true, "up": true, "us": true, "we": true, "what": true,
	"when": true, "where": true, "which": true, "while": true, "who": true,
	"whom": true, "why": true, "you": true, "your": true, "etc": true,
	"ie": true, "eg": true, "per": true, "via": true,
}

// IsStopWord reports whether the lowercased word carries no keyword weight.
func IsStopWord(word string) bool {
	return stopWords[word]
}

// Token is a transiently produced term: the raw cleaned text, its
// normalized (lowercased) form, and its word position in the source.
type Token struct {
	Raw        string
	Normalized string
	Position   int
}

var (
	splitPattern = regexp.MustCompile(`[\s,;|]+`)
	// Edge trim keeps # and + alive so "c++", "c#" and "node.js" survive.
	edgePattern      = regexp.MustCompile(`^[^a-zA-Z0-9#+]+|[^a-zA-Z0-9#+]+$`)
	ngramEdgePattern = regexp.MustCompile(`^[^a-zA-Z0-9]+|[^a-zA-Z0-9]+$`)
)

// Tokenize splits text into terms: lowercase, strip edge punctuation,
// drop stop words and one-character tokens.
func Tokenize(text string) []Token {
	words := splitPattern.Split(text, -1)
	tokens := make([]Token, 0, len(words))

	for i, raw := range words {
		cleaned := edgePattern.ReplaceAllString(raw, "")
		if cleaned == "" {
			continue
		}
		normalized := strings.ToLower(cleaned)
		if stopWords[normalized] || len(normalized) < 2 {
			continue
		}
		tokens = append(tokens, Token{Raw: cleaned, Normalized: normalized, Position: i})
	}
	return tokens
}

// Ngrams extracts n-word phrases for matching compound skills. Phrases
// made entirely of stop words are discarded.
func Ngrams(text string, n int) []string {
	raw := splitPattern.Split(strings.ToLower(text), -1)
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		w = ngramEdgePattern.ReplaceAllString(w, "")
		if w != "" {
			words = append(words, w)
		}
	}
	if len(words) < n {
		return nil
	}

	var grams []string
	for i := 0; i+n <= len(words); i++ {
		hasContent := false
		for _, w := range words[i : i+n] {
			if !stopWords[w] {
				hasContent = true
				break
			}
		}
		if hasContent {
			grams = append(grams, strings.Join(words[i:i+n], " "))
		}
	}
	return grams
}

// ExtractTerms returns the unique unigrams, bigrams, and trigrams of a text.
func ExtractTerms(text string) []string {
	seen := make(map[string]bool)
	var terms []string
	add := func(t string) {
		if !seen[t] {
			seen[t] = true
			terms = append(terms, t)
		}
	}

	for _, tok := range Tokenize(text) {
		add(tok.Normalized)
	}
	for _, g := range Ngrams(text, 2) {
		add(g)
	}
	for _, g := range Ngrams(text, 3) {
		add(g)
	}
	return terms
}

// NormalizeText lowercases, trims, and collapses whitespace.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
