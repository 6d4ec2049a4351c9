package nlp

import (
	"math"
	"sort"
)

// TermFrequency is a term's normalized frequency within one document.
type TermFrequency struct {
	Term  string
	TF    float64
	Count int
}

// TFIDFScore weighs a term's frequency against its rarity in a corpus.
type TFIDFScore struct {
	Term  string
	Score float64
	TF    float64
	IDF   float64
}

// KeywordOverlap holds the term-level comparison of two texts.
type KeywordOverlap struct {
	Matched []string
	Missing []string
	Score   float64 // 0..1 fraction of target terms present in source
}

// ComputeTF computes term frequencies: count of term / total tokens,
// sorted descending by frequency.
func ComputeTF(text string) []TermFrequency {
	tokens := Tokenize(text)
	counts := make(map[string]int)
	var order []string
	for _, tok := range tokens {
		if counts[tok.Normalized] == 0 {
			order = append(order, tok.Normalized)
		}
		counts[tok.Normalized]++
	}

	total := len(tokens)
	freqs := make([]TermFrequency, 0, len(order))
	for _, term := range order {
		freqs = append(freqs, TermFrequency{
			Term:  term,
			TF:    float64(counts[term]) / float64(total),
			Count: counts[term],
		})
	}

	sort.SliceStable(freqs, func(i, j int) bool { return freqs[i].TF > freqs[j].TF })
	return freqs
}

// ComputeIDF computes inverse document frequency over a corpus:
// ln(N / (1 + df)). The +1 prevents division by zero.
func ComputeIDF(documents []string) map[string]float64 {
	docCounts := make(map[string]int)
	for _, doc := range documents {
		unique := make(map[string]bool)
		for _, tok := range Tokenize(doc) {
			unique[tok.Normalized] = true
		}
		for term := range unique {
			docCounts[term]++
		}
	}

	idf := make(map[string]float64, len(docCounts))
	n := float64(len(documents))
	for term, df := range docCounts {
		idf[term] = math.Log(n / (1 + float64(df)))
	}
	return idf
}

// ComputeTFIDF scores the target document's terms against a corpus,
// sorted descending. High scores mark terms important to the target
// but uncommon across the corpus.
func ComputeTFIDF(targetText string, corpusTexts []string) []TFIDFScore {
	allDocs := append([]string{targetText}, corpusTexts...)
	idfMap := ComputeIDF(allDocs)

	tfs := ComputeTF(targetText)
	scores := make([]TFIDFScore, 0, len(tfs))
	for _, tf := range tfs {
		idf := idfMap[tf.Term]
		scores = append(scores, TFIDFScore{
			Term:  tf.Term,
			Score: tf.TF * idf,
			TF:    tf.TF,
			IDF:   idf,
		})
	}

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	return scores
}

// ComputeKeywordOverlap compares the distinct terms of a target text
// against a source text.
func ComputeKeywordOverlap(sourceText, targetText string) KeywordOverlap {
	sourceTerms := make(map[string]bool)
	for _, tok := range Tokenize(sourceText) {
		sourceTerms[tok.Normalized] = true
	}

	targetSeen := make(map[string]bool)
	var matched, missing []string
	for _, tok := range Tokenize(targetText) {
		if targetSeen[tok.Normalized] {
			continue
		}
		targetSeen[tok.Normalized] = true
		if sourceTerms[tok.Normalized] {
			matched = append(matched, tok.Normalized)
		} else {
			missing = append(missing, tok.Normalized)
		}
	}

	score := 0.0
	if len(targetSeen) > 0 {
		score = float64(len(matched)) / float64(len(targetSeen))
	}
	return KeywordOverlap{Matched: matched, Missing: missing, Score: score}
}

// KeyTerms returns the topN most frequent terms of a text. With no
// corpus for IDF, plain term frequency stands in.
func KeyTerms(text string, topN int) []string {
	tfs := ComputeTF(text)
	if len(tfs) > topN {
		tfs = tfs[:topN]
	}
	terms := make([]string, len(tfs))
	for i, tf := range tfs {
		terms[i] = tf.Term
	}
	return terms
}
