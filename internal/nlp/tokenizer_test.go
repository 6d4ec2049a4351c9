package nlp

import (
	"reflect"
	"testing"
)

func TestTokenize_LowercasesAndDropsStopWords(t *testing.T) {
	tokens := Tokenize("The Quick Brown Fox jumps over the lazy dog")
	var got []string
	for _, tok := range tokens {
		got = append(got, tok.Normalized)
	}
	want := []string{"quick", "brown", "fox", "jumps", "lazy", "dog"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenize_PreservesTechnicalTerms(t *testing.T) {
	// Edge punctuation is stripped but # and + survive, so language
	// names like c++ and c# keep their identity.
	tokens := Tokenize("Skills: C++, C#, Node.js, .NET")
	var got []string
	for _, tok := range tokens {
		got = append(got, tok.Normalized)
	}
	want := []string{"skills", "c++", "c#", "node.js", "net"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTokenize_DropsSingleCharacterTokens(t *testing.T) {
	tokens := Tokenize("a b x developer")
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	if tokens[0].Normalized != "developer" {
		t.Errorf("expected %q, got %q", "developer", tokens[0].Normalized)
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("expected no tokens for empty input, got %v", got)
	}
}

func TestNgrams_Bigrams(t *testing.T) {
	got := Ngrams("machine learning engineer", 2)
	want := []string{"machine learning", "learning engineer"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNgrams_DiscardsAllStopWordPhrases(t *testing.T) {
	got := Ngrams("of the data", 2)
	want := []string{"the data"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNgrams_TooShort(t *testing.T) {
	if got := Ngrams("python", 2); got != nil {
		t.Errorf("expected nil for text shorter than n, got %v", got)
	}
}

func TestExtractTerms_Deduplicates(t *testing.T) {
	terms := ExtractTerms("python python developer")
	counts := make(map[string]int)
	for _, term := range terms {
		counts[term]++
	}
	for term, n := range counts {
		if n > 1 {
			t.Errorf("term %q appeared %d times, expected unique terms", term, n)
		}
	}
	if counts["python"] != 1 || counts["developer"] != 1 {
		t.Errorf("expected unigrams python and developer, got %v", terms)
	}
	if counts["python developer"] != 1 {
		t.Errorf("expected bigram %q, got %v", "python developer", terms)
	}
}

func TestIsStopWord(t *testing.T) {
	if !IsStopWord("the") {
		t.Errorf("expected %q to be a stop word", "the")
	}
	if IsStopWord("kubernetes") {
		t.Errorf("did not expect %q to be a stop word", "kubernetes")
	}
}

func TestNormalizeText(t *testing.T) {
	got := NormalizeText("  Senior\t\tSoftware   Engineer\n")
	want := "senior software engineer"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
