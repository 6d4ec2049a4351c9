package nlp

import (
	"reflect"
	"testing"
)

func TestCanonical_KnownVariants(t *testing.T) {
	cases := []struct {
		term string
		want string
	}{
		{"js", "javascript"},
		{"JS", "javascript"},
		{"k8s", "kubernetes"},
		{"postgres", "postgresql"},
		{"aws", "amazon web services"},
		{"nodejs", "node.js"},
		{"ml", "machine learning"},
		{"gaap", "generally accepted accounting principles"},
	}
	for _, tc := range cases {
		if got := Canonical(tc.term); got != tc.want {
			t.Errorf("Canonical(%q): expected %q, got %q", tc.term, tc.want, got)
		}
	}
}

func TestCanonical_UnknownTermLowercased(t *testing.T) {
	if got := Canonical("Blorpify"); got != "blorpify" {
		t.Errorf("expected %q, got %q", "blorpify", got)
	}
}

func TestAreSynonyms(t *testing.T) {
	if !AreSynonyms("react", "reactjs") {
		t.Errorf("expected react and reactjs to be synonyms")
	}
	if !AreSynonyms("Postgres", "psql") {
		t.Errorf("expected postgres and psql to be synonyms, case-insensitive")
	}
	if AreSynonyms("react", "angular") {
		t.Errorf("did not expect react and angular to be synonyms")
	}
}

func TestSynonymsOf(t *testing.T) {
	got := DefaultSynonyms().SynonymsOf("k8s")
	want := []string{"kubernetes", "k8s"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	got = DefaultSynonyms().SynonymsOf("snowboarding")
	if !reflect.DeepEqual(got, []string{"snowboarding"}) {
		t.Errorf("expected unknown term returned as-is, got %v", got)
	}
}

func TestNormalizeTerms_DeduplicatesByCanonical(t *testing.T) {
	got := DefaultSynonyms().NormalizeTerms([]string{"js", "javascript", "python", "py"})
	want := []string{"javascript", "python"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
