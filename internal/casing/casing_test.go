package casing

import "testing"

func TestParseWordsSplitsOnUnderscoreAndPunctuation(t *testing.T) {
	got := ParseWords("Hello, world! foo_bar don't", false)
	want := []string{"hello", "world", "foo", "bar", "don't"}
	if !equalSlices(got, want) {
		t.Errorf("ParseWords = %v, want %v", got, want)
	}
}

func TestParseWordsPreserveCase(t *testing.T) {
	got := ParseWords("New York", true)
	want := []string{"New", "York"}
	if !equalSlices(got, want) {
		t.Errorf("ParseWords = %v, want %v", got, want)
	}
}

func TestIsAcronym(t *testing.T) {
	cases := map[string]bool{
		"NASA": true,
		"IO2":  true,
		"A":    false,
		"a":    false,
		"Abc":  false,
		"AB":   true,
	}
	for word, want := range cases {
		if got := IsAcronym(word); got != want {
			t.Errorf("IsAcronym(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestTransferCasingMatchingEqualLength(t *testing.T) {
	got := TransferCasingMatching("New York", "new york")
	if got != "New York" {
		t.Errorf("got %q, want %q", got, "New York")
	}
}

func TestTransferCasingSimilarPreservesEqualLengthCasing(t *testing.T) {
	got := TransferCasingSimilar("Hello World", "hello world")
	if got != "Hello World" {
		t.Errorf("got %q, want %q", got, "Hello World")
	}
}

func TestTransferCasingSimilarAllCaps(t *testing.T) {
	got := TransferCasingSimilar("HELLO", "hallo")
	if got != "HALLO" {
		t.Errorf("got %q, want %q", got, "HALLO")
	}
}

func TestTransferCasingSimilarSentenceExample(t *testing.T) {
	got := TransferCasingSimilar(
		"Haaw is the weeather in New York?",
		"how is the weather in new york?",
	)
	want := "How is the weather in New York?"
	if got != want {
		t.Errorf("TransferCasingSimilar = %q, want %q", got, want)
	}
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
