package symspell

import "testing"

func TestLookupCompoundCorrectsEachWord(t *testing.T) {
	s := New()
	s.CreateDictionaryEntry("where", 500)
	s.CreateDictionaryEntry("is", 500)
	s.CreateDictionaryEntry("the", 500)
	s.CreateDictionaryEntry("love", 500)
	// "wheris" is distance 2 from both "where" and "where is"; the split only
	// outscores the single word when its bigram count beats where's count.
	s.bigrams["where is"] = 585

	got, err := s.LookupCompound("wheris the lvoe", 2)
	if err != nil {
		t.Fatalf("LookupCompound returned error: %v", err)
	}
	if got == nil {
		t.Fatal("LookupCompound returned nil")
	}
	if got.Term != "where is the love" {
		t.Errorf("Term = %q, want %q", got.Term, "where is the love")
	}
}

func TestLookupCompoundSplitsRunTogetherToken(t *testing.T) {
	s := New()
	s.CreateDictionaryEntry("where", 500)
	s.CreateDictionaryEntry("is", 500)
	s.bigrams["where is"] = 585

	got, err := s.LookupCompound("whereis", 2)
	if err != nil {
		t.Fatalf("LookupCompound returned error: %v", err)
	}
	if got == nil {
		t.Fatal("LookupCompound returned nil")
	}
	if got.Term != "where is" {
		t.Errorf("Term = %q, want %q", got.Term, "where is")
	}
}

func TestLookupCompoundIgnoreNonWordsPassesThroughAcronymsAndNumbers(t *testing.T) {
	s := New()
	s.CreateDictionaryEntry("room", 500)

	got, err := s.LookupCompound("room 42 NASA", 2, WithIgnoreNonWords())
	if err != nil {
		t.Fatalf("LookupCompound returned error: %v", err)
	}
	if got == nil {
		t.Fatal("LookupCompound returned nil")
	}
	if got.Term != "room 42 NASA" {
		t.Errorf("Term = %q, want %q", got.Term, "room 42 NASA")
	}
}
