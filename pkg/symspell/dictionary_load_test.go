package symspell

import (
	"strings"
	"testing"

	"symcorrect/pkg/verbosity"
)

func TestLoadDictionarySkipsMalformedLines(t *testing.T) {
	s := New()
	data := "the 100\nquick 90\nmalformed\nbrown 80\n"
	loaded, err := s.LoadDictionary(strings.NewReader(data), 0, 1, " ")
	if err != nil {
		t.Fatalf("LoadDictionary returned error: %v", err)
	}
	if !loaded {
		t.Fatalf("expected at least one row loaded")
	}

	for _, term := range []string{"the", "quick", "brown"} {
		got, err := s.Lookup(term, verbosity.Top, 0)
		if err != nil || len(got) != 1 {
			t.Errorf("Lookup(%q) = %+v, err=%v; want single exact match", term, got, err)
		}
	}

	got, _ := s.Lookup("malformed", verbosity.Top, 0)
	if len(got) != 0 {
		t.Errorf("malformed line should not have loaded a term, got %+v", got)
	}
}

func TestLoadBigramDictionaryTwoWordKey(t *testing.T) {
	s := New()
	data := "where is 585\nthe love 200\n"
	loaded, err := s.LoadBigramDictionary(strings.NewReader(data), 0, 2, " ")
	if err != nil {
		t.Fatalf("LoadBigramDictionary returned error: %v", err)
	}
	if !loaded {
		t.Fatalf("expected at least one bigram loaded")
	}
	if count, ok := s.bigrams["where is"]; !ok || count != 585 {
		t.Errorf("bigrams[where is] = (%d,%v), want (585,true)", count, ok)
	}
}
