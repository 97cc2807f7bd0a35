package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"symcorrect/pkg/symspell"
)

func newTestEngine() *symspell.SymSpell {
	s := symspell.New()
	s.CreateDictionaryEntry("pipe", 5)
	s.CreateDictionaryEntry("pips", 10)
	return s
}

func TestLookupHandlerReturnsSuggestions(t *testing.T) {
	router := NewRouter(newTestEngine(), nil)

	body, _ := json.Marshal(map[string]any{"term": "pip", "verbosity": "all", "max_edit_distance": 1})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lookup", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Suggestions []suggestionDTO `json:"suggestions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Suggestions) != 2 {
		t.Fatalf("got %d suggestions, want 2: %+v", len(resp.Suggestions), resp.Suggestions)
	}
	if resp.Suggestions[0].Term != "pips" {
		t.Errorf("top suggestion = %q, want %q", resp.Suggestions[0].Term, "pips")
	}
}

func TestLookupHandlerRejectsEmptyTerm(t *testing.T) {
	router := NewRouter(newTestEngine(), nil)

	body, _ := json.Marshal(map[string]any{"term": ""})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lookup", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSegmentHandlerReturnsFourFields(t *testing.T) {
	s := symspell.New()
	s.CreateDictionaryEntry("the", 100)
	s.CreateDictionaryEntry("cat", 50)
	router := NewRouter(s, nil)

	body, _ := json.Marshal(map[string]any{"text": "thecat"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/segment", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, field := range []string{"segmented_string", "corrected_string", "distance_sum", "probability_log_sum"} {
		if _, ok := resp[field]; !ok {
			t.Errorf("response missing field %q: %+v", field, resp)
		}
	}
}
