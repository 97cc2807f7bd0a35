// Package httpapi exposes symcorrect's lookup, compound-correction,
// segmentation, and custom-word operations over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"symcorrect/internal/corrlog"
	"symcorrect/internal/customdict"
	"symcorrect/pkg/symspell"
	"symcorrect/pkg/verbosity"
)

const requestTimeout = 5 * time.Second

var logger = corrlog.New("httpapi")

// NewRouter builds the mux.Router serving engine's queries and store's
// custom-word overlay.
func NewRouter(engine *symspell.SymSpell, store *customdict.Store) *mux.Router {
	h := &handlers{engine: engine, store: store}

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/lookup", h.lookup).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/correct", h.correct).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/segment", h.segment).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/custom-word", h.addCustomWord).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/custom-word/{word}", h.removeCustomWord).Methods(http.MethodDelete)
	return r
}

type handlers struct {
	engine *symspell.SymSpell
	store  *customdict.Store
}

type suggestionDTO struct {
	Term     string `json:"term"`
	Distance int    `json:"distance"`
	Count    int64  `json:"count"`
}

func toSuggestionDTO(s symspell.Suggestion) suggestionDTO {
	return suggestionDTO{Term: s.Term, Distance: s.Distance, Count: s.Count}
}

func (h *handlers) lookup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Term            string `json:"term"`
		Verbosity       string `json:"verbosity"`
		MaxEditDistance int    `json:"max_edit_distance"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Term == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	v, err := verbosity.Parse(req.Verbosity)
	if err != nil {
		v = verbosity.Top
	}

	suggestions, err := h.engine.Lookup(req.Term, v, req.MaxEditDistance)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	dtos := make([]suggestionDTO, len(suggestions))
	for i, s := range suggestions {
		dtos[i] = toSuggestionDTO(s)
	}
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": dtos})
}

func (h *handlers) correct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	corrected, err := h.engine.LookupCompound(req.Text, h.engine.MaxDictionaryEditDistance())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"original":  req.Text,
		"corrected": corrected.Term,
		"distance":  corrected.Distance,
		"count":     corrected.Count,
	})
}

func (h *handlers) segment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	result, err := h.engine.WordSegmentation(req.Text)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"segmented_string":    result.SegmentedString,
		"corrected_string":    result.CorrectedString,
		"distance_sum":        result.DistanceSum,
		"probability_log_sum": result.ProbabilityLogSum,
	})
}

func (h *handlers) addCustomWord(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Word == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.store.Add(ctx, req.Word); err != nil {
		logger.Error("add custom word", "word", req.Word, "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (h *handlers) removeCustomWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	if word == "" {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := h.store.Remove(ctx, word); err != nil {
		logger.Error("remove custom word", "word", word, "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
