package api

import (
	"net/http"

	"github.com/phrazzld/nihongo-api/internal/api/shared"
	"github.com/phrazzld/nihongo-api/internal/domain"
	"github.com/phrazzld/nihongo-api/internal/service"
)

// VocabularyHandler handles vocabulary and cultural content requests.
type VocabularyHandler struct {
	vocabularyService service.VocabularyService
}

// NewVocabularyHandler creates a new VocabularyHandler.
func NewVocabularyHandler(vocabularyService service.VocabularyService) *VocabularyHandler {
	return &VocabularyHandler{vocabularyService: vocabularyService}
}

// ListVocabulary handles GET /api/vocabulary with optional type and level
// query filters.
func (h *VocabularyHandler) ListVocabulary(w http.ResponseWriter, r *http.Request) {
	wordType := domain.WordType(r.URL.Query().Get("type"))
	level, err := queryInt(r, "level", 0)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "level must be an integer")
		return
	}

	words, err := h.vocabularyService.Vocabulary(r.Context(), wordType, level)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, words)
}

// RandomVocabulary handles GET /api/vocabulary/random.
func (h *VocabularyHandler) RandomVocabulary(w http.ResponseWriter, r *http.Request) {
	wordType := domain.WordType(r.URL.Query().Get("type"))
	if wordType == "" {
		wordType = domain.WordTypeHiragana
	}
	count, err := queryInt(r, "count", 10)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "count must be an integer")
		return
	}

	words, err := h.vocabularyService.RandomVocabulary(r.Context(), wordType, count)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, words)
}

// ListCulture handles GET /api/culture with an optional category filter.
func (h *VocabularyHandler) ListCulture(w http.ResponseWriter, r *http.Request) {
	category := domain.CultureCategory(r.URL.Query().Get("category"))

	entries, err := h.vocabularyService.CulturalContent(r.Context(), category)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, entries)
}
