package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cineai/internal/service"
)

const defaultSuggestLimit = 10

type SearchHandler struct {
	svc *service.Engine
}

func NewSearchHandler(s *service.Engine) *SearchHandler {
	return &SearchHandler{svc: s}
}

// @Summary Autocompletado de títulos
// @Tags search
// @Produce json
// @Param q query string true "texto a buscar (mínimo 2 caracteres)"
// @Param limit query int false "máximo de sugerencias (default 10)"
// @Success 200 {array} string
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/search [get]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	q := r.URL.Query().Get("q")

	limit := defaultSuggestLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit debe ser un entero positivo")
			return
		}
		limit = n
	}

	titles, err := h.svc.Suggest(r.Context(), q, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if titles == nil {
		titles = []string{}
	}
	_ = json.NewEncoder(w).Encode(titles)
}
