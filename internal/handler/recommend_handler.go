package handler

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"cineai/internal/models"
	"cineai/internal/service"

	"github.com/gorilla/websocket"
)

const (
	defaultRecommendations = 10
	castDisplayLimit       = 100
)

type RecommendHandler struct {
	svc *service.Engine
}

func NewRecommendHandler(s *service.Engine) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// @Summary Recomendaciones por título de película
// @Tags recommend
// @Accept json
// @Produce json
// @Param body body models.RecommendRequest true "título (puede venir con typos) y cantidad"
// @Success 200 {object} models.RecommendResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/recommend [post]
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "body inválido")
		return
	}

	req.MovieName = strings.TrimSpace(req.MovieName)
	if req.MovieName == "" {
		writeError(w, http.StatusBadRequest, "movieName es requerido")
		return
	}
	count := defaultRecommendations
	if req.NumRecommendations != nil {
		count = *req.NumRecommendations
	}

	rec, err := h.svc.Recommend(r.Context(), req.MovieName, count)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	_ = json.NewEncoder(w).Encode(toResponse(rec))
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones vía WebSocket (progreso + resultado)
// @Tags recommend
// @Produce json
// @Param movie query string true "título de la película"
// @Param k query int false "cantidad de recomendaciones"
// @Success 200 {object} map[string]interface{}
// @Router /api/ws/recommend [get]
func (h *RecommendHandler) RecommendWS(w http.ResponseWriter, r *http.Request) {
	movie := strings.TrimSpace(r.URL.Query().Get("movie"))

	// k se valida antes del upgrade, para poder responder 400 como en
	// el endpoint POST.
	k := defaultRecommendations
	if raw := r.URL.Query().Get("k"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "k debe ser un entero")
			return
		}
		k = n
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", http.StatusBadRequest)
		return
	}
	defer conn.Close()

	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, resolviendo título…",
	})

	rec, err := h.svc.Recommend(r.Context(), movie, k)
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	conn.WriteJSON(map[string]any{
		"type":     "resolved",
		"resolved": rec.ResolvedTitle,
	})
	conn.WriteJSON(map[string]any{
		"type":   "recommendations",
		"result": toResponse(rec),
	})
}

// toResponse arma la vista clásica de CineAI: score como porcentaje con
// dos decimales y cast truncado para mostrar.
func toResponse(rec *models.Recommendation) models.RecommendResponse {
	out := models.RecommendResponse{
		InputMovie:      rec.ResolvedTitle,
		Recommendations: make([]models.RecommendedMovie, len(rec.Items)),
	}
	for i, it := range rec.Items {
		cast := it.Movie.Cast
		if len(cast) > castDisplayLimit {
			cast = cast[:castDisplayLimit] + "..."
		}
		out.Recommendations[i] = models.RecommendedMovie{
			Title:           it.Movie.Title,
			Genres:          it.Movie.Genres,
			Cast:            cast,
			Director:        it.Movie.Director,
			SimilarityScore: math.Round(it.Score*100*100) / 100,
		}
	}
	return out
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: msg})
}

// writeServiceError mapea la taxonomía del motor a códigos HTTP.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidParameter):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrMovieNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrServiceUnavailable):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
