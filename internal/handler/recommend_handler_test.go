package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cineai/internal/catalog"
	"cineai/internal/config"
	"cineai/internal/models"
	"cineai/internal/service"
)

func newTestEngine(t *testing.T, ready bool) *service.Engine {
	t.Helper()

	rows := [][2]string{
		{"Toy Story", "Animation Comedy"},
		{"Toy Story 2", "Animation Comedy"},
		{"Heat", "Crime Thriller"},
	}
	movies := make([]models.MovieRecord, len(rows))
	for i, row := range rows {
		m := models.MovieRecord{ID: i, Title: row[0], Genres: row[1]}
		m.CombinedFeatures = catalog.Combine(&m)
		movies[i] = m
	}

	cfg := &config.Config{
		MinDocFreq:    1,
		MaxFeatures:   5000,
		MinMatchRatio: 0.6,
	}
	e := service.NewEngine(cfg, func(ctx context.Context) ([]models.MovieRecord, error) {
		return movies, nil
	})
	if ready {
		if err := e.Init(context.Background()); err != nil {
			t.Fatalf("Init: %v", err)
		}
	}
	return e
}

func postRecommend(t *testing.T, h *RecommendHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/recommend", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Recommend(w, req)
	return w
}

func TestRecommendEndpoint(t *testing.T) {
	h := NewRecommendHandler(newTestEngine(t, true))

	w := postRecommend(t, h, `{"movieName":"toy story","numRecommendations":1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp models.RecommendResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decodificando respuesta: %v", err)
	}
	if resp.InputMovie != "Toy Story" {
		t.Errorf("inputMovie = %q, quería \"Toy Story\"", resp.InputMovie)
	}
	if len(resp.Recommendations) != 1 || resp.Recommendations[0].Title != "Toy Story 2" {
		t.Errorf("recomendaciones inesperadas: %+v", resp.Recommendations)
	}
	// score como porcentaje con dos decimales
	got := resp.Recommendations[0].SimilarityScore
	if got <= 0 || got > 100 {
		t.Errorf("similarityScore = %f fuera de (0,100]", got)
	}
}

func TestRecommendEndpointNotFound(t *testing.T) {
	h := NewRecommendHandler(newTestEngine(t, true))

	w := postRecommend(t, h, `{"movieName":"Xyzzy Nonexistent Film","numRecommendations":1}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, quería 404", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decodificando error: %v", err)
	}
	if !strings.Contains(resp.Error, "Xyzzy Nonexistent Film") {
		t.Errorf("el mensaje debe incluir la consulta original: %q", resp.Error)
	}
}

func TestRecommendEndpointBadRequests(t *testing.T) {
	h := NewRecommendHandler(newTestEngine(t, true))

	tests := []struct {
		name string
		body string
	}{
		{"body inválido", `{movieName}`},
		{"sin movieName", `{"numRecommendations":5}`},
		{"movieName en blanco", `{"movieName":"   "}`},
		{"count cero explícito", `{"movieName":"Toy Story","numRecommendations":0}`},
		{"count negativo", `{"movieName":"Toy Story","numRecommendations":-2}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := postRecommend(t, h, tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, quería 400 (body: %s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestRecommendEndpointDefaultCount(t *testing.T) {
	h := NewRecommendHandler(newTestEngine(t, true))

	// sin numRecommendations usa el default (recortado al catálogo)
	w := postRecommend(t, h, `{"movieName":"Toy Story"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp models.RecommendResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decodificando respuesta: %v", err)
	}
	if len(resp.Recommendations) != 2 {
		t.Errorf("esperaba 2 recomendaciones (catálogo menos la resuelta), llegaron %d", len(resp.Recommendations))
	}
}

func TestRecommendEndpointUnavailable(t *testing.T) {
	h := NewRecommendHandler(newTestEngine(t, false))

	w := postRecommend(t, h, `{"movieName":"Toy Story","numRecommendations":1}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, quería 503", w.Code)
	}
}

func TestRecommendWSBadK(t *testing.T) {
	h := NewRecommendHandler(newTestEngine(t, true))

	// k no numérico se rechaza antes del upgrade, igual que el POST
	req := httptest.NewRequest(http.MethodGet, "/api/ws/recommend?movie=Toy+Story&k=abc", nil)
	w := httptest.NewRecorder()
	h.RecommendWS(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, quería 400", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decodificando error: %v", err)
	}
	if !strings.Contains(resp.Error, "k") {
		t.Errorf("el mensaje debe mencionar el parámetro k: %q", resp.Error)
	}
}

func TestSearchEndpoint(t *testing.T) {
	h := NewSearchHandler(newTestEngine(t, true))

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=to&limit=5", nil)
	w := httptest.NewRecorder()
	h.Search(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var titles []string
	if err := json.Unmarshal(w.Body.Bytes(), &titles); err != nil {
		t.Fatalf("decodificando respuesta: %v", err)
	}
	if len(titles) != 2 || titles[0] != "Toy Story" || titles[1] != "Toy Story 2" {
		t.Errorf("sugerencias = %v", titles)
	}
}

func TestSearchEndpointShortQuery(t *testing.T) {
	h := NewSearchHandler(newTestEngine(t, true))

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=t", nil)
	w := httptest.NewRecorder()
	h.Search(w, req)

	// degrada a lista vacía, no a error
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("body = %s, quería []", body)
	}
}

func TestSearchEndpointBadLimit(t *testing.T) {
	h := NewSearchHandler(newTestEngine(t, true))

	for _, q := range []string{"q=toy&limit=abc", "q=toy&limit=0", "q=toy&limit=-1"} {
		req := httptest.NewRequest(http.MethodGet, "/api/search?"+q, nil)
		w := httptest.NewRecorder()
		h.Search(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, quería 400", q, w.Code)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	ready := NewHealthHandler(newTestEngine(t, true))
	notReady := NewHealthHandler(newTestEngine(t, false))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)

	w := httptest.NewRecorder()
	ready.Health(w, req)
	var resp models.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decodificando health: %v", err)
	}
	if !resp.Ready || resp.Movies != 3 {
		t.Errorf("health listo inesperado: %+v", resp)
	}

	w = httptest.NewRecorder()
	notReady.Health(w, req)
	resp = models.HealthResponse{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decodificando health: %v", err)
	}
	if resp.Ready {
		t.Errorf("health debería reportar ready=false: %+v", resp)
	}
}
