package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"cineai/internal/cache"
	"cineai/internal/config"
	"cineai/internal/match"
	"cineai/internal/models"
	"cineai/internal/similarity"
	"cineai/internal/vectorizer"
)

const (
	// Largo mínimo del prefijo de autocompletado. Por debajo devolvemos
	// lista vacía en vez de error: el autocompletado degrada, no falla.
	MinSuggestPrefix = 2

	DefaultMinMatchRatio = 0.6
)

// CatalogLoader produce el catálogo completo. La fuente concreta (CSV,
// Mongo) se decide en el wiring de main.
type CatalogLoader func(ctx context.Context) ([]models.MovieRecord, error)

// engineState es el snapshot inmutable que se publica de forma atómica
// al terminar la inicialización. Después de publicado nadie lo muta:
// todas las lecturas concurrentes van sin locks.
type engineState struct {
	movies      []models.MovieRecord
	lowerTitles []string
	matrix      *similarity.Matrix
	resolver    *match.Resolver
	vocabSize   int
}

// Engine es el motor de recomendaciones: resuelve el título, consulta
// la matriz de similitud, rankea y corta top-N. Stateless por llamada
// más allá del snapshot de solo lectura.
type Engine struct {
	cfg   *config.Config
	load  CatalogLoader
	state atomic.Pointer[engineState]
}

func NewEngine(cfg *config.Config, load CatalogLoader) *Engine {
	return &Engine{cfg: cfg, load: load}
}

// Init ejecuta la secuencia de arranque: catálogo → features → espacio
// TF-IDF → matriz de similitud, y recién entonces publica el snapshot.
// Si cualquier paso falla el motor queda (permanentemente) no
// disponible y el error sube al caller, que decide abortar el proceso.
func (e *Engine) Init(ctx context.Context) error {
	log.Println("[engine] cargando catálogo...")
	movies, err := e.load(ctx)
	if err != nil {
		return err
	}
	log.Printf("[engine] catálogo cargado: %d películas", len(movies))

	docs := make([]string, len(movies))
	lowerTitles := make([]string, len(movies))
	titles := make([]string, len(movies))
	for i, m := range movies {
		docs[i] = m.CombinedFeatures
		titles[i] = m.Title
		lowerTitles[i] = strings.ToLower(m.Title)
	}

	var stopwords map[string]struct{}
	if e.cfg.UseStopwords {
		stopwords = vectorizer.EnglishStopwords()
	}

	log.Println("[engine] ajustando espacio TF-IDF...")
	model, err := vectorizer.Fit(docs, vectorizer.Config{
		MinDocFrequency: e.cfg.MinDocFreq,
		MaxFeatures:     e.cfg.MaxFeatures,
		Stopwords:       stopwords,
	})
	if err != nil {
		return err
	}
	log.Printf("[engine] vocabulario: %d términos", model.VocabularySize())

	log.Println("[engine] precalculando matriz de similitud...")
	matrix := similarity.NewMatrix(model.Vectors())

	minRatio := e.cfg.MinMatchRatio
	if minRatio <= 0 {
		minRatio = DefaultMinMatchRatio
	}

	e.state.Store(&engineState{
		movies:      movies,
		lowerTitles: lowerTitles,
		matrix:      matrix,
		resolver:    match.NewResolver(titles, minRatio),
		vocabSize:   model.VocabularySize(),
	})
	log.Println("[engine] listo.")
	return nil
}

// Ready reporta si la inicialización terminó bien.
func (e *Engine) Ready() bool { return e.state.Load() != nil }

// Health arma la respuesta del healthcheck.
func (e *Engine) Health() models.HealthResponse {
	st := e.state.Load()
	if st == nil {
		return models.HealthResponse{Ready: false}
	}
	return models.HealthResponse{
		Ready:           true,
		Movies:          len(st.movies),
		VocabularyTerms: st.vocabSize,
	}
}

// Recommend resuelve `query` al título más cercano del catálogo y
// devuelve las `count` películas más similares, ordenadas por score
// descendente (empates por id ascendente). La película resuelta nunca
// aparece en su propia lista. count se recorta solo al tamaño del
// catálogo menos uno.
func (e *Engine) Recommend(ctx context.Context, query string, count int) (*models.Recommendation, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: numRecommendations debe ser positivo (llegó %d)", ErrInvalidParameter, count)
	}

	st := e.state.Load()
	if st == nil {
		return nil, ErrServiceUnavailable
	}

	movieID, ratio, err := st.resolver.Resolve(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMovieNotFound, query)
	}
	log.Printf("[engine] %q resuelto a %q (ratio=%.2f)", query, st.movies[movieID].Title, ratio)

	// El único recorte es al tamaño del catálogo menos la película
	// resuelta; cualquier tope de presentación es asunto del caller.
	if available := len(st.movies) - 1; count > available {
		count = available
	}

	rec := &models.Recommendation{ResolvedTitle: st.movies[movieID].Title}

	// Cache por película resuelta + k (si Redis está habilitado).
	key := fmt.Sprintf("rec:movie:%d:k:%d", movieID, count)
	var cached []models.RecItem
	if ok, err := cache.GetJSON(ctx, key, &cached); err != nil {
		log.Printf("[engine] error leyendo cache: %v", err)
	} else if ok {
		rec.Items = cached
		return rec, nil
	}

	row := st.matrix.Row(movieID)
	entries := make([]similarity.Entry, 0, len(row)-1)
	for id, score := range row {
		if id == movieID {
			continue
		}
		entries = append(entries, similarity.Entry{ID: id, Score: score})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].ID < entries[j].ID
	})
	entries = entries[:count]

	items := make([]models.RecItem, len(entries))
	for i, en := range entries {
		items[i] = models.RecItem{Movie: st.movies[en.ID], Score: en.Score}
	}
	rec.Items = items

	if err := cache.SetJSON(ctx, key, items, e.cfg.CacheTTLSeconds); err != nil {
		log.Printf("[engine] error cacheando ranking: %v", err)
	}

	return rec, nil
}

// Suggest devuelve títulos que contienen `prefix` (case-insensitive,
// substring, no solo prefijo), ordenados por posición de la primera
// ocurrencia y luego alfabéticamente, con tope `limit`. Prefijos de
// menos de 2 caracteres devuelven lista vacía.
func (e *Engine) Suggest(ctx context.Context, prefix string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit debe ser positivo (llegó %d)", ErrInvalidParameter, limit)
	}

	st := e.state.Load()
	if st == nil {
		return nil, ErrServiceUnavailable
	}

	q := strings.ToLower(strings.TrimSpace(prefix))
	if utf8.RuneCountInString(q) < MinSuggestPrefix {
		return []string{}, nil
	}

	type hit struct {
		title string
		pos   int
	}
	var hits []hit
	for i, lower := range st.lowerTitles {
		if pos := strings.Index(lower, q); pos >= 0 {
			hits = append(hits, hit{title: st.movies[i].Title, pos: pos})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].pos != hits[j].pos {
			return hits[i].pos < hits[j].pos
		}
		return hits[i].title < hits[j].title
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}

	titles := make([]string, len(hits))
	for i, h := range hits {
		titles[i] = h.title
	}
	return titles, nil
}
