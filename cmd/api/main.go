package main

import (
	"context"
	"log"
	"net/http"

	_ "cineai/docs" // swagger docs

	"cineai/internal/cache"
	"cineai/internal/catalog"
	"cineai/internal/config"
	"cineai/internal/db"
	"cineai/internal/handler"
	"cineai/internal/models"
	"cineai/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title CineAI Movie Recommender API
// @version 1.0
// @description Recomendador de películas por similitud de contenido (TF-IDF + coseno)
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()

	// Redis es opcional (cache de rankings)
	cache.InitRedis(cfg)

	// fuente del catálogo
	var load service.CatalogLoader
	switch cfg.CatalogSource {
	case "mongo":
		load = func(ctx context.Context) ([]models.MovieRecord, error) {
			mdb, err := db.Connect(ctx, cfg)
			if err != nil {
				return nil, err
			}
			return catalog.LoadMongo(ctx, mdb, cfg.MongoCollection, cfg.MaxCatalogRows)
		}
	default:
		load = func(ctx context.Context) ([]models.MovieRecord, error) {
			return catalog.LoadCSV(cfg.CSVPath, cfg.MaxCatalogRows)
		}
	}

	engine := service.NewEngine(cfg, load)

	// La inicialización (catálogo → TF-IDF → matriz) corre aparte para
	// que /api/health responda desde el primer momento; hasta que
	// termine, recommend/search devuelven 503. Si falla, es fatal: no
	// servimos contra datos parciales.
	go func() {
		if err := engine.Init(context.Background()); err != nil {
			log.Fatalf("[engine] inicialización falló: %v", err)
		}
	}()

	// handlers
	recH := handler.NewRecommendHandler(engine)
	searchH := handler.NewSearchHandler(engine)
	healthH := handler.NewHealthHandler(engine)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/health", healthH.Health)
	r.Post("/api/recommend", recH.Recommend)
	r.Get("/api/search", searchH.Search)
	r.Get("/api/ws/recommend", recH.RecommendWS)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
