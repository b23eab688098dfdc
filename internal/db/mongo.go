package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"cineai/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect abre la conexión a Mongo para la fuente de catálogo "mongo".
// Solo se llama cuando esa fuente está seleccionada; un fallo aquí se
// propaga como error de arranque del motor en lugar de matar el proceso
// directamente.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo: conectando: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo: ping falló: %w", err)
	}

	log.Printf("[mongo] conectado a %s / DB=%s\n", cfg.MongoURI, cfg.MongoDB)
	return client.Database(cfg.MongoDB), nil
}
