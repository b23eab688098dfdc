package catalog

import (
	"context"
	"fmt"

	"cineai/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LoadMongo lee el catálogo desde una colección de Mongo. Ordena por
// _id para que la asignación de IDs (0-based, por posición) sea la
// misma en cada arranque. maxRows > 0 limita cuántos documentos se
// cargan.
func LoadMongo(ctx context.Context, mdb *mongo.Database, collection string, maxRows int) ([]models.MovieRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if maxRows > 0 {
		opts = opts.SetLimit(int64(maxRows))
	}

	cur, err := mdb.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: consultando %s: %v", ErrDataLoad, collection, err)
	}
	defer cur.Close(ctx)

	var movies []models.MovieRecord
	for cur.Next(ctx) {
		var doc struct {
			Title    string `bson:"title"`
			Genres   string `bson:"genres"`
			Keywords string `bson:"keywords"`
			Tagline  string `bson:"tagline"`
			Overview string `bson:"overview"`
			Cast     string `bson:"cast"`
			Director string `bson:"director"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: decodificando documento: %v", ErrDataLoad, err)
		}

		title := cleanText(doc.Title)
		if title == "" {
			continue
		}

		m := models.MovieRecord{
			ID:       len(movies),
			Title:    title,
			Genres:   cleanText(doc.Genres),
			Keywords: cleanText(doc.Keywords),
			Tagline:  cleanText(doc.Tagline),
			Overview: cleanText(doc.Overview),
			Cast:     cleanText(doc.Cast),
			Director: cleanText(doc.Director),
		}
		m.CombinedFeatures = Combine(&m)
		movies = append(movies, m)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%w: recorriendo cursor: %v", ErrDataLoad, err)
	}

	if len(movies) == 0 {
		return nil, fmt.Errorf("%w: cero documentos usables en %s", ErrDataLoad, collection)
	}
	return movies, nil
}
